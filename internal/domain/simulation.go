package domain

import "github.com/shopspring/decimal"

// LedgerEntry records what happens when one target is reached.
type LedgerEntry struct {
	Order                int
	TargetPrice          decimal.Decimal
	TokensSold           decimal.Decimal
	AmountCollected      decimal.Decimal
	RemainingTokensAfter decimal.Decimal
}

// SimulationResult is the outcome of applying a strategy to one holding.
// RemainingTokens is negative when the strategy sells more than 100%.
type SimulationResult struct {
	Ledger               []LedgerEntry
	TotalInvested        decimal.Decimal
	TotalCollected       decimal.Decimal
	TotalProfit          decimal.Decimal
	ReturnPercentage     decimal.Decimal
	RemainingTokens      decimal.Decimal
	RemainingTokensValue decimal.Decimal
}
