package calculator

import (
	"sort"

	"profitplanner/internal/domain"

	"github.com/shopspring/decimal"
)

// Simulate applies targets to holding in ascending order. Each target
// sells a percentage of what is left at that point, so selling 50% twice
// leaves a quarter of the position. Remaining tokens are valued at the
// holding's market price, not at the last target price.
//
// Over-allocated strategies are not clamped: the remaining quantity goes
// negative and callers are expected to flag it (see ValidateTargets).
func Simulate(holding domain.Holding, targets []domain.ProfitTarget, basis domain.InvestedBasis) domain.SimulationResult {
	remaining := holding.Quantity
	collected := decimal.Zero
	ledger := []domain.LedgerEntry{}

	for _, t := range sortTargets(targets) {
		targetPrice := ResolveTargetPrice(holding.AveragePrice, t)
		tokensSold := remaining.Mul(t.SellPercentage.Shift(-2))
		amountCollected := tokensSold.Mul(targetPrice)

		collected = collected.Add(amountCollected)
		remaining = remaining.Sub(tokensSold)

		ledger = append(ledger, domain.LedgerEntry{
			Order:                t.Order,
			TargetPrice:          targetPrice,
			TokensSold:           tokensSold,
			AmountCollected:      amountCollected,
			RemainingTokensAfter: remaining,
		})
	}

	remainingValue := remaining.Mul(holding.MarketPrice())
	invested := basis.Invested(holding)
	profit := collected.Add(remainingValue).Sub(invested)

	return domain.SimulationResult{
		Ledger:               ledger,
		TotalInvested:        invested,
		TotalCollected:       collected,
		TotalProfit:          profit,
		ReturnPercentage:     returnPercentage(profit, invested),
		RemainingTokens:      remaining,
		RemainingTokensValue: remainingValue,
	}
}

// returnPercentage is 0 when nothing was invested.
func returnPercentage(profit, invested decimal.Decimal) decimal.Decimal {
	if !invested.GreaterThan(decimal.Zero) {
		return decimal.Zero
	}
	return profit.Mul(hundred).Div(invested)
}

// sortTargets returns a copy of targets in ascending order. Targets that
// share an order keep their input order.
func sortTargets(targets []domain.ProfitTarget) []domain.ProfitTarget {
	out := make([]domain.ProfitTarget, len(targets))
	copy(out, targets)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Order < out[j].Order
	})
	return out
}
