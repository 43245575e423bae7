package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Holding is a position in one token within one portfolio. The engine
// treats it as immutable input.
type Holding struct {
	HoldingID    uuid.UUID
	PortfolioID  uuid.UUID
	Symbol       string
	Quantity     decimal.Decimal
	AveragePrice decimal.Decimal
	// nil when no market price is known
	CurrentPrice *decimal.Decimal
	// may differ slightly from Quantity * AveragePrice because of fees
	InvestedAmount decimal.Decimal
}

// MarketPrice returns the latest known price, falling back to the
// average price when none is known.
func (h Holding) MarketPrice() decimal.Decimal {
	if h.CurrentPrice == nil {
		return h.AveragePrice
	}
	return *h.CurrentPrice
}

func (h Holding) CostBasis() decimal.Decimal {
	return h.Quantity.Mul(h.AveragePrice)
}

func (h Holding) CurrentValue() decimal.Decimal {
	return h.Quantity.Mul(h.MarketPrice())
}

// InvestedBasis selects which figure counts as "invested" for a
// simulated holding. Both appear in the surrounding system, so
// callers pick one explicitly.
type InvestedBasis string

const (
	// quantity * average price
	InvestedBasis_CostBasis InvestedBasis = "cost_basis"
	// the holding's stored invested amount
	InvestedBasis_Recorded InvestedBasis = "recorded"
)

func NewInvestedBasis(s string) (*InvestedBasis, error) {
	return parseEnum(s, "invested basis", map[string]InvestedBasis{
		"COST_BASIS": InvestedBasis_CostBasis,
		"RECORDED":   InvestedBasis_Recorded,
	})
}

// Invested returns the amount the given basis counts as invested for h.
func (b InvestedBasis) Invested(h Holding) decimal.Decimal {
	if b == InvestedBasis_Recorded {
		return h.InvestedAmount
	}
	return h.CostBasis()
}
