package calculator

import (
	"profitplanner/internal/domain"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ResolveTargetPrice returns the unit price at which target triggers.
// Any input is accepted, including a zero or negative average price.
func ResolveTargetPrice(averagePrice decimal.Decimal, target domain.ProfitTarget) decimal.Decimal {
	if target.TargetType == domain.TargetType_PercentageOfAverage {
		return averagePrice.Mul(decimal.NewFromInt(1).Add(target.TargetValue.Shift(-2)))
	}
	return target.TargetValue
}
