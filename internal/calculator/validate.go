package calculator

import (
	"errors"
	"fmt"

	"profitplanner/internal/domain"

	"github.com/shopspring/decimal"
)

var (
	ErrOverAllocated          = errors.New("cumulative sell percentage exceeds 100")
	ErrSellPercentageRange    = errors.New("sell percentage must be between 0 and 100")
	ErrNegativeTargetValue    = errors.New("target value must not be negative")
	ErrTargetOrderNotSequence = errors.New("target orders must run 1..N without gaps or duplicates")
)

// ValidateTargets reports configurations Simulate tolerates but that
// callers should surface to the user. An empty result means the targets
// are sane. Nothing here stops a simulation from running.
func ValidateTargets(targets []domain.ProfitTarget) []error {
	errs := []error{}

	seen := map[int]bool{}
	for _, t := range targets {
		seen[t.Order] = true

		if t.SellPercentage.LessThan(decimal.Zero) || t.SellPercentage.GreaterThan(hundred) {
			errs = append(errs, fmt.Errorf("target %d: %w, got %s", t.Order, ErrSellPercentageRange, t.SellPercentage))
		}
		if t.TargetValue.LessThan(decimal.Zero) {
			errs = append(errs, fmt.Errorf("target %d: %w, got %s", t.Order, ErrNegativeTargetValue, t.TargetValue))
		}
	}

	if total := TotalSellPercentage(targets); total.GreaterThan(hundred) {
		errs = append(errs, fmt.Errorf("%w: total is %s", ErrOverAllocated, total))
	}

	if len(seen) != len(targets) {
		errs = append(errs, ErrTargetOrderNotSequence)
	} else {
		for i := 1; i <= len(targets); i++ {
			if !seen[i] {
				errs = append(errs, ErrTargetOrderNotSequence)
				break
			}
		}
	}

	return errs
}

// TotalSellPercentage sums the sell percentage of every target.
func TotalSellPercentage(targets []domain.ProfitTarget) decimal.Decimal {
	total := decimal.Zero
	for _, t := range targets {
		total = total.Add(t.SellPercentage)
	}
	return total
}
