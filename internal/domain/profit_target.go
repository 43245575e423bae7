package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

type TargetType string

const (
	// TargetValue is a percentage above the holding's average price,
	// e.g. 50 means +50%
	TargetType_PercentageOfAverage TargetType = "percentage"
	// TargetValue is an absolute unit price
	TargetType_ExactPrice TargetType = "price"
)

// NewTargetType accepts both the wire names ("percentage", "price") and
// the long names ("PERCENTAGE_OF_AVERAGE", "EXACT_PRICE").
func NewTargetType(s string) (*TargetType, error) {
	return parseEnum(s, "target type", map[string]TargetType{
		"PERCENTAGE":            TargetType_PercentageOfAverage,
		"PERCENTAGE_OF_AVERAGE": TargetType_PercentageOfAverage,
		"PRICE":                 TargetType_ExactPrice,
		"EXACT_PRICE":           TargetType_ExactPrice,
	})
}

// ProfitTarget is one rung of a strategy.
type ProfitTarget struct {
	// 1..N within a strategy
	Order       int
	TargetType  TargetType
	TargetValue decimal.Decimal
	// fraction (0-100) of the quantity still held when this target is
	// reached, not of the original quantity
	SellPercentage decimal.Decimal
}

func parseEnum[T ~string](s string, name string, m map[string]T) (*T, error) {
	for k, v := range m {
		if strings.EqualFold(
			strings.ReplaceAll(k, "_", ""),
			strings.ReplaceAll(s, "_", ""),
		) {
			return &v, nil
		}
	}
	return nil, fmt.Errorf("could not convert '%s' to known %s", s, name)
}
