package calculator

import (
	"encoding/json"
	"testing"

	"profitplanner/internal/domain"
	"profitplanner/internal/util"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var decimalComparer = cmp.Comparer(func(d1, d2 decimal.Decimal) bool {
	return d1.Equal(d2)
})

func dec(i int64) decimal.Decimal {
	return decimal.NewFromInt(i)
}

func percentageTarget(order int, value, sell int64) domain.ProfitTarget {
	return domain.ProfitTarget{
		Order:          order,
		TargetType:     domain.TargetType_PercentageOfAverage,
		TargetValue:    dec(value),
		SellPercentage: dec(sell),
	}
}

func priceTarget(order int, price, sell int64) domain.ProfitTarget {
	return domain.ProfitTarget{
		Order:          order,
		TargetType:     domain.TargetType_ExactPrice,
		TargetValue:    dec(price),
		SellPercentage: dec(sell),
	}
}

func TestResolveTargetPrice(t *testing.T) {
	t.Run("percentage of average", func(t *testing.T) {
		price := ResolveTargetPrice(dec(100), percentageTarget(1, 50, 10))
		require.True(t, dec(150).Equal(price), price.String())
	})

	t.Run("exact price ignores average", func(t *testing.T) {
		price := ResolveTargetPrice(dec(100), priceTarget(1, 42, 10))
		require.True(t, dec(42).Equal(price), price.String())
	})

	t.Run("zero average", func(t *testing.T) {
		price := ResolveTargetPrice(decimal.Zero, percentageTarget(1, 300, 10))
		require.True(t, decimal.Zero.Equal(price), price.String())
	})

	t.Run("negative average is not rejected", func(t *testing.T) {
		price := ResolveTargetPrice(dec(-10), percentageTarget(1, 100, 10))
		require.True(t, dec(-20).Equal(price), price.String())
	})

	t.Run("fractional percentage", func(t *testing.T) {
		price := ResolveTargetPrice(decimal.NewFromFloat(0.5), domain.ProfitTarget{
			TargetType:  domain.TargetType_PercentageOfAverage,
			TargetValue: decimal.NewFromFloat(12.5),
		})
		require.True(t, decimal.NewFromFloat(0.5625).Equal(price), price.String())
	})
}

func TestSimulate(t *testing.T) {
	t.Run("single percentage target", func(t *testing.T) {
		holding := domain.Holding{
			HoldingID:      uuid.New(),
			Quantity:       dec(10),
			AveragePrice:   dec(100),
			CurrentPrice:   util.DecimalPointer(dec(150)),
			InvestedAmount: dec(1000),
		}

		result := Simulate(holding, []domain.ProfitTarget{percentageTarget(1, 50, 40)}, domain.InvestedBasis_CostBasis)

		require.Equal(
			t,
			"",
			cmp.Diff(
				domain.SimulationResult{
					Ledger: []domain.LedgerEntry{
						{
							Order:                1,
							TargetPrice:          dec(150),
							TokensSold:           dec(4),
							AmountCollected:      dec(600),
							RemainingTokensAfter: dec(6),
						},
					},
					TotalInvested:        dec(1000),
					TotalCollected:       dec(600),
					TotalProfit:          dec(500),
					ReturnPercentage:     dec(50),
					RemainingTokens:      dec(6),
					RemainingTokensValue: dec(900),
				},
				result,
				decimalComparer,
			),
		)
	})

	t.Run("percentages apply to the remaining balance", func(t *testing.T) {
		holding := domain.Holding{
			Quantity:     dec(100),
			AveragePrice: dec(1),
		}

		result := Simulate(holding, []domain.ProfitTarget{
			percentageTarget(1, 100, 50),
			percentageTarget(2, 200, 50),
		}, domain.InvestedBasis_CostBasis)

		require.True(t, dec(25).Equal(result.RemainingTokens), result.RemainingTokens.String())
		require.True(t, dec(50).Equal(result.Ledger[0].TokensSold))
		require.True(t, dec(25).Equal(result.Ledger[1].TokensSold))
	})

	t.Run("target order changes proceeds", func(t *testing.T) {
		holding := domain.Holding{
			Quantity:     dec(100),
			AveragePrice: dec(5),
		}

		ascending := Simulate(holding, []domain.ProfitTarget{
			priceTarget(1, 10, 50),
			priceTarget(2, 20, 50),
		}, domain.InvestedBasis_CostBasis)
		descending := Simulate(holding, []domain.ProfitTarget{
			priceTarget(1, 20, 50),
			priceTarget(2, 10, 50),
		}, domain.InvestedBasis_CostBasis)

		require.True(t, dec(1000).Equal(ascending.TotalCollected), ascending.TotalCollected.String())
		require.True(t, dec(1250).Equal(descending.TotalCollected), descending.TotalCollected.String())
		require.True(t, ascending.RemainingTokens.Equal(descending.RemainingTokens))
	})

	t.Run("targets are walked by order, not slice position", func(t *testing.T) {
		holding := domain.Holding{
			Quantity:     dec(100),
			AveragePrice: dec(5),
		}
		targets := []domain.ProfitTarget{
			priceTarget(2, 20, 50),
			priceTarget(1, 10, 50),
		}

		result := Simulate(holding, targets, domain.InvestedBasis_CostBasis)

		require.Equal(t, 1, result.Ledger[0].Order)
		require.Equal(t, 2, result.Ledger[1].Order)
		require.True(t, dec(1000).Equal(result.TotalCollected))
		// input is left untouched
		require.Equal(t, 2, targets[0].Order)
	})

	t.Run("empty strategy is mark to market", func(t *testing.T) {
		holding := domain.Holding{
			Quantity:     dec(8),
			AveragePrice: dec(50),
			CurrentPrice: util.DecimalPointer(dec(40)),
		}

		result := Simulate(holding, nil, domain.InvestedBasis_CostBasis)

		require.Empty(t, result.Ledger)
		require.True(t, decimal.Zero.Equal(result.TotalCollected))
		require.True(t, dec(8).Equal(result.RemainingTokens))
		require.True(t, result.RemainingTokensValue.Sub(result.TotalInvested).Equal(result.TotalProfit))
		require.True(t, dec(-80).Equal(result.TotalProfit), result.TotalProfit.String())
		require.True(t, dec(-20).Equal(result.ReturnPercentage), result.ReturnPercentage.String())
	})

	t.Run("zero invested returns zero percent", func(t *testing.T) {
		holding := domain.Holding{
			Quantity:     dec(10),
			AveragePrice: decimal.Zero,
			CurrentPrice: util.DecimalPointer(dec(3)),
		}

		result := Simulate(holding, []domain.ProfitTarget{priceTarget(1, 5, 50)}, domain.InvestedBasis_CostBasis)

		require.True(t, decimal.Zero.Equal(result.TotalInvested))
		require.True(t, decimal.Zero.Equal(result.ReturnPercentage))
		require.True(t, dec(40).Equal(result.TotalProfit), result.TotalProfit.String())
	})

	t.Run("missing current price falls back to average", func(t *testing.T) {
		holding := domain.Holding{
			Quantity:     dec(4),
			AveragePrice: dec(25),
		}

		result := Simulate(holding, nil, domain.InvestedBasis_CostBasis)

		require.True(t, dec(100).Equal(result.RemainingTokensValue))
		require.True(t, decimal.Zero.Equal(result.TotalProfit))
	})

	t.Run("over allocated target goes negative", func(t *testing.T) {
		holding := domain.Holding{
			Quantity:     dec(100),
			AveragePrice: dec(1),
		}

		result := Simulate(holding, []domain.ProfitTarget{priceTarget(1, 2, 150)}, domain.InvestedBasis_CostBasis)

		require.True(t, dec(-50).Equal(result.RemainingTokens), result.RemainingTokens.String())
		require.True(t, dec(-50).Equal(result.RemainingTokensValue))
		require.True(t, dec(300).Equal(result.TotalCollected))
	})

	t.Run("recorded invested amount", func(t *testing.T) {
		holding := domain.Holding{
			Quantity:       dec(10),
			AveragePrice:   dec(100),
			CurrentPrice:   util.DecimalPointer(dec(150)),
			InvestedAmount: dec(1250),
		}

		result := Simulate(holding, []domain.ProfitTarget{percentageTarget(1, 50, 40)}, domain.InvestedBasis_Recorded)

		require.True(t, dec(1250).Equal(result.TotalInvested))
		require.True(t, dec(250).Equal(result.TotalProfit), result.TotalProfit.String())
		require.True(t, dec(20).Equal(result.ReturnPercentage), result.ReturnPercentage.String())
	})

	t.Run("identical inputs give identical output", func(t *testing.T) {
		holding := domain.Holding{
			Quantity:     decimal.NewFromFloat(3.3),
			AveragePrice: decimal.NewFromFloat(0.17),
			CurrentPrice: util.DecimalPointer(decimal.NewFromFloat(0.21)),
		}
		targets := []domain.ProfitTarget{
			percentageTarget(1, 33, 17),
			percentageTarget(2, 250, 33),
			priceTarget(3, 1, 100),
		}

		first := Simulate(holding, targets, domain.InvestedBasis_CostBasis)
		second := Simulate(holding, targets, domain.InvestedBasis_CostBasis)

		firstBytes, err := json.Marshal(first)
		require.NoError(t, err)
		secondBytes, err := json.Marshal(second)
		require.NoError(t, err)
		require.Equal(t, string(firstBytes), string(secondBytes))
	})
}
