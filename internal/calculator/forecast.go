package calculator

import (
	"profitplanner/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AggregateForecast simulates every holding that has a strategy and folds
// the results into portfolio totals. Holdings without a strategy (missing
// or nil in strategyByHoldingID) follow domain.UnmanagedProjection.
func AggregateForecast(
	holdings []domain.Holding,
	strategyByHoldingID map[uuid.UUID]*domain.Strategy,
	basis domain.InvestedBasis,
) domain.Forecast {
	invested := decimal.Zero
	collected := decimal.Zero
	remainingValue := decimal.Zero
	tokenCount := 0
	breakdown := []domain.HoldingForecast{}

	for _, h := range holdings {
		strategy := strategyByHoldingID[h.HoldingID]
		if strategy == nil {
			i, v := domain.UnmanagedProjection(h)
			invested = invested.Add(i)
			remainingValue = remainingValue.Add(v)
			breakdown = append(breakdown, domain.HoldingForecast{
				Holding: h,
			})
			continue
		}

		result := Simulate(h, strategy.ProfitTargets, basis)
		invested = invested.Add(result.TotalInvested)
		collected = collected.Add(result.TotalCollected)
		remainingValue = remainingValue.Add(result.RemainingTokensValue)
		tokenCount++

		strategyID := strategy.StrategyID
		breakdown = append(breakdown, domain.HoldingForecast{
			Holding:    h,
			StrategyID: &strategyID,
			Simulation: &result,
		})
	}

	profit := collected.Add(remainingValue).Sub(invested)

	return domain.Forecast{
		Summary: domain.ForecastSummary{
			TotalInvested:        invested,
			TotalCollected:       collected,
			TotalProfit:          profit,
			ReturnPercentage:     returnPercentage(profit, invested),
			RemainingTokensValue: remainingValue,
			TokenCount:           tokenCount,
		},
		Holdings: breakdown,
	}
}
