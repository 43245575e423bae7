package calculator

import (
	"fmt"

	"profitplanner/internal/domain"

	"github.com/montanaflynn/stats"
)

// CalculateForecastMetrics summarizes how returns are spread across the
// managed holdings of a forecast. Unmanaged holdings are skipped.
func CalculateForecastMetrics(forecast domain.Forecast) (*domain.ForecastMetrics, error) {
	returns := stats.Float64Data{}
	for _, h := range forecast.Holdings {
		if !h.Managed() {
			continue
		}
		returns = append(returns, h.Simulation.ReturnPercentage.InexactFloat64())
	}

	if len(returns) == 0 {
		return &domain.ForecastMetrics{}, nil
	}

	mean, err := stats.Mean(returns)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate mean return: %w", err)
	}
	median, err := stats.Median(returns)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate median return: %w", err)
	}
	stdev, err := stats.StandardDeviationPopulation(returns)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate return stdev: %w", err)
	}
	min, err := stats.Min(returns)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate min return: %w", err)
	}
	max, err := stats.Max(returns)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate max return: %w", err)
	}

	return &domain.ForecastMetrics{
		MeanReturnPercentage:   mean,
		MedianReturnPercentage: median,
		StdevReturnPercentage:  stdev,
		MinReturnPercentage:    min,
		MaxReturnPercentage:    max,
	}, nil
}
