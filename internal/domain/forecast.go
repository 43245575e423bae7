package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ForecastSummary is the portfolio-level roll-up. It is persisted as-is.
type ForecastSummary struct {
	TotalInvested        decimal.Decimal
	TotalCollected       decimal.Decimal
	TotalProfit          decimal.Decimal
	ReturnPercentage     decimal.Decimal
	RemainingTokensValue decimal.Decimal
	// holdings that had a strategy applied
	TokenCount int
}

// HoldingForecast is one holding's contribution to a forecast.
// Simulation is nil for unmanaged holdings.
type HoldingForecast struct {
	Holding    Holding
	StrategyID *uuid.UUID
	Simulation *SimulationResult
}

func (hf HoldingForecast) Managed() bool {
	return hf.Simulation != nil
}

type Forecast struct {
	Summary  ForecastSummary
	Holdings []HoldingForecast
}

// UnmanagedProjection is what a holding without a strategy contributes
// to a forecast: its invested amount counts both as invested and as
// remaining value, so no gain or loss is projected for it. The current
// market value is not used.
func UnmanagedProjection(h Holding) (invested decimal.Decimal, remainingValue decimal.Decimal) {
	return h.InvestedAmount, h.InvestedAmount
}

// ForecastMetrics describes the spread of return percentages across
// managed holdings.
type ForecastMetrics struct {
	MeanReturnPercentage   float64
	MedianReturnPercentage float64
	StdevReturnPercentage  float64
	MinReturnPercentage    float64
	MaxReturnPercentage    float64
}

// SavedForecast is a ForecastSummary as stored for a portfolio.
type SavedForecast struct {
	ForecastID    uuid.UUID
	PortfolioID   uuid.UUID
	ForecastName  string
	InvestedBasis InvestedBasis
	Summary       ForecastSummary
	CreatedAt     time.Time
}
