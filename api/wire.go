package api

import (
	"fmt"
	"strings"
	"time"

	"profitplanner/internal/domain"
	"profitplanner/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type HoldingJson struct {
	HoldingID string `json:"holdingId"`
	// only used to match strategies by symbol
	Symbol       string   `json:"symbol,omitempty"`
	Quantity     float64  `json:"quantity"`
	AveragePrice float64  `json:"averagePrice"`
	CurrentPrice *float64 `json:"currentPrice,omitempty"`
	// defaults to quantity * averagePrice
	InvestedAmount *float64 `json:"investedAmount,omitempty"`
}

// ToDomain generates a holding id when none is given.
func (h HoldingJson) ToDomain() (*domain.Holding, error) {
	holdingID := uuid.New()
	if h.HoldingID != "" {
		id, err := uuid.Parse(h.HoldingID)
		if err != nil {
			return nil, fmt.Errorf("invalid holding id '%s': %w", h.HoldingID, err)
		}
		holdingID = id
	}

	out := domain.Holding{
		HoldingID:    holdingID,
		Symbol:       h.Symbol,
		Quantity:     decimal.NewFromFloat(h.Quantity),
		AveragePrice: decimal.NewFromFloat(h.AveragePrice),
	}
	if h.CurrentPrice != nil {
		p := decimal.NewFromFloat(*h.CurrentPrice)
		out.CurrentPrice = &p
	}
	out.InvestedAmount = out.CostBasis()
	if h.InvestedAmount != nil {
		out.InvestedAmount = decimal.NewFromFloat(*h.InvestedAmount)
	}

	return &out, nil
}

type ProfitTargetJson struct {
	Order          int     `json:"order"`
	TargetType     string  `json:"targetType"`
	TargetValue    float64 `json:"targetValue"`
	SellPercentage float64 `json:"sellPercentage"`
	// real strategies only: pending, triggered or cancelled. Rejected on
	// theoretical targets.
	State string `json:"state,omitempty"`
}

func (t ProfitTargetJson) ToDomain() (*domain.ProfitTarget, error) {
	targetType, err := domain.NewTargetType(t.TargetType)
	if err != nil {
		return nil, err
	}
	return &domain.ProfitTarget{
		Order:          t.Order,
		TargetType:     *targetType,
		TargetValue:    decimal.NewFromFloat(t.TargetValue),
		SellPercentage: decimal.NewFromFloat(t.SellPercentage),
	}, nil
}

func profitTargetsToDomain(in []ProfitTargetJson) ([]domain.ProfitTarget, error) {
	out := []domain.ProfitTarget{}
	for _, t := range in {
		target, err := t.ToDomain()
		if err != nil {
			return nil, fmt.Errorf("invalid target %d: %w", t.Order, err)
		}
		out = append(out, *target)
	}
	return out, nil
}

type StrategyJson struct {
	StrategyID   string `json:"strategyId"`
	StrategyName string `json:"strategyName"`
	Symbol       string `json:"symbol"`
	// theoretical (default) or real
	Kind          string             `json:"kind,omitempty"`
	Quantity      float64            `json:"quantity,omitempty"`
	AveragePrice  float64            `json:"averagePrice,omitempty"`
	ProfitTargets []ProfitTargetJson `json:"profitTargets"`
}

// ToDomain builds the strategy in its stored representation and
// normalizes it.
func (s StrategyJson) ToDomain() (*domain.Strategy, error) {
	strategyID, err := uuid.Parse(s.StrategyID)
	if err != nil {
		return nil, fmt.Errorf("invalid strategy id '%s': %w", s.StrategyID, err)
	}

	var source domain.ProfitTargetSource
	switch strings.ToLower(s.Kind) {
	case "", "theoretical":
		for _, t := range s.ProfitTargets {
			if t.State != "" {
				return nil, fmt.Errorf("strategy %s: target %d has a state but the strategy is theoretical", s.StrategyID, t.Order)
			}
		}
		targets, err := profitTargetsToDomain(s.ProfitTargets)
		if err != nil {
			return nil, fmt.Errorf("strategy %s: %w", s.StrategyID, err)
		}
		source = domain.TheoreticalStrategy{
			StrategyID:    strategyID,
			StrategyName:  s.StrategyName,
			TokenSymbol:   s.Symbol,
			TokenQuantity: decimal.NewFromFloat(s.Quantity),
			AveragePrice:  decimal.NewFromFloat(s.AveragePrice),
			ProfitTargets: targets,
		}
	case "real":
		steps := []domain.StrategyStep{}
		for _, t := range s.ProfitTargets {
			target, err := t.ToDomain()
			if err != nil {
				return nil, fmt.Errorf("strategy %s: invalid target %d: %w", s.StrategyID, t.Order, err)
			}
			state := domain.StepState_Pending
			if t.State != "" {
				parsed, err := domain.NewStepState(t.State)
				if err != nil {
					return nil, fmt.Errorf("strategy %s: %w", s.StrategyID, err)
				}
				state = *parsed
			}
			steps = append(steps, domain.StrategyStep{
				Order:          target.Order,
				TargetType:     target.TargetType,
				TargetValue:    target.TargetValue,
				SellPercentage: target.SellPercentage,
				State:          state,
			})
		}
		source = domain.RealStrategy{
			StrategyID:   strategyID,
			StrategyName: s.StrategyName,
			Symbol:       s.Symbol,
			Quantity:     decimal.NewFromFloat(s.Quantity),
			AveragePrice: decimal.NewFromFloat(s.AveragePrice),
			Steps:        steps,
		}
	default:
		return nil, fmt.Errorf("strategy %s: unknown kind '%s'", s.StrategyID, s.Kind)
	}

	out := source.Normalize()
	return &out, nil
}

func parseInvestedBasis(s string) (*domain.InvestedBasis, error) {
	if s == "" {
		basis := domain.InvestedBasis_CostBasis
		return &basis, nil
	}
	return domain.NewInvestedBasis(s)
}

func parseStrategySelections(in map[string]string) (map[uuid.UUID]string, error) {
	out := map[uuid.UUID]string{}
	for holdingID, selection := range in {
		id, err := uuid.Parse(holdingID)
		if err != nil {
			return nil, fmt.Errorf("invalid holding id '%s': %w", holdingID, err)
		}
		// validated here so a bad selection is a 400
		if _, err := domain.ParseStrategySelection(selection); err != nil {
			return nil, err
		}
		out[id] = selection
	}
	return out, nil
}

type LedgerEntryResponse struct {
	Order                int     `json:"order"`
	TargetPrice          float64 `json:"targetPrice"`
	TokensSold           float64 `json:"tokensSold"`
	AmountCollected      float64 `json:"amountCollected"`
	RemainingTokensAfter float64 `json:"remainingTokensAfter"`
}

type SimulationResultResponse struct {
	Ledger               []LedgerEntryResponse `json:"ledger"`
	TotalInvested        float64               `json:"totalInvested"`
	TotalCollected       float64               `json:"totalCollected"`
	TotalProfit          float64               `json:"totalProfit"`
	ReturnPercentage     float64               `json:"returnPercentage"`
	RemainingTokens      float64               `json:"remainingTokens"`
	RemainingTokensValue float64               `json:"remainingTokensValue"`
}

func NewSimulationResultResponse(r domain.SimulationResult) SimulationResultResponse {
	ledger := []LedgerEntryResponse{}
	for _, e := range r.Ledger {
		ledger = append(ledger, LedgerEntryResponse{
			Order:                e.Order,
			TargetPrice:          e.TargetPrice.InexactFloat64(),
			TokensSold:           e.TokensSold.InexactFloat64(),
			AmountCollected:      e.AmountCollected.InexactFloat64(),
			RemainingTokensAfter: e.RemainingTokensAfter.InexactFloat64(),
		})
	}
	return SimulationResultResponse{
		Ledger:               ledger,
		TotalInvested:        r.TotalInvested.InexactFloat64(),
		TotalCollected:       r.TotalCollected.InexactFloat64(),
		TotalProfit:          r.TotalProfit.InexactFloat64(),
		ReturnPercentage:     r.ReturnPercentage.InexactFloat64(),
		RemainingTokens:      r.RemainingTokens.InexactFloat64(),
		RemainingTokensValue: r.RemainingTokensValue.InexactFloat64(),
	}
}

type ForecastSummaryResponse struct {
	TotalInvested        float64 `json:"totalInvested"`
	TotalCollected       float64 `json:"totalCollected"`
	TotalProfit          float64 `json:"totalProfit"`
	ReturnPercentage     float64 `json:"returnPercentage"`
	RemainingTokensValue float64 `json:"remainingTokensValue"`
	TokenCount           int     `json:"tokenCount"`
}

func forecastSummaryToResponse(s domain.ForecastSummary) ForecastSummaryResponse {
	return ForecastSummaryResponse{
		TotalInvested:        s.TotalInvested.InexactFloat64(),
		TotalCollected:       s.TotalCollected.InexactFloat64(),
		TotalProfit:          s.TotalProfit.InexactFloat64(),
		ReturnPercentage:     s.ReturnPercentage.InexactFloat64(),
		RemainingTokensValue: s.RemainingTokensValue.InexactFloat64(),
		TokenCount:           s.TokenCount,
	}
}

type HoldingForecastResponse struct {
	HoldingID  string                    `json:"holdingId"`
	Symbol     string                    `json:"symbol"`
	StrategyID *string                   `json:"strategyId"`
	Simulation *SimulationResultResponse `json:"simulation"`
}

type ForecastMetricsResponse struct {
	MeanReturnPercentage   float64 `json:"meanReturnPercentage"`
	MedianReturnPercentage float64 `json:"medianReturnPercentage"`
	StdevReturnPercentage  float64 `json:"stdevReturnPercentage"`
	MinReturnPercentage    float64 `json:"minReturnPercentage"`
	MaxReturnPercentage    float64 `json:"maxReturnPercentage"`
}

type StrategyWarningResponse struct {
	StrategyID string `json:"strategyId"`
	Message    string `json:"message"`
}

type ForecastResponse struct {
	Summary  ForecastSummaryResponse   `json:"summary"`
	Holdings []HoldingForecastResponse `json:"holdings"`
	Metrics  ForecastMetricsResponse   `json:"metrics"`
	Warnings []StrategyWarningResponse `json:"warnings"`
}

func NewForecastResponse(r service.ForecastResult) ForecastResponse {
	holdings := []HoldingForecastResponse{}
	for _, hf := range r.Forecast.Holdings {
		out := HoldingForecastResponse{
			HoldingID: hf.Holding.HoldingID.String(),
			Symbol:    hf.Holding.Symbol,
		}
		if hf.StrategyID != nil {
			id := hf.StrategyID.String()
			out.StrategyID = &id
		}
		if hf.Simulation != nil {
			sim := NewSimulationResultResponse(*hf.Simulation)
			out.Simulation = &sim
		}
		holdings = append(holdings, out)
	}

	warnings := []StrategyWarningResponse{}
	for _, w := range r.Warnings {
		warnings = append(warnings, StrategyWarningResponse{
			StrategyID: w.StrategyID.String(),
			Message:    w.Message,
		})
	}

	return ForecastResponse{
		Summary:  forecastSummaryToResponse(r.Forecast.Summary),
		Holdings: holdings,
		Metrics: ForecastMetricsResponse{
			MeanReturnPercentage:   r.Metrics.MeanReturnPercentage,
			MedianReturnPercentage: r.Metrics.MedianReturnPercentage,
			StdevReturnPercentage:  r.Metrics.StdevReturnPercentage,
			MinReturnPercentage:    r.Metrics.MinReturnPercentage,
			MaxReturnPercentage:    r.Metrics.MaxReturnPercentage,
		},
		Warnings: warnings,
	}
}

type SavedForecastResponse struct {
	ForecastID    string                  `json:"forecastId"`
	PortfolioID   string                  `json:"portfolioId"`
	ForecastName  string                  `json:"forecastName"`
	InvestedBasis string                  `json:"investedBasis"`
	Summary       ForecastSummaryResponse `json:"summary"`
	CreatedAt     string                  `json:"createdAt"`
}

func savedForecastToResponse(f domain.SavedForecast) SavedForecastResponse {
	return SavedForecastResponse{
		ForecastID:    f.ForecastID.String(),
		PortfolioID:   f.PortfolioID.String(),
		ForecastName:  f.ForecastName,
		InvestedBasis: string(f.InvestedBasis),
		Summary:       forecastSummaryToResponse(f.Summary),
		CreatedAt:     f.CreatedAt.Format(time.RFC3339),
	}
}
