package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"profitplanner/internal/calculator"
	"profitplanner/internal/db/models/postgres/public/model"
	"profitplanner/internal/domain"
	"profitplanner/internal/logger"
	"profitplanner/internal/repository"

	"github.com/google/uuid"
)

var ErrStrategyNotFound = errors.New("strategy not found")

var ErrForecastNameRequired = errors.New("forecast name is required")

type ForecastService interface {
	Forecast(ctx context.Context, in ForecastInput) (*ForecastResult, error)
	SaveForecast(ctx context.Context, in SaveForecastInput) (*domain.SavedForecast, error)
	ListForecasts(ctx context.Context, portfolioID uuid.UUID) ([]domain.SavedForecast, error)
}

type forecastServiceHandler struct {
	HoldingRepository  repository.HoldingRepository
	StrategyRepository repository.StrategyRepository
	ForecastRepository repository.ForecastRepository
}

func NewForecastService(
	holdingRepository repository.HoldingRepository,
	strategyRepository repository.StrategyRepository,
	forecastRepository repository.ForecastRepository,
) ForecastService {
	return forecastServiceHandler{
		HoldingRepository:  holdingRepository,
		StrategyRepository: strategyRepository,
		ForecastRepository: forecastRepository,
	}
}

type ForecastInput struct {
	PortfolioID uuid.UUID
	// holding id -> strategy id, or domain.NoStrategySelection
	StrategySelections map[uuid.UUID]string
	InvestedBasis      domain.InvestedBasis
}

type StrategyWarning struct {
	StrategyID uuid.UUID
	Message    string
}

type ForecastResult struct {
	Forecast domain.Forecast
	Metrics  domain.ForecastMetrics
	Warnings []StrategyWarning
}

func (h forecastServiceHandler) Forecast(ctx context.Context, in ForecastInput) (*ForecastResult, error) {
	lg := logger.FromContext(ctx)
	profile := domain.ProfileFromContext(ctx)

	profile.StartNewSpan("load holdings")
	holdings, err := h.HoldingRepository.List(repository.HoldingListFilter{
		PortfolioID: &in.PortfolioID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get holdings for portfolio %s: %w", in.PortfolioID.String(), err)
	}

	strategyIDs, err := selectedStrategyIDs(in.StrategySelections)
	if err != nil {
		return nil, err
	}

	profile.StartNewSpan("load strategies")
	strategies, err := h.StrategyRepository.ListWithTargets(strategyIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get strategies: %w", err)
	}

	_, endSpan := profile.StartNewSpan("aggregate")
	result, err := BuildForecast(holdings, strategies, in.StrategySelections, in.InvestedBasis)
	endSpan()
	if err != nil {
		return nil, err
	}

	lg.Infow("computed forecast",
		"portfolioID", in.PortfolioID.String(),
		"holdings", len(holdings),
		"managed", result.Forecast.Summary.TokenCount,
		"warnings", len(result.Warnings),
	)

	return result, nil
}

type SaveForecastInput struct {
	ForecastInput
	ForecastName string
}

func (h forecastServiceHandler) SaveForecast(ctx context.Context, in SaveForecastInput) (*domain.SavedForecast, error) {
	if strings.TrimSpace(in.ForecastName) == "" {
		return nil, ErrForecastNameRequired
	}

	result, err := h.Forecast(ctx, in.ForecastInput)
	if err != nil {
		return nil, err
	}

	summary := result.Forecast.Summary
	inserted, err := h.ForecastRepository.Add(nil, model.Forecast{
		PortfolioID:          in.PortfolioID,
		ForecastName:         in.ForecastName,
		InvestedBasis:        string(in.InvestedBasis),
		TotalInvested:        summary.TotalInvested,
		TotalCollected:       summary.TotalCollected,
		TotalProfit:          summary.TotalProfit,
		ReturnPercentage:     summary.ReturnPercentage,
		RemainingTokensValue: summary.RemainingTokensValue,
		TokenCount:           int32(summary.TokenCount),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save forecast: %w", err)
	}

	return savedForecastFromModel(*inserted)
}

func (h forecastServiceHandler) ListForecasts(ctx context.Context, portfolioID uuid.UUID) ([]domain.SavedForecast, error) {
	models, err := h.ForecastRepository.List(repository.ForecastListFilter{
		PortfolioID: &portfolioID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list forecasts for portfolio %s: %w", portfolioID.String(), err)
	}

	out := []domain.SavedForecast{}
	for _, m := range models {
		saved, err := savedForecastFromModel(m)
		if err != nil {
			return nil, err
		}
		out = append(out, *saved)
	}

	return out, nil
}

// BuildForecast resolves each holding's selection against strategies and
// aggregates. Selections for holdings outside the set are ignored; a
// selection naming a strategy that is not in strategies fails with
// ErrStrategyNotFound.
func BuildForecast(
	holdings []domain.Holding,
	strategies []domain.Strategy,
	selections map[uuid.UUID]string,
	basis domain.InvestedBasis,
) (*ForecastResult, error) {
	strategiesByID := map[uuid.UUID]domain.Strategy{}
	for _, s := range strategies {
		strategiesByID[s.StrategyID] = s
	}

	strategyByHoldingID := map[uuid.UUID]*domain.Strategy{}
	warnings := []StrategyWarning{}
	validated := map[uuid.UUID]bool{}
	for _, holding := range holdings {
		strategyID, err := domain.ParseStrategySelection(selections[holding.HoldingID])
		if err != nil {
			return nil, err
		}
		if strategyID == nil {
			continue
		}
		strategy, ok := strategiesByID[*strategyID]
		if !ok {
			return nil, fmt.Errorf("%w: %s (selected for %s)", ErrStrategyNotFound, strategyID.String(), holding.Symbol)
		}
		strategyByHoldingID[holding.HoldingID] = &strategy

		if !validated[strategy.StrategyID] {
			validated[strategy.StrategyID] = true
			for _, e := range calculator.ValidateTargets(strategy.ProfitTargets) {
				warnings = append(warnings, StrategyWarning{
					StrategyID: strategy.StrategyID,
					Message:    e.Error(),
				})
			}
		}
	}

	forecast := calculator.AggregateForecast(holdings, strategyByHoldingID, basis)
	metrics, err := calculator.CalculateForecastMetrics(forecast)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate forecast metrics: %w", err)
	}

	return &ForecastResult{
		Forecast: forecast,
		Metrics:  *metrics,
		Warnings: warnings,
	}, nil
}

// AssignStrategiesBySymbol selects, for each holding, the first strategy
// whose symbol matches the holding's (case-insensitive). Holdings with no
// match get domain.NoStrategySelection.
func AssignStrategiesBySymbol(holdings []domain.Holding, strategies []domain.Strategy) map[uuid.UUID]string {
	out := map[uuid.UUID]string{}
	for _, h := range holdings {
		out[h.HoldingID] = domain.NoStrategySelection
		for _, s := range strategies {
			if strings.EqualFold(s.Symbol, h.Symbol) {
				out[h.HoldingID] = s.StrategyID.String()
				break
			}
		}
	}
	return out
}

func selectedStrategyIDs(selections map[uuid.UUID]string) ([]uuid.UUID, error) {
	seen := map[uuid.UUID]bool{}
	out := []uuid.UUID{}
	for _, selection := range selections {
		id, err := domain.ParseStrategySelection(selection)
		if err != nil {
			return nil, err
		}
		if id == nil || seen[*id] {
			continue
		}
		seen[*id] = true
		out = append(out, *id)
	}
	return out, nil
}

func savedForecastFromModel(m model.Forecast) (*domain.SavedForecast, error) {
	basis, err := domain.NewInvestedBasis(m.InvestedBasis)
	if err != nil {
		return nil, fmt.Errorf("failed to parse forecast %s: %w", m.ForecastID.String(), err)
	}
	return &domain.SavedForecast{
		ForecastID:    m.ForecastID,
		PortfolioID:   m.PortfolioID,
		ForecastName:  m.ForecastName,
		InvestedBasis: *basis,
		Summary: domain.ForecastSummary{
			TotalInvested:        m.TotalInvested,
			TotalCollected:       m.TotalCollected,
			TotalProfit:          m.TotalProfit,
			ReturnPercentage:     m.ReturnPercentage,
			RemainingTokensValue: m.RemainingTokensValue,
			TokenCount:           int(m.TokenCount),
		},
		CreatedAt: m.CreatedAt,
	}, nil
}
