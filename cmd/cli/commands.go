package main

import (
	"context"
	"fmt"
	"strings"

	"profitplanner/api"
	"profitplanner/cmd"
	"profitplanner/internal/calculator"
	"profitplanner/internal/db/models/postgres/public/model"
	"profitplanner/internal/domain"
	"profitplanner/internal/logger"
	"profitplanner/internal/repository"
	"profitplanner/internal/service"
	"profitplanner/internal/util"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "profitplanner",
		Short: "Project profit-taking strategies over token holdings",
	}

	rootCmd.AddCommand(newSimulateCmd())
	rootCmd.AddCommand(newForecastCmd())
	rootCmd.AddCommand(newImportCmd())

	return rootCmd
}

type simulateOutput struct {
	Symbol     string                       `json:"symbol"`
	StrategyID string                       `json:"strategyId"`
	Result     api.SimulationResultResponse `json:"result"`
	Warnings   []string                     `json:"warnings"`
}

func newSimulateCmd() *cobra.Command {
	var (
		holding        api.HoldingJson
		currentPrice   float64
		investedAmount float64
		strategiesPath string
		strategyID     string
		basis          string
	)

	c := &cobra.Command{
		Use:   "simulate",
		Short: "Run one strategy against one holding",
		Example: `profitplanner simulate --symbol ETH --quantity 10 --average-price 100 \
  --strategies strategies.json`,
		RunE: func(c *cobra.Command, args []string) error {
			if c.Flags().Changed("current-price") {
				holding.CurrentPrice = &currentPrice
			}
			if c.Flags().Changed("invested-amount") {
				holding.InvestedAmount = &investedAmount
			}
			h, err := holding.ToDomain()
			if err != nil {
				return err
			}
			investedBasis, err := domain.NewInvestedBasis(basis)
			if err != nil {
				return err
			}

			raw, err := readStrategiesJson(strategiesPath)
			if err != nil {
				return err
			}
			strategies, err := normalizeStrategies(raw)
			if err != nil {
				return err
			}
			strategy, err := pickStrategy(strategies, strategyID, h.Symbol)
			if err != nil {
				return err
			}

			warnings := []string{}
			for _, e := range calculator.ValidateTargets(strategy.ProfitTargets) {
				warnings = append(warnings, e.Error())
			}
			result := calculator.Simulate(*h, strategy.ProfitTargets, *investedBasis)

			util.Pprint(simulateOutput{
				Symbol:     h.Symbol,
				StrategyID: strategy.StrategyID.String(),
				Result:     api.NewSimulationResultResponse(result),
				Warnings:   warnings,
			})
			return nil
		},
	}

	c.Flags().StringVar(&holding.Symbol, "symbol", "", "token symbol")
	c.Flags().Float64Var(&holding.Quantity, "quantity", 0, "tokens held")
	c.Flags().Float64Var(&holding.AveragePrice, "average-price", 0, "average purchase price")
	c.Flags().Float64Var(&currentPrice, "current-price", 0, "latest market price, defaults to the average price")
	c.Flags().Float64Var(&investedAmount, "invested-amount", 0, "recorded invested amount, defaults to quantity * average price")
	c.Flags().StringVar(&strategiesPath, "strategies", "", "strategies json file")
	c.Flags().StringVar(&strategyID, "strategy-id", "", "strategy to run, defaults to the first one matching the symbol")
	c.Flags().StringVar(&basis, "basis", string(domain.InvestedBasis_CostBasis), "invested basis: cost_basis or recorded")
	c.MarkFlagRequired("symbol")
	c.MarkFlagRequired("strategies")

	return c
}

func pickStrategy(strategies []domain.Strategy, strategyID string, symbol string) (*domain.Strategy, error) {
	for _, s := range strategies {
		if strategyID != "" && s.StrategyID.String() == strategyID {
			return &s, nil
		}
		if strategyID == "" && strings.EqualFold(s.Symbol, symbol) {
			return &s, nil
		}
	}
	if strategyID != "" {
		return nil, fmt.Errorf("%w: %s", service.ErrStrategyNotFound, strategyID)
	}
	return nil, fmt.Errorf("%w: none for symbol %s", service.ErrStrategyNotFound, symbol)
}

func newForecastCmd() *cobra.Command {
	var (
		holdingsPath   string
		strategiesPath string
		basis          string
	)

	c := &cobra.Command{
		Use:   "forecast",
		Short: "Forecast a portfolio, applying each strategy to the holdings with its symbol",
		RunE: func(c *cobra.Command, args []string) error {
			investedBasis, err := domain.NewInvestedBasis(basis)
			if err != nil {
				return err
			}
			holdings, err := readHoldingsCsv(holdingsPath)
			if err != nil {
				return err
			}
			raw, err := readStrategiesJson(strategiesPath)
			if err != nil {
				return err
			}
			strategies, err := normalizeStrategies(raw)
			if err != nil {
				return err
			}

			selections := service.AssignStrategiesBySymbol(holdings, strategies)
			result, err := service.BuildForecast(holdings, strategies, selections, *investedBasis)
			if err != nil {
				return err
			}

			util.Pprint(api.NewForecastResponse(*result))
			return nil
		},
	}

	c.Flags().StringVar(&holdingsPath, "holdings", "", "holdings csv file")
	c.Flags().StringVar(&strategiesPath, "strategies", "", "strategies json file")
	c.Flags().StringVar(&basis, "basis", string(domain.InvestedBasis_CostBasis), "invested basis: cost_basis or recorded")
	c.MarkFlagRequired("holdings")
	c.MarkFlagRequired("strategies")

	return c
}

func newImportCmd() *cobra.Command {
	var (
		portfolioID    string
		holdingsPath   string
		strategiesPath string
	)

	c := &cobra.Command{
		Use:   "import",
		Short: "Load a portfolio's holdings and strategies into the database",
		RunE: func(c *cobra.Command, args []string) error {
			lg := logger.FromContext(context.Background())

			id, err := uuid.Parse(portfolioID)
			if err != nil {
				return fmt.Errorf("invalid portfolio id: %w", err)
			}
			holdings, err := readHoldingsCsv(holdingsPath)
			if err != nil {
				return err
			}
			strategies := []api.StrategyJson{}
			if strategiesPath != "" {
				strategies, err = readStrategiesJson(strategiesPath)
				if err != nil {
					return err
				}
			}

			secrets, err := util.LoadSecrets()
			if err != nil {
				return fmt.Errorf("failed to load secrets: %w", err)
			}
			db, err := cmd.InitializeDb(*secrets)
			if err != nil {
				return err
			}
			defer db.Close()

			holdingRepository := repository.NewHoldingRepository(db)
			strategyRepository := repository.NewStrategyRepository(db)

			tx, err := db.Begin()
			if err != nil {
				return err
			}
			defer tx.Rollback()

			for _, h := range holdings {
				_, err = holdingRepository.Add(tx, holdingToModel(id, h))
				if err != nil {
					return err
				}
			}
			for _, sj := range strategies {
				s, targets, err := strategyToModel(sj)
				if err != nil {
					return err
				}
				_, err = strategyRepository.Add(tx, *s, targets)
				if err != nil {
					return err
				}
			}

			err = tx.Commit()
			if err != nil {
				return fmt.Errorf("failed to commit import: %w", err)
			}

			lg.Infow("imported portfolio",
				"portfolioID", id.String(),
				"holdings", len(holdings),
				"strategies", len(strategies),
			)
			return nil
		},
	}

	c.Flags().StringVar(&portfolioID, "portfolio-id", "", "portfolio the holdings belong to")
	c.Flags().StringVar(&holdingsPath, "holdings", "", "holdings csv file")
	c.Flags().StringVar(&strategiesPath, "strategies", "", "strategies json file")
	c.MarkFlagRequired("portfolio-id")
	c.MarkFlagRequired("holdings")

	return c
}

func holdingToModel(portfolioID uuid.UUID, h domain.Holding) model.Holding {
	return model.Holding{
		HoldingID:      h.HoldingID,
		PortfolioID:    portfolioID,
		Symbol:         h.Symbol,
		Quantity:       h.Quantity,
		AveragePrice:   h.AveragePrice,
		CurrentPrice:   h.CurrentPrice,
		InvestedAmount: h.InvestedAmount,
	}
}

// strategyToModel keeps the stored representation: real strategies keep
// their cancelled steps and per-step state.
func strategyToModel(sj api.StrategyJson) (*model.Strategy, []model.ProfitTarget, error) {
	strategyID, err := uuid.Parse(sj.StrategyID)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid strategy id '%s': %w", sj.StrategyID, err)
	}

	kind := model.StrategyKind_Theoretical
	if strings.EqualFold(sj.Kind, string(model.StrategyKind_Real)) {
		kind = model.StrategyKind_Real
	} else if sj.Kind != "" && !strings.EqualFold(sj.Kind, string(model.StrategyKind_Theoretical)) {
		return nil, nil, fmt.Errorf("strategy %s: unknown kind '%s'", sj.StrategyID, sj.Kind)
	}

	targets := []model.ProfitTarget{}
	for _, t := range sj.ProfitTargets {
		target, err := t.ToDomain()
		if err != nil {
			return nil, nil, fmt.Errorf("strategy %s: %w", sj.StrategyID, err)
		}
		m := model.ProfitTarget{
			ProfitTargetID: uuid.New(),
			TargetOrder:    int32(target.Order),
			TargetType:     repository.TargetTypeToModel(target.TargetType),
			TargetValue:    target.TargetValue,
			SellPercentage: target.SellPercentage,
		}
		if kind != model.StrategyKind_Real && t.State != "" {
			return nil, nil, fmt.Errorf("strategy %s: target %d has a state but the strategy is theoretical", sj.StrategyID, t.Order)
		}
		if kind == model.StrategyKind_Real {
			state := domain.StepState_Pending
			if t.State != "" {
				parsed, err := domain.NewStepState(t.State)
				if err != nil {
					return nil, nil, fmt.Errorf("strategy %s: %w", sj.StrategyID, err)
				}
				state = *parsed
			}
			m.StepState = util.StringPointer(string(state))
		}
		targets = append(targets, m)
	}

	return &model.Strategy{
		StrategyID:            strategyID,
		StrategyName:          sj.StrategyName,
		Symbol:                sj.Symbol,
		StrategyKind:          kind,
		ReferenceQuantity:     decimal.NewFromFloat(sj.Quantity),
		ReferenceAveragePrice: decimal.NewFromFloat(sj.AveragePrice),
	}, targets, nil
}
