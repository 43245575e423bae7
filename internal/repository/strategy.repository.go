package repository

import (
	"database/sql"
	"fmt"
	"time"

	"profitplanner/internal/db/models/postgres/public/model"
	"profitplanner/internal/db/models/postgres/public/table"
	"profitplanner/internal/domain"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

type StrategyRepository interface {
	Add(tx *sql.Tx, s model.Strategy, targets []model.ProfitTarget) (*model.Strategy, error)
	ListWithTargets(ids []uuid.UUID) ([]domain.Strategy, error)
}

type strategyRepositoryHandler struct {
	Db *sql.DB
}

func NewStrategyRepository(db *sql.DB) StrategyRepository {
	return strategyRepositoryHandler{db}
}

// Add inserts the strategy and its targets. targets are re-pointed at
// the strategy id.
func (h strategyRepositoryHandler) Add(tx *sql.Tx, m model.Strategy, targets []model.ProfitTarget) (*model.Strategy, error) {
	if m.StrategyID == uuid.Nil {
		m.StrategyID = uuid.New()
	}
	m.CreatedAt = time.Now().UTC()
	m.ModifiedAt = time.Now().UTC()

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	query := table.Strategy.
		INSERT(table.Strategy.AllColumns).
		MODEL(m).
		RETURNING(table.Strategy.AllColumns)

	out := model.Strategy{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert strategy: %w", err)
	}

	if len(targets) == 0 {
		return &out, nil
	}

	for i := range targets {
		if targets[i].ProfitTargetID == uuid.Nil {
			targets[i].ProfitTargetID = uuid.New()
		}
		targets[i].StrategyID = out.StrategyID
		targets[i].CreatedAt = out.CreatedAt
	}
	targetQuery := table.ProfitTarget.
		INSERT(table.ProfitTarget.AllColumns).
		MODELS(targets).
		RETURNING(table.ProfitTarget.AllColumns)

	insertedTargets := []model.ProfitTarget{}
	err = targetQuery.Query(db, &insertedTargets)
	if err != nil {
		return nil, fmt.Errorf("failed to insert profit targets for strategy %s: %w", out.StrategyID.String(), err)
	}

	return &out, nil
}

type strategyWithTargets struct {
	model.Strategy
	ProfitTargets []model.ProfitTarget
}

func (h strategyRepositoryHandler) ListWithTargets(ids []uuid.UUID) ([]domain.Strategy, error) {
	if len(ids) == 0 {
		return []domain.Strategy{}, nil
	}

	idExpressions := []postgres.Expression{}
	for _, id := range ids {
		idExpressions = append(idExpressions, postgres.UUID(id))
	}

	query := postgres.SELECT(
		table.Strategy.AllColumns,
		table.ProfitTarget.AllColumns,
	).FROM(
		table.Strategy.LEFT_JOIN(
			table.ProfitTarget,
			table.ProfitTarget.StrategyID.EQ(table.Strategy.StrategyID),
		),
	).WHERE(
		table.Strategy.StrategyID.IN(idExpressions...),
	).ORDER_BY(
		table.Strategy.CreatedAt.ASC(),
		table.ProfitTarget.TargetOrder.ASC(),
	)

	result := []strategyWithTargets{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list strategies with targets: %w", err)
	}

	out := []domain.Strategy{}
	for _, s := range result {
		strategy, err := strategyFromModel(s.Strategy, s.ProfitTargets)
		if err != nil {
			return nil, err
		}
		out = append(out, *strategy)
	}

	return out, nil
}

// strategyFromModel rebuilds the stored representation of a strategy
// and normalizes it.
func strategyFromModel(s model.Strategy, targets []model.ProfitTarget) (*domain.Strategy, error) {
	var source domain.ProfitTargetSource
	switch s.StrategyKind {
	case model.StrategyKind_Theoretical:
		profitTargets := []domain.ProfitTarget{}
		for _, t := range targets {
			profitTargets = append(profitTargets, domain.ProfitTarget{
				Order:          int(t.TargetOrder),
				TargetType:     targetTypeFromModel(t.TargetType),
				TargetValue:    t.TargetValue,
				SellPercentage: t.SellPercentage,
			})
		}
		source = domain.TheoreticalStrategy{
			StrategyID:    s.StrategyID,
			StrategyName:  s.StrategyName,
			TokenSymbol:   s.Symbol,
			TokenQuantity: s.ReferenceQuantity,
			AveragePrice:  s.ReferenceAveragePrice,
			ProfitTargets: profitTargets,
		}
	case model.StrategyKind_Real:
		steps := []domain.StrategyStep{}
		for _, t := range targets {
			state := domain.StepState_Pending
			if t.StepState != nil {
				parsed, err := domain.NewStepState(*t.StepState)
				if err != nil {
					return nil, fmt.Errorf("failed to parse step %d of strategy %s: %w", t.TargetOrder, s.StrategyID.String(), err)
				}
				state = *parsed
			}
			steps = append(steps, domain.StrategyStep{
				Order:          int(t.TargetOrder),
				TargetType:     targetTypeFromModel(t.TargetType),
				TargetValue:    t.TargetValue,
				SellPercentage: t.SellPercentage,
				State:          state,
			})
		}
		source = domain.RealStrategy{
			StrategyID:   s.StrategyID,
			StrategyName: s.StrategyName,
			Symbol:       s.Symbol,
			Quantity:     s.ReferenceQuantity,
			AveragePrice: s.ReferenceAveragePrice,
			Steps:        steps,
		}
	default:
		return nil, fmt.Errorf("unknown strategy kind '%s' for strategy %s", s.StrategyKind, s.StrategyID.String())
	}

	out := source.Normalize()
	return &out, nil
}

func targetTypeFromModel(t model.ProfitTargetType) domain.TargetType {
	if t == model.ProfitTargetType_Percentage {
		return domain.TargetType_PercentageOfAverage
	}
	return domain.TargetType_ExactPrice
}

func TargetTypeToModel(t domain.TargetType) model.ProfitTargetType {
	if t == domain.TargetType_PercentageOfAverage {
		return model.ProfitTargetType_Percentage
	}
	return model.ProfitTargetType_Price
}
