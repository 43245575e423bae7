package domain

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// NoStrategySelection is what the portfolio view sends for a holding
// that has no strategy applied.
const NoStrategySelection = "none"

// ParseStrategySelection returns nil for NoStrategySelection (or an
// empty selection) and the strategy id otherwise.
func ParseStrategySelection(s string) (*uuid.UUID, error) {
	if s == "" || s == NoStrategySelection {
		return nil, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("invalid strategy selection '%s': %w", s, err)
	}
	return &id, nil
}

// Strategy is the normalized shape the calculator works on, whichever
// representation produced it.
type Strategy struct {
	StrategyID    uuid.UUID
	StrategyName  string
	Symbol        string
	ProfitTargets []ProfitTarget
}

// ProfitTargetSource is implemented by every strategy representation
// the rest of the system stores.
type ProfitTargetSource interface {
	Normalize() Strategy
}

// TheoreticalStrategy is a plan drawn up against a reference position,
// independent of any real holding.
type TheoreticalStrategy struct {
	StrategyID    uuid.UUID
	StrategyName  string
	TokenSymbol   string
	TokenQuantity decimal.Decimal
	AveragePrice  decimal.Decimal
	ProfitTargets []ProfitTarget
}

func (s TheoreticalStrategy) Normalize() Strategy {
	return Strategy{
		StrategyID:    s.StrategyID,
		StrategyName:  s.StrategyName,
		Symbol:        s.TokenSymbol,
		ProfitTargets: renumber(s.ProfitTargets),
	}
}

type StepState string

const (
	StepState_Pending   StepState = "pending"
	StepState_Triggered StepState = "triggered"
	StepState_Cancelled StepState = "cancelled"
)

func NewStepState(s string) (*StepState, error) {
	return parseEnum(s, "step state", map[string]StepState{
		"PENDING":   StepState_Pending,
		"TRIGGERED": StepState_Triggered,
		"CANCELLED": StepState_Cancelled,
	})
}

// StrategyStep is a rung of a RealStrategy. Unlike a ProfitTarget it
// tracks whether the sell already happened.
type StrategyStep struct {
	Order          int
	TargetType     TargetType
	TargetValue    decimal.Decimal
	SellPercentage decimal.Decimal
	State          StepState
}

// RealStrategy is attached to an actual position and executed step by
// step.
type RealStrategy struct {
	StrategyID   uuid.UUID
	StrategyName string
	Symbol       string
	Quantity     decimal.Decimal
	AveragePrice decimal.Decimal
	Steps        []StrategyStep
}

// Normalize drops cancelled steps. Triggered steps stay in so the
// forecast covers the whole plan.
func (s RealStrategy) Normalize() Strategy {
	targets := []ProfitTarget{}
	for _, step := range s.Steps {
		if step.State == StepState_Cancelled {
			continue
		}
		targets = append(targets, ProfitTarget{
			Order:          step.Order,
			TargetType:     step.TargetType,
			TargetValue:    step.TargetValue,
			SellPercentage: step.SellPercentage,
		})
	}
	return Strategy{
		StrategyID:    s.StrategyID,
		StrategyName:  s.StrategyName,
		Symbol:        s.Symbol,
		ProfitTargets: renumber(targets),
	}
}

// renumber returns a copy of targets sorted by order and numbered 1..N.
func renumber(targets []ProfitTarget) []ProfitTarget {
	out := make([]ProfitTarget, len(targets))
	copy(out, targets)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Order < out[j].Order
	})
	for i := range out {
		out[i].Order = i + 1
	}
	return out
}
