package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"profitplanner/api"
	"profitplanner/internal/domain"

	"github.com/gocarina/gocsv"
)

// holdingRow is one line of a holdings CSV. Blank optional columns stay
// nil.
type holdingRow struct {
	HoldingID      string   `csv:"holding_id"`
	Symbol         string   `csv:"symbol"`
	Quantity       float64  `csv:"quantity"`
	AveragePrice   float64  `csv:"average_price"`
	CurrentPrice   *float64 `csv:"current_price,omitempty"`
	InvestedAmount *float64 `csv:"invested_amount,omitempty"`
}

func (r holdingRow) toJson() api.HoldingJson {
	return api.HoldingJson{
		HoldingID:      r.HoldingID,
		Symbol:         r.Symbol,
		Quantity:       r.Quantity,
		AveragePrice:   r.AveragePrice,
		CurrentPrice:   r.CurrentPrice,
		InvestedAmount: r.InvestedAmount,
	}
}

func readHoldingsCsv(path string) ([]domain.Holding, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	rows := []holdingRow{}
	err = gocsv.UnmarshalFile(f, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to parse holdings csv %s: %w", path, err)
	}

	out := []domain.Holding{}
	for i, row := range rows {
		if strings.TrimSpace(row.Symbol) == "" {
			return nil, fmt.Errorf("holdings csv row %d has no symbol", i+1)
		}
		h, err := row.toJson().ToDomain()
		if err != nil {
			return nil, fmt.Errorf("holdings csv row %d: %w", i+1, err)
		}
		out = append(out, *h)
	}

	return out, nil
}

func readStrategiesJson(path string) ([]api.StrategyJson, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	out := []api.StrategyJson{}
	err = json.Unmarshal(b, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to parse strategies json %s: %w", path, err)
	}

	return out, nil
}

func normalizeStrategies(in []api.StrategyJson) ([]domain.Strategy, error) {
	out := []domain.Strategy{}
	for _, sj := range in {
		s, err := sj.ToDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, *s)
	}
	return out, nil
}
