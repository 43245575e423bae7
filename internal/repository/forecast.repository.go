package repository

import (
	"database/sql"
	"fmt"
	"time"

	"profitplanner/internal/db/models/postgres/public/model"
	"profitplanner/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

type ForecastRepository interface {
	Add(tx *sql.Tx, f model.Forecast) (*model.Forecast, error)
	List(ForecastListFilter) ([]model.Forecast, error)
}

type forecastRepositoryHandler struct {
	Db *sql.DB
}

func NewForecastRepository(db *sql.DB) ForecastRepository {
	return forecastRepositoryHandler{Db: db}
}

func (h forecastRepositoryHandler) Add(tx *sql.Tx, f model.Forecast) (*model.Forecast, error) {
	f.ForecastID = uuid.New()
	f.CreatedAt = time.Now().UTC()
	query := table.Forecast.
		INSERT(table.Forecast.AllColumns).
		MODEL(f).
		RETURNING(table.Forecast.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}
	out := model.Forecast{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert forecast: %w", err)
	}

	return &out, nil
}

type ForecastListFilter struct {
	PortfolioID *uuid.UUID
	Limit       *int64
}

// List returns newest first.
func (h forecastRepositoryHandler) List(filter ForecastListFilter) ([]model.Forecast, error) {
	query := table.Forecast.
		SELECT(table.Forecast.AllColumns).
		ORDER_BY(table.Forecast.CreatedAt.DESC())

	if filter.PortfolioID != nil {
		query = query.WHERE(table.Forecast.PortfolioID.EQ(postgres.UUID(*filter.PortfolioID)))
	}
	if filter.Limit != nil {
		query = query.LIMIT(*filter.Limit)
	}

	result := []model.Forecast{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list forecasts: %w", err)
	}

	return result, nil
}
