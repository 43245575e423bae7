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

type HoldingRepository interface {
	Add(tx *sql.Tx, h model.Holding) (*model.Holding, error)
	List(HoldingListFilter) ([]domain.Holding, error)
}

type holdingRepositoryHandler struct {
	Db *sql.DB
}

func NewHoldingRepository(db *sql.DB) HoldingRepository {
	return holdingRepositoryHandler{Db: db}
}

func (h holdingRepositoryHandler) Add(tx *sql.Tx, m model.Holding) (*model.Holding, error) {
	if m.HoldingID == uuid.Nil {
		m.HoldingID = uuid.New()
	}
	m.CreatedAt = time.Now().UTC()
	m.ModifiedAt = time.Now().UTC()
	query := table.Holding.
		INSERT(table.Holding.AllColumns).
		MODEL(m).
		RETURNING(table.Holding.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}
	out := model.Holding{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert holding: %w", err)
	}

	return &out, nil
}

type HoldingListFilter struct {
	PortfolioID *uuid.UUID
	HoldingIDs  []uuid.UUID
}

func (h holdingRepositoryHandler) List(filter HoldingListFilter) ([]domain.Holding, error) {
	query := table.Holding.
		SELECT(table.Holding.AllColumns).
		ORDER_BY(table.Holding.Symbol.ASC(), table.Holding.CreatedAt.ASC())

	whereClauses := []postgres.BoolExpression{}
	if filter.PortfolioID != nil {
		whereClauses = append(whereClauses,
			table.Holding.PortfolioID.EQ(postgres.UUID(*filter.PortfolioID)),
		)
	}
	if len(filter.HoldingIDs) > 0 {
		ids := []postgres.Expression{}
		for _, id := range filter.HoldingIDs {
			ids = append(ids, postgres.UUID(id))
		}
		whereClauses = append(whereClauses, table.Holding.HoldingID.IN(ids...))
	}
	if len(whereClauses) > 0 {
		query = query.WHERE(postgres.AND(whereClauses...))
	}

	result := []model.Holding{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list holdings: %w", err)
	}

	out := []domain.Holding{}
	for _, m := range result {
		out = append(out, holdingFromModel(m))
	}

	return out, nil
}

func holdingFromModel(m model.Holding) domain.Holding {
	return domain.Holding{
		HoldingID:      m.HoldingID,
		PortfolioID:    m.PortfolioID,
		Symbol:         m.Symbol,
		Quantity:       m.Quantity,
		AveragePrice:   m.AveragePrice,
		CurrentPrice:   m.CurrentPrice,
		InvestedAmount: m.InvestedAmount,
	}
}
