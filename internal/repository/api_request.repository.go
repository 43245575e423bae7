package repository

import (
	"database/sql"
	"fmt"

	"profitplanner/internal/db/models/postgres/public/model"
	"profitplanner/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/google/uuid"
)

type ApiRequestRepository interface {
	Add(ar model.APIRequest) (*model.APIRequest, error)
	Update(ar model.APIRequest) error
}

type apiRequestRepositoryHandler struct {
	Db *sql.DB
}

func NewApiRequestRepository(db *sql.DB) ApiRequestRepository {
	return apiRequestRepositoryHandler{Db: db}
}

func (h apiRequestRepositoryHandler) Add(ar model.APIRequest) (*model.APIRequest, error) {
	ar.RequestID = uuid.New()

	query := table.APIRequest.
		INSERT(table.APIRequest.AllColumns).
		MODEL(ar).
		RETURNING(table.APIRequest.AllColumns)

	out := &model.APIRequest{}
	err := query.Query(h.Db, out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert API request: %w", err)
	}

	return out, nil
}

func (h apiRequestRepositoryHandler) Update(ar model.APIRequest) error {
	query := table.APIRequest.
		UPDATE(table.APIRequest.DurationMs, table.APIRequest.StatusCode, table.APIRequest.ResponseBody).
		MODEL(ar).
		WHERE(table.APIRequest.RequestID.EQ(postgres.UUID(ar.RequestID)))

	_, err := query.Exec(h.Db)
	if err != nil {
		return fmt.Errorf("failed to update API request: %w", err)
	}

	return nil
}
