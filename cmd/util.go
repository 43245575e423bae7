package cmd

import (
	"database/sql"
	"fmt"

	"profitplanner/api"
	"profitplanner/internal/repository"
	"profitplanner/internal/service"
	"profitplanner/internal/util"

	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

func CloseDependencies(handler *api.ApiHandler) {
	err := handler.Db.Close()
	if err != nil {
		zap.S().Fatalf("failed to close db: %v", err)
	}
}

func InitializeDb(secrets util.Secrets) (*sql.DB, error) {
	dbConn, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}
	return dbConn, nil
}

func InitializeDependencies() (*api.ApiHandler, *util.Secrets, error) {
	secrets, err := util.LoadSecrets()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	dbConn, err := InitializeDb(*secrets)
	if err != nil {
		return nil, nil, err
	}

	holdingRepository := repository.NewHoldingRepository(dbConn)
	strategyRepository := repository.NewStrategyRepository(dbConn)
	forecastRepository := repository.NewForecastRepository(dbConn)
	apiRequestRepository := repository.NewApiRequestRepository(dbConn)

	forecastService := service.NewForecastService(
		holdingRepository,
		strategyRepository,
		forecastRepository,
	)

	apiHandler := &api.ApiHandler{
		Db:                   dbConn,
		ForecastService:      forecastService,
		ApiRequestRepository: apiRequestRepository,
	}

	return apiHandler, secrets, nil
}
