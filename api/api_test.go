package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"profitplanner/internal/db/models/postgres/public/model"
	"profitplanner/internal/domain"
	mock_repository "profitplanner/internal/repository/mocks"
	"profitplanner/internal/service"
	mock_service "profitplanner/internal/service/mocks"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestHandler(t *testing.T) (*gin.Engine, *mock_service.MockForecastService) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)

	apiRequestRepository := mock_repository.NewMockApiRequestRepository(ctrl)
	apiRequestRepository.EXPECT().
		Add(gomock.Any()).
		Return(&model.APIRequest{RequestID: uuid.New()}, nil).
		AnyTimes()
	apiRequestRepository.EXPECT().
		Update(gomock.Any()).
		Return(nil).
		AnyTimes()

	forecastService := mock_service.NewMockForecastService(ctrl)
	handler := ApiHandler{
		ForecastService:      forecastService,
		ApiRequestRepository: apiRequestRepository,
	}
	return handler.InitializeRouterEngine(), forecastService
}

func doRequest(t *testing.T, engine *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body == nil {
		reader = bytes.NewReader(nil)
	} else {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestSimulate(t *testing.T) {
	engine, _ := newTestHandler(t)

	t.Run("two rungs", func(t *testing.T) {
		w := doRequest(t, engine, http.MethodPost, "/simulate", map[string]any{
			"holding": map[string]any{
				"symbol":       "ETH",
				"quantity":     10,
				"averagePrice": 100,
			},
			"profitTargets": []map[string]any{
				{"order": 2, "targetType": "percentage", "targetValue": 100, "sellPercentage": 50},
				{"order": 1, "targetType": "percentage", "targetValue": 50, "sellPercentage": 50},
			},
		})
		require.Equal(t, 200, w.Code, w.Body.String())

		out := simulateResponse{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
		require.Empty(t, out.Warnings)
		require.Equal(t, 1000.0, out.Result.TotalInvested)
		require.Equal(t, 1250.0, out.Result.TotalCollected)
		require.Equal(t, 500.0, out.Result.TotalProfit)
		require.Equal(t, 50.0, out.Result.ReturnPercentage)
		require.Equal(t, 2.5, out.Result.RemainingTokens)
		require.Equal(t, 250.0, out.Result.RemainingTokensValue)
		require.Equal(t, []LedgerEntryResponse{
			{Order: 1, TargetPrice: 150, TokensSold: 5, AmountCollected: 750, RemainingTokensAfter: 5},
			{Order: 2, TargetPrice: 200, TokensSold: 2.5, AmountCollected: 500, RemainingTokensAfter: 2.5},
		}, out.Result.Ledger)
	})

	t.Run("holding without symbol", func(t *testing.T) {
		w := doRequest(t, engine, http.MethodPost, "/simulate", map[string]any{
			"holding": map[string]any{
				"quantity":       10,
				"averagePrice":   100,
				"currentPrice":   150,
				"investedAmount": 1000,
			},
			"profitTargets": []map[string]any{
				{"order": 1, "targetType": "percentage", "targetValue": 50, "sellPercentage": 40},
			},
		})
		require.Equal(t, 200, w.Code, w.Body.String())

		out := simulateResponse{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
		require.Equal(t, 1000.0, out.Result.TotalInvested)
		require.Equal(t, 600.0, out.Result.TotalCollected)
		require.Equal(t, 500.0, out.Result.TotalProfit)
		require.Equal(t, 50.0, out.Result.ReturnPercentage)
		require.Equal(t, 6.0, out.Result.RemainingTokens)
		require.Equal(t, 900.0, out.Result.RemainingTokensValue)
	})

	t.Run("over-allocation is flagged, not rejected", func(t *testing.T) {
		w := doRequest(t, engine, http.MethodPost, "/simulate", map[string]any{
			"holding": map[string]any{"symbol": "ETH", "quantity": 10, "averagePrice": 100},
			"profitTargets": []map[string]any{
				{"order": 1, "targetType": "price", "targetValue": 200, "sellPercentage": 150},
			},
		})
		require.Equal(t, 200, w.Code, w.Body.String())

		out := simulateResponse{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
		require.NotEmpty(t, out.Warnings)
		require.Equal(t, -5.0, out.Result.RemainingTokens)
	})

	t.Run("unknown target type", func(t *testing.T) {
		w := doRequest(t, engine, http.MethodPost, "/simulate", map[string]any{
			"holding": map[string]any{"symbol": "ETH", "quantity": 1, "averagePrice": 1},
			"profitTargets": []map[string]any{
				{"order": 1, "targetType": "moon", "targetValue": 1, "sellPercentage": 1},
			},
		})
		require.Equal(t, 400, w.Code)
	})

	t.Run("unknown invested basis", func(t *testing.T) {
		w := doRequest(t, engine, http.MethodPost, "/simulate", map[string]any{
			"holding":       map[string]any{"symbol": "ETH", "quantity": 1, "averagePrice": 1},
			"investedBasis": "market",
		})
		require.Equal(t, 400, w.Code)
	})
}

func TestForecast(t *testing.T) {
	engine, _ := newTestHandler(t)
	ethID := uuid.NewString()
	btcID := uuid.NewString()
	strategyID := uuid.NewString()

	holdings := []map[string]any{
		{"holdingId": ethID, "symbol": "ETH", "quantity": 10, "averagePrice": 100},
		{"holdingId": btcID, "symbol": "BTC", "quantity": 1, "averagePrice": 1000, "currentPrice": 5000},
	}
	strategies := []map[string]any{
		{
			"strategyId":   strategyID,
			"strategyName": "eth exit",
			"symbol":       "ETH",
			"kind":         "real",
			"profitTargets": []map[string]any{
				{"order": 1, "targetType": "percentage", "targetValue": 50, "sellPercentage": 100},
				{"order": 2, "targetType": "price", "targetValue": 1, "sellPercentage": 100, "state": "cancelled"},
			},
		},
	}

	t.Run("mixed portfolio", func(t *testing.T) {
		w := doRequest(t, engine, http.MethodPost, "/forecast", map[string]any{
			"holdings":   holdings,
			"strategies": strategies,
			"strategyByHoldingId": map[string]string{
				ethID: strategyID,
				btcID: domain.NoStrategySelection,
			},
		})
		require.Equal(t, 200, w.Code, w.Body.String())

		out := ForecastResponse{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
		require.Equal(t, ForecastSummaryResponse{
			TotalInvested:        2000,
			TotalCollected:       1500,
			TotalProfit:          500,
			ReturnPercentage:     25,
			RemainingTokensValue: 1000,
			TokenCount:           1,
		}, out.Summary)
		require.Len(t, out.Holdings, 2)
		require.NotNil(t, out.Holdings[0].Simulation)
		require.Len(t, out.Holdings[0].Simulation.Ledger, 1)
		require.Nil(t, out.Holdings[1].Simulation)
		require.Equal(t, 50.0, out.Metrics.MaxReturnPercentage)
	})

	t.Run("holding without symbol", func(t *testing.T) {
		holdingID := uuid.NewString()
		w := doRequest(t, engine, http.MethodPost, "/forecast", map[string]any{
			"holdings": []map[string]any{
				{"holdingId": holdingID, "quantity": 2, "averagePrice": 50, "investedAmount": 120},
			},
			"strategyByHoldingId": map[string]string{holdingID: domain.NoStrategySelection},
		})
		require.Equal(t, 200, w.Code, w.Body.String())

		out := ForecastResponse{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
		require.Equal(t, 120.0, out.Summary.TotalInvested)
		require.Equal(t, 120.0, out.Summary.RemainingTokensValue)
		require.Equal(t, 0.0, out.Summary.TotalProfit)
	})

	t.Run("state on a theoretical target is a 400", func(t *testing.T) {
		w := doRequest(t, engine, http.MethodPost, "/forecast", map[string]any{
			"holdings": holdings,
			"strategies": []map[string]any{
				{
					"strategyId": strategyID,
					"symbol":     "ETH",
					"profitTargets": []map[string]any{
						{"order": 1, "targetType": "percentage", "targetValue": 50, "sellPercentage": 100, "state": "triggered"},
					},
				},
			},
			"strategyByHoldingId": map[string]string{ethID: strategyID},
		})
		require.Equal(t, 400, w.Code, w.Body.String())
	})

	t.Run("unknown strategy is a 404", func(t *testing.T) {
		w := doRequest(t, engine, http.MethodPost, "/forecast", map[string]any{
			"holdings":            holdings,
			"strategies":          []map[string]any{},
			"strategyByHoldingId": map[string]string{ethID: strategyID},
		})
		require.Equal(t, 404, w.Code)
	})

	t.Run("bad selection is a 400", func(t *testing.T) {
		w := doRequest(t, engine, http.MethodPost, "/forecast", map[string]any{
			"holdings":            holdings,
			"strategyByHoldingId": map[string]string{ethID: "maybe"},
		})
		require.Equal(t, 400, w.Code)
	})

	t.Run("holding without id", func(t *testing.T) {
		w := doRequest(t, engine, http.MethodPost, "/forecast", map[string]any{
			"holdings": []map[string]any{{"symbol": "ETH", "quantity": 1, "averagePrice": 1}},
		})
		require.Equal(t, 400, w.Code)
	})
}

func TestPortfolioForecast(t *testing.T) {
	portfolioID := uuid.New()
	holdingID := uuid.New()
	strategyID := uuid.New()

	t.Run("forwards the selection", func(t *testing.T) {
		engine, forecastService := newTestHandler(t)
		forecastService.EXPECT().
			Forecast(gomock.Any(), service.ForecastInput{
				PortfolioID:        portfolioID,
				StrategySelections: map[uuid.UUID]string{holdingID: strategyID.String()},
				InvestedBasis:      domain.InvestedBasis_Recorded,
			}).
			Return(&service.ForecastResult{
				Forecast: domain.Forecast{
					Summary: domain.ForecastSummary{
						TotalInvested: decimal.NewFromInt(100),
						TokenCount:    1,
					},
				},
			}, nil)

		w := doRequest(t, engine, http.MethodPost, "/portfolios/"+portfolioID.String()+"/forecast", map[string]any{
			"strategyByHoldingId": map[string]string{holdingID.String(): strategyID.String()},
			"investedBasis":       "recorded",
		})
		require.Equal(t, 200, w.Code, w.Body.String())

		out := ForecastResponse{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
		require.Equal(t, 100.0, out.Summary.TotalInvested)
		require.Equal(t, 1, out.Summary.TokenCount)
	})

	t.Run("service error", func(t *testing.T) {
		engine, forecastService := newTestHandler(t)
		forecastService.EXPECT().
			Forecast(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("db down"))

		w := doRequest(t, engine, http.MethodPost, "/portfolios/"+portfolioID.String()+"/forecast", map[string]any{})
		require.Equal(t, 500, w.Code)
	})

	t.Run("bad portfolio id", func(t *testing.T) {
		engine, _ := newTestHandler(t)
		w := doRequest(t, engine, http.MethodPost, "/portfolios/abc/forecast", map[string]any{})
		require.Equal(t, 400, w.Code)
	})
}

func TestSaveAndListForecasts(t *testing.T) {
	portfolioID := uuid.New()
	saved := domain.SavedForecast{
		ForecastID:    uuid.New(),
		PortfolioID:   portfolioID,
		ForecastName:  "base case",
		InvestedBasis: domain.InvestedBasis_CostBasis,
		Summary: domain.ForecastSummary{
			TotalInvested:    decimal.NewFromInt(1000),
			TotalProfit:      decimal.NewFromInt(500),
			ReturnPercentage: decimal.NewFromInt(50),
		},
		CreatedAt: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	t.Run("save", func(t *testing.T) {
		engine, forecastService := newTestHandler(t)
		forecastService.EXPECT().
			SaveForecast(gomock.Any(), service.SaveForecastInput{
				ForecastInput: service.ForecastInput{
					PortfolioID:        portfolioID,
					StrategySelections: map[uuid.UUID]string{},
					InvestedBasis:      domain.InvestedBasis_CostBasis,
				},
				ForecastName: "base case",
			}).
			Return(&saved, nil)

		w := doRequest(t, engine, http.MethodPost, "/portfolios/"+portfolioID.String()+"/forecasts", map[string]any{
			"forecastName": "base case",
		})
		require.Equal(t, 200, w.Code, w.Body.String())

		out := SavedForecastResponse{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
		require.Equal(t, saved.ForecastID.String(), out.ForecastID)
		require.Equal(t, "cost_basis", out.InvestedBasis)
		require.Equal(t, "2024-03-01T12:00:00Z", out.CreatedAt)
		require.Equal(t, 50.0, out.Summary.ReturnPercentage)
	})

	t.Run("save requires a name", func(t *testing.T) {
		engine, _ := newTestHandler(t)
		w := doRequest(t, engine, http.MethodPost, "/portfolios/"+portfolioID.String()+"/forecasts", map[string]any{})
		require.Equal(t, 400, w.Code)

		w = doRequest(t, engine, http.MethodPost, "/portfolios/"+portfolioID.String()+"/forecasts", map[string]any{
			"forecastName": "   ",
		})
		require.Equal(t, 400, w.Code)
	})

	t.Run("missing name from the service is a 400", func(t *testing.T) {
		engine, forecastService := newTestHandler(t)
		forecastService.EXPECT().
			SaveForecast(gomock.Any(), gomock.Any()).
			Return(nil, service.ErrForecastNameRequired)

		w := doRequest(t, engine, http.MethodPost, "/portfolios/"+portfolioID.String()+"/forecasts", map[string]any{
			"forecastName": "base case",
		})
		require.Equal(t, 400, w.Code)
	})

	t.Run("list", func(t *testing.T) {
		engine, forecastService := newTestHandler(t)
		forecastService.EXPECT().
			ListForecasts(gomock.Any(), portfolioID).
			Return([]domain.SavedForecast{saved}, nil)

		w := doRequest(t, engine, http.MethodGet, "/portfolios/"+portfolioID.String()+"/forecasts", nil)
		require.Equal(t, 200, w.Code, w.Body.String())

		out := []SavedForecastResponse{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
		require.Len(t, out, 1)
		require.Equal(t, "base case", out[0].ForecastName)
	})
}
