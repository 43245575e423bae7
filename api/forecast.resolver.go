package api

import (
	"errors"

	"profitplanner/internal/domain"
	"profitplanner/internal/service"

	"github.com/gin-gonic/gin"
)

type forecastRequest struct {
	Holdings   []HoldingJson  `json:"holdings"`
	Strategies []StrategyJson `json:"strategies"`
	// holding id -> strategy id or "none"
	StrategyByHoldingID map[string]string `json:"strategyByHoldingId"`
	InvestedBasis       string            `json:"investedBasis"`
}

// forecast runs against the holdings and strategies in the request
// body, nothing is read from the database.
func (h ApiHandler) forecast(c *gin.Context) {
	var requestBody forecastRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	holdings := []domain.Holding{}
	for _, hj := range requestBody.Holdings {
		if hj.HoldingID == "" {
			returnErrorJsonCode(errors.New("every holding needs a holdingId"), c, 400)
			return
		}
		holding, err := hj.ToDomain()
		if err != nil {
			returnErrorJsonCode(err, c, 400)
			return
		}
		holdings = append(holdings, *holding)
	}

	strategies := []domain.Strategy{}
	for _, sj := range requestBody.Strategies {
		strategy, err := sj.ToDomain()
		if err != nil {
			returnErrorJsonCode(err, c, 400)
			return
		}
		strategies = append(strategies, *strategy)
	}

	selections, err := parseStrategySelections(requestBody.StrategyByHoldingID)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	basis, err := parseInvestedBasis(requestBody.InvestedBasis)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	result, err := service.BuildForecast(holdings, strategies, selections, *basis)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, NewForecastResponse(*result))
}
