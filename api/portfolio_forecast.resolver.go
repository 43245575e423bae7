package api

import (
	"fmt"
	"strings"

	"profitplanner/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type portfolioForecastRequest struct {
	StrategyByHoldingID map[string]string `json:"strategyByHoldingId"`
	InvestedBasis       string            `json:"investedBasis"`
}

type saveForecastRequest struct {
	portfolioForecastRequest
	ForecastName string `json:"forecastName"`
}

func portfolioIDParam(c *gin.Context) (*uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("portfolioID"))
	if err != nil {
		return nil, fmt.Errorf("invalid portfolio id '%s': %w", c.Param("portfolioID"), err)
	}
	return &id, nil
}

func (r portfolioForecastRequest) toInput(portfolioID uuid.UUID) (*service.ForecastInput, error) {
	selections, err := parseStrategySelections(r.StrategyByHoldingID)
	if err != nil {
		return nil, err
	}
	basis, err := parseInvestedBasis(r.InvestedBasis)
	if err != nil {
		return nil, err
	}
	return &service.ForecastInput{
		PortfolioID:        portfolioID,
		StrategySelections: selections,
		InvestedBasis:      *basis,
	}, nil
}

func (h ApiHandler) portfolioForecast(c *gin.Context) {
	portfolioID, err := portfolioIDParam(c)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	var requestBody portfolioForecastRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	in, err := requestBody.toInput(*portfolioID)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	ctx, endProfile := profiledContext(c)
	defer endProfile()

	result, err := h.ForecastService.Forecast(ctx, *in)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, NewForecastResponse(*result))
}

func (h ApiHandler) saveForecast(c *gin.Context) {
	portfolioID, err := portfolioIDParam(c)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	var requestBody saveForecastRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	if strings.TrimSpace(requestBody.ForecastName) == "" {
		returnErrorJsonCode(fmt.Errorf("forecastName is required"), c, 400)
		return
	}
	in, err := requestBody.toInput(*portfolioID)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	ctx, endProfile := profiledContext(c)
	defer endProfile()

	saved, err := h.ForecastService.SaveForecast(ctx, service.SaveForecastInput{
		ForecastInput: *in,
		ForecastName:  requestBody.ForecastName,
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, savedForecastToResponse(*saved))
}

func (h ApiHandler) listForecasts(c *gin.Context) {
	portfolioID, err := portfolioIDParam(c)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	forecasts, err := h.ForecastService.ListForecasts(c.Request.Context(), *portfolioID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := []SavedForecastResponse{}
	for _, f := range forecasts {
		out = append(out, savedForecastToResponse(f))
	}

	c.JSON(200, out)
}
