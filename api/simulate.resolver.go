package api

import (
	"profitplanner/internal/calculator"

	"github.com/gin-gonic/gin"
)

type simulateRequest struct {
	Holding       HoldingJson        `json:"holding"`
	ProfitTargets []ProfitTargetJson `json:"profitTargets"`
	// cost_basis (default) or recorded
	InvestedBasis string `json:"investedBasis"`
}

type simulateResponse struct {
	Result   SimulationResultResponse `json:"result"`
	Warnings []string                 `json:"warnings"`
}

func (h ApiHandler) simulate(c *gin.Context) {
	var requestBody simulateRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	holding, err := requestBody.Holding.ToDomain()
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	targets, err := profitTargetsToDomain(requestBody.ProfitTargets)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	basis, err := parseInvestedBasis(requestBody.InvestedBasis)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	warnings := []string{}
	for _, e := range calculator.ValidateTargets(targets) {
		warnings = append(warnings, e.Error())
	}

	result := calculator.Simulate(*holding, targets, *basis)

	c.JSON(200, simulateResponse{
		Result:   NewSimulationResultResponse(result),
		Warnings: warnings,
	})
}
