package handlers

import (
	"errors"
	"net/http"

	"microgrid-economics/internal/analysis"
	"microgrid-economics/internal/api/models"
	"microgrid-economics/internal/economics"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CostsHandler handles cost evaluation requests.
type CostsHandler struct{}

// NewCostsHandler creates a new costs handler.
func NewCostsHandler() *CostsHandler {
	return &CostsHandler{}
}

// Evaluate handles POST /api/v1/costs.
func (h *CostsHandler) Evaluate(c *gin.Context) {
	var req models.EvaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	mg, err := req.Config.ToMicrogrid()
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_CONFIG", err.Error())
		return
	}

	costs, err := economics.Evaluate(mg, req.Stats)
	if err != nil {
		respondEngineError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.EvaluateResponse{
		ID:     uuid.NewString(),
		Status: "ok",
		Costs:  costs,
	})
}

// Sweep handles POST /api/v1/costs/sweep.
func (h *CostsHandler) Sweep(c *gin.Context) {
	var req models.SweepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	if len(req.Rates) == 0 {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", "discount_rates must not be empty")
		return
	}

	mg, err := req.Config.ToMicrogrid()
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_CONFIG", err.Error())
		return
	}

	points, err := analysis.SweepDiscountRate(mg, req.Stats, req.Rates)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	if req.RankByLCOE {
		points = analysis.RankByLCOE(points)
	}

	c.JSON(http.StatusOK, models.SweepResponse{
		ID:     uuid.NewString(),
		Status: "ok",
		Points: points,
	})
}

func respondEngineError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, economics.ErrInvalidConfig):
		respondError(c, http.StatusBadRequest, "INVALID_CONFIG", err.Error())
	case errors.Is(err, economics.ErrDegenerate):
		respondError(c, http.StatusUnprocessableEntity, "DEGENERATE_INPUT", err.Error())
	default:
		respondError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
	}
}

func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, models.ErrorResponse{Error: models.ErrorDetail{
		Code:    code,
		Message: message,
	}})
}
