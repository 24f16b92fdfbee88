package models

import (
	"microgrid-economics/internal/config"
	"microgrid-economics/internal/model"
)

// EvaluateRequest represents the request body for a cost evaluation.
// The config section matches the on-disk YAML shape, as JSON.
type EvaluateRequest struct {
	Config config.Config        `json:"config" binding:"required"`
	Stats  model.OperationStats `json:"operation_stats" binding:"required"`
}

// SweepRequest represents a discount-rate sweep over one configuration.
type SweepRequest struct {
	Config config.Config        `json:"config" binding:"required"`
	Stats  model.OperationStats `json:"operation_stats" binding:"required"`
	Rates  []float64            `json:"discount_rates" binding:"required"`

	// RankByLCOE orders the response points cheapest-energy-first instead of
	// input order.
	RankByLCOE bool `json:"rank_by_lcoe,omitempty"`
}
