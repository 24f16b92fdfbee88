package models

import (
	"microgrid-economics/internal/analysis"
	"microgrid-economics/internal/economics"
)

// EvaluateResponse represents the response from a cost evaluation.
type EvaluateResponse struct {
	ID     string                   `json:"id"`
	Status string                   `json:"status"`
	Costs  economics.MicrogridCosts `json:"costs"`
}

// SweepResponse represents the response from a discount-rate sweep.
type SweepResponse struct {
	ID     string                `json:"id"`
	Status string                `json:"status"`
	Points []analysis.SweepPoint `json:"points"`
}

// PresetInfo represents information about a microgrid preset file.
type PresetInfo struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	File  string      `json:"file"`
	Specs PresetSpecs `json:"specs"`
}

// PresetSpecs summarizes the ratings a preset configures.
type PresetSpecs struct {
	GeneratorPowerKW  float64 `json:"generator_power_kw"`
	BatteryEnergyKWh  float64 `json:"battery_energy_kwh"`
	PhotovoltaicKW    float64 `json:"photovoltaic_kw"`
	WindPowerKW       float64 `json:"wind_power_kw"`
	ProjectLifetimeYr int     `json:"project_lifetime_years"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
