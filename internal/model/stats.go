package model

import "errors"

// OperationStats summarizes one simulated year of microgrid operation. It is
// produced by an external time-series dispatch simulation and consumed
// read-only by the cost engine.
//
// Only ServedEnergy, GenHours, GenFuel and StorageCycles feed the cost
// computation; the remaining fields travel along for reporting.
type OperationStats struct {
	// Load service.
	ServedEnergy float64 `json:"served_energy_kwh"` // kWh/yr delivered to the load
	ShedEnergy   float64 `json:"shed_energy_kwh"`   // kWh/yr of unmet load
	ShedMaxPower float64 `json:"shed_max_power_kw"` // kW
	ShedHours    float64 `json:"shed_hours"`        // h/yr

	// Dispatchable generator.
	GenEnergy float64 `json:"gen_energy_kwh"` // kWh/yr
	GenHours  float64 `json:"gen_hours"`      // h/yr the generator ran
	GenFuel   float64 `json:"gen_fuel_l"`     // L/yr

	// Storage.
	StorageCycles     float64 `json:"storage_cycles"`          // equivalent full cycles/yr
	StorageLossEnergy float64 `json:"storage_loss_energy_kwh"` // kWh/yr

	// Renewables.
	SpilledEnergy float64 `json:"spilled_energy_kwh"` // kWh/yr curtailed
	RenewRate     float64 `json:"renew_rate"`         // renewable share of served energy, 0..1
}

func (s OperationStats) Validate() error {
	if s.ServedEnergy < 0 {
		return errors.New("ServedEnergy must be >= 0")
	}
	if s.GenHours < 0 {
		return errors.New("GenHours must be >= 0")
	}
	if s.GenFuel < 0 {
		return errors.New("GenFuel must be >= 0")
	}
	if s.StorageCycles < 0 {
		return errors.New("StorageCycles must be >= 0")
	}
	return nil
}
