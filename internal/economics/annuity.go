package economics

import (
	"errors"
	"fmt"
	"math"

	"microgrid-economics/internal/model"
)

// AnnuityInput carries the per-component inputs of the generic annuity model.
// Units:
// - Quantity: the rating the unit prices apply to (kW, kWh, ...)
// - Prices: currency per unit; OMPrice per unit per year
// - FuelConsumption: per year; 0 disables the fuel term entirely
// - Lifetime: years between replacements (fractional allowed)
type AnnuityInput struct {
	Quantity         float64
	InvestmentPrice  float64
	ReplacementPrice float64
	SalvagePrice     float64
	OMPrice          float64
	FuelConsumption  float64
	FuelPrice        float64
	Lifetime         float64
}

func (in AnnuityInput) validate() error {
	if in.Quantity < 0 {
		return errors.New("Quantity must be >= 0")
	}
	if in.InvestmentPrice < 0 || in.ReplacementPrice < 0 || in.SalvagePrice < 0 || in.OMPrice < 0 || in.FuelPrice < 0 {
		return errors.New("prices must be >= 0")
	}
	if in.FuelConsumption < 0 {
		return errors.New("FuelConsumption must be >= 0")
	}
	if in.Lifetime <= 0 {
		return errors.New("Lifetime must be > 0 years")
	}
	return nil
}

// ComputeAnnuity prices one component over the project horizon:
//
//  1. Investment is paid once, undiscounted, at year 0.
//  2. O&M accrues as a flat annuity over years 1..horizon.
//  3. The component is replaced at lifetime, 2*lifetime, ... as many times as
//     needed to cover the horizon (ceil(horizon/lifetime)-1 replacements).
//  4. Life left in the last unit at horizon end is credited back as a
//     prorated salvage value, discounted at the final year's factor and
//     stored negative.
//  5. An optional fuel term accrues like O&M when FuelConsumption > 0.
//
// The returned breakdown satisfies
// Total = Investment + Replacement + OM + Fuel + Salvage.
func ComputeAnnuity(proj model.Project, in AnnuityInput) (ComponentCosts, error) {
	if err := proj.Validate(); err != nil {
		return ComponentCosts{}, fmt.Errorf("%w: project: %v", ErrInvalidConfig, err)
	}
	if err := in.validate(); err != nil {
		return ComponentCosts{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	horizon := proj.Lifetime
	factors := DiscountFactors(proj.DiscountRate, horizon)
	annuity := sum(factors)

	investment := in.InvestmentPrice * in.Quantity
	om := in.OMPrice * in.Quantity * annuity

	replacements := int(math.Ceil(float64(horizon)/in.Lifetime)) - 1
	if replacements < 0 {
		replacements = 0
	}
	replacement := 0.0
	for j := 1; j <= replacements; j++ {
		replacement += in.ReplacementPrice * in.Quantity * DiscountFactor(proj.DiscountRate, float64(j)*in.Lifetime)
	}

	// Life left in the last installed unit at horizon end, in [0, lifetime).
	remaining := in.Lifetime*float64(replacements+1) - float64(horizon)
	salvage := -in.SalvagePrice * (remaining / in.Lifetime) * in.Quantity * factors[horizon-1]

	fuel := 0.0
	if in.FuelConsumption > 0 {
		fuel = in.FuelPrice * in.FuelConsumption * annuity
	}

	return ComponentCosts{
		Total:       investment + replacement + om + fuel + salvage,
		Investment:  investment,
		Replacement: replacement,
		OM:          om,
		Fuel:        fuel,
		Salvage:     salvage,
	}, nil
}
