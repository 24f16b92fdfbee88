package economics

import (
	"fmt"
	"math"

	"microgrid-economics/internal/model"
)

// GeneratorCosts prices the dispatchable generator. Unlike the generic
// annuity model its lifetime is counted in operating hours, so replacement
// timing is driven by the dispatch: the representative year's run hours are
// assumed to repeat every year of the horizon, which places replacements at
// fractional years lifetime_hours/gen_hours, 2*lifetime_hours/gen_hours, ...
//
// O&M and fuel also follow the dispatch rather than a flat annuity: both
// accrue each year in proportion to hours run and fuel burned. Salvage is
// prorated on hours of life left in the last unit and stored negative, the
// same credit convention as everywhere else in the engine.
func GeneratorCosts(proj model.Project, gen model.GeneratorParams, stats model.OperationStats) (ComponentCosts, error) {
	if err := proj.Validate(); err != nil {
		return ComponentCosts{}, fmt.Errorf("%w: project: %v", ErrInvalidConfig, err)
	}
	if err := gen.Validate(); err != nil {
		return ComponentCosts{}, fmt.Errorf("%w: generator: %v", ErrInvalidConfig, err)
	}
	if err := stats.Validate(); err != nil {
		return ComponentCosts{}, fmt.Errorf("%w: operation stats: %v", ErrInvalidConfig, err)
	}
	if gen.PowerRated == 0 {
		return ComponentCosts{}, nil
	}

	horizon := proj.Lifetime
	factors := DiscountFactors(proj.DiscountRate, horizon)
	annuity := sum(factors)

	investment := gen.InvestmentPrice * gen.PowerRated
	om := gen.OMPriceHours * gen.PowerRated * stats.GenHours * annuity
	fuel := gen.FuelPrice * stats.GenFuel * annuity

	// Expected operating hours over the whole horizon, assuming the
	// representative year repeats.
	totalHours := float64(horizon) * stats.GenHours

	replacements := 0
	replacement := 0.0
	if stats.GenHours > 0 {
		replacements = int(math.Ceil(totalHours/gen.LifetimeHours)) - 1
		if replacements < 0 {
			replacements = 0
		}
		for j := 1; j <= replacements; j++ {
			year := float64(j) * gen.LifetimeHours / stats.GenHours
			replacement += gen.ReplacementPrice * gen.PowerRated * DiscountFactor(proj.DiscountRate, year)
		}
	}

	// Hours of life left in the last installed unit at horizon end.
	remainingHours := gen.LifetimeHours*float64(replacements+1) - totalHours
	salvage := 0.0
	if remainingHours > 0 {
		salvage = -gen.SalvagePrice * (remainingHours / gen.LifetimeHours) * gen.PowerRated * factors[horizon-1]
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
