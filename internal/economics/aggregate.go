package economics

import (
	"fmt"

	"microgrid-economics/internal/model"
)

// MicrogridCosts is the project-level result: headline metrics, five-way
// totals and a per-category breakdown. NPC equals the sum of the category
// totals, which in turn equals the sum of the five-way totals.
type MicrogridCosts struct {
	NPC            float64 `json:"npc"`
	CRF            float64 `json:"crf"`
	AnnualizedCost float64 `json:"annualized_cost"`
	COE            float64 `json:"coe"`  // annualized cost per kWh served, one representative year
	LCOE           float64 `json:"lcoe"` // NPC per discounted lifetime kWh served

	TotalInvestment  float64 `json:"total_investment"`
	TotalReplacement float64 `json:"total_replacement"`
	TotalOM          float64 `json:"total_om"`
	TotalFuel        float64 `json:"total_fuel"`
	TotalSalvage     float64 `json:"total_salvage"`

	Generator    ComponentCosts `json:"generator"`
	Battery      ComponentCosts `json:"battery"`
	Photovoltaic ComponentCosts `json:"photovoltaic"`
	Wind         ComponentCosts `json:"wind"`
	Other        ComponentCosts `json:"other"`
}

// Evaluate computes lifecycle costs for a configured microgrid from one
// representative year of operation. Non-dispatchable sources are folded into
// their declared family; the generator and battery adapters run exactly once.
//
// Returns ErrInvalidConfig for out-of-range parameters and ErrDegenerate when
// served energy is zero, in which case COE and LCOE are undefined and no
// partial result is returned.
func Evaluate(mg model.Microgrid, stats model.OperationStats) (MicrogridCosts, error) {
	proj := mg.Project
	if err := proj.Validate(); err != nil {
		return MicrogridCosts{}, fmt.Errorf("%w: project: %v", ErrInvalidConfig, err)
	}
	if err := stats.Validate(); err != nil {
		return MicrogridCosts{}, fmt.Errorf("%w: operation stats: %v", ErrInvalidConfig, err)
	}

	out := MicrogridCosts{}

	var err error
	if out.Generator, err = GeneratorCosts(proj, mg.Generator, stats); err != nil {
		return MicrogridCosts{}, err
	}
	if out.Battery, err = BatteryCosts(proj, mg.Battery, stats); err != nil {
		return MicrogridCosts{}, err
	}
	for _, src := range mg.Sources {
		costs, err := SourceCosts(proj, src)
		if err != nil {
			return MicrogridCosts{}, err
		}
		switch src.Family() {
		case model.FamilyPhotovoltaic:
			out.Photovoltaic = out.Photovoltaic.Add(costs)
		case model.FamilyWind:
			out.Wind = out.Wind.Add(costs)
		default:
			out.Other = out.Other.Add(costs)
		}
	}

	grand := out.Generator.
		Add(out.Battery).
		Add(out.Photovoltaic).
		Add(out.Wind).
		Add(out.Other)
	out.TotalInvestment = grand.Investment
	out.TotalReplacement = grand.Replacement
	out.TotalOM = grand.OM
	out.TotalFuel = grand.Fuel
	out.TotalSalvage = grand.Salvage
	out.NPC = grand.Total

	out.CRF = CapitalRecoveryFactor(proj.DiscountRate, proj.Lifetime)
	out.AnnualizedCost = out.NPC * out.CRF

	if stats.ServedEnergy <= 0 {
		return MicrogridCosts{}, fmt.Errorf("%w: served energy is zero, COE and LCOE are undefined", ErrDegenerate)
	}
	out.COE = out.AnnualizedCost / stats.ServedEnergy
	out.LCOE = out.NPC / LifetimeServedEnergy(proj, stats.ServedEnergy)

	return out, nil
}

// LifetimeServedEnergy discounts one representative year of served energy
// over the horizon: year 1 is counted undiscounted, years 2..N at the
// end-of-year factors.
func LifetimeServedEnergy(proj model.Project, servedEnergy float64) float64 {
	factor := 1.0
	for _, d := range DiscountFactors(proj.DiscountRate, proj.Lifetime-1) {
		factor += d
	}
	return servedEnergy * factor
}
