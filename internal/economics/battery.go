package economics

import (
	"fmt"

	"microgrid-economics/internal/model"
)

// BatteryCosts prices the storage. The effective replacement lifetime is the
// shorter of the calendar limit and the cycling limit
// (lifetime_cycles / cycles_per_year); with no cycling activity only the
// calendar limit applies. The rest is the generic annuity model with the
// energy rating as quantity and no fuel.
func BatteryCosts(proj model.Project, batt model.BatteryParams, stats model.OperationStats) (ComponentCosts, error) {
	if err := batt.Validate(); err != nil {
		return ComponentCosts{}, fmt.Errorf("%w: battery: %v", ErrInvalidConfig, err)
	}
	if err := stats.Validate(); err != nil {
		return ComponentCosts{}, fmt.Errorf("%w: operation stats: %v", ErrInvalidConfig, err)
	}
	if batt.EnergyRated == 0 {
		return ComponentCosts{}, nil
	}

	lifetime := batt.LifetimeCalendar
	if stats.StorageCycles > 0 {
		if cycling := batt.LifetimeCycles / stats.StorageCycles; cycling < lifetime {
			lifetime = cycling
		}
	}

	return ComputeAnnuity(proj, AnnuityInput{
		Quantity:         batt.EnergyRated,
		InvestmentPrice:  batt.InvestmentPrice,
		ReplacementPrice: batt.ReplacementPrice,
		SalvagePrice:     batt.SalvagePrice,
		OMPrice:          batt.OMPrice,
		Lifetime:         lifetime,
	})
}
