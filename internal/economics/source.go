package economics

import (
	"fmt"

	"microgrid-economics/internal/model"
)

// SourceCosts prices a non-dispatchable source by folding the annuity model
// over its cost-bearing subsystems and summing the breakdowns component-wise.
// A simple source contributes one subsystem; an inverter-coupled PV plant
// contributes its AC-side inverter and its DC-side panel array.
func SourceCosts(proj model.Project, src model.Source) (ComponentCosts, error) {
	if err := src.Validate(); err != nil {
		return ComponentCosts{}, fmt.Errorf("%w: %s source: %v", ErrInvalidConfig, src.Family(), err)
	}

	var costs ComponentCosts
	for _, sub := range src.Subsystems() {
		if sub.Quantity == 0 {
			continue
		}
		c, err := ComputeAnnuity(proj, AnnuityInput{
			Quantity:         sub.Quantity,
			InvestmentPrice:  sub.InvestmentPrice,
			ReplacementPrice: sub.ReplacementPrice,
			SalvagePrice:     sub.SalvagePrice,
			OMPrice:          sub.OMPrice,
			Lifetime:         sub.Lifetime,
		})
		if err != nil {
			return ComponentCosts{}, err
		}
		costs = costs.Add(c)
	}
	return costs, nil
}
