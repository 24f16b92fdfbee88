package economics

// ComponentCosts is the five-way net-present-value breakdown for one
// component, in the project currency. Salvage is stored negative (a credit),
// so Total = Investment + Replacement + OM + Fuel + Salvage always holds.
//
// A ComponentCosts is recomputed on every call and never mutated after
// construction.
type ComponentCosts struct {
	Total       float64 `json:"total"`
	Investment  float64 `json:"investment"`
	Replacement float64 `json:"replacement"`
	OM          float64 `json:"om"`
	Fuel        float64 `json:"fuel"`
	Salvage     float64 `json:"salvage"`
}

// Add returns the component-wise sum of two breakdowns. Used when one asset
// has several independently replaced subsystems.
func (c ComponentCosts) Add(o ComponentCosts) ComponentCosts {
	return ComponentCosts{
		Total:       c.Total + o.Total,
		Investment:  c.Investment + o.Investment,
		Replacement: c.Replacement + o.Replacement,
		OM:          c.OM + o.OM,
		Fuel:        c.Fuel + o.Fuel,
		Salvage:     c.Salvage + o.Salvage,
	}
}
