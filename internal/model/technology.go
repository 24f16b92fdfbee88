package model

import "errors"

// Family classifies a non-dispatchable source for cost aggregation.
// Keep these values stable; they are intended for CSV and JSON output.
type Family string

const (
	FamilyPhotovoltaic Family = "photovoltaic"
	FamilyWind         Family = "wind"
	FamilyOther        Family = "other"
)

// Subsystem is one cost-bearing part of a source, with its own price set and
// replacement lifetime. A simple source has one subsystem; a hybrid source
// (inverter + panel) has two.
// Units:
// - Quantity: the rating the unit prices apply to (kW, kWp, ...)
// - Prices: currency per unit (OMPrice per unit per year)
// - Lifetime: years between replacements
type Subsystem struct {
	Quantity         float64
	InvestmentPrice  float64
	OMPrice          float64
	ReplacementPrice float64
	SalvagePrice     float64
	Lifetime         float64
}

func (s Subsystem) validate() error {
	if s.Quantity < 0 {
		return errors.New("Quantity must be >= 0")
	}
	if s.InvestmentPrice < 0 || s.OMPrice < 0 || s.ReplacementPrice < 0 || s.SalvagePrice < 0 {
		return errors.New("prices must be >= 0")
	}
	if s.Lifetime <= 0 {
		return errors.New("Lifetime must be > 0 years")
	}
	return nil
}

// Source is a non-dispatchable generation source. Each implementation
// declares the family it is aggregated under and the cost-bearing subsystems
// the annuity model should price.
type Source interface {
	Family() Family
	Subsystems() []Subsystem
	Validate() error
}

// SourceParams describes a single-subsystem renewable source, e.g. a wind
// turbine fleet rated in kW. Tag selects the aggregation family; an empty
// tag falls into FamilyOther.
type SourceParams struct {
	Tag              Family  `json:"family"`
	PowerRated       float64 `json:"power_rated_kw"`
	InvestmentPrice  float64 `json:"investment_price"`  // $/kW
	OMPrice          float64 `json:"om_price"`          // $/kW/yr
	ReplacementPrice float64 `json:"replacement_price"` // $/kW
	SalvagePrice     float64 `json:"salvage_price"`     // $/kW
	Lifetime         float64 `json:"lifetime_years"`
}

func (s SourceParams) Family() Family {
	if s.Tag == "" {
		return FamilyOther
	}
	return s.Tag
}

func (s SourceParams) Subsystems() []Subsystem {
	return []Subsystem{{
		Quantity:         s.PowerRated,
		InvestmentPrice:  s.InvestmentPrice,
		OMPrice:          s.OMPrice,
		ReplacementPrice: s.ReplacementPrice,
		SalvagePrice:     s.SalvagePrice,
		Lifetime:         s.Lifetime,
	}}
}

func (s SourceParams) Validate() error {
	if s.PowerRated == 0 {
		// Zero rating marks the source as absent; prices are ignored.
		return nil
	}
	return s.Subsystems()[0].validate()
}

// PhotovoltaicParams describes an inverter-coupled PV plant: an AC-side
// inverter rated at PowerRated and a DC-side panel array rated at
// PowerRated * ILR. The two subsystems share one point of connection but
// are replaced on independent lifetimes.
type PhotovoltaicParams struct {
	PowerRated float64 `json:"power_rated_kw"` // kW AC, inverter rating
	ILR        float64 `json:"ilr"`            // inverter loading ratio, DC/AC

	InverterInvestmentPrice  float64 `json:"inverter_investment_price"`  // $/kW
	InverterOMPrice          float64 `json:"inverter_om_price"`          // $/kW/yr
	InverterReplacementPrice float64 `json:"inverter_replacement_price"` // $/kW
	InverterSalvagePrice     float64 `json:"inverter_salvage_price"`     // $/kW
	InverterLifetime         float64 `json:"inverter_lifetime_years"`

	PanelInvestmentPrice  float64 `json:"panel_investment_price"`  // $/kWp
	PanelOMPrice          float64 `json:"panel_om_price"`          // $/kWp/yr
	PanelReplacementPrice float64 `json:"panel_replacement_price"` // $/kWp
	PanelSalvagePrice     float64 `json:"panel_salvage_price"`     // $/kWp
	PanelLifetime         float64 `json:"panel_lifetime_years"`
}

func (p PhotovoltaicParams) Family() Family { return FamilyPhotovoltaic }

func (p PhotovoltaicParams) Subsystems() []Subsystem {
	return []Subsystem{
		{
			Quantity:         p.PowerRated,
			InvestmentPrice:  p.InverterInvestmentPrice,
			OMPrice:          p.InverterOMPrice,
			ReplacementPrice: p.InverterReplacementPrice,
			SalvagePrice:     p.InverterSalvagePrice,
			Lifetime:         p.InverterLifetime,
		},
		{
			Quantity:         p.PowerRated * p.ILR,
			InvestmentPrice:  p.PanelInvestmentPrice,
			OMPrice:          p.PanelOMPrice,
			ReplacementPrice: p.PanelReplacementPrice,
			SalvagePrice:     p.PanelSalvagePrice,
			Lifetime:         p.PanelLifetime,
		},
	}
}

func (p PhotovoltaicParams) Validate() error {
	if p.PowerRated == 0 {
		return nil
	}
	if p.ILR <= 0 {
		return errors.New("ILR must be > 0")
	}
	for _, sub := range p.Subsystems() {
		if err := sub.validate(); err != nil {
			return err
		}
	}
	return nil
}

// GeneratorParams describes the dispatchable generator. Its lifetime is
// counted in operating hours, not calendar years, so replacement timing
// depends on how much the dispatch actually ran it.
type GeneratorParams struct {
	PowerRated       float64 `json:"power_rated_kw"`
	FuelPrice        float64 `json:"fuel_price"`        // $/L
	InvestmentPrice  float64 `json:"investment_price"`  // $/kW
	OMPriceHours     float64 `json:"om_price_per_hour"` // $/kW per operating hour
	ReplacementPrice float64 `json:"replacement_price"` // $/kW
	SalvagePrice     float64 `json:"salvage_price"`     // $/kW
	LifetimeHours    float64 `json:"lifetime_hours"`
}

func (g GeneratorParams) Validate() error {
	if g.PowerRated == 0 {
		return nil
	}
	if g.PowerRated < 0 {
		return errors.New("PowerRated must be >= 0")
	}
	if g.FuelPrice < 0 || g.InvestmentPrice < 0 || g.OMPriceHours < 0 || g.ReplacementPrice < 0 || g.SalvagePrice < 0 {
		return errors.New("prices must be >= 0")
	}
	if g.LifetimeHours <= 0 {
		return errors.New("LifetimeHours must be > 0")
	}
	return nil
}

// BatteryParams describes the storage. The battery wears on two clocks: a
// calendar limit and a cycling limit; whichever is exhausted first sets the
// effective replacement lifetime.
type BatteryParams struct {
	EnergyRated      float64 `json:"energy_rated_kwh"`
	InvestmentPrice  float64 `json:"investment_price"`  // $/kWh
	OMPrice          float64 `json:"om_price"`          // $/kWh/yr
	ReplacementPrice float64 `json:"replacement_price"` // $/kWh
	SalvagePrice     float64 `json:"salvage_price"`     // $/kWh
	LifetimeCalendar float64 `json:"lifetime_calendar_years"`
	LifetimeCycles   float64 `json:"lifetime_cycles"` // equivalent full cycles
}

func (b BatteryParams) Validate() error {
	if b.EnergyRated == 0 {
		return nil
	}
	if b.EnergyRated < 0 {
		return errors.New("EnergyRated must be >= 0")
	}
	if b.InvestmentPrice < 0 || b.OMPrice < 0 || b.ReplacementPrice < 0 || b.SalvagePrice < 0 {
		return errors.New("prices must be >= 0")
	}
	if b.LifetimeCalendar <= 0 {
		return errors.New("LifetimeCalendar must be > 0 years")
	}
	if b.LifetimeCycles <= 0 {
		return errors.New("LifetimeCycles must be > 0")
	}
	return nil
}

// Microgrid bundles the project settings and the technology parameter records
// for one study. A zero rating (PowerRated / EnergyRated) marks a component
// as absent.
type Microgrid struct {
	Project   Project
	Generator GeneratorParams
	Battery   BatteryParams
	Sources   []Source
}
