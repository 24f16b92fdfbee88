package model

import "errors"

// Project holds the study-wide financial parameters shared by every
// technology in the microgrid.
// Units:
// - DiscountRate: fraction per year (0.05 = 5%), must be > -1
// - Lifetime: project horizon in whole years
// - Timestep: operating timestep of the dispatch simulation, hours
// - Currency: display label only ("$", "EUR", ...)
//
// A Project is created once per study and never mutated.
type Project struct {
	DiscountRate float64 `json:"discount_rate"`
	Lifetime     int     `json:"lifetime_years"`
	Timestep     float64 `json:"timestep_hours"`
	Currency     string  `json:"currency"`
}

func (p Project) Validate() error {
	if p.DiscountRate <= -1 {
		return errors.New("DiscountRate must be > -1")
	}
	if p.Lifetime <= 0 {
		return errors.New("Lifetime must be a positive number of years")
	}
	if p.Timestep <= 0 {
		return errors.New("Timestep must be > 0 hours")
	}
	return nil
}
