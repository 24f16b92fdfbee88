package main

import (
	"flag"
	"fmt"

	"microgrid-economics/internal/data"
	"microgrid-economics/internal/economics"
	"microgrid-economics/internal/model"
)

// Demo:
// - Instantiate a small diesel + battery + PV + wind microgrid
// - Feed it one representative year of operation stats
// - Print the lifecycle cost breakdown to show how the models fit together
func main() {
	statsPath := flag.String("stats", "", "Optional path to operation stats JSON (defaults to built-in values)")
	rate := flag.Float64("rate", 0.05, "Discount rate")
	flag.Parse()

	mg := model.Microgrid{
		Project: model.Project{
			DiscountRate: *rate,
			Lifetime:     25,
			Timestep:     1,
			Currency:     "$",
		},
		Generator: model.GeneratorParams{
			PowerRated:       1800,
			FuelPrice:        1.0,
			InvestmentPrice:  400,
			OMPriceHours:     0.02,
			ReplacementPrice: 400,
			SalvagePrice:     200,
			LifetimeHours:    15000,
		},
		Battery: model.BatteryParams{
			EnergyRated:      9000,
			InvestmentPrice:  350,
			OMPrice:          10,
			ReplacementPrice: 350,
			SalvagePrice:     100,
			LifetimeCalendar: 15,
			LifetimeCycles:   3000,
		},
		Sources: []model.Source{
			model.PhotovoltaicParams{
				PowerRated:               4000,
				ILR:                      1.2,
				InverterInvestmentPrice:  300,
				InverterOMPrice:          6,
				InverterReplacementPrice: 300,
				InverterSalvagePrice:     150,
				InverterLifetime:         15,
				PanelInvestmentPrice:     900,
				PanelOMPrice:             18,
				PanelReplacementPrice:    900,
				PanelSalvagePrice:        450,
				PanelLifetime:            25,
			},
			model.SourceParams{
				Tag:              model.FamilyWind,
				PowerRated:       900,
				InvestmentPrice:  2000,
				OMPrice:          40,
				ReplacementPrice: 1800,
				SalvagePrice:     900,
				Lifetime:         20,
			},
		},
	}

	// One representative year, as the dispatch simulation would report it.
	stats := model.OperationStats{
		ServedEnergy:  6_800_000,
		GenEnergy:     1_200_000,
		GenHours:      1600,
		GenFuel:       380_000,
		StorageCycles: 210,
		SpilledEnergy: 150_000,
		RenewRate:     0.82,
	}
	if *statsPath != "" {
		loaded, err := data.LoadOperationStatsJSON(*statsPath)
		if err != nil {
			panic(err)
		}
		stats = loaded
	}

	costs, err := economics.Evaluate(mg, stats)
	if err != nil {
		panic(err)
	}

	fmt.Printf("Discount rate %.1f%%, horizon %d years\n\n", *rate*100, mg.Project.Lifetime)
	fmt.Printf("%-14s %14s %14s %14s %14s %14s %14s\n", "category", "total", "investment", "replacement", "om", "fuel", "salvage")
	for _, row := range []struct {
		name  string
		costs economics.ComponentCosts
	}{
		{"generator", costs.Generator},
		{"battery", costs.Battery},
		{"photovoltaic", costs.Photovoltaic},
		{"wind", costs.Wind},
	} {
		c := row.costs
		fmt.Printf("%-14s %14.0f %14.0f %14.0f %14.0f %14.0f %14.0f\n",
			row.name, c.Total, c.Investment, c.Replacement, c.OM, c.Fuel, c.Salvage)
	}
	fmt.Println()
	fmt.Printf("NPC  = $%.0f\n", costs.NPC)
	fmt.Printf("COE  = $%.4f/kWh\n", costs.COE)
	fmt.Printf("LCOE = $%.4f/kWh\n", costs.LCOE)
}
