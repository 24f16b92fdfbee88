package analysis

import (
	"errors"
	"testing"

	"microgrid-economics/internal/economics"
	"microgrid-economics/internal/model"

	"gotest.tools/v3/assert"
)

func sweepFixture() (model.Microgrid, model.OperationStats) {
	mg := model.Microgrid{
		Project: model.Project{DiscountRate: 0.05, Lifetime: 25, Timestep: 1, Currency: "$"},
		Battery: model.BatteryParams{
			EnergyRated:      7,
			InvestmentPrice:  100,
			OMPrice:          10,
			ReplacementPrice: 90,
			SalvagePrice:     80,
			LifetimeCalendar: 20,
			LifetimeCycles:   3000,
		},
		Sources: []model.Source{
			model.SourceParams{
				Tag:              model.FamilyWind,
				PowerRated:       10,
				InvestmentPrice:  1000,
				OMPrice:          20,
				ReplacementPrice: 1200,
				SalvagePrice:     800,
				Lifetime:         20,
			},
		},
	}
	stats := model.OperationStats{ServedEnergy: 25000, StorageCycles: 150}
	return mg, stats
}

func TestSweepMatchesDirectEvaluate(t *testing.T) {
	mg, stats := sweepFixture()
	rates := []float64{0, 0.02, 0.05, 0.1}

	points, err := SweepDiscountRate(mg, stats, rates)
	assert.NilError(t, err)
	assert.Equal(t, len(points), len(rates))

	for i, p := range points {
		assert.Equal(t, p.DiscountRate, rates[i])

		direct := mg
		direct.Project.DiscountRate = rates[i]
		want, err := economics.Evaluate(direct, stats)
		assert.NilError(t, err)
		assert.Equal(t, p.Costs, want)
	}

	// The sweep must not touch the caller's configuration.
	assert.Equal(t, mg.Project.DiscountRate, 0.05)
}

func TestSweepPropagatesError(t *testing.T) {
	mg, stats := sweepFixture()
	stats.ServedEnergy = 0
	_, err := SweepDiscountRate(mg, stats, []float64{0, 0.05})
	assert.Assert(t, errors.Is(err, economics.ErrDegenerate))
}

func TestRankByLCOE(t *testing.T) {
	mg, stats := sweepFixture()
	points, err := SweepDiscountRate(mg, stats, []float64{0.1, 0, 0.05})
	assert.NilError(t, err)

	ranked := RankByLCOE(points)
	for i := 1; i < len(ranked); i++ {
		assert.Assert(t, ranked[i-1].Costs.LCOE <= ranked[i].Costs.LCOE)
	}
	// Input order preserved.
	assert.Equal(t, points[0].DiscountRate, 0.1)
}
