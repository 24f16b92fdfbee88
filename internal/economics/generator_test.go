package economics

import (
	"errors"
	"testing"

	"microgrid-economics/internal/model"

	"gotest.tools/v3/assert"
)

// 5 kW generator with a 15000 h lifetime, run 1500 h in the representative
// year: worn through 2.5 lifetimes over a 25 year horizon.
func testGenerator() model.GeneratorParams {
	return model.GeneratorParams{
		PowerRated:       5,
		FuelPrice:        1,
		InvestmentPrice:  400,
		OMPriceHours:     0.02,
		ReplacementPrice: 400,
		SalvagePrice:     200,
		LifetimeHours:    15000,
	}
}

func genStats() model.OperationStats {
	return model.OperationStats{ServedEnergy: 1, GenHours: 1500, GenFuel: 500}
}

func TestGeneratorNoDiscount(t *testing.T) {
	costs, err := GeneratorCosts(testProject(0, 25), testGenerator(), genStats())
	assert.NilError(t, err)

	approx(t, costs.Investment, 2000, 1e-9)
	approx(t, costs.OM, 3750, 1e-9)   // 0.02 * 5 * 1500 h * 25 yr
	approx(t, costs.Fuel, 12500, 1e-9) // 1 * 500 L * 25 yr
	approx(t, costs.Replacement, 4000, 1e-9)
	approx(t, costs.Salvage, -500, 1e-9) // half a lifetime left in the third unit
	approx(t, costs.Total, 21750, 1e-9)
}

func TestGeneratorDiscountedReplacementYears(t *testing.T) {
	// Replacements land at the fractional years 10 and 20
	// (15000 h / 1500 h per year).
	costs, err := GeneratorCosts(testProject(0.05, 25), testGenerator(), genStats())
	assert.NilError(t, err)

	want := 400.0 * 5 * (DiscountFactor(0.05, 10) + DiscountFactor(0.05, 20))
	approx(t, costs.Replacement, want, 1e-9)

	identity := costs.Investment + costs.Replacement + costs.OM + costs.Fuel + costs.Salvage
	approx(t, costs.Total, identity, 1e-9)
}

func TestGeneratorIdleYear(t *testing.T) {
	stats := model.OperationStats{ServedEnergy: 1}
	costs, err := GeneratorCosts(testProject(0, 25), testGenerator(), stats)
	assert.NilError(t, err)

	approx(t, costs.OM, 0, 0)
	approx(t, costs.Fuel, 0, 0)
	approx(t, costs.Replacement, 0, 0)
	// Never run, so the full unit value is credited back at horizon end.
	approx(t, costs.Salvage, -1000, 1e-9)
	approx(t, costs.Total, 1000, 1e-9)
}

func TestGeneratorSalvageZeroWhenWornOut(t *testing.T) {
	// 20 years * 1500 h = exactly two lifetimes: nothing left to credit.
	costs, err := GeneratorCosts(testProject(0, 20), testGenerator(), genStats())
	assert.NilError(t, err)
	assert.Equal(t, costs.Salvage, 0.0)
	approx(t, costs.Replacement, 2000, 1e-9) // one replacement at year 10
}

func TestGeneratorAbsent(t *testing.T) {
	costs, err := GeneratorCosts(testProject(0.05, 25), model.GeneratorParams{}, genStats())
	assert.NilError(t, err)
	assert.Equal(t, costs, ComponentCosts{})
}

func TestGeneratorRejectsBadParams(t *testing.T) {
	gen := testGenerator()
	gen.LifetimeHours = 0
	_, err := GeneratorCosts(testProject(0.05, 25), gen, genStats())
	assert.Assert(t, errors.Is(err, ErrInvalidConfig))

	stats := genStats()
	stats.GenFuel = -1
	_, err = GeneratorCosts(testProject(0.05, 25), testGenerator(), stats)
	assert.Assert(t, errors.Is(err, ErrInvalidConfig))
}
