package economics

import (
	"errors"
	"testing"

	"microgrid-economics/internal/model"

	"gotest.tools/v3/assert"
)

func testWind() model.SourceParams {
	return model.SourceParams{
		Tag:              model.FamilyWind,
		PowerRated:       10,
		InvestmentPrice:  1000,
		OMPrice:          20,
		ReplacementPrice: 1200,
		SalvagePrice:     800,
		Lifetime:         20,
	}
}

func testPV() model.PhotovoltaicParams {
	return model.PhotovoltaicParams{
		PowerRated:               8,
		ILR:                      1.25,
		InverterInvestmentPrice:  300,
		InverterOMPrice:          6,
		InverterReplacementPrice: 300,
		InverterSalvagePrice:     150,
		InverterLifetime:         10,
		PanelInvestmentPrice:     1000,
		PanelOMPrice:             15,
		PanelReplacementPrice:    1000,
		PanelSalvagePrice:        500,
		PanelLifetime:            25,
	}
}

func TestSimpleSourceMatchesAnnuity(t *testing.T) {
	proj := testProject(0.05, 30)
	costs, err := SourceCosts(proj, testWind())
	assert.NilError(t, err)

	want, err := ComputeAnnuity(proj, renewableInput())
	assert.NilError(t, err)
	assert.Equal(t, costs, want)
}

func TestHybridSourceSumsSubsystems(t *testing.T) {
	proj := testProject(0.05, 25)
	pv := testPV()

	costs, err := SourceCosts(proj, pv)
	assert.NilError(t, err)

	inverter, err := ComputeAnnuity(proj, AnnuityInput{
		Quantity:         8,
		InvestmentPrice:  300,
		OMPrice:          6,
		ReplacementPrice: 300,
		SalvagePrice:     150,
		Lifetime:         10,
	})
	assert.NilError(t, err)
	panel, err := ComputeAnnuity(proj, AnnuityInput{
		Quantity:         10, // 8 kW AC * 1.25 ILR
		InvestmentPrice:  1000,
		OMPrice:          15,
		ReplacementPrice: 1000,
		SalvagePrice:     500,
		Lifetime:         25,
	})
	assert.NilError(t, err)

	assert.Equal(t, costs, inverter.Add(panel))
}

func TestSourceFamilies(t *testing.T) {
	assert.Equal(t, testWind().Family(), model.FamilyWind)
	assert.Equal(t, testPV().Family(), model.FamilyPhotovoltaic)
	assert.Equal(t, model.SourceParams{PowerRated: 1, InvestmentPrice: 1, Lifetime: 1}.Family(), model.FamilyOther)
}

func TestSourceAbsent(t *testing.T) {
	costs, err := SourceCosts(testProject(0.05, 25), model.SourceParams{})
	assert.NilError(t, err)
	assert.Equal(t, costs, ComponentCosts{})
}

func TestSourceRejectsBadParams(t *testing.T) {
	wind := testWind()
	wind.Lifetime = -5
	_, err := SourceCosts(testProject(0.05, 25), wind)
	assert.Assert(t, errors.Is(err, ErrInvalidConfig))

	pv := testPV()
	pv.ILR = 0
	_, err = SourceCosts(testProject(0.05, 25), pv)
	assert.Assert(t, errors.Is(err, ErrInvalidConfig))
}
