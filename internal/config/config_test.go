package config

import (
	"os"
	"path/filepath"
	"testing"

	"microgrid-economics/internal/model"

	"gotest.tools/v3/assert"
)

const fullConfigYAML = `name: test site
project:
  discount_rate: 0.05
  lifetime_years: 25
  currency: "$"
generator:
  power_rated_kw: 1800
  fuel_price: 1.0
  investment_price: 400
  om_price_per_hour: 0.02
  replacement_price: 400
  salvage_price: 200
  lifetime_hours: 15000
battery:
  energy_rated_kwh: 9000
  investment_price: 350
  om_price: 10
  replacement_price: 350
  salvage_price: 100
  lifetime_calendar_years: 15
  lifetime_cycles: 3000
photovoltaic:
  power_rated_kw: 4000
  ilr: 1.2
  inverter:
    investment_price: 300
    om_price: 6
    replacement_price: 300
    salvage_price: 150
    lifetime_years: 15
  panel:
    investment_price: 900
    om_price: 18
    replacement_price: 900
    salvage_price: 450
    lifetime_years: 25
wind:
  power_rated_kw: 900
  investment_price: 2000
  om_price: 40
  replacement_price: 1800
  salvage_price: 900
  lifetime_years: 20
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	assert.NilError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFullConfig(t *testing.T) {
	path := writeFile(t, t.TempDir(), "microgrid.yaml", fullConfigYAML)

	cfg, err := Load(path)
	assert.NilError(t, err)
	assert.Equal(t, cfg.Name, "test site")
	assert.Equal(t, cfg.Project.DiscountRate, 0.05)
	// Omitted timestep defaults to hourly.
	assert.Equal(t, cfg.Project.TimestepHrs, 1.0)

	mg, err := cfg.ToMicrogrid()
	assert.NilError(t, err)
	assert.Equal(t, mg.Project.Lifetime, 25)
	assert.Equal(t, mg.Generator.LifetimeHours, 15000.0)
	assert.Equal(t, mg.Battery.EnergyRated, 9000.0)

	assert.Equal(t, len(mg.Sources), 2)
	assert.Equal(t, mg.Sources[0].Family(), model.FamilyPhotovoltaic)
	assert.Equal(t, mg.Sources[1].Family(), model.FamilyWind)

	// Panel array is rated DC-side through the loading ratio.
	subs := mg.Sources[0].Subsystems()
	assert.Equal(t, len(subs), 2)
	assert.Equal(t, subs[1].Quantity, 4800.0)
}

func TestLoadConfigProjectFileMerge(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "base.yaml", `project:
  discount_rate: 0.03
  lifetime_years: 30
  currency: EUR
`)
	path := writeFile(t, dir, "site.yaml", `project_file: base.yaml
project:
  discount_rate: 0.07
battery:
  energy_rated_kwh: 100
  investment_price: 350
  om_price: 10
  replacement_price: 350
  salvage_price: 100
  lifetime_calendar_years: 15
  lifetime_cycles: 3000
`)

	cfg, err := Load(path)
	assert.NilError(t, err)
	// Explicit override wins; the rest comes from the shared project file.
	assert.Equal(t, cfg.Project.DiscountRate, 0.07)
	assert.Equal(t, cfg.Project.LifetimeYrs, 30)
	assert.Equal(t, cfg.Project.Currency, "EUR")
}

func TestLoadConfigInvalid(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bad.yaml", `project:
  discount_rate: 0.05
  lifetime_years: 25
battery:
  energy_rated_kwh: 100
  investment_price: -350
  lifetime_calendar_years: 15
  lifetime_cycles: 3000
`)
	_, err := Load(path)
	assert.ErrorContains(t, err, "battery config invalid")
}

func TestLoadConfigMissingHorizon(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bad.yaml", `project:
  discount_rate: 0.05
`)
	_, err := Load(path)
	assert.ErrorContains(t, err, "project config invalid")
}

func TestMergeProject(t *testing.T) {
	base := ProjectConfig{DiscountRate: 0.03, LifetimeYrs: 30, TimestepHrs: 1, Currency: "EUR"}
	out := MergeProject(base, ProjectConfig{LifetimeYrs: 20})
	assert.Equal(t, out.DiscountRate, 0.03)
	assert.Equal(t, out.LifetimeYrs, 20)
	assert.Equal(t, out.Currency, "EUR")
}
