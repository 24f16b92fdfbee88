package data

import (
	"os"
	"path/filepath"
	"testing"

	"gotest.tools/v3/assert"
)

func TestLoadOperationStatsJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "year.json")
	raw := `{
		"served_energy_kwh": 6800000,
		"gen_hours": 1600,
		"gen_fuel_l": 380000,
		"storage_cycles": 210,
		"renew_rate": 0.82
	}`
	assert.NilError(t, os.WriteFile(path, []byte(raw), 0o644))

	stats, err := LoadOperationStatsJSON(path)
	assert.NilError(t, err)
	assert.Equal(t, stats.ServedEnergy, 6800000.0)
	assert.Equal(t, stats.GenHours, 1600.0)
	assert.Equal(t, stats.GenFuel, 380000.0)
	assert.Equal(t, stats.StorageCycles, 210.0)
	assert.Equal(t, stats.RenewRate, 0.82)
}

func TestLoadOperationStatsJSONMissingFile(t *testing.T) {
	_, err := LoadOperationStatsJSON(filepath.Join(t.TempDir(), "nope.json"))
	assert.Assert(t, err != nil)
}
