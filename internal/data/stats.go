package data

import (
	"encoding/json"
	"os"

	"microgrid-economics/internal/model"
)

// LoadOperationStatsJSON reads a yearly dispatch summary produced by the
// external time-series simulation.
func LoadOperationStatsJSON(path string) (model.OperationStats, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return model.OperationStats{}, err
	}
	var stats model.OperationStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		return model.OperationStats{}, err
	}
	return stats, nil
}
