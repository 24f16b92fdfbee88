package handlers

import (
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"microgrid-economics/internal/api/models"
	"microgrid-economics/internal/config"

	"github.com/gin-gonic/gin"
	"gopkg.in/yaml.v3"
)

// PresetsHandler lists microgrid preset configurations from a directory of
// YAML files.
type PresetsHandler struct {
	presetDir string
}

// NewPresetsHandler creates a new presets handler. The directory comes from
// PRESET_DIR, defaulting to examples/ under the working directory.
func NewPresetsHandler() *PresetsHandler {
	dir := os.Getenv("PRESET_DIR")
	if dir == "" {
		if wd, err := os.Getwd(); err == nil {
			dir = filepath.Join(wd, "examples")
		} else {
			dir = "./examples"
		}
	}
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	return &PresetsHandler{presetDir: dir}
}

// ListPresets handles GET /api/v1/presets.
func (h *PresetsHandler) ListPresets(c *gin.Context) {
	presets := []models.PresetInfo{}

	entries, err := os.ReadDir(h.presetDir)
	if err != nil {
		log.Printf("PresetsHandler: failed to read preset directory %s: %v", h.presetDir, err)
		c.JSON(http.StatusOK, gin.H{"presets": presets})
		return
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		path := filepath.Join(h.presetDir, entry.Name())
		info, err := h.loadPresetInfo(path, entry.Name())
		if err != nil {
			log.Printf("PresetsHandler: skipping %s: %v", path, err)
			continue
		}
		presets = append(presets, *info)
	}

	c.JSON(http.StatusOK, gin.H{"presets": presets})
}

func (h *PresetsHandler) loadPresetInfo(path, filename string) (*models.PresetInfo, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg config.Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, err
	}

	id := strings.TrimSuffix(filename, ".yaml")
	name := cfg.Name
	if name == "" {
		name = id
	}

	specs := models.PresetSpecs{
		GeneratorPowerKW:  cfg.Generator.PowerRatedKW,
		BatteryEnergyKWh:  cfg.Battery.EnergyRatedKWh,
		ProjectLifetimeYr: cfg.Project.LifetimeYrs,
	}
	if cfg.Photovoltaic != nil {
		specs.PhotovoltaicKW = cfg.Photovoltaic.PowerRatedKW
	}
	if cfg.Wind != nil {
		specs.WindPowerKW = cfg.Wind.PowerRatedKW
	}

	return &models.PresetInfo{
		ID:    id,
		Name:  name,
		File:  path,
		Specs: specs,
	}, nil
}
