package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"microgrid-economics/internal/model"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML). The same structure is
// accepted as JSON by the HTTP API, hence the double tags.
type Config struct {
	Name string `yaml:"name" json:"name,omitempty"`

	// Optional: load project parameters from a separate YAML (e.g.
	// examples/projects/*.yaml). If both ProjectFile and Project are
	// provided, non-zero Project fields override the file.
	ProjectFile string        `yaml:"project_file" json:"project_file,omitempty"`
	Project     ProjectConfig `yaml:"project" json:"project"`

	Generator    GeneratorConfig     `yaml:"generator" json:"generator"`
	Battery      BatteryConfig       `yaml:"battery" json:"battery"`
	Photovoltaic *PhotovoltaicConfig `yaml:"photovoltaic" json:"photovoltaic,omitempty"`
	Wind         *WindConfig         `yaml:"wind" json:"wind,omitempty"`
}

type ProjectConfig struct {
	DiscountRate float64 `yaml:"discount_rate" json:"discount_rate"`
	LifetimeYrs  int     `yaml:"lifetime_years" json:"lifetime_years"`
	TimestepHrs  float64 `yaml:"timestep_hours" json:"timestep_hours"`
	Currency     string  `yaml:"currency" json:"currency"`
}

type GeneratorConfig struct {
	PowerRatedKW     float64 `yaml:"power_rated_kw" json:"power_rated_kw"`
	FuelPrice        float64 `yaml:"fuel_price" json:"fuel_price"`
	InvestmentPrice  float64 `yaml:"investment_price" json:"investment_price"`
	OMPricePerHour   float64 `yaml:"om_price_per_hour" json:"om_price_per_hour"`
	ReplacementPrice float64 `yaml:"replacement_price" json:"replacement_price"`
	SalvagePrice     float64 `yaml:"salvage_price" json:"salvage_price"`
	LifetimeHours    float64 `yaml:"lifetime_hours" json:"lifetime_hours"`
}

type BatteryConfig struct {
	EnergyRatedKWh   float64 `yaml:"energy_rated_kwh" json:"energy_rated_kwh"`
	InvestmentPrice  float64 `yaml:"investment_price" json:"investment_price"`
	OMPrice          float64 `yaml:"om_price" json:"om_price"`
	ReplacementPrice float64 `yaml:"replacement_price" json:"replacement_price"`
	SalvagePrice     float64 `yaml:"salvage_price" json:"salvage_price"`
	LifetimeCalendar float64 `yaml:"lifetime_calendar_years" json:"lifetime_calendar_years"`
	LifetimeCycles   float64 `yaml:"lifetime_cycles" json:"lifetime_cycles"`
}

type PhotovoltaicConfig struct {
	PowerRatedKW float64         `yaml:"power_rated_kw" json:"power_rated_kw"`
	ILR          float64         `yaml:"ilr" json:"ilr"`
	Inverter     SubsystemConfig `yaml:"inverter" json:"inverter"`
	Panel        SubsystemConfig `yaml:"panel" json:"panel"`
}

type SubsystemConfig struct {
	InvestmentPrice  float64 `yaml:"investment_price" json:"investment_price"`
	OMPrice          float64 `yaml:"om_price" json:"om_price"`
	ReplacementPrice float64 `yaml:"replacement_price" json:"replacement_price"`
	SalvagePrice     float64 `yaml:"salvage_price" json:"salvage_price"`
	LifetimeYrs      float64 `yaml:"lifetime_years" json:"lifetime_years"`
}

type WindConfig struct {
	PowerRatedKW     float64 `yaml:"power_rated_kw" json:"power_rated_kw"`
	InvestmentPrice  float64 `yaml:"investment_price" json:"investment_price"`
	OMPrice          float64 `yaml:"om_price" json:"om_price"`
	ReplacementPrice float64 `yaml:"replacement_price" json:"replacement_price"`
	SalvagePrice     float64 `yaml:"salvage_price" json:"salvage_price"`
	LifetimeYrs      float64 `yaml:"lifetime_years" json:"lifetime_years"`
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	// Default to an hourly simulation timestep when the config omits it.
	if c.Project.TimestepHrs == 0 {
		c.Project.TimestepHrs = 1
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	// If project_file is set, load it and overlay any explicit overrides
	// from c.Project.
	if c.ProjectFile != "" {
		projectPath := c.ProjectFile
		if !filepath.IsAbs(projectPath) {
			// Prefer interpreting relative paths as relative to the config file
			// directory, falling back to the path as given (relative to cwd).
			cand := filepath.Join(filepath.Dir(path), projectPath)
			if _, err := os.Stat(cand); err == nil {
				projectPath = cand
			}
		}
		loaded, err := loadProjectFile(projectPath)
		if err != nil {
			return nil, err
		}
		c.Project = MergeProject(loaded, c.Project)
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	// Validate by constructing the model records, running the same checks
	// the cost engine applies at its boundary.
	mg, err := c.ToMicrogrid()
	if err != nil {
		return err
	}
	if err := mg.Project.Validate(); err != nil {
		return fmt.Errorf("project config invalid: %w", err)
	}
	if err := mg.Generator.Validate(); err != nil {
		return fmt.Errorf("generator config invalid: %w", err)
	}
	if err := mg.Battery.Validate(); err != nil {
		return fmt.Errorf("battery config invalid: %w", err)
	}
	for _, src := range mg.Sources {
		if err := src.Validate(); err != nil {
			return fmt.Errorf("%s config invalid: %w", src.Family(), err)
		}
	}
	return nil
}

// ToMicrogrid maps the on-disk shape onto the model records the cost engine
// consumes. Absent sections map to zero-rated (absent) components.
func (c *Config) ToMicrogrid() (model.Microgrid, error) {
	if c == nil {
		return model.Microgrid{}, errors.New("config is nil")
	}
	mg := model.Microgrid{
		Project: model.Project{
			DiscountRate: c.Project.DiscountRate,
			Lifetime:     c.Project.LifetimeYrs,
			Timestep:     c.Project.TimestepHrs,
			Currency:     c.Project.Currency,
		},
		Generator: model.GeneratorParams{
			PowerRated:       c.Generator.PowerRatedKW,
			FuelPrice:        c.Generator.FuelPrice,
			InvestmentPrice:  c.Generator.InvestmentPrice,
			OMPriceHours:     c.Generator.OMPricePerHour,
			ReplacementPrice: c.Generator.ReplacementPrice,
			SalvagePrice:     c.Generator.SalvagePrice,
			LifetimeHours:    c.Generator.LifetimeHours,
		},
		Battery: model.BatteryParams{
			EnergyRated:      c.Battery.EnergyRatedKWh,
			InvestmentPrice:  c.Battery.InvestmentPrice,
			OMPrice:          c.Battery.OMPrice,
			ReplacementPrice: c.Battery.ReplacementPrice,
			SalvagePrice:     c.Battery.SalvagePrice,
			LifetimeCalendar: c.Battery.LifetimeCalendar,
			LifetimeCycles:   c.Battery.LifetimeCycles,
		},
	}
	if pv := c.Photovoltaic; pv != nil {
		mg.Sources = append(mg.Sources, model.PhotovoltaicParams{
			PowerRated:               pv.PowerRatedKW,
			ILR:                      pv.ILR,
			InverterInvestmentPrice:  pv.Inverter.InvestmentPrice,
			InverterOMPrice:          pv.Inverter.OMPrice,
			InverterReplacementPrice: pv.Inverter.ReplacementPrice,
			InverterSalvagePrice:     pv.Inverter.SalvagePrice,
			InverterLifetime:         pv.Inverter.LifetimeYrs,
			PanelInvestmentPrice:     pv.Panel.InvestmentPrice,
			PanelOMPrice:             pv.Panel.OMPrice,
			PanelReplacementPrice:    pv.Panel.ReplacementPrice,
			PanelSalvagePrice:        pv.Panel.SalvagePrice,
			PanelLifetime:            pv.Panel.LifetimeYrs,
		})
	}
	if w := c.Wind; w != nil {
		mg.Sources = append(mg.Sources, model.SourceParams{
			Tag:              model.FamilyWind,
			PowerRated:       w.PowerRatedKW,
			InvestmentPrice:  w.InvestmentPrice,
			OMPrice:          w.OMPrice,
			ReplacementPrice: w.ReplacementPrice,
			SalvagePrice:     w.SalvagePrice,
			Lifetime:         w.LifetimeYrs,
		})
	}
	return mg, nil
}

type projectFileWrapper struct {
	Project ProjectConfig `yaml:"project"`
}

func loadProjectFile(path string) (ProjectConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return ProjectConfig{}, err
	}
	var w projectFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return ProjectConfig{}, err
	}
	return w.Project, nil
}

// MergeProject overlays non-zero fields from override onto base. Used when
// loading a shared project file and applying per-study overrides.
func MergeProject(base, override ProjectConfig) ProjectConfig {
	out := base
	if override.DiscountRate != 0 {
		out.DiscountRate = override.DiscountRate
	}
	if override.LifetimeYrs != 0 {
		out.LifetimeYrs = override.LifetimeYrs
	}
	if override.TimestepHrs != 0 {
		out.TimestepHrs = override.TimestepHrs
	}
	if override.Currency != "" {
		out.Currency = override.Currency
	}
	return out
}
