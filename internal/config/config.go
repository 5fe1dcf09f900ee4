// Package config loads per-variant YAML configuration: asset locations,
// frame and grid geometry, matching tolerances, loop budgets, and region
// geometry overrides. All fields are optional; the variant profile supplies
// every default. A present-but-malformed file is fatal at startup.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/jwhitfield/pixelpilot/internal/action"
	"github.com/jwhitfield/pixelpilot/internal/frame"
	"github.com/jwhitfield/pixelpilot/internal/regions"
	"github.com/jwhitfield/pixelpilot/internal/variant"
)

// #region types

// RegionOverride replaces or adds one catalog region definition.
type RegionOverride struct {
	Name      string     `yaml:"name"`
	Rect      frame.Rect `yaml:"rect"`
	Threshold float64    `yaml:"threshold"`
}

// Budgets overrides the per-action loop bounds. Zero means "keep default".
type Budgets struct {
	MaxSteps    int `yaml:"max_steps"`
	MenuNav     int `yaml:"menu_nav_max_steps"`
	StableTicks int `yaml:"stable_max_ticks"`
}

// Config is one variant's runtime configuration.
type Config struct {
	Variant     string `yaml:"variant"`
	RomDataPath string `yaml:"rom_data_path"`

	FrameW int         `yaml:"frame_w"`
	FrameH int         `yaml:"frame_h"`
	Grid   *frame.Grid `yaml:"grid"`

	// Epsilon is the frame-difference tolerance, Threshold the default
	// region match threshold.
	Epsilon   float64 `yaml:"epsilon"`
	Threshold float64 `yaml:"threshold"`

	Budgets Budgets `yaml:"budgets"`

	Regions      []RegionOverride `yaml:"regions"`
	MultiRegions []RegionOverride `yaml:"multi_regions"`
}

// #endregion

// #region load

// Load reads the variant's configuration. Search order: explicit path, then
// ./configs/<variant>.yaml. No file at all is fine; the zero Config defers
// everything to the profile.
func Load(variantName, customPath string) (Config, error) {
	var cfg Config
	path := customPath
	if path == "" {
		path = filepath.Join("configs", variantName+".yaml")
		if _, err := os.Stat(path); err != nil {
			cfg.Variant = variantName
			return cfg, nil
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Variant == "" {
		cfg.Variant = variantName
	}
	return cfg, nil
}

// #endregion

// #region apply

// Apply folds the config's overrides into a variant profile. Region
// overrides follow the catalog merge law: a same-name entry fully replaces
// the profile's definition, anything else is added.
func (c Config) Apply(p variant.Profile) variant.Profile {
	if c.FrameW > 0 {
		p.FrameW = c.FrameW
	}
	if c.FrameH > 0 {
		p.FrameH = c.FrameH
	}
	if c.Grid != nil {
		p.Grid = *c.Grid
	}
	if c.Epsilon != 0 {
		p.Epsilon = c.Epsilon
	}
	if c.Threshold != 0 {
		p.Threshold = c.Threshold
	}
	if len(c.Regions) > 0 {
		p.Regions = regions.MergeDefs(p.Regions, toDefs(c.Regions))
	}
	if len(c.MultiRegions) > 0 {
		p.MultiRegions = regions.MergeDefs(p.MultiRegions, toDefs(c.MultiRegions))
	}
	return p
}

func toDefs(overrides []RegionOverride) []regions.Def {
	defs := make([]regions.Def, 0, len(overrides))
	for _, o := range overrides {
		defs = append(defs, regions.Def{Name: o.Name, Rect: o.Rect, Threshold: o.Threshold})
	}
	return defs
}

// ActionBudgets maps the configured bounds onto the action runtime's budget
// struct; zero fields keep the package constants.
func (c Config) ActionBudgets() action.Budgets {
	return action.Budgets{
		MaxSteps:    c.Budgets.MaxSteps,
		MenuNav:     c.Budgets.MenuNav,
		StableTicks: c.Budgets.StableTicks,
	}
}

// AssetRoot is the directory holding the variant's reference captures.
func (c Config) AssetRoot() string {
	if c.RomDataPath != "" {
		return c.RomDataPath
	}
	return filepath.Join("rom_data", c.Variant)
}

// #endregion
