package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pcosta/algrow/internal/growth"
	"github.com/pcosta/algrow/internal/kinetics"
)

const (
	DefaultLight      = 120.0
	DefaultDIC        = 17.09
	DefaultTMax       = 200.0
	DefaultNPoints    = 200
	DefaultIntegrator = "rk45"
)

// Config describes one simulation scenario. Zero-valued numeric fields
// fall back to defaults when mapped to run parameters, so partial yaml
// files stay usable.
type Config struct {
	Light      float64 `yaml:"light"`
	DIC        float64 `yaml:"dic"`
	TMax       float64 `yaml:"t_max"`
	NPoints    int     `yaml:"n_points"`
	X0         float64 `yaml:"x0"`
	Integrator string  `yaml:"integrator"`
	Tolerance  float64 `yaml:"tolerance"`

	// Optional override of the kinetic constants; nil means the
	// published Chlorella vulgaris set.
	Params *kinetics.ParameterSet `yaml:"params,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Light:      DefaultLight,
		DIC:        DefaultDIC,
		TMax:       DefaultTMax,
		NPoints:    DefaultNPoints,
		Integrator: DefaultIntegrator,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ParameterSet returns the kinetic constants this scenario runs with.
func (c *Config) ParameterSet() kinetics.ParameterSet {
	if c.Params != nil {
		return *c.Params
	}
	return kinetics.DefaultParameters()
}

// Environment returns the scenario's culture conditions.
func (c *Config) Environment() kinetics.Environment {
	return kinetics.Environment{Light: c.Light, DIC: c.DIC}
}

// InitialBiomass returns the starting concentration: the explicit X0 if
// set, otherwise the parameter set's default.
func (c *Config) InitialBiomass() float64 {
	if c.X0 > 0 {
		return c.X0
	}
	return c.ParameterSet().X0
}

// RunConfig maps the scenario onto integrator run parameters.
func (c *Config) RunConfig() growth.Config {
	run := growth.DefaultConfig()
	if c.TMax > 0 {
		run.TMax = c.TMax
	}
	if c.NPoints > 1 {
		run.NPoints = c.NPoints
	}
	if c.Tolerance > 0 {
		run.Tolerance = c.Tolerance
	}
	run.Floor = kinetics.BiomassFloor
	return run
}
