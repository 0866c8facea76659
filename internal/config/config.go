package config

import (
	"os"

	"github.com/san-kum/heatrod/internal/thermal"
	"gopkg.in/yaml.v3"
)

const (
	DefaultMaterial = "Aluminum"
	DefaultNodes    = 10
	DefaultLength   = 1.0
	DefaultDuration = 6000.0
	DefaultBoundary = 100.0
)

type Config struct {
	Material  string      `yaml:"material"`
	Nodes     int         `yaml:"nodes"`
	Length    float64     `yaml:"length"`
	Duration  float64     `yaml:"duration"`
	LeftTemp  float64     `yaml:"left_temp"`
	RightTemp float64     `yaml:"right_temp"`
	Shape     ShapeConfig `yaml:"shape"`
	Pulse     PulseConfig `yaml:"pulse"`
	Output    string      `yaml:"output"` // plot, live, gif, svg or empty for the raw field
}

// ShapeConfig is the informational cross-section profile.
type ShapeConfig struct {
	Kind    string    `yaml:"kind"`
	Lengths []float64 `yaml:"lengths"`
}

// PulseConfig holds the optional hat pulse. Fields are pointers so a
// partially supplied record is distinguishable from an absent one.
type PulseConfig struct {
	Temp     *float64 `yaml:"temp"`
	Location *float64 `yaml:"location"`
	Width    *float64 `yaml:"width"`
}

// Empty reports whether no pulse field was supplied at all.
func (p PulseConfig) Empty() bool {
	return p.Temp == nil && p.Location == nil && p.Width == nil
}

// Complete reports whether every pulse field was supplied.
func (p PulseConfig) Complete() bool {
	return p.Temp != nil && p.Location != nil && p.Width != nil
}

func DefaultConfig() *Config {
	return &Config{
		Material:  DefaultMaterial,
		Nodes:     DefaultNodes,
		Length:    DefaultLength,
		Duration:  DefaultDuration,
		LeftTemp:  DefaultBoundary,
		RightTemp: DefaultBoundary,
		Shape:     ShapeConfig{Kind: "ellipse", Lengths: []float64{1.0, 1.0}},
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

// RodConfig converts the run parameters into the solver's form. A hat
// pulse must be supplied whole: some-but-not-all fields is a
// configuration error, never a warning.
func (c *Config) RodConfig() (thermal.RodConfig, error) {
	rod := thermal.RodConfig{
		Material:  c.Material,
		Nodes:     c.Nodes,
		Length:    c.Length,
		TotalTime: c.Duration,
		LeftTemp:  c.LeftTemp,
		RightTemp: c.RightTemp,
	}
	switch {
	case c.Pulse.Empty():
	case c.Pulse.Complete():
		rod.Pulse = &thermal.HatPulse{
			InitialTemp:   *c.Pulse.Temp,
			Location:      *c.Pulse.Location,
			PlateauLength: *c.Pulse.Width,
		}
	default:
		return thermal.RodConfig{}, &thermal.ConfigError{
			Field:  "pulse",
			Reason: "temp, location and width must all be set (or none)",
		}
	}
	return rod, nil
}
