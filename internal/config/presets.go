package config

import "sort"

func ptr(v float64) *float64 { return &v }

var Presets = map[string]*Config{
	"aluminum-soak": {
		Material: "Aluminum", Nodes: 10, Length: 1.0, Duration: 6000.0,
		LeftTemp: 100.0, RightTemp: 100.0,
		Shape: ShapeConfig{Kind: "ellipse", Lengths: []float64{1.0, 1.0}},
	},
	"aluminum-pulse": {
		Material: "Aluminum", Nodes: 50, Length: 1.0, Duration: 3000.0,
		LeftTemp: 20.0, RightTemp: 20.0,
		Shape: ShapeConfig{Kind: "ellipse", Lengths: []float64{1.0, 1.0}},
		Pulse: PulseConfig{Temp: ptr(400.0), Location: ptr(0.5), Width: ptr(8.0)},
	},
	"copper-gradient": {
		Material: "Copper", Nodes: 40, Length: 2.0, Duration: 10000.0,
		LeftTemp: 200.0, RightTemp: 50.0,
		Shape: ShapeConfig{Kind: "rectangle", Lengths: []float64{0.02, 0.02}},
	},
	"steel-quench": {
		Material: "Stainless Steel", Nodes: 30, Length: 0.5, Duration: 20000.0,
		LeftTemp: 25.0, RightTemp: 25.0,
		Shape: ShapeConfig{Kind: "hexagon", Lengths: []float64{0.01}},
		Pulse: PulseConfig{Temp: ptr(800.0), Location: ptr(0.25), Width: ptr(6.0)},
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
