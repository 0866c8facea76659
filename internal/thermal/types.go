package thermal

import "math"

// Row holds the temperature of every spatial node at one time sample,
// ordered left to right.
type Row []float64

func (r Row) Clone() Row {
	c := make(Row, len(r))
	copy(c, r)
	return c
}

func (r Row) IsValid() bool {
	for _, v := range r {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// MaterialProperties is the tuple retrieved from the property store.
// Only Conductivity, SpecificHeat and Density feed the governing
// equation; Diffusivity and Effusivity are carried as stored.
type MaterialProperties struct {
	Conductivity float64 // W/m·K
	Diffusivity  float64 // mm²/s
	SpecificHeat float64 // J/kg·K
	Effusivity   float64 // W·s^0.5/m²·K
	Density      float64 // kg/m³
}

// HatPulse is a localized initial temperature plateau. Either the whole
// record is present or the run has none; partial records never reach
// the solver.
type HatPulse struct {
	InitialTemp   float64 // °C at the plateau
	Location      float64 // meters from the left end
	PlateauLength float64 // plateau width in nodes
}

// RodConfig describes one simulation run.
type RodConfig struct {
	Material  string
	Nodes     int     // spatial cells
	Length    float64 // meters
	TotalTime float64 // seconds
	LeftTemp  float64 // °C, held fixed
	RightTemp float64 // °C, held fixed
	Pulse     *HatPulse
}

// Field is the solver output: temperature rows indexed by time sample,
// columns by spatial node.
type Field struct {
	Temps     []Row
	Times     []float64
	Positions []float64 // cell-centered node positions, (i+0.5)·dx
	Th        float64   // display-scale ceiling for renderers
}

func (f *Field) Steps() int { return len(f.Temps) }

func (f *Field) Nodes() int {
	if len(f.Temps) == 0 {
		return 0
	}
	return len(f.Temps[0])
}

func (f *Field) Last() Row {
	if len(f.Temps) == 0 {
		return nil
	}
	return f.Temps[len(f.Temps)-1]
}
