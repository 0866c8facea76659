package thermal

import (
	"context"
	"math"
)

// Solver holds one prepared run: the validated configuration, material
// properties, and the derived grid parameters.
type Solver struct {
	cfg   RodConfig
	props MaterialProperties
	alpha float64 // effective diffusivity k/(c·rho), m²/s
	dx    float64
	dt    float64
	steps int
}

// Prepare validates cfg, resolves the derived parameters and returns a
// solver ready to step. The time step is the von Neumann stability
// bound dx²/(2·alpha') for the explicit central-difference scheme;
// nothing downstream may exceed it.
func Prepare(cfg RodConfig, props MaterialProperties) (*Solver, error) {
	if cfg.Nodes < 2 {
		return nil, &ConfigError{Field: "nodes", Reason: "at least 2 spatial cells required"}
	}
	if cfg.Length <= 0 {
		return nil, &ConfigError{Field: "length", Reason: "must be positive"}
	}
	if cfg.TotalTime <= 0 {
		return nil, &ConfigError{Field: "totalTime", Reason: "must be positive"}
	}
	if props.Conductivity <= 0 || props.SpecificHeat <= 0 || props.Density <= 0 {
		return nil, &ConfigError{Field: "material", Reason: "conductivity, specific heat and density must be positive"}
	}

	// The scheme uses conductivity/(specific heat · density), not the
	// diffusivity column stored alongside them.
	alpha := props.Conductivity / (props.SpecificHeat * props.Density)
	dx := cfg.Length / float64(cfg.Nodes)
	dt := dx * dx / (2 * alpha)

	// Samples 0, dt, 2dt, ... strictly below TotalTime.
	steps := int(math.Ceil(cfg.TotalTime / dt))
	if steps < 1 {
		steps = 1
	}

	return &Solver{cfg: cfg, props: props, alpha: alpha, dx: dx, dt: dt, steps: steps}, nil
}

func (s *Solver) Config() RodConfig { return s.cfg }

func (s *Solver) Properties() MaterialProperties { return s.props }

func (s *Solver) Alpha() float64 { return s.alpha }

func (s *Solver) Dx() float64 { return s.dx }

func (s *Solver) Dt() float64 { return s.dt }

func (s *Solver) Steps() int { return s.steps }

// Th is the display-scale temperature handed to renderers: the larger
// boundary temperature, or the pulse temperature when that exceeds both.
func (s *Solver) Th() float64 {
	th := math.Max(s.cfg.LeftTemp, s.cfg.RightTemp)
	if s.cfg.Pulse != nil && s.cfg.Pulse.InitialTemp > th {
		th = s.cfg.Pulse.InitialTemp
	}
	return th
}

// Positions returns the cell-centered node coordinates (i+0.5)·dx.
func (s *Solver) Positions() []float64 {
	xs := make([]float64, s.cfg.Nodes)
	for i := range xs {
		xs[i] = (float64(i) + 0.5) * s.dx
	}
	return xs
}

// Times returns the ascending time axis.
func (s *Solver) Times() []float64 {
	ts := make([]float64, s.steps)
	for i := range ts {
		ts[i] = float64(i) * s.dt
	}
	return ts
}

// InitialRow builds the condition at t=0: all zero, with the hat pulse
// plateau applied when present. Out-of-range pulse indices are clipped,
// not rejected.
func (s *Solver) InitialRow() Row {
	row := make(Row, s.cfg.Nodes)
	p := s.cfg.Pulse
	if p == nil {
		return row
	}
	center := int(math.Floor(p.Location/s.cfg.Length*float64(s.cfg.Nodes))) - 1
	half := int(math.Ceil(p.PlateauLength / 2))
	lo, hi := center-half, center+half
	if lo < 0 {
		lo = 0
	}
	if hi > s.cfg.Nodes {
		hi = s.cfg.Nodes
	}
	for i := lo; i < hi; i++ {
		row[i] = p.InitialTemp
	}
	return row
}

// rates fills rate with dT/dt for every node, computed entirely from u.
// The boundary temperatures act as ghost values at the two edge nodes.
func (s *Solver) rates(u Row, rate []float64) {
	n := s.cfg.Nodes
	c := s.alpha / (s.dx * s.dx)
	rate[0] = c * (u[1] - 2*u[0] + s.cfg.LeftTemp)
	for i := 1; i < n-1; i++ {
		rate[i] = c * (u[i+1] - 2*u[i] + u[i-1])
	}
	rate[n-1] = c * (s.cfg.RightTemp - 2*u[n-1] + u[n-2])
}

// Stepper walks the recurrence one completed row at a time, so callers
// can observe progress, render live, or wrap cancellation around the
// loop. The row it exposes is reused between steps; clone to retain.
type Stepper struct {
	s    *Solver
	row  Row
	rate []float64
	j    int
}

// Stepper returns a fresh walker positioned at the initial row.
func (s *Solver) Stepper() *Stepper {
	return &Stepper{
		s:    s,
		row:  s.InitialRow(),
		rate: make([]float64, s.cfg.Nodes),
	}
}

func (st *Stepper) Row() Row      { return st.row }
func (st *Stepper) Index() int    { return st.j }
func (st *Stepper) Time() float64 { return float64(st.j) * st.s.dt }

// Next advances to the following time row and reports whether one was
// produced. The rate array is fully materialized from the current row
// before any node is committed, so an update never reads a neighbor
// that already moved to the new time level.
func (st *Stepper) Next() bool {
	if st.j+1 >= st.s.steps {
		return false
	}
	st.s.rates(st.row, st.rate)
	for i := range st.row {
		st.row[i] += st.rate[i] * st.s.dt
	}
	st.j++
	return true
}

// Solve runs the recurrence to completion and packages the field.
// Cancellation is honored between completed rows.
func (s *Solver) Solve(ctx context.Context) (*Field, error) {
	field := &Field{
		Temps:     make([]Row, 0, s.steps),
		Times:     s.Times(),
		Positions: s.Positions(),
		Th:        s.Th(),
	}

	st := s.Stepper()
	field.Temps = append(field.Temps, st.Row().Clone())

	for st.Next() {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		row := st.Row()
		if !row.IsValid() {
			return nil, ErrUnstableField
		}
		field.Temps = append(field.Temps, row.Clone())
	}

	return field, nil
}
