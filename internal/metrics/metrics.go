// Package metrics computes summary statistics over a finished
// temperature field. They are reported after a run and recorded in run
// metadata; nothing here feeds back into the solver.
package metrics

import (
	"math"

	"github.com/san-kum/heatrod/internal/thermal"
)

// Peak is the highest temperature anywhere in the field.
func Peak(f *thermal.Field) float64 {
	peak := math.Inf(-1)
	for _, row := range f.Temps {
		for _, v := range row {
			if v > peak {
				peak = v
			}
		}
	}
	if math.IsInf(peak, -1) {
		return 0
	}
	return peak
}

// FinalMean is the average temperature of the last row.
func FinalMean(f *thermal.Field) float64 {
	last := f.Last()
	if len(last) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range last {
		sum += v
	}
	return sum / float64(len(last))
}

// StoredEnergy is the heat content of the final row per unit
// cross-section, c·rho·ΣT·dx in J/m².
func StoredEnergy(f *thermal.Field, props thermal.MaterialProperties, dx float64) float64 {
	sum := 0.0
	for _, v := range f.Last() {
		sum += v
	}
	return props.SpecificHeat * props.Density * sum * dx
}

// SteadyStateGap is the largest distance between the final row and a
// target temperature, typically the shared boundary value. It goes to
// zero as the rod soaks to equilibrium.
func SteadyStateGap(f *thermal.Field, target float64) float64 {
	gap := 0.0
	for _, v := range f.Last() {
		if d := math.Abs(v - target); d > gap {
			gap = d
		}
	}
	return gap
}

// Summarize packages the standard per-run metrics.
func Summarize(f *thermal.Field, props thermal.MaterialProperties, dx, boundary float64) map[string]float64 {
	return map[string]float64{
		"peak_temp":        Peak(f),
		"final_mean":       FinalMean(f),
		"stored_energy":    StoredEnergy(f, props, dx),
		"steady_state_gap": SteadyStateGap(f, boundary),
	}
}
