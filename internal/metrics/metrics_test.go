package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/heatrod/internal/thermal"
)

var props = thermal.MaterialProperties{Conductivity: 1, SpecificHeat: 2, Density: 3}

func testField() *thermal.Field {
	return &thermal.Field{
		Temps: []thermal.Row{{0, 90, 0}, {40, 60, 50}},
		Times: []float64{0, 1},
	}
}

func TestPeak(t *testing.T) {
	if got := Peak(testField()); got != 90 {
		t.Errorf("expected peak 90, got %v", got)
	}
	if got := Peak(&thermal.Field{}); got != 0 {
		t.Errorf("expected 0 for empty field, got %v", got)
	}
}

func TestFinalMean(t *testing.T) {
	if got := FinalMean(testField()); got != 50 {
		t.Errorf("expected final mean 50, got %v", got)
	}
}

func TestStoredEnergy(t *testing.T) {
	// c·rho·ΣT·dx = 2·3·150·0.5
	if got := StoredEnergy(testField(), props, 0.5); math.Abs(got-450) > 1e-9 {
		t.Errorf("expected stored energy 450, got %v", got)
	}
}

func TestSteadyStateGap(t *testing.T) {
	if got := SteadyStateGap(testField(), 100); got != 60 {
		t.Errorf("expected gap 60, got %v", got)
	}
}

func TestSummarize(t *testing.T) {
	m := Summarize(testField(), props, 0.5, 100)
	for _, key := range []string{"peak_temp", "final_mean", "stored_energy", "steady_state_gap"} {
		if _, ok := m[key]; !ok {
			t.Errorf("missing metric %s", key)
		}
	}
}
