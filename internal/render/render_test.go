package render

import (
	"image/gif"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/san-kum/heatrod/internal/thermal"
)

func TestOutputName(t *testing.T) {
	meta := Meta{Material: "Aluminum", LeftTemp: 100, RightTemp: 100}
	if got := meta.OutputName(".gif"); got != "Aluminum_100_100.gif" {
		t.Errorf("expected Aluminum_100_100.gif, got %s", got)
	}

	meta.HasPulse = true
	if got := meta.OutputName(".gif"); got != "Aluminum_100_100_HAT.gif" {
		t.Errorf("expected _HAT suffix, got %s", got)
	}

	meta = Meta{Material: "Copper", LeftTemp: 22.5, RightTemp: 0}
	if got := meta.OutputName(".svg"); got != "Copper_22.5_0.svg" {
		t.Errorf("expected Copper_22.5_0.svg, got %s", got)
	}
}

func TestNew(t *testing.T) {
	for _, name := range []string{"plot", "GIF", "Svg"} {
		c, err := New(name)
		if err != nil {
			t.Fatalf("New(%q): %v", name, err)
		}
		if got := c.Name(); got != strings.ToLower(name) {
			t.Errorf("New(%q).Name() = %s", name, got)
		}
	}

	if _, err := New("hologram"); err == nil {
		t.Error("expected error for unknown consumer")
	}
}

func TestSampleIndices(t *testing.T) {
	tests := []struct {
		steps int
		want  []int
	}{
		{1, []int{0}},
		{2, []int{0, 1}},
		{3, []int{0, 1, 2}},
		{100, []int{0, 50, 99}},
	}
	for _, tt := range tests {
		if got := sampleIndices(tt.steps); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("sampleIndices(%d) = %v, want %v", tt.steps, got, tt.want)
		}
	}
}

func testField(steps, nodes int) *thermal.Field {
	f := &thermal.Field{Th: 100}
	for i := 0; i < steps; i++ {
		row := make(thermal.Row, nodes)
		for j := range row {
			row[j] = float64(10 * (i + 1))
		}
		f.Temps = append(f.Temps, row)
		f.Times = append(f.Times, float64(i))
	}
	for j := 0; j < nodes; j++ {
		f.Positions = append(f.Positions, (float64(j)+0.5)/float64(nodes))
	}
	return f
}

func TestGIFWriter(t *testing.T) {
	dir := t.TempDir()
	meta := Meta{Material: "Steel", LeftTemp: 0, RightTemp: 50, Length: 1, OutDir: dir}

	w := &GIFWriter{}
	if err := w.Consume(testField(5, 8), meta); err != nil {
		t.Fatalf("Consume: %v", err)
	}

	path := filepath.Join(dir, "Steel_0_50.gif")
	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("expected GIF at %s: %v", path, err)
	}
	defer file.Close()

	anim, err := gif.DecodeAll(file)
	if err != nil {
		t.Fatalf("DecodeAll: %v", err)
	}
	if len(anim.Image) != 5 {
		t.Errorf("expected 5 frames, got %d", len(anim.Image))
	}
}

func TestGIFWriterStride(t *testing.T) {
	dir := t.TempDir()
	meta := Meta{Material: "Steel", LeftTemp: 0, RightTemp: 50, Length: 1, OutDir: dir}

	if err := (&GIFWriter{}).Consume(testField(450, 4), meta); err != nil {
		t.Fatalf("Consume: %v", err)
	}

	file, err := os.Open(filepath.Join(dir, "Steel_0_50.gif"))
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()

	anim, err := gif.DecodeAll(file)
	if err != nil {
		t.Fatal(err)
	}
	if len(anim.Image) > maxFrames {
		t.Errorf("expected at most %d frames, got %d", maxFrames, len(anim.Image))
	}
}

func TestGIFWriterEmptyField(t *testing.T) {
	meta := Meta{Material: "Steel", OutDir: t.TempDir()}
	if err := (&GIFWriter{}).Consume(&thermal.Field{}, meta); err == nil {
		t.Error("expected error for empty field")
	}
}

func TestSVGCurve(t *testing.T) {
	dir := t.TempDir()
	meta := Meta{Material: "Brass", LeftTemp: 20, RightTemp: 80, Length: 1, HasPulse: true, OutDir: dir}

	if err := (&SVGCurve{}).Consume(testField(3, 6), meta); err != nil {
		t.Fatalf("Consume: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "Brass_20_80_HAT.svg"))
	if err != nil {
		t.Fatalf("expected SVG file: %v", err)
	}
	if !strings.Contains(string(data), "<svg") {
		t.Error("output does not look like an SVG document")
	}
	if !strings.Contains(string(data), "polyline") {
		t.Error("expected a polyline in the SVG output")
	}
}
