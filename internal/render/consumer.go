// Package render holds the consumers a finished temperature field can
// be handed to: terminal plot, animated GIF, SVG. Consumers receive the
// field and display metadata; the solver knows nothing about them.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/san-kum/heatrod/internal/thermal"
)

// Meta carries the display context a consumer needs alongside the field.
type Meta struct {
	Material  string
	LeftTemp  float64
	RightTemp float64
	Length    float64
	HasPulse  bool
	OutDir    string // destination for file-producing consumers
}

// OutputName builds the artifact base name the original tool has always
// used: {material}_{left}_{right} with a _HAT suffix when a pulse was
// applied.
func (m Meta) OutputName(ext string) string {
	name := fmt.Sprintf("%s_%s_%s",
		m.Material,
		strconv.FormatFloat(m.LeftTemp, 'g', -1, 64),
		strconv.FormatFloat(m.RightTemp, 'g', -1, 64),
	)
	if m.HasPulse {
		name += "_HAT"
	}
	return name + ext
}

type Consumer interface {
	Name() string
	Consume(f *thermal.Field, meta Meta) error
}

// New resolves a consumer by case-insensitive name.
func New(name string) (Consumer, error) {
	switch strings.ToLower(name) {
	case "plot":
		return &AsciiPlot{}, nil
	case "gif":
		return &GIFWriter{}, nil
	case "svg":
		return &SVGCurve{}, nil
	default:
		return nil, fmt.Errorf("render: unknown consumer %q (plot, gif, svg)", name)
	}
}

// Names lists the registered consumers.
func Names() []string {
	return []string{"plot", "gif", "svg"}
}
