// Package geometry computes rod cross-sectional areas from shape
// profiles. The area is informational: it never enters the conduction
// equation, which assumes a constant cross-section.
package geometry

import (
	"fmt"
	"math"
	"strings"
)

// Shape is a cross-section profile with a closed-form area.
type Shape interface {
	Kind() string
	Area() float64
}

// Ellipse has semi-axes A and B; a circle uses A == B.
type Ellipse struct{ A, B float64 }

// Rectangle has side lengths A and B; a square uses A == B.
type Rectangle struct{ A, B float64 }

// Triangle is equilateral with side length A.
type Triangle struct{ A float64 }

// Hexagon is regular with side length A.
type Hexagon struct{ A float64 }

func (e Ellipse) Kind() string   { return "ellipse" }
func (r Rectangle) Kind() string { return "rectangle" }
func (t Triangle) Kind() string  { return "triangle" }
func (h Hexagon) Kind() string   { return "hexagon" }

func (e Ellipse) Area() float64   { return math.Pi * e.A * e.B }
func (r Rectangle) Area() float64 { return r.A * r.B }
func (t Triangle) Area() float64  { return math.Sqrt(3) / 4 * t.A * t.A }
func (h Hexagon) Area() float64   { return 3 * math.Sqrt(3) / 2 * h.A * h.A }

// UnsupportedShapeError reports a shape name with no known formula.
type UnsupportedShapeError struct {
	Name string
}

func (e *UnsupportedShapeError) Error() string {
	return fmt.Sprintf("geometry: unsupported shape %q (supported: ellipse, rectangle, triangle, hexagon)", e.Name)
}

// Parse resolves a shape name case-insensitively against its required
// lengths. Two-length shapes read lengths[0] and lengths[1];
// single-length shapes read only lengths[0]. Missing lengths default to
// zero, matching the profile table this replaced.
func Parse(name string, lengths ...float64) (Shape, error) {
	a, b := 0.0, 0.0
	if len(lengths) > 0 {
		a = lengths[0]
	}
	if len(lengths) > 1 {
		b = lengths[1]
	}
	switch strings.ToLower(name) {
	case "ellipse":
		return Ellipse{A: a, B: b}, nil
	case "rectangle":
		return Rectangle{A: a, B: b}, nil
	case "triangle":
		return Triangle{A: a}, nil
	case "hexagon":
		return Hexagon{A: a}, nil
	default:
		return nil, &UnsupportedShapeError{Name: name}
	}
}

// Area is the one-shot form of Parse followed by Shape.Area.
func Area(name string, lengths ...float64) (float64, error) {
	s, err := Parse(name, lengths...)
	if err != nil {
		return 0, err
	}
	return s.Area(), nil
}
