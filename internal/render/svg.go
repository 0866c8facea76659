package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/san-kum/heatrod/internal/thermal"
)

const (
	svgWidth  = 640
	svgHeight = 480
	svgMargin = 40
)

// SVGCurve writes the final temperature profile as a standalone SVG.
type SVGCurve struct{}

func (s *SVGCurve) Name() string { return "svg" }

func (s *SVGCurve) Consume(f *thermal.Field, meta Meta) error {
	last := f.Last()
	if len(last) < 2 {
		return fmt.Errorf("render: field too small for a curve")
	}

	th := f.Th
	if th <= 0 {
		th = 1
	}
	length := meta.Length
	if length <= 0 {
		length = 1
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#ffffff"/>
<rect x="%d" y="%d" width="%d" height="%d" fill="none" stroke="#000000"/>
`, svgWidth, svgHeight, svgWidth, svgHeight,
		svgMargin, svgMargin, svgWidth-2*svgMargin, svgHeight-2*svgMargin))

	sb.WriteString(`<polyline fill="none" stroke="#cc0000" stroke-width="2" points="`)
	for i, v := range last {
		x := svgMargin + f.Positions[i]/length*float64(svgWidth-2*svgMargin)
		y := float64(svgHeight-svgMargin) - v/th*float64(svgHeight-2*svgMargin)
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
	}
	sb.WriteString("\"/>\n")

	sb.WriteString(fmt.Sprintf(`<text x="%d" y="%d" font-size="12">%s, %g C / %g C</text>
</svg>
`, svgMargin, svgMargin-8, meta.Material, meta.LeftTemp, meta.RightTemp))

	path := filepath.Join(meta.OutDir, meta.OutputName(".svg"))
	return os.WriteFile(path, []byte(sb.String()), 0644)
}
