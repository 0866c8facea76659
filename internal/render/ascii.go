package render

import (
	"fmt"
	"os"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/heatrod/internal/thermal"
)

// AsciiPlot prints temperature profiles for a few representative time
// samples to stdout.
type AsciiPlot struct{}

func (p *AsciiPlot) Name() string { return "plot" }

func (p *AsciiPlot) Consume(f *thermal.Field, meta Meta) error {
	if f.Steps() == 0 {
		return fmt.Errorf("render: empty field")
	}

	fmt.Fprintf(os.Stdout, "%s, boundaries %g C / %g C, x in [0, %g m], y in [0, %g C]\n\n",
		meta.Material, meta.LeftTemp, meta.RightTemp, meta.Length, f.Th)

	for _, idx := range sampleIndices(f.Steps()) {
		graph := asciigraph.Plot(f.Temps[idx],
			asciigraph.Height(10),
			asciigraph.Width(70),
			asciigraph.LowerBound(0),
			asciigraph.UpperBound(f.Th),
			asciigraph.Caption(fmt.Sprintf("t = %.1f s", f.Times[idx])),
		)
		fmt.Fprintln(os.Stdout, graph)
		fmt.Fprintln(os.Stdout)
	}
	return nil
}

// sampleIndices picks the first, middle and last rows, deduplicated for
// short runs.
func sampleIndices(steps int) []int {
	idxs := []int{0}
	if mid := steps / 2; mid > 0 {
		idxs = append(idxs, mid)
	}
	if last := steps - 1; last > idxs[len(idxs)-1] {
		idxs = append(idxs, last)
	}
	return idxs
}
