package render

import (
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"os"
	"path/filepath"

	"github.com/san-kum/heatrod/internal/thermal"
)

const (
	frameWidth  = 320
	frameHeight = 240
	frameMargin = 20

	// Frame cap for very long runs; rows are strided past it.
	maxFrames = 200
)

// GIFWriter renders one frame per time sample (strided for long runs)
// and assembles them into an animated GIF named after the run. Frames
// live only in memory until the single encode at the end.
type GIFWriter struct{}

func (g *GIFWriter) Name() string { return "gif" }

func (g *GIFWriter) Consume(f *thermal.Field, meta Meta) error {
	if f.Steps() == 0 || f.Nodes() == 0 {
		return fmt.Errorf("render: empty field")
	}

	stride := 1
	if f.Steps() > maxFrames {
		stride = (f.Steps() + maxFrames - 1) / maxFrames
	}

	anim := gif.GIF{LoopCount: 0}
	for i := 0; i < f.Steps(); i += stride {
		anim.Image = append(anim.Image, frame(f.Temps[i], f.Positions, meta.Length, f.Th))
		anim.Delay = append(anim.Delay, 4)
	}

	path := filepath.Join(meta.OutDir, meta.OutputName(".gif"))
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return gif.EncodeAll(file, &anim)
}

var framePalette = color.Palette{color.White, color.Black, color.RGBA{R: 0xcc, A: 0xff}}

// frame draws one temperature profile on the fixed [0,L]x[0,Th] viewport.
func frame(row thermal.Row, xs []float64, length, th float64) *image.Paletted {
	img := image.NewPaletted(image.Rect(0, 0, frameWidth, frameHeight), framePalette)
	if th <= 0 {
		th = 1
	}
	if length <= 0 {
		length = 1
	}

	// Axis box.
	for x := frameMargin; x <= frameWidth-frameMargin; x++ {
		img.SetColorIndex(x, frameMargin, 1)
		img.SetColorIndex(x, frameHeight-frameMargin, 1)
	}
	for y := frameMargin; y <= frameHeight-frameMargin; y++ {
		img.SetColorIndex(frameMargin, y, 1)
		img.SetColorIndex(frameWidth-frameMargin, y, 1)
	}

	px := func(x float64) int {
		return frameMargin + int(x/length*float64(frameWidth-2*frameMargin))
	}
	py := func(t float64) int {
		y := frameHeight - frameMargin - int(t/th*float64(frameHeight-2*frameMargin))
		if y < frameMargin {
			y = frameMargin
		}
		if y > frameHeight-frameMargin {
			y = frameHeight - frameMargin
		}
		return y
	}

	for i := 0; i+1 < len(row); i++ {
		drawLine(img, px(xs[i]), py(row[i]), px(xs[i+1]), py(row[i+1]), 2)
	}
	return img
}

func drawLine(img *image.Paletted, x0, y0, x1, y1 int, ci uint8) {
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		img.SetColorIndex(x0, y0, ci)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
