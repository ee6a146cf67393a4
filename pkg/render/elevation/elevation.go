// Package elevation draws a model's XY elevation as plain text.
//
// The drawing is meant for terminal preview: the interactive designer
// redraws it on every parameter change and the generate command prints it
// with --ascii. Members rasterize onto a character grid with slope-aware
// strokes; joints overdraw as dots and support joints as carets.
package elevation

import (
	"math"
	"strings"

	"github.com/mtkb13/framegen/pkg/model"
)

// Options configures elevation drawing.
type Options struct {
	// Width and Height set the canvas size in characters. Zero values
	// default to 72x20.
	Width  int
	Height int
}

const (
	defaultWidth  = 72
	defaultHeight = 20
)

// Draw renders the XY elevation of m. Z is dropped, so spatial models
// show their front elevation with all frame stations overlaid, which is
// exactly what a quick terminal preview needs.
func Draw(m *model.Model, opts Options) string {
	w, h := opts.Width, opts.Height
	if w <= 0 {
		w = defaultWidth
	}
	if h <= 0 {
		h = defaultHeight
	}

	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, j := range m.Joints {
		minX, maxX = math.Min(minX, j.X), math.Max(maxX, j.X)
		minY, maxY = math.Min(minY, j.Y), math.Max(maxY, j.Y)
	}

	spanX, spanY := maxX-minX, maxY-minY
	if spanX == 0 {
		spanX = 1
	}
	if spanY == 0 {
		spanY = 1
	}

	canvas := make([][]rune, h)
	for i := range canvas {
		canvas[i] = []rune(strings.Repeat(" ", w))
	}

	// col grows right with X, row grows down as Y shrinks.
	toCell := func(x, y float64) (col, row int) {
		col = int(math.Round((x - minX) / spanX * float64(w-1)))
		row = int(math.Round((maxY - y) / spanY * float64(h-1)))
		return col, row
	}

	for _, mb := range m.Members {
		s, _ := m.Joint(mb.Start)
		e, _ := m.Joint(mb.End)
		c0, r0 := toCell(s.X, s.Y)
		c1, r1 := toCell(e.X, e.Y)
		stroke(canvas, c0, r0, c1, r1)
	}

	for _, j := range m.Joints {
		col, row := toCell(j.X, j.Y)
		canvas[row][col] = '·'
	}
	for _, id := range m.Landmark(model.LandmarkSupports) {
		j, ok := m.Joint(id)
		if !ok {
			continue
		}
		col, row := toCell(j.X, j.Y)
		canvas[row][col] = '^'
	}

	var sb strings.Builder
	for _, line := range canvas {
		sb.WriteString(strings.TrimRight(string(line), " "))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// stroke rasterizes a line segment onto the canvas with a slope-matched
// character: '-' for flat runs, '|' for vertical, '/' and '\' for
// diagonals.
func stroke(canvas [][]rune, c0, r0, c1, r1 int) {
	dc, dr := c1-c0, r1-r0
	steps := max(abs(dc), abs(dr))
	ch := strokeChar(dc, dr)

	if steps == 0 {
		put(canvas, c0, r0, ch)
		return
	}
	for i := 0; i <= steps; i++ {
		col := c0 + dc*i/steps
		row := r0 + dr*i/steps
		put(canvas, col, row, ch)
	}
}

func strokeChar(dc, dr int) rune {
	switch {
	case dr == 0:
		return '-'
	case dc == 0:
		return '|'
	case (dc > 0) == (dr > 0):
		return '\\'
	default:
		return '/'
	}
}

// put writes ch, ignoring cells outside the canvas.
func put(canvas [][]rune, col, row int, ch rune) {
	if row < 0 || row >= len(canvas) || col < 0 || col >= len(canvas[row]) {
		return
	}
	canvas[row][col] = ch
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
