// Package export renders a finished board to PDF and PNG files.
package export

import (
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"localsketch/internal/sketch"
)

// A4 landscape, in millimetres.
const (
	pageW = 297.0
	pageH = 210.0
	// margin keeps strokes off the page edge.
	margin = 10.0
)

// PDF writes the strokes onto a single A4 landscape page. The drawn
// content is fitted to the printable box inside the margins, preserving
// aspect ratio. A stroke with fewer than two points is skipped, same as
// on screen.
func PDF(path string, strokes []sketch.Stroke) error {
	p := gofpdf.New("L", "mm", "A4", "")
	p.AddPage()

	m := fitMapping(strokes)
	for _, s := range strokes {
		if !s.Drawable() {
			continue
		}
		c := sketch.NamedColor(s.Color)
		p.SetDrawColor(int(c.R), int(c.G), int(c.B))
		p.SetLineWidth(float64(s.Width) * 0.2)
		for i := 1; i < len(s.Points); i++ {
			x1, y1 := m.apply(s.Points[i-1])
			x2, y2 := m.apply(s.Points[i])
			p.Line(x1, y1, x2, y2)
		}
	}

	if err := p.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write pdf %s: %w", path, err)
	}
	return nil
}

// mapping scales a bounding box in NDC onto the printable page box.
type mapping struct {
	r     sketch.Rect
	scale float64
	offX  float64
	offY  float64
}

func fitMapping(strokes []sketch.Stroke) mapping {
	r, ok := sketch.Bounds(strokes)
	if !ok || (r.MaxX == r.MinX && r.MaxY == r.MinY) {
		// Empty or degenerate content falls back to the full NDC square.
		r = sketch.Rect{MinX: -1, MinY: -1, MaxX: 1, MaxY: 1}
	}

	boxW := pageW - 2*margin
	boxH := pageH - 2*margin
	w := float64(r.MaxX - r.MinX)
	h := float64(r.MaxY - r.MinY)
	if w == 0 {
		w = 1e-3
	}
	if h == 0 {
		h = 1e-3
	}

	scale := boxW / w
	if s := boxH / h; s < scale {
		scale = s
	}
	// Center the fitted content inside the box.
	offX := margin + (boxW-w*scale)/2
	offY := margin + (boxH-h*scale)/2
	return mapping{r: r, scale: scale, offX: offX, offY: offY}
}

func (m mapping) apply(pt sketch.Point) (float64, float64) {
	x := m.offX + (float64(pt.X)-float64(m.r.MinX))*m.scale
	// NDC grows upward, page coordinates grow downward.
	y := m.offY + (float64(m.r.MaxY)-float64(pt.Y))*m.scale
	return x, y
}
