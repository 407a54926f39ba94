package export

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"

	"localsketch/internal/sketch"
)

// PNG rasterizes the strokes into a width x height image on a white
// background and encodes it as PNG. Stroke widths are interpreted as
// pixels, drawn with round caps and joins.
func PNG(w io.Writer, strokes []sketch.Stroke, width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid image size %dx%d", width, height)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	view := sketch.Viewport{W: width, H: height}
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	dasher := rasterx.NewDasher(width, height, scanner)

	for _, s := range strokes {
		if !s.Drawable() {
			continue
		}
		scanner.SetColor(sketch.NamedColor(s.Color))
		dasher.SetStroke(
			fixed.Int26_6(s.Width*64), fixed.Int26_6(4*64),
			rasterx.RoundCap, rasterx.RoundCap, rasterx.RoundGap,
			rasterx.Round, nil, 0,
		)
		dasher.Start(fixedPoint(view, s.Points[0]))
		for _, p := range s.Points[1:] {
			dasher.Line(fixedPoint(view, p))
		}
		dasher.Stop(false)
		dasher.Draw()
		dasher.Clear()
	}

	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

func fixedPoint(view sketch.Viewport, p sketch.Point) fixed.Point26_6 {
	x, y := view.FromNDC(p)
	return fixed.Point26_6{
		X: fixed.Int26_6(x * 64),
		Y: fixed.Int26_6(y * 64),
	}
}
