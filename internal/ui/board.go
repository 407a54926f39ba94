package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"localsketch/internal/sketch"
)

// BoardWidget is the drawing surface. Pointer input is converted to
// normalized coordinates at capture time and fed into the canvas, so
// resizing the window never distorts what was already drawn.
type BoardWidget struct {
	widget.BaseWidget
	Canvas  *sketch.Canvas
	drawing bool

	// OnStroke fires when a stroke is finished, for network broadcast.
	OnStroke func(s sketch.Stroke)
	// OnClear fires when the user clears the board.
	OnClear func()
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)

func NewBoardWidget(c *sketch.Canvas) *BoardWidget {
	b := &BoardWidget{Canvas: c}
	b.ExtendBaseWidget(b)
	return b
}

func (b *BoardWidget) toNDC(pos fyne.Position) sketch.Point {
	return b.Canvas.Viewport().ToNDC(pos.X, pos.Y)
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		b.drawing = true
		b.Canvas.Begin(b.toNDC(e.Position))
		b.Refresh()
	}
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary && b.drawing {
		b.drawing = false
		if s, ok := b.Canvas.End(); ok {
			if b.OnStroke != nil {
				b.OnStroke(s)
			}
		}
		b.Refresh()
	}
}

func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	if !b.drawing {
		return
	}
	if b.Canvas.Extend(b.toNDC(e.Position)) {
		b.Refresh()
	}
}

func (b *BoardWidget) DragEnd() {}

func (b *BoardWidget) MouseIn(*desktop.MouseEvent)    {}
func (b *BoardWidget) MouseOut()                      {}
func (b *BoardWidget) MouseMoved(*desktop.MouseEvent) {}

// ClearAll empties the board and notifies the clear callback.
func (b *BoardWidget) ClearAll() {
	b.Canvas.Clear()
	if b.OnClear != nil {
		b.OnClear()
	}
	b.Refresh()
}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &boardRenderer{board: b}
	r.background = canvas.NewRectangle(color.White)
	return r
}

type boardRenderer struct {
	board      *BoardWidget
	background *canvas.Rectangle
}

func (r *boardRenderer) Objects() []fyne.CanvasObject {
	c := r.board.Canvas
	view := c.Viewport()
	objects := []fyne.CanvasObject{r.background}

	strokes := c.Snapshot()
	if cur, ok := c.Current(); ok {
		strokes = append(strokes, cur)
	}

	for _, s := range strokes {
		if !s.Drawable() {
			continue
		}
		col := sketch.NamedColor(s.Color)
		for i := 1; i < len(s.Points); i++ {
			seg := canvas.NewLine(col)
			seg.StrokeWidth = s.Width
			x1, y1 := view.FromNDC(s.Points[i-1])
			x2, y2 := view.FromNDC(s.Points[i])
			seg.Position1 = fyne.NewPos(x1, y1)
			seg.Position2 = fyne.NewPos(x2, y2)
			objects = append(objects, seg)
		}
	}
	return objects
}

func (r *boardRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	r.board.Canvas.Resize(int(size.Width), int(size.Height))
}

func (r *boardRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}

func (r *boardRenderer) Refresh() {
	canvas.Refresh(r.board)
}

func (r *boardRenderer) Destroy() {}
