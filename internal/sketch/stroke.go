package sketch

import "time"

// Stroke is one continuous pen-down-to-pen-up gesture: an ordered
// sequence of normalized points with the pen settings it was drawn with.
type Stroke struct {
	ID     string    `json:"id"`
	Owner  string    `json:"owner_id"`
	Points []Point   `json:"points"`
	Color  string    `json:"color"`
	Width  float32   `json:"width"`
	Time   time.Time `json:"time"`
}

// Drawable reports whether the stroke produces a visible line.
// Single-point strokes are kept in the canvas but never rendered.
func (s Stroke) Drawable() bool {
	return len(s.Points) >= 2
}

// Length returns the total polyline length of the stroke in NDC units.
func (s Stroke) Length() float32 {
	var total float32
	for i := 1; i < len(s.Points); i++ {
		total += s.Points[i-1].Dist(s.Points[i])
	}
	return total
}

// Rect is an axis-aligned bounding box in NDC.
type Rect struct {
	MinX, MinY float32
	MaxX, MaxY float32
}

// Bounds returns the bounding box of all points in the given strokes.
// The second result is false when there are no points at all.
func Bounds(strokes []Stroke) (Rect, bool) {
	var r Rect
	found := false
	for _, s := range strokes {
		for _, p := range s.Points {
			if !found {
				r = Rect{MinX: p.X, MinY: p.Y, MaxX: p.X, MaxY: p.Y}
				found = true
				continue
			}
			if p.X < r.MinX {
				r.MinX = p.X
			}
			if p.X > r.MaxX {
				r.MaxX = p.X
			}
			if p.Y < r.MinY {
				r.MinY = p.Y
			}
			if p.Y > r.MaxY {
				r.MaxY = p.Y
			}
		}
	}
	return r, found
}
