package sketch

import "github.com/chewxy/math32"

// Point is a canvas position in normalized device coordinates,
// spanning [-1, 1] on each axis regardless of window pixel size.
type Point struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
}

// Epsilon is the minimum squared distance between consecutive points
// of a stroke. Moves closer than this to the last recorded point are
// dropped so degenerate zero-length segments never enter a stroke.
const Epsilon = 1e-6

// DistSq returns the squared distance between p and q.
func (p Point) DistSq(q Point) float32 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return dx*dx + dy*dy
}

// Dist returns the distance between p and q.
func (p Point) Dist(q Point) float32 {
	return math32.Hypot(p.X-q.X, p.Y-q.Y)
}

// Viewport holds the pixel dimensions of the window the canvas is
// mapped into. Conversions are pure functions of the current size.
type Viewport struct {
	W int
	H int
}

// ToNDC converts a pixel position (origin top-left) to normalized
// device coordinates: (0,0) maps to (-1,1) and (W,H) maps to (1,-1).
func (v Viewport) ToNDC(x, y float32) Point {
	return Point{
		X: x/float32(v.W)*2 - 1,
		Y: 1 - y/float32(v.H)*2,
	}
}

// FromNDC converts a normalized point back to pixel coordinates.
func (v Viewport) FromNDC(p Point) (float32, float32) {
	return (p.X + 1) / 2 * float32(v.W), (1 - p.Y) / 2 * float32(v.H)
}
