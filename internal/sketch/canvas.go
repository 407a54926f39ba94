package sketch

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Canvas holds the completed strokes (insertion order is draw order)
// plus at most one in-progress stroke. Input handlers mutate it and
// the render pass reads it, so access is guarded by a RWMutex.
type Canvas struct {
	mu      sync.RWMutex
	view    Viewport
	strokes []Stroke
	seen    map[string]bool
	current *Stroke

	owner    string
	penColor string
	penWidth float32
}

// NewCanvas returns an empty canvas with the given viewport size and
// default pen settings.
func NewCanvas(w, h int) *Canvas {
	return &Canvas{
		view:     Viewport{W: w, H: h},
		seen:     make(map[string]bool),
		penColor: "black",
		penWidth: 2.5,
	}
}

// SetOwner sets the owner stamped on strokes finished by End.
func (c *Canvas) SetOwner(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.owner = id
}

// Owner returns the local owner ID.
func (c *Canvas) Owner() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.owner
}

// SetPen changes the color and width applied to subsequently begun strokes.
func (c *Canvas) SetPen(color string, width float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.penColor = color
	c.penWidth = width
}

// Pen returns the current pen color and width.
func (c *Canvas) Pen() (string, float32) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.penColor, c.penWidth
}

// Viewport returns the current viewport dimensions.
func (c *Canvas) Viewport() Viewport {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.view
}

// Resize records new viewport dimensions. Stroke points are captured in
// NDC, so existing data is untouched.
func (c *Canvas) Resize(w, h int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.view = Viewport{W: w, H: h}
}

// Begin starts a new in-progress stroke at p, discarding any stroke
// that was still in progress.
func (c *Canvas) Begin(p Point) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = &Stroke{
		Owner:  c.owner,
		Points: []Point{p},
		Color:  c.penColor,
		Width:  c.penWidth,
	}
}

// Extend appends p to the in-progress stroke if it moved far enough
// from the last recorded point. It reports whether p was recorded.
func (c *Canvas) Extend(p Point) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current == nil {
		return false
	}
	if n := len(c.current.Points); n > 0 {
		if p.DistSq(c.current.Points[n-1]) <= Epsilon {
			return false
		}
	}
	c.current.Points = append(c.current.Points, p)
	return true
}

// End finishes the in-progress stroke. A stroke with at least one point
// is moved into the completed list with a fresh ID and timestamp; an
// empty one is discarded. The finished stroke is returned for broadcast.
func (c *Canvas) End() (Stroke, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.current
	c.current = nil
	if s == nil || len(s.Points) == 0 {
		return Stroke{}, false
	}
	s.ID = uuid.NewString()
	s.Time = time.Now()
	c.strokes = append(c.strokes, *s)
	c.seen[s.ID] = true
	return *s, true
}

// Add merges a stroke received from elsewhere. Strokes already seen
// (by ID) are ignored, so replays and relays are harmless.
func (c *Canvas) Add(s Stroke) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if s.ID == "" || c.seen[s.ID] {
		return false
	}
	c.strokes = append(c.strokes, s)
	c.seen[s.ID] = true
	return true
}

// Clear empties both the completed list and the in-progress stroke.
func (c *Canvas) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.strokes = nil
	c.seen = make(map[string]bool)
	c.current = nil
}

// ClearOwner removes every completed stroke drawn by the given owner.
// The owner "all" clears the whole canvas.
func (c *Canvas) ClearOwner(owner string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if owner == "all" {
		c.strokes = nil
		c.seen = make(map[string]bool)
		c.current = nil
		return
	}
	kept := c.strokes[:0]
	for _, s := range c.strokes {
		if s.Owner == owner {
			delete(c.seen, s.ID)
			continue
		}
		kept = append(kept, s)
	}
	c.strokes = kept
}

// Snapshot returns a copy of the completed strokes for rendering,
// export or persistence.
func (c *Canvas) Snapshot() []Stroke {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Stroke, len(c.strokes))
	copy(out, c.strokes)
	return out
}

// Current returns a copy of the in-progress stroke, if any.
func (c *Canvas) Current() (Stroke, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.current == nil {
		return Stroke{}, false
	}
	s := *c.current
	s.Points = append([]Point(nil), c.current.Points...)
	return s, true
}

// Len returns the number of completed strokes.
func (c *Canvas) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.strokes)
}

// Replace swaps the completed strokes for the given list, dropping any
// in-progress stroke. Used when loading a saved board.
func (c *Canvas) Replace(strokes []Stroke) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.strokes = append([]Stroke(nil), strokes...)
	c.seen = make(map[string]bool, len(strokes))
	for _, s := range strokes {
		c.seen[s.ID] = true
	}
	c.current = nil
}
