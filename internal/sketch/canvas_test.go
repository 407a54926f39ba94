package sketch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaptureSequence(t *testing.T) {
	c := NewCanvas(800, 600)
	c.SetOwner("local")

	c.Begin(Point{X: -0.5, Y: -0.5})
	moves := 10
	for i := 1; i <= moves; i++ {
		c.Extend(Point{X: -0.5 + float32(i)*0.1, Y: -0.5})
	}
	s, ok := c.End()
	require.True(t, ok)

	assert.GreaterOrEqual(t, len(s.Points), 1)
	assert.LessOrEqual(t, len(s.Points), moves+1)
	for i := 1; i < len(s.Points); i++ {
		assert.Greater(t, s.Points[i].DistSq(s.Points[i-1]), float32(Epsilon))
	}
	assert.Equal(t, "local", s.Owner)
	assert.NotEmpty(t, s.ID)
	assert.Equal(t, 1, c.Len())
}

func TestExtendDropsNearDuplicates(t *testing.T) {
	c := NewCanvas(800, 600)
	c.Begin(Point{X: 0, Y: 0})

	assert.False(t, c.Extend(Point{X: 0, Y: 0}))
	assert.False(t, c.Extend(Point{X: 0.0005, Y: 0}))
	assert.True(t, c.Extend(Point{X: 0.1, Y: 0}))

	s, ok := c.End()
	require.True(t, ok)
	assert.Len(t, s.Points, 2)
}

func TestExtendWithoutBegin(t *testing.T) {
	c := NewCanvas(800, 600)
	assert.False(t, c.Extend(Point{X: 0.1, Y: 0.1}))
	_, ok := c.End()
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}

func TestSinglePointStrokeRetainedNotDrawable(t *testing.T) {
	c := NewCanvas(800, 600)
	c.Begin(Point{X: 0.2, Y: 0.3})
	s, ok := c.End()
	require.True(t, ok)
	assert.Len(t, s.Points, 1)
	assert.False(t, s.Drawable())
	assert.Equal(t, 1, c.Len())
}

func TestClearEmptiesEverything(t *testing.T) {
	c := NewCanvas(800, 600)
	c.Begin(Point{X: 0, Y: 0})
	c.Extend(Point{X: 0.5, Y: 0.5})
	c.End()
	c.Begin(Point{X: -0.5, Y: 0})
	c.Extend(Point{X: -0.4, Y: 0})

	c.Clear()

	assert.Equal(t, 0, c.Len())
	_, inProgress := c.Current()
	assert.False(t, inProgress)

	// Clearing an already empty canvas is fine.
	c.Clear()
	assert.Equal(t, 0, c.Len())
}

func TestClearOwner(t *testing.T) {
	c := NewCanvas(800, 600)
	c.Add(Stroke{ID: "a", Owner: "alice", Points: []Point{{}, {X: 0.1}}})
	c.Add(Stroke{ID: "b", Owner: "bob", Points: []Point{{}, {X: 0.2}}})
	c.Add(Stroke{ID: "c", Owner: "alice", Points: []Point{{}, {X: 0.3}}})

	c.ClearOwner("alice")
	strokes := c.Snapshot()
	require.Len(t, strokes, 1)
	assert.Equal(t, "b", strokes[0].ID)

	// A cleared stroke may be re-added later.
	assert.True(t, c.Add(Stroke{ID: "a", Owner: "alice", Points: []Point{{}}}))

	c.ClearOwner("all")
	assert.Equal(t, 0, c.Len())
}

func TestAddDeduplicatesByID(t *testing.T) {
	c := NewCanvas(800, 600)
	s := Stroke{ID: "x", Points: []Point{{}, {X: 0.5}}}
	assert.True(t, c.Add(s))
	assert.False(t, c.Add(s))
	assert.False(t, c.Add(Stroke{Points: []Point{{}}})) // no ID
	assert.Equal(t, 1, c.Len())
}

func TestResizeKeepsStrokeData(t *testing.T) {
	c := NewCanvas(800, 600)
	c.Begin(Point{X: -1, Y: 1})
	c.Extend(Point{X: 1, Y: -1})
	before, ok := c.End()
	require.True(t, ok)

	c.Resize(400, 300)

	after := c.Snapshot()
	require.Len(t, after, 1)
	assert.Equal(t, before.Points, after[0].Points)
	assert.Equal(t, Viewport{W: 400, H: 300}, c.Viewport())
}

func TestBeginDiscardsPreviousInProgress(t *testing.T) {
	c := NewCanvas(800, 600)
	c.Begin(Point{X: 0, Y: 0})
	c.Extend(Point{X: 0.5, Y: 0})
	c.Begin(Point{X: -0.5, Y: 0})
	s, ok := c.End()
	require.True(t, ok)
	assert.Len(t, s.Points, 1)
	assert.Equal(t, float32(-0.5), s.Points[0].X)
}

func TestSnapshotIsACopy(t *testing.T) {
	c := NewCanvas(800, 600)
	c.Add(Stroke{ID: "a", Points: []Point{{}, {X: 0.1}}})
	snap := c.Snapshot()
	snap[0].ID = "mutated"
	assert.Equal(t, "a", c.Snapshot()[0].ID)
}
