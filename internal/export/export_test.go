package export

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"localsketch/internal/sketch"
)

func testStrokes() []sketch.Stroke {
	return []sketch.Stroke{
		{
			ID:     "diag",
			Points: []sketch.Point{{X: -0.5, Y: -0.5}, {X: 0.5, Y: 0.5}},
			Color:  "black",
			Width:  4,
		},
		{
			ID:     "dot",
			Points: []sketch.Point{{X: 0.9, Y: 0.9}},
			Color:  "red",
			Width:  4,
		},
	}
}

func TestPNGExport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PNG(&buf, testStrokes(), 64, 64))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())
	assert.Equal(t, 64, img.Bounds().Dy())

	// The diagonal passes through the center, so it must not be white there.
	r, g, b, _ := img.At(32, 32).RGBA()
	assert.True(t, r < 0xffff || g < 0xffff || b < 0xffff,
		"center pixel should be painted by the stroke")

	// The top-left corner is untouched white background.
	r, g, b, _ = img.At(1, 1).RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0xffff), g)
	assert.Equal(t, uint32(0xffff), b)
}

func TestPNGRejectsBadSize(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, PNG(&buf, nil, 0, 64))
}

func TestPDFExport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.pdf")
	require.NoError(t, PDF(path, testStrokes()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")), "file should be a PDF")
	assert.Greater(t, len(data), 100)
}

func TestFitMappingStaysInsideMargins(t *testing.T) {
	strokes := []sketch.Stroke{{
		Points: []sketch.Point{{X: -0.8, Y: -0.6}, {X: 0.4, Y: 0.9}},
	}}
	m := fitMapping(strokes)

	for _, p := range strokes[0].Points {
		x, y := m.apply(p)
		assert.GreaterOrEqual(t, x, float64(margin)-1e-9)
		assert.LessOrEqual(t, x, pageW-margin+1e-9)
		assert.GreaterOrEqual(t, y, float64(margin)-1e-9)
		assert.LessOrEqual(t, y, pageH-margin+1e-9)
	}

	// Top of the content maps above (smaller y than) the bottom.
	_, yTop := m.apply(sketch.Point{X: 0, Y: 0.9})
	_, yBottom := m.apply(sketch.Point{X: 0, Y: -0.6})
	assert.Less(t, yTop, yBottom)
}

func TestPDFEmptyBoard(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.pdf")
	require.NoError(t, PDF(path, nil))
	_, err := os.Stat(path)
	assert.NoError(t, err)
}
