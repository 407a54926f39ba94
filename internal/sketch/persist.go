package sketch

import (
	"encoding/json"
	"fmt"
	"io"
)

// Save writes the strokes as indented JSON.
func Save(w io.Writer, strokes []Stroke) error {
	data, err := json.MarshalIndent(strokes, "", "  ")
	if err != nil {
		return fmt.Errorf("encode strokes: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write strokes: %w", err)
	}
	return nil
}

// Load reads a stroke list previously written by Save.
func Load(r io.Reader) ([]Stroke, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read strokes: %w", err)
	}
	var strokes []Stroke
	if err := json.Unmarshal(data, &strokes); err != nil {
		return nil, fmt.Errorf("decode strokes: %w", err)
	}
	return strokes, nil
}
