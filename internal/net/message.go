package net

import "localsketch/internal/sketch"

// MsgType identifies a board operation on the wire.
type MsgType string

const (
	MsgStroke MsgType = "stroke"
	MsgClear  MsgType = "clear"
	// MsgSync carries the full board to a newly joined peer.
	MsgSync MsgType = "sync"
)

// Message is the JSON envelope exchanged between host and peers.
type Message struct {
	Type    MsgType         `json:"type"`
	Stroke  *sketch.Stroke  `json:"stroke,omitempty"`
	Strokes []sketch.Stroke `json:"strokes,omitempty"`
	OwnerID string          `json:"owner_id,omitempty"`
	Lamport uint64          `json:"lamport"`
	Site    string          `json:"site"`
}
