package net

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"localsketch/internal/sketch"
)

func dialTest(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestHubReceivesPeerMessages(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	received := make(chan Message, 1)
	hub.OnMessage = func(msg Message, origin *Peer) {
		received <- msg
	}

	srv := httptest.NewServer(hub)
	defer srv.Close()

	conn := dialTest(t, srv)
	msg := Message{
		Type:    MsgStroke,
		Stroke:  &sketch.Stroke{ID: "s1", Points: []sketch.Point{{}, {X: 0.5}}},
		Lamport: 1,
		Site:    "peer-a",
	}
	require.NoError(t, conn.WriteJSON(msg))

	select {
	case got := <-received:
		assert.Equal(t, MsgStroke, got.Type)
		require.NotNil(t, got.Stroke)
		assert.Equal(t, "s1", got.Stroke.ID)
		assert.Equal(t, "peer-a", got.Site)
	case <-time.After(2 * time.Second):
		t.Fatal("hub never delivered the message")
	}
}

func TestHubBroadcastReachesPeers(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	srv := httptest.NewServer(hub)
	defer srv.Close()

	conn := dialTest(t, srv)

	// Wait for the hub to register the peer.
	require.Eventually(t, func() bool { return hub.PeerCount() == 1 },
		2*time.Second, 10*time.Millisecond)

	hub.Broadcast(Message{Type: MsgClear, OwnerID: "all", Lamport: 2, Site: "host"}, nil)

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var got Message
	require.NoError(t, conn.ReadJSON(&got))
	assert.Equal(t, MsgClear, got.Type)
	assert.Equal(t, "all", got.OwnerID)
}

func TestHubSyncsBoardOnJoin(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	board := []sketch.Stroke{{ID: "a", Points: []sketch.Point{{}, {X: 0.1}}}}
	hub.OnJoin = func(p *Peer) {
		p.Send(Message{Type: MsgSync, Strokes: board, Site: "host"})
	}

	srv := httptest.NewServer(hub)
	defer srv.Close()

	conn := dialTest(t, srv)
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var got Message
	require.NoError(t, conn.ReadJSON(&got))
	assert.Equal(t, MsgSync, got.Type)
	require.Len(t, got.Strokes, 1)
	assert.Equal(t, "a", got.Strokes[0].ID)
}
