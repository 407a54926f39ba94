package net

import (
	"fmt"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

// Client is a joined peer's connection to a host.
type Client struct {
	conn *websocket.Conn
	mu   sync.Mutex
	log  zerolog.Logger
}

// Dial connects to a host at host:port and returns the client.
func Dial(addr string, log zerolog.Logger) (*Client, error) {
	url := fmt.Sprintf("ws://%s%s", addr, WSPath)
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", url, err)
	}
	return &Client{
		conn: conn,
		log:  log.With().Str("component", "client").Logger(),
	}, nil
}

// Send writes one message to the host.
func (c *Client) Send(msg Message) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(msg)
}

// ReadLoop delivers incoming messages to onMessage until the
// connection drops, then reports the disconnect reason.
func (c *Client) ReadLoop(onMessage func(Message)) error {
	for {
		var msg Message
		if err := c.conn.ReadJSON(&msg); err != nil {
			c.log.Info().Err(err).Msg("disconnected from host")
			return fmt.Errorf("read from host: %w", err)
		}
		onMessage(msg)
	}
}

// LocalAddr returns the client side address, used as the peer's site ID
// fallback display.
func (c *Client) LocalAddr() string {
	return c.conn.LocalAddr().String()
}

func (c *Client) Close() error {
	return c.conn.Close()
}
