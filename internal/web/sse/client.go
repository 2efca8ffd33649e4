package sse

import (
	"net/http"
	"time"

	"github.com/google/uuid"
)

const (
	// Time between keepalive pings
	pingPeriod = 15 * time.Second

	// Buffer size for outgoing messages
	sendBufferSize = 64
)

// Client represents a connected SSE client
type Client struct {
	hub         *Hub
	id          string
	send        chan []byte
	connectedAt time.Time
}

// NewClient creates a new SSE client
func NewClient(hub *Hub) *Client {
	return &Client{
		hub:         hub,
		id:          uuid.NewString(),
		send:        make(chan []byte, sendBufferSize),
		connectedAt: time.Now(),
	}
}

// ID returns the client's connection ID
func (c *Client) ID() string {
	return c.id
}

// Messages returns the channel the hub delivers to. It is closed when the
// client is unregistered.
func (c *Client) Messages() <-chan []byte {
	return c.send
}

// InitialFunc builds the messages a new stream starts with
type InitialFunc func() ([][]byte, error)

// ServeSSE streams hub messages to the client until it disconnects. The
// client is registered before initial runs, so a transition racing the
// connect is queued behind the initial messages rather than lost. If initial
// fails nothing has been written and the error is returned to the caller.
func ServeSSE(w http.ResponseWriter, r *http.Request, hub *Hub, initial InitialFunc) error {
	// Check if SSE is supported
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming unsupported", http.StatusInternalServerError)
		return nil
	}

	client := NewClient(hub)
	hub.Register(client)
	defer hub.Unregister(client)

	var messages [][]byte
	if initial != nil {
		var err error
		if messages, err = initial(); err != nil {
			return err
		}
	}

	// Set SSE headers
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("X-Accel-Buffering", "no") // Disable nginx buffering

	_, _ = w.Write(formatSSEMessage("connected", `{"status":"connected","client_id":"`+client.id+`"}`))
	for _, msg := range messages {
		_, _ = w.Write(msg)
	}
	flusher.Flush()

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case message, ok := <-client.send:
			if !ok {
				// Hub closed the channel
				return nil
			}
			if _, err := w.Write(message); err != nil {
				return nil
			}
			flusher.Flush()

		case <-ticker.C:
			if _, err := w.Write([]byte(": keepalive\n\n")); err != nil {
				return nil
			}
			flusher.Flush()

		case <-r.Context().Done():
			return nil
		}
	}
}
