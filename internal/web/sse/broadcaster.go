package sse

import (
	"encoding/json"
	"log/slog"

	"github.com/mcoot/blockhive/internal/api/response"
	"github.com/mcoot/blockhive/internal/model"
)

// Broadcaster turns controller transitions into SSE messages
type Broadcaster struct {
	hub    *Hub
	logger *slog.Logger
}

// NewBroadcaster creates a new Broadcaster
func NewBroadcaster(hub *Hub, logger *slog.Logger) *Broadcaster {
	return &Broadcaster{
		hub:    hub,
		logger: logger.With(slog.String("component", "sse-broadcaster")),
	}
}

// Observe has the shape of game.Observer. A state event carries the full
// game; every other event carries its own payload.
func (b *Broadcaster) Observe(events []model.Event, snap *model.Snapshot) {
	for _, e := range events {
		var msg []byte
		var err error
		if e.Type == model.EventStateChanged {
			msg, err = StateMessage(snap)
		} else {
			msg, err = EventMessage(e)
		}
		if err != nil {
			b.logger.Error("sse failed to encode event",
				slog.String("event", string(e.Type)),
				slog.Any("error", err))
			continue
		}
		b.hub.Broadcast(msg)
	}
}

// StateMessage encodes a snapshot as a "state" SSE message
func StateMessage(snap *model.Snapshot) ([]byte, error) {
	data, err := json.Marshal(response.GameStateFromSnapshot(snap))
	if err != nil {
		return nil, err
	}
	return formatSSEMessage(string(model.EventStateChanged), string(data)), nil
}

// EventMessage encodes a non-state event, named after its type
func EventMessage(e model.Event) ([]byte, error) {
	data, err := json.Marshal(response.EventFromModel(e))
	if err != nil {
		return nil, err
	}
	return formatSSEMessage(string(e.Type), string(data)), nil
}
