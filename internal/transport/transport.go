package transport

import (
	"context"

	"github.com/Tamjid17/TGBot/internal/model"
)

// EventHandler is the pipeline as seen from any transport: one inbound
// event in, zero or more replies out.
type EventHandler interface {
	HandleEvent(ctx context.Context, ev model.Event) []model.Reply
}

// Sender delivers one reply back to the originating caller.
type Sender interface {
	SendReply(ctx context.Context, reply model.Reply) error
}

// Consumer is a running inbound transport. Run blocks until the
// transport stops; Close asks it to stop.
type Consumer interface {
	Run() error
	Close()
}
