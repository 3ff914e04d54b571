package events

import (
	"context"
	"log/slog"
)

// Publisher accepts events for delivery. The service layer emits through
// this after each successful mutation.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// Sink receives events drained from the bus (in-memory store, Kafka, ...).
type Sink interface {
	Publish(ctx context.Context, event Event) error
}

// Bus is a buffered in-process queue decoupling emission from delivery.
// Publish never blocks mutations behind a slow sink beyond the buffer.
type Bus struct {
	ch chan Event
}

// NewBus creates a bus with the given buffer size.
func NewBus(buffer int) *Bus {
	if buffer <= 0 {
		buffer = 256
	}
	return &Bus{ch: make(chan Event, buffer)}
}

// Publish enqueues the event, giving up only if ctx is done first.
func (b *Bus) Publish(ctx context.Context, event Event) error {
	select {
	case b.ch <- event:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Relay drains a bus into a sink. Run it under an errgroup next to the HTTP
// server; it exits when ctx is cancelled.
type Relay struct {
	bus    *Bus
	sink   Sink
	logger *slog.Logger
}

func NewRelay(bus *Bus, sink Sink, logger *slog.Logger) *Relay {
	return &Relay{bus: bus, sink: sink, logger: logger}
}

// Run delivers events until ctx is cancelled. Delivery failures are logged
// and skipped: the mutation already committed, so the registry never unwinds
// state over a sink error.
func (r *Relay) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event := <-r.bus.ch:
			if err := r.sink.Publish(ctx, event); err != nil {
				r.logger.ErrorContext(ctx, "event delivery failed",
					"event_id", event.ID,
					"event_type", string(event.Type),
					"error", err,
				)
			}
		}
	}
}
