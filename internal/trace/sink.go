package trace

import "context"

// Sink receives a batch of Events flushed by a Recorder. Implementations
// must be safe to call from a single goroutine at a time — Recorder never
// calls Emit concurrently with itself.
type Sink interface {
	Emit(ctx context.Context, events []Event) error
}

// NopSink discards every event. It is the default sink: tracing costs
// nothing until a caller wires in something that actually looks at the
// events, matching the teacher's scheduler.DefaultScheduler placeholder
// convention — a documented interface with a deliberately minimal
// reference implementation.
type NopSink struct{}

// Emit implements Sink by doing nothing.
func (NopSink) Emit(ctx context.Context, events []Event) error { return nil }

var _ Sink = NopSink{}
