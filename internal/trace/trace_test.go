package trace

import (
	"context"
	"testing"

	"github.com/oro-core/netplan/internal/plan"
	"github.com/stretchr/testify/require"
)

type captureSink struct {
	batches [][]Event
}

func (c *captureSink) Emit(ctx context.Context, events []Event) error {
	c.batches = append(c.batches, events)
	return nil
}

func TestRecorder_FlushSendsBufferedEventsAndClears(t *testing.T) {
	sink := &captureSink{}
	r := NewRecorder(sink)

	r.Record(Event{Kind: MergeAccepted, Pass: "nms", Subject: plan.TaskID(1), Related: plan.TaskID(2)})
	r.Record(Event{Kind: DeploymentBound, Pass: "deploy", Subject: plan.TaskID(3)})

	require.Len(t, r.Events(), 2)

	require.NoError(t, r.Flush(context.Background()))
	require.Len(t, sink.batches, 1)
	require.Len(t, sink.batches[0], 2)

	require.Empty(t, r.Events())
	require.NoError(t, r.Flush(context.Background()))
	require.Len(t, sink.batches, 1)
}

func TestNewRecorder_NilSinkDefaultsToNop(t *testing.T) {
	r := NewRecorder(nil)
	r.Record(Event{Kind: CandidateConsidered, Pass: "nms"})
	require.NoError(t, r.Flush(context.Background()))
}

func TestNopSink_EmitIsNoop(t *testing.T) {
	var s NopSink
	require.NoError(t, s.Emit(context.Background(), []Event{{Kind: MergeAccepted}}))
}
