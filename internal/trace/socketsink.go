package trace

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/url"
	"time"

	"github.com/oro-core/netplan/internal/ctxlog"
	"github.com/zishang520/engine.io-client-go/transports"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io-client-go/socket"
)

// SocketSink streams events to a live monitor over a socket.io namespace,
// emitting one "trace_event" message per Event in the flushed batch. It is
// diagnostics-only: nothing downstream of it feeds back into planning.
type SocketSink struct {
	io        *socket.Socket
	eventName string
}

// SocketSinkOptions configures a new SocketSink.
type SocketSinkOptions struct {
	URL                string
	Namespace          string
	InsecureSkipVerify bool
	// EventName is the socket.io event name each Event is emitted under.
	// Defaults to "trace_event" when empty.
	EventName string
}

// NewSocketSink connects to the monitor named by opts.URL and returns a
// Sink that streams every flushed Event to it. The connection attempt
// follows the same connect/connect_error/timeout select shape as the
// teacher's socketio_client asset handler.
func NewSocketSink(ctx context.Context, opts SocketSinkOptions) (*SocketSink, error) {
	logger := ctxlog.FromContext(ctx).With("sink", "trace.SocketSink", "url", opts.URL)

	parsedURL, err := url.Parse(opts.URL)
	if err != nil {
		return nil, fmt.Errorf("trace: parsing sink URL: %w", err)
	}

	sockOpts := socket.DefaultOptions()
	sockOpts.SetPath(parsedURL.Path)
	if opts.InsecureSkipVerify {
		logger.Warn("skipping TLS certificate verification")
		sockOpts.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	}
	sockOpts.SetTransports(types.NewSet(transports.WebSocket))

	baseURL := fmt.Sprintf("%s://%s", parsedURL.Scheme, parsedURL.Host)
	manager := socket.NewManager(baseURL, sockOpts)
	io := manager.Socket(opts.Namespace, sockOpts)

	connectChan := make(chan error, 1)
	io.Once(types.EventName("connect"), func(...any) {
		logger.Info("trace sink connected", "sid", io.Id())
		connectChan <- nil
	})
	io.Once(types.EventName("connect_error"), func(errs ...any) {
		err, _ := errs[0].(error)
		connectChan <- err
	})

	io.Connect()

	select {
	case err := <-connectChan:
		if err != nil {
			io.Disconnect()
			return nil, fmt.Errorf("trace: socket.io connection failed: %w", err)
		}
	case <-ctx.Done():
		io.Disconnect()
		return nil, fmt.Errorf("trace: context cancelled while connecting to sink")
	case <-time.After(15 * time.Second):
		io.Disconnect()
		return nil, fmt.Errorf("trace: timed out after 15s connecting to sink")
	}

	eventName := opts.EventName
	if eventName == "" {
		eventName = "trace_event"
	}
	return &SocketSink{io: io, eventName: eventName}, nil
}

// Emit sends every event in the batch as a separate socket.io message.
func (s *SocketSink) Emit(ctx context.Context, events []Event) error {
	for _, e := range events {
		s.io.Emit(s.eventName, e)
	}
	return nil
}

// Close disconnects the underlying socket.
func (s *SocketSink) Close() {
	s.io.Disconnect()
}

var _ Sink = (*SocketSink)(nil)
