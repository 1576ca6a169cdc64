// Package transport defines the interface for pluggable request transports.
//
// Each transport implements this interface and receives the gateway's
// synthesis pipeline as a handler. The gateway doesn't care how requests
// arrive — it only works with the Handler contract.
package transport

import (
	"context"

	"github.com/luarmor-v4/puter-tts-api/internal/message"
)

// Handler is a function that processes one synthesis request and returns a
// result. The gateway provides this handler to each transport.
type Handler func(ctx context.Context, req message.SynthesisRequest) (*message.SynthesisResult, error)

// Transport is the interface that every transport adapter must implement.
type Transport interface {
	// Name returns the transport identifier (e.g., "http").
	Name() string

	// Listen starts accepting incoming requests and dispatches them to the
	// handler. It blocks until the context is cancelled.
	Listen(ctx context.Context, handler Handler) error

	// Close gracefully shuts down the transport, draining in-flight work.
	Close() error
}
