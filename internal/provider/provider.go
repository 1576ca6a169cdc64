// Package provider defines the interface for external text-to-speech
// synthesis backends.
//
// The gateway doesn't care which provider produces the audio — it only works
// with the Client contract. Each backend (puter, stub) implements this
// interface and is selected at startup via config.
package provider

import "context"

// Request carries fully resolved synthesis parameters to a backend.
// Defaults have already been applied by the gateway; every field is set.
type Request struct {
	// Text is the payload to synthesize.
	Text string

	// Voice is the provider voice identifier.
	Voice string

	// Model is the synthesis model identifier.
	Model string

	// OutputFormat is the audio codec/format tag.
	OutputFormat string
}

// Synthesis is a provider's raw response, before normalization.
//
// Providers have shipped the audio locator under two different keys over
// time: "src" (current) and "url" (legacy). Both are surfaced here verbatim;
// precedence between them is the gateway's job, not the backend's.
type Synthesis struct {
	// Src is the audio locator under the current response key.
	Src string

	// URL is the audio locator under the legacy response key.
	URL string

	// Fields lists the top-level keys present in the provider response,
	// used for diagnostics when no locator is found.
	Fields []string
}

// Client is the handle through which the gateway reaches a synthesis backend.
type Client interface {
	// Name returns the backend identifier (e.g., "puter", "stub").
	Name() string

	// Synthesize performs one synthesis call. It must honor ctx for request
	// plumbing but is not required to support cancellation of an in-flight
	// provider call.
	Synthesize(ctx context.Context, req Request) (*Synthesis, error)

	// Close releases any resources held by the client.
	Close() error
}
