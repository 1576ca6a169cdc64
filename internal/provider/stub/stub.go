// Package stub implements an offline provider Client that returns a canned
// data-URI locator without any network calls.
//
// It exists for local development and demo environments where no Puter
// credential is available: the full request pipeline (validation, defaults,
// timeout race, normalization) runs end to end against it.
package stub

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/luarmor-v4/puter-tts-api/internal/provider"
)

// silentMP3 is a minimal MPEG frame, enough for players to accept the URI.
var silentMP3 = []byte{0xFF, 0xFB, 0x90, 0x64, 0x00, 0x00, 0x00, 0x00}

// Client returns synthetic responses for every request.
type Client struct{}

// New creates a stub client.
func New() *Client { return &Client{} }

// Name returns the backend identifier.
func (c *Client) Name() string { return "stub" }

// Synthesize returns a canned data URI under the current response key.
func (c *Client) Synthesize(_ context.Context, req provider.Request) (*provider.Synthesis, error) {
	if req.Text == "" {
		return nil, fmt.Errorf("stub: empty text")
	}
	uri := fmt.Sprintf("data:audio/%s;base64,%s",
		req.OutputFormat, base64.StdEncoding.EncodeToString(silentMP3))
	return &provider.Synthesis{
		Src:    uri,
		Fields: []string{"src"},
	}, nil
}

// Close is a no-op.
func (c *Client) Close() error { return nil }
