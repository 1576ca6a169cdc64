// Package puter implements the provider Client against the Puter driver API.
//
// Puter exposes text-to-speech through its AI driver endpoint: a JSON POST
// authenticated with a bearer token. The response carries the synthesized
// audio as a locator — either a hosted URL or a base64 data URI — under the
// "src" key ("url" on older deployments).
package puter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sort"

	"github.com/luarmor-v4/puter-tts-api/internal/config"
	"github.com/luarmor-v4/puter-tts-api/internal/provider"
)

const defaultBaseURL = "https://api.puter.com"

// Client talks to the Puter txt2speech endpoint.
type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// New creates a new Puter client from config.
// Returns an error if no API key is configured — the caller decides whether
// to run degraded (unready) or abort.
func New(cfg config.ProviderConfig) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("puter: missing API key (set PUTER_API_KEY)")
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: baseURL,
		client:  &http.Client{},
	}, nil
}

// Name returns the backend identifier.
func (c *Client) Name() string { return "puter" }

// Synthesize sends one synthesis request to the Puter driver API.
func (c *Client) Synthesize(ctx context.Context, req provider.Request) (*provider.Synthesis, error) {
	body, err := json.Marshal(synthesisRequest{
		Text:         req.Text,
		Voice:        req.Voice,
		Model:        req.Model,
		OutputFormat: req.OutputFormat,
	})
	if err != nil {
		return nil, fmt.Errorf("marshalling synthesis request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/ai/txt2speech", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("synthesis request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	// Decode into a generic map first: the locator key has changed across
	// provider versions and the full key set is needed for diagnostics.
	var raw map[string]json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decoding synthesis response: %w", err)
	}

	synth := &provider.Synthesis{
		Src: stringField(raw, "src"),
		URL: stringField(raw, "url"),
	}
	for k := range raw {
		synth.Fields = append(synth.Fields, k)
	}
	sort.Strings(synth.Fields)

	slog.Debug("puter synthesis response",
		"status", resp.StatusCode, "fields", synth.Fields)
	return synth, nil
}

// Close is a no-op — connections are pooled by the http.Client.
func (c *Client) Close() error { return nil }

// --- Internal types and helpers ---

type synthesisRequest struct {
	Text         string `json:"text"`
	Voice        string `json:"voice"`
	Model        string `json:"model"`
	OutputFormat string `json:"output_format"`
}

// apiError turns a non-200 provider response into an error carrying the
// provider's own message. Bodies are read with a hard limit and stack-like
// detail is never forwarded.
func apiError(resp *http.Response) error {
	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))

	var e struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(respBody, &e); err == nil {
		if e.Error.Message != "" {
			return fmt.Errorf("synthesis failed (status %d): %s", resp.StatusCode, e.Error.Message)
		}
		if e.Message != "" {
			return fmt.Errorf("synthesis failed (status %d): %s", resp.StatusCode, e.Message)
		}
	}
	return fmt.Errorf("synthesis failed (status %d)", resp.StatusCode)
}

func stringField(raw map[string]json.RawMessage, key string) string {
	v, ok := raw[key]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		return ""
	}
	return s
}
