// Package gateway implements the core synthesis pipeline.
//
// The gateway receives requests from transports, validates them, resolves
// omitted parameters to configured defaults, delegates to the external
// synthesis provider under a deadline, and normalizes the provider's result
// into a uniform shape. It is stateless: every invocation is a pure function
// of its inputs plus the injected provider handle.
package gateway

import (
	"context"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/luarmor-v4/puter-tts-api/internal/config"
	"github.com/luarmor-v4/puter-tts-api/internal/message"
	"github.com/luarmor-v4/puter-tts-api/internal/provider"
)

// DefaultTimeout bounds the delegated provider call when no timeout is
// configured.
const DefaultTimeout = 30 * time.Second

// Gateway is the synthesis pipeline. One instance is constructed at startup
// and shared read-only across all requests.
type Gateway struct {
	client   provider.Client // nil when startup initialization failed
	defaults config.SynthesisConfig
	timeout  time.Duration
}

// New creates a Gateway around the given provider client. A nil client is
// permitted: the gateway starts unready and refuses synthesis until restarted
// with a working provider.
func New(client provider.Client, defaults config.SynthesisConfig, timeout time.Duration) *Gateway {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if defaults.MaxTextLength <= 0 {
		defaults.MaxTextLength = 3000
	}
	return &Gateway{
		client:   client,
		defaults: defaults,
		timeout:  timeout,
	}
}

// Ready reports whether the provider client was successfully initialized.
func (g *Gateway) Ready() bool { return g.client != nil }

// DefaultVoice returns the voice applied when a request omits voice_id.
func (g *Gateway) DefaultVoice() string { return g.defaults.DefaultVoice }

// Synthesize runs one request through the full pipeline:
// validate → readiness → resolve defaults → delegated call with deadline →
// normalize. Exactly one provider call is made, or zero if validation or the
// readiness check fails. Nothing is retried.
func (g *Gateway) Synthesize(ctx context.Context, req message.SynthesisRequest) (*message.SynthesisResult, error) {
	// Step 1: validation, before anything touches the provider.
	length := utf8.RuneCountInString(req.Text)
	if req.Text == "" {
		return nil, &InvalidInputError{
			Reason: "text is required",
			Limit:  g.defaults.MaxTextLength,
		}
	}
	if length > g.defaults.MaxTextLength {
		return nil, &InvalidInputError{
			Reason: "text too long",
			Length: length,
			Limit:  g.defaults.MaxTextLength,
		}
	}

	// Step 2: readiness.
	if g.client == nil {
		return nil, ErrNotReady
	}

	// Step 3: resolve omitted parameters to defaults. Values are passed to
	// the provider verbatim — invalid voices/models/formats surface as
	// provider errors, not local ones.
	resolved := provider.Request{
		Text:         req.Text,
		Voice:        req.VoiceID,
		Model:        req.Model,
		OutputFormat: req.OutputFormat,
	}
	if resolved.Voice == "" {
		resolved.Voice = g.defaults.DefaultVoice
	}
	if resolved.Model == "" {
		resolved.Model = g.defaults.DefaultModel
	}
	if resolved.OutputFormat == "" {
		resolved.OutputFormat = g.defaults.DefaultFormat
	}

	logger := slog.With("backend", g.client.Name(), "voice", resolved.Voice,
		"model", resolved.Model, "text_length", length)
	logger.Info("synthesis started")

	// Step 4: delegated call racing a timer. This is a first-to-settle race,
	// not a cancellable operation: the call context is detached so a timeout
	// never aborts the in-flight provider call. The result channel is
	// buffered, so a late-losing call delivers its result and exits instead
	// of leaking a goroutine.
	start := time.Now()

	type outcome struct {
		synth *provider.Synthesis
		err   error
	}
	done := make(chan outcome, 1)
	callCtx := context.WithoutCancel(ctx)
	go func() {
		synth, err := g.client.Synthesize(callCtx, resolved)
		done <- outcome{synth: synth, err: err}
	}()

	timer := time.NewTimer(g.timeout)
	defer timer.Stop()

	var out outcome
	select {
	case out = <-done:
	case <-timer.C:
		logger.Warn("synthesis timed out, abandoning provider call", "timeout", g.timeout)
		return nil, &TimeoutError{Limit: g.timeout}
	}

	elapsed := time.Since(start)
	if out.err != nil {
		logger.Error("synthesis failed", "error", out.err, "elapsed", elapsed)
		return nil, &ProviderError{Err: out.err}
	}

	// Step 5: normalize the locator. "src" is the current key, "url" the
	// legacy one; either is accepted, in that order.
	var locator string
	var fields []string
	if out.synth != nil {
		fields = out.synth.Fields
		locator = out.synth.Src
		if locator == "" {
			locator = out.synth.URL
		}
	}
	if locator == "" {
		logger.Error("provider returned no audio locator", "fields", fields)
		return nil, &MalformedResponseError{Fields: fields}
	}

	// Step 6: package the result with what was actually used.
	logger.Info("synthesis complete", "elapsed", elapsed)
	return &message.SynthesisResult{
		AudioURL:      locator,
		VoiceUsed:     resolved.Voice,
		ModelUsed:     resolved.Model,
		OutputFormat:  resolved.OutputFormat,
		TextLength:    length,
		ElapsedMillis: elapsed.Milliseconds(),
	}, nil
}
