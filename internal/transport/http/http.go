// Package http implements the HTTP transport for puter-tts-api.
//
// This transport exposes the public REST API: a status endpoint, the
// synthesis endpoint, a canned test endpoint, and swagger documentation.
// Gateway errors are mapped onto HTTP status codes here; the gateway itself
// is transport-agnostic.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/rs/xid"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/luarmor-v4/puter-tts-api/docs"
	"github.com/luarmor-v4/puter-tts-api/internal/gateway"
	"github.com/luarmor-v4/puter-tts-api/internal/message"
	"github.com/luarmor-v4/puter-tts-api/internal/transport"
)

// maxBodyBytes bounds the request body read. The text limit is enforced by
// the gateway; this only guards against pathological payloads.
const maxBodyBytes = 1 << 20 // 1 MB

// testText is the canned payload synthesized by POST /test.
const testText = "This is a test of the Puter text to speech proxy."

// Info carries the service identity reported by the status endpoint.
type Info struct {
	// ServiceName is the human-readable service identifier.
	ServiceName string

	// DefaultVoice is the voice applied when requests omit voice_id.
	DefaultVoice string

	// Ready reports whether the synthesis backend is initialized.
	Ready func() bool
}

// Transport implements transport.Transport over HTTP.
type Transport struct {
	port   int
	info   Info
	server *http.Server
}

// New creates a new HTTP transport on the given port.
func New(port int, info Info) *Transport {
	return &Transport{port: port, info: info}
}

// Name returns the transport identifier.
func (t *Transport) Name() string { return "http" }

// Listen starts the HTTP server and routes incoming requests to the handler.
func (t *Transport) Listen(ctx context.Context, handler transport.Handler) error {
	t.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", t.port),
		Handler:           requestID(t.Routes(handler)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	slog.Info("http transport listening", "port", t.port)

	go func() {
		<-ctx.Done()
		slog.Info("http transport shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = t.server.Shutdown(shutdownCtx)
	}()

	if err := t.server.ListenAndServe(); err != http.ErrServerClosed {
		return fmt.Errorf("http listen: %w", err)
	}
	return nil
}

// Routes builds the API mux. Exposed separately so tests can exercise the
// routing without binding a port.
func (t *Transport) Routes(handler transport.Handler) http.Handler {
	mux := http.NewServeMux()

	// GET / — service status.
	mux.HandleFunc("GET /{$}", t.handleStatus)

	// POST /tts — main synthesis operation.
	mux.HandleFunc("POST /tts", func(w http.ResponseWriter, r *http.Request) {
		t.handleTTS(w, r, handler)
	})

	// POST /test — canned synthesis with the default voice.
	mux.HandleFunc("POST /test", func(w http.ResponseWriter, r *http.Request) {
		t.handleTest(w, r, handler)
	})

	// Swagger UI — serves the generated OpenAPI docs under /docs/.
	mux.HandleFunc("GET /docs", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/docs/index.html", http.StatusMovedPermanently)
	})
	mux.Handle("GET /docs/", httpSwagger.Handler(
		httpSwagger.URL("/docs/doc.json"),
	))

	// Everything else — 404 with the available endpoint list.
	mux.HandleFunc("/", t.handleNotFound)

	return mux
}

// handleStatus reports service identity and readiness.
//
// @Summary     Service status
// @Description Returns the service name, the configured default voice, and whether the synthesis backend is ready.
// @Tags        status
// @Produce     json
// @Success     200  {object}  message.StatusInfo
// @Router      / [get]
func (t *Transport) handleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, message.StatusInfo{
		Status:       "online",
		ServiceName:  t.info.ServiceName,
		DefaultVoice: t.info.DefaultVoice,
		Ready:        t.info.Ready(),
	})
}

// handleTTS processes a POST /tts request.
//
// @Summary     Synthesize speech from text
// @Description Forwards the text to the synthesis provider and returns a playable audio URL (hosted URL or data URI).
// @Description Omitted voice_id, model, and output_format fall back to the configured defaults.
// @Tags        synthesis
// @Accept      json
// @Produce     json
// @Param       request  body      message.SynthesisRequest  true  "Synthesis request"
// @Success     200  {object}  message.SuccessEnvelope  "Synthesized audio locator"
// @Failure     400  {object}  message.ErrorEnvelope    "Missing or oversized text"
// @Failure     503  {object}  message.ErrorEnvelope    "Synthesis backend not initialized"
// @Failure     500  {object}  message.ErrorEnvelope    "Provider failure, timeout, or malformed provider response"
// @Router      /tts [post]
func (t *Transport) handleTTS(w http.ResponseWriter, r *http.Request, handler transport.Handler) {
	var req message.SynthesisRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, message.ErrorEnvelope{
			Error: "invalid json: " + err.Error(),
		})
		return
	}

	result, err := handler(r.Context(), req)
	if err != nil {
		writeGatewayError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, successEnvelope(result, "speech generated successfully"))
}

// handleTest processes a POST /test request.
//
// @Summary     Test synthesis
// @Description Synthesizes a canned phrase with the default voice, model, and format. Useful for smoke-testing credentials and connectivity.
// @Tags        synthesis
// @Produce     json
// @Success     200  {object}  message.SuccessEnvelope
// @Failure     503  {object}  message.ErrorEnvelope
// @Failure     500  {object}  message.ErrorEnvelope
// @Router      /test [post]
func (t *Transport) handleTest(w http.ResponseWriter, r *http.Request, handler transport.Handler) {
	result, err := handler(r.Context(), message.SynthesisRequest{Text: testText})
	if err != nil {
		writeGatewayError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, successEnvelope(result,
		fmt.Sprintf("test synthesis with default voice %q", result.VoiceUsed)))
}

// handleNotFound answers any unrouted path with the endpoint list.
func (t *Transport) handleNotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, message.ErrorEnvelope{
		Error: fmt.Sprintf("no route for %s %s", r.Method, r.URL.Path),
		Endpoints: []string{
			"GET /",
			"GET /docs",
			"POST /tts",
			"POST /test",
		},
	})
}

// Close gracefully shuts down the HTTP server.
func (t *Transport) Close() error {
	if t.server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return t.server.Shutdown(ctx)
	}
	return nil
}

// --- Internal helpers ---

// writeGatewayError maps gateway error kinds onto HTTP statuses and the
// uniform error envelope: 400 for caller errors, 503 for an uninitialized
// backend, 500 for every external-dependency failure.
func writeGatewayError(w http.ResponseWriter, err error) {
	var (
		invalid   *gateway.InvalidInputError
		timeout   *gateway.TimeoutError
		malformed *gateway.MalformedResponseError
	)

	switch {
	case errors.As(err, &invalid):
		writeJSON(w, http.StatusBadRequest, message.ErrorEnvelope{
			Error:      invalid.Error(),
			TextLength: invalid.Length,
			Limit:      invalid.Limit,
		})
	case errors.Is(err, gateway.ErrNotReady):
		writeJSON(w, http.StatusServiceUnavailable, message.ErrorEnvelope{
			Error: "service unavailable: " + err.Error(),
		})
	case errors.As(err, &timeout):
		writeJSON(w, http.StatusInternalServerError, message.ErrorEnvelope{
			Error:          timeout.Error(),
			TimeoutSeconds: int(timeout.Limit.Seconds()),
		})
	case errors.As(err, &malformed):
		writeJSON(w, http.StatusInternalServerError, message.ErrorEnvelope{
			Error:         malformed.Error(),
			FieldsPresent: malformed.Fields,
		})
	default:
		writeJSON(w, http.StatusInternalServerError, message.ErrorEnvelope{
			Error: err.Error(),
		})
	}
}

func successEnvelope(result *message.SynthesisResult, msg string) message.SuccessEnvelope {
	return message.SuccessEnvelope{
		Success:        true,
		AudioURL:       result.AudioURL,
		UsedVoice:      result.VoiceUsed,
		TextLength:     result.TextLength,
		Model:          result.ModelUsed,
		OutputFormat:   result.OutputFormat,
		GenerationTime: result.ElapsedMillis,
		Message:        msg,
	}
}

// writeJSON writes v as the JSON response body. ErrorEnvelope values get
// Success forced to false so callers can always branch on one field.
func writeJSON(w http.ResponseWriter, status int, v any) {
	if env, ok := v.(message.ErrorEnvelope); ok {
		env.Success = false
		v = env
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// requestID tags every request with an xid and logs its completion.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = xid.New().String()
		}
		w.Header().Set("X-Request-ID", id)

		start := time.Now()
		next.ServeHTTP(w, r)
		slog.Debug("request handled",
			"request_id", id, "method", r.Method, "path", r.URL.Path,
			"duration", time.Since(start))
	})
}
