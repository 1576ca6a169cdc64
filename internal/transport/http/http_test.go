package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/luarmor-v4/puter-tts-api/internal/config"
	"github.com/luarmor-v4/puter-tts-api/internal/gateway"
	"github.com/luarmor-v4/puter-tts-api/internal/provider"
)

type fakeClient struct {
	synthesize func(ctx context.Context, req provider.Request) (*provider.Synthesis, error)
}

func (f *fakeClient) Name() string { return "fake" }

func (f *fakeClient) Synthesize(ctx context.Context, req provider.Request) (*provider.Synthesis, error) {
	return f.synthesize(ctx, req)
}

func (f *fakeClient) Close() error { return nil }

// newTestHandler wires the full route table around a gateway backed by the
// given provider client (nil means unready).
func newTestHandler(client provider.Client) http.Handler {
	gw := gateway.New(client, config.SynthesisConfig{
		DefaultVoice:  "Joanna",
		DefaultModel:  "neural",
		DefaultFormat: "mp3",
		MaxTextLength: 3000,
	}, time.Second)

	tr := New(0, Info{
		ServiceName:  "puter-tts-api",
		DefaultVoice: gw.DefaultVoice(),
		Ready:        gw.Ready,
	})
	return tr.Routes(gw.Synthesize)
}

func dataURIClient() *fakeClient {
	return &fakeClient{
		synthesize: func(context.Context, provider.Request) (*provider.Synthesis, error) {
			return &provider.Synthesis{Src: "data:audio/mp3;base64,AAAA", Fields: []string{"src"}}, nil
		},
	}
}

func doJSON(t *testing.T, h http.Handler, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var decoded map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("decoding %s %s response %q: %v", method, path, rec.Body.String(), err)
	}
	return rec, decoded
}

func TestStatusEndpoint(t *testing.T) {
	h := newTestHandler(dataURIClient())

	rec, body := doJSON(t, h, http.MethodGet, "/", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if body["status"] != "online" {
		t.Errorf("status field = %v", body["status"])
	}
	if body["serviceName"] != "puter-tts-api" {
		t.Errorf("serviceName = %v", body["serviceName"])
	}
	if body["defaultVoice"] != "Joanna" {
		t.Errorf("defaultVoice = %v", body["defaultVoice"])
	}
	if body["ready"] != true {
		t.Errorf("ready = %v, want true", body["ready"])
	}
}

func TestStatusReportsUnready(t *testing.T) {
	h := newTestHandler(nil)

	rec, body := doJSON(t, h, http.MethodGet, "/", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if body["ready"] != false {
		t.Errorf("ready = %v, want false", body["ready"])
	}
}

func TestTTSSuccess(t *testing.T) {
	h := newTestHandler(dataURIClient())

	rec, body := doJSON(t, h, http.MethodPost, "/tts", `{"text":"Hello"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}
	if body["success"] != true {
		t.Error("success = false on valid request")
	}
	if body["audioUrl"] != "data:audio/mp3;base64,AAAA" {
		t.Errorf("audioUrl = %v", body["audioUrl"])
	}
	if body["usedVoice"] != "Joanna" {
		t.Errorf("usedVoice = %v, want default", body["usedVoice"])
	}
	if body["textLength"] != float64(5) {
		t.Errorf("textLength = %v, want 5", body["textLength"])
	}
}

func TestTTSSuppliedParamsEchoed(t *testing.T) {
	h := newTestHandler(dataURIClient())

	_, body := doJSON(t, h, http.MethodPost, "/tts",
		`{"text":"Hello","voice_id":"Matthew","model":"generative","output_format":"ogg"}`)
	if body["usedVoice"] != "Matthew" {
		t.Errorf("usedVoice = %v, want Matthew", body["usedVoice"])
	}
	if body["model"] != "generative" {
		t.Errorf("model = %v, want generative", body["model"])
	}
	if body["outputFormat"] != "ogg" {
		t.Errorf("outputFormat = %v, want ogg", body["outputFormat"])
	}
}

func TestTTSInvalidJSON(t *testing.T) {
	h := newTestHandler(dataURIClient())

	rec, body := doJSON(t, h, http.MethodPost, "/tts", `{"text":`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if body["success"] != false {
		t.Error("success should be false")
	}
}

func TestTTSEmptyText(t *testing.T) {
	h := newTestHandler(dataURIClient())

	rec, body := doJSON(t, h, http.MethodPost, "/tts", `{"text":""}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if body["limit"] != float64(3000) {
		t.Errorf("limit = %v, want 3000", body["limit"])
	}
}

func TestTTSTextTooLong(t *testing.T) {
	h := newTestHandler(dataURIClient())

	long := strings.Repeat("a", 3001)
	rec, body := doJSON(t, h, http.MethodPost, "/tts", `{"text":"`+long+`"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if body["textLength"] != float64(3001) {
		t.Errorf("textLength = %v, want 3001", body["textLength"])
	}
	if body["limit"] != float64(3000) {
		t.Errorf("limit = %v, want 3000", body["limit"])
	}
}

func TestTTSNotReady(t *testing.T) {
	h := newTestHandler(nil)

	rec, body := doJSON(t, h, http.MethodPost, "/tts", `{"text":"Hello"}`)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
	if body["success"] != false {
		t.Error("success should be false")
	}
}

func TestTTSProviderFailure(t *testing.T) {
	h := newTestHandler(&fakeClient{
		synthesize: func(context.Context, provider.Request) (*provider.Synthesis, error) {
			return nil, context.DeadlineExceeded
		},
	})

	rec, body := doJSON(t, h, http.MethodPost, "/tts", `{"text":"Hello"}`)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if body["success"] != false {
		t.Error("success should be false")
	}
}

func TestTTSMalformedProviderResponse(t *testing.T) {
	h := newTestHandler(&fakeClient{
		synthesize: func(context.Context, provider.Request) (*provider.Synthesis, error) {
			return &provider.Synthesis{Fields: []string{"status", "track_id"}}, nil
		},
	})

	rec, body := doJSON(t, h, http.MethodPost, "/tts", `{"text":"Hello"}`)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	fields, ok := body["fieldsPresent"].([]any)
	if !ok || len(fields) != 2 {
		t.Errorf("fieldsPresent = %v, want two entries", body["fieldsPresent"])
	}
}

func TestTestEndpoint(t *testing.T) {
	h := newTestHandler(dataURIClient())

	rec, body := doJSON(t, h, http.MethodPost, "/test", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}
	if body["usedVoice"] != "Joanna" {
		t.Errorf("usedVoice = %v, want default", body["usedVoice"])
	}
	msg, _ := body["message"].(string)
	if !strings.Contains(msg, "Joanna") {
		t.Errorf("message = %q, want mention of the default voice", msg)
	}
}

func TestTestEndpointUnready(t *testing.T) {
	h := newTestHandler(nil)

	rec, _ := doJSON(t, h, http.MethodPost, "/test", "")
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
}

func TestNotFoundListsEndpoints(t *testing.T) {
	h := newTestHandler(dataURIClient())

	rec, body := doJSON(t, h, http.MethodGet, "/nope", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	endpoints, ok := body["endpoints"].([]any)
	if !ok || len(endpoints) == 0 {
		t.Fatalf("endpoints = %v, want non-empty list", body["endpoints"])
	}
}

func TestDocsRedirect(t *testing.T) {
	h := newTestHandler(dataURIClient())

	req := httptest.NewRequest(http.MethodGet, "/docs", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusMovedPermanently {
		t.Fatalf("status = %d, want 301", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/docs/index.html" {
		t.Errorf("Location = %q", loc)
	}
}

func TestRequestIDAssigned(t *testing.T) {
	h := requestID(newTestHandler(dataURIClient()))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("expected X-Request-ID to be assigned")
	}
}

func TestRequestIDPreserved(t *testing.T) {
	h := requestID(newTestHandler(dataURIClient()))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "caller-supplied")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Request-ID"); got != "caller-supplied" {
		t.Errorf("X-Request-ID = %q, want caller-supplied", got)
	}
}
