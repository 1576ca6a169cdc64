package stub

import (
	"strings"
	"testing"

	"github.com/luarmor-v4/puter-tts-api/internal/provider"
)

func TestSynthesizeReturnsDataURI(t *testing.T) {
	client := New()

	synth, err := client.Synthesize(t.Context(), provider.Request{
		Text: "hello", Voice: "Joanna", OutputFormat: "mp3",
	})
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}
	if !strings.HasPrefix(synth.Src, "data:audio/mp3;base64,") {
		t.Errorf("Src = %q, want an mp3 data URI", synth.Src)
	}
}

func TestSynthesizeEmptyText(t *testing.T) {
	client := New()

	if _, err := client.Synthesize(t.Context(), provider.Request{}); err == nil {
		t.Fatal("expected error for empty text")
	}
}
