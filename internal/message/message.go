// Package message defines the request and response shapes flowing through the
// synthesis pipeline and the JSON envelopes exposed on the HTTP surface.
package message

// SynthesisRequest is an incoming text-to-speech request from any transport.
type SynthesisRequest struct {
	// Text is the payload to synthesize. Required, bounded length.
	Text string `json:"text"`

	// VoiceID selects the provider voice. Empty means the configured default.
	VoiceID string `json:"voice_id,omitempty"`

	// Model selects the synthesis model. Empty means the configured default.
	Model string `json:"model,omitempty"`

	// OutputFormat is the requested audio codec/format tag (e.g., "mp3").
	// Empty means the configured default.
	OutputFormat string `json:"output_format,omitempty"`
}

// SynthesisResult is the outcome of one successful synthesis call.
type SynthesisResult struct {
	// AudioURL locates the produced audio: an https URL or a data: URI.
	// Never empty on a successful result.
	AudioURL string `json:"audioUrl"`

	// VoiceUsed is the voice actually sent to the provider (request value
	// or default, whichever applied).
	VoiceUsed string `json:"usedVoice"`

	// ModelUsed is the model actually sent to the provider.
	ModelUsed string `json:"model"`

	// OutputFormat is the format actually sent to the provider.
	OutputFormat string `json:"outputFormat"`

	// TextLength is the length of the synthesized text in characters.
	TextLength int `json:"textLength"`

	// ElapsedMillis is the wall-clock duration of the delegated provider
	// call in milliseconds.
	ElapsedMillis int64 `json:"generationTime"`
}

// SuccessEnvelope is the JSON body returned on a 200 from POST /tts.
type SuccessEnvelope struct {
	Success      bool   `json:"success"`
	AudioURL     string `json:"audioUrl"`
	UsedVoice    string `json:"usedVoice"`
	TextLength   int    `json:"textLength"`
	Model        string `json:"model"`
	OutputFormat string `json:"outputFormat"`
	// GenerationTime is the provider call duration in milliseconds.
	GenerationTime int64  `json:"generationTime"`
	Message        string `json:"message,omitempty"`
}

// ErrorEnvelope is the JSON body returned on any non-200 from the API.
// Diagnostic fields are populated per error kind and omitted otherwise.
type ErrorEnvelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`

	// TextLength and Limit are set for input-validation failures.
	TextLength int `json:"textLength,omitempty"`
	Limit      int `json:"limit,omitempty"`

	// TimeoutSeconds is set when the provider call exceeded its deadline.
	TimeoutSeconds int `json:"timeoutSeconds,omitempty"`

	// FieldsPresent lists the top-level keys the provider actually returned
	// when no audio locator could be found in its response.
	FieldsPresent []string `json:"fieldsPresent,omitempty"`

	// Endpoints lists the available routes; set on 404 responses only.
	Endpoints []string `json:"endpoints,omitempty"`
}

// StatusInfo is the JSON body returned from GET /.
type StatusInfo struct {
	Status       string `json:"status"`
	ServiceName  string `json:"serviceName"`
	DefaultVoice string `json:"defaultVoice"`
	Ready        bool   `json:"ready"`
}
