package gateway

import (
	"errors"
	"fmt"
	"time"
)

// ErrNotReady indicates the provider client was never initialized (e.g., the
// credential was missing at startup). Retryable after operator action, not
// caller-fixable.
var ErrNotReady = errors.New("synthesis backend is not initialized")

// InvalidInputError indicates the caller's text failed validation.
// It reports the offending length alongside the configured limit.
type InvalidInputError struct {
	Reason string
	Length int
	Limit  int
}

func (e *InvalidInputError) Error() string {
	if e.Length > e.Limit {
		return fmt.Sprintf("%s: %d characters exceeds limit of %d", e.Reason, e.Length, e.Limit)
	}
	return e.Reason
}

// TimeoutError indicates the provider call did not settle within the
// configured deadline. The underlying call may still complete later; its
// result is discarded.
type TimeoutError struct {
	Limit time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("synthesis timed out after %s", e.Limit)
}

// ProviderError indicates the delegated call itself failed. It carries the
// provider's message, never its internals.
type ProviderError struct {
	Err error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider error: %v", e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// MalformedResponseError indicates the provider call succeeded but returned
// no usable audio locator. Fields lists the response keys that were present,
// for diagnosability; the payload itself is never surfaced.
type MalformedResponseError struct {
	Fields []string
}

func (e *MalformedResponseError) Error() string {
	if len(e.Fields) == 0 {
		return "provider returned no audio locator (empty response)"
	}
	return fmt.Sprintf("provider returned no audio locator (fields present: %v)", e.Fields)
}
