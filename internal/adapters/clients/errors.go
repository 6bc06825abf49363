// Package clients provides the instrumented HTTP client used for
// downstream calls.
package clients

import "errors"

// Client errors are infrastructure failures. Callers translate them into
// domain errors.
var (
	// ErrRequestFailed wraps transport-level failures: refused connections,
	// DNS errors, timeouts and cancellations. No response was received.
	ErrRequestFailed = errors.New("downstream request failed")
)
