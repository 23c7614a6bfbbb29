// Package clients provides HTTP client adapters for downstream services.
package clients

import "errors"

// Client errors are infrastructure failures. Callers in the acl package
// translate them into domain errors.
var (
	// ErrCircuitOpen is returned when the circuit breaker is blocking calls
	// to an unhealthy downstream service. No request was sent.
	ErrCircuitOpen = errors.New("circuit breaker open")

	// ErrRequestFailed wraps transport level failures of the single attempt.
	ErrRequestFailed = errors.New("request failed")

	// ErrResponseTooLarge is returned when a body exceeds the configured cap.
	ErrResponseTooLarge = errors.New("response body too large")
)
