package acl

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jsamuelsen/quoteboard/internal/adapters/clients"
	"github.com/jsamuelsen/quoteboard/internal/domain"
)

// maxErrorDetail bounds how much of an error body is copied into logs.
const maxErrorDetail = 256

// errorResponse covers the error bodies the quote service is known to send:
// framework style {"detail": ...} and the common {"error": {"message": ...}}.
type errorResponse struct {
	Detail  json.RawMessage `json:"detail"`
	Message string          `json:"message"`
	Error   struct {
		Message string `json:"message"`
	} `json:"error"`
}

// errorDetail extracts a short human readable reason from an error body.
// It falls back to the raw body when the shape is unknown.
func errorDetail(body []byte) string {
	var resp errorResponse
	if err := json.Unmarshal(body, &resp); err == nil {
		switch {
		case resp.Error.Message != "":
			return truncate(resp.Error.Message)
		case resp.Message != "":
			return truncate(resp.Message)
		case len(resp.Detail) > 0:
			var s string
			if json.Unmarshal(resp.Detail, &s) == nil {
				return truncate(s)
			}

			return truncate(string(resp.Detail))
		}
	}

	return truncate(strings.TrimSpace(string(body)))
}

func truncate(s string) string {
	if len(s) <= maxErrorDetail {
		return s
	}

	return s[:maxErrorDetail] + "..."
}

// mapClientError translates client-level errors to domain errors.
func mapClientError(err error, serviceName, operation string) error {
	switch {
	case errors.Is(err, clients.ErrCircuitOpen):
		return domain.NewUnavailableError(serviceName,
			fmt.Sprintf("circuit breaker open during %s", operation))
	case errors.Is(err, clients.ErrResponseTooLarge):
		return domain.NewMalformedResponseError(operation, err)
	default:
		return domain.NewUnavailableError(serviceName,
			fmt.Sprintf("%s failed: %v", operation, err))
	}
}
