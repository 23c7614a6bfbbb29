// Package ports defines interfaces for external dependencies.
// Ports are contracts that adapters implement, allowing the application layer
// to depend on abstractions rather than concrete implementations.
//
// Methods take a context first and return domain types and domain errors,
// never transport DTOs.
package ports

import (
	"context"

	"github.com/jsamuelsen/quoteboard/internal/domain"
)

// QuoteStore is the external quote-storage service.
//
// Implementations issue exactly one request per call and never retry.
type QuoteStore interface {
	// ListQuotes returns the stored quotes in the order the service sent them.
	// maxAgeDays limits the result to quotes newer than that many days;
	// zero (or less) applies no limit.
	// Returns domain.ErrUnavailable for transport failures and non-2xx
	// answers, domain.ErrMalformedResponse for undecodable bodies.
	ListQuotes(ctx context.Context, maxAgeDays int) ([]domain.Quote, error)

	// CreateQuote stores a submission and returns the canonical record the
	// service created for it.
	CreateQuote(ctx context.Context, sub domain.Submission) (*domain.Quote, error)
}

// BoardMetrics records board activity. Implementations must be safe for
// concurrent use.
type BoardMetrics interface {
	// LoadFinished records a completed list fetch. outcome is one of
	// "success", "failure" or "stale".
	LoadFinished(maxAgeDays int, outcome string)

	// SubmitFinished records a completed create call.
	SubmitFinished(success bool)

	// QuotesShown reports how many quotes the board currently holds.
	QuotesShown(n int)

	// LoadsInFlight reports the number of outstanding list fetches.
	LoadsInFlight(n int)
}

// NopBoardMetrics discards all measurements.
type NopBoardMetrics struct{}

func (NopBoardMetrics) LoadFinished(int, string) {}
func (NopBoardMetrics) SubmitFinished(bool)      {}
func (NopBoardMetrics) QuotesShown(int)          {}
func (NopBoardMetrics) LoadsInFlight(int)        {}
