// Package app contains application services that orchestrate use cases.
package app

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/jsamuelsen/quoteboard/internal/domain"
	"github.com/jsamuelsen/quoteboard/internal/ports"
)

// Load outcomes reported to BoardMetrics.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
	OutcomeStale   = "stale"
)

// Draft is the content of the submission form.
type Draft struct {
	Name    string
	Message string
}

// BoardState is an immutable snapshot of the board.
type BoardState struct {
	// Quotes are in the order the store returned them, followed by quotes
	// submitted since the last load.
	Quotes []domain.Quote

	// Filters are the selectable age filters in display order.
	Filters []domain.FilterOption

	// MaxAgeDays is the selected filter. Zero means all time.
	MaxAgeDays int

	// Loading is true while at least one list fetch is in flight.
	Loading bool

	// Draft holds the form fields; it is cleared after a successful submit.
	Draft Draft

	// Version increases with every state change.
	Version uint64
}

// Empty reports whether the board should show its empty-state message.
func (s BoardState) Empty() bool {
	return !s.Loading && len(s.Quotes) == 0
}

// BoardConfig contains the board dependencies.
type BoardConfig struct {
	Store   ports.QuoteStore
	Metrics ports.BoardMetrics
	Logger  *slog.Logger

	// RequestFencing lets only the most recently issued load replace the
	// quotes. When false the last load to resolve wins.
	RequestFencing bool
}

// Board owns the quote board state: the displayed quotes, the age filter,
// the loading flag and the form draft. It is safe for concurrent use; the
// lock is never held while the store is called.
type Board struct {
	store   ports.QuoteStore
	metrics ports.BoardMetrics
	logger  *slog.Logger
	fencing bool

	mu         sync.Mutex
	quotes     []domain.Quote
	maxAgeDays int
	inFlight   int
	issued     uint64
	draft      Draft
	mounted    bool
	version    uint64
	listeners  map[int]func(BoardState)
	nextListen int
}

// NewBoard creates a board with the all-time filter and no quotes.
// Panics if Store is nil.
func NewBoard(cfg BoardConfig) *Board {
	if cfg.Store == nil {
		panic("Board: Store is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	metrics := cfg.Metrics
	if metrics == nil {
		metrics = ports.NopBoardMetrics{}
	}

	return &Board{
		store:      cfg.Store,
		metrics:    metrics,
		logger:     logger.With(slog.String("component", "app.Board")),
		fencing:    cfg.RequestFencing,
		maxAgeDays: domain.AllTime,
		listeners:  make(map[int]func(BoardState)),
	}
}

// Mount performs the initial load with the current filter. Only the first
// call loads; it reports whether it did.
func (b *Board) Mount(ctx context.Context) bool {
	b.mu.Lock()
	if b.mounted {
		b.mu.Unlock()
		return false
	}
	b.mounted = true
	days := b.maxAgeDays
	b.mu.Unlock()

	b.LoadQuotes(ctx, days)

	return true
}

// SelectFilter changes the age filter and reloads once. Selecting the
// current value does nothing. Values other than the offered options are
// rejected with a validation error.
func (b *Board) SelectFilter(ctx context.Context, days int) error {
	if err := domain.ValidateFilter(days); err != nil {
		return err
	}

	changed := false
	b.update(func() {
		if b.maxAgeDays != days {
			b.maxAgeDays = days
			changed = true
		}
	})

	if changed {
		b.logger.DebugContext(ctx, "filter changed", slog.Int("max_age_days", days))
		b.LoadQuotes(ctx, days)
	}

	return nil
}

// LoadQuotes fetches the quotes for ageDays and replaces the list on
// success. Failures are logged and leave the list untouched. The loading
// flag is cleared whatever the outcome.
func (b *Board) LoadQuotes(ctx context.Context, ageDays int) {
	var seq uint64

	b.update(func() {
		b.inFlight++
		b.issued++
		seq = b.issued
	})
	b.metrics.LoadsInFlight(b.pending())

	quotes, err := b.store.ListQuotes(ctx, ageDays)

	outcome := OutcomeSuccess
	b.update(func() {
		b.inFlight--

		switch {
		case err != nil:
			outcome = OutcomeFailure
		case b.fencing && seq != b.issued:
			outcome = OutcomeStale
		default:
			b.quotes = slices.Clone(quotes)
		}
	})

	state := b.State()
	b.metrics.LoadsInFlight(b.pending())
	b.metrics.LoadFinished(ageDays, outcome)
	b.metrics.QuotesShown(len(state.Quotes))

	switch outcome {
	case OutcomeFailure:
		b.logger.WarnContext(ctx, "loading quotes failed",
			slog.Int("max_age_days", ageDays),
			slog.Any("error", err))
	case OutcomeStale:
		b.logger.DebugContext(ctx, "discarding superseded quote list",
			slog.Int("max_age_days", ageDays),
			slog.Uint64("sequence", seq))
	default:
		b.logger.DebugContext(ctx, "quotes loaded",
			slog.Int("max_age_days", ageDays),
			slog.Int("count", len(quotes)))
	}
}

// SubmitQuote sends one create request for name and message. On success the
// stored record is appended and the draft cleared; on failure the list and
// draft are left as they were and the error is logged.
func (b *Board) SubmitQuote(ctx context.Context, name, message string) {
	b.update(func() {
		b.draft = Draft{Name: name, Message: message}
	})

	created, err := b.store.CreateQuote(ctx, domain.Submission{Name: name, Message: message})
	if err == nil && created == nil {
		err = domain.NewMalformedResponseError("create quote", nil)
	}

	b.metrics.SubmitFinished(err == nil)

	if err != nil {
		b.logger.WarnContext(ctx, "submitting quote failed", slog.Any("error", err))
		return
	}

	b.update(func() {
		b.quotes = append(b.quotes, *created)
		b.draft = Draft{}
	})

	b.metrics.QuotesShown(len(b.State().Quotes))
	b.logger.InfoContext(ctx, "quote submitted", slog.String("name", created.Name))
}

// UpdateDraft records in-progress form input without submitting it.
func (b *Board) UpdateDraft(name, message string) {
	b.update(func() {
		b.draft = Draft{Name: name, Message: message}
	})
}

// State returns a snapshot of the board.
func (b *Board) State() BoardState {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.snapshotLocked()
}

// Subscribe registers fn to receive a snapshot after every change. The
// returned function removes the subscription.
func (b *Board) Subscribe(fn func(BoardState)) (unsubscribe func()) {
	b.mu.Lock()
	id := b.nextListen
	b.nextListen++
	b.listeners[id] = fn
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		delete(b.listeners, id)
		b.mu.Unlock()
	}
}

func (b *Board) pending() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.inFlight
}

// update applies fn under the lock, then notifies listeners outside it.
func (b *Board) update(fn func()) {
	b.mu.Lock()
	fn()
	b.version++
	state := b.snapshotLocked()
	listeners := make([]func(BoardState), 0, len(b.listeners))
	for _, l := range b.listeners {
		listeners = append(listeners, l)
	}
	b.mu.Unlock()

	for _, l := range listeners {
		l(state)
	}
}

func (b *Board) snapshotLocked() BoardState {
	return BoardState{
		Quotes:     slices.Clone(b.quotes),
		Filters:    domain.FilterOptions(),
		MaxAgeDays: b.maxAgeDays,
		Loading:    b.inFlight > 0,
		Draft:      b.draft,
		Version:    b.version,
	}
}
