package dto

import (
	"time"

	"github.com/jsamuelsen/quoteboard/internal/app"
	"github.com/jsamuelsen/quoteboard/internal/domain"
)

// FilterRequest selects the age filter.
type FilterRequest struct {
	MaxAgeDays *int `json:"max_age_days" form:"max_age_days" validate:"required,filterdays"`
}

// SubmitQuoteRequest carries the submission form fields.
type SubmitQuoteRequest struct {
	Name    string `json:"name" form:"name" validate:"notempty"`
	Message string `json:"message" form:"message" validate:"notempty"`
}

// QuoteResponse is one quote as returned by the board API.
type QuoteResponse struct {
	Name    string     `json:"name"`
	Message string     `json:"message"`
	Time    *time.Time `json:"time,omitempty"`
}

// FilterOptionResponse is one selectable age filter.
type FilterOptionResponse struct {
	Label string `json:"label"`
	Days  int    `json:"days"`
}

// DraftResponse holds the unsent form fields.
type DraftResponse struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

// BoardResponse is the board state as returned by the board API.
type BoardResponse struct {
	Quotes     []QuoteResponse        `json:"quotes"`
	Filters    []FilterOptionResponse `json:"filters"`
	MaxAgeDays int                    `json:"max_age_days"`
	Loading    bool                   `json:"loading"`
	Empty      bool                   `json:"empty"`
	Draft      DraftResponse          `json:"draft"`
	Version    uint64                 `json:"version"`
}

// NewQuoteResponse converts a domain quote.
func NewQuoteResponse(q domain.Quote) QuoteResponse {
	return QuoteResponse{
		Name:    q.Name,
		Message: q.Message,
		Time:    q.Time,
	}
}

// NewBoardResponse converts a board snapshot.
func NewBoardResponse(s app.BoardState) *BoardResponse {
	quotes := make([]QuoteResponse, 0, len(s.Quotes))
	for _, q := range s.Quotes {
		quotes = append(quotes, NewQuoteResponse(q))
	}

	filters := make([]FilterOptionResponse, 0, len(s.Filters))
	for _, f := range s.Filters {
		filters = append(filters, FilterOptionResponse{Label: f.Label, Days: f.Days})
	}

	return &BoardResponse{
		Quotes:     quotes,
		Filters:    filters,
		MaxAgeDays: s.MaxAgeDays,
		Loading:    s.Loading,
		Empty:      s.Empty(),
		Draft: DraftResponse{
			Name:    s.Draft.Name,
			Message: s.Draft.Message,
		},
		Version: s.Version,
	}
}
