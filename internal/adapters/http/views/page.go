package views

import (
	"time"

	"github.com/jsamuelsen/quoteboard/internal/app"
)

// Messages shown in place of the list.
const (
	LoadingText = "Loading quotes…"
	EmptyText   = "No quotes yet. Be the first to add one!"
)

// DefaultDateLayout matches the locale string the board shows for a quote.
const DefaultDateLayout = "1/2/2006, 3:04:05 PM"

// Page is the data rendered by BoardPage.
type Page struct {
	Title string
	State app.BoardState
	Dates DateFormat

	// Errors holds form field messages keyed by field name.
	Errors map[string]string
}

// DateFormat controls how quote timestamps are displayed.
type DateFormat struct {
	Layout   string
	Location *time.Location
}

// Format renders t in the configured layout and zone.
func (f DateFormat) Format(t time.Time) string {
	layout := f.Layout
	if layout == "" {
		layout = DefaultDateLayout
	}

	if f.Location != nil {
		t = t.In(f.Location)
	}

	return t.Format(layout)
}

func machineTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
