package views

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quoteboard/internal/app"
	"github.com/jsamuelsen/quoteboard/internal/domain"
)

var utcISO = DateFormat{Layout: time.RFC3339, Location: time.UTC}

func render(t *testing.T, c templ.Component) string {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))

	return buf.String()
}

func TestDateFormat_Format(t *testing.T) {
	ts := time.Date(2024, 3, 9, 15, 4, 5, 0, time.UTC)

	assert.Equal(t, "3/9/2024, 3:04:05 PM", DateFormat{Location: time.UTC}.Format(ts))
	assert.Equal(t, "2024-03-09", DateFormat{Layout: "2006-01-02", Location: time.UTC}.Format(ts))

	tokyo := time.FixedZone("JST", 9*60*60)
	assert.Equal(t, "3/10/2024, 12:04:05 AM", DateFormat{Location: tokyo}.Format(ts))
}

func TestQuoteView(t *testing.T) {
	t.Run("without time", func(t *testing.T) {
		html := render(t, QuoteView(domain.Quote{Name: "a", Message: "x"}, utcISO))

		assert.Contains(t, html, "“x”")
		assert.Contains(t, html, "— a")
		assert.NotContains(t, html, "<time")
	})

	t.Run("with time", func(t *testing.T) {
		ts := time.UnixMilli(1000)
		html := render(t, QuoteView(domain.Quote{Name: "b", Message: "y", Time: &ts}, utcISO))

		assert.Contains(t, html, `<time class="quote-date" datetime="1970-01-01T00:00:01Z">1970-01-01T00:00:01Z</time>`)
	})

	t.Run("escapes content", func(t *testing.T) {
		html := render(t, QuoteView(domain.Quote{Name: "<b>", Message: `"<script>"`}, utcISO))

		assert.NotContains(t, html, "<script>")
		assert.Contains(t, html, "&lt;script&gt;")
		assert.Contains(t, html, "— &lt;b&gt;")
	})
}

func TestBoardPage_Quotes(t *testing.T) {
	ts := time.UnixMilli(1000)
	page := Page{
		Title: "Hack at UCI Tech Deliverable",
		State: app.BoardState{
			Quotes: []domain.Quote{
				{Name: "a", Message: "x"},
				{Name: "b", Message: "y", Time: &ts},
			},
			Filters: domain.FilterOptions(),
		},
		Dates: utcISO,
	}

	html := render(t, BoardPage(page))

	assert.Contains(t, html, "<h1>Hack at UCI Tech Deliverable</h1>")
	assert.Equal(t, 2, strings.Count(html, `<div class="quote">`))
	assert.Less(t, strings.Index(html, "“x”"), strings.Index(html, "“y”"))
	assert.Equal(t, 1, strings.Count(html, "<time"))
	assert.Greater(t, strings.Index(html, "<time"), strings.Index(html, "“y”"))
	assert.NotContains(t, html, LoadingText)
	assert.NotContains(t, html, EmptyText)
}

func TestBoardPage_States(t *testing.T) {
	tests := []struct {
		name    string
		state   app.BoardState
		want    string
		notWant string
	}{
		{
			name:    "loading",
			state:   app.BoardState{Loading: true, Quotes: []domain.Quote{{Name: "a", Message: "x"}}},
			want:    LoadingText,
			notWant: `<div class="quote">`,
		},
		{
			name:    "empty",
			state:   app.BoardState{},
			want:    EmptyText,
			notWant: LoadingText,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html := render(t, BoardPage(Page{State: tt.state}))

			assert.Contains(t, html, tt.want)
			assert.NotContains(t, html, tt.notWant)
		})
	}
}

func TestBoardPage_Filter(t *testing.T) {
	html := render(t, BoardPage(Page{State: app.BoardState{
		Filters:    domain.FilterOptions(),
		MaxAgeDays: 30,
	}}))

	assert.Contains(t, html, "Show quotes from:")
	assert.Contains(t, html, `<option value="30" selected>Last month</option>`)
	assert.Contains(t, html, `<option value="7">Last week</option>`)

	week := strings.Index(html, "Last week")
	month := strings.Index(html, "Last month")
	year := strings.Index(html, "Last year")
	all := strings.Index(html, "All time")
	assert.True(t, week < month && month < year && year < all)
}

func TestBoardPage_Form(t *testing.T) {
	html := render(t, BoardPage(Page{
		State:  app.BoardState{Draft: app.Draft{Name: `Ann "A"`, Message: ""}},
		Errors: map[string]string{"message": "must not be empty"},
	}))

	assert.Contains(t, html, `action="/quote"`)
	assert.Contains(t, html, `value="Ann &#34;A&#34;"`)
	assert.Contains(t, html, `<span class="field-error">must not be empty</span>`)
	assert.Equal(t, 2, strings.Count(html, " required>"))
}

func TestBoardPage_Document(t *testing.T) {
	html := render(t, BoardPage(Page{Title: "Quotes", State: app.BoardState{Filters: domain.FilterOptions()}}))

	assert.True(t, strings.HasPrefix(html, "<!doctype html>"))
	assert.Contains(t, html, "<title>Quotes</title>")
	assert.True(t, strings.HasSuffix(html, "</html>"))
}

func TestBoardPage_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	err := BoardPage(Page{}).Render(ctx, &buf)

	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, buf.String())
}
