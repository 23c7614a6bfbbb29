//go:build integration

package integration

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sort"
	"strconv"
	"sync"
	"time"
)

// isoSeconds matches the storage service's isoformat(timespec="seconds").
const isoSeconds = "2006-01-02T15:04:05"

type storedQuote struct {
	Name    string `json:"name"`
	Message string `json:"message"`
	Time    string `json:"time"`
}

// fakeQuoteStore is an in-process stand-in for the quote storage service.
// It stamps new quotes with a zone-less local timestamp, filters lists by
// max_age_days and returns them in chronological order.
type fakeQuoteStore struct {
	*httptest.Server

	mu      sync.Mutex
	quotes  []storedQuote
	down    bool
	lists   []url.Values
	headers []http.Header
}

func newFakeQuoteStore() *fakeQuoteStore {
	f := &fakeQuoteStore{}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/quotes", f.listQuotes)
	mux.HandleFunc("POST /api/quote", f.createQuote)
	f.Server = httptest.NewServer(mux)

	return f
}

func (f *fakeQuoteStore) seed(name, message string, age time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.quotes = append(f.quotes, storedQuote{
		Name:    name,
		Message: message,
		Time:    time.Now().Add(-age).Format(isoSeconds),
	})
}

func (f *fakeQuoteStore) setDown(down bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.down = down
}

func (f *fakeQuoteStore) listRequests() []url.Values {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]url.Values(nil), f.lists...)
}

func (f *fakeQuoteStore) lastHeaders() http.Header {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.headers) == 0 {
		return nil
	}

	return f.headers[len(f.headers)-1]
}

func (f *fakeQuoteStore) listQuotes(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.lists = append(f.lists, r.URL.Query())
	f.headers = append(f.headers, r.Header.Clone())

	if f.down {
		http.Error(w, `{"detail":"storage offline"}`, http.StatusServiceUnavailable)
		return
	}

	var cutoff time.Time

	if raw := r.URL.Query().Get("max_age_days"); raw != "" {
		days, err := strconv.Atoi(raw)
		if err != nil || days < 0 {
			http.Error(w, `{"detail":"max_age_days must be >= 0"}`, http.StatusUnprocessableEntity)
			return
		}

		if days > 0 {
			cutoff = time.Now().AddDate(0, 0, -days)
		}
	}

	out := make([]storedQuote, 0, len(f.quotes))

	for _, q := range f.quotes {
		ts, err := time.ParseInLocation(isoSeconds, q.Time, time.Local)
		if err != nil || cutoff.IsZero() || !ts.Before(cutoff) {
			out = append(out, q)
		}
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Time < out[j].Time })

	writeJSON(w, out)
}

func (f *fakeQuoteStore) createQuote(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.headers = append(f.headers, r.Header.Clone())

	if f.down {
		http.Error(w, `{"detail":"storage offline"}`, http.StatusServiceUnavailable)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	q := storedQuote{
		Name:    r.PostForm.Get("name"),
		Message: r.PostForm.Get("message"),
		Time:    time.Now().Format(isoSeconds),
	}
	f.quotes = append(f.quotes, q)

	writeJSON(w, q)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
