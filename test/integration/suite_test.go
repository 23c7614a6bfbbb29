//go:build integration

package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/cucumber/godog"

	"github.com/jsamuelsen/quoteboard/internal/adapters/http/dto"
	"github.com/jsamuelsen/quoteboard/internal/adapters/http/middleware"
	"github.com/jsamuelsen/quoteboard/internal/domain"
)

// scenario holds the state of one running scenario: its fake store, the
// quoteboard server and the last response.
type scenario struct {
	fake *fakeQuoteStore
	qb   *quoteboardApp

	client       *http.Client
	response     *http.Response
	responseBody []byte
}

func (s *scenario) start() error {
	s.fake = newFakeQuoteStore()

	qb, err := newQuoteboardApp(s.fake.URL)
	if err != nil {
		return err
	}

	s.qb = qb

	return s.newVisitor()
}

// newVisitor swaps in a client with an empty cookie jar, so the following
// steps run in a fresh browser session.
func (s *scenario) newVisitor() error {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return err
	}

	s.client = &http.Client{Timeout: 10 * time.Second, Jar: jar}

	return nil
}

func (s *scenario) stop() {
	if s.qb != nil {
		s.qb.Close()
	}

	if s.fake != nil {
		s.fake.Close()
	}
}

// InitializeScenario registers step definitions for each scenario.
func InitializeScenario(ctx *godog.ScenarioContext) {
	s := &scenario{}

	ctx.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		return ctx, s.start()
	})

	ctx.After(func(ctx context.Context, _ *godog.Scenario, err error) (context.Context, error) {
		s.stop()
		return ctx, err
	})

	ctx.Step(`^the quote store has these quotes:$`, s.theStoreHasQuotes)
	ctx.Step(`^the quote store (?:is|becomes) unavailable$`, s.theStoreIsUnavailable)
	ctx.Step(`^the quote store is available again$`, s.theStoreIsAvailable)
	ctx.Step(`^I open the board$`, s.iOpenTheBoard)
	ctx.Step(`^I open the board with request ID "([^"]*)"$`, s.iOpenTheBoardWithRequestID)
	ctx.Step(`^another visitor opens the board$`, s.anotherVisitorOpensTheBoard)
	ctx.Step(`^I select the filter "([^"]*)"$`, s.iSelectTheFilter)
	ctx.Step(`^I submit the quote "([^"]*)" by "([^"]*)"$`, s.iSubmitTheQuote)
	ctx.Step(`^I request GET "([^"]*)"$`, s.iRequestGET)
	ctx.Step(`^the response status should be (\d+)$`, s.theResponseStatusShouldBe)
	ctx.Step(`^the board shows (\d+) quotes?$`, s.theBoardShowsQuotes)
	ctx.Step(`^the board shows "([^"]*)"$`, s.theBoardShowsText)
	ctx.Step(`^"([^"]*)" appears before "([^"]*)"$`, s.appearsBefore)
	ctx.Step(`^the form is empty$`, s.theFormIsEmpty)
	ctx.Step(`^the form keeps "([^"]*)"$`, s.theFormKeeps)
	ctx.Step(`^the quote store received (\d+) list requests?$`, s.theStoreReceivedListRequests)
	ctx.Step(`^the last list request had no max_age_days$`, s.lastListHadNoBound)
	ctx.Step(`^the last list request had max_age_days (\d+)$`, s.lastListHadBound)
	ctx.Step(`^the JSON board has (\d+) quotes and max_age_days (\d+)$`, s.theJSONBoardHas)
	ctx.Step(`^the quote store saw request ID "([^"]*)"$`, s.theStoreSawRequestID)
}

func (s *scenario) theStoreHasQuotes(table *godog.Table) error {
	for i, row := range table.Rows {
		if i == 0 {
			continue
		}

		days, err := strconv.Atoi(row.Cells[2].Value)
		if err != nil {
			return fmt.Errorf("row %d: age_days: %w", i, err)
		}

		s.fake.seed(row.Cells[0].Value, row.Cells[1].Value, time.Duration(days)*24*time.Hour)
	}

	return nil
}

func (s *scenario) theStoreIsUnavailable() error {
	s.fake.setDown(true)
	return nil
}

func (s *scenario) theStoreIsAvailable() error {
	s.fake.setDown(false)
	return nil
}

func (s *scenario) do(req *http.Request) error {
	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	s.response = resp

	s.responseBody, err = io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	return nil
}

func (s *scenario) iRequestGET(path string) error {
	req, err := http.NewRequest(http.MethodGet, s.qb.URL+path, nil)
	if err != nil {
		return err
	}

	return s.do(req)
}

func (s *scenario) iOpenTheBoard() error {
	return s.iRequestGET("/")
}

func (s *scenario) anotherVisitorOpensTheBoard() error {
	if err := s.newVisitor(); err != nil {
		return err
	}

	return s.iOpenTheBoard()
}

func (s *scenario) iOpenTheBoardWithRequestID(id string) error {
	req, err := http.NewRequest(http.MethodGet, s.qb.URL+"/", nil)
	if err != nil {
		return err
	}

	req.Header.Set(middleware.HeaderRequestID, id)

	return s.do(req)
}

// postForm posts and follows the redirect back to the board.
func (s *scenario) postForm(path string, form url.Values) error {
	req, err := http.NewRequest(http.MethodPost, s.qb.URL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return s.do(req)
}

func (s *scenario) iSelectTheFilter(label string) error {
	for _, opt := range domain.FilterOptions() {
		if opt.Label == label {
			return s.postForm("/filter", url.Values{"max_age_days": {strconv.Itoa(opt.Days)}})
		}
	}

	return fmt.Errorf("unknown filter %q", label)
}

func (s *scenario) iSubmitTheQuote(message, name string) error {
	return s.postForm("/quote", url.Values{"name": {name}, "message": {message}})
}

func (s *scenario) theResponseStatusShouldBe(expected int) error {
	if s.response == nil {
		return fmt.Errorf("no response received")
	}

	if s.response.StatusCode != expected {
		return fmt.Errorf("expected status %d, got %d. Body: %s", expected, s.response.StatusCode, s.responseBody)
	}

	return nil
}

func (s *scenario) body() string {
	return string(s.responseBody)
}

func (s *scenario) theBoardShowsQuotes(n int) error {
	if got := strings.Count(s.body(), `<div class="quote">`); got != n {
		return fmt.Errorf("expected %d quotes, got %d.\nBody: %s", n, got, s.body())
	}

	return nil
}

func (s *scenario) theBoardShowsText(text string) error {
	if !strings.Contains(s.body(), text) {
		return fmt.Errorf("response body does not contain %q.\nBody: %s", text, s.body())
	}

	return nil
}

func (s *scenario) appearsBefore(first, second string) error {
	i, j := strings.Index(s.body(), first), strings.Index(s.body(), second)
	if i < 0 || j < 0 || i > j {
		return fmt.Errorf("expected %q (at %d) before %q (at %d)", first, i, second, j)
	}

	return nil
}

func (s *scenario) inputValue(field string) string {
	marker := `id="input-` + field + `" value="`

	body := s.body()

	i := strings.Index(body, marker)
	if i < 0 {
		return ""
	}

	rest := body[i+len(marker):]

	return rest[:strings.IndexByte(rest, '"')]
}

func (s *scenario) theFormIsEmpty() error {
	if name, msg := s.inputValue("name"), s.inputValue("message"); name != "" || msg != "" {
		return fmt.Errorf("expected an empty form, got name=%q message=%q", name, msg)
	}

	return nil
}

func (s *scenario) theFormKeeps(message string) error {
	if got := s.inputValue("message"); got != message {
		return fmt.Errorf("expected the message field to keep %q, got %q", message, got)
	}

	return nil
}

func (s *scenario) theStoreReceivedListRequests(n int) error {
	if got := len(s.fake.listRequests()); got != n {
		return fmt.Errorf("expected %d list requests, got %d", n, got)
	}

	return nil
}

func (s *scenario) lastListQuery() (url.Values, error) {
	lists := s.fake.listRequests()
	if len(lists) == 0 {
		return nil, fmt.Errorf("the quote store received no list request")
	}

	return lists[len(lists)-1], nil
}

func (s *scenario) lastListHadNoBound() error {
	q, err := s.lastListQuery()
	if err != nil {
		return err
	}

	if q.Has("max_age_days") {
		return fmt.Errorf("expected no max_age_days, got %q", q.Get("max_age_days"))
	}

	return nil
}

func (s *scenario) lastListHadBound(days int) error {
	q, err := s.lastListQuery()
	if err != nil {
		return err
	}

	if got := q.Get("max_age_days"); got != strconv.Itoa(days) {
		return fmt.Errorf("expected max_age_days=%d, got %q", days, got)
	}

	return nil
}

func (s *scenario) theJSONBoardHas(quotes, days int) error {
	var board dto.BoardResponse
	if err := json.Unmarshal(s.responseBody, &board); err != nil {
		return fmt.Errorf("decoding board: %w", err)
	}

	if len(board.Quotes) != quotes || board.MaxAgeDays != days {
		return fmt.Errorf("expected %d quotes at max_age_days %d, got %d at %d",
			quotes, days, len(board.Quotes), board.MaxAgeDays)
	}

	return nil
}

func (s *scenario) theStoreSawRequestID(id string) error {
	if got := s.fake.lastHeaders().Get(middleware.HeaderRequestID); got != id {
		return fmt.Errorf("expected the store to see request ID %q, got %q", id, got)
	}

	return nil
}

// TestFeatures runs the GoDog BDD suite.
func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"../features"},
			TestingT: t,
			Tags:     os.Getenv("GODOG_TAGS"),
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
