package acl

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/jsamuelsen/quoteboard/internal/adapters/clients"
	"github.com/jsamuelsen/quoteboard/internal/domain"
	"github.com/jsamuelsen/quoteboard/internal/platform/logging"
)

const (
	listPath   = "/api/quotes"
	createPath = "/api/quote"

	paramMaxAgeDays = "max_age_days"

	opList   = "list quotes"
	opCreate = "create quote"
)

// QuoteStoreConfig contains configuration for the quote store client.
type QuoteStoreConfig struct {
	// Client is the HTTP client pointed at the quote service base URL.
	Client *clients.Client

	// Logger is the structured logger.
	Logger *slog.Logger

	// Location is applied to ISO timestamps without a zone. Defaults to time.Local.
	Location *time.Location
}

// QuoteStoreClient implements ports.QuoteStore and ports.HealthChecker
// against the quote service HTTP API.
type QuoteStoreClient struct {
	client *clients.Client
	logger *slog.Logger
	times  timeParser
}

// NewQuoteStoreClient creates a new quote store adapter.
// Panics if Client is nil. Defaults logger to slog.Default() if nil.
func NewQuoteStoreClient(cfg QuoteStoreConfig) *QuoteStoreClient {
	if cfg.Client == nil {
		panic("QuoteStoreClient: Client is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	loc := cfg.Location
	if loc == nil {
		loc = time.Local
	}

	return &QuoteStoreClient{
		client: cfg.Client,
		logger: logger.With(slog.String("component", "acl.QuoteStoreClient")),
		times:  timeParser{loc: loc},
	}
}

// ListQuotes fetches the quotes newer than maxAgeDays days, or all quotes
// when maxAgeDays is zero. The max_age_days parameter is only sent for
// positive values. Order is preserved exactly as received.
func (c *QuoteStoreClient) ListQuotes(ctx context.Context, maxAgeDays int) ([]domain.Quote, error) {
	var query url.Values
	if maxAgeDays > 0 {
		query = url.Values{paramMaxAgeDays: {strconv.Itoa(maxAgeDays)}}
	}

	c.logger.Log(ctx, logging.LevelTrace, "starting request",
		slog.String("path", listPath),
		slog.Int("max_age_days", maxAgeDays))

	resp, err := c.client.Get(ctx, listPath, query)
	if err != nil {
		return nil, mapClientError(err, c.client.ServiceName(), opList)
	}

	body, err := c.readSuccess(ctx, resp, opList)
	if err != nil {
		return nil, err
	}

	wire, err := decodeQuoteList(body)
	if err != nil {
		return nil, domain.NewMalformedResponseError(opList, err)
	}

	quotes := make([]domain.Quote, 0, len(wire))
	for i, w := range wire {
		q, terr := c.times.translate(w)
		if terr != nil {
			c.logger.DebugContext(ctx, "ignoring unusable quote time",
				slog.Int("index", i),
				slog.Any("error", terr))
		}

		quotes = append(quotes, q)
	}

	c.logger.Log(ctx, logging.LevelTrace, "translated quote list",
		slog.Int("count", len(quotes)))

	return quotes, nil
}

// CreateQuote posts the submission as a form and returns the stored record.
func (c *QuoteStoreClient) CreateQuote(ctx context.Context, sub domain.Submission) (*domain.Quote, error) {
	form := url.Values{
		"name":    {sub.Name},
		"message": {sub.Message},
	}

	c.logger.Log(ctx, logging.LevelTrace, "starting request", slog.String("path", createPath))

	resp, err := c.client.PostForm(ctx, createPath, form)
	if err != nil {
		return nil, mapClientError(err, c.client.ServiceName(), opCreate)
	}

	body, err := c.readSuccess(ctx, resp, opCreate)
	if err != nil {
		return nil, err
	}

	wire, err := decodeQuote(body)
	if err != nil {
		return nil, domain.NewMalformedResponseError(opCreate, err)
	}

	q, terr := c.times.translate(wire)
	if terr != nil {
		c.logger.DebugContext(ctx, "ignoring unusable quote time", slog.Any("error", terr))
	}

	return &q, nil
}

// readSuccess returns the body of a 2xx response. Every other status is a
// failure of the operation.
func (c *QuoteStoreClient) readSuccess(ctx context.Context, resp *http.Response, operation string) ([]byte, error) {
	c.logger.Log(ctx, logging.LevelTrace, "request complete",
		slog.String("operation", operation),
		slog.Int("status", resp.StatusCode))

	body, err := c.client.ReadBody(resp)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		attrs := []any{
			slog.String("operation", operation),
			slog.Int("status_code", resp.StatusCode),
		}
		if err == nil {
			attrs = append(attrs, slog.String("detail", errorDetail(body)))
		}

		c.logger.WarnContext(ctx, "quote service error", attrs...)

		return nil, domain.NewUnavailableStatusError(c.client.ServiceName(), resp.StatusCode)
	}

	if err != nil {
		return nil, mapClientError(err, c.client.ServiceName(), operation)
	}

	return body, nil
}

// Name returns the health check name for this client.
func (c *QuoteStoreClient) Name() string {
	return c.client.ServiceName()
}

// Check reports whether the quote service answers list requests. An open
// circuit is reported without sending anything.
func (c *QuoteStoreClient) Check(ctx context.Context) error {
	if state := c.client.CircuitState(); state == clients.StateOpen {
		return fmt.Errorf("circuit breaker %s", state)
	}

	resp, err := c.client.Get(ctx, listPath, url.Values{paramMaxAgeDays: {"1"}})
	if err != nil {
		return err
	}
	defer c.client.DiscardBody(resp)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("quote service returned status %d", resp.StatusCode)
	}

	return nil
}
