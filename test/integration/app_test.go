//go:build integration

package integration

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quoteboard/internal/adapters/clients"
	"github.com/jsamuelsen/quoteboard/internal/adapters/clients/acl"
	httpadapter "github.com/jsamuelsen/quoteboard/internal/adapters/http"
	"github.com/jsamuelsen/quoteboard/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quoteboard/internal/adapters/http/views"
	"github.com/jsamuelsen/quoteboard/internal/app"
	"github.com/jsamuelsen/quoteboard/internal/platform/config"
	"github.com/jsamuelsen/quoteboard/internal/ports"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// quoteboardApp is the web front end wired the way the serve command does
// it, pointed at a fake quote store.
type quoteboardApp struct {
	*httptest.Server

	store    *acl.QuoteStoreClient
	sessions *app.Sessions
	client   *clients.Client
}

func testClientConfig(baseURL string) *clients.Config {
	return &clients.Config{
		BaseURL:     baseURL,
		ServiceName: "quote-store",
		Timeout:     2 * time.Second,
		Circuit: config.CircuitBreakerConfig{
			MaxFailures:   3,
			Timeout:       time.Second,
			HalfOpenLimit: 1,
		},
		Transport: config.TransportConfig{
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     30 * time.Second,
		},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func newQuoteboardApp(storeURL string) (*quoteboardApp, error) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	client, err := clients.New(testClientConfig(storeURL))
	if err != nil {
		return nil, err
	}

	store := acl.NewQuoteStoreClient(acl.QuoteStoreConfig{
		Client:   client,
		Logger:   logger,
		Location: time.Local,
	})

	registry := ports.NewHealthRegistry()
	if err := registry.Register(store); err != nil {
		return nil, err
	}

	sessions := app.NewSessions(app.SessionsConfig{
		Board: app.BoardConfig{
			Store:          store,
			Logger:         logger,
			RequestFencing: true,
		},
		TTL: 30 * time.Minute,
		Max: 100,
	})

	engine := gin.New()
	httpadapter.SetupRouter(engine, httpadapter.NewRouterConfig(
		logger,
		&config.AppConfig{Name: "quoteboard", Version: "test", Environment: "test"},
		handlers.NewHealthHandler(registry, handlers.BuildInfo{Service: "quoteboard"}, nil),
		handlers.NewBoardHandler(sessions, "Quote Board", views.DateFormat{
			Layout:   views.DefaultDateLayout,
			Location: time.Local,
		}),
	))

	return &quoteboardApp{
		Server:   httptest.NewServer(engine),
		store:    store,
		sessions: sessions,
		client:   client,
	}, nil
}

func newTestApp(t *testing.T) (*quoteboardApp, *fakeQuoteStore) {
	t.Helper()

	fake := newFakeQuoteStore()
	t.Cleanup(fake.Close)

	qb, err := newQuoteboardApp(fake.URL)
	if err != nil {
		t.Fatalf("wiring quoteboard: %v", err)
	}
	t.Cleanup(qb.Close)

	return qb, fake
}
