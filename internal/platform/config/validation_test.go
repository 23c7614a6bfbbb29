package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validConfig returns a fully valid configuration for testing.
func validConfig() *Config {
	return &Config{
		App: AppConfig{
			Name:        "quoteboard",
			Version:     "1.0.0",
			Environment: "local",
		},
		Server: ServerConfig{
			Port:            8080,
			Host:            "0.0.0.0",
			ReadTimeout:     30 * time.Second,
			WriteTimeout:    30 * time.Second,
			IdleTimeout:     120 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			MaxRequestSize:  1048576,
			RequestTimeout:  20 * time.Second,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		Client: ClientConfig{
			Timeout:         10 * time.Second,
			MaxResponseSize: 4 << 20,
			CircuitBreaker: CircuitBreakerConfig{
				MaxFailures:   5,
				Timeout:       30 * time.Second,
				HalfOpenLimit: 3,
			},
			Transport: TransportConfig{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		Services: ServicesConfig{
			Quote: ServiceEndpointConfig{
				BaseURL: "http://localhost:8000",
				Name:    "quote-store",
			},
		},
		Board: BoardConfig{
			Title:          "Quotes",
			RequestFencing: true,
			DateLayout:     "2006-01-02 15:04",
			TimeZone:       "UTC",
			Sessions: SessionConfig{
				TTL: 30 * time.Minute,
				Max: 100,
			},
		},
	}
}

func TestConfig_Validate_ValidConfig(t *testing.T) {
	require.NoError(t, validConfig().Validate())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{
			name:   "missing app name",
			mutate: func(c *Config) { c.App.Name = "" },
			want:   "app.name is required",
		},
		{
			name:   "unknown environment",
			mutate: func(c *Config) { c.App.Environment = "staging" },
			want:   "app.environment must be one of: local dev qa prod test",
		},
		{
			name:   "port out of range",
			mutate: func(c *Config) { c.Server.Port = 70000 },
			want:   "server.port must be at most 65535",
		},
		{
			name:   "request timeout above write timeout",
			mutate: func(c *Config) { c.Server.RequestTimeout = time.Minute },
			want:   "server.request_timeout must not exceed server.write_timeout",
		},
		{
			name:   "request timeout too short",
			mutate: func(c *Config) { c.Server.RequestTimeout = 500 * time.Millisecond },
			want:   "server.request_timeout must be at least 1s",
		},
		{
			name:   "client timeout not below request timeout",
			mutate: func(c *Config) { c.Client.Timeout = 20 * time.Second },
			want:   "client.timeout (20s) must be less than server.request_timeout (20s)",
		},
		{
			name:   "client timeout too short",
			mutate: func(c *Config) { c.Client.Timeout = 10 * time.Millisecond },
			want:   "client.timeout must be at least 100ms",
		},
		{
			name:   "circuit breaker needs failures",
			mutate: func(c *Config) { c.Client.CircuitBreaker.MaxFailures = 0 },
			want:   "client.circuit_breaker.max_failures is required",
		},
		{
			name:   "quote store URL not http",
			mutate: func(c *Config) { c.Services.Quote.BaseURL = "ftp://quotes.example.com" },
			want:   "services.quote.base_url must be an http or https URL",
		},
		{
			name:   "quote store URL missing",
			mutate: func(c *Config) { c.Services.Quote.BaseURL = "" },
			want:   "services.quote.base_url is required",
		},
		{
			name:   "missing board title",
			mutate: func(c *Config) { c.Board.Title = "" },
			want:   "board.title is required",
		},
		{
			name:   "date layout without fields",
			mutate: func(c *Config) { c.Board.DateLayout = "posted" },
			want:   `board.date_layout "posted" has no date or time fields`,
		},
		{
			name:   "unknown time zone",
			mutate: func(c *Config) { c.Board.TimeZone = "Nowhere/Special" },
			want:   `board.time_zone must be an IANA time zone name or "Local"`,
		},
		{
			name:   "session ttl too short",
			mutate: func(c *Config) { c.Board.Sessions.TTL = 10 * time.Second },
			want:   "board.sessions.ttl must be at least 1m",
		},
		{
			name:   "no sessions allowed",
			mutate: func(c *Config) { c.Board.Sessions.Max = 0 },
			want:   "board.sessions.max is required",
		},
		{
			name:   "file logging without path",
			mutate: func(c *Config) { c.Log.File = LogFileConfig{Enabled: true} },
			want:   "log.file.path is required when Enabled true",
		},
		{
			name:   "unknown file log level",
			mutate: func(c *Config) { c.Log.File.Level = "verbose" },
			want:   "log.file.level must be one of: trace debug info warn error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestConfig_Validate_AcceptedVariants(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"local time zone", func(c *Config) { c.Board.TimeZone = "Local" }},
		{"named time zone", func(c *Config) { c.Board.TimeZone = "America/Los_Angeles" }},
		{"fencing disabled", func(c *Config) { c.Board.RequestFencing = false }},
		{"https quote store", func(c *Config) { c.Services.Quote.BaseURL = "https://quotes.example.com/v1" }},
		{"request timeout equal to write timeout", func(c *Config) { c.Server.RequestTimeout = c.Server.WriteTimeout }},
		{"default date layout", func(c *Config) { c.Board.DateLayout = "1/2/2006, 3:04:05 PM" }},
		{"file logs at trace", func(c *Config) { c.Log.File = LogFileConfig{Enabled: true, Path: "q.log", Level: "trace"} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			assert.NoError(t, cfg.Validate())
		})
	}
}

func TestConfig_Validate_ReportsEveryProblem(t *testing.T) {
	cfg := validConfig()
	cfg.Board.Title = ""
	cfg.Board.DateLayout = "none"
	cfg.Client.Timeout = time.Minute

	err := cfg.Validate()
	require.Error(t, err)

	msg := err.Error()
	assert.Contains(t, msg, "board.title")
	assert.Contains(t, msg, "board.date_layout")
	assert.Contains(t, msg, "client.timeout")
}

func TestFormatFieldPath(t *testing.T) {
	tests := []struct {
		namespace string
		expected  string
	}{
		{"Config.server.port", "server.port"},
		{"Config.board.request_fencing", "board.request_fencing"},
		{"Config.board.sessions.ttl", "board.sessions.ttl"},
		{"Config", "Config"},
	}

	for _, tt := range tests {
		t.Run(tt.namespace, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatFieldPath(tt.namespace))
		})
	}
}

func TestSiblingPath(t *testing.T) {
	assert.Equal(t, "server.write_timeout", siblingPath("server.request_timeout", "WriteTimeout"))
	assert.Equal(t, "max_idle_conns", siblingPath("port", "MaxIdleConns"))
}
