package logging

import (
	"context"
	"errors"
	"log/slog"
)

// fanout sends each record to every sink that wants it. The console and
// the rolling file each keep their own level, so the file can hold the
// per-request wire detail while the console stays at info.
type fanout []slog.Handler

// newFanout drops nil sinks. With one sink left it is returned as is; with
// none, records are discarded.
func newFanout(sinks ...slog.Handler) slog.Handler {
	live := make(fanout, 0, len(sinks))

	for _, s := range sinks {
		if s != nil {
			live = append(live, s)
		}
	}

	switch len(live) {
	case 0:
		return slog.DiscardHandler
	case 1:
		return live[0]
	default:
		return live
	}
}

func (f fanout) Enabled(ctx context.Context, level slog.Level) bool {
	for _, s := range f {
		if s.Enabled(ctx, level) {
			return true
		}
	}

	return false
}

// Handle gives each sink its own clone of r. A failing sink does not stop
// the others; their errors are joined.
func (f fanout) Handle(ctx context.Context, r slog.Record) error { //nolint:gocritic // slog.Handler interface requires value
	var errs []error

	for _, s := range f {
		if !s.Enabled(ctx, r.Level) {
			continue
		}

		if err := s.Handle(ctx, r.Clone()); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func (f fanout) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make(fanout, len(f))
	for i, s := range f {
		out[i] = s.WithAttrs(attrs)
	}

	return out
}

func (f fanout) WithGroup(name string) slog.Handler {
	if name == "" {
		return f
	}

	out := make(fanout, len(f))
	for i, s := range f {
		out[i] = s.WithGroup(name)
	}

	return out
}
