package acl

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/spf13/cast"

	"github.com/jsamuelsen/quoteboard/internal/domain"
)

var (
	errNotArray  = errors.New("expected a JSON array")
	errNotObject = errors.New("expected a JSON object")
)

// maxEpochMillis is the largest distance from the epoch, in either
// direction, that a browser Date accepts. Anything beyond is not a time.
const maxEpochMillis = 8.64e15

// wireQuote is the record shape sent by the quote service.
type wireQuote struct {
	Name    string `json:"name"`
	Message string `json:"message"`
	Time    any    `json:"time"`
}

// timeParser turns the loose wire timestamp into a domain time.
type timeParser struct {
	// loc is used for ISO strings that carry no zone.
	loc *time.Location
}

// parse returns nil for falsy values. Unparseable values return nil and an
// error so callers can log them; the quote itself is still usable.
func (p timeParser) parse(v any) (*time.Time, error) {
	switch raw := v.(type) {
	case nil:
		return nil, nil
	case bool:
		if !raw {
			return nil, nil
		}

		return nil, fmt.Errorf("boolean time %v", raw)
	case string:
		if raw == "" {
			return nil, nil
		}

		ts, err := cast.ToTimeInDefaultLocationE(raw, p.loc)
		if err != nil {
			return nil, fmt.Errorf("parsing time %q: %w", raw, err)
		}

		return &ts, nil
	case json.Number:
		ms, err := epochMillis(raw.String())
		if err != nil {
			return nil, err
		}

		if ms == 0 {
			return nil, nil
		}

		ts := time.UnixMilli(ms)

		return &ts, nil
	default:
		return nil, fmt.Errorf("unsupported time type %T", v)
	}
}

// epochMillis reads an integer or fractional millisecond count, truncating
// fractions. NaN and values outside the Date range are errors.
func epochMillis(s string) (int64, error) {
	f, err := cast.ToFloat64E(s)
	if err != nil {
		return 0, fmt.Errorf("parsing epoch %q: %w", s, err)
	}

	if math.IsNaN(f) || math.Abs(f) > maxEpochMillis {
		return 0, fmt.Errorf("epoch %q out of range", s)
	}

	if ms, err := cast.ToInt64E(s); err == nil {
		return ms, nil
	}

	return int64(f), nil
}

// decodeJSON decodes body into T, keeping numbers as json.Number so epoch
// milliseconds keep their precision.
func decodeJSON[T any](body []byte) (T, error) {
	var out T

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	if err := dec.Decode(&out); err != nil {
		return out, fmt.Errorf("decoding response: %w", err)
	}

	return out, nil
}

// firstToken returns the first non-space byte of body, or 0.
func firstToken(body []byte) byte {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return 0
	}

	return trimmed[0]
}

func decodeQuoteList(body []byte) ([]wireQuote, error) {
	if firstToken(body) != '[' {
		return nil, errNotArray
	}

	return decodeJSON[[]wireQuote](body)
}

func decodeQuote(body []byte) (wireQuote, error) {
	if firstToken(body) != '{' {
		return wireQuote{}, errNotObject
	}

	return decodeJSON[wireQuote](body)
}

// translate converts one wire record. The returned error only describes the
// timestamp; the quote is valid either way.
func (p timeParser) translate(w wireQuote) (domain.Quote, error) {
	ts, err := p.parse(w.Time)

	return domain.Quote{Name: w.Name, Message: w.Message, Time: ts}, err
}
