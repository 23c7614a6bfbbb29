// Package domain contains core business entities and rules.
package domain

import "time"

// Quote is a single record held by the quote store.
// Quotes are immutable once received; the board only ever appends or
// replaces whole lists of them.
type Quote struct {
	// Name is the attributed author of the message.
	Name string

	// Message is the quoted text.
	Message string

	// Time is when the store accepted the quote. Nil when the store sent
	// no timestamp or a falsy one.
	Time *time.Time
}

// HasTime reports whether the quote carries a usable timestamp.
func (q Quote) HasTime() bool {
	return q.Time != nil
}

// Submission is the payload sent to the store to create a quote.
type Submission struct {
	Name    string
	Message string
}

// Validate checks that both fields are non-empty. Whitespace counts as
// content, the same as a required form input.
func (s Submission) Validate() error {
	if s.Name == "" {
		return NewValidationError("name", "is required")
	}

	if s.Message == "" {
		return NewValidationError("message", "is required")
	}

	return nil
}
