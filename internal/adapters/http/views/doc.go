// Package views renders the quote board as HTML with templ components.
//
// The *_templ.go files are generated from the .templ sources; edit the
// sources and regenerate.
package views

//go:generate go tool templ generate
