// Package acl is the anti-corruption layer between the quote board and the
// external quote-storage service.
//
// Wire DTOs never leave this package. Everything the service sends is
// translated into domain.Quote values, and every failure is reported as a
// domain error:
//
//   - transport failures, an open circuit and any non-2xx status become
//     [domain.ErrUnavailable]
//   - bodies that do not have the expected shape become
//     [domain.ErrMalformedResponse]
//
// Timestamps are accepted in the loose forms a JavaScript Date would accept
// from the service: ISO-8601 strings (with or without zone) or epoch
// milliseconds. Falsy or unparseable timestamps mean "no time".
package acl
