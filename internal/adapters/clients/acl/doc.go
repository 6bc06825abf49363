// Package acl is the anti-corruption layer between downstream HTTP APIs and
// the domain.
//
// Adapters here own the external DTOs, decode and validate them, and map
// every failure onto a domain error:
//
//   - transport failures and 5xx        → [domain.ErrUnavailable]
//   - 404                               → [domain.ErrNotFound]
//   - 409                               → [domain.ErrConflict]
//   - 400/422                           → [domain.ErrValidation]
//   - a 2xx body that does not decode   → [domain.ErrUnavailable]
//
// External shapes never leave this package. [QuoteSource] adapts the
// dummyjson random quote endpoint to [ports.QuoteSource].
package acl
