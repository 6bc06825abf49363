package dto

import (
	"math"

	"github.com/jsamuelsen/quotebook/internal/domain"
)

// QuoteResponse is the wire form of a quote.
type QuoteResponse struct {
	ID     int64  `json:"id"`
	Quote  string `json:"quote"`
	Author string `json:"author"`
}

// FromQuote converts a domain quote to its wire form.
func FromQuote(q domain.Quote) QuoteResponse {
	return QuoteResponse{ID: q.ID, Quote: q.Text, Author: q.Author}
}

// FromQuotes converts a list of quotes. The result is never nil so that an
// empty list encodes as [].
func FromQuotes(quotes []domain.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, FromQuote(q))
	}

	return out
}

// MaxQuoteID is the largest id a JSON number carries exactly.
const MaxQuoteID = 1<<53 - 1

// SaveQuoteRequest is the body of POST /quote.
// Pointer fields tell a missing field apart from a zero value.
// ID is any JSON number, so 4.0 is accepted; it must still be integral.
type SaveQuoteRequest struct {
	ID     *float64 `json:"id"     validate:"required,gt=0,integral,max=9007199254740991"`
	Quote  *string  `json:"quote"  validate:"required,min=1"`
	Author *string  `json:"author" validate:"required,min=1"`
}

// ToDomain converts a validated request into a domain quote.
func (r *SaveQuoteRequest) ToDomain() domain.Quote {
	var q domain.Quote

	if r.ID != nil && math.Abs(*r.ID) <= MaxQuoteID {
		q.ID = int64(*r.ID)
	}

	if r.Quote != nil {
		q.Text = *r.Quote
	}

	if r.Author != nil {
		q.Author = *r.Author
	}

	return q
}
