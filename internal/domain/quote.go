// Package domain contains core business entities and rules.
package domain

// Quote is a quotation with its author.
// Identity is ID; a saved quote is never modified.
type Quote struct {
	// ID is the positive identifier assigned by the quote source.
	ID int64

	// Text is the body of the quote.
	Text string

	// Author is who said or wrote the quote.
	Author string
}

// Validate requires a positive ID and non-empty text and author.
// Whitespace counts as content.
// All violations are collected into a single ValidationError.
func (q *Quote) Validate() error {
	var violations []Violation

	if q.ID <= 0 {
		violations = append(violations, Violation{Field: "id", Message: "must be a positive integer"})
	}

	if q.Text == "" {
		violations = append(violations, Violation{Field: "quote", Message: "Quote is required"})
	}

	if q.Author == "" {
		violations = append(violations, Violation{Field: "author", Message: "Author is required"})
	}

	if len(violations) > 0 {
		return NewValidationErrors(violations...)
	}

	return nil
}

// ContainsQuote reports whether quotes holds an entry with the given id.
func ContainsQuote(quotes []Quote, id int64) bool {
	for i := range quotes {
		if quotes[i].ID == id {
			return true
		}
	}

	return false
}
