package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuote_Validate(t *testing.T) {
	tests := []struct {
		name           string
		quote          Quote
		expectedFields []string
	}{
		{
			name:  "valid quote",
			quote: Quote{ID: 1, Text: "A", Author: "B"},
		},
		{
			name:  "whitespace is content",
			quote: Quote{ID: 2, Text: "   ", Author: " "},
		},
		{
			name:           "negative id",
			quote:          Quote{ID: -1, Text: "A", Author: "B"},
			expectedFields: []string{"id"},
		},
		{
			name:           "zero id",
			quote:          Quote{ID: 0, Text: "A", Author: "B"},
			expectedFields: []string{"id"},
		},
		{
			name:           "empty text",
			quote:          Quote{ID: 1, Text: "", Author: "B"},
			expectedFields: []string{"quote"},
		},
		{
			name:           "everything missing",
			quote:          Quote{},
			expectedFields: []string{"id", "quote", "author"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.quote.Validate()

			if len(tt.expectedFields) == 0 {
				require.NoError(t, err)
				return
			}

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)

			fields := make([]string, 0, len(validationErr.Violations))
			for _, v := range validationErr.Violations {
				fields = append(fields, v.Field)
			}
			assert.Equal(t, tt.expectedFields, fields)
		})
	}
}

func TestContainsQuote(t *testing.T) {
	quotes := []Quote{{ID: 1}, {ID: 2}}

	assert.True(t, ContainsQuote(quotes, 2))
	assert.False(t, ContainsQuote(quotes, 3))
	assert.False(t, ContainsQuote(nil, 1))
}
