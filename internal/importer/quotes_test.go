package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseQuoteLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []ParsedQuote
	}{
		{
			name:  "quoted text with author",
			input: `"Fear = Fuel" - Me`,
			want:  []ParsedQuote{{Text: "Fear = Fuel", Author: "Me"}},
		},
		{
			name:  "no separator falls back to Unknown",
			input: "Just keep showing up",
			want:  []ParsedQuote{{Text: "Just keep showing up", Author: "Unknown"}},
		},
		{
			name:  "last separator wins",
			input: "Do it - do it now - Arnold",
			want:  []ParsedQuote{{Text: "Do it - do it now", Author: "Arnold"}},
		},
		{
			name:  "blank lines skipped",
			input: "\n\n\"A\" - B\n\n",
			want:  []ParsedQuote{{Text: "A", Author: "B"}},
		},
		{
			name:  "empty author becomes Unknown",
			input: `"Stay hard" - `,
			want:  []ParsedQuote{{Text: "Stay hard", Author: "Unknown"}},
		},
		{
			name:  "trailing separator without a space",
			input: `"Stay hard" -`,
			want:  []ParsedQuote{{Text: "Stay hard", Author: "Unknown"}},
		},
		{
			name:  "multiple lines",
			input: "\"One\" - A\n\"Two\" - B",
			want: []ParsedQuote{
				{Text: "One", Author: "A"},
				{Text: "Two", Author: "B"},
			},
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseQuoteLines(tt.input))
		})
	}
}
