package pipeline

import "testing"

func TestFlattenNestedLists(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "quote and bullet under item",
			input:    "1. Item\n   > quoted\n   - sub",
			expected: "1. Item\n>　quoted\n- sub",
		},
		{
			name:     "paren marker normalized",
			input:    "1) a\n\t- b",
			expected: "1. a\n- b",
		},
		{
			name:     "star bullet normalized",
			input:    "1. a\n    * b",
			expected: "1. a\n- b",
		},
		{
			name:     "plain continuation de-indented, whitespace-only dropped",
			input:    "1. a\n   plain\n   \n2. b",
			expected: "1. a\nplain\n2. b",
		},
		{
			name:     "blank line kept while consuming",
			input:    "1. a\n\n   > q",
			expected: "1. a\n\n>　q",
		},
		{
			name:     "top-level line ends the item",
			input:    "1. a\nnext\n  - not nested",
			expected: "1. a\nnext\n  - not nested",
		},
		{
			name:     "top-level numbered line starts a new item",
			input:    "1. a\n2. b\n   - c",
			expected: "1. a\n2. b\n- c",
		},
		{
			name:     "bold text is not a bullet",
			input:    "1. a\n   **bold** text",
			expected: "1. a\n**bold** text",
		},
		{
			name:     "empty quote line",
			input:    "1. a\n   >",
			expected: "1. a\n>　",
		},
		{
			name:     "empty item keeps trailing space",
			input:    "1. ",
			expected: "1. ",
		},
		{
			name:     "bullet list without numbered item untouched",
			input:    "- top\n  - nested",
			expected: "- top\n  - nested",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FlattenNestedLists(tt.input, Rules{}); got != tt.expected {
				t.Errorf("FlattenNestedLists() = %q, want %q", got, tt.expected)
			}
		})
	}
}
