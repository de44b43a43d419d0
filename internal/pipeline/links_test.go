package pipeline

import "testing"

func TestConvertImageLinks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain embed", "![[photo.png]]", "![photo.png](photo.png)"},
		{"size alias dropped", "![[photo.png|300]]", "![photo.png](photo.png)"},
		{"name trimmed", "![[ my pic.png | caption ]]", "![my pic.png](my pic.png)"},
		{"two embeds on a line", "![[a.png]] ![[b.png]]", "![a.png](a.png) ![b.png](b.png)"},
		{"wiki link untouched", "[[Note]]", "[[Note]]"},
		{"markdown image untouched", "![alt](x.png)", "![alt](x.png)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ConvertImageLinks(tt.input, Rules{}); got != tt.expected {
				t.Errorf("ConvertImageLinks() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestConvertInternalLinks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		style    LinkStyle
		input    string
		expected string
	}{
		{"markdown with alias", LinkMarkdown, "[[A|B]]", "[B](A)"},
		{"markdown without alias", LinkMarkdown, "see [[Note]]", "see [Note](Note)"},
		{"markdown extra pipes stay in alias", LinkMarkdown, "[[A|B|C]]", "[B|C](A)"},
		{"markdown dollar kept literal", LinkMarkdown, "[[Price $1]]", "[Price $1](Price $1)"},
		{"plain with alias", LinkPlain, "[[A|B]]", "B"},
		{"plain without alias", LinkPlain, "go to [[Note]] now", "go to Note now"},
		{"remove", LinkRemove, "see [[A|B]] here", "see  here"},
		{"two links on a line", LinkPlain, "[[A]] and [[B|b]]", "A and b"},
		{"unknown style falls back to plain", LinkStyle(99), "[[A|B]]", "B"},
		{"unclosed link untouched", LinkMarkdown, "[[A", "[[A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ConvertInternalLinks(tt.input, Rules{InternalLinks: tt.style}); got != tt.expected {
				t.Errorf("ConvertInternalLinks() = %q, want %q", got, tt.expected)
			}
		})
	}
}
