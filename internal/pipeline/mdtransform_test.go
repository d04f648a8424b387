package pipeline

import (
	"context"
	"testing"
)

func TestPreprocessMarkdown(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "unix line endings untouched",
			input:    "a\nb\n",
			expected: "a\nb\n",
		},
		{
			name:     "crlf normalized",
			input:    "a\r\nb\r\n",
			expected: "a\nb\n",
		},
		{
			name:     "bare cr normalized",
			input:    "a\rb",
			expected: "a\nb",
		},
		{
			name:     "leading bom stripped",
			input:    "\ufeff# Title",
			expected: "# Title",
		},
		{
			name:     "three blank lines compressed to one",
			input:    "a\n\n\n\nb",
			expected: "a\n\nb",
		},
		{
			name:     "single blank line kept",
			input:    "a\n\nb",
			expected: "a\n\nb",
		},
	}

	p := &CommonMarkPreprocessor{}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := p.PreprocessMarkdown(context.Background(), tt.input)
			if got != tt.expected {
				t.Errorf("PreprocessMarkdown(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestPreprocessMarkdownCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := &CommonMarkPreprocessor{}
	input := "a\r\nb"
	if got := p.PreprocessMarkdown(ctx, input); got != input {
		t.Errorf("cancelled context should return input unchanged, got %q", got)
	}
}
