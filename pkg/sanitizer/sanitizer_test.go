package sanitizer_test

import (
	"testing"

	"financial-coach/pkg/sanitizer"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain text", in: "hello", want: "hello"},
		{name: "single span", in: "<think>plan</think>Answer", want: "Answer"},
		{name: "multi-line span", in: "<think>\nstep 1\nstep 2\n</think>\n\n**Budget** first", want: "**Budget** first"},
		{name: "multiple spans", in: "a<think>x</think>b<think>y</think>c", want: "abc"},
		{name: "nested spans", in: "a<think>x<think>y</think>z</think>b", want: "ab"},
		{name: "collapse newlines", in: "line1\n\n\n\n\nline2", want: "line1\n\nline2"},
		{name: "keeps double newline", in: "line1\n\nline2", want: "line1\n\nline2"},
		{name: "trims whitespace", in: "  \n reply \n\t", want: "reply"},
		{name: "unclosed open tag kept", in: "a<think>b", want: "a<think>b"},
		{name: "stray close tag kept", in: "a</think>b", want: "a</think>b"},
		{name: "extra open tag before pair", in: "<think>a<think>b</think>c", want: "c"},
		{name: "extra open tag leaks no reasoning", in: "<think>plan step one\n<think>nested</think>\nAnswer", want: "Answer"},
		{name: "trailing unclosed after pair kept", in: "<think>a<think>b</think>c<think>d", want: "c<think>d"},
		{name: "extra open inside nested span", in: "x<think>a<think>b<think>c</think>d</think>e", want: "xe"},
		{name: "markdown untouched", in: "| a | b |\n|---|---|\n- *item*", want: "| a | b |\n|---|---|\n- *item*"},
		{name: "tags formed after removal", in: "<thi<think>x</think>nk>y</think>z", want: "z"},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sanitizer.Sanitize(tt.in)
			if got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSanitizeIdempotent(t *testing.T) {
	inputs := []string{
		"a<think>x<think>y</think>z</think>b",
		"<think>a</think>\n\n\n\nb\n\n\n<think>",
		"x</think></think><think><think>",
		"<thi<think>x</think>nk>y</think>z",
		"  \n\n\n text \n\n\n\n more  ",
		"<think>\n\n\n</think>",
		"<think>a<think>b</think>c",
		"<think>plan\n<think>n</think>\nAnswer",
		"<think>a<think>b</think>c<think>d",
	}
	for _, in := range inputs {
		once := sanitizer.Sanitize(in)
		twice := sanitizer.Sanitize(once)
		if once != twice {
			t.Errorf("not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}
