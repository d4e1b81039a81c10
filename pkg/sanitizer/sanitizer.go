// Package sanitizer cleans model output before it is shown to a user or stored.
package sanitizer

import (
	"regexp"
	"sort"
	"strings"
)

const (
	OpenTag  = "<think>"
	CloseTag = "</think>"
)

var blankRuns = regexp.MustCompile(`\n{3,}`)

// Sanitize removes <think>...</think> reasoning spans (nested or unbalanced ones included),
// collapses runs of three or more newlines to exactly two and trims the result.
// Other markup is left untouched. Sanitize(Sanitize(x)) == Sanitize(x).
func Sanitize(raw string) string {
	text := raw
	for {
		next := stripThinkSpans(text)
		if next == text {
			break
		}
		text = next
	}
	text = blankRuns.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

type span struct{ start, end int }

// stripThinkSpans performs one pass. Tags pair like brackets, so a nested span goes
// as a whole. An open tag left unpaired is removed up to the first close tag after it,
// as a non-greedy match would. A stray close tag, or an open tag with no close tag
// anywhere after it, stays in place.
func stripThinkSpans(text string) string {
	if !strings.Contains(text, OpenTag) {
		return text
	}

	var (
		open   []int
		closes []int
		spans  []span
	)
	for i := 0; i < len(text); {
		switch {
		case strings.HasPrefix(text[i:], OpenTag):
			open = append(open, i)
			i += len(OpenTag)
		case strings.HasPrefix(text[i:], CloseTag):
			closes = append(closes, i)
			end := i + len(CloseTag)
			if len(open) > 0 {
				spans = append(spans, span{start: open[len(open)-1], end: end})
				open = open[:len(open)-1]
			}
			i = end
		default:
			i++
		}
	}

	for _, start := range open {
		if j := sort.SearchInts(closes, start); j < len(closes) {
			spans = append(spans, span{start: start, end: closes[j] + len(CloseTag)})
		}
	}

	if len(spans) == 0 {
		return text
	}

	sort.Slice(spans, func(i, j int) bool { return spans[i].start < spans[j].start })

	var b strings.Builder
	b.Grow(len(text))
	prev := 0
	for _, s := range spans {
		if s.end <= prev {
			continue
		}
		if s.start > prev {
			b.WriteString(text[prev:s.start])
		}
		prev = s.end
	}
	b.WriteString(text[prev:])
	return b.String()
}
