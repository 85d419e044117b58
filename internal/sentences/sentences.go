// Copyright The Courtgate Authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package sentences provides the sentence segmentation shared by the
// detector, the claim extractor, and the rewriter. Segmentation is
// intentionally simple: terminal punctuation followed by whitespace or end
// of input, with newlines as hard boundaries.
package sentences

import (
	"strings"

	"courtgate/internal/risk"
)

// Split returns the spans of all sentences in text, in order. Spans exclude
// leading and trailing whitespace but include terminal punctuation. Empty or
// all-whitespace input yields no spans.
func Split(text string) []risk.Span {
	var spans []risk.Span

	start := -1
	for i := 0; i < len(text); i++ {
		c := text[i]

		if start < 0 {
			if !isSpace(c) {
				start = i
			}
			continue
		}

		if c == '\n' {
			spans = appendTrimmed(spans, text, start, i)
			start = -1
			continue
		}

		if c == '.' || c == '!' || c == '?' {
			// Consume a run of terminal punctuation, then require a
			// boundary so decimals and abbreviated initials stay intact.
			j := i
			for j+1 < len(text) && isTerminal(text[j+1]) {
				j++
			}
			if j+1 >= len(text) || isSpace(text[j+1]) {
				spans = appendTrimmed(spans, text, start, j+1)
				start = -1
				i = j
			}
		}
	}
	if start >= 0 {
		spans = appendTrimmed(spans, text, start, len(text))
	}

	return spans
}

// Containing returns the span of the sentence containing byte offset pos,
// and true on success. Offsets in inter-sentence whitespace belong to no
// sentence.
func Containing(spans []risk.Span, pos int) (risk.Span, bool) {
	for _, s := range spans {
		if pos >= s.Start && pos < s.End {
			return s, true
		}
	}
	return risk.Span{}, false
}

func appendTrimmed(spans []risk.Span, text string, start, end int) []risk.Span {
	for end > start && isSpace(text[end-1]) {
		end--
	}
	if end > start {
		spans = append(spans, risk.Span{Start: start, End: end})
	}
	return spans
}

// isSpace matches ASCII whitespace only. Promoting a raw byte to a rune
// would misclassify UTF-8 continuation bytes (0x80-0xBF overlap values like
// U+00A0) and let a span boundary cut a multi-byte character in half.
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

func isTerminal(c byte) bool {
	return c == '.' || c == '!' || c == '?' || c == '"' || c == '\''
}

// HedgingMarkers are the phrases treated as allegation framing. A sentence
// containing any of them is considered hedged.
var HedgingMarkers = []string{
	"allegedly",
	"alleged",
	"reportedly",
	"according to",
	"it is claimed",
	"purportedly",
}

// IsHedged reports whether the sentence text contains a hedging marker.
func IsHedged(sentence string) bool {
	lower := strings.ToLower(sentence)
	for _, marker := range HedgingMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}
