// Copyright The Courtgate Authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package sentences

import (
	"testing"
	"unicode/utf8"
)

func TestSplitBasic(t *testing.T) {
	text := "First sentence. Second one! Third?"
	spans := Split(text)
	if len(spans) != 3 {
		t.Fatalf("expected 3 sentences, got %d: %v", len(spans), spans)
	}

	want := []string{"First sentence.", "Second one!", "Third?"}
	for i, s := range spans {
		if got := text[s.Start:s.End]; got != want[i] {
			t.Errorf("sentence %d = %q, want %q", i, got, want[i])
		}
	}
}

func TestSplitEmpty(t *testing.T) {
	if spans := Split(""); len(spans) != 0 {
		t.Errorf("expected no spans for empty text, got %v", spans)
	}
	if spans := Split("   \n\t  "); len(spans) != 0 {
		t.Errorf("expected no spans for whitespace text, got %v", spans)
	}
}

func TestSplitNoTerminalPunctuation(t *testing.T) {
	text := "a trailing fragment without punctuation"
	spans := Split(text)
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	if got := text[spans[0].Start:spans[0].End]; got != text {
		t.Errorf("got %q, want whole text", got)
	}
}

func TestSplitNewlineBoundary(t *testing.T) {
	text := "heading without period\nNext line here."
	spans := Split(text)
	if len(spans) != 2 {
		t.Fatalf("expected 2 spans, got %d: %v", len(spans), spans)
	}
	if got := text[spans[0].Start:spans[0].End]; got != "heading without period" {
		t.Errorf("first sentence = %q", got)
	}
}

func TestSplitKeepsDecimalsIntact(t *testing.T) {
	text := "The fine was 1.5 million. It was paid."
	spans := Split(text)
	if len(spans) != 2 {
		t.Fatalf("expected 2 sentences, got %d: %v", len(spans), spans)
	}
	if got := text[spans[0].Start:spans[0].End]; got != "The fine was 1.5 million." {
		t.Errorf("first sentence = %q", got)
	}
}

func TestContaining(t *testing.T) {
	text := "One here. Two there."
	spans := Split(text)

	s, ok := Containing(spans, 0)
	if !ok || text[s.Start:s.End] != "One here." {
		t.Errorf("offset 0: got %v ok=%v", s, ok)
	}

	s, ok = Containing(spans, 12)
	if !ok || text[s.Start:s.End] != "Two there." {
		t.Errorf("offset 12: got %v ok=%v", s, ok)
	}

	// The gap between sentences belongs to neither.
	if _, ok := Containing(spans, 9); ok {
		t.Error("inter-sentence whitespace should not resolve")
	}
}

func TestIsHedged(t *testing.T) {
	cases := []struct {
		sentence string
		want     bool
	}{
		{"John allegedly committed fraud.", true},
		{"According to the filing, he took the money.", true},
		{"It is alleged that she lied.", true},
		{"John committed fraud.", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := IsHedged(tc.sentence); got != tc.want {
			t.Errorf("IsHedged(%q) = %v, want %v", tc.sentence, got, tc.want)
		}
	}
}

func TestSplitKeepsMultibyteRunesIntact(t *testing.T) {
	// A trailing no-break space must not be half-trimmed: its second byte
	// (0xA0) is not ASCII whitespace and cutting there would leave a
	// dangling UTF-8 lead byte in the span.
	text := "John Doe committed fraud.\u00a0"
	spans := Split(text)
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d: %v", len(spans), spans)
	}
	got := text[spans[0].Start:spans[0].End]
	if !utf8.ValidString(got) {
		t.Errorf("span text is not valid UTF-8: %q", got)
	}
}

func TestSplitSpansIndexOriginalText(t *testing.T) {
	text := "  Leading space. Trailing space.  "
	for _, s := range Split(text) {
		if s.Start < 0 || s.End > len(text) || s.Start >= s.End {
			t.Errorf("invalid span %v for text of length %d", s, len(text))
		}
	}
}
