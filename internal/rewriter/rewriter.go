// Copyright The Courtgate Authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package rewriter produces the court-safe rendering of a text. Rules apply
// in a fixed order: personal-data redaction, hedged replacement of
// declarative criminal assertions, then jurisdiction phrasing substitutions.
// Replacement spans never overlap and always index the original text, so the
// transformation log is a complete, replayable diff. Running the rewriter on
// its own output yields zero further transformations.
package rewriter

import (
	"sort"
	"strings"

	"courtgate/internal/claims"
	"courtgate/internal/risk"
	"courtgate/internal/sentences"
)

// RedactionPlaceholder replaces sensitive-personal-data matches.
const RedactionPlaceholder = "[REDACTED]"

// Rule identifiers recorded in the transformation log.
const (
	RuleRedactPersonalData = "redact_personal_data"
	RuleHedgeAssertion     = "hedge_criminal_assertion"
	RuleJurisdiction       = "jurisdiction_phrasing"
)

// hedgedCategories are the signal categories whose declarative phrasing gets
// allegation framing when severe enough.
var hedgedCategories = map[risk.Category]bool{
	risk.CategoryUnverifiedCriminal: true,
	risk.CategoryDefamation:         true,
	risk.CategoryInstitutional:      true,
}

// Options selects the distribution mode and optional jurisdiction styling.
// Jurisdiction substitutions apply only when both CourtStyle and FilingType
// are set.
type Options struct {
	Mode       risk.Mode
	CourtStyle string
	FilingType string
}

// Rewrite transforms text into its court-safe form and returns the full
// transformation log. Spans in the log refer to the original text.
func Rewrite(text string, opts Options, signals []risk.Signal, claimUnits []risk.ClaimUnit) risk.RewritePlan {
	if text == "" {
		return risk.RewritePlan{RewrittenText: text}
	}

	sents := sentences.Split(text)

	redactions := redactionTransforms(text, signals)
	jurisdiction := jurisdictionTransforms(text, opts)
	hedges, folded := hedgeTransforms(text, sents, signals, claimUnits, redactions, jurisdiction)

	var accepted []risk.Transformation
	for i, r := range redactions {
		if !folded.redactions[i] {
			accepted = append(accepted, r)
		}
	}
	accepted = append(accepted, hedges...)

	var standalone []risk.Transformation
	for i, j := range jurisdiction {
		if !folded.jurisdiction[i] {
			standalone = append(standalone, j)
		}
	}
	accepted = appendNonOverlapping(accepted, standalone)

	sort.Slice(accepted, func(i, j int) bool {
		return accepted[i].Span.Start < accepted[j].Span.Start
	})

	return risk.RewritePlan{
		RewrittenText:   Replay(text, accepted),
		Transformations: accepted,
	}
}

// Replay applies transformations, ordered by span start, against the
// original text and returns the result. Replaying the log of a Rewrite call
// reconstructs its RewrittenText exactly.
func Replay(text string, transformations []risk.Transformation) string {
	var b strings.Builder
	prev := 0
	for _, t := range transformations {
		if t.Span.Start < prev || t.Span.End > len(text) {
			continue
		}
		b.WriteString(text[prev:t.Span.Start])
		b.WriteString(t.To)
		prev = t.Span.End
	}
	b.WriteString(text[prev:])
	return b.String()
}

// redactionTransforms builds one replacement per sensitive-personal-data
// signal. Detector overlap resolution guarantees the spans are disjoint.
func redactionTransforms(text string, signals []risk.Signal) []risk.Transformation {
	var out []risk.Transformation
	for _, sig := range signals {
		if sig.Category != risk.CategorySensitivePersonalData {
			continue
		}
		out = append(out, risk.Transformation{
			RuleID: RuleRedactPersonalData,
			From:   text[sig.Span.Start:sig.Span.End],
			To:     RedactionPlaceholder,
			Reason: sig.Rationale,
			Span:   sig.Span,
		})
	}
	return out
}

// foldedSet marks the redaction and jurisdiction candidates absorbed into a
// hedged sentence, by index into their respective candidate slices.
type foldedSet struct {
	redactions   map[int]bool
	jurisdiction map[int]bool
}

// hedgeTransforms replaces each severe assertion sentence with its hedged
// rendering. Redactions and jurisdiction substitutions falling inside a
// hedged sentence are folded into the replacement text, so the log stays
// non-overlapping and a second pass finds nothing left to rewrite.
func hedgeTransforms(text string, sents []risk.Span, signals []risk.Signal, claimUnits []risk.ClaimUnit, redactions, jurisdiction []risk.Transformation) ([]risk.Transformation, foldedSet) {
	folded := foldedSet{
		redactions:   make(map[int]bool),
		jurisdiction: make(map[int]bool),
	}

	// Sentences carrying at least one hedgeable-category signal, and the
	// worst severity of those at HIGH or above.
	hedgeable := make(map[risk.Span]bool)
	severity := make(map[risk.Span]risk.Level)
	for _, sig := range signals {
		if !hedgedCategories[sig.Category] {
			continue
		}
		sent, ok := sentences.Containing(sents, sig.Span.Start)
		if !ok {
			continue
		}
		hedgeable[sent] = true
		if !sig.Level.AtLeast(risk.LevelHigh) {
			continue
		}
		if cur, seen := severity[sent]; !seen || sig.Level.AtLeast(cur) {
			severity[sent] = sig.Level
		}
	}

	// A claim unit's severity takes precedence for its sentence, but only
	// when the sentence carries a hedgeable assertion at all: a privacy or
	// personal-data disclosure must not be recast as an allegation.
	for _, claim := range claimUnits {
		if !claim.Severity.AtLeast(risk.LevelHigh) || !hedgeable[claim.Sentence] {
			continue
		}
		if cur, seen := severity[claim.Sentence]; !seen || claim.Severity.AtLeast(cur) {
			severity[claim.Sentence] = claim.Severity
		}
	}

	var out []risk.Transformation
	for sent, level := range severity {
		sentenceText := text[sent.Start:sent.End]
		if sentences.IsHedged(sentenceText) {
			continue
		}

		body := foldInner(text, sent, redactions, jurisdiction, &folded)

		out = append(out, risk.Transformation{
			RuleID: RuleHedgeAssertion,
			From:   sentenceText,
			To:     claims.SuggestedRewrite(level, body),
			Reason: "declarative assertion converted to allegation framing",
			Span:   sent,
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Span.Start < out[j].Span.Start })
	return out, folded
}

// foldInner applies the redactions and jurisdiction substitutions contained
// in the hedged sentence to its body, right to left so earlier offsets stay
// valid, and records them as folded. Jurisdiction candidates overlapping an
// already-folded span are left alone; the outer overlap filter drops them.
func foldInner(text string, sent risk.Span, redactions, jurisdiction []risk.Transformation, folded *foldedSet) string {
	type sub struct {
		span risk.Span
		to   string
	}
	var subs []sub

	for i, r := range redactions {
		if r.Span.Start >= sent.Start && r.Span.End <= sent.End {
			subs = append(subs, sub{r.Span, r.To})
			folded.redactions[i] = true
		}
	}
	for i, j := range jurisdiction {
		if j.Span.Start < sent.Start || j.Span.End > sent.End {
			continue
		}
		clear := true
		for _, s := range subs {
			if j.Span.Overlaps(s.span) {
				clear = false
				break
			}
		}
		if !clear {
			continue
		}
		subs = append(subs, sub{j.Span, j.To})
		folded.jurisdiction[i] = true
	}

	sort.Slice(subs, func(i, j int) bool { return subs[i].span.Start > subs[j].span.Start })

	body := text[sent.Start:sent.End]
	for _, s := range subs {
		local := s.span.Start - sent.Start
		body = body[:local] + s.to + body[local+s.span.Len():]
	}
	return body
}

// appendNonOverlapping keeps later-rule candidates only when they do not
// touch spans already claimed by earlier rules.
func appendNonOverlapping(accepted []risk.Transformation, candidates []risk.Transformation) []risk.Transformation {
	for _, cand := range candidates {
		clear := true
		for _, a := range accepted {
			if cand.Span.Overlaps(a.Span) {
				clear = false
				break
			}
		}
		if clear {
			accepted = append(accepted, cand)
		}
	}
	return accepted
}
