// Copyright The Courtgate Authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package detector scans report text against a pattern table and emits
// span-tagged risk signals. Detection is pure: the detector holds only the
// immutable pattern table and never errors on input; empty or unmatched
// text yields an empty signal list.
package detector

import (
	"fmt"
	"sort"
	"strings"

	"courtgate/internal/patterns"
	"courtgate/internal/risk"
	"courtgate/internal/sentences"
)

// ProtectedCategories are the entity category values that mark a target as
// protected. A signal whose context names a protected target is upgraded one
// level. Entity category is the sole protection indicator.
var ProtectedCategories = map[string]bool{
	"minor":   true,
	"judge":   true,
	"juror":   true,
	"witness": true,
	"victim":  true,
}

// targetWindow is the number of bytes around a match inspected when
// resolving targets against the entity context.
const targetWindow = 80

// Confidence adjustments applied on top of the rule base confidence.
const (
	hedgeConfidencePenalty  = 0.15
	evidenceConfidenceBoost = 0.10
)

// Context is the optional entity and evidence context supplied by the
// report-generation layer. A zero Context means no target resolution and no
// protected-target escalation.
type Context struct {
	Entities          []risk.Entity
	EvidenceArtifacts []risk.EvidenceArtifact
}

// Detector scans text against an immutable pattern table.
type Detector struct {
	table *patterns.Table
}

// New returns a detector over the given table.
func New(table *patterns.Table) *Detector {
	return &Detector{table: table}
}

// Table returns the pattern table the detector scans with.
func (d *Detector) Table() *patterns.Table { return d.table }

// Detect scans text and returns all surviving signals ordered by span start.
// Every returned span is a valid non-empty range into text.
func (d *Detector) Detect(text string, ctx Context) []risk.Signal {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	sents := sentences.Split(text)

	var candidates []risk.Signal
	for i := range d.table.Rules {
		rule := &d.table.Rules[i]
		for _, loc := range rule.Regex().FindAllStringIndex(text, -1) {
			candidates = append(candidates, d.buildSignal(rule, text, risk.Span{Start: loc[0], End: loc[1]}, sents, ctx))
		}
	}

	kept := resolveOverlaps(candidates)
	sort.SliceStable(kept, func(i, j int) bool {
		if kept[i].Span.Start != kept[j].Span.Start {
			return kept[i].Span.Start < kept[j].Span.Start
		}
		return kept[i].Span.End < kept[j].Span.End
	})
	return kept
}

func (d *Detector) buildSignal(rule *patterns.Rule, text string, span risk.Span, sents []risk.Span, ctx Context) risk.Signal {
	sent, inSentence := sentences.Containing(sents, span.Start)
	if !inSentence {
		sent = span
	}
	sentence := text[sent.Start:sent.End]
	hedged := sentences.IsHedged(sentence)

	targets, protected := resolveTargets(text, span, sent, ctx.Entities)
	evidenceRefs := resolveEvidence(sentence, ctx.EvidenceArtifacts)

	level := rule.Level
	if hedged {
		level = level.Downgrade()
	}
	if protected {
		level = level.Upgrade()
	}

	confidence := rule.Confidence
	if hedged {
		confidence -= hedgeConfidencePenalty
	}
	if len(evidenceRefs) > 0 {
		confidence += evidenceConfidenceBoost
	}
	confidence = clamp01(confidence)

	return risk.Signal{
		ID:           fmt.Sprintf("%s@%d", rule.ID, span.Start),
		Category:     rule.Category,
		Level:        level,
		Span:         span,
		Text:         text[span.Start:span.End],
		Rationale:    rule.Rationale,
		Targets:      targets,
		ClaimType:    rule.ClaimType,
		EvidenceRefs: evidenceRefs,
		Confidence:   confidence,
	}
}

// resolveTargets matches the window around the span against the entity list
// by name. The window is clamped to the containing sentence so a match never
// picks up targets named only in a neighboring sentence. The second return
// value reports whether any matched entity is in a protected category.
func resolveTargets(text string, span risk.Span, sentence risk.Span, entities []risk.Entity) ([]string, bool) {
	if len(entities) == 0 {
		return nil, false
	}

	start := span.Start - targetWindow
	if start < sentence.Start {
		start = sentence.Start
	}
	end := span.End + targetWindow
	if end > sentence.End {
		end = sentence.End
	}
	window := strings.ToLower(text[start:end])

	var targets []string
	protected := false
	for _, e := range entities {
		if e.Name == "" {
			continue
		}
		if strings.Contains(window, strings.ToLower(e.Name)) {
			targets = append(targets, e.Name)
			if ProtectedCategories[strings.ToLower(e.Category)] {
				protected = true
			}
		}
	}
	return targets, protected
}

// resolveEvidence returns the IDs of artifacts whose value occurs in the
// sentence containing the match.
func resolveEvidence(sentence string, artifacts []risk.EvidenceArtifact) []string {
	if len(artifacts) == 0 {
		return nil
	}

	lower := strings.ToLower(sentence)
	var refs []string
	for _, a := range artifacts {
		if a.ArtifactValue == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(a.ArtifactValue)) {
			refs = append(refs, a.ID)
		}
	}
	return refs
}

// resolveOverlaps drops the weaker of any two signals with overlapping
// spans: higher level wins, then higher category precedence, then earlier
// span.
func resolveOverlaps(candidates []risk.Signal) []risk.Signal {
	if len(candidates) <= 1 {
		return candidates
	}

	order := make([]risk.Signal, len(candidates))
	copy(order, candidates)
	sort.SliceStable(order, func(i, j int) bool {
		if ri, rj := order[i].Level.Rank(), order[j].Level.Rank(); ri != rj {
			return ri > rj
		}
		if pi, pj := order[i].Category.Precedence(), order[j].Category.Precedence(); pi != pj {
			return pi < pj
		}
		return order[i].Span.Start < order[j].Span.Start
	})

	var kept []risk.Signal
	for _, cand := range order {
		overlaps := false
		for _, k := range kept {
			if cand.Span.Overlaps(k.Span) {
				overlaps = true
				break
			}
		}
		if !overlaps {
			kept = append(kept, cand)
		}
	}
	return kept
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
