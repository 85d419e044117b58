// Copyright The Courtgate Authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package claims aggregates detected signals into per-target, per-sentence
// claim units and proposes severity-appropriate hedged rewrites.
package claims

import (
	"fmt"
	"sort"
	"strings"

	"courtgate/internal/risk"
	"courtgate/internal/sentences"
)

// rewriteTemplates key hedged phrasings by claim severity. Every template
// embeds a hedging marker so a rewritten sentence is not flagged again.
var rewriteTemplates = map[risk.Level]string{
	risk.LevelCritical: "It has been alleged, but not judicially established, that %s",
	risk.LevelHigh:     "It is alleged that %s",
	risk.LevelMedium:   "According to available information, %s",
	risk.LevelLow:      "Reportedly, %s",
}

// SuggestedRewrite returns the hedged rendering of a sentence for the given
// severity.
func SuggestedRewrite(severity risk.Level, sentence string) string {
	tmpl, ok := rewriteTemplates[severity]
	if !ok {
		tmpl = rewriteTemplates[risk.LevelMedium]
	}
	return fmt.Sprintf(tmpl, strings.TrimSpace(sentence))
}

// Extract emits one claim unit per (sentence, target) pair that triggered at
// least one signal naming that target. Sentence segmentation is independent
// of detection; signals are attributed to the sentence containing their span
// start.
func Extract(text string, signals []risk.Signal) []risk.ClaimUnit {
	if text == "" || len(signals) == 0 {
		return nil
	}

	sents := sentences.Split(text)

	type key struct {
		sentence risk.Span
		target   string
	}
	bySentence := make(map[risk.Span][]risk.Signal)
	byKey := make(map[key][]risk.Signal)

	for _, sig := range signals {
		sent, ok := sentences.Containing(sents, sig.Span.Start)
		if !ok {
			continue
		}
		bySentence[sent] = append(bySentence[sent], sig)
		for _, target := range sig.Targets {
			byKey[key{sent, target}] = append(byKey[key{sent, target}], sig)
		}
	}

	var units []risk.ClaimUnit
	for k, sigs := range byKey {
		severity := risk.LevelLow
		var predicates []string
		var evidenceRefs []string
		seenPredicate := map[string]bool{}
		seenRef := map[string]bool{}

		for _, sig := range sigs {
			severity = risk.MaxLevel(severity, sig.Level)
			if !seenPredicate[sig.Text] {
				seenPredicate[sig.Text] = true
				predicates = append(predicates, sig.Text)
			}
		}

		// Evidence is sentence-scoped: any signal in the sentence with a
		// non-empty evidence reference counts for every claim in it.
		hasEvidence := false
		for _, sig := range bySentence[k.sentence] {
			for _, ref := range sig.EvidenceRefs {
				hasEvidence = true
				if !seenRef[ref] {
					seenRef[ref] = true
					evidenceRefs = append(evidenceRefs, ref)
				}
			}
		}

		sentenceText := text[k.sentence.Start:k.sentence.End]
		units = append(units, risk.ClaimUnit{
			Target:           k.target,
			PredicateSummary: strings.Join(predicates, "; "),
			Severity:         severity,
			HasEvidence:      hasEvidence,
			EvidenceRefs:     evidenceRefs,
			SuggestedRewrite: SuggestedRewrite(severity, sentenceText),
			Sentence:         k.sentence,
		})
	}

	sort.Slice(units, func(i, j int) bool {
		if units[i].Sentence.Start != units[j].Sentence.Start {
			return units[i].Sentence.Start < units[j].Sentence.Start
		}
		return units[i].Target < units[j].Target
	})
	return units
}
