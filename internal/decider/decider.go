// Copyright The Courtgate Authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package decider aggregates detected signals and claim units into an
// overall reputation-risk decision. The escalation policy depends on the
// distribution mode; escalation is applied after the base computation.
package decider

import (
	"sort"

	"courtgate/internal/risk"
)

// Decide computes the overall risk level and the required mitigations for a
// detection result. Empty input yields a LOW decision with no mitigations.
func Decide(signals []risk.Signal, claims []risk.ClaimUnit, mode risk.Mode, court *risk.CourtContext) risk.Decision {
	overall := risk.LevelLow
	categories := map[risk.Category]bool{}

	for _, sig := range signals {
		overall = risk.MaxLevel(overall, sig.Level)
		categories[sig.Category] = true
	}
	for _, claim := range claims {
		overall = risk.MaxLevel(overall, claim.Severity)
	}

	overall = escalate(overall, signals, mode)

	return risk.Decision{
		Overall:             overall,
		Categories:          sortedCategories(categories),
		Signals:             signals,
		RequiredMitigations: requiredMitigations(categories, mode),
	}
}

// escalate applies the mode-specific policy on top of the base level.
func escalate(overall risk.Level, signals []risk.Signal, mode risk.Mode) risk.Level {
	switch mode {
	case risk.ModeCourt, risk.ModeControlledLegal:
		// A HIGH signal with no evidence backing contributes as CRITICAL.
		for _, sig := range signals {
			if sig.Level == risk.LevelHigh && len(sig.EvidenceRefs) == 0 {
				overall = risk.MaxLevel(overall, risk.LevelCritical)
			}
		}

	case risk.ModePublic:
		for _, sig := range signals {
			// Any personal-data exposure at the widest audience is critical
			// regardless of confidence.
			if sig.Category == risk.CategorySensitivePersonalData {
				overall = risk.MaxLevel(overall, risk.LevelCritical)
			}
			// Unevidenced criminal allegations escalate in public
			// distribution just as they do in court channels.
			if sig.Category == risk.CategoryUnverifiedCriminal &&
				sig.Level == risk.LevelHigh && len(sig.EvidenceRefs) == 0 {
				overall = risk.MaxLevel(overall, risk.LevelCritical)
			}
		}

	case risk.ModeResearchOnly:
		// Research distribution caps at HIGH unless incitement is present.
		incitement := false
		for _, sig := range signals {
			if sig.Category == risk.CategoryIncitementHarassment {
				incitement = true
				break
			}
		}
		if !incitement && overall == risk.LevelCritical {
			overall = risk.LevelHigh
		}
	}

	return overall
}

func sortedCategories(set map[risk.Category]bool) []risk.Category {
	out := make([]risk.Category, 0, len(set))
	for c := range set {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Precedence() < out[j].Precedence()
	})
	return out
}
