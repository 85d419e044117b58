// Copyright The Courtgate Authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package gate composes the safety pipeline: detect, extract claims, decide,
// rewrite, then derive blockers and warnings. The gate is pure composition
// with a fixed stage order; each stage consumes the prior stage's output.
package gate

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"courtgate/internal/claims"
	"courtgate/internal/decider"
	"courtgate/internal/detector"
	"courtgate/internal/patterns"
	"courtgate/internal/rewriter"
	"courtgate/internal/risk"
)

// Input is everything the caller supplies for one gate run.
type Input struct {
	Text          string
	Context       detector.Context
	Mode          risk.Mode
	CourtContext  *risk.CourtContext
	AdminOverride bool
}

// Gate runs the safety pipeline against an immutable pattern table. A Gate
// is safe for concurrent use.
type Gate struct {
	detector *detector.Detector
}

// New builds a gate over the given pattern table.
func New(table *patterns.Table) *Gate {
	return &Gate{detector: detector.New(table)}
}

// Run executes detect → claims → decide → rewrite and assembles the result.
// An admin override suppresses blockers, never warnings; the rewrite plan is
// computed regardless so the caller can always show a diff.
func (g *Gate) Run(input Input) risk.GateResult {
	signals := g.detector.Detect(input.Text, input.Context)
	claimUnits := claims.Extract(input.Text, signals)
	decision := decider.Decide(signals, claimUnits, input.Mode, input.CourtContext)

	opts := rewriter.Options{Mode: input.Mode}
	if input.CourtContext != nil {
		opts.CourtStyle = input.CourtContext.Style
		opts.FilingType = input.CourtContext.FilingType
	}
	plan := rewriter.Rewrite(input.Text, opts, signals, claimUnits)

	blockers, covered := deriveBlockers(decision, signals)
	warnings := deriveWarnings(input.Mode, signals, claimUnits, covered)

	result := risk.GateResult{
		AuditID:      uuid.NewString(),
		Mode:         input.Mode,
		CourtContext: input.CourtContext,
		Decision:     decision,
		Signals:      signals,
		Claims:       claimUnits,
		Rewrite:      plan,
		Blockers:     blockers,
		Warnings:     warnings,
	}

	if input.AdminOverride && len(blockers) > 0 {
		result.Blockers = nil
		result.Overridden = true
	}
	return result
}

// deriveBlockers returns the export-preventing findings and the set of
// signal categories they cover. Coverage is computed before any override so
// warnings stay identical whether or not blockers are suppressed.
func deriveBlockers(decision risk.Decision, signals []risk.Signal) ([]risk.Finding, map[risk.Category]bool) {
	var blockers []risk.Finding
	covered := make(map[risk.Category]bool)

	if decision.Overall == risk.LevelCritical {
		blockers = append(blockers, risk.Finding{
			Code:    risk.BlockerCriticalRisk,
			Message: "overall risk is CRITICAL; export is prevented pending operator action",
		})
		for _, sig := range signals {
			if sig.Level == risk.LevelCritical {
				covered[sig.Category] = true
			}
		}
	}

	for _, sig := range signals {
		if sig.Category == risk.CategorySensitivePersonalData {
			blockers = append(blockers, risk.Finding{
				Code:    risk.BlockerPIIDetected,
				Message: "personal data detected; redaction applied but requires explicit acknowledgment",
			})
			covered[risk.CategorySensitivePersonalData] = true
			break
		}
	}

	return blockers, covered
}

// deriveWarnings emits the advisory findings: the court-mode evidence gap
// and one SIGNAL_<CATEGORY> warning per signal category not covered by a
// blocker.
func deriveWarnings(mode risk.Mode, signals []risk.Signal, claimUnits []risk.ClaimUnit, covered map[risk.Category]bool) []risk.Finding {
	var warnings []risk.Finding

	if mode == risk.ModeCourt {
		gaps := 0
		for _, claim := range claimUnits {
			if claim.Severity.AtLeast(risk.LevelHigh) && !claim.HasEvidence {
				gaps++
			}
		}
		if gaps > 0 {
			warnings = append(warnings, risk.Finding{
				Code: risk.WarningCourtEvidenceGap,
				Message: fmt.Sprintf("%d severe claim(s) lack evidence; they must appear in a 'requires verification' appendix",
					gaps),
			})
		}
	}

	seen := make(map[risk.Category]bool)
	for _, sig := range signals {
		if covered[sig.Category] || seen[sig.Category] {
			continue
		}
		seen[sig.Category] = true
		warnings = append(warnings, risk.Finding{
			Code:    "SIGNAL_" + strings.ToUpper(string(sig.Category)),
			Message: fmt.Sprintf("%s signal at offset %d: %s", sig.Category, sig.Span.Start, sig.Rationale),
		})
	}

	return warnings
}
