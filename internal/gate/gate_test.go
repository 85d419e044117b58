// Copyright The Courtgate Authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package gate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courtgate/internal/detector"
	"courtgate/internal/patterns"
	"courtgate/internal/risk"
)

func defaultGate() *Gate {
	return New(patterns.Default())
}

func findCode(findings []risk.Finding, code string) bool {
	for _, f := range findings {
		if f.Code == code {
			return true
		}
	}
	return false
}

func TestGateCleanText(t *testing.T) {
	result := defaultGate().Run(Input{
		Text: "The committee met on Tuesday and reviewed the planning schedule.",
		Mode: risk.ModePublic,
	})

	assert.NotEmpty(t, result.AuditID)
	assert.Equal(t, risk.LevelLow, result.Decision.Overall)
	assert.False(t, result.Blocked())
	assert.Empty(t, result.Warnings)
	assert.Empty(t, result.Signals)
	assert.Equal(t,
		"The committee met on Tuesday and reviewed the planning schedule.",
		result.Rewrite.RewrittenText)
}

func TestGatePublicBlocksUnevidencedCriminalAllegation(t *testing.T) {
	result := defaultGate().Run(Input{
		Text: "John Doe committed fraud.",
		Context: detector.Context{
			Entities: []risk.Entity{{Name: "John Doe", Category: "person"}},
		},
		Mode: risk.ModePublic,
	})

	assert.Equal(t, risk.LevelCritical, result.Decision.Overall)
	require.True(t, result.Blocked())
	assert.True(t, findCode(result.Blockers, risk.BlockerCriticalRisk))
	assert.False(t, findCode(result.Blockers, risk.BlockerPIIDetected))

	// The blocker reflects the escalated overall level, not a CRITICAL
	// signal, so the category still warns.
	assert.True(t, findCode(result.Warnings, "SIGNAL_UNVERIFIED_CRIMINAL_ALLEGATION"))

	assert.Equal(t, "It is alleged that John Doe committed fraud.", result.Rewrite.RewrittenText)
}

func TestGateEvidencedAllegationNotBlocked(t *testing.T) {
	result := defaultGate().Run(Input{
		Text: "John Doe committed fraud.",
		Context: detector.Context{
			Entities:          []risk.Entity{{Name: "John Doe", Category: "person"}},
			EvidenceArtifacts: []risk.EvidenceArtifact{{ID: "ev-1", ArtifactValue: "fraud"}},
		},
		Mode: risk.ModePublic,
	})

	assert.Equal(t, risk.LevelHigh, result.Decision.Overall)
	assert.False(t, result.Blocked())
	assert.True(t, findCode(result.Warnings, "SIGNAL_UNVERIFIED_CRIMINAL_ALLEGATION"))
}

func TestGatePersonalDataBlockers(t *testing.T) {
	result := defaultGate().Run(Input{
		Text: "Her ID number is 1234567890123 on record.",
		Mode: risk.ModePublic,
	})

	require.True(t, result.Blocked())
	assert.True(t, findCode(result.Blockers, risk.BlockerCriticalRisk))
	assert.True(t, findCode(result.Blockers, risk.BlockerPIIDetected))

	// The PII blocker covers the category; no duplicate warning.
	assert.False(t, findCode(result.Warnings, "SIGNAL_SENSITIVE_PERSONAL_DATA"))

	assert.Contains(t, result.Rewrite.RewrittenText, "[REDACTED]")
	assert.NotContains(t, result.Rewrite.RewrittenText, "1234567890123")
}

func TestGateAdminOverride(t *testing.T) {
	input := Input{
		Text: "Her ID number is 1234567890123 on record.",
		Mode: risk.ModePublic,
	}

	plain := defaultGate().Run(input)
	require.True(t, plain.Blocked())

	input.AdminOverride = true
	overridden := defaultGate().Run(input)

	assert.False(t, overridden.Blocked())
	assert.True(t, overridden.Overridden)
	// Warnings and the rewrite are unaffected by the override.
	assert.Equal(t, plain.Warnings, overridden.Warnings)
	assert.Equal(t, plain.Rewrite.RewrittenText, overridden.Rewrite.RewrittenText)
}

func TestGateAdminOverrideWithoutBlockers(t *testing.T) {
	result := defaultGate().Run(Input{
		Text:          "The committee met on Tuesday.",
		Mode:          risk.ModePublic,
		AdminOverride: true,
	})
	assert.False(t, result.Overridden, "override with nothing to suppress is not recorded")
}

func TestGateCourtEvidenceGapWarning(t *testing.T) {
	result := defaultGate().Run(Input{
		Text: "John Doe committed fraud.",
		Context: detector.Context{
			Entities: []risk.Entity{{Name: "John Doe", Category: "person"}},
		},
		Mode:         risk.ModeCourt,
		CourtContext: &risk.CourtContext{Style: "uk_crown", FilingType: "witness_statement"},
	})

	// Court mode escalates the unevidenced HIGH signal to CRITICAL overall.
	assert.Equal(t, risk.LevelCritical, result.Decision.Overall)
	assert.True(t, result.Blocked())

	require.NotEmpty(t, result.Warnings)
	assert.Equal(t, risk.WarningCourtEvidenceGap, result.Warnings[0].Code)
	assert.Contains(t, result.Warnings[0].Message, "1 severe claim(s)")
}

func TestGateCourtStyleReachesRewriter(t *testing.T) {
	result := defaultGate().Run(Input{
		Text:         "I believe that the filing is complete.",
		Mode:         risk.ModeCourt,
		CourtContext: &risk.CourtContext{Style: "uk_crown", FilingType: "witness_statement"},
	})

	assert.Equal(t, "It is my honest belief that the filing is complete.", result.Rewrite.RewrittenText)
}

func TestGateResearchModeNotBlocked(t *testing.T) {
	result := defaultGate().Run(Input{
		Text: "John Doe committed fraud.",
		Context: detector.Context{
			Entities: []risk.Entity{{Name: "John Doe", Category: "person"}},
		},
		Mode: risk.ModeResearchOnly,
	})

	assert.Equal(t, risk.LevelHigh, result.Decision.Overall)
	assert.False(t, result.Blocked())
}

func TestGateDistinctAuditIDs(t *testing.T) {
	g := defaultGate()
	a := g.Run(Input{Text: "First run.", Mode: risk.ModePublic})
	b := g.Run(Input{Text: "Second run.", Mode: risk.ModePublic})
	assert.NotEqual(t, a.AuditID, b.AuditID)
}
