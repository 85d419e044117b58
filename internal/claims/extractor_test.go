// Copyright The Courtgate Authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package claims

import (
	"strings"
	"testing"

	"courtgate/internal/detector"
	"courtgate/internal/patterns"
	"courtgate/internal/risk"
)

func detect(t *testing.T, text string, ctx detector.Context) []risk.Signal {
	t.Helper()
	return detector.New(patterns.Default()).Detect(text, ctx)
}

func TestExtractEmptyInput(t *testing.T) {
	if units := Extract("", nil); len(units) != 0 {
		t.Errorf("expected no claims, got %d", len(units))
	}
	if units := Extract("some text", nil); len(units) != 0 {
		t.Errorf("expected no claims without signals, got %d", len(units))
	}
}

func TestExtractOneClaimPerTarget(t *testing.T) {
	text := "John Doe committed fraud. Jane Roe defrauded the investors."
	ctx := detector.Context{Entities: []risk.Entity{
		{Name: "John Doe", Category: "person"},
		{Name: "Jane Roe", Category: "person"},
	}}
	units := Extract(text, detect(t, text, ctx))

	if len(units) != 2 {
		t.Fatalf("expected 2 claims, got %d: %+v", len(units), units)
	}
	if units[0].Target != "John Doe" || units[1].Target != "Jane Roe" {
		t.Errorf("targets = %q, %q", units[0].Target, units[1].Target)
	}
	for _, u := range units {
		if u.Severity != risk.LevelHigh {
			t.Errorf("claim for %s severity = %s, want HIGH", u.Target, u.Severity)
		}
		if u.HasEvidence {
			t.Errorf("claim for %s should have no evidence", u.Target)
		}
	}
}

func TestExtractNoTargetsNoClaims(t *testing.T) {
	text := "John Doe committed fraud."
	units := Extract(text, detect(t, text, detector.Context{}))
	if len(units) != 0 {
		t.Errorf("expected no claims without entity context, got %+v", units)
	}
}

func TestExtractEvidenceIsSentenceScoped(t *testing.T) {
	text := "John Doe committed fraud."
	ctx := detector.Context{
		Entities:          []risk.Entity{{Name: "John Doe", Category: "person"}},
		EvidenceArtifacts: []risk.EvidenceArtifact{{ID: "ev-1", ArtifactValue: "fraud"}},
	}
	units := Extract(text, detect(t, text, ctx))
	if len(units) != 1 {
		t.Fatalf("expected 1 claim, got %d", len(units))
	}
	if !units[0].HasEvidence {
		t.Error("expected HasEvidence with matching artifact")
	}
	if len(units[0].EvidenceRefs) != 1 || units[0].EvidenceRefs[0] != "ev-1" {
		t.Errorf("evidence refs = %v", units[0].EvidenceRefs)
	}
}

func TestExtractSeverityIsMaxInSentence(t *testing.T) {
	text := "John Doe committed fraud and his ID is 1234567890123."
	ctx := detector.Context{Entities: []risk.Entity{{Name: "John Doe", Category: "person"}}}
	units := Extract(text, detect(t, text, ctx))
	if len(units) != 1 {
		t.Fatalf("expected 1 claim, got %d: %+v", len(units), units)
	}
	if units[0].Severity != risk.LevelCritical {
		t.Errorf("severity = %s, want CRITICAL (max signal in sentence)", units[0].Severity)
	}
}

func TestSuggestedRewriteTemplates(t *testing.T) {
	cases := []struct {
		severity risk.Level
		wantSub  string
	}{
		{risk.LevelCritical, "It has been alleged, but not judicially established, that"},
		{risk.LevelHigh, "It is alleged that"},
		{risk.LevelMedium, "According to available information,"},
		{risk.LevelLow, "Reportedly,"},
	}
	for _, tc := range cases {
		got := SuggestedRewrite(tc.severity, "John Doe committed fraud.")
		if !strings.HasPrefix(got, tc.wantSub) {
			t.Errorf("rewrite for %s = %q, want prefix %q", tc.severity, got, tc.wantSub)
		}
		if !strings.Contains(got, "John Doe committed fraud.") {
			t.Errorf("rewrite for %s lost the sentence: %q", tc.severity, got)
		}
	}
}

func TestExtractSuggestedRewriteUsesSeverityTemplate(t *testing.T) {
	text := "John Doe committed fraud."
	ctx := detector.Context{Entities: []risk.Entity{{Name: "John Doe", Category: "person"}}}
	units := Extract(text, detect(t, text, ctx))
	if len(units) != 1 {
		t.Fatalf("expected 1 claim, got %d", len(units))
	}
	if !strings.HasPrefix(units[0].SuggestedRewrite, "It is alleged that") {
		t.Errorf("suggested rewrite = %q", units[0].SuggestedRewrite)
	}
}
