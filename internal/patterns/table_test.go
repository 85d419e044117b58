// Copyright The Courtgate Authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package patterns

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"courtgate/internal/risk"
)

func TestDefaultTableCompiles(t *testing.T) {
	table := Default()
	if table.Version != DefaultVersion {
		t.Errorf("expected version %q, got %q", DefaultVersion, table.Version)
	}
	if len(table.Rules) == 0 {
		t.Fatal("expected built-in rules")
	}

	seen := map[risk.Category]bool{}
	for _, rule := range table.Rules {
		if rule.Regex() == nil {
			t.Errorf("rule %s has no compiled regex", rule.ID)
		}
		seen[rule.Category] = true
	}

	// Every category in the closed set has at least one built-in rule.
	for _, c := range []risk.Category{
		risk.CategoryDefamation, risk.CategoryPrivacy, risk.CategoryContemptOfCourt,
		risk.CategorySubJudice, risk.CategoryIncitementHarassment,
		risk.CategorySensitivePersonalData, risk.CategoryUnverifiedCriminal,
		risk.CategoryInstitutional, risk.CategoryMisidentification,
	} {
		if !seen[c] {
			t.Errorf("no built-in rule for category %s", c)
		}
	}
}

func TestNewRejectsInvalidRules(t *testing.T) {
	valid := Rule{
		ID: "T-1", Category: risk.CategoryDefamation, Level: risk.LevelHigh,
		Confidence: 0.5, Pattern: `liar`,
	}

	cases := []struct {
		name    string
		mutate  func(Rule) Rule
		wantErr string
	}{
		{"empty id", func(r Rule) Rule { r.ID = ""; return r }, "no id"},
		{"unknown category", func(r Rule) Rule { r.Category = "slander"; return r }, "unknown category"},
		{"unknown level", func(r Rule) Rule { r.Level = "SEVERE"; return r }, "unknown level"},
		{"confidence out of range", func(r Rule) Rule { r.Confidence = 1.5; return r }, "outside [0,1]"},
		{"empty pattern", func(r Rule) Rule { r.Pattern = ""; return r }, "empty pattern"},
		{"bad regex", func(r Rule) Rule { r.Pattern = `[unclosed`; return r }, "invalid pattern"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New("test", []Rule{tc.mutate(valid)})
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error %q does not mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestNewRejectsDuplicateIDs(t *testing.T) {
	r := Rule{
		ID: "T-1", Category: risk.CategoryDefamation, Level: risk.LevelHigh,
		Confidence: 0.5, Pattern: `liar`,
	}
	_, err := New("test", []Rule{r, r})
	if err == nil || !strings.Contains(err.Error(), "duplicate rule id") {
		t.Fatalf("expected duplicate id error, got %v", err)
	}
}

func TestNewRejectsEmptyTable(t *testing.T) {
	if _, err := New("test", nil); err == nil {
		t.Fatal("expected error for empty table")
	}
}

func TestLoadValidFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.yaml")
	content := `
version: "custom-1"
rules:
  - id: CUSTOM-1
    category: defamation
    level: HIGH
    confidence: 0.6
    pattern: '(?i)\bis a known liar\b'
    rationale: custom defamation rule
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write rule file: %v", err)
	}

	table, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if table.Version != "custom-1" {
		t.Errorf("expected version custom-1, got %q", table.Version)
	}
	if len(table.Rules) != 1 || table.Rules[0].ID != "CUSTOM-1" {
		t.Errorf("unexpected rules: %+v", table.Rules)
	}
	if !table.Rules[0].Regex().MatchString("He is a known liar.") {
		t.Error("loaded rule should match its phrase")
	}
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.yaml")
	if err := os.WriteFile(path, []byte("rules: [broken"), 0600); err != nil {
		t.Fatalf("failed to write rule file: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/rules.yaml"); err == nil {
		t.Fatal("expected read error")
	}
}
