// Copyright The Courtgate Authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package risk

import "testing"

func TestLevelOrdering(t *testing.T) {
	ordered := []Level{LevelLow, LevelMedium, LevelHigh, LevelCritical}
	for i := 1; i < len(ordered); i++ {
		if !ordered[i].AtLeast(ordered[i-1]) {
			t.Errorf("%s should be at least %s", ordered[i], ordered[i-1])
		}
		if ordered[i-1].AtLeast(ordered[i]) {
			t.Errorf("%s should not be at least %s", ordered[i-1], ordered[i])
		}
	}
}

func TestLevelUpgradeCapsAtCritical(t *testing.T) {
	if got := LevelCritical.Upgrade(); got != LevelCritical {
		t.Errorf("expected CRITICAL to stay CRITICAL, got %s", got)
	}
	if got := LevelHigh.Upgrade(); got != LevelCritical {
		t.Errorf("expected HIGH to upgrade to CRITICAL, got %s", got)
	}
}

func TestLevelDowngradeFloorsAtLow(t *testing.T) {
	if got := LevelLow.Downgrade(); got != LevelLow {
		t.Errorf("expected LOW to stay LOW, got %s", got)
	}
	if got := LevelCritical.Downgrade(); got != LevelHigh {
		t.Errorf("expected CRITICAL to downgrade to HIGH, got %s", got)
	}
}

func TestMaxLevel(t *testing.T) {
	if got := MaxLevel(LevelMedium, LevelHigh); got != LevelHigh {
		t.Errorf("expected HIGH, got %s", got)
	}
	if got := MaxLevel(LevelCritical, LevelLow); got != LevelCritical {
		t.Errorf("expected CRITICAL, got %s", got)
	}
}

func TestCategoryPrecedenceOrder(t *testing.T) {
	// Fixed precedence: contempt first, sensitive personal data last.
	ordered := []Category{
		CategoryContemptOfCourt,
		CategorySubJudice,
		CategoryDefamation,
		CategoryUnverifiedCriminal,
		CategoryInstitutional,
		CategoryMisidentification,
		CategoryIncitementHarassment,
		CategoryPrivacy,
		CategorySensitivePersonalData,
	}
	for i := 1; i < len(ordered); i++ {
		if ordered[i-1].Precedence() >= ordered[i].Precedence() {
			t.Errorf("%s should rank before %s", ordered[i-1], ordered[i])
		}
	}
}

func TestCategoryValid(t *testing.T) {
	if !CategoryDefamation.Valid() {
		t.Error("defamation should be valid")
	}
	if Category("libel").Valid() {
		t.Error("unknown category should be invalid")
	}
}

func TestModeValid(t *testing.T) {
	for _, m := range []Mode{ModeCourt, ModeControlledLegal, ModeResearchOnly, ModePublic} {
		if !m.Valid() {
			t.Errorf("%s should be valid", m)
		}
	}
	if Mode("broadcast").Valid() {
		t.Error("unknown mode should be invalid")
	}
}

func TestSpanOverlaps(t *testing.T) {
	cases := []struct {
		name string
		a, b Span
		want bool
	}{
		{"disjoint", Span{0, 5}, Span{5, 10}, false},
		{"touching interiors", Span{0, 6}, Span{5, 10}, true},
		{"contained", Span{0, 10}, Span{3, 4}, true},
		{"identical", Span{2, 7}, Span{2, 7}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.want {
				t.Errorf("Overlaps(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
			if got := tc.b.Overlaps(tc.a); got != tc.want {
				t.Errorf("Overlaps(%v, %v) = %v, want %v", tc.b, tc.a, got, tc.want)
			}
		})
	}
}
