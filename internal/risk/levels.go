// Copyright The Courtgate Authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package risk

// Level indicates the severity of a detected risk.
type Level string

const (
	LevelLow      Level = "LOW"
	LevelMedium   Level = "MEDIUM"
	LevelHigh     Level = "HIGH"
	LevelCritical Level = "CRITICAL"
)

// Valid reports whether the level is a member of the closed set.
func (l Level) Valid() bool {
	switch l {
	case LevelLow, LevelMedium, LevelHigh, LevelCritical:
		return true
	}
	return false
}

// Rank returns the total-order position of the level (LOW=0 .. CRITICAL=3).
func (l Level) Rank() int {
	switch l {
	case LevelLow:
		return 0
	case LevelMedium:
		return 1
	case LevelHigh:
		return 2
	case LevelCritical:
		return 3
	default:
		return -1
	}
}

// AtLeast reports whether l is greater than or equal to other.
func (l Level) AtLeast(other Level) bool {
	return l.Rank() >= other.Rank()
}

// MaxLevel returns the higher of two levels.
func MaxLevel(a, b Level) Level {
	if b.Rank() > a.Rank() {
		return b
	}
	return a
}

// Upgrade raises the level by one step, capped at CRITICAL.
func (l Level) Upgrade() Level {
	switch l {
	case LevelLow:
		return LevelMedium
	case LevelMedium:
		return LevelHigh
	case LevelHigh, LevelCritical:
		return LevelCritical
	}
	return l
}

// Downgrade lowers the level by one step, floored at LOW.
func (l Level) Downgrade() Level {
	switch l {
	case LevelCritical:
		return LevelHigh
	case LevelHigh:
		return LevelMedium
	case LevelMedium, LevelLow:
		return LevelLow
	}
	return l
}

// Category classifies the kind of legal or reputational risk a rule detects.
type Category string

const (
	CategoryDefamation            Category = "defamation"
	CategoryPrivacy               Category = "privacy"
	CategoryContemptOfCourt       Category = "contempt_of_court"
	CategorySubJudice             Category = "sub_judice"
	CategoryIncitementHarassment  Category = "incitement_or_harassment"
	CategorySensitivePersonalData Category = "sensitive_personal_data"
	CategoryUnverifiedCriminal    Category = "unverified_criminal_allegation"
	CategoryInstitutional         Category = "institutional_accusation"
	CategoryMisidentification     Category = "misidentification"
)

// categoryPrecedence ranks categories for overlap tie-breaks; lower value
// wins when two signals of equal level cover overlapping spans.
var categoryPrecedence = map[Category]int{
	CategoryContemptOfCourt:       0,
	CategorySubJudice:             1,
	CategoryDefamation:            2,
	CategoryUnverifiedCriminal:    3,
	CategoryInstitutional:         4,
	CategoryMisidentification:     5,
	CategoryIncitementHarassment:  6,
	CategoryPrivacy:               7,
	CategorySensitivePersonalData: 8,
}

// Valid reports whether the category is a member of the closed set.
func (c Category) Valid() bool {
	_, ok := categoryPrecedence[c]
	return ok
}

// Precedence returns the overlap tie-break rank of the category. Unknown
// categories rank last.
func (c Category) Precedence() int {
	if p, ok := categoryPrecedence[c]; ok {
		return p
	}
	return len(categoryPrecedence)
}

// Mode is the distribution channel the gated text is destined for. Each mode
// implies a distinct escalation policy.
type Mode string

const (
	ModeCourt           Mode = "court_mode"
	ModeControlledLegal Mode = "controlled_legal"
	ModeResearchOnly    Mode = "research_only"
	ModePublic          Mode = "public"
)

// Valid reports whether the mode is a member of the closed set.
func (m Mode) Valid() bool {
	switch m {
	case ModeCourt, ModeControlledLegal, ModeResearchOnly, ModePublic:
		return true
	}
	return false
}
