// Copyright The Courtgate Authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package patterns

import "courtgate/internal/risk"

// DefaultVersion identifies the built-in rule set.
const DefaultVersion = "builtin-2026.08"

// defaultRules is the built-in detection rule set. It is deliberately
// conservative: rules describe phrasing shapes, not the jurisdictional
// legal-language templates, which stay in override tables.
var defaultRules = []Rule{
	{
		ID:         "CRIM-001",
		Category:   risk.CategoryUnverifiedCriminal,
		Level:      risk.LevelHigh,
		Confidence: 0.80,
		Pattern:    `(?i)\b(?:committed|perpetrated|carried out|is guilty of|was behind)\s+(?:a\s+|the\s+)?(?:fraud|murder|theft|bribery|embezzlement|assault|perjury|corruption|money laundering|arson)\b`,
		Rationale:  "declarative assertion that a named act constitutes a crime",
		ClaimType:  "criminal_allegation",
	},
	{
		ID:         "CRIM-002",
		Category:   risk.CategoryUnverifiedCriminal,
		Level:      risk.LevelHigh,
		Confidence: 0.75,
		Pattern:    `(?i)\b(?:defrauded|embezzled|bribed|extorted|stole from|laundered money for)\b`,
		Rationale:  "criminal verb asserted as fact",
		ClaimType:  "criminal_allegation",
	},
	{
		ID:         "DEF-001",
		Category:   risk.CategoryDefamation,
		Level:      risk.LevelHigh,
		Confidence: 0.70,
		Pattern:    `(?i)\bis\s+an?\s+(?:liar|fraudster|criminal|crook|con artist|thief|swindler)\b`,
		Rationale:  "character assertion presented as established fact",
		ClaimType:  "character_attack",
	},
	{
		ID:         "CONT-001",
		Category:   risk.CategoryContemptOfCourt,
		Level:      risk.LevelCritical,
		Confidence: 0.85,
		Pattern:    `(?i)\bthe\s+(?:judge|court|tribunal)\s+(?:is|was)\s+(?:corrupt|biased|bought|compromised)\b`,
		Rationale:  "direct accusation against a sitting court",
	},
	{
		ID:         "CONT-002",
		Category:   risk.CategoryContemptOfCourt,
		Level:      risk.LevelCritical,
		Confidence: 0.80,
		Pattern:    `(?i)\bthe\s+jury\s+(?:should|must)\s+(?:convict|acquit)\b`,
		Rationale:  "attempt to influence jury deliberation",
	},
	{
		ID:         "SUBJ-001",
		Category:   risk.CategorySubJudice,
		Level:      risk.LevelMedium,
		Confidence: 0.60,
		Pattern:    `(?i)\b(?:ongoing|pending|active)\s+(?:trial|criminal proceedings|court case|prosecution)\b`,
		Rationale:  "commentary touching live proceedings",
	},
	{
		ID:         "INCIT-001",
		Category:   risk.CategoryIncitementHarassment,
		Level:      risk.LevelCritical,
		Confidence: 0.85,
		Pattern:    `(?i)\b(?:deserves to be|should be)\s+(?:attacked|hurt|harassed|hounded|punished by the public)\b`,
		Rationale:  "call for action against a person",
	},
	{
		ID:         "SPD-001",
		Category:   risk.CategorySensitivePersonalData,
		Level:      risk.LevelCritical,
		Confidence: 0.90,
		Pattern:    `\b\d{13}\b`,
		Rationale:  "national identification number format",
	},
	{
		ID:         "SPD-002",
		Category:   risk.CategorySensitivePersonalData,
		Level:      risk.LevelHigh,
		Confidence: 0.70,
		Pattern:    `\b\+?\d{1,3}[ .-]\d{2,3}[ .-]\d{3}[ .-]\d{3,4}\b`,
		Rationale:  "phone number format",
	},
	{
		ID:         "SPD-003",
		Category:   risk.CategorySensitivePersonalData,
		Level:      risk.LevelHigh,
		Confidence: 0.70,
		Pattern:    `(?i)\b(?:diagnosed with|suffers from|is being treated for)\b`,
		Rationale:  "health status disclosure",
	},
	{
		ID:         "PRIV-001",
		Category:   risk.CategoryPrivacy,
		Level:      risk.LevelHigh,
		Confidence: 0.70,
		Pattern:    `(?i)\b(?:lives at|resides at|home address is)\b`,
		Rationale:  "residential location disclosure",
	},
	{
		ID:         "INST-001",
		Category:   risk.CategoryInstitutional,
		Level:      risk.LevelHigh,
		Confidence: 0.75,
		Pattern:    `(?i)\bthe\s+(?:ministry|police|department|agency|municipality|prosecutor'?s office)\s+(?:covered up|falsified|destroyed evidence|conspired|suppressed)\b`,
		Rationale:  "accusation of institutional misconduct",
		ClaimType:  "institutional_accusation",
	},
	{
		ID:         "MISID-001",
		Category:   risk.CategoryMisidentification,
		Level:      risk.LevelMedium,
		Confidence: 0.50,
		Pattern:    `(?i)\b(?:also known as|the same person as|not to be confused with)\b`,
		Rationale:  "identity linkage prone to misattribution",
	},
}

// Default returns the built-in pattern table. The built-in rules are
// compile-checked by tests, so a failure here is a programming error.
func Default() *Table {
	table, err := New(DefaultVersion, defaultRules)
	if err != nil {
		panic("builtin pattern table invalid: " + err.Error())
	}
	return table
}
