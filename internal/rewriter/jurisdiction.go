// Copyright The Courtgate Authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package rewriter

import (
	"strings"

	"courtgate/internal/risk"
)

// phraseSub is a literal jurisdiction-specific substitution. Replacement
// text never contains its own search phrase, which keeps the rule idempotent.
type phraseSub struct {
	from string
	to   string
}

type styleKey struct {
	courtStyle string
	filingType string
}

// jurisdictionTable keys phrasing substitutions by (court style, filing
// type). The table is a pluggable rule set, not jurisdictional legal advice;
// entries here cover the styles the platform ships with.
var jurisdictionTable = map[styleKey][]phraseSub{
	{"uk_crown", "witness_statement"}: {
		{"I believe that", "It is my honest belief that"},
		{"I am certain that", "To the best of my knowledge and belief,"},
	},
	{"uk_crown", "skeleton_argument"}: {
		{"It is obvious that", "It is respectfully submitted that"},
		{"clearly shows", "tends to show"},
	},
	{"us_federal", "motion"}: {
		{"the evidence proves", "the evidence tends to establish"},
		{"without any doubt", "on the available record"},
	},
	{"us_federal", "declaration"}: {
		{"I am sure that", "I declare under penalty of perjury that, to my knowledge,"},
	},
}

// jurisdictionTransforms builds substitutions for the configured style.
// Both CourtStyle and FilingType must be set; otherwise the rule is skipped.
func jurisdictionTransforms(text string, opts Options) []risk.Transformation {
	if opts.CourtStyle == "" || opts.FilingType == "" {
		return nil
	}
	subs, ok := jurisdictionTable[styleKey{opts.CourtStyle, opts.FilingType}]
	if !ok {
		return nil
	}

	var out []risk.Transformation
	for _, sub := range subs {
		for idx := 0; ; {
			rel := strings.Index(text[idx:], sub.from)
			if rel < 0 {
				break
			}
			start := idx + rel
			out = append(out, risk.Transformation{
				RuleID: RuleJurisdiction,
				From:   sub.from,
				To:     sub.to,
				Reason: "phrasing adjusted for " + opts.CourtStyle + " " + opts.FilingType,
				Span:   risk.Span{Start: start, End: start + len(sub.from)},
			})
			idx = start + len(sub.from)
		}
	}
	return out
}
