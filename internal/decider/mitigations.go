// Copyright The Courtgate Authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package decider

import "courtgate/internal/risk"

// mitigationEntry ties a risk category to one required mitigation.
// applicableModes filters the entry out when the current distribution mode
// makes it inapplicable; an empty list means all modes.
type mitigationEntry struct {
	category        risk.Category
	mitigation      risk.Mitigation
	applicableModes []risk.Mode
}

var legalModes = []risk.Mode{risk.ModeCourt, risk.ModeControlledLegal}

// mitigationTable is the fixed category-to-mitigation mapping. Loaded once,
// read-only for the process lifetime.
var mitigationTable = []mitigationEntry{
	{
		category: risk.CategorySensitivePersonalData,
		mitigation: risk.Mitigation{
			Action:       risk.MitigationRemoveOrRedact,
			TargetFields: []string{"body", "appendices"},
			Note:         "personal identifiers must not survive export",
		},
	},
	{
		category:   risk.CategorySensitivePersonalData,
		mitigation: risk.Mitigation{Action: risk.MitigationRequireHumanReview},
	},
	{
		category: risk.CategoryUnverifiedCriminal,
		mitigation: risk.Mitigation{
			Action: risk.MitigationForceAllegation,
			Note:   "criminal assertions must use allegation framing",
		},
	},
	{
		category: risk.CategoryUnverifiedCriminal,
		mitigation: risk.Mitigation{
			Action:      risk.MitigationRequireEvidence,
			MinEvidence: 1,
		},
	},
	{
		category:   risk.CategoryDefamation,
		mitigation: risk.Mitigation{Action: risk.MitigationForceAllegation},
	},
	{
		category: risk.CategoryDefamation,
		mitigation: risk.Mitigation{
			Action:       risk.MitigationAddDisclaimer,
			TargetFields: []string{"front_matter"},
		},
		applicableModes: []risk.Mode{risk.ModePublic, risk.ModeResearchOnly},
	},
	{
		category:   risk.CategoryContemptOfCourt,
		mitigation: risk.Mitigation{Action: risk.MitigationRequireHumanReview},
	},
	{
		category: risk.CategoryContemptOfCourt,
		mitigation: risk.Mitigation{
			Action:       risk.MitigationRemoveOrRedact,
			TargetFields: []string{"body"},
		},
		applicableModes: []risk.Mode{risk.ModePublic, risk.ModeResearchOnly},
	},
	{
		category: risk.CategorySubJudice,
		mitigation: risk.Mitigation{
			Action:       risk.MitigationAddDisclaimer,
			TargetFields: []string{"front_matter"},
		},
	},
	{
		category: risk.CategorySubJudice,
		mitigation: risk.Mitigation{
			Action:       risk.MitigationRestrictDistribution,
			AllowedModes: legalModes,
		},
		applicableModes: []risk.Mode{risk.ModePublic, risk.ModeResearchOnly},
	},
	{
		category: risk.CategoryInstitutional,
		mitigation: risk.Mitigation{
			Action:      risk.MitigationRequireEvidence,
			MinEvidence: 2,
			Note:        "institutional accusations need corroboration",
		},
	},
	{
		category: risk.CategoryInstitutional,
		mitigation: risk.Mitigation{
			Action:       risk.MitigationAddDisclaimer,
			TargetFields: []string{"front_matter"},
		},
		applicableModes: []risk.Mode{risk.ModePublic},
	},
	{
		category:   risk.CategoryMisidentification,
		mitigation: risk.Mitigation{Action: risk.MitigationRequireHumanReview},
	},
	{
		category: risk.CategoryIncitementHarassment,
		mitigation: risk.Mitigation{
			Action:       risk.MitigationRemoveOrRedact,
			TargetFields: []string{"body"},
		},
	},
	{
		category:   risk.CategoryIncitementHarassment,
		mitigation: risk.Mitigation{Action: risk.MitigationRequireHumanReview},
	},
	{
		category: risk.CategoryPrivacy,
		mitigation: risk.Mitigation{
			Action:       risk.MitigationRemoveOrRedact,
			TargetFields: []string{"body"},
		},
		applicableModes: []risk.Mode{risk.ModePublic, risk.ModeResearchOnly},
	},
	{
		category: risk.CategoryPrivacy,
		mitigation: risk.Mitigation{
			Action:       risk.MitigationRestrictDistribution,
			AllowedModes: legalModes,
		},
		applicableModes: []risk.Mode{risk.ModePublic},
	},
}

// requiredMitigations collects the mitigations for every category present,
// filtered by mode applicability, in table order.
func requiredMitigations(categories map[risk.Category]bool, mode risk.Mode) []risk.Mitigation {
	var out []risk.Mitigation
	for _, entry := range mitigationTable {
		if !categories[entry.category] {
			continue
		}
		if !modeApplies(entry.applicableModes, mode) {
			continue
		}
		m := entry.mitigation
		m.Category = entry.category
		out = append(out, m)
	}
	return out
}

func modeApplies(applicable []risk.Mode, mode risk.Mode) bool {
	if len(applicable) == 0 {
		return true
	}
	for _, m := range applicable {
		if m == mode {
			return true
		}
	}
	return false
}
