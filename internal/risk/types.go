// Copyright The Courtgate Authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package risk defines the shared vocabulary of the safety gate: risk
// levels and categories, distribution modes, detected signals, claim
// units, decisions, rewrite records, and the composed gate result.
package risk

// Span is a half-open [Start, End) byte range into the original input text.
// Spans always index the exact text handed to the detector, never a mutated
// copy.
type Span struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

// Len returns the length of the span.
func (s Span) Len() int { return s.End - s.Start }

// Overlaps reports whether two spans share at least one position.
func (s Span) Overlaps(other Span) bool {
	return s.Start < other.End && other.Start < s.End
}

// Signal is a single detected risk occurrence at a text span. Signals are
// immutable once created.
type Signal struct {
	ID           string   `json:"id" yaml:"id"`
	Category     Category `json:"category" yaml:"category"`
	Level        Level    `json:"level" yaml:"level"`
	Span         Span     `json:"span" yaml:"span"`
	Text         string   `json:"text" yaml:"text"`
	Rationale    string   `json:"rationale" yaml:"rationale"`
	Targets      []string `json:"targets,omitempty" yaml:"targets,omitempty"`
	ClaimType    string   `json:"claim_type,omitempty" yaml:"claim_type,omitempty"`
	EvidenceRefs []string `json:"evidence_refs,omitempty" yaml:"evidence_refs,omitempty"`
	Confidence   float64  `json:"confidence" yaml:"confidence"`
}

// ClaimUnit is an aggregated per-target, per-sentence risk assertion derived
// from one or more signals in that sentence.
type ClaimUnit struct {
	Target           string   `json:"target" yaml:"target"`
	PredicateSummary string   `json:"predicate_summary" yaml:"predicate_summary"`
	Severity         Level    `json:"severity" yaml:"severity"`
	HasEvidence      bool     `json:"has_evidence" yaml:"has_evidence"`
	EvidenceRefs     []string `json:"evidence_refs,omitempty" yaml:"evidence_refs,omitempty"`
	SuggestedRewrite string   `json:"suggested_rewrite" yaml:"suggested_rewrite"`
	// Sentence is the span of the containing sentence in the original text.
	Sentence Span `json:"sentence" yaml:"sentence"`
}

// MitigationAction enumerates the corrective actions a decision can require.
type MitigationAction string

const (
	MitigationAddDisclaimer        MitigationAction = "add_disclaimer"
	MitigationRequireEvidence      MitigationAction = "require_evidence"
	MitigationForceAllegation      MitigationAction = "force_allegation_language"
	MitigationRemoveOrRedact       MitigationAction = "remove_or_redact"
	MitigationRequireHumanReview   MitigationAction = "require_human_review"
	MitigationRestrictDistribution MitigationAction = "restrict_distribution"
)

// Mitigation is a required corrective action attached to a risk decision,
// carrying the parameters needed to apply it.
type Mitigation struct {
	Action MitigationAction `json:"action" yaml:"action"`
	// Category is the risk category that triggered the mitigation.
	Category Category `json:"category" yaml:"category"`
	// TargetFields names the report fields the action applies to, when known.
	TargetFields []string `json:"target_fields,omitempty" yaml:"target_fields,omitempty"`
	// MinEvidence is the minimum number of evidence artifacts required
	// (require_evidence only).
	MinEvidence int `json:"min_evidence,omitempty" yaml:"min_evidence,omitempty"`
	// AllowedModes restricts distribution (restrict_distribution only).
	AllowedModes []Mode `json:"allowed_modes,omitempty" yaml:"allowed_modes,omitempty"`
	Note         string `json:"note,omitempty" yaml:"note,omitempty"`
}

// Decision is the aggregated reputation-risk outcome over all signals and
// claim units, after mode-specific escalation.
type Decision struct {
	Overall             Level        `json:"overall" yaml:"overall"`
	Categories          []Category   `json:"categories" yaml:"categories"`
	Signals             []Signal     `json:"signals" yaml:"signals"`
	RequiredMitigations []Mitigation `json:"required_mitigations" yaml:"required_mitigations"`
}

// Transformation records one textual substitution applied by the rewriter.
// Span offsets always refer to the original text, never an intermediate
// state; replaying the transformations in order against the original text
// reconstructs the rewritten text exactly.
type Transformation struct {
	RuleID string `json:"rule_id" yaml:"rule_id"`
	From   string `json:"from" yaml:"from"`
	To     string `json:"to" yaml:"to"`
	Reason string `json:"reason" yaml:"reason"`
	Span   Span   `json:"span" yaml:"span"`
}

// RewritePlan is the rewriter output: the court-safe text plus the complete
// transformation log.
type RewritePlan struct {
	RewrittenText   string           `json:"rewritten_text" yaml:"rewritten_text"`
	Transformations []Transformation `json:"transformations" yaml:"transformations"`
}

// CourtContext carries the jurisdiction styling for court-destined output.
type CourtContext struct {
	Style      string `json:"style,omitempty" yaml:"style,omitempty"`
	FilingType string `json:"filing_type,omitempty" yaml:"filing_type,omitempty"`
}

// Blocker codes. A blocker prevents export unless explicitly overridden.
const (
	BlockerCriticalRisk = "CRITICAL_RISK"
	BlockerPIIDetected  = "PII_DETECTED"
)

// WarningCourtEvidenceGap flags severe court-mode claims lacking evidence.
// Such claims are permitted but must surface in a "requires verification"
// appendix.
const WarningCourtEvidenceGap = "COURT_EVIDENCE_GAP"

// Finding is a single blocker or warning surfaced by the gate.
type Finding struct {
	Code    string `json:"code" yaml:"code"`
	Message string `json:"message" yaml:"message"`
}

// GateResult composes everything the safety gate produced for one text.
type GateResult struct {
	// AuditID uniquely identifies this gate invocation.
	AuditID      string        `json:"audit_id" yaml:"audit_id"`
	Mode         Mode          `json:"mode" yaml:"mode"`
	CourtContext *CourtContext `json:"court_context,omitempty" yaml:"court_context,omitempty"`
	Decision     Decision      `json:"decision" yaml:"decision"`
	Signals      []Signal      `json:"signals" yaml:"signals"`
	Claims       []ClaimUnit   `json:"claims" yaml:"claims"`
	Rewrite      RewritePlan   `json:"rewrite" yaml:"rewrite"`
	Blockers     []Finding     `json:"blockers" yaml:"blockers"`
	Warnings     []Finding     `json:"warnings" yaml:"warnings"`
	// Overridden records that an admin override suppressed blockers.
	Overridden bool `json:"overridden,omitempty" yaml:"overridden,omitempty"`
}

// Blocked reports whether export must not proceed.
func (r *GateResult) Blocked() bool { return len(r.Blockers) > 0 }

// Entity is a named actor supplied by the report-generation layer. Category
// is a free-form label; a small set of values marks the entity as protected
// (see detector.ProtectedCategories).
type Entity struct {
	Name     string `json:"name" yaml:"name"`
	Category string `json:"category,omitempty" yaml:"category,omitempty"`
}

// EvidenceArtifact is a piece of supporting evidence supplied by the caller.
type EvidenceArtifact struct {
	ID            string `json:"id" yaml:"id"`
	ArtifactValue string `json:"artifact_value" yaml:"artifact_value"`
}
