// Copyright The Courtgate Authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package qa is the post-assembly safety net. It checks document-level
// invariants over a summarized report context and is deliberately
// independent of the per-sentence detector, so a detection bug cannot
// silently defeat it.
package qa

import (
	"fmt"
	"regexp"

	"github.com/google/uuid"

	"courtgate/internal/risk"
)

// IssueLevel grades a QA finding.
type IssueLevel string

const (
	IssueCritical IssueLevel = "critical"
	IssueWarning  IssueLevel = "warning"
)

// Issue codes.
const (
	CodeNetZero               = "NET_ZERO"
	CodeNoFrontMatter         = "NO_FRONTMATTER"
	CodeNoDisclaimer          = "NO_DISCLAIMER"
	CodeCourtNoEvidenceSevere = "COURT_NO_EVIDENCE_SEVERE"
	CodePIIIDInOutput         = "PII_ID_IN_OUTPUT"
	CodePIIPhoneInOutput      = "PII_PHONE_IN_OUTPUT"
	CodePIIAddressInOutput    = "PII_ADDRESS_IN_OUTPUT"
	CodeTimelineEarly         = "TIMELINE_EARLY"
)

// timelineSlackYears is how far before the declared case start an event may
// fall before it is suspicious.
const timelineSlackYears = 2

// Fixed output-scan patterns. These are intentionally separate from the
// gate's pattern table.
var (
	nationalIDRe = regexp.MustCompile(`\b\d{13}\b`)
	phoneRe      = regexp.MustCompile(`\b\+?\d{1,3}[ .-]\d{2,3}[ .-]\d{3}[ .-]\d{3,4}\b`)
	addressRe    = regexp.MustCompile(`\b\d{1,5}\s+[A-Z][a-z]+\s+(?:Street|St|Avenue|Ave|Road|Rd|Lane|Ln|Boulevard|Blvd|Drive|Dr)\b`)
)

// Context summarizes the assembled report. It is produced by the report
// layer after template rendering; the validator never fetches anything.
type Context struct {
	Mode risk.Mode `json:"mode" yaml:"mode"`

	RelationshipsTotal int `json:"relationships_total" yaml:"relationships_total"`
	ConnectionsTotal   int `json:"connections_total" yaml:"connections_total"`

	HasFrontMatter bool `json:"has_front_matter" yaml:"has_front_matter"`
	HasDisclaimer  bool `json:"has_disclaimer" yaml:"has_disclaimer"`

	SevereClaims int  `json:"severe_claims" yaml:"severe_claims"`
	HasEvidence  bool `json:"has_evidence" yaml:"has_evidence"`

	RenderedOutput string `json:"rendered_output" yaml:"rendered_output"`

	DeclaredStartYear int `json:"declared_start_year" yaml:"declared_start_year"`
	EarliestEventYear int `json:"earliest_event_year" yaml:"earliest_event_year"`
}

// Issue is a single QA finding.
type Issue struct {
	Code    string     `json:"code" yaml:"code"`
	Level   IssueLevel `json:"level" yaml:"level"`
	Message string     `json:"message" yaml:"message"`
	Action  string     `json:"action,omitempty" yaml:"action,omitempty"`
}

// Report is the QA outcome. Pass is true iff no issue is critical.
type Report struct {
	AuditID string  `json:"audit_id" yaml:"audit_id"`
	Pass    bool    `json:"pass" yaml:"pass"`
	Issues  []Issue `json:"issues" yaml:"issues"`
}

// Run validates the assembled report context and returns the QA report.
// It never errors; structural problems are issues, not failures.
func Run(ctx Context) Report {
	var issues []Issue

	if ctx.RelationshipsTotal > 0 && ctx.ConnectionsTotal == 0 {
		issues = append(issues, Issue{
			Code:  CodeNetZero,
			Level: IssueCritical,
			Message: fmt.Sprintf("report declares %d relationships but renders zero connections",
				ctx.RelationshipsTotal),
			Action: "regenerate the network section before export",
		})
	}

	if !ctx.HasFrontMatter {
		issues = append(issues, Issue{
			Code:    CodeNoFrontMatter,
			Level:   IssueWarning,
			Message: "required front-matter sections are missing",
			Action:  "add the standard front matter",
		})
	}

	if !ctx.HasDisclaimer {
		issues = append(issues, Issue{
			Code:    CodeNoDisclaimer,
			Level:   IssueWarning,
			Message: "legal disclaimer is missing",
			Action:  "add the legal disclaimer section",
		})
	}

	if ctx.Mode == risk.ModeCourt && ctx.SevereClaims > 0 && !ctx.HasEvidence {
		issues = append(issues, Issue{
			Code:  CodeCourtNoEvidenceSevere,
			Level: IssueCritical,
			Message: fmt.Sprintf("court-mode report carries %d severe claim(s) with no evidence",
				ctx.SevereClaims),
			Action: "attach evidence or remove the claims",
		})
	}

	if ctx.Mode == risk.ModePublic {
		issues = append(issues, scanRenderedOutput(ctx.RenderedOutput)...)
	}

	if ctx.DeclaredStartYear > 0 && ctx.EarliestEventYear > 0 &&
		ctx.EarliestEventYear < ctx.DeclaredStartYear-timelineSlackYears {
		issues = append(issues, Issue{
			Code:  CodeTimelineEarly,
			Level: IssueWarning,
			Message: fmt.Sprintf("earliest event year %d predates declared start year %d by more than %d years",
				ctx.EarliestEventYear, ctx.DeclaredStartYear, timelineSlackYears),
			Action: "confirm the declared case year range",
		})
	}

	return Report{
		AuditID: uuid.NewString(),
		Pass:    !hasCritical(issues),
		Issues:  issues,
	}
}

// scanRenderedOutput applies the fixed PII patterns to the rendered report.
func scanRenderedOutput(rendered string) []Issue {
	if rendered == "" {
		return nil
	}

	var issues []Issue
	if nationalIDRe.MatchString(rendered) {
		issues = append(issues, Issue{
			Code:    CodePIIIDInOutput,
			Level:   IssueCritical,
			Message: "rendered output contains a national-ID-format number",
			Action:  "redact before publication",
		})
	}
	if phoneRe.MatchString(rendered) {
		issues = append(issues, Issue{
			Code:    CodePIIPhoneInOutput,
			Level:   IssueCritical,
			Message: "rendered output contains a phone-number-format token",
			Action:  "redact before publication",
		})
	}
	if addressRe.MatchString(rendered) {
		issues = append(issues, Issue{
			Code:    CodePIIAddressInOutput,
			Level:   IssueWarning,
			Message: "rendered output may contain a street address",
			Action:  "review the flagged passage",
		})
	}
	return issues
}

func hasCritical(issues []Issue) bool {
	for _, issue := range issues {
		if issue.Level == IssueCritical {
			return true
		}
	}
	return false
}
