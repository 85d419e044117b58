// Copyright The Courtgate Authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package csv

import (
	"fmt"
	"strings"

	"courtgate/internal/formatters"
	"courtgate/internal/qa"
	"courtgate/internal/risk"
)

// Formatter implements CSV output formatting
type Formatter struct{}

// NewFormatter creates a new CSV formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "csv"
}

func (f *Formatter) Description() string {
	return "Comma-separated signal listing for spreadsheet import"
}

func (f *Formatter) FileExtension() string {
	return ".csv"
}

// Format renders one row per signal, followed by QA issues when a report is
// present. Findings that are not span-bound (blockers, warnings) belong in
// the text and JSON formats; CSV is the triage view of raw signals.
func (f *Formatter) Format(result *risk.GateResult, qaReport *qa.Report, options formatters.Options) (string, error) {
	headers := []string{"Kind", "Category", "Level", "Start", "End", "Confidence", "Text"}
	rows := []string{strings.Join(headers, ",")}

	if result != nil {
		for _, sig := range result.Signals {
			rows = append(rows, strings.Join([]string{
				"signal",
				f.escapeCSVField(string(sig.Category)),
				f.escapeCSVField(string(sig.Level)),
				fmt.Sprintf("%d", sig.Span.Start),
				fmt.Sprintf("%d", sig.Span.End),
				fmt.Sprintf("%.2f", sig.Confidence),
				f.escapeCSVField(sig.Text),
			}, ","))
		}
	}

	if qaReport != nil {
		for _, issue := range qaReport.Issues {
			rows = append(rows, strings.Join([]string{
				"qa_issue",
				f.escapeCSVField(issue.Code),
				f.escapeCSVField(string(issue.Level)),
				"", "", "",
				f.escapeCSVField(issue.Message),
			}, ","))
		}
	}

	return strings.Join(rows, "\n"), nil
}

// escapeCSVField properly escapes a field for CSV format and prevents CSV injection
func (f *Formatter) escapeCSVField(field string) string {
	// Prevent CSV injection by sanitizing formula characters
	field = f.sanitizeFormulaInjection(field)

	// If field contains comma, quote, or newline, wrap in quotes and escape internal quotes
	if strings.Contains(field, ",") || strings.Contains(field, "\"") || strings.Contains(field, "\n") || strings.Contains(field, "\r") {
		// Escape internal quotes by doubling them
		escaped := strings.ReplaceAll(field, "\"", "\"\"")
		return fmt.Sprintf("\"%s\"", escaped)
	}
	return field
}

// sanitizeFormulaInjection prevents CSV injection attacks by sanitizing formula characters
func (f *Formatter) sanitizeFormulaInjection(field string) string {
	if len(field) == 0 {
		return field
	}

	firstChar := field[0]
	if firstChar == '=' || firstChar == '+' || firstChar == '-' || firstChar == '@' {
		// Prefix with single quote to prevent formula execution
		return "'" + field
	}

	return field
}

// Register the formatter during package initialization
func init() {
	formatters.Register(NewFormatter())
}
