// Copyright The Courtgate Authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"courtgate/internal/formatters"
	"courtgate/internal/qa"
	"courtgate/internal/risk"
)

// Formatter implements text-based output formatting
type Formatter struct {
	colors map[string]*color.Color
}

// NewFormatter creates a new text formatter
func NewFormatter() *Formatter {
	return &Formatter{
		colors: map[string]*color.Color{
			"green":  color.New(color.FgGreen),
			"yellow": color.New(color.FgYellow),
			"red":    color.New(color.FgRed),
			"cyan":   color.New(color.FgCyan),
			"white":  color.New(color.FgWhite, color.Bold),
		},
	}
}

func (f *Formatter) Name() string {
	return "text"
}

func (f *Formatter) Description() string {
	return "Human-readable text output with colors"
}

func (f *Formatter) FileExtension() string {
	return ".txt"
}

func (f *Formatter) Format(result *risk.GateResult, qaReport *qa.Report, options formatters.Options) (string, error) {
	// Disable colors if requested
	if options.NoColor {
		color.NoColor = true
	}

	var b strings.Builder

	if result != nil {
		f.writeGate(&b, result, options)
	}
	if qaReport != nil {
		if result != nil {
			b.WriteString("\n")
		}
		f.writeQA(&b, qaReport)
	}

	return b.String(), nil
}

func (f *Formatter) writeGate(b *strings.Builder, result *risk.GateResult, options formatters.Options) {
	header := f.colors["white"]
	fmt.Fprintf(b, "%s\n", header.Sprintf("Safety Gate (mode %s, audit %s)", result.Mode, result.AuditID))
	fmt.Fprintf(b, "Overall risk: %s\n", f.levelColor(result.Decision.Overall).Sprint(string(result.Decision.Overall)))

	if result.Overridden {
		fmt.Fprintf(b, "%s\n", f.colors["yellow"].Sprint("Admin override active: blockers suppressed"))
	}

	if len(result.Blockers) > 0 {
		fmt.Fprintf(b, "\n%s\n", f.colors["red"].Sprintf("BLOCKERS (%d)", len(result.Blockers)))
		for _, blocker := range result.Blockers {
			fmt.Fprintf(b, "  %s  %s\n", f.colors["red"].Sprint(blocker.Code), blocker.Message)
		}
	}

	if len(result.Warnings) > 0 {
		fmt.Fprintf(b, "\n%s\n", f.colors["yellow"].Sprintf("WARNINGS (%d)", len(result.Warnings)))
		for _, warning := range result.Warnings {
			fmt.Fprintf(b, "  %s  %s\n", f.colors["yellow"].Sprint(warning.Code), warning.Message)
		}
	}

	if len(result.Blockers) == 0 && len(result.Warnings) == 0 {
		fmt.Fprintf(b, "\n%s\n", f.colors["green"].Sprint("No blockers or warnings"))
	}

	if len(result.Decision.RequiredMitigations) > 0 {
		fmt.Fprintf(b, "\nRequired mitigations:\n")
		for _, m := range result.Decision.RequiredMitigations {
			line := fmt.Sprintf("  - %s (%s)", m.Action, m.Category)
			if m.MinEvidence > 0 {
				line += fmt.Sprintf(", min evidence: %d", m.MinEvidence)
			}
			fmt.Fprintf(b, "%s\n", line)
		}
	}

	if options.Verbose {
		f.writeSignals(b, result.Signals)
		f.writeTransformations(b, result.Rewrite.Transformations)
	}

	if len(result.Rewrite.Transformations) > 0 {
		fmt.Fprintf(b, "\nCourt-safe text:\n%s\n", result.Rewrite.RewrittenText)
	}
}

func (f *Formatter) writeSignals(b *strings.Builder, signals []risk.Signal) {
	if len(signals) == 0 {
		return
	}
	fmt.Fprintf(b, "\nSignals (%d):\n", len(signals))
	for _, sig := range signals {
		fmt.Fprintf(b, "  [%s] %s %q at %d-%d (confidence %.2f)\n",
			f.levelColor(sig.Level).Sprint(string(sig.Level)), sig.Category, sig.Text,
			sig.Span.Start, sig.Span.End, sig.Confidence)
		if len(sig.Targets) > 0 {
			fmt.Fprintf(b, "      targets: %s\n", strings.Join(sig.Targets, ", "))
		}
	}
}

func (f *Formatter) writeTransformations(b *strings.Builder, transformations []risk.Transformation) {
	if len(transformations) == 0 {
		return
	}
	fmt.Fprintf(b, "\nTransformations (%d):\n", len(transformations))
	for _, t := range transformations {
		fmt.Fprintf(b, "  %s at %d-%d: %q -> %q\n", t.RuleID, t.Span.Start, t.Span.End, t.From, t.To)
	}
}

func (f *Formatter) writeQA(b *strings.Builder, report *qa.Report) {
	header := f.colors["white"]
	fmt.Fprintf(b, "%s\n", header.Sprintf("Safety QA (audit %s)", report.AuditID))

	if report.Pass {
		fmt.Fprintf(b, "Result: %s\n", f.colors["green"].Sprint("PASS"))
	} else {
		fmt.Fprintf(b, "Result: %s\n", f.colors["red"].Sprint("FAIL"))
	}

	for _, issue := range report.Issues {
		c := f.colors["yellow"]
		if issue.Level == qa.IssueCritical {
			c = f.colors["red"]
		}
		fmt.Fprintf(b, "  %s  %s\n", c.Sprint(issue.Code), issue.Message)
		if issue.Action != "" {
			fmt.Fprintf(b, "      action: %s\n", issue.Action)
		}
	}
}

func (f *Formatter) levelColor(level risk.Level) *color.Color {
	switch level {
	case risk.LevelCritical, risk.LevelHigh:
		return f.colors["red"]
	case risk.LevelMedium:
		return f.colors["yellow"]
	default:
		return f.colors["green"]
	}
}

// Register the formatter during package initialization
func init() {
	formatters.Register(NewFormatter())
}
