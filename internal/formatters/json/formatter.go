// Copyright The Courtgate Authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package json

import (
	"encoding/json"
	"fmt"

	"courtgate/internal/formatters"
	"courtgate/internal/qa"
	"courtgate/internal/risk"
)

// Formatter implements JSON output formatting
type Formatter struct{}

// NewFormatter creates a new JSON formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "json"
}

func (f *Formatter) Description() string {
	return "Structured JSON output for programmatic consumption"
}

func (f *Formatter) FileExtension() string {
	return ".json"
}

// envelope wraps the gate result and optional QA report in one document.
type envelope struct {
	Gate *risk.GateResult `json:"gate,omitempty"`
	QA   *qa.Report       `json:"qa,omitempty"`
}

func (f *Formatter) Format(result *risk.GateResult, qaReport *qa.Report, options formatters.Options) (string, error) {
	data, err := json.MarshalIndent(envelope{Gate: result, QA: qaReport}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("formatting JSON: %w", err)
	}
	return string(data), nil
}

// Register the formatter during package initialization
func init() {
	formatters.Register(NewFormatter())
}
