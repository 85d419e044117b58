// Copyright The Courtgate Authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package yaml

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"courtgate/internal/formatters"
	"courtgate/internal/qa"
	"courtgate/internal/risk"
)

// Formatter implements YAML output formatting
type Formatter struct{}

// NewFormatter creates a new YAML formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "yaml"
}

func (f *Formatter) Description() string {
	return "YAML output for configuration-friendly consumption"
}

func (f *Formatter) FileExtension() string {
	return ".yaml"
}

type envelope struct {
	Gate *risk.GateResult `yaml:"gate,omitempty"`
	QA   *qa.Report       `yaml:"qa,omitempty"`
}

func (f *Formatter) Format(result *risk.GateResult, qaReport *qa.Report, options formatters.Options) (string, error) {
	data, err := yaml.Marshal(envelope{Gate: result, QA: qaReport})
	if err != nil {
		return "", fmt.Errorf("formatting YAML: %w", err)
	}
	return string(data), nil
}

// Register the formatter during package initialization
func init() {
	formatters.Register(NewFormatter())
}
