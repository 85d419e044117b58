// Copyright The Courtgate Authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package patterns holds the versioned table of detection rules the risk
// signal detector scans with. The table is built once at startup and treated
// as read-only for the process lifetime; a malformed rule is a fatal
// configuration error, never a per-call error.
package patterns

import (
	"fmt"
	"os"
	"regexp"

	"courtgate/internal/risk"

	"gopkg.in/yaml.v3"
)

// Rule is a single category-tagged detection rule.
type Rule struct {
	ID         string        `yaml:"id"`
	Category   risk.Category `yaml:"category"`
	Level      risk.Level    `yaml:"level"`
	Confidence float64       `yaml:"confidence"`
	Pattern    string        `yaml:"pattern"`
	Rationale  string        `yaml:"rationale"`
	ClaimType  string        `yaml:"claim_type,omitempty"`

	regex *regexp.Regexp
}

// Regex returns the compiled pattern.
func (r *Rule) Regex() *regexp.Regexp { return r.regex }

// Table is an immutable set of compiled detection rules.
type Table struct {
	Version string `yaml:"version"`
	Rules   []Rule `yaml:"rules"`
}

// New compiles a rule set into a Table. Any invalid rule makes the whole
// table invalid.
func New(version string, rules []Rule) (*Table, error) {
	if len(rules) == 0 {
		return nil, fmt.Errorf("pattern table %q has no rules", version)
	}

	seen := make(map[string]bool, len(rules))
	compiled := make([]Rule, 0, len(rules))
	for i, rule := range rules {
		if rule.ID == "" {
			return nil, fmt.Errorf("pattern table %q: rule %d has no id", version, i)
		}
		if seen[rule.ID] {
			return nil, fmt.Errorf("pattern table %q: duplicate rule id %q", version, rule.ID)
		}
		seen[rule.ID] = true

		if !rule.Category.Valid() {
			return nil, fmt.Errorf("rule %s: unknown category %q", rule.ID, rule.Category)
		}
		if !rule.Level.Valid() {
			return nil, fmt.Errorf("rule %s: unknown level %q", rule.ID, rule.Level)
		}
		if rule.Confidence < 0 || rule.Confidence > 1 {
			return nil, fmt.Errorf("rule %s: confidence %v outside [0,1]", rule.ID, rule.Confidence)
		}
		if rule.Pattern == "" {
			return nil, fmt.Errorf("rule %s: empty pattern", rule.ID)
		}

		re, err := regexp.Compile(rule.Pattern)
		if err != nil {
			return nil, fmt.Errorf("rule %s: invalid pattern: %w", rule.ID, err)
		}
		rule.regex = re
		compiled = append(compiled, rule)
	}

	return &Table{Version: version, Rules: compiled}, nil
}

// Load reads a YAML rule file and compiles it into a Table.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading pattern table: %w", err)
	}

	var raw Table
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing pattern table %s: %w", path, err)
	}

	table, err := New(raw.Version, raw.Rules)
	if err != nil {
		return nil, fmt.Errorf("pattern table %s: %w", path, err)
	}
	return table, nil
}
