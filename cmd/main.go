// Copyright The Courtgate Authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"flag"
	"fmt"
	"os"

	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"courtgate/internal/config"
	"courtgate/internal/detector"
	"courtgate/internal/formatters"
	_ "courtgate/internal/formatters/csv"
	_ "courtgate/internal/formatters/json"
	_ "courtgate/internal/formatters/text"
	_ "courtgate/internal/formatters/yaml"
	"courtgate/internal/gate"
	"courtgate/internal/observability"
	"courtgate/internal/patterns"
	"courtgate/internal/preprocessors"
	"courtgate/internal/qa"
	"courtgate/internal/risk"
	"courtgate/internal/version"
)

// cliFlags holds command line flag values
type cliFlags struct {
	filePath      string
	text          string
	mode          string
	courtStyle    string
	filingType    string
	contextFile   string
	qaFile        string
	patternsFile  string
	configFile    string
	outputFormat  string
	adminOverride bool
	verbose       bool
	debug         bool
	noColor       bool
	showVersion   bool
}

// contextFile mirrors the YAML shape of the entity/evidence context the
// report layer supplies.
type contextFile struct {
	Entities          []risk.Entity           `yaml:"entities"`
	EvidenceArtifacts []risk.EvidenceArtifact `yaml:"evidence_artifacts"`
}

func main() {
	os.Exit(run())
}

func run() int {
	flags := parseFlags()

	if flags.showVersion {
		fmt.Println(version.Info())
		return 0
	}

	cfg := config.LoadOrDefault(flags.configFile)
	resolveDefaults(cfg, flags)

	if flags.filePath == "" && flags.text == "" && flags.qaFile == "" {
		fmt.Fprintln(os.Stderr, "Error: one of --file, --text, or --qa is required")
		flag.Usage()
		return 2
	}

	mode := risk.Mode(flags.mode)
	if !mode.Valid() {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q (court_mode, controlled_legal, research_only, public)\n", flags.mode)
		return 2
	}

	// A malformed pattern table is a fatal configuration error.
	table, err := loadTable(flags.patternsFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	observer := observability.NewStandardObserver(observability.ObservabilityMetrics, os.Stderr)
	if flags.debug {
		debugObs := observability.NewDebugObserver(os.Stderr)
		observer = debugObs.StandardObserver
		observer.DebugObserver = debugObs
	}

	if !flags.noColor && !term.IsTerminal(int(os.Stdout.Fd())) {
		flags.noColor = true
	}

	var result *risk.GateResult
	var qaReport *qa.Report
	blocked := false

	if flags.filePath != "" || flags.text != "" {
		r, err := runGate(flags, mode, table, observer)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 2
		}
		result = r
		blocked = r.Blocked()
	}

	if flags.qaFile != "" {
		report, err := runQA(flags.qaFile, observer)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 2
		}
		qaReport = report
		if !report.Pass {
			blocked = true
		}
	}

	output, err := formatters.Export(flags.outputFormat, result, qaReport, formatters.Options{
		Verbose: flags.verbose,
		NoColor: flags.noColor,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}
	fmt.Println(output)

	if blocked {
		return 1
	}
	return 0
}

func parseFlags() *cliFlags {
	flags := &cliFlags{}
	flag.StringVar(&flags.filePath, "file", "", "Report file to gate (.pdf files are text-extracted)")
	flag.StringVar(&flags.text, "text", "", "Report text to gate (alternative to --file)")
	flag.StringVar(&flags.mode, "mode", "", "Distribution mode: court_mode, controlled_legal, research_only, public")
	flag.StringVar(&flags.courtStyle, "court-style", "", "Jurisdiction style for court-safe rewriting (e.g. uk_crown)")
	flag.StringVar(&flags.filingType, "filing-type", "", "Filing type for court-safe rewriting (e.g. witness_statement)")
	flag.StringVar(&flags.contextFile, "context", "", "YAML file with entities and evidence artifacts")
	flag.StringVar(&flags.qaFile, "qa", "", "YAML file with the assembled-report QA context")
	flag.StringVar(&flags.patternsFile, "patterns", "", "YAML pattern table overriding the built-in rules")
	flag.StringVar(&flags.configFile, "config", "", "Configuration file path")
	flag.StringVar(&flags.outputFormat, "format", "", "Output format: text, json, yaml, csv")
	flag.BoolVar(&flags.adminOverride, "admin-override", false, "Suppress blockers (warnings always remain)")
	flag.BoolVar(&flags.verbose, "verbose", false, "Show signals and transformations in text output")
	flag.BoolVar(&flags.debug, "debug", false, "Enable step-by-step debug output")
	flag.BoolVar(&flags.noColor, "no-color", false, "Disable colored output")
	flag.BoolVar(&flags.showVersion, "version", false, "Show version information")
	flag.Parse()
	return flags
}

// resolveDefaults fills unset flags from the configuration file.
func resolveDefaults(cfg *config.Config, flags *cliFlags) {
	if flags.outputFormat == "" {
		flags.outputFormat = cfg.Defaults.Format
	}
	if flags.mode == "" {
		flags.mode = cfg.Defaults.Mode
	}
	if flags.courtStyle == "" {
		flags.courtStyle = cfg.Court.Style
	}
	if flags.filingType == "" {
		flags.filingType = cfg.Court.FilingType
	}
	if flags.patternsFile == "" {
		flags.patternsFile = cfg.PatternTable
	}
	if !isFlagSet("verbose") {
		flags.verbose = cfg.Defaults.Verbose
	}
	if !isFlagSet("debug") {
		flags.debug = cfg.Defaults.Debug
	}
	if !isFlagSet("no-color") {
		flags.noColor = cfg.Defaults.NoColor
	}
}

func loadTable(path string) (*patterns.Table, error) {
	if path == "" {
		return patterns.Default(), nil
	}
	return patterns.Load(path)
}

func runGate(flags *cliFlags, mode risk.Mode, table *patterns.Table, observer *observability.StandardObserver) (*risk.GateResult, error) {
	debug := observer.DebugObserver

	text := flags.text
	if flags.filePath != "" {
		var finishStep func(success bool, details string)
		if debug != nil {
			finishStep = debug.StartStep("preprocess", "read_input", flags.filePath)
		}
		extracted, err := preprocessors.ReadInput(flags.filePath)
		if err != nil {
			if finishStep != nil {
				finishStep(false, err.Error())
			}
			observer.LogOperation(observability.OperationData{
				Component: "preprocess",
				Operation: "read_input",
				Input:     flags.filePath,
				Success:   false,
				Error:     err.Error(),
			})
			return nil, err
		}
		if finishStep != nil {
			finishStep(true, fmt.Sprintf("%d bytes", len(extracted)))
		}
		text = extracted
	}

	ctx := detector.Context{}
	if flags.contextFile != "" {
		data, err := os.ReadFile(flags.contextFile)
		if err != nil {
			return nil, fmt.Errorf("reading context file: %w", err)
		}
		var cf contextFile
		if err := yaml.Unmarshal(data, &cf); err != nil {
			return nil, fmt.Errorf("parsing context file %s: %w", flags.contextFile, err)
		}
		ctx.Entities = cf.Entities
		ctx.EvidenceArtifacts = cf.EvidenceArtifacts
		if debug != nil {
			debug.LogDetail("gate", fmt.Sprintf("context: %d entities, %d evidence artifacts",
				len(ctx.Entities), len(ctx.EvidenceArtifacts)))
		}
	}

	input := gate.Input{
		Text:          text,
		Context:       ctx,
		Mode:          mode,
		AdminOverride: flags.adminOverride,
	}
	if flags.courtStyle != "" || flags.filingType != "" {
		input.CourtContext = &risk.CourtContext{
			Style:      flags.courtStyle,
			FilingType: flags.filingType,
		}
	}

	var finishRun func(success bool, details string)
	if debug != nil {
		finishRun = debug.StartStep("gate", "run", string(mode))
	}
	finishTiming := observer.StartTiming("gate", "run", flags.filePath)
	result := gate.New(table).Run(input)
	finishTiming(true, observability.OperationData{
		SignalCount:  len(result.Signals),
		BlockerCount: len(result.Blockers),
	})
	if finishRun != nil {
		finishRun(true, fmt.Sprintf("%d signals, %d blockers, %d warnings",
			len(result.Signals), len(result.Blockers), len(result.Warnings)))
	}

	return &result, nil
}

func runQA(path string, observer *observability.StandardObserver) (*qa.Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading QA context file: %w", err)
	}
	var ctx qa.Context
	if err := yaml.Unmarshal(data, &ctx); err != nil {
		return nil, fmt.Errorf("parsing QA context file %s: %w", path, err)
	}

	var finishRun func(success bool, details string)
	if debug := observer.DebugObserver; debug != nil {
		finishRun = debug.StartStep("qa", "run", path)
	}
	finishTiming := observer.StartTiming("qa", "run", path)
	report := qa.Run(ctx)
	finishTiming(true, observability.OperationData{
		Metadata: map[string]interface{}{"pass": report.Pass, "issue_count": len(report.Issues)},
	})
	if finishRun != nil {
		finishRun(true, fmt.Sprintf("pass=%t, %d issues", report.Pass, len(report.Issues)))
	}

	return &report, nil
}

// isFlagSet checks if a flag was explicitly set on the command line
func isFlagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
