// Copyright The Courtgate Authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package observability provides the timing observer the CLI wraps around
// gate and QA runs. The core pipeline stays pure; observation happens at the
// call boundary.
package observability

import (
	"encoding/json"
	"io"
	"time"
)

// StandardObserver records operation timings for all components.
type StandardObserver struct {
	level         ObservabilityLevel
	writer        io.Writer
	DebugObserver *DebugObserver // set when running in debug mode
}

type ObservabilityLevel int

const (
	ObservabilityOff     ObservabilityLevel = 0
	ObservabilityMetrics ObservabilityLevel = 1
	ObservabilityDebug   ObservabilityLevel = 2
)

// NewStandardObserver creates an observer writing to the given writer.
func NewStandardObserver(level ObservabilityLevel, writer io.Writer) *StandardObserver {
	return &StandardObserver{
		level:  level,
		writer: writer,
	}
}

// StartTiming returns a function to complete timing for one operation. The
// caller fills the operation-specific fields on the data it passes back;
// component, operation, input, duration, and success are set here.
func (o *StandardObserver) StartTiming(component, operation, input string) func(success bool, data OperationData) {
	start := time.Now()

	return func(success bool, data OperationData) {
		data.Component = component
		data.Operation = operation
		data.Input = input
		data.DurationMs = time.Since(start).Milliseconds()
		data.Success = success

		o.LogOperation(data)
	}
}

// LogOperation logs operation data.
func (o *StandardObserver) LogOperation(data OperationData) {
	if o.level == ObservabilityOff {
		return
	}

	data.RequestID = "req-" + time.Now().Format("20060102-150405")

	// Only log JSON in debug mode
	if o.level == ObservabilityDebug {
		json.NewEncoder(o.writer).Encode(data)
	}
}

// OperationData describes one observed operation.
type OperationData struct {
	Component    string                 `json:"component"`
	Operation    string                 `json:"operation"`
	RequestID    string                 `json:"request_id"`
	Input        string                 `json:"input,omitempty"`
	DurationMs   int64                  `json:"duration_ms,omitempty"`
	Success      bool                   `json:"success"`
	Error        string                 `json:"error,omitempty"`
	SignalCount  int                    `json:"signal_count,omitempty"`
	BlockerCount int                    `json:"blocker_count,omitempty"`
	Metadata     map[string]interface{} `json:"metadata,omitempty"`
}
