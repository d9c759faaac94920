// Copyright 2024 Upbound Inc
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package report collects Findings emitted by the rule engine and
// cross-file analyzer, and renders them as human-readable or JSON output.
package report

// Severity is the criticality of a Finding.
type Severity string

// Supported severities, in the display order the human form uses.
const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Finding is a single diagnostic emitted by a rule or cross-file analysis.
type Finding struct {
	Severity  Severity
	RuleID    string // e.g. "R-SECRET-LEAK", used only for deterministic ordering
	Category  string // e.g. "plain_secret"
	Component string
	File      string
	Line      uint
	Message   string
	Details   map[string]any
}

// RuleOrder is the fixed cross-rule ordering findings are sorted by: first
// this index, then (component, file, message).
var RuleOrder = map[string]int{
	"R-NAME":          0,
	"R-SCHEMA":        1,
	"R-SECRET-LEAK":   2,
	"R-HTTPS":         3,
	"R-RATELIMIT":     4,
	"R-OPA":           5,
	"R-BEARER":        6,
	"R-RESILIENCY":    7,
	"R-AZURE-IDENTITY": 8,
	"X-CYCLE":         9,
	"X-SECRET-REF":    10,
	"X-SCOPE":         11,
	"X-SERVICE-INVOKE": 12,
	"X-CHAIN-DEPTH":   13,
	"X-PORT":          14,
	"X-QUOTA":         15,
	"X-MTLS":          16,
}
