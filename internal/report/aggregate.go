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

package report

import "sort"

// Aggregator accumulates Findings from every stage of the pipeline. It is
// append-only: nothing removes or merges a Finding once added.
type Aggregator struct {
	findings []Finding
}

// NewAggregator returns an empty Aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// Add appends findings to the set.
func (a *Aggregator) Add(fs ...Finding) {
	a.findings = append(a.findings, fs...)
}

// Sorted returns every Finding ordered by (rule id, component name, file,
// message), so output is deterministic across runs. The input slice is
// not mutated.
func (a *Aggregator) Sorted() []Finding {
	out := make([]Finding, len(a.findings))
	copy(out, a.findings)
	sort.SliceStable(out, func(i, j int) bool {
		oi, oj := RuleOrder[out[i].RuleID], RuleOrder[out[j].RuleID]
		if oi != oj {
			return oi < oj
		}
		if out[i].Component != out[j].Component {
			return out[i].Component < out[j].Component
		}
		if out[i].File != out[j].File {
			return out[i].File < out[j].File
		}
		return out[i].Message < out[j].Message
	})
	return out
}

// BySeverity splits the sorted findings into the three severity buckets, in
// the order Errors, Warnings, Info.
func (a *Aggregator) BySeverity() (errs, warnings, infos []Finding) {
	for _, f := range a.Sorted() {
		switch f.Severity {
		case SeverityError:
			errs = append(errs, f)
		case SeverityWarning:
			warnings = append(warnings, f)
		case SeverityInfo:
			infos = append(infos, f)
		}
	}
	return errs, warnings, infos
}

// ExitCode computes the process exit code: 0 unless strict mode is on and
// an error-severity finding exists, or warningsAsErrors is additionally
// set and a warning exists.
func (a *Aggregator) ExitCode(strict, warningsAsErrors bool) int {
	if !strict {
		return 0
	}
	errs, warnings, _ := a.BySeverity()
	if len(errs) > 0 {
		return 1
	}
	if warningsAsErrors && len(warnings) > 0 {
		return 1
	}
	return 0
}
