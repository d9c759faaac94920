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

package analyze

import (
	"strings"

	"github.com/meshlint/meshlint/internal/graph"
	"github.com/meshlint/meshlint/internal/report"
)

// CheckCycles reports every circular dependency among components. Multiple
// overlapping cycles are each reported as a separate finding.
func CheckCycles(g *graph.Graph) []report.Finding {
	var findings []report.Finding
	for _, cycle := range g.Cycles() {
		component := ""
		if len(cycle) > 0 {
			component = cycle[0]
		}
		findings = append(findings, report.Finding{
			Severity:  report.SeverityError,
			RuleID:    "X-CYCLE",
			Category:  "circular_dependency",
			Component: component,
			Message:   "circular dependency: " + strings.Join(cycle, " -> "),
			Details:   map[string]any{"cycle": cycle},
		})
	}
	return findings
}
