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
	"strconv"

	"github.com/meshlint/meshlint/internal/graph"
	"github.com/meshlint/meshlint/internal/model"
	"github.com/meshlint/meshlint/internal/report"
)

const maxHealthyChainDepth = 3

// CheckChainDepth flags components whose dependency chain exceeds the
// healthy depth threshold.
func CheckChainDepth(proj *model.Project, g *graph.Graph) []report.Finding {
	cache := map[string]int{}
	var findings []report.Finding
	for _, name := range g.Nodes() {
		depth := g.ChainDepth(name, cache)
		if depth <= maxHealthyChainDepth {
			continue
		}
		c := proj.Components[name]
		var file string
		var line uint
		if c != nil {
			file = c.SourceFile
			line = uint(c.Pos.Line)
		}
		findings = append(findings, report.Finding{
			Severity:  report.SeverityWarning,
			RuleID:    "X-CHAIN-DEPTH",
			Category:  "deep_dependency_chain",
			Component: name,
			File:      file,
			Line:      line,
			Message:   "component '" + name + "' has a dependency chain " + strconv.Itoa(depth) + " deep",
			Details:   map[string]any{"depth": depth},
		})
	}
	return findings
}
