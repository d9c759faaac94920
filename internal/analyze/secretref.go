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
	"github.com/meshlint/meshlint/internal/graph"
	"github.com/meshlint/meshlint/internal/model"
	"github.com/meshlint/meshlint/internal/report"
)

// CheckSecretRefs reports every pending edge that names a store which is
// not a registered secretstore component — whether that store name
// matches no component at all, or matches a component of some other
// kind. Edges bind only to the explicitly referenced store — this
// deliberately does not fan an edge out to every secret store in the
// project (see DESIGN.md).
func CheckSecretRefs(proj *model.Project, pending []graph.PendingEdge) []report.Finding {
	var findings []report.Finding
	hasSecretStores := proj.HasSecretStores()

	for _, e := range pending {
		c := proj.Components[e.From]

		var msg string
		if target, ok := proj.Components[e.To]; ok {
			msg = "component '" + e.From + "' references '" + e.To + "' via " + e.Field +
				", but '" + e.To + "' is a " + string(target.Kind) + " component, not a secretstore"
		} else {
			msg = "component '" + e.From + "' references unknown secret store '" + e.To + "' via " + e.Field
		}
		if !hasSecretStores {
			msg += "; the project defines no secretstore components — consider adding one"
		}

		var file string
		var line uint
		if c != nil {
			file = c.SourceFile
			line = uint(c.Pos.Line)
		}

		findings = append(findings, report.Finding{
			Severity:  report.SeverityError,
			RuleID:    "X-SECRET-REF",
			Category:  "missing_secret_store",
			Component: e.From,
			File:      file,
			Line:      line,
			Message:   msg,
		})
	}
	return findings
}
