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
	"sort"

	"github.com/meshlint/meshlint/internal/model"
	"github.com/meshlint/meshlint/internal/report"
)

// CheckScopes reports scopes naming an app id that doesn't exist. If the
// project has zero apps, scopes cannot be validated and the rule is
// skipped entirely.
func CheckScopes(proj *model.Project) []report.Finding {
	if !proj.HasApps() {
		return nil
	}

	names := make([]string, 0, len(proj.Components))
	for name := range proj.Components {
		names = append(names, name)
	}
	sort.Strings(names)

	var findings []report.Finding
	for _, name := range names {
		c := proj.Components[name]
		for _, s := range c.SortedScopes() {
			if _, ok := proj.Apps[s]; ok {
				continue
			}
			findings = append(findings, report.Finding{
				Severity:  report.SeverityWarning,
				RuleID:    "X-SCOPE",
				Category:  "unknown_scope",
				Component: c.Name,
				File:      c.SourceFile,
				Line:      uint(c.Pos.Line),
				Message:   "component '" + c.Name + "' targets scope '" + s + "', which is not a declared app id",
			})
		}
	}
	return findings
}
