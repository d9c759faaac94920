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

package rules

import (
	"regexp"

	"github.com/meshlint/meshlint/internal/model"
	"github.com/meshlint/meshlint/internal/report"
)

var defaultDenyPattern = regexp.MustCompile(`default\s+allow\s*=\s*false`)

// CheckOPA flags middleware.http.opa policies that don't default-deny.
func CheckOPA(c *model.Component) []report.Finding {
	if c.Driver != "middleware.http.opa" {
		return nil
	}
	rego, ok := metaString(c, "rego")
	if !ok || defaultDenyPattern.MatchString(rego) {
		return nil
	}
	return []report.Finding{{
		Severity:  report.SeverityWarning,
		RuleID:    "R-OPA",
		Category:  "missing_default_deny",
		Component: c.Name,
		File:      c.SourceFile,
		Line:      uint(c.Pos.Line),
		Message:   "component '" + c.Name + "' rego policy does not default-deny (missing 'default allow = false')",
	}}
}
