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

var namePattern = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)

// CheckName validates that a component's name conforms to the sidecar
// naming grammar. An empty name was already flagged at parse time and is
// skipped here to avoid a duplicate finding.
func CheckName(c *model.Component) []report.Finding {
	if c.Name == "" || namePattern.MatchString(c.Name) {
		return nil
	}
	return []report.Finding{{
		Severity:  report.SeverityError,
		RuleID:    "R-NAME",
		Category:  "invalid_name",
		Component: c.Name,
		File:      c.SourceFile,
		Line:      uint(c.Pos.Line),
		Message:   "component name '" + c.Name + "' must match ^[a-z][a-z0-9-]*$",
	}}
}
