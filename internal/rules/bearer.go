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
	"strings"

	"github.com/meshlint/meshlint/internal/model"
	"github.com/meshlint/meshlint/internal/report"
)

// CheckBearer flags middleware.http.bearer components missing an audience,
// or whose issuer uses plaintext http://.
func CheckBearer(c *model.Component) []report.Finding {
	if c.Driver != "middleware.http.bearer" {
		return nil
	}

	var findings []report.Finding

	if _, ok := c.Metadata("audience"); !ok {
		findings = append(findings, report.Finding{
			Severity:  report.SeverityWarning,
			RuleID:    "R-BEARER",
			Category:  "missing_audience",
			Component: c.Name,
			File:      c.SourceFile,
			Line:      uint(c.Pos.Line),
			Message:   "component '" + c.Name + "' is missing an audience entry",
		})
	}

	issuer, ok := metaString(c, "issuerURL")
	if !ok {
		issuer, ok = metaString(c, "issuer")
	}
	if ok && strings.HasPrefix(issuer, "http://") {
		findings = append(findings, report.Finding{
			Severity:  report.SeverityWarning,
			RuleID:    "R-BEARER",
			Category:  "insecure_issuer",
			Component: c.Name,
			File:      c.SourceFile,
			Line:      uint(c.Pos.Line),
			Message:   "component '" + c.Name + "' issuer uses plaintext http://",
		})
	}

	return findings
}
