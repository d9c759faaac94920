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

// urlLikeFields is the closed set of metadata entry names this rule
// inspects for a plaintext http:// scheme.
var urlLikeFields = map[string]bool{
	"authURL":   true,
	"tokenURL":  true,
	"issuerURL": true,
	"opaURL":    true,
	"url":       true,
}

// CheckHTTPS flags metadata entries naming a URL field whose value uses the
// plaintext http:// scheme. Severity is elevated to error for
// middleware.* drivers.
func CheckHTTPS(c *model.Component) []report.Finding {
	var findings []report.Finding
	for _, m := range c.MetadataEntries {
		if !urlLikeFields[m.Name] || !m.HasValue() {
			continue
		}
		if !strings.HasPrefix(*m.Value, "http://") {
			continue
		}

		severity := report.SeverityWarning
		if strings.HasPrefix(c.Driver, "middleware.") {
			severity = report.SeverityError
		}

		findings = append(findings, report.Finding{
			Severity:  severity,
			RuleID:    "R-HTTPS",
			Category:  "insecure_url",
			Component: c.Name,
			File:      c.SourceFile,
			Line:      uint(m.Pos.Line),
			Message:   "metadata entry '" + m.Name + "' on component '" + c.Name + "' uses plaintext http://",
		})
	}
	return findings
}
