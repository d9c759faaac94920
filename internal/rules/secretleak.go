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

// secretLikeSubstrings is the closed set of case-insensitive substrings that
// mark a metadata entry name as secret-shaped.
var secretLikeSubstrings = []string{
	"password", "secret", "key", "token", "credential",
	"connectionstring", "masterkey", "accesskey", "apikey",
	"clientid", "clientsecret",
}

// CheckSecretLeak flags metadata entries whose name looks secret-shaped but
// carries a plain value instead of a secretKeyRef. A value beginning with
// "$" or "{{" is a variable-interpolation placeholder and is skipped.
func CheckSecretLeak(c *model.Component) []report.Finding {
	var findings []report.Finding
	for _, m := range c.MetadataEntries {
		if !m.HasValue() {
			continue
		}
		if !looksSecretLike(m.Name) {
			continue
		}
		v := *m.Value
		if strings.HasPrefix(v, "$") || strings.HasPrefix(v, "{{") {
			continue
		}
		findings = append(findings, report.Finding{
			Severity:  report.SeverityError,
			RuleID:    "R-SECRET-LEAK",
			Category:  "plain_secret",
			Component: c.Name,
			File:      c.SourceFile,
			Line:      uint(m.Pos.Line),
			Message:   "metadata entry '" + m.Name + "' on component '" + c.Name + "' holds a plain secret-shaped value instead of a secretKeyRef",
		})
	}
	return findings
}

func looksSecretLike(name string) bool {
	lower := strings.ToLower(name)
	for _, s := range secretLikeSubstrings {
		if strings.Contains(lower, s) {
			return true
		}
	}
	return false
}
