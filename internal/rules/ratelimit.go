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
	"github.com/meshlint/meshlint/internal/model"
	"github.com/meshlint/meshlint/internal/report"
)

// CheckRateLimit validates middleware.http.ratelimit's maxRequestsPerSecond
// bound: non-positive or non-integer is an error, a suspiciously large
// value is a warning.
func CheckRateLimit(c *model.Component) []report.Finding {
	if c.Driver != "middleware.http.ratelimit" {
		return nil
	}

	if metaIntPresentButInvalid(c, "maxRequestsPerSecond") {
		return []report.Finding{{
			Severity:  report.SeverityError,
			RuleID:    "R-RATELIMIT",
			Category:  "invalid_rate_limit",
			Component: c.Name,
			File:      c.SourceFile,
			Line:      uint(c.Pos.Line),
			Message:   "component '" + c.Name + "' has a non-integer maxRequestsPerSecond",
		}}
	}

	n, ok := metaInt(c, "maxRequestsPerSecond")
	if !ok || n <= 0 {
		return []report.Finding{{
			Severity:  report.SeverityError,
			RuleID:    "R-RATELIMIT",
			Category:  "invalid_rate_limit",
			Component: c.Name,
			File:      c.SourceFile,
			Line:      uint(c.Pos.Line),
			Message:   "component '" + c.Name + "' must set maxRequestsPerSecond to a positive integer",
		}}
	}

	if n > 10000 {
		return []report.Finding{{
			Severity:  report.SeverityWarning,
			RuleID:    "R-RATELIMIT",
			Category:  "suspicious_rate_limit",
			Component: c.Name,
			File:      c.SourceFile,
			Line:      uint(c.Pos.Line),
			Message:   "component '" + c.Name + "' sets an unusually high maxRequestsPerSecond",
		}}
	}

	return nil
}
