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
	"github.com/Masterminds/semver/v3"

	"github.com/meshlint/meshlint/internal/model"
	"github.com/meshlint/meshlint/internal/report"
)

// supportedSchemaVersions is the closed set of spec.version strings this
// build of meshlint understands, matched exactly. Dapr-style components are
// versioned "v1", "v2", ... rather than full semver; a version outside this
// set is normalized only to tell a semver-shaped version from a malformed
// one.
var supportedSchemaVersions = map[string]bool{
	"v1": true,
}

// CheckSchema validates that a component declares a supported spec.version.
// Absent version was already registered (c.Version == "") and produces a
// warning; a present-but-unsupported version is an error.
func CheckSchema(c *model.Component) []report.Finding {
	if c.Version == "" {
		return []report.Finding{{
			Severity:  report.SeverityWarning,
			RuleID:    "R-SCHEMA",
			Category:  "missing_version",
			Component: c.Name,
			File:      c.SourceFile,
			Line:      uint(c.Pos.Line),
			Message:   "component '" + c.Name + "' is missing spec.version",
		}}
	}

	if supportedSchemaVersions[c.Version] {
		return nil
	}

	// A version that isn't in the supported set but at least parses as a
	// semver-shaped string still gets the same "unsupported" treatment —
	// semver.NewVersion is only used to normalize/validate the shape of
	// what a caller passed, not to grant it a pass.
	if _, err := semver.NewVersion(normalizeSchemaVersion(c.Version)); err != nil {
		return []report.Finding{{
			Severity:  report.SeverityError,
			RuleID:    "R-SCHEMA",
			Category:  "invalid_version",
			Component: c.Name,
			File:      c.SourceFile,
			Line:      uint(c.Pos.Line),
			Message:   "component '" + c.Name + "' has a malformed spec.version '" + c.Version + "'",
		}}
	}

	return []report.Finding{{
		Severity:  report.SeverityError,
		RuleID:    "R-SCHEMA",
		Category:  "unsupported_version",
		Component: c.Name,
		File:      c.SourceFile,
		Line:      uint(c.Pos.Line),
		Message:   "component '" + c.Name + "' uses unsupported spec.version '" + c.Version + "'",
	}}
}

// normalizeSchemaVersion turns a Dapr-style "v1" version string into the
// "1" semver.NewVersion expects.
func normalizeSchemaVersion(v string) string {
	if len(v) > 0 && (v[0] == 'v' || v[0] == 'V') {
		return v[1:]
	}
	return v
}
