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
	"regexp"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"

	"github.com/meshlint/meshlint/internal/model"
	"github.com/meshlint/meshlint/internal/report"
)

var invokePattern = regexp.MustCompile(`invoke\s*\(\s*["']([a-zA-Z0-9_-]+)["']`)

var serviceInvokeGlobs = []string{"**/*.py", "**/*.js", "**/*.ts"}

// CheckServiceInvoke scans each app's source tree for invoke("target")
// literals and flags targets that don't name a declared app. This is
// best-effort: unreadable files and glob errors are silently skipped.
func CheckServiceInvoke(fs afero.Fs, root string, proj *model.Project) []report.Finding {
	ids := make([]string, 0, len(proj.Apps))
	for id := range proj.Apps {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var findings []report.Finding
	for _, id := range ids {
		app := proj.Apps[id]
		if app.AppDir == "" {
			continue
		}
		findings = append(findings, scanAppDir(fs, root, app, proj)...)
	}
	return findings
}

func scanAppDir(fs afero.Fs, root string, app *model.App, proj *model.Project) []report.Finding {
	base := afero.NewBasePathFs(fs, root+"/"+app.AppDir)

	var findings []report.Finding
	seen := map[string]bool{}

	for _, glob := range serviceInvokeGlobs {
		matches, err := doublestar.Glob(afero.NewIOFS(base), glob)
		if err != nil {
			continue
		}
		sort.Strings(matches)
		for _, m := range matches {
			contents, err := afero.ReadFile(base, m)
			if err != nil {
				continue
			}
			for _, match := range invokePattern.FindAllSubmatch(contents, -1) {
				target := string(match[1])
				if target == app.ID {
					continue
				}
				if _, ok := proj.Apps[target]; ok {
					continue
				}
				key := app.ID + "|" + target
				if seen[key] {
					continue
				}
				seen[key] = true
				findings = append(findings, report.Finding{
					Severity:  report.SeverityWarning,
					RuleID:    "X-SERVICE-INVOKE",
					Category:  "unknown_service",
					Component: app.ID,
					File:      app.AppDir + "/" + m,
					Message:   "app '" + app.ID + "' invokes unknown service '" + target + "'",
				})
			}
		}
	}
	return findings
}
