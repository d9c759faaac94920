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

// Package parse turns the files discovery.Walk found into a typed
// model.Project, degrading every per-file problem to a Finding rather than
// aborting the run.
package parse

import (
	"path/filepath"

	"github.com/goccy/go-yaml/parser"
	"github.com/spf13/afero"

	"github.com/meshlint/meshlint/internal/discovery"
	"github.com/meshlint/meshlint/internal/model"
	"github.com/meshlint/meshlint/internal/report"
)

// ParseProject reads and decodes every record discovery.Walk returned,
// building a model.Project. YAML syntax errors are reported as warnings and
// the offending file is skipped, never treated as fatal.
func ParseProject(fs afero.Fs, root string, records []discovery.Record) (*model.Project, []report.Finding) {
	proj := model.NewProject()
	var findings []report.Finding

	for _, rec := range records {
		absPath := filepath.Join(root, rec.Path)
		raw, err := afero.ReadFile(fs, absPath)
		if err != nil {
			findings = append(findings, report.Finding{
				Severity: report.SeverityWarning,
				Category: "load_error",
				File:     rec.Path,
				Message:  "cannot read file: " + err.Error(),
			})
			continue
		}

		file, err := parser.ParseBytes(raw, 0)
		if err != nil {
			findings = append(findings, report.Finding{
				Severity: report.SeverityWarning,
				Category: "yaml_syntax_error",
				File:     rec.Path,
				Message:  "YAML syntax error: " + err.Error(),
			})
			continue
		}
		if len(file.Docs) == 0 || file.Docs[0].Body == nil {
			continue
		}

		docRoot, ok := asMapping(file.Docs[0].Body)
		if !ok {
			findings = append(findings, report.Finding{
				Severity: report.SeverityWarning,
				Category: "yaml_syntax_error",
				File:     rec.Path,
				Message:  "document root must be a mapping",
			})
			continue
		}

		switch rec.Classification {
		case discovery.ClassAppManifest:
			apps, apFindings := parseAppManifest(rec.Path, docRoot)
			findings = append(findings, apFindings...)
			for _, app := range apps {
				if existing, dup := proj.Apps[app.ID]; dup {
					findings = append(findings, report.Finding{
						Severity:  report.SeverityError,
						RuleID:    "R-NAME",
						Category:  "duplicate_app_id",
						Component: app.ID,
						File:      app.SourceFile,
						Line:      uint(app.Pos.Line),
						Message:   "duplicate appId " + quote(app.ID) + ", already declared in " + existing.SourceFile,
					})
					continue
				}
				proj.Apps[app.ID] = app
			}

		case discovery.ClassComponentCandidate:
			if comp, compFindings, ok := tryParseComponent(rec.Path, docRoot); ok {
				findings = append(findings, compFindings...)
				if comp.Name != "" {
					if existing, dup := proj.Components[comp.Name]; dup {
						findings = append(findings, report.Finding{
							Severity:  report.SeverityError,
							RuleID:    "R-NAME",
							Category:  "duplicate_component_name",
							Component: comp.Name,
							File:      comp.SourceFile,
							Line:      uint(comp.Pos.Line),
							Message:   "duplicate component name " + quote(comp.Name) + ", already declared in " + existing.SourceFile,
						})
						continue
					}
					proj.Components[comp.Name] = comp
				}
				continue
			}

			if cr, crFindings, ok := tryParseConfigurationResource(rec.Path, docRoot); ok {
				findings = append(findings, crFindings...)
				if proj.Configuration != nil {
					findings = append(findings, report.Finding{
						Severity: report.SeverityWarning,
						RuleID:   "R-SCHEMA",
						Category: "duplicate_configuration",
						File:     cr.SourceFile,
						Line:     uint(cr.Pos.Line),
						Message:  "a second Configuration resource was found; only the first (" + proj.Configuration.SourceFile + ") is used",
					})
					continue
				}
				proj.Configuration = cr
			}
			// Any other kind (or missing kind) is silently dropped.
		}
	}

	return proj, findings
}
