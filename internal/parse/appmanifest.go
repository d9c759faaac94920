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

package parse

import (
	"strconv"

	"github.com/goccy/go-yaml/ast"

	"github.com/meshlint/meshlint/internal/model"
	"github.com/meshlint/meshlint/internal/report"
)

// parseAppManifest decodes the apps: [...] list of a dapr.yaml document into
// model.App entries. Entries missing appId are skipped with an error finding
// that references the index, since there is no name yet to anchor the
// finding to; duplicate appId values keep the first occurrence and emit an
// error finding for the rest.
func parseAppManifest(file string, root *ast.MappingNode) ([]*model.App, []report.Finding) {
	var findings []report.Finding

	appsNode, ok := field(root, "apps")
	if !ok {
		findings = append(findings, report.Finding{
			Severity: report.SeverityError,
			RuleID:   "R-SCHEMA",
			Category: "missing_apps",
			File:     file,
			Message:  "app manifest is missing required field apps",
		})
		return nil, findings
	}

	seq, ok := asSequence(appsNode)
	if !ok {
		findings = append(findings, report.Finding{
			Severity: report.SeverityError,
			RuleID:   "R-SCHEMA",
			Category: "invalid_apps",
			File:     file,
			Message:  "app manifest field apps must be a list",
		})
		return nil, findings
	}

	seen := map[string]bool{}
	var apps []*model.App
	for i, entryNode := range seq.Values {
		entryMap, ok := asMapping(entryNode)
		if !ok {
			continue
		}

		id, idPos, hasID := stringField(file, entryMap, "appId")
		if !hasID || id == "" {
			id, idPos, hasID = stringField(file, entryMap, "appID")
		}
		if !hasID || id == "" {
			findings = append(findings, report.Finding{
				Severity: report.SeverityError,
				RuleID:   "R-SCHEMA",
				Category: "missing_app_id",
				File:     file,
				Message:  "app entry at index " + strconv.Itoa(i) + " is missing required field appId",
			})
			continue
		}

		if seen[id] {
			findings = append(findings, report.Finding{
				Severity:  report.SeverityError,
				RuleID:    "R-NAME",
				Category:  "duplicate_app_id",
				Component: id,
				File:      file,
				Line:      uint(idPos.Line),
				Message:   "duplicate appId " + quote(id) + ", keeping the first occurrence",
			})
			continue
		}
		seen[id] = true

		app := &model.App{
			ID:              id,
			SidecarHTTPPort: model.DefaultSidecarHTTPPort,
			SidecarGRPCPort: model.DefaultSidecarGRPCPort,
			SourceFile:      file,
			Pos:             idPos,
		}

		if p, ok := intField(entryMap, "appPort"); ok {
			port := uint16(p)
			app.AppPort = &port
		}
		if p, ok := intField(entryMap, "daprHTTPPort"); ok {
			app.SidecarHTTPPort = uint16(p)
		}
		if p, ok := intField(entryMap, "daprGRPCPort"); ok {
			app.SidecarGRPCPort = uint16(p)
		}
		if dir, _, ok := stringField(file, entryMap, "appDirPath"); ok {
			app.AppDir = dir
		}

		if resNode, ok := field(entryMap, "resources"); ok {
			if resMap, ok := asMapping(resNode); ok {
				req := &model.ResourceRequest{}
				if cpu, _, ok := stringField(file, resMap, "cpu"); ok {
					if cores, ok := model.ParseCPUCores(cpu); ok {
						req.CPU = cores
					} else {
						findings = append(findings, report.Finding{
							Severity:  report.SeverityWarning,
							RuleID:    "R-SCHEMA",
							Category:  "invalid_cpu_quantity",
							Component: id,
							File:      file,
							Message:   "app " + quote(id) + " has an unparseable resources.cpu value " + quote(cpu),
						})
					}
				}
				if mem, _, ok := stringField(file, resMap, "memory"); ok {
					req.MemoryRaw = mem
					if bytes, ok := model.ParseMemoryQuantity(mem); ok {
						req.Memory = bytes
					} else {
						findings = append(findings, report.Finding{
							Severity:  report.SeverityWarning,
							RuleID:    "R-SCHEMA",
							Category:  "invalid_memory_quantity",
							Component: id,
							File:      file,
							Message:   "app " + quote(id) + " has an unparseable resources.memory value " + quote(mem),
						})
					}
				}
				app.Resources = req
			}
		}

		if scaleNode, ok := field(entryMap, "scale"); ok {
			if scaleMap, ok := asMapping(scaleNode); ok {
				scale := &model.ScaleSpec{}
				if n, ok := intField(scaleMap, "minReplicas"); ok {
					scale.MinReplicas = uint(n)
				}
				if n, ok := intField(scaleMap, "maxReplicas"); ok {
					scale.MaxReplicas = uint(n)
				}
				app.Scale = scale
			}
		}

		apps = append(apps, app)
	}

	return apps, findings
}
