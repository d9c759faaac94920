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
	"github.com/goccy/go-yaml/ast"

	"github.com/meshlint/meshlint/internal/model"
	"github.com/meshlint/meshlint/internal/report"
)

// tryParseConfigurationResource attempts to build a ConfigurationResource
// from a decoded document. Like tryParseComponent, it returns ok=false with
// no findings when kind doesn't mark this as a Configuration document.
func tryParseConfigurationResource(file string, root *ast.MappingNode) (*model.ConfigurationResource, []report.Finding, bool) {
	kind, _, _ := stringField(file, root, "kind")
	if kind != "Configuration" {
		return nil, nil, false
	}

	var findings []report.Finding
	metaNode, _ := field(root, "metadata")
	metaMap, _ := asMapping(metaNode)
	name, namePos, _ := stringField(file, metaMap, "name")

	cr := &model.ConfigurationResource{
		Name:             name,
		SourceFile:       file,
		Pos:              namePos,
		WorkloadCertTTL:  0,
		AllowedClockSkew: 0,
	}

	specNode, _ := field(root, "spec")
	specMap, hasSpec := asMapping(specNode)
	if !hasSpec {
		return cr, findings, true
	}

	if mtlsNode, ok := field(specMap, "mtls"); ok {
		if mtlsMap, ok := asMapping(mtlsNode); ok {
			cr.MTLSEnabled = boolField(mtlsMap, "enabled", false)

			if ttl, ttlPos, ok := stringField(file, mtlsMap, "workloadCertTTL"); ok {
				if d, ok := model.ParseMeshDuration(ttl); ok {
					cr.WorkloadCertTTL = d
				} else {
					findings = append(findings, report.Finding{
						Severity: report.SeverityWarning,
						RuleID:   "R-SCHEMA",
						Category: "invalid_duration",
						File:     file,
						Line:     uint(ttlPos.Line),
						Message:  "configuration has an unparseable spec.mtls.workloadCertTTL value " + quote(ttl),
					})
				}
			}

			if skew, skewPos, ok := stringField(file, mtlsMap, "allowedClockSkew"); ok {
				if d, ok := model.ParseMeshDuration(skew); ok {
					cr.AllowedClockSkew = d
				} else {
					findings = append(findings, report.Finding{
						Severity: report.SeverityWarning,
						RuleID:   "R-SCHEMA",
						Category: "invalid_duration",
						File:     file,
						Line:     uint(skewPos.Line),
						Message:  "configuration has an unparseable spec.mtls.allowedClockSkew value " + quote(skew),
					})
				}
			}
		}
	}

	return cr, findings, true
}
