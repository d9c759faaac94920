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

const supportedAPIVersion = "dapr.io/v1alpha1"

// tryParseComponent attempts to build a Component from a decoded document.
// It returns ok=false (with no findings) when the document's kind/apiVersion
// don't mark it as a component: other values are accepted silently as not
// ours and dropped.
func tryParseComponent(file string, root *ast.MappingNode) (*model.Component, []report.Finding, bool) {
	kind, _, _ := stringField(file, root, "kind")
	if kind != "Component" {
		return nil, nil, false
	}
	apiVersion, apiPos, _ := stringField(file, root, "apiVersion")
	var findings []report.Finding

	if apiVersion != supportedAPIVersion {
		findings = append(findings, report.Finding{
			Severity: report.SeverityError,
			RuleID:   "R-SCHEMA",
			Category: "invalid_api_version",
			File:     file,
			Line:     uint(apiPos.Line),
			Message:  "unsupported apiVersion " + quote(apiVersion) + ", expected " + quote(supportedAPIVersion),
		})
	}

	metaNode, _ := field(root, "metadata")
	metaMap, _ := asMapping(metaNode)
	name, namePos, hasName := stringField(file, metaMap, "name")

	c := &model.Component{
		Name:       name,
		SourceFile: file,
		Pos:        namePos,
		Scopes:     map[string]struct{}{},
	}

	if !hasName || name == "" {
		findings = append(findings, report.Finding{
			Severity: report.SeverityError,
			RuleID:   "R-NAME",
			Category: "missing_name",
			File:     file,
			Message:  "component is missing required field metadata.name",
		})
	}
	// Name-format validity (^[a-z][a-z0-9-]*$) is checked by rules.CheckName
	// once the component is registered: an invalid name is still registered
	// using the raw name so downstream analysis can proceed.

	if scopesNode, ok := field(metaMap, "scopes"); ok {
		if seq, ok := asSequence(scopesNode); ok {
			for _, v := range seq.Values {
				c.Scopes[scalarString(v)] = struct{}{}
			}
		}
	}

	specNode, _ := field(root, "spec")
	specMap, hasSpec := asMapping(specNode)
	if !hasSpec {
		findings = append(findings, report.Finding{
			Severity:  report.SeverityError,
			RuleID:    "R-SCHEMA",
			Category:  "missing_spec",
			Component: name,
			File:      file,
			Message:   "component " + quote(name) + " is missing required section spec",
		})
		return c, findings, true
	}

	driver, driverPos, hasDriver := stringField(file, specMap, "type")
	c.Driver = driver
	if !hasDriver || driver == "" {
		findings = append(findings, report.Finding{
			Severity:  report.SeverityError,
			RuleID:    "R-SCHEMA",
			Category:  "missing_type",
			Component: name,
			File:      file,
			Message:   "component " + quote(name) + " is missing required field spec.type",
		})
	} else {
		c.Kind = model.ClassifyDriver(driver)
		if c.Kind == model.KindOther {
			findings = append(findings, report.Finding{
				Severity:  report.SeverityInfo,
				RuleID:    "R-SCHEMA",
				Category:  "unknown_driver_prefix",
				Component: name,
				File:      file,
				Line:      uint(driverPos.Line),
				Message:   "component " + quote(name) + " has an unrecognized driver prefix " + quote(driver),
			})
		}
	}

	version, _, _ := stringField(file, specMap, "version")
	c.Version = version
	// Whether version is present and supported is checked by
	// rules.CheckSchema, not at parse time.

	if metaEntriesNode, ok := field(specMap, "metadata"); ok {
		if seq, ok := asSequence(metaEntriesNode); ok {
			for _, entryNode := range seq.Values {
				entryMap, ok := asMapping(entryNode)
				if !ok {
					continue
				}
				entry, entryFindings := parseMetadataEntry(file, name, entryMap)
				findings = append(findings, entryFindings...)
				c.MetadataEntries = append(c.MetadataEntries, entry)
			}
		}
	}

	if authNode, ok := field(root, "auth"); ok {
		if authMap, ok := asMapping(authNode); ok {
			if store, _, ok := stringField(file, authMap, "secretStore"); ok {
				c.AuthSecretStore = store
			}
		}
	}

	return c, findings, true
}

func parseMetadataEntry(file, component string, m *ast.MappingNode) (model.MetadataEntry, []report.Finding) {
	name, namePos, _ := stringField(file, m, "name")
	entry := model.MetadataEntry{Name: name, Pos: namePos}

	value, _, hasValue := stringField(file, m, "value")
	secretNode, hasSecretNode := field(m, "secretKeyRef")

	var hasSecret bool
	if hasSecretNode {
		if secretMap, ok := asMapping(secretNode); ok {
			store, _, _ := stringField(file, secretMap, "name")
			key, _, _ := stringField(file, secretMap, "key")
			if store != "" {
				entry.SecretRef = &model.SecretRef{Store: store, Key: key}
				hasSecret = true
			}
		}
	}

	var findings []report.Finding
	switch {
	case hasValue && hasSecret:
		// both populated: first (value) wins for model-building so
		// downstream rules can still run.
		entry.Value = &value
		findings = append(findings, report.Finding{
			Severity:  report.SeverityError,
			RuleID:    "R-SCHEMA",
			Category:  "ambiguous_metadata_entry",
			Component: component,
			File:      file,
			Line:      uint(namePos.Line),
			Message:   "metadata entry " + quote(name) + " sets both value and secretKeyRef",
		})
	case hasValue:
		entry.Value = &value
	case hasSecret:
		// already set above
	default:
		findings = append(findings, report.Finding{
			Severity:  report.SeverityError,
			RuleID:    "R-SCHEMA",
			Category:  "empty_metadata_entry",
			Component: component,
			File:      file,
			Line:      uint(namePos.Line),
			Message:   "metadata entry " + quote(name) + " sets neither value nor secretKeyRef",
		})
	}

	return entry, findings
}

func quote(s string) string {
	return "'" + s + "'"
}
