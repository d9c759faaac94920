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

package report

import (
	"encoding/json"
	"io"
	"sort"

	"github.com/meshlint/meshlint/internal/model"
)

// Document is the top-level JSON form of a run: every known component and
// app, findings split into issues (severity >= error) and warnings, and a
// graph summary. Info-severity findings are not part of the document.
type Document struct {
	Components   []ComponentDoc  `json:"components"`
	Apps         []AppDoc        `json:"apps"`
	Issues       []FindingDoc    `json:"issues"`
	Warnings     []FindingDoc    `json:"warnings"`
	GraphSummary GraphSummaryDoc `json:"graph_summary"`
}

// ComponentDoc is the JSON projection of model.Component.
type ComponentDoc struct {
	Name       string `json:"name"`
	Kind       string `json:"kind"`
	Driver     string `json:"driver"`
	Version    string `json:"version"`
	SourceFile string `json:"source_file"`
}

// AppDoc is the JSON projection of model.App.
type AppDoc struct {
	ID         string  `json:"id"`
	AppPort    *uint16 `json:"app_port,omitempty"`
	AppDir     string  `json:"app_dir,omitempty"`
	SourceFile string  `json:"source_file"`
}

// FindingDoc is the JSON projection of a Finding.
type FindingDoc struct {
	Severity  string         `json:"severity"`
	RuleID    string         `json:"rule_id"`
	Category  string         `json:"category"`
	Component string         `json:"component,omitempty"`
	File      string         `json:"file,omitempty"`
	Line      uint           `json:"line,omitempty"`
	Message   string         `json:"message"`
	Details   map[string]any `json:"details,omitempty"`
}

// GraphSummaryDoc is the JSON projection of GraphSummary.
type GraphSummaryDoc struct {
	TotalNodes         int                `json:"total_nodes"`
	TotalEdges         int                `json:"total_edges"`
	MostConnected      []ConnectedNodeDoc `json:"most_connected"`
	IsolatedComponents []string           `json:"isolated_components"`
}

// ConnectedNodeDoc is the JSON projection of ConnectedNode.
type ConnectedNodeDoc struct {
	Name        string `json:"name"`
	Connections int    `json:"connections"`
}

// BuildDocument assembles the full JSON document from a parsed project's
// components/apps, the accumulated findings, and the graph summary.
func BuildDocument(proj *model.Project, a *Aggregator, gs GraphSummary) Document {
	doc := Document{GraphSummary: toGraphSummaryDoc(gs)}

	for _, c := range proj.Components {
		doc.Components = append(doc.Components, ComponentDoc{
			Name:       c.Name,
			Kind:       string(c.Kind),
			Driver:     c.Driver,
			Version:    c.Version,
			SourceFile: c.SourceFile,
		})
	}
	for _, app := range proj.Apps {
		doc.Apps = append(doc.Apps, AppDoc{
			ID:         app.ID,
			AppPort:    app.AppPort,
			AppDir:     app.AppDir,
			SourceFile: app.SourceFile,
		})
	}
	sortComponentDocs(doc.Components)
	sortAppDocs(doc.Apps)

	for _, f := range a.Sorted() {
		fd := toFindingDoc(f)
		switch f.Severity {
		case SeverityError:
			doc.Issues = append(doc.Issues, fd)
		case SeverityWarning:
			doc.Warnings = append(doc.Warnings, fd)
		}
	}

	return doc
}

// WriteJSON marshals a Document as indented JSON.
func WriteJSON(w io.Writer, doc Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

func toFindingDoc(f Finding) FindingDoc {
	return FindingDoc{
		Severity:  string(f.Severity),
		RuleID:    f.RuleID,
		Category:  f.Category,
		Component: f.Component,
		File:      f.File,
		Line:      f.Line,
		Message:   f.Message,
		Details:   f.Details,
	}
}

func toGraphSummaryDoc(gs GraphSummary) GraphSummaryDoc {
	out := GraphSummaryDoc{
		TotalNodes:         gs.TotalNodes,
		TotalEdges:         gs.TotalEdges,
		IsolatedComponents: gs.IsolatedComponents,
	}
	for _, n := range gs.MostConnected {
		out.MostConnected = append(out.MostConnected, ConnectedNodeDoc{Name: n.Name, Connections: n.Connections})
	}
	return out
}

func sortComponentDocs(cs []ComponentDoc) {
	sort.Slice(cs, func(i, j int) bool { return cs[i].Name < cs[j].Name })
}

func sortAppDocs(as []AppDoc) {
	sort.Slice(as, func(i, j int) bool { return as[i].ID < as[j].ID })
}
