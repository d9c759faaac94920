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
	"fmt"
	"io"
	"sort"

	"github.com/pterm/pterm"

	"github.com/meshlint/meshlint/internal/graph"
)

// Summary is the header/counts data the human and JSON renderers both need,
// gathered by the caller after the A-F pipeline finishes.
type Summary struct {
	Path           string
	ComponentCount int
	AppCount       int
}

// GraphSummary is the top-5-most-connected / isolated-components view of
// the dependency graph.
type GraphSummary struct {
	TotalNodes         int
	TotalEdges         int
	MostConnected      []ConnectedNode
	IsolatedComponents []string
}

// ConnectedNode names one entry of the top-5-by-degree list.
type ConnectedNode struct {
	Name        string
	Connections int
}

// BuildGraphSummary derives a GraphSummary from a built dependency Graph.
func BuildGraphSummary(g *graph.Graph) GraphSummary {
	nodes := g.Nodes()
	summary := GraphSummary{TotalNodes: len(nodes), TotalEdges: g.TotalEdges()}

	connected := make([]ConnectedNode, 0, len(nodes))
	for _, n := range nodes {
		d := g.Degree(n)
		if d == 0 {
			summary.IsolatedComponents = append(summary.IsolatedComponents, n)
			continue
		}
		connected = append(connected, ConnectedNode{Name: n, Connections: d})
	}

	sort.SliceStable(connected, func(i, j int) bool {
		if connected[i].Connections != connected[j].Connections {
			return connected[i].Connections > connected[j].Connections
		}
		return connected[i].Name < connected[j].Name
	})
	if len(connected) > 5 {
		connected = connected[:5]
	}
	summary.MostConnected = connected

	return summary
}

// WriteHuman renders findings in human-readable form: a header, one section
// per severity in the order Errors/Warnings/Info, then a graph summary.
func WriteHuman(w io.Writer, summary Summary, a *Aggregator, gs GraphSummary) {
	pterm.DefaultBasicText.WithWriter(w).Printfln(
		"meshlint: scanned %s (%d components, %d apps)",
		summary.Path, summary.ComponentCount, summary.AppCount)

	errs, warnings, infos := a.BySeverity()
	writeSection(w, "Errors", errs)
	writeSection(w, "Warnings", warnings)
	writeSection(w, "Info", infos)

	text := pterm.DefaultBasicText.WithWriter(w)
	text.Printfln("")
	text.Printfln("Graph: %d components, %d edges", gs.TotalNodes, gs.TotalEdges)
	if len(gs.MostConnected) > 0 {
		text.Printfln("Most connected:")
		for _, n := range gs.MostConnected {
			text.Printfln("  %s (%d)", n.Name, n.Connections)
		}
	}
	if len(gs.IsolatedComponents) > 0 {
		text.Printfln("Isolated: %v", gs.IsolatedComponents)
	}
}

func writeSection(w io.Writer, title string, findings []Finding) {
	text := pterm.DefaultBasicText.WithWriter(w)
	text.Printfln("")
	text.Printfln("%s (%d)", title, len(findings))
	for _, f := range findings {
		text.Printfln("  %s", formatLine(f))
	}
}

func formatLine(f Finding) string {
	line := fmt.Sprintf("[%s]", marker(f.Severity))
	if f.Component != "" {
		line += " " + f.Component
	}
	if f.File != "" {
		if f.Line > 0 {
			line += fmt.Sprintf(" (%s:%d)", f.File, f.Line)
		} else {
			line += fmt.Sprintf(" (%s)", f.File)
		}
	}
	return line + ": " + f.Message
}

func marker(s Severity) string {
	switch s {
	case SeverityError:
		return "ERROR"
	case SeverityWarning:
		return "WARN"
	default:
		return "INFO"
	}
}
