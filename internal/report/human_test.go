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
	"bytes"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meshlint/meshlint/internal/graph"
)

func TestBuildGraphSummary(t *testing.T) {
	g := graph.New()
	for _, n := range []string{"a", "b", "c", "isolated"} {
		g.AddNode(n)
	}
	g.AddEdge("a", "b", graph.EdgeSecretRef)
	g.AddEdge("b", "c", graph.EdgeSecretRef)
	g.AddEdge("a", "c", graph.EdgeAuthStore)

	gs := BuildGraphSummary(g)

	assert.Equal(t, 4, gs.TotalNodes)
	assert.Equal(t, 3, gs.TotalEdges)
	assert.Equal(t, []string{"isolated"}, gs.IsolatedComponents)
	require.NotEmpty(t, gs.MostConnected)
	assert.Equal(t, "a", gs.MostConnected[0].Name, "a has degree 2 (two outgoing edges), tied for highest")
}

func TestBuildGraphSummaryTopFive(t *testing.T) {
	g := graph.New()
	names := []string{"a", "b", "c", "d", "e", "f", "g"}
	for _, n := range names {
		g.AddNode(n)
	}
	for i := 0; i < len(names)-1; i++ {
		g.AddEdge(names[i], names[i+1], graph.EdgeSecretRef)
	}

	gs := BuildGraphSummary(g)
	assert.Len(t, gs.MostConnected, 5, "only the top 5 by combined degree are kept")
}

func TestWriteHuman(t *testing.T) {
	pterm.DisableStyling()
	defer pterm.EnableStyling()

	a := NewAggregator()
	a.Add(Finding{Severity: SeverityError, RuleID: "R-NAME", Category: "invalid_name", Component: "my_store", Message: "name must match ^[a-z][a-z0-9-]*$"})
	a.Add(Finding{Severity: SeverityWarning, RuleID: "R-SCHEMA", Category: "missing_version", Component: "cache", File: "components/cache.yaml", Line: 3, Message: "version is not set"})

	g := graph.New()
	g.AddNode("my_store")
	g.AddNode("cache")
	gs := BuildGraphSummary(g)

	var buf bytes.Buffer
	WriteHuman(&buf, Summary{Path: "/srv/app", ComponentCount: 2, AppCount: 0}, a, gs)

	out := buf.String()
	assert.Contains(t, out, "/srv/app")
	assert.Contains(t, out, "2 components")
	assert.Contains(t, out, "Errors (1)")
	assert.Contains(t, out, "Warnings (1)")
	assert.Contains(t, out, "my_store")
	assert.Contains(t, out, "components/cache.yaml:3")
	assert.Contains(t, out, "Isolated")
}
