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

package graph

import (
	"reflect"
	"testing"
)

func buildSimple(edges map[string][]string) *Graph {
	g := New()
	for from, tos := range edges {
		g.AddNode(from)
		for _, to := range tos {
			g.AddNode(to)
		}
	}
	for from, tos := range edges {
		for _, to := range tos {
			g.AddEdge(from, to, EdgeSecretRef)
		}
	}
	return g
}

func TestCycles(t *testing.T) {
	cases := map[string]struct {
		reason string
		edges  map[string][]string
		want   int // number of cycles found
	}{
		"NoCycle": {
			reason: "A DAG has no cycles.",
			edges:  map[string][]string{"a": {"b"}, "b": {"c"}},
			want:   0,
		},
		"TwoNodeCycle": {
			reason: "vault-a <-> vault-b is a length-2 cycle.",
			edges:  map[string][]string{"vault-a": {"vault-b"}, "vault-b": {"vault-a"}},
			want:   1,
		},
		"OverlappingCycles": {
			reason: "A length-2 and a length-3 cycle sharing a node must both be reported.",
			edges: map[string][]string{
				"a": {"b"},
				"b": {"a", "c"},
				"c": {"a"},
			},
			want: 2,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			g := buildSimple(tc.edges)
			got := g.Cycles()
			if len(got) != tc.want {
				t.Fatalf("%s: Cycles() returned %d cycles, want %d (%v)", tc.reason, len(got), tc.want, got)
			}
		})
	}
}

func TestChainDepth(t *testing.T) {
	g := buildSimple(map[string][]string{
		"a": {"b"},
		"b": {"c"},
		"c": {"d"},
	})
	cache := map[string]int{}
	if got := g.ChainDepth("a", cache); got != 4 {
		t.Fatalf("ChainDepth(a) = %d, want 4", got)
	}
	if got := g.ChainDepth("d", cache); got != 1 {
		t.Fatalf("ChainDepth(d) = %d, want 1", got)
	}
}

func TestDependenciesAndDependents(t *testing.T) {
	g := buildSimple(map[string][]string{
		"a": {"b", "c"},
		"b": {"c"},
	})
	if got := g.Dependencies("a"); !reflect.DeepEqual(got, []string{"b", "c"}) {
		t.Fatalf("Dependencies(a) = %v", got)
	}
	if got := g.Dependents("c"); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("Dependents(c) = %v", got)
	}
}
