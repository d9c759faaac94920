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
	"sort"

	"github.com/meshlint/meshlint/internal/model"
)

// PendingEdge is a secret-ref or auth-store reference from a component to
// a store name that does not resolve to a registered secretstore
// component — either because no component by that name exists, or
// because it exists but is classified as something else. It is not added
// to the Graph; it is handed to the cross-file analyzer so X-SECRET-REF
// can report it.
type PendingEdge struct {
	From  string
	Field string // "secretKeyRef" or "auth.secretStore"
	To    string
}

// Build constructs the dependency graph from a parsed Project: one node
// per component, secret-ref edges from metadata entries, auth-store edges
// from a component's explicit auth secret store. An edge is only added
// when its target is a registered secretstore component; every other
// reference (unknown target, or a target classified as something else)
// is returned as a pending edge instead.
func Build(p *model.Project) (*Graph, []PendingEdge) {
	g := New()
	for name := range p.Components {
		g.AddNode(name)
	}

	var pending []PendingEdge

	names := make([]string, 0, len(p.Components))
	for name := range p.Components {
		names = append(names, name)
	}
	sort.Strings(names)

	resolvesToSecretStore := func(store string) bool {
		target, ok := p.Components[store]
		return ok && target.IsSecretStore()
	}

	for _, name := range names {
		c := p.Components[name]
		for _, m := range c.MetadataEntries {
			if !m.HasSecretRef() {
				continue
			}
			store := m.SecretRef.Store
			if store == c.Name {
				continue
			}
			if resolvesToSecretStore(store) {
				g.AddEdge(c.Name, store, EdgeSecretRef)
			} else {
				pending = append(pending, PendingEdge{From: c.Name, Field: "secretKeyRef", To: store})
			}
		}
		if c.AuthSecretStore != "" && c.AuthSecretStore != c.Name {
			if resolvesToSecretStore(c.AuthSecretStore) {
				g.AddEdge(c.Name, c.AuthSecretStore, EdgeAuthStore)
			} else {
				pending = append(pending, PendingEdge{From: c.Name, Field: "auth.secretStore", To: c.AuthSecretStore})
			}
		}
	}

	return g, pending
}
