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
	"testing"

	"github.com/meshlint/meshlint/internal/model"
)

func TestBuildSecretRefEdges(t *testing.T) {
	proj := model.NewProject()
	proj.Components["orders-state"] = &model.Component{
		Name: "orders-state",
		Kind: model.KindState,
		MetadataEntries: []model.MetadataEntry{
			{Name: "redisPassword", SecretRef: &model.SecretRef{Store: "vault", Key: "password"}},
			{Name: "apiKey", SecretRef: &model.SecretRef{Store: "payments-state", Key: "key"}},
			{Name: "token", SecretRef: &model.SecretRef{Store: "missing-store", Key: "token"}},
		},
	}
	proj.Components["payments-state"] = &model.Component{Name: "payments-state", Kind: model.KindState}
	proj.Components["vault"] = &model.Component{Name: "vault", Kind: model.KindSecretStore}

	g, pending := Build(proj)

	if deps := g.Dependencies("orders-state"); len(deps) != 1 || deps[0] != "vault" {
		t.Fatalf("expected orders-state to depend only on vault, got %v", deps)
	}

	if len(pending) != 2 {
		t.Fatalf("expected 2 pending edges (known wrong-kind + unknown), got %d: %+v", len(pending), pending)
	}

	var gotMissing, gotWrongKind bool
	for _, p := range pending {
		switch p.To {
		case "missing-store":
			gotMissing = true
		case "payments-state":
			gotWrongKind = true
		}
	}
	if !gotMissing {
		t.Error("expected a pending edge for the unknown store 'missing-store'")
	}
	if !gotWrongKind {
		t.Error("expected a pending edge for 'payments-state', a known component that is not a secretstore")
	}
}
