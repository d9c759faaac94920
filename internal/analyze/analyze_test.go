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

package analyze

import (
	"os"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meshlint/meshlint/internal/graph"
	"github.com/meshlint/meshlint/internal/meshconfig"
	"github.com/meshlint/meshlint/internal/model"
)

func TestCheckCycles(t *testing.T) {
	g := graph.New()
	g.AddNode("a")
	g.AddNode("b")
	g.AddEdge("a", "b", graph.EdgeSecretRef)
	g.AddEdge("b", "a", graph.EdgeSecretRef)

	findings := CheckCycles(g)
	require.Len(t, findings, 1)
	assert.Equal(t, "circular_dependency", findings[0].Category)
}

func TestCheckSecretRefs(t *testing.T) {
	proj := model.NewProject()
	proj.Components["orders-state"] = &model.Component{Name: "orders-state", SourceFile: "components/orders.yaml"}

	pending := []graph.PendingEdge{{From: "orders-state", Field: "secretKeyRef", To: "missing-store"}}
	findings := CheckSecretRefs(proj, pending)
	require.Len(t, findings, 1)
	assert.Contains(t, findings[0].Message, "missing-store")
	assert.Contains(t, findings[0].Message, "no secretstore components")
}

func TestCheckSecretRefsWrongComponentKind(t *testing.T) {
	proj := model.NewProject()
	proj.Components["orders-state"] = &model.Component{Name: "orders-state", SourceFile: "components/orders.yaml"}
	proj.Components["payments-state"] = &model.Component{Name: "payments-state", Kind: model.KindState}

	pending := []graph.PendingEdge{{From: "orders-state", Field: "secretKeyRef", To: "payments-state"}}
	findings := CheckSecretRefs(proj, pending)
	require.Len(t, findings, 1, "a reference to a known but non-secretstore component must still be flagged")
	assert.Contains(t, findings[0].Message, "payments-state")
	assert.Contains(t, findings[0].Message, "not a secretstore")
}

func TestCheckScopesSkippedWithoutApps(t *testing.T) {
	proj := model.NewProject()
	c := &model.Component{Name: "x", Scopes: map[string]struct{}{"unknown-app": {}}}
	proj.Components["x"] = c

	assert.Empty(t, CheckScopes(proj), "scopes cannot be validated with zero apps, so the rule is skipped")
}

func TestCheckScopesFlagsUnknown(t *testing.T) {
	proj := model.NewProject()
	proj.Apps["orders"] = &model.App{ID: "orders"}
	proj.Components["x"] = &model.Component{Name: "x", Scopes: map[string]struct{}{"orders": {}, "ghost": {}}}

	findings := CheckScopes(proj)
	require.Len(t, findings, 1)
	assert.Contains(t, findings[0].Message, "ghost")
}

func TestCheckChainDepth(t *testing.T) {
	proj := model.NewProject()
	g := graph.New()
	for _, n := range []string{"a", "b", "c", "d", "e"} {
		g.AddNode(n)
		proj.Components[n] = &model.Component{Name: n}
	}
	g.AddEdge("a", "b", graph.EdgeSecretRef)
	g.AddEdge("b", "c", graph.EdgeSecretRef)
	g.AddEdge("c", "d", graph.EdgeSecretRef)
	g.AddEdge("d", "e", graph.EdgeSecretRef)

	findings := CheckChainDepth(proj, g)
	require.Len(t, findings, 2, "a (depth 5) and b (depth 4) exceed the threshold of 3")
	assert.Equal(t, "a", findings[0].Component)
	assert.Equal(t, "b", findings[1].Component)
}

func TestCheckPorts(t *testing.T) {
	port := func(p uint16) *uint16 { return &p }

	proj := model.NewProject()
	proj.Apps["orders"] = &model.App{ID: "orders", AppPort: port(8080)}
	proj.Apps["payments"] = &model.App{ID: "payments", AppPort: port(8080)}
	proj.Apps["catalog"] = &model.App{ID: "catalog", AppPort: port(9090)}

	findings := CheckPorts(proj)

	var conflicts, reserved int
	for _, f := range findings {
		switch f.Category {
		case "port_conflict":
			conflicts++
		case "reserved_port":
			reserved++
		}
	}
	assert.Equal(t, 2, conflicts, "both apps sharing 8080 get a conflict finding")
	assert.Equal(t, 3, reserved, "8080 (claimed by two apps) and 9090 are in the reserved set")
}

func TestCheckQuota(t *testing.T) {
	proj := model.NewProject()
	proj.Apps["orders"] = &model.App{
		ID:        "orders",
		Resources: &model.ResourceRequest{CPU: 10, Memory: 64 << 30},
		Scale:     &model.ScaleSpec{MaxReplicas: 5000},
	}

	findings := CheckQuota(proj, meshconfig.TargetContainerApps)
	var categories []string
	for _, f := range findings {
		categories = append(categories, f.Category)
	}
	assert.Contains(t, categories, "cpu_quota_exceeded")
	assert.Contains(t, categories, "memory_quota_exceeded")
	assert.Contains(t, categories, "replica_quota_exceeded")
}

func TestCheckMTLS(t *testing.T) {
	t.Run("AbsentInProduction", func(t *testing.T) {
		proj := model.NewProject()
		findings := CheckMTLS(proj, true)
		require.Len(t, findings, 1)
		assert.Equal(t, "mtls_absent", findings[0].Category)
	})

	t.Run("AbsentOutsideProduction", func(t *testing.T) {
		proj := model.NewProject()
		assert.Empty(t, CheckMTLS(proj, false))
	})

	t.Run("DisabledInProduction", func(t *testing.T) {
		proj := model.NewProject()
		proj.Configuration = &model.ConfigurationResource{Name: "mesh", MTLSEnabled: false}
		findings := CheckMTLS(proj, true)
		require.Len(t, findings, 1)
		assert.Equal(t, "mtls_disabled", findings[0].Category)
	})
}

func TestCheckServiceInvoke(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/proj/orders/app.py", []byte(`invoke("payments")
invoke('ghost-service')
`), os.ModePerm))

	proj := model.NewProject()
	proj.Apps["orders"] = &model.App{ID: "orders", AppDir: "orders"}
	proj.Apps["payments"] = &model.App{ID: "payments"}

	findings := CheckServiceInvoke(fs, "/proj", proj)
	require.Len(t, findings, 1, "payments is a known app id, ghost-service is not")
	assert.Contains(t, findings[0].Message, "ghost-service")
}
