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

package lint

import (
	"context"
	"os"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meshlint/meshlint/internal/logging"
	"github.com/meshlint/meshlint/internal/meshconfig"
)

func writeFixture(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	for path, contents := range files {
		require.NoError(t, afero.WriteFile(fs, "/proj/"+path, []byte(contents), os.ModePerm))
	}
	return fs
}

func TestRunEndToEnd(t *testing.T) {
	fs := writeFixture(t, map[string]string{
		"dapr.yaml": `apps:
  - appId: orders
    appPort: 8080
  - appId: payments
    appPort: 8080
`,
		"components/orders-state.yaml": `apiVersion: dapr.io/v1alpha1
kind: Component
metadata:
  name: orders-state
spec:
  type: state.redis
  version: v1
  metadata:
    - name: redisPassword
      secretKeyRef:
        name: missing-store
        key: password
`,
	})

	cfg := meshconfig.RunConfig{Path: "/proj"}
	result, err := Run(context.Background(), fs, cfg, logging.NewNop())
	require.NoError(t, err)

	require.Len(t, result.Project.Apps, 2)
	require.Len(t, result.Project.Components, 1)

	var categories []string
	for _, f := range result.Aggregator.Sorted() {
		categories = append(categories, f.Category)
	}
	assert.Contains(t, categories, "port_conflict", "both apps share appPort 8080")
	assert.Contains(t, categories, "missing_secret_store", "orders-state references a secret store that doesn't exist")

	assert.Equal(t, 1, result.GraphSummary.TotalNodes)
}

func TestRunExitCodePropagatesStrictness(t *testing.T) {
	fs := writeFixture(t, map[string]string{
		"dapr.yaml": "apps: []",
	})

	cfg := meshconfig.RunConfig{Path: "/proj", Production: true, Strict: true}
	result, err := Run(context.Background(), fs, cfg, logging.NewNop())
	require.NoError(t, err)

	assert.Equal(t, 0, result.Aggregator.ExitCode(true, false), "mtls_absent is a warning, not an error")
	assert.Equal(t, 1, result.Aggregator.ExitCode(true, true), "warnings-as-errors promotes it in strict mode")
}
