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
	"os"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meshlint/meshlint/internal/discovery"
	"github.com/meshlint/meshlint/internal/model"
)

func writeProject(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	for path, contents := range files {
		require.NoError(t, afero.WriteFile(fs, "/proj/"+path, []byte(contents), os.ModePerm))
	}
	return fs
}

func TestParseProjectAppManifest(t *testing.T) {
	fs := writeProject(t, map[string]string{
		"dapr.yaml": `apps:
  - appId: orders
    appPort: 8080
    appDirPath: ./orders
  - appId: payments
    daprHTTPPort: 3600
    resources:
      cpu: "500m"
      memory: "256Mi"
    scale:
      minReplicas: 1
      maxReplicas: 5
  - appPort: 9000
  - appId: orders
`,
	})
	records, _, err := discovery.Walk(fs, "/proj")
	require.NoError(t, err)

	proj, findings := ParseProject(fs, "/proj", records)

	require.Len(t, proj.Apps, 2, "two distinct appIds, missing-id and duplicate entries are rejected")
	orders := proj.Apps["orders"]
	require.NotNil(t, orders)
	assert.Equal(t, uint16(model.DefaultSidecarHTTPPort), orders.SidecarHTTPPort)
	require.NotNil(t, orders.AppPort)
	assert.Equal(t, uint16(8080), *orders.AppPort)

	payments := proj.Apps["payments"]
	require.NotNil(t, payments)
	assert.Equal(t, uint16(3600), payments.SidecarHTTPPort)
	require.NotNil(t, payments.Resources)
	assert.Equal(t, 0.5, payments.Resources.CPU)
	assert.Equal(t, int64(256*1024*1024), payments.Resources.Memory)
	require.NotNil(t, payments.Scale)
	assert.Equal(t, uint(1), payments.Scale.MinReplicas)
	assert.Equal(t, uint(5), payments.Scale.MaxReplicas)

	var categories []string
	for _, f := range findings {
		categories = append(categories, f.Category)
	}
	assert.Contains(t, categories, "missing_app_id")
	assert.Contains(t, categories, "duplicate_app_id")
}

func TestParseProjectComponent(t *testing.T) {
	fs := writeProject(t, map[string]string{
		"dapr.yaml": "apps: []",
		"components/statestore.yaml": `apiVersion: dapr.io/v1alpha1
kind: Component
metadata:
  name: orders-state
  scopes:
    - orders
spec:
  type: state.redis
  version: v1
  metadata:
    - name: redisHost
      value: "redis:6379"
    - name: redisPassword
      secretKeyRef:
        name: redis-secrets
        key: password
auth:
  secretStore: redis-secrets
`,
	})
	records, _, err := discovery.Walk(fs, "/proj")
	require.NoError(t, err)

	proj, findings := ParseProject(fs, "/proj", records)
	require.Empty(t, findings, "a well-formed component should produce no findings")

	c := proj.Components["orders-state"]
	require.NotNil(t, c)
	assert.Equal(t, model.KindState, c.Kind)
	assert.Equal(t, "state.redis", c.Driver)
	assert.Equal(t, "redis-secrets", c.AuthSecretStore)
	assert.Contains(t, c.Scopes, "orders")

	host, ok := c.Metadata("redisHost")
	require.True(t, ok)
	require.True(t, host.HasValue())
	assert.Equal(t, "redis:6379", *host.Value)

	pw, ok := c.Metadata("redisPassword")
	require.True(t, ok)
	require.True(t, pw.HasSecretRef())
	assert.Equal(t, "redis-secrets", pw.SecretRef.Store)
	assert.Equal(t, "password", pw.SecretRef.Key)
}

func TestParseProjectInvalidComponentName(t *testing.T) {
	fs := writeProject(t, map[string]string{
		"dapr.yaml": "apps: []",
		"components/bad.yaml": `apiVersion: dapr.io/v1alpha1
kind: Component
metadata:
  name: Orders_State
spec:
  type: state.redis
  version: v1
`,
	})
	records, _, err := discovery.Walk(fs, "/proj")
	require.NoError(t, err)

	proj, findings := ParseProject(fs, "/proj", records)

	c := proj.Components["Orders_State"]
	require.NotNil(t, c, "an invalid name is still registered using the raw name")

	var sawNameError bool
	for _, f := range findings {
		if f.Category == "invalid_name" {
			sawNameError = true
		}
	}
	assert.True(t, sawNameError)
}

func TestParseProjectIgnoresOtherKinds(t *testing.T) {
	fs := writeProject(t, map[string]string{
		"dapr.yaml": "apps: []",
		"components/unrelated.yaml": `apiVersion: v1
kind: ConfigMap
metadata:
  name: irrelevant
data:
  foo: bar
`,
	})
	records, _, err := discovery.Walk(fs, "/proj")
	require.NoError(t, err)

	proj, findings := ParseProject(fs, "/proj", records)
	assert.Empty(t, proj.Components)
	assert.Nil(t, proj.Configuration)
	assert.Empty(t, findings, "documents of unrecognized kind are silently dropped")
}

func TestParseProjectConfigurationResource(t *testing.T) {
	fs := writeProject(t, map[string]string{
		"dapr.yaml": "apps: []",
		"components/config.yaml": `apiVersion: dapr.io/v1alpha1
kind: Configuration
metadata:
  name: mesh-config
spec:
  mtls:
    enabled: true
    workloadCertTTL: "24h"
    allowedClockSkew: "15m"
`,
		"components/config2.yaml": `apiVersion: dapr.io/v1alpha1
kind: Configuration
metadata:
  name: second-config
spec:
  mtls:
    enabled: false
`,
	})
	records, _, err := discovery.Walk(fs, "/proj")
	require.NoError(t, err)

	proj, findings := ParseProject(fs, "/proj", records)
	require.NotNil(t, proj.Configuration)
	assert.Equal(t, "mesh-config", proj.Configuration.Name, "first Configuration resource wins")
	assert.True(t, proj.Configuration.MTLSEnabled)

	var sawDuplicate bool
	for _, f := range findings {
		if f.Category == "duplicate_configuration" {
			sawDuplicate = true
		}
	}
	assert.True(t, sawDuplicate)
}

func TestParseProjectYAMLSyntaxErrorIsWarning(t *testing.T) {
	fs := writeProject(t, map[string]string{
		"dapr.yaml":                  "apps: []",
		"components/broken.yaml":     "kind: Component\n  bad indent: [",
	})
	records, _, err := discovery.Walk(fs, "/proj")
	require.NoError(t, err)

	proj, findings := ParseProject(fs, "/proj", records)
	assert.Empty(t, proj.Components)
	require.Len(t, findings, 1)
	assert.Equal(t, "yaml_syntax_error", findings[0].Category)
	assert.Equal(t, "warning", string(findings[0].Severity))
}
