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

// Package analyze implements the Cross-File Analyzer: rules that need the
// whole project and its dependency graph rather than a single component.
package analyze

import (
	"github.com/spf13/afero"

	"github.com/meshlint/meshlint/internal/graph"
	"github.com/meshlint/meshlint/internal/meshconfig"
	"github.com/meshlint/meshlint/internal/model"
	"github.com/meshlint/meshlint/internal/report"
)

// Run executes every cross-file rule in a fixed order (X-CYCLE,
// X-SECRET-REF, X-SCOPE, X-SERVICE-INVOKE, X-CHAIN-DEPTH, X-PORT,
// X-QUOTA, X-MTLS) and returns the combined findings.
func Run(fs afero.Fs, root string, proj *model.Project, g *graph.Graph, pending []graph.PendingEdge, cfg meshconfig.RunConfig) []report.Finding {
	var findings []report.Finding
	findings = append(findings, CheckCycles(g)...)
	findings = append(findings, CheckSecretRefs(proj, pending)...)
	findings = append(findings, CheckScopes(proj)...)
	findings = append(findings, CheckServiceInvoke(fs, root, proj)...)
	findings = append(findings, CheckChainDepth(proj, g)...)
	findings = append(findings, CheckPorts(proj)...)
	findings = append(findings, CheckQuota(proj, cfg.Target())...)
	findings = append(findings, CheckMTLS(proj, cfg.Production)...)
	return findings
}
