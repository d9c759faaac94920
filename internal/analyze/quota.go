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
	"sort"

	"github.com/meshlint/meshlint/internal/meshconfig"
	"github.com/meshlint/meshlint/internal/model"
	"github.com/meshlint/meshlint/internal/report"
)

// platformLimits is a closed, static per-platform ceiling table. These are
// fixed numeric limits, not live cluster introspection — X-QUOTA stays
// within the pure-static-analysis scope by never dialing a real platform.
type platformLimits struct {
	cpuMax        float64
	memoryMaxB    int64
	maxReplicas   uint
}

const gib = 1 << 30

var limitsByTarget = map[meshconfig.DeploymentTarget]platformLimits{
	meshconfig.TargetContainerApps: {cpuMax: 4.0, memoryMaxB: 8 * gib, maxReplicas: 300},
	meshconfig.TargetKubernetes:    {cpuMax: 8.0, memoryMaxB: 32 * gib, maxReplicas: 1000},
}

// CheckQuota reports apps whose requested resources or replica bounds
// exceed the selected platform's static ceilings.
func CheckQuota(proj *model.Project, target meshconfig.DeploymentTarget) []report.Finding {
	limits, ok := limitsByTarget[target]
	if !ok {
		limits = limitsByTarget[meshconfig.TargetContainerApps]
	}

	ids := make([]string, 0, len(proj.Apps))
	for id := range proj.Apps {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var findings []report.Finding
	for _, id := range ids {
		app := proj.Apps[id]

		if app.Resources != nil {
			if app.Resources.CPU > limits.cpuMax {
				findings = append(findings, quotaFinding(app, id, "cpu_quota_exceeded",
					"app '"+id+"' requests more CPU than the "+string(target)+" platform allows"))
			}
			if app.Resources.Memory > limits.memoryMaxB {
				findings = append(findings, quotaFinding(app, id, "memory_quota_exceeded",
					"app '"+id+"' requests more memory than the "+string(target)+" platform allows"))
			}
		}

		if app.Scale != nil && app.Scale.MaxReplicas > limits.maxReplicas {
			findings = append(findings, quotaFinding(app, id, "replica_quota_exceeded",
				"app '"+id+"' requests more max replicas than the "+string(target)+" platform allows"))
		}
	}
	return findings
}

func quotaFinding(app *model.App, id, category, message string) report.Finding {
	return report.Finding{
		Severity:  report.SeverityError,
		RuleID:    "X-QUOTA",
		Category:  category,
		Component: id,
		File:      app.SourceFile,
		Line:      uint(app.Pos.Line),
		Message:   message,
	}
}
