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
	"strconv"

	"github.com/meshlint/meshlint/internal/model"
	"github.com/meshlint/meshlint/internal/report"
)

// reservedPorts is the closed set of ports that are reserved platform-wide.
// 3500 and 50001 are only flagged when an app explicitly claims them as its
// appPort — not when they're left at the sidecar defaults.
var reservedPorts = map[uint16]bool{
	3500:  true,
	50001: true,
	9090:  true,
	8080:  true,
	8443:  true,
}

// CheckPorts reports appPort collisions between apps, and appPorts that
// collide with the closed reserved-ports set.
func CheckPorts(proj *model.Project) []report.Finding {
	byPort := map[uint16][]string{}

	ids := make([]string, 0, len(proj.Apps))
	for id := range proj.Apps {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var findings []report.Finding
	for _, id := range ids {
		app := proj.Apps[id]
		if app.AppPort == nil {
			continue
		}
		port := *app.AppPort
		byPort[port] = append(byPort[port], id)

		if reservedPorts[port] {
			findings = append(findings, report.Finding{
				Severity:  report.SeverityWarning,
				RuleID:    "X-PORT",
				Category:  "reserved_port",
				Component: id,
				File:      app.SourceFile,
				Line:      uint(app.Pos.Line),
				Message:   "app '" + id + "' claims reserved port " + strconv.Itoa(int(port)),
			})
		}
	}

	ports := make([]uint16, 0, len(byPort))
	for port := range byPort {
		ports = append(ports, port)
	}
	sort.Slice(ports, func(i, j int) bool { return ports[i] < ports[j] })

	for _, port := range ports {
		claimants := byPort[port]
		if len(claimants) <= 1 {
			continue
		}
		sort.Strings(claimants)
		for _, id := range claimants {
			app := proj.Apps[id]
			findings = append(findings, report.Finding{
				Severity:  report.SeverityError,
				RuleID:    "X-PORT",
				Category:  "port_conflict",
				Component: id,
				File:      app.SourceFile,
				Line:      uint(app.Pos.Line),
				Message:   "app '" + id + "' claims appPort " + strconv.Itoa(int(port)) + ", shared with " + strconv.Itoa(len(claimants)-1) + " other app(s)",
				Details:   map[string]any{"port": port, "apps": claimants},
			})
		}
	}

	return findings
}
