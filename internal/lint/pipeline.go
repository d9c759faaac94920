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

// Package lint wires the discovery, parse, rule engine, graph, and
// cross-file analyzer stages into the single pipeline the CLI drives.
package lint

import (
	"context"

	"github.com/crossplane/crossplane-runtime/pkg/errors"
	"github.com/spf13/afero"

	"github.com/meshlint/meshlint/internal/analyze"
	"github.com/meshlint/meshlint/internal/discovery"
	"github.com/meshlint/meshlint/internal/graph"
	"github.com/meshlint/meshlint/internal/logging"
	"github.com/meshlint/meshlint/internal/meshconfig"
	"github.com/meshlint/meshlint/internal/model"
	"github.com/meshlint/meshlint/internal/parse"
	"github.com/meshlint/meshlint/internal/report"
	"github.com/meshlint/meshlint/internal/rules"
)

const (
	errWalk       = "while walking root"
	errRuleEngine = "while running component rules"
)

// Result is everything the CLI needs to render output and compute an exit
// code after a run.
type Result struct {
	Root         string
	Project      *model.Project
	Aggregator   *report.Aggregator
	GraphSummary report.GraphSummary
}

// Run executes discovery -> parse -> rules -> graph -> cross-file analysis
// against fs, starting from cfg.Path, and returns the combined findings.
func Run(ctx context.Context, fs afero.Fs, cfg meshconfig.RunConfig, log logging.Logger) (*Result, error) {
	a := report.NewAggregator()

	root := discovery.FindConfigRoot(fs, cfg.Path)
	log.Debug("resolved configuration root", "root", root)

	records, findings, err := discovery.Walk(fs, root)
	if err != nil {
		return nil, errors.Wrap(err, errWalk)
	}
	a.Add(findings...)
	log.Debug("discovery complete", "files", len(records))

	proj, findings := parse.ParseProject(fs, root, records)
	a.Add(findings...)
	log.Debug("parse complete", "components", len(proj.Components), "apps", len(proj.Apps))

	findings, err = rules.Run(ctx, proj)
	if err != nil {
		return nil, errors.Wrap(err, errRuleEngine)
	}
	a.Add(findings...)
	log.Debug("rule engine complete", "findings", len(findings))

	g, pending := graph.Build(proj)
	log.Debug("graph built", "nodes", len(g.Nodes()), "pending_edges", len(pending))

	a.Add(analyze.Run(fs, root, proj, g, pending, cfg)...)
	log.Debug("cross-file analysis complete")

	return &Result{
		Root:         root,
		Project:      proj,
		Aggregator:   a,
		GraphSummary: report.BuildGraphSummary(g),
	}, nil
}
