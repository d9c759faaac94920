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

package rules

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/meshlint/meshlint/internal/model"
	"github.com/meshlint/meshlint/internal/report"
)

// Run applies every rule in All to every component in the project. Rules
// read disjoint components, so each component gets its own errgroup
// goroutine and a semaphore lets at most runtime.GOMAXPROCS(0) of them run
// rules at once — no findings ordering is assumed here; the caller sorts
// before emission.
func Run(ctx context.Context, proj *model.Project) ([]report.Finding, error) {
	components := make([]*model.Component, 0, len(proj.Components))
	for _, c := range proj.Components {
		components = append(components, c)
	}

	results := make([][]report.Finding, len(components))

	g, ctx := errgroup.WithContext(ctx)
	sem := make(chan struct{}, runtime.GOMAXPROCS(0))

	for i, c := range components {
		i, c := i, c
		g.Go(func() error {
			select {
			case sem <- struct{}{}:
			case <-ctx.Done():
				return ctx.Err()
			}
			defer func() { <-sem }()

			var findings []report.Finding
			for _, rule := range All {
				findings = append(findings, rule.Apply(c)...)
			}
			results[i] = findings
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []report.Finding
	for _, r := range results {
		all = append(all, r...)
	}
	return all, nil
}
