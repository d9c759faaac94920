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

// Package main is the meshlint CLI entrypoint.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/pterm/pterm"
	"github.com/spf13/afero"
	"github.com/willabides/kongplete"

	"github.com/meshlint/meshlint/internal/lint"
	"github.com/meshlint/meshlint/internal/logging"
	"github.com/meshlint/meshlint/internal/meshconfig"
	"github.com/meshlint/meshlint/internal/report"
	"github.com/meshlint/meshlint/internal/version"
)

// exitCLIOrRoot is returned for unparseable CLI input or an inaccessible
// root path. Aggregator.ExitCode separately yields 0 or 1 for the
// strict/warnings-as-errors findings threshold.
const exitCLIOrRoot = 2

type versionFlag bool

func (v versionFlag) BeforeApply(ctx *kong.Context) error { //nolint:unparam
	fmt.Fprintln(ctx.Stdout, "meshlint "+version.GetVersion())
	ctx.Exit(0)
	return nil
}

type cli struct {
	Path             string      `arg:"" optional:"" name:"path" help:"Root directory to scan. Defaults to the current directory." default:"."`
	PathFlag         string      `name:"path" short:"p" help:"Root directory to scan (overrides the positional argument)."`
	JSON             bool        `name:"json" help:"Emit findings as a single JSON document instead of human-readable text."`
	Strict           bool        `name:"strict" help:"Exit 1 if any error-severity finding is present."`
	WarningsAsErrors bool        `name:"warnings-as-errors" help:"In strict mode, also exit 1 if any warning-severity finding is present."`
	DeploymentTarget string      `name:"deployment-target" enum:"container-apps,kubernetes" default:"container-apps" help:"Platform whose static resource quotas X-QUOTA checks against."`
	Production       bool        `name:"production" help:"Treat this run as a production deployment for X-MTLS."`
	LogLevel         string      `name:"log-level" enum:"info,debug" default:"info" help:"Logging verbosity for stage-transition diagnostics."`
	Version          versionFlag `short:"v" name:"version" help:"Print version and exit."`

	InstallCompletions kongplete.InstallCompletions `cmd:"" help:"Install shell completions."`
}

func main() {
	c := cli{}

	parser := kong.Must(&c,
		kong.Name("meshlint"),
		kong.Description("Static cross-file validator for service-mesh sidecar configuration."),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}))

	kongplete.Complete(parser)

	kongCtx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	if kongCtx.Selected() != nil {
		kongCtx.FatalIfErrorf(kongCtx.Run())
		return
	}

	os.Exit(run(&c))
}

func run(c *cli) int {
	path := c.Path
	if c.PathFlag != "" {
		path = c.PathFlag
	}

	if _, err := os.Stat(path); err != nil {
		fmt.Fprintln(os.Stderr, "meshlint: cannot access path:", err)
		return exitCLIOrRoot
	}

	if c.JSON {
		pterm.DisableStyling()
	}

	log := logging.NewNop()
	if c.LogLevel == "debug" {
		log = logging.New(true)
	}

	cfg := meshconfig.RunConfig{
		Path:             path,
		JSON:             c.JSON,
		Strict:           c.Strict,
		WarningsAsErrors: c.WarningsAsErrors,
		DeploymentTarget: meshconfig.DeploymentTarget(c.DeploymentTarget),
		Production:       c.Production,
	}

	result, err := lint.Run(context.Background(), afero.NewOsFs(), cfg, log)
	if err != nil {
		fmt.Fprintln(os.Stderr, "meshlint:", err)
		return exitCLIOrRoot
	}

	if c.JSON {
		doc := report.BuildDocument(result.Project, result.Aggregator, result.GraphSummary)
		if err := report.WriteJSON(os.Stdout, doc); err != nil {
			fmt.Fprintln(os.Stderr, "meshlint: failed to emit JSON:", err)
			return exitCLIOrRoot
		}
	} else {
		summary := report.Summary{
			Path:           result.Root,
			ComponentCount: len(result.Project.Components),
			AppCount:       len(result.Project.Apps),
		}
		report.WriteHuman(os.Stdout, summary, result.Aggregator, result.GraphSummary)
	}

	return result.Aggregator.ExitCode(c.Strict, c.WarningsAsErrors)
}
