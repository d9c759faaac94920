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

// Package rules implements the per-component Rule Engine: a fixed, ordered
// set of checks that each inspect a single model.Component in isolation.
// Cross-file checks (those that need the whole project or the dependency
// graph) live in internal/analyze instead.
package rules

import (
	"github.com/meshlint/meshlint/internal/model"
	"github.com/meshlint/meshlint/internal/report"
)

// Rule is one named, independently-runnable check. Apply must not mutate
// the component it inspects.
type Rule struct {
	ID    string
	Apply func(*model.Component) []report.Finding
}

// All is the fixed, ordered set of component rules, in the order their
// findings should be reported (R-NAME, R-SCHEMA, ...).
var All = []Rule{
	{ID: "R-NAME", Apply: CheckName},
	{ID: "R-SCHEMA", Apply: CheckSchema},
	{ID: "R-SECRET-LEAK", Apply: CheckSecretLeak},
	{ID: "R-HTTPS", Apply: CheckHTTPS},
	{ID: "R-RATELIMIT", Apply: CheckRateLimit},
	{ID: "R-OPA", Apply: CheckOPA},
	{ID: "R-BEARER", Apply: CheckBearer},
	{ID: "R-RESILIENCY", Apply: CheckResiliency},
	{ID: "R-AZURE-IDENTITY", Apply: CheckAzureIdentity},
}
