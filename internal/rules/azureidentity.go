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
	"github.com/meshlint/meshlint/internal/model"
	"github.com/meshlint/meshlint/internal/report"
)

// azureNativeDrivers is the closed set of Azure-native driver types this
// rule inspects for managed-identity coherence.
var azureNativeDrivers = map[string]bool{
	"state.azure.cosmosdb":           true,
	"state.azure.tablestorage":       true,
	"state.azure.blobstorage":        true,
	"pubsub.azure.servicebus.topics": true,
	"pubsub.azure.servicebus.queues": true,
	"pubsub.azure.eventhubs":         true,
	"bindings.azure.blobstorage":     true,
	"bindings.azure.eventgrid":       true,
	"bindings.azure.eventhubs":       true,
	"bindings.azure.signalr":         true,
	"bindings.azure.queues":          true,
	"secretstores.azure.keyvault":    true,
}

var azureSecretFields = []string{"connectionString", "accountKey", "masterKey"}

// CheckAzureIdentity flags Azure-native components that mix a managed
// identity (azureClientId) with a connection secret — ambiguous which
// credential is actually used — and recommends managed identity when only
// a connection secret is present.
func CheckAzureIdentity(c *model.Component) []report.Finding {
	if !azureNativeDrivers[c.Driver] {
		return nil
	}

	_, hasClientID := c.Metadata("azureClientId")

	var hasSecret bool
	for _, f := range azureSecretFields {
		if _, ok := c.Metadata(f); ok {
			hasSecret = true
			break
		}
	}

	switch {
	case hasClientID && hasSecret:
		return []report.Finding{{
			Severity:  report.SeverityWarning,
			RuleID:    "R-AZURE-IDENTITY",
			Category:  "ambiguous_credential",
			Component: c.Name,
			File:      c.SourceFile,
			Line:      uint(c.Pos.Line),
			Message:   "component '" + c.Name + "' sets both azureClientId and a connection secret; it's ambiguous which credential is used",
		}}
	case hasSecret:
		return []report.Finding{{
			Severity:  report.SeverityInfo,
			RuleID:    "R-AZURE-IDENTITY",
			Category:  "managed_identity_recommended",
			Component: c.Name,
			File:      c.SourceFile,
			Line:      uint(c.Pos.Line),
			Message:   "component '" + c.Name + "' authenticates with a connection secret; consider azureClientId managed identity instead",
		}}
	default:
		return nil
	}
}
