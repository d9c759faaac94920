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

package model

import (
	"sort"
	"strings"
)

// ComponentKind is the broad category a Component's driver belongs to,
// derived from the dotted prefix of its spec.type.
type ComponentKind string

// Supported component kinds.
const (
	KindState          ComponentKind = "state"
	KindPubSub         ComponentKind = "pubsub"
	KindSecretStore    ComponentKind = "secretstore"
	KindBindingInput   ComponentKind = "binding_input"
	KindBindingOutput  ComponentKind = "binding_output"
	KindMiddleware     ComponentKind = "middleware"
	KindConfiguration  ComponentKind = "configuration"
	KindCrypto         ComponentKind = "crypto"
	KindLock           ComponentKind = "lock"
	KindWorkflow       ComponentKind = "workflow"
	KindConversation   ComponentKind = "conversation"
	KindOther          ComponentKind = "other"
)

// ClassifyDriver derives a ComponentKind from the dotted prefix of a
// component's spec.type (e.g. "state.redis" -> KindState). Bindings default
// to KindBindingOutput; callers that know the file lives under a
// bindings-input convention may override.
func ClassifyDriver(driver string) ComponentKind {
	prefix, _, _ := strings.Cut(driver, ".")
	switch prefix {
	case "state":
		return KindState
	case "pubsub":
		return KindPubSub
	case "secretstores":
		return KindSecretStore
	case "bindings":
		return KindBindingOutput
	case "middleware":
		return KindMiddleware
	case "configuration":
		return KindConfiguration
	case "crypto":
		return KindCrypto
	case "lock":
		return KindLock
	case "workflows":
		return KindWorkflow
	case "conversation":
		return KindConversation
	default:
		return KindOther
	}
}

// Component is a typed external resource declared by a component YAML
// document: a state store, pub/sub broker, secret store, binding, or
// middleware policy.
type Component struct {
	Name            string
	Kind            ComponentKind
	Driver          string
	Version         string
	Scopes          map[string]struct{}
	MetadataEntries []MetadataEntry
	AuthSecretStore string // empty if absent
	SourceFile      string
	Pos             Position
}

// IsSecretStore reports whether this component vends secrets to others.
func (c *Component) IsSecretStore() bool {
	return c.Kind == KindSecretStore
}

// Metadata looks up a metadata entry by name, case-sensitively.
func (c *Component) Metadata(name string) (MetadataEntry, bool) {
	for _, m := range c.MetadataEntries {
		if m.Name == name {
			return m, true
		}
	}
	return MetadataEntry{}, false
}

// SortedScopes returns the component's scopes in ascending lexical order.
func (c *Component) SortedScopes() []string {
	out := make([]string, 0, len(c.Scopes))
	for s := range c.Scopes {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
