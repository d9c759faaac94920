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

// Project is the immutable bag of artifacts produced by the parser: every
// App, Component, and the at-most-one ConfigurationResource discovered
// under a configuration root. Rules read it but never mutate it.
type Project struct {
	Apps          map[string]*App
	Components    map[string]*Component
	Configuration *ConfigurationResource
}

// NewProject returns an empty Project ready to be populated by the parser.
func NewProject() *Project {
	return &Project{
		Apps:       map[string]*App{},
		Components: map[string]*Component{},
	}
}

// ComponentsByKind returns every component of the given kind, in map
// iteration order (not stable across calls). Callers that need determinism
// should sort by name.
func (p *Project) ComponentsByKind(kind ComponentKind) []*Component {
	var out []*Component
	for _, c := range p.Components {
		if c.Kind == kind {
			out = append(out, c)
		}
	}
	return out
}

// HasApps reports whether the project declares at least one app.
func (p *Project) HasApps() bool {
	return len(p.Apps) > 0
}

// HasSecretStores reports whether the project declares at least one
// secretstore component.
func (p *Project) HasSecretStores() bool {
	for _, c := range p.Components {
		if c.IsSecretStore() {
			return true
		}
	}
	return false
}
