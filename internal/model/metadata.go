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

// SecretRef names a key vended by a secret-store component.
type SecretRef struct {
	Store string
	Key   string
}

// MetadataEntry is a single name/value (or name/secret-ref) pair attached to
// a Component's spec.metadata list. Exactly one of Value or SecretRef is
// populated; enforcement happens in the parser, not here.
type MetadataEntry struct {
	Name      string
	Value     *string
	SecretRef *SecretRef
	Pos       Position
}

// HasValue reports whether the entry carries a plain value.
func (m MetadataEntry) HasValue() bool {
	return m.Value != nil
}

// HasSecretRef reports whether the entry carries a secret reference.
func (m MetadataEntry) HasSecretRef() bool {
	return m.SecretRef != nil
}
