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
	"strconv"
	"strings"
	"time"
)

// ParseMeshDuration parses the duration grammar used throughout mesh
// configuration: a trailing unit from {s, m, h}, or a bare number meaning
// seconds. This is deliberately not time.ParseDuration: that stdlib parser
// requires a unit on every number and accepts units (us, ns, ...) this
// grammar doesn't, so a bare "30" would be rejected rather than read as 30s.
func ParseMeshDuration(raw string) (time.Duration, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}

	unit := time.Second
	numeric := raw
	switch {
	case strings.HasSuffix(raw, "h"):
		unit = time.Hour
		numeric = strings.TrimSuffix(raw, "h")
	case strings.HasSuffix(raw, "m"):
		unit = time.Minute
		numeric = strings.TrimSuffix(raw, "m")
	case strings.HasSuffix(raw, "s"):
		unit = time.Second
		numeric = strings.TrimSuffix(raw, "s")
	}

	n, err := strconv.ParseFloat(numeric, 64)
	if err != nil || n < 0 {
		return 0, false
	}
	return time.Duration(n * float64(unit)), true
}
