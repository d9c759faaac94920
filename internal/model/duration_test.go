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
	"testing"
	"time"
)

func TestParseMeshDuration(t *testing.T) {
	cases := map[string]struct {
		reason string
		input  string
		want   time.Duration
		ok     bool
	}{
		"BareNumberIsSeconds": {
			reason: "Numbers with no unit suffix are seconds.",
			input:  "30",
			want:   30 * time.Second,
			ok:     true,
		},
		"Hours": {
			reason: "h suffix means hours.",
			input:  "24h",
			want:   24 * time.Hour,
			ok:     true,
		},
		"Minutes": {
			reason: "m suffix means minutes.",
			input:  "15m",
			want:   15 * time.Minute,
			ok:     true,
		},
		"Seconds": {
			reason: "s suffix means seconds.",
			input:  "100s",
			want:   100 * time.Second,
			ok:     true,
		},
		"Invalid": {
			reason: "Non-numeric input is invalid.",
			input:  "soon",
			want:   0,
			ok:     false,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got, ok := ParseMeshDuration(tc.input)
			if ok != tc.ok {
				t.Fatalf("%s: ok = %v, want %v", tc.reason, ok, tc.ok)
			}
			if got != tc.want {
				t.Fatalf("%s: got %v, want %v", tc.reason, got, tc.want)
			}
		})
	}
}
