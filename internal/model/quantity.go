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

	"k8s.io/apimachinery/pkg/api/resource"
)

// ParseMemoryQuantity parses a memory string such as "1Gi", "512Mi", "256K"
// or a bare byte count into a number of bytes. It reuses
// k8s.io/apimachinery's quantity grammar, which already implements the
// Ki/Mi/Gi/K/M/G suffix table, instead of hand-rolling suffix arithmetic.
//
// Invalid input returns (0, false); callers are responsible for emitting a
// warning finding and recording a zero.
func ParseMemoryQuantity(raw string) (bytes int64, ok bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	// A bare integer (no suffix) is bytes already and is returned as-is.
	// Every other form, including a decimal such as "1.5", goes through
	// resource.ParseQuantity, whose Value() rounds a fractional byte count up.
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		if n < 0 {
			return 0, false
		}
		return n, true
	}
	// apimachinery spells the decimal kilo suffix as a lowercase "k".
	if strings.HasSuffix(raw, "K") {
		raw = strings.TrimSuffix(raw, "K") + "k"
	}
	q, err := resource.ParseQuantity(raw)
	if err != nil {
		return 0, false
	}
	if q.Sign() < 0 {
		return 0, false
	}
	return q.Value(), true
}

// ParseCPUCores parses a CPU request such as "0.5", "2", or "500m" into a
// floating point core count.
func ParseCPUCores(raw string) (cores float64, ok bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	q, err := resource.ParseQuantity(raw)
	if err != nil {
		return 0, false
	}
	if q.Sign() < 0 {
		return 0, false
	}
	return q.AsApproximateFloat64(), true
}
