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

import "time"

// ConfigurationResource describes the sidecar mesh's mTLS posture. At most
// one exists per project.
type ConfigurationResource struct {
	Name              string
	MTLSEnabled       bool
	WorkloadCertTTL   time.Duration
	AllowedClockSkew  time.Duration
	SourceFile        string
	Pos               Position
}
