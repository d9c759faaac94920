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

package analyze

import (
	"time"

	"github.com/meshlint/meshlint/internal/model"
	"github.com/meshlint/meshlint/internal/report"
)

const (
	maxHealthyCertTTL   = 24 * time.Hour
	maxHealthyClockSkew = 15 * time.Minute
)

// CheckMTLS validates the project's mTLS posture.
func CheckMTLS(proj *model.Project, isProduction bool) []report.Finding {
	cr := proj.Configuration

	if cr == nil {
		if !isProduction {
			return nil
		}
		return []report.Finding{{
			Severity: report.SeverityWarning,
			RuleID:   "X-MTLS",
			Category: "mtls_absent",
			Message:  "no Configuration resource declares an mTLS posture for a production run",
		}}
	}

	var findings []report.Finding

	if !cr.MTLSEnabled && isProduction {
		findings = append(findings, report.Finding{
			Severity: report.SeverityError,
			RuleID:   "X-MTLS",
			Category: "mtls_disabled",
			File:     cr.SourceFile,
			Line:     uint(cr.Pos.Line),
			Message:  "mTLS is disabled in a production run",
		})
	}

	if cr.WorkloadCertTTL > maxHealthyCertTTL {
		findings = append(findings, report.Finding{
			Severity: report.SeverityWarning,
			RuleID:   "X-MTLS",
			Category: "excessive_cert_ttl",
			File:     cr.SourceFile,
			Line:     uint(cr.Pos.Line),
			Message:  "workloadCertTTL exceeds 24h",
		})
	}

	if cr.AllowedClockSkew > maxHealthyClockSkew {
		findings = append(findings, report.Finding{
			Severity: report.SeverityWarning,
			RuleID:   "X-MTLS",
			Category: "excessive_clock_skew",
			File:     cr.SourceFile,
			Line:     uint(cr.Pos.Line),
			Message:  "allowedClockSkew exceeds 15m",
		})
	}

	return findings
}
