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

// CheckResiliency validates retry, timeout and circuit-breaker policy
// values on configuration.resiliency components. Policy fields are read
// from the component's flat metadata list (retryMaxRetries, retryDuration,
// timeout, circuitBreakerConsecutiveErrors, circuitBreakerTimeoutInSeconds)
// rather than the nested spec.policies document Dapr itself uses — see
// DESIGN.md for the reasoning.
func CheckResiliency(c *model.Component) []report.Finding {
	if c.Driver != "configuration.resiliency" {
		return nil
	}

	var findings []report.Finding

	if n, ok := metaInt(c, "retryMaxRetries"); ok && n > 20 {
		findings = append(findings, finding(c, report.SeverityWarning, "excessive_retries",
			"retry policy on '"+c.Name+"' allows more than 20 retries"))
	}

	if d, ok := metaString(c, "retryDuration"); ok {
		if dur, ok := model.ParseMeshDuration(d); ok && dur < 100_000_000 {
			findings = append(findings, finding(c, report.SeverityWarning, "retry_storm",
				"retry policy on '"+c.Name+"' retries faster than 100ms, risking a retry storm"))
		}
	}

	switch timeout, ok := metaString(c, "timeout"); {
	case !ok:
		findings = append(findings, finding(c, report.SeverityError, "missing_timeout",
			"component '"+c.Name+"' does not set a timeout"))
	default:
		if dur, ok := model.ParseMeshDuration(timeout); !ok || dur == 0 {
			findings = append(findings, finding(c, report.SeverityError, "missing_timeout",
				"component '"+c.Name+"' sets a zero or unparseable timeout"))
		} else if dur > 300_000_000_000 {
			findings = append(findings, finding(c, report.SeverityWarning, "excessive_timeout",
				"component '"+c.Name+"' sets a timeout greater than 300s"))
		}
	}

	if n, ok := metaInt(c, "circuitBreakerConsecutiveErrors"); ok && n < 2 {
		findings = append(findings, finding(c, report.SeverityWarning, "weak_circuit_breaker",
			"circuit breaker on '"+c.Name+"' trips after fewer than 2 consecutive errors"))
	}

	if _, ok := c.Metadata("circuitBreakerTimeoutInSeconds"); !ok {
		if _, hasBreaker := c.Metadata("circuitBreakerConsecutiveErrors"); hasBreaker {
			findings = append(findings, finding(c, report.SeverityWarning, "missing_circuit_breaker_timeout",
				"circuit breaker on '"+c.Name+"' does not set circuitBreakerTimeoutInSeconds"))
		}
	}

	return findings
}

func finding(c *model.Component, sev report.Severity, category, message string) report.Finding {
	return report.Finding{
		Severity:  sev,
		RuleID:    "R-RESILIENCY",
		Category:  category,
		Component: c.Name,
		File:      c.SourceFile,
		Line:      uint(c.Pos.Line),
		Message:   message,
	}
}
