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

// Package logging wraps crossplane-runtime's structured logger backed by
// zap, giving every stage of the pipeline a shared leveled logger without
// pulling in a full Kubernetes controller runtime.
package logging

import (
	"github.com/crossplane/crossplane-runtime/pkg/logging"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a crossplane-runtime logging.Logger at the requested
// verbosity. debug=false yields a logger that only ever emits Info-level
// messages; debug-level stage-transition logs are suppressed.
func New(debug bool) logging.Logger {
	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if debug {
		level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = level
	cfg.Encoding = "console"
	cfg.EncoderConfig.TimeKey = "" // deterministic output for piped/test runs

	z, err := cfg.Build()
	if err != nil {
		return logging.NewNopLogger()
	}

	return logging.NewLogrLogger(zapr.NewLogger(z))
}

// NewNop returns a logger that discards everything, used when --log-level
// is left at its default.
func NewNop() logging.Logger {
	return logging.NewNopLogger()
}
