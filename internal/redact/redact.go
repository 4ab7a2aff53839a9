// Copyright 2026 The lsmodels Authors
// SPDX-License-Identifier: MIT

// Package redact strips credentials from diagnostic text before it reaches
// stderr.
package redact

import (
	"os"
	"regexp"
	"strings"
	"sync"
)

// Placeholder replaces every redacted value.
const Placeholder = "[REDACTED]"

// sensitiveEnvVars lists environment variables whose values must never
// appear in diagnostics.
var sensitiveEnvVars = []string{
	"ANTHROPIC_API_KEY",
	"ANTHROPIC_AUTH_TOKEN",
}

// anthropicKeyPattern matches Anthropic API keys even when they did not come
// from the environment (e.g. echoed back in an error body).
var anthropicKeyPattern = regexp.MustCompile(`sk-ant-[A-Za-z0-9_\-]{4,}`)

var (
	cachedSecrets []string
	cacheOnce     sync.Once
)

func loadSecrets() {
	for _, envVar := range sensitiveEnvVars {
		val := os.Getenv(envVar)
		if len(val) >= 4 {
			cachedSecrets = append(cachedSecrets, val)
		}
	}
}

// ResetForTest drops the cached secrets so tests in other packages can
// verify redaction after changing env vars with t.Setenv.
func ResetForTest() {
	cachedSecrets = nil
	cacheOnce = sync.Once{}
}

// String replaces known credential values and anything shaped like an
// Anthropic API key with Placeholder. Env values are cached on first call.
func String(s string) string {
	cacheOnce.Do(loadSecrets)
	for _, secret := range cachedSecrets {
		s = strings.ReplaceAll(s, secret, Placeholder)
	}
	return anthropicKeyPattern.ReplaceAllString(s, Placeholder)
}
