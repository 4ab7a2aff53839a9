// Copyright 2026 The lsmodels Authors
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/davetashner/lsmodels/internal/llm"
)

// resetFlags resets all package-level flags to their default values.
func resetFlags() {
	verbose = false
	quiet = false
	noColor = false

	rootCmd.Flags().VisitAll(func(f *pflag.Flag) {
		f.Changed = false
		_ = f.Value.Set(f.DefValue)
	})
	rootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		f.Changed = false
		_ = f.Value.Set(f.DefValue)
	})
}

// newTestCmd redirects the root command's I/O to fresh buffers and sets args.
func newTestCmd(t *testing.T, args ...string) (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	resetFlags()

	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetArgs(args)
	rootCmd.SetContext(context.Background())
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	return rootCmd, stdout, stderr
}

// withLister swaps newLister with fn and restores it on test cleanup.
func withLister(t *testing.T, fn func() (llm.ModelLister, error)) {
	t.Helper()
	orig := newLister
	newLister = fn
	t.Cleanup(func() { newLister = orig })
}

// withMockLister makes the root command use m.
func withMockLister(t *testing.T, m *llm.MockLister) {
	t.Helper()
	withLister(t, func() (llm.ModelLister, error) { return m, nil })
}

// withoutColor disables ANSI sequences for the duration of the test.
func withoutColor(t *testing.T) {
	t.Helper()
	orig := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = orig })
}
