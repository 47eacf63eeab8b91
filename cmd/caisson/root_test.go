// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestGetVersionString(t *testing.T) {
	origVersion, origCommit, origDate := Version, Commit, BuildDate
	defer func() { Version, Commit, BuildDate = origVersion, origCommit, origDate }()

	Version = "dev"
	if got := getVersionString(); got != "dev (built from source)" {
		t.Errorf("dev version string = %q", got)
	}

	Version, Commit, BuildDate = "0.1.5", "abc1234", "2026-08-24"
	got := getVersionString()
	for _, want := range []string{"0.1.5", "abc1234", "2026-08-24"} {
		if !strings.Contains(got, want) {
			t.Errorf("version string %q missing %q", got, want)
		}
	}
}

func TestExitError(t *testing.T) {
	inner := errors.New("engine not found")
	err := &ExitError{Code: 2, Err: inner}

	if err.Error() != "engine not found" {
		t.Errorf("Error() = %q", err.Error())
	}
	if !errors.Is(err, inner) {
		t.Error("ExitError must unwrap to its cause")
	}

	bare := &ExitError{Code: 3}
	if bare.Error() != "exit status 3" {
		t.Errorf("bare Error() = %q", bare.Error())
	}
}

func TestRootCommandRegistration(t *testing.T) {
	want := map[string]bool{
		"ensure":    false,
		"status":    false,
		"languages": false,
		"settings":  false,
		"docs":      false,
	}
	for _, sub := range rootCmd.Commands() {
		if _, ok := want[sub.Name()]; ok {
			want[sub.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestLanguagesCommandOutput(t *testing.T) {
	var out bytes.Buffer
	languagesCmd.SetOut(&out)
	defer languagesCmd.SetOut(nil)

	if err := languagesCmd.RunE(languagesCmd, nil); err != nil {
		t.Fatalf("languages command returned error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 160 {
		t.Errorf("expected 160 language lines, got %d", len(lines))
	}
	if !strings.Contains(out.String(), "English") || !strings.Contains(out.String(), "eng") {
		t.Error("output must list English with its code")
	}
}
