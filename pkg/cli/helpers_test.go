/*
Copyright © 2025 The envprov Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/solution-accelerators/envprov/pkg/envcfg"
)

func TestShow_WritesEffectiveTableToFile(t *testing.T) {
	t.Chdir(t.TempDir())

	valuesPath := filepath.Join(t.TempDir(), "values.yaml")
	if err := os.WriteFile(valuesPath, []byte("AZURE_LOCATION: westus3\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	outPath := filepath.Join(t.TempDir(), "out.yaml")

	err := Execute(context.Background(), []string{
		"envprov", "--values", valuesPath, "show", "--format", "yaml", "--output", outPath,
	})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	raw, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("reading output file: %v", err)
	}

	var table envcfg.Table
	if err := yaml.Unmarshal(raw, &table); err != nil {
		t.Fatalf("unmarshaling output: %v", err)
	}

	if table.Environment != "production" {
		t.Errorf("Environment = %q, want %q", table.Environment, "production")
	}
	if len(table.Entries) != 12 {
		t.Errorf("got %d entries, want 12", len(table.Entries))
	}
	if v, _ := table.Lookup(envcfg.KeyLocation); v != "westus3" {
		t.Errorf("%s = %q, want %q", envcfg.KeyLocation, v, "westus3")
	}
}

func TestShow_EnvFlagOverridesEnvironmentName(t *testing.T) {
	t.Chdir(t.TempDir())

	outPath := filepath.Join(t.TempDir(), "out.yaml")
	err := Execute(context.Background(), []string{
		"envprov", "--env", "staging", "show", "--output", outPath,
	})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	raw, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(raw), "environment: staging") {
		t.Errorf("output does not carry overridden environment name:\n%s", raw)
	}
}

func TestShow_UnknownFormat(t *testing.T) {
	t.Chdir(t.TempDir())

	err := Execute(context.Background(), []string{"envprov", "show", "--format", "xml"})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "unknown output format") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestShow_UnknownValuesKeySurfacesSuggestion(t *testing.T) {
	t.Chdir(t.TempDir())

	valuesPath := filepath.Join(t.TempDir(), "values.yaml")
	if err := os.WriteFile(valuesPath, []byte("ENABLE_TELEMETRI: \"true\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	err := Execute(context.Background(), []string{"envprov", "--values", valuesPath, "show"})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "ENABLE_TELEMETRY") {
		t.Errorf("expected nearest-key suggestion in error, got: %v", err)
	}
}
