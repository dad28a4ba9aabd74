/*
Copyright © 2025 The envprov Authors
SPDX-License-Identifier: Apache-2.0
*/
package provisioner

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solution-accelerators/envprov/pkg/envcfg"
	enverrors "github.com/solution-accelerators/envprov/pkg/errors"
	"github.com/solution-accelerators/envprov/pkg/toolchain"
)

const (
	testSubscriptionID = "8f1d2a3b-4c5d-6e7f-8a9b-0c1d2e3f4a5b"
	testResourceID     = "/subscriptions/8f1d2a3b-4c5d-6e7f-8a9b-0c1d2e3f4a5b/resourceGroups/rg-shared-ai/providers/Microsoft.CognitiveServices/accounts/aif-shared/projects/proj-agentic"

	authProbe = "az account show --output none"
	envList   = "azd env list --output json"
	envNew    = "azd env new production --no-prompt"
)

func testTable(t *testing.T) *envcfg.Table {
	t.Helper()
	table, err := envcfg.Defaults()
	require.NoError(t, err)
	table.Set(envcfg.KeySubscriptionID, testSubscriptionID)
	table.Set(envcfg.KeyAIProjectResource, testResourceID)
	return table
}

// wantSetLines renders the twelve expected `azd env set` command lines in
// table order.
func wantSetLines(t *testing.T, table *envcfg.Table) []string {
	t.Helper()
	lines := make([]string, 0, len(table.Entries))
	for _, e := range table.Entries {
		inv := toolchain.Invocation{Tool: "azd", Args: []string{"env", "set", e.Key, e.Value}}
		lines = append(lines, inv.String())
	}
	return lines
}

func TestProvision_AzdMissing(t *testing.T) {
	rec := &toolchain.Recorder{MissingTools: map[string]bool{"azd": true}}
	p := New(WithRunner(rec))

	_, err := p.Provision(context.Background(), testTable(t))
	require.Error(t, err)
	assert.Equal(t, enverrors.ErrCodePrecondition, enverrors.Code(err))
	assert.Contains(t, err.Error(), "azd is not installed")
	assert.Empty(t, rec.Invocations, "no external commands may run when azd is missing")
}

func TestProvision_AzMissing(t *testing.T) {
	rec := &toolchain.Recorder{MissingTools: map[string]bool{"az": true}}
	p := New(WithRunner(rec))

	_, err := p.Provision(context.Background(), testTable(t))
	require.Error(t, err)
	assert.Equal(t, enverrors.ErrCodePrecondition, enverrors.Code(err))
	assert.Contains(t, err.Error(), "az is not installed")
	assert.Empty(t, rec.Invocations)
}

func TestProvision_BothToolsMissingReportsAzdFirst(t *testing.T) {
	rec := &toolchain.Recorder{MissingTools: map[string]bool{"azd": true, "az": true}}
	p := New(WithRunner(rec))

	_, err := p.Provision(context.Background(), testTable(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "azd is not installed")
}

func TestProvision_NotAuthenticated(t *testing.T) {
	rec := &toolchain.Recorder{
		FailOn: map[string]error{authProbe: errors.New("exit status 1")},
	}
	p := New(WithRunner(rec))

	_, err := p.Provision(context.Background(), testTable(t))
	require.Error(t, err)
	assert.Equal(t, enverrors.ErrCodePrecondition, enverrors.Code(err))
	assert.Contains(t, err.Error(), "az login")

	assert.Equal(t, []string{authProbe}, rec.CommandLines(),
		"environment creation must never run without an authenticated session")
}

func TestProvision_FreshEnvironment(t *testing.T) {
	table := testTable(t)
	rec := &toolchain.Recorder{
		Outputs: map[string]string{envList: "[]"},
	}
	p := New(WithRunner(rec), WithVersion("test"))

	report, err := p.Provision(context.Background(), table)
	require.NoError(t, err)

	want := append([]string{authProbe, envList, envNew}, wantSetLines(t, table)...)
	assert.Equal(t, want, rec.CommandLines())

	assert.True(t, report.Created)
	assert.Equal(t, "production", report.Environment)
	assert.Equal(t, 12, report.EntriesSet)
	assert.NotEmpty(t, report.RunID)
	require.Len(t, report.Hints, 2)
	assert.Equal(t, "azd env select production", report.Hints[0])
	assert.Equal(t, "azd env get-values", report.Hints[1])
}

func TestProvision_ExistingEnvironmentIsSelected(t *testing.T) {
	table := testTable(t)
	rec := &toolchain.Recorder{
		Outputs: map[string]string{
			envList: `[{"Name":"staging","IsDefault":false},{"Name":"production","IsDefault":true}]`,
		},
	}
	p := New(WithRunner(rec))

	report, err := p.Provision(context.Background(), table)
	require.NoError(t, err)
	assert.False(t, report.Created)

	want := append([]string{authProbe, envList, "azd env select production"}, wantSetLines(t, table)...)
	assert.Equal(t, want, rec.CommandLines())
}

func TestProvision_SetFailureAbortsRemainingWrites(t *testing.T) {
	table := testTable(t)
	failing := toolchain.Invocation{
		Tool: "azd",
		Args: []string{"env", "set", envcfg.KeyOpenAILocation, "swedencentral"},
	}
	rec := &toolchain.Recorder{
		Outputs: map[string]string{envList: "[]"},
		FailOn:  map[string]error{failing.String(): errors.New("exit status 1")},
	}
	p := New(WithRunner(rec))

	_, err := p.Provision(context.Background(), table)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "setting AZURE_ENV_OPENAI_LOCATION")

	// auth probe + list + new + three successful sets + the failing fourth.
	assert.Len(t, rec.Invocations, 7)
}

func TestProvision_RepeatRunsProduceIdenticalSequences(t *testing.T) {
	table := testTable(t)

	runOnce := func() []string {
		rec := &toolchain.Recorder{Outputs: map[string]string{envList: "[]"}}
		p := New(WithRunner(rec))
		_, err := p.Provision(context.Background(), table)
		require.NoError(t, err)
		return rec.CommandLines()
	}

	first := runOnce()
	second := runOnce()
	assert.Equal(t, first, second, "no configuration value is derived at runtime")
}

func TestProvision_DryRunSkipsMutatingCommands(t *testing.T) {
	table := testTable(t)
	rec := &toolchain.Recorder{Outputs: map[string]string{envList: "[]"}}
	p := New(WithRunner(rec), WithDryRun(true))

	report, err := p.Provision(context.Background(), table)
	require.NoError(t, err)
	assert.Equal(t, 12, report.EntriesSet)

	// Only the read-only probes run.
	assert.Equal(t, []string{authProbe, envList}, rec.CommandLines())
}

func TestProvision_InvalidTableFailsBeforeAnyInvocation(t *testing.T) {
	table := testTable(t)
	table.Set(envcfg.KeySubscriptionID, "")

	rec := &toolchain.Recorder{}
	p := New(WithRunner(rec))

	_, err := p.Provision(context.Background(), table)
	require.Error(t, err)
	assert.Equal(t, enverrors.ErrCodeConfig, enverrors.Code(err))
	assert.Empty(t, rec.Invocations)
}

func TestProvision_MalformedEnvListOutput(t *testing.T) {
	rec := &toolchain.Recorder{Outputs: map[string]string{envList: "not json"}}
	p := New(WithRunner(rec))

	_, err := p.Provision(context.Background(), testTable(t))
	require.Error(t, err)
	assert.Equal(t, enverrors.ErrCodeExec, enverrors.Code(err))
}

func TestReport_PrintContainsEnvironmentAndHints(t *testing.T) {
	report := &Report{
		Environment: "production",
		Created:     true,
		EntriesSet:  12,
		Hints:       []string{"azd env select production", "azd env get-values"},
	}

	var sb strings.Builder
	report.Print(&sb)
	out := sb.String()

	assert.Contains(t, out, "Environment production created")
	assert.Contains(t, out, "azd env select production")
	assert.Contains(t, out, "azd env get-values")
}
