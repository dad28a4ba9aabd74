package defaults

import "time"

// Environment lifecycle defaults.
const (
	// EnvironmentName is the azd environment provisioned when no --env flag
	// is given.
	EnvironmentName = "production"

	// LocalValuesFile is the untracked values file auto-discovered in the
	// working directory. It supplies the sensitive entries that are never
	// embedded in the binary.
	LocalValuesFile = "envprov.local.yaml"
)

// External tool names resolved on PATH.
const (
	// AzdTool is the Azure Developer CLI executable.
	AzdTool = "azd"

	// AzTool is the Azure CLI executable, used for the authentication probe.
	AzTool = "az"
)

// External command execution defaults.
const (
	// CommandTimeout bounds a single external command invocation.
	// Zero disables the bound; commands then run until completion or
	// parent-context cancellation.
	CommandTimeout = 0 * time.Second

	// PacingRate is the sustained rate of azd invocations per second.
	// The azd environment store is local state, so the limiter exists only
	// to keep a misconfigured override table from hammering the CLI.
	PacingRate = 20

	// PacingBurst is the pacing limiter burst size.
	PacingBurst = 20
)

// Process exit codes.
const (
	// ExitOK indicates full success.
	ExitOK = 0

	// ExitFailure indicates a precondition, configuration, or execution
	// failure.
	ExitFailure = 1

	// ExitCanceled indicates context cancellation or timeout.
	ExitCanceled = 2
)
