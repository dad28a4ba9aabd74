// Copyright © 2025 The envprov Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli implements the command-line interface for the envprov tool.
//
// # Overview
//
// envprov prepares an Azure Developer CLI (azd) environment for deploying
// the agentic solution accelerator: it verifies the required tools and an
// authenticated session, creates (or selects) the target environment, and
// writes the twelve configuration values the deployment expects. Running
// envprov with no arguments is equivalent to `envprov provision`.
//
// # Commands
//
// provision - Create and configure the azd environment (default):
//
//	envprov
//	envprov provision
//	envprov provision --env staging --values ./staging.yaml
//	envprov provision --dry-run
//
// Verifies that azd and az resolve on PATH and that `az account show`
// succeeds, then creates the environment with `azd env new` (or selects an
// existing one) and writes each configuration entry with `azd env set`.
//
// check - Run the precondition checks only:
//
//	envprov check
//
// show - Print the effective configuration table:
//
//	envprov show
//	envprov show --format table
//	envprov show --format json --output config.json
//
// version - Print build information:
//
//	envprov version
//
// # Global Flags
//
//	--env NAME      Target azd environment name (default: production)
//	--values FILE   Values file overriding the embedded defaults
//	--dry-run       Log mutating commands instead of executing them
//	--debug         Enable debug logging
//	--log-json      Output logs in JSON format
//
// # Values Files
//
// The embedded defaults omit AZURE_SUBSCRIPTION_ID and
// AZURE_AI_PROJECT_RESOURCE_ID; supply them in envprov.local.yaml (picked
// up from the working directory and kept out of version control) or via
// --values:
//
//	AZURE_SUBSCRIPTION_ID: 00000000-0000-0000-0000-000000000000
//	AZURE_AI_PROJECT_RESOURCE_ID: /subscriptions/.../projects/my-project
//
// # Environment Variables
//
//	LOG_LEVEL   Set logging verbosity (debug, info, warn, error)
//
// # Exit Codes
//
//	0  Success
//	1  Precondition, configuration, or execution failure
//	2  Context canceled or timeout
//
// # Architecture
//
// The CLI uses the urfave/cli/v3 framework and delegates to specialized
// packages:
//   - pkg/envcfg - Environment configuration record and values files
//   - pkg/provisioner - Precondition checks and azd orchestration
//   - pkg/toolchain - External command execution
//   - pkg/serializer - Output formatting
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/solution-accelerators/envprov/pkg/version.version=1.0.0'"
package cli
