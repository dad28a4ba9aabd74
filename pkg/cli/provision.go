/*
Copyright © 2025 The envprov Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/solution-accelerators/envprov/pkg/provisioner"
	"github.com/solution-accelerators/envprov/pkg/version"
)

func provisionCmd() *cli.Command {
	return &cli.Command{
		Name:    "provision",
		Aliases: []string{"up"},
		Usage:   "Create the azd environment and write its configuration values",
		Description: `Runs the full provisioning workflow:

  1. Verify azd and az resolve on PATH
  2. Verify an authenticated session with 'az account show'
  3. Create the environment with 'azd env new <name> --no-prompt',
     or select it when it already exists
  4. Write each configuration entry with 'azd env set KEY VALUE'

After provisioning, deploy with:
  azd env select <name>
  azd up`,
		Action: runProvision,
	}
}

// runProvision is the shared action behind 'envprov' and 'envprov provision'.
func runProvision(ctx context.Context, cmd *cli.Command) error {
	table, err := loadTable(cmd)
	if err != nil {
		return err
	}

	p := provisioner.New(
		provisioner.WithVersion(version.Version()),
		provisioner.WithDryRun(cmd.Bool("dry-run")),
	)

	report, err := p.Provision(ctx, table)
	if err != nil {
		return err
	}

	report.Print(os.Stdout)
	return nil
}
