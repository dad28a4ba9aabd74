/*
Copyright © 2025 The envprov Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/solution-accelerators/envprov/pkg/provisioner"
	"github.com/solution-accelerators/envprov/pkg/version"
)

func checkCmd() *cli.Command {
	return &cli.Command{
		Name:  "check",
		Usage: "Run the precondition checks without provisioning anything",
		Description: `Verifies the three provisioning preconditions and exits:

  - azd resolves on PATH
  - az resolves on PATH
  - 'az account show' reports an active session

Nothing is created or modified.`,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			p := provisioner.New(provisioner.WithVersion(version.Version()))
			if err := p.Preflight(ctx); err != nil {
				return err
			}
			fmt.Println("All preconditions satisfied.")
			return nil
		},
	}
}
