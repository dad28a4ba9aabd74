/*
Copyright © 2025 The envprov Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/solution-accelerators/envprov/pkg/defaults"
	"github.com/solution-accelerators/envprov/pkg/version"
)

// Execute runs the envprov CLI with the given arguments.
func Execute(ctx context.Context, args []string) error {
	return rootCmd().Run(ctx, args)
}

func rootCmd() *cli.Command {
	return &cli.Command{
		Name:                  "envprov",
		Usage:                 "Provision the azd environment for the solution accelerator",
		Version:               version.Version(),
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "env",
				Aliases: []string{"e"},
				Value:   defaults.EnvironmentName,
				Usage:   "Target azd environment name",
			},
			&cli.StringFlag{
				Name:  "values",
				Usage: "Values file overriding the embedded defaults (default: ./" + defaults.LocalValuesFile + " if present)",
			},
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: "Log mutating commands instead of executing them",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging",
			},
			&cli.BoolFlag{
				Name:  "log-json",
				Usage: "Output logs in JSON format",
			},
		},
		Before: setupLogging,
		Commands: []*cli.Command{
			provisionCmd(),
			checkCmd(),
			showCmd(),
			versionCmd(),
		},
		// No arguments provisions, matching the original single-purpose
		// invocation.
		Action: runProvision,
	}
}
