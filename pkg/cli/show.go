/*
Copyright © 2025 The envprov Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/solution-accelerators/envprov/pkg/serializer"
)

func showCmd() *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: "Print the effective configuration table",
		Description: `Prints the configuration table that provisioning would write: the
embedded defaults overlaid with any values file. Secrets supplied through
the values file appear in the output; pipe with care.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output file path (default: stdout)",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"t"},
				Value:   string(serializer.FormatYAML),
				Usage:   "Output format (yaml, json, table)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			table, err := loadTable(cmd)
			if err != nil {
				return err
			}

			return serializer.NewFileWriterOrStdout(outFormat, cmd.String("output")).Serialize(ctx, table)
		},
	}
}
