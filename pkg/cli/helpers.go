/*
Copyright © 2025 The envprov Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/solution-accelerators/envprov/pkg/envcfg"
	"github.com/solution-accelerators/envprov/pkg/serializer"
)

// parseOutputFormat extracts and validates the output format from CLI flags.
// Returns the validated format or an error if the format is unknown.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	outFormat := serializer.Format(cmd.String("format"))
	if outFormat.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q, valid formats are: yaml, json, table", outFormat)
	}
	return outFormat, nil
}

// loadTable builds the effective configuration table from the global
// --values and --env flags.
func loadTable(cmd *cli.Command) (*envcfg.Table, error) {
	table, err := envcfg.Load(cmd.String("values"))
	if err != nil {
		return nil, err
	}
	if env := cmd.String("env"); env != "" {
		table.Environment = env
	}
	return table, nil
}

// setupLogging configures the default slog logger from the global flags
// and the LOG_LEVEL environment variable.
func setupLogging(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	level := slog.LevelInfo
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		switch strings.ToLower(v) {
		case "debug":
			level = slog.LevelDebug
		case "warn":
			level = slog.LevelWarn
		case "error":
			level = slog.LevelError
		}
	}
	if cmd.Bool("debug") {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cmd.Bool("log-json") {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))

	return ctx, nil
}
