/*
Copyright © 2025 The envprov Authors
SPDX-License-Identifier: Apache-2.0
*/

// Command envprov provisions the azd environment for the solution
// accelerator deployment.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/solution-accelerators/envprov/pkg/cli"
	"github.com/solution-accelerators/envprov/pkg/defaults"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.Execute(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return defaults.ExitCanceled
		}
		return defaults.ExitFailure
	}
	return defaults.ExitOK
}
