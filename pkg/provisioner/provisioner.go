/*
Copyright © 2025 The envprov Authors
SPDX-License-Identifier: Apache-2.0
*/
package provisioner

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/solution-accelerators/envprov/pkg/defaults"
	"github.com/solution-accelerators/envprov/pkg/envcfg"
	enverrors "github.com/solution-accelerators/envprov/pkg/errors"
	"github.com/solution-accelerators/envprov/pkg/toolchain"
)

// Provisioner validates preconditions and writes an environment
// configuration record into the azd environment store.
type Provisioner struct {
	runner  toolchain.Runner
	version string
	dryRun  bool
	pacer   *rate.Limiter
}

// Option is a functional option for configuring Provisioner instances.
type Option func(*Provisioner)

// WithRunner returns an Option that sets the external command runner.
func WithRunner(r toolchain.Runner) Option {
	return func(p *Provisioner) {
		p.runner = r
	}
}

// WithVersion returns an Option that sets the provisioner version string.
func WithVersion(version string) Option {
	return func(p *Provisioner) {
		p.version = version
	}
}

// WithDryRun returns an Option that logs mutating invocations instead of
// executing them. Read-only probes still run.
func WithDryRun(dryRun bool) Option {
	return func(p *Provisioner) {
		p.dryRun = dryRun
	}
}

// WithPacer returns an Option that sets the limiter pacing azd invocations.
func WithPacer(pacer *rate.Limiter) Option {
	return func(p *Provisioner) {
		p.pacer = pacer
	}
}

// New creates a Provisioner with the provided options.
func New(opts ...Option) *Provisioner {
	p := &Provisioner{}
	for _, opt := range opts {
		opt(p)
	}
	if p.runner == nil {
		p.runner = toolchain.NewExecRunner()
	}
	if p.pacer == nil {
		p.pacer = rate.NewLimiter(rate.Limit(defaults.PacingRate), defaults.PacingBurst)
	}
	return p
}

// Provision runs the full workflow against the given table.
func (p *Provisioner) Provision(ctx context.Context, table *envcfg.Table) (*Report, error) {
	start := time.Now()
	status := statusError
	defer func() {
		provisionDuration.Observe(time.Since(start).Seconds())
		provisionTotal.WithLabelValues(status).Inc()
	}()

	if table == nil {
		return nil, enverrors.New(enverrors.ErrCodeInternal, "configuration table cannot be nil")
	}
	if err := table.Validate(); err != nil {
		return nil, err
	}

	runID := uuid.New().String()
	logger := slog.With(slog.String("run", runID), slog.String("environment", table.Environment))
	logger.Info("provisioning azd environment", slog.String("version", p.version))

	if err := p.Preflight(ctx); err != nil {
		return nil, err
	}

	created, err := p.EnsureEnvironment(ctx, table.Environment)
	if err != nil {
		return nil, err
	}

	if err := p.Apply(ctx, table); err != nil {
		return nil, err
	}

	status = statusSuccess
	logger.Info("environment configured",
		slog.Bool("created", created),
		slog.Int("entries", len(table.Entries)),
		slog.Duration("duration", time.Since(start)),
	)

	return &Report{
		RunID:       runID,
		Environment: table.Environment,
		Created:     created,
		EntriesSet:  len(table.Entries),
		Duration:    time.Since(start),
		Hints: []string{
			"azd env select " + table.Environment,
			"azd env get-values",
		},
	}, nil
}

// Preflight verifies the three preconditions: azd on PATH, az on PATH,
// and an authenticated az session. The two PATH probes run concurrently;
// a missing azd is always reported ahead of a missing az.
func (p *Provisioner) Preflight(ctx context.Context) error {
	var azdErr, azErr error
	g := new(errgroup.Group)
	g.Go(func() error {
		_, azdErr = p.runner.Look(defaults.AzdTool)
		return nil
	})
	g.Go(func() error {
		_, azErr = p.runner.Look(defaults.AzTool)
		return nil
	})
	_ = g.Wait()

	if azdErr != nil {
		preflightFailures.WithLabelValues("azd-missing").Inc()
		return enverrors.Wrap(enverrors.ErrCodePrecondition,
			"azd is not installed; install the Azure Developer CLI from https://aka.ms/azd-install", azdErr)
	}
	if azErr != nil {
		preflightFailures.WithLabelValues("az-missing").Inc()
		return enverrors.Wrap(enverrors.ErrCodePrecondition,
			"az is not installed; install the Azure CLI from https://aka.ms/azure-cli", azErr)
	}

	if _, err := p.runner.Output(ctx, defaults.AzTool, "account", "show", "--output", "none"); err != nil {
		preflightFailures.WithLabelValues("not-authenticated").Inc()
		return enverrors.Wrap(enverrors.ErrCodePrecondition,
			"no active Azure session; run 'az login' and retry", err)
	}

	slog.Debug("preflight checks passed")
	return nil
}

// azdEnvironment is one row of `azd env list --output json`.
type azdEnvironment struct {
	Name      string `json:"Name"`
	IsDefault bool   `json:"IsDefault"`
}

// EnsureEnvironment creates the environment, or selects it when it already
// exists so a re-run updates values instead of failing. Returns whether
// the environment was newly created.
func (p *Provisioner) EnsureEnvironment(ctx context.Context, name string) (bool, error) {
	out, err := p.runner.Output(ctx, defaults.AzdTool, "env", "list", "--output", "json")
	if err != nil {
		return false, fmt.Errorf("listing azd environments: %w", err)
	}

	var existing []azdEnvironment
	if out != "" {
		if err := json.Unmarshal([]byte(out), &existing); err != nil {
			return false, enverrors.Wrap(enverrors.ErrCodeExec, "parsing azd env list output", err)
		}
	}

	for _, env := range existing {
		if env.Name != name {
			continue
		}
		slog.Info("environment already exists, selecting it", slog.String("environment", name))
		if err := p.exec(ctx, defaults.AzdTool, "env", "select", name); err != nil {
			return false, fmt.Errorf("selecting environment %s: %w", name, err)
		}
		return false, nil
	}

	if err := p.exec(ctx, defaults.AzdTool, "env", "new", name, "--no-prompt"); err != nil {
		return false, fmt.Errorf("creating environment %s: %w", name, err)
	}
	return true, nil
}

// Apply writes every table entry into the selected environment, one
// `azd env set` invocation per key, in table order. The first failure
// aborts the remaining writes.
func (p *Provisioner) Apply(ctx context.Context, table *envcfg.Table) error {
	for _, entry := range table.Entries {
		if err := p.pacer.Wait(ctx); err != nil {
			return err
		}
		if err := p.exec(ctx, defaults.AzdTool, "env", "set", entry.Key, entry.Value); err != nil {
			return fmt.Errorf("setting %s: %w", entry.Key, err)
		}
		entriesSetTotal.Inc()
		slog.Debug("configuration entry set", slog.String("key", entry.Key))
	}
	return nil
}

// exec runs a mutating invocation, honoring dry-run mode.
func (p *Provisioner) exec(ctx context.Context, tool string, args ...string) error {
	inv := toolchain.Invocation{Tool: tool, Args: args}
	if p.dryRun {
		slog.Info("dry-run, skipping", slog.String("cmd", inv.String()))
		return nil
	}

	err := p.runner.Run(ctx, tool, args...)
	if err != nil {
		invocationTotal.WithLabelValues(tool, statusError).Inc()
		return err
	}
	invocationTotal.WithLabelValues(tool, statusSuccess).Inc()
	return nil
}
