package toolchain

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"time"

	"al.essio.dev/pkg/shellescape"

	"github.com/solution-accelerators/envprov/pkg/defaults"
	enverrors "github.com/solution-accelerators/envprov/pkg/errors"
)

// Invocation describes one external command invocation.
type Invocation struct {
	Tool string
	Args []string
}

// String renders the invocation as a copy-pasteable shell command line.
func (i Invocation) String() string {
	return shellescape.QuoteCommand(append([]string{i.Tool}, i.Args...))
}

// Runner runs external command-line tools.
// This interface enables dependency injection for testing.
type Runner interface {
	// Look resolves tool on the search path.
	Look(tool string) (string, error)

	// Run executes the tool with inherited stdio and waits for completion.
	Run(ctx context.Context, tool string, args ...string) error

	// Output executes the tool and returns its captured standard output.
	Output(ctx context.Context, tool string, args ...string) (string, error)
}

// ExecRunner runs tools as real child processes via os/exec.
type ExecRunner struct {
	// Timeout bounds a single invocation. Zero means unbounded.
	Timeout time.Duration
}

// NewExecRunner creates an ExecRunner with the default command timeout.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{Timeout: defaults.CommandTimeout}
}

// Look resolves tool on PATH.
func (r *ExecRunner) Look(tool string) (string, error) {
	path, err := exec.LookPath(tool)
	if err != nil {
		return "", enverrors.Wrap(enverrors.ErrCodePrecondition, "tool not found on PATH: "+tool, err)
	}
	return path, nil
}

// Run executes the tool with stdio inherited from the parent process.
func (r *ExecRunner) Run(ctx context.Context, tool string, args ...string) error {
	ctx, cancel := r.bound(ctx)
	defer cancel()

	inv := Invocation{Tool: tool, Args: args}
	slog.Debug("executing command", slog.String("cmd", inv.String()))

	cmd := exec.CommandContext(ctx, tool, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return enverrors.Wrap(enverrors.ErrCodeExec, inv.String(), err)
	}
	return nil
}

// Output executes the tool and captures its standard output. Standard
// error is captured too and included in the failure message, since azd and
// az report diagnostics there.
func (r *ExecRunner) Output(ctx context.Context, tool string, args ...string) (string, error) {
	ctx, cancel := r.bound(ctx)
	defer cancel()

	inv := Invocation{Tool: tool, Args: args}
	slog.Debug("executing command", slog.String("cmd", inv.String()))

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, tool, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		msg := inv.String()
		if s := strings.TrimSpace(stderr.String()); s != "" {
			msg += ": " + s
		}
		return "", enverrors.Wrap(enverrors.ErrCodeExec, msg, err)
	}
	return strings.TrimSpace(stdout.String()), nil
}

func (r *ExecRunner) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.Timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.Timeout)
}
