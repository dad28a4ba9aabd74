package toolchain

import (
	"context"
	"sync"

	enverrors "github.com/solution-accelerators/envprov/pkg/errors"
)

// Recorder is a Runner fake that records every invocation instead of
// executing anything. Failure modes are injected per tool or per rendered
// command line.
type Recorder struct {
	mu sync.Mutex

	// MissingTools simulates tools absent from PATH.
	MissingTools map[string]bool

	// FailOn maps a rendered command line (Invocation.String()) to the
	// error its execution should return.
	FailOn map[string]error

	// Outputs maps a rendered command line to the stdout Output returns.
	Outputs map[string]string

	// Invocations are the Run/Output calls in order. Look calls are not
	// recorded: resolving a tool is not a command invocation.
	Invocations []Invocation
}

// Look resolves tool unless it is listed in MissingTools.
func (r *Recorder) Look(tool string) (string, error) {
	if r.MissingTools[tool] {
		return "", enverrors.New(enverrors.ErrCodePrecondition, "tool not found on PATH: "+tool)
	}
	return "/usr/local/bin/" + tool, nil
}

// Run records the invocation and returns any injected failure.
func (r *Recorder) Run(ctx context.Context, tool string, args ...string) error {
	_, err := r.record(ctx, tool, args)
	return err
}

// Output records the invocation and returns any injected stdout or failure.
func (r *Recorder) Output(ctx context.Context, tool string, args ...string) (string, error) {
	return r.record(ctx, tool, args)
}

func (r *Recorder) record(ctx context.Context, tool string, args []string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	inv := Invocation{Tool: tool, Args: args}
	r.Invocations = append(r.Invocations, inv)

	if err, ok := r.FailOn[inv.String()]; ok {
		return "", err
	}
	return r.Outputs[inv.String()], nil
}

// CommandLines returns the recorded invocations rendered as command lines.
func (r *Recorder) CommandLines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	lines := make([]string, 0, len(r.Invocations))
	for _, inv := range r.Invocations {
		lines = append(lines, inv.String())
	}
	return lines
}
