package provisioner

import (
	"fmt"
	"io"
	"time"
)

// Report summarizes a completed provisioning run.
type Report struct {
	RunID       string        `json:"runId" yaml:"runId"`
	Environment string        `json:"environment" yaml:"environment"`
	Created     bool          `json:"created" yaml:"created"`
	EntriesSet  int           `json:"entriesSet" yaml:"entriesSet"`
	Duration    time.Duration `json:"duration" yaml:"duration"`
	Hints       []string      `json:"hints" yaml:"hints"`
}

// Print writes the human-readable completion message: the environment name
// and the follow-up command hints.
func (r *Report) Print(w io.Writer) {
	verb := "updated"
	if r.Created {
		verb = "created"
	}
	fmt.Fprintf(w, "Environment %s %s with %d configuration values.\n", r.Environment, verb, r.EntriesSet)
	fmt.Fprintln(w, "Next steps:")
	for _, hint := range r.Hints {
		fmt.Fprintf(w, "  %s\n", hint)
	}
}
