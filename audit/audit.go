// Package audit starts the external full-project compliance audit.
//
// The audit is a separate program; this package only launches it in the
// project root with the fixed arguments "--full --target ." and hands its
// output to the caller. Output and exit status are never interpreted.
package audit

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/hashicorp/go-hclog"
)

// CommandName is the name under which editor hosts register the audit command.
const CommandName = "constlint.auditProject"

// Args are the arguments appended to the entrypoint.
var Args = []string{"--full", "--target", "."}

// DefaultEntrypoint returns the audit program and its leading arguments.
func DefaultEntrypoint() []string {
	return []string{"python", "run_agi_audit.py"}
}

// Trigger starts audits for one project root.
type Trigger struct {
	// Entrypoint is the program and leading arguments. Empty means DefaultEntrypoint.
	Entrypoint []string
	// Dir is the project root the audit runs in.
	Dir string
	// Env is appended to the current environment.
	Env []string
	// Stdout and Stderr receive the audit output. Nil discards it.
	Stdout io.Writer
	Stderr io.Writer
	// Logger records audit starts and exits.
	Logger hclog.Logger
}

// Run is a started audit.
type Run struct {
	cmd    *exec.Cmd
	logger hclog.Logger
	done   chan struct{}
	err    error
}

// Command returns the full argument vector of the audit.
func (t *Trigger) Command() []string {
	entry := t.Entrypoint
	if len(entry) == 0 {
		entry = DefaultEntrypoint()
	}
	argv := make([]string, 0, len(entry)+len(Args))
	argv = append(argv, entry...)
	return append(argv, Args...)
}

// Start launches the audit and returns without waiting for it.
// Cancelling ctx kills the process. Only failures to start are returned.
func (t *Trigger) Start(ctx context.Context) (*Run, error) {
	argv := t.Command()
	logger := t.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = t.Dir
	cmd.Stdout = t.Stdout
	cmd.Stderr = t.Stderr
	if len(t.Env) > 0 {
		cmd.Env = append(os.Environ(), t.Env...)
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start audit %q: %w", argv[0], err)
	}
	logger.Info("audit started", "command", argv, "dir", t.Dir, "pid", cmd.Process.Pid)

	r := &Run{cmd: cmd, logger: logger, done: make(chan struct{})}
	go r.wait()
	return r, nil
}

func (r *Run) wait() {
	r.err = r.cmd.Wait()
	r.logger.Info("audit finished", "exit_code", r.cmd.ProcessState.ExitCode())
	close(r.done)
}

// Done is closed when the audit process exits.
func (r *Run) Done() <-chan struct{} {
	return r.done
}

// Wait blocks until the audit exits and returns the process's wait error.
// A non-zero exit status is reported as an *exec.ExitError.
func (r *Run) Wait() error {
	<-r.done
	return r.err
}

// Pid returns the process id of the audit.
func (r *Run) Pid() int {
	return r.cmd.Process.Pid
}
