// Package executor provides infrastructure adapters for OS process execution.
package executor

import (
	"context"
	"errors"
	"os"
	"syscall"
	"time"

	domain "github.com/kodflow/overseerd/internal/domain/process"
)

// killTimeout bounds how long Kill waits for a graceful SIGTERM exit
// before escalating to SIGKILL.
const killTimeout time.Duration = 5 * time.Second

// Adapter implements domain/process.ChildAdapter on top of Executor. It is
// a pure adapter: it performs no status-registry mutation and makes no
// restart-policy decisions.
type Adapter struct {
	exec *Executor
}

// NewAdapter wraps an Executor as a domain ChildAdapter.
//
// Params:
//   - exec: the Unix process executor to delegate to.
//
// Returns:
//   - *Adapter: a ChildAdapter implementation.
func NewAdapter(exec *Executor) *Adapter {
	return &Adapter{exec: exec}
}

// Spawn launches spec.Command with spec.Args and spec.Env overlaid on the
// current environment. A WithOutput option, if given, is translated into
// the executor's own StartOption so the child's stdout/stderr land on
// the writers the caller supplied; a stream left unset inherits the
// supervisor's own stdout/stderr.
//
// Params:
//   - ctx: context governing the spawned command's lifetime.
//   - spec: the process specification to launch.
//   - opts: optional Spawn behavior; currently just output redirection.
//
// Returns:
//   - domain.ChildHandle: a handle to the newly spawned child.
//   - error: the underlying OS cause if spawning failed.
func (a *Adapter) Spawn(ctx context.Context, spec domain.Spec, opts ...domain.SpawnOption) (domain.ChildHandle, error) {
	var spawnOpts domain.SpawnOptions
	for _, opt := range opts {
		opt(&spawnOpts)
	}

	stdout, stderr := spawnOpts.Stdout, spawnOpts.Stderr
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	pid, wait, err := a.exec.Start(ctx, spec, WithOutput(stdout, stderr))
	// Check if the underlying start failed.
	if err != nil {
		// Return a zero handle and the OS cause; the caller (supervisor)
		// wraps this with the program name per the error taxonomy.
		return domain.ChildHandle{}, err
	}

	// Return the handle wrapping the PID and the exit-notification channel.
	return domain.ChildHandle{PID: pid, Wait: wait}, nil
}

// Poll is a non-blocking query of a child's liveness.
//
// Params:
//   - handle: the child handle to poll.
//
// Returns:
//   - domain.DerivedState: Alive if no exit has been observed yet, Exited(code) otherwise.
//   - error: always nil; poll never fails for this adapter.
func (a *Adapter) Poll(handle domain.ChildHandle) (domain.DerivedState, error) {
	select {
	case result := <-handle.Wait:
		// The wait channel delivered exactly one result: the child exited.
		return domain.DerivedExited(result.Code), nil
	default:
		// Nothing delivered yet: the child is still executing.
		return domain.DerivedAlive(), nil
	}
}

// Kill requests immediate termination of the child. It is idempotent if
// the child has already exited: ESRCH ("no such process") and
// os.ErrProcessDone are treated as success, not a failure.
//
// Params:
//   - handle: the child handle to kill.
//
// Returns:
//   - error: nil on success or on an already-exited child, otherwise the OS cause.
func (a *Adapter) Kill(handle domain.ChildHandle) error {
	err := a.exec.Stop(handle.PID, killTimeout)
	// Check if the underlying stop failed.
	if err == nil {
		// Stop succeeded outright.
		return nil
	}

	// A process that has already exited is not a failure for Kill.
	if errors.Is(err, syscall.ESRCH) || errors.Is(err, os.ErrProcessDone) {
		// Treat "no such process" as idempotent success.
		return nil
	}

	// Propagate any other OS cause.
	return err
}
