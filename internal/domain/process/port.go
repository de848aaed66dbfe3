// Package process provides domain entities and value objects for process lifecycle management.
package process

import (
	"context"
	"io"
)

// SpawnOptions collects the values accumulated from a Spawn call's
// SpawnOption arguments. It is exported so infrastructure adapters can
// read the accumulated options without reimplementing the accumulation.
type SpawnOptions struct {
	// Stdout, if non-nil, receives the child's standard output.
	Stdout io.Writer
	// Stderr, if non-nil, receives the child's standard error.
	Stderr io.Writer
}

// SpawnOption configures optional Spawn behavior beyond the command
// itself. The zero value of SpawnOptions leaves stdout/stderr unset,
// which a ChildAdapter implementation is free to treat as discarded.
type SpawnOption func(*SpawnOptions)

// WithOutput routes the child's stdout and stderr to the given writers.
// Passing a nil writer for either stream leaves that stream unset.
func WithOutput(stdout, stderr io.Writer) SpawnOption {
	return func(o *SpawnOptions) {
		o.Stdout = stdout
		o.Stderr = stderr
	}
}

// ChildAdapter is a thin wrapper around OS process spawn / non-blocking
// poll / kill. It is a pure adapter: it performs no status-registry
// mutation and makes no restart-policy decisions.
//
// This is a DOMAIN PORT: it defines what the application layer needs,
// and the infrastructure layer provides the implementation.
type ChildAdapter interface {
	// Spawn launches spec.Command with spec.Args and spec.Env overlaid on
	// the current environment. On failure it returns a SpawnError wrapping
	// the underlying OS cause. opts may redirect the child's stdout/stderr
	// via WithOutput; omitting it leaves the streams unset.
	Spawn(ctx context.Context, spec Spec, opts ...SpawnOption) (ChildHandle, error)

	// Poll is a non-blocking query of a child's liveness. It must not
	// block the caller.
	Poll(handle ChildHandle) (DerivedState, error)

	// Kill requests immediate termination of the child. It is idempotent
	// if the child has already exited.
	Kill(handle ChildHandle) error
}
