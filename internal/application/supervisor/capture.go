package supervisor

import (
	"io"

	"github.com/kodflow/overseerd/internal/domain/config"
)

// OutputCapture owns a program's captured stdout/stderr streams for the
// lifetime of one spawned child. A Worker closes it once the child's
// handle is cleared, whether from a clean exit, a kill, or shutdown.
type OutputCapture interface {
	// Stdout is the writer the Child Adapter should route the child's
	// standard output to.
	Stdout() io.Writer
	// Stderr is the writer the Child Adapter should route the child's
	// standard error to.
	Stderr() io.Writer
	// Close releases the underlying writers (rotating files, if any).
	Close() error
}

// CaptureFactory builds an OutputCapture for one program spawn, given
// that program's logging configuration. A nil factory leaves every
// worker relying on the Child Adapter's default (inherited) stdio.
type CaptureFactory func(programName string, cfg config.ProgramLogging) (OutputCapture, error)
