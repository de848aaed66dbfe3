// Package logging provides capture.go implementing stdout and stderr capture for programs.
// It provides writers that fan captured output out to a rotating file (when configured)
// and always to a prefixed console mirror on the standard streams.
package logging

import (
	"io"
	"os"
	"sync"

	"github.com/kodflow/overseerd/internal/domain/config"
)

// ProgramLogPather resolves the on-disk path for one program's log file.
// domain/config.Config satisfies this via its GetProgramLogPath method.
type ProgramLogPather interface {
	// GetProgramLogPath returns the full path for a program's log file.
	GetProgramLogPath(programName, logFile string) string
}

// Capture captures stdout and stderr for a program.
// It wraps output streams and provides thread-safe close operations.
type Capture struct {
	// mu protects concurrent access to the capture state.
	mu sync.Mutex
	// stdout is the writer for standard output.
	stdout io.WriteCloser
	// stderr is the writer for standard error.
	stderr io.WriteCloser
	// closed indicates whether the capture has been closed.
	closed bool
}

// NewCapture creates a new output capture for a program. Each stream
// always mirrors to a prefixed console writer; when the stream's
// configuration names a file, output additionally fans out to a
// rotating file via MultiWriter.
//
// Params:
//   - programName: the name of the program being captured, used as the
//     console line prefix and the log directory component.
//   - pather: resolves a log file name to its full on-disk path.
//   - cfg: the program's stdout/stderr stream configuration.
//
// Returns:
//   - *Capture: the initialized capture instance.
//   - error: an error if the rotating file writer could not be opened.
func NewCapture(programName string, pather ProgramLogPather, cfg config.ProgramLogging) (*Capture, error) {
	c := &Capture{}

	stdout, err := newCaptureStream(programName, "["+programName+"] ", os.Stdout, pather, cfg.Stdout)
	if err != nil {
		// Propagate the stdout writer creation error.
		return nil, err
	}
	c.stdout = stdout

	stderr, err := newCaptureStream(programName, "["+programName+"] ", os.Stderr, pather, cfg.Stderr)
	if err != nil {
		// Tear down the stdout stream before propagating the stderr error.
		_ = c.stdout.Close()
		return nil, err
	}
	c.stderr = stderr

	return c, nil
}

// newCaptureStream builds one stdout- or stderr-side writer: a console
// mirror always, plus a rotating file fan-out when stream.File() names one.
//
// Params:
//   - programName: the program owning this stream, used to resolve the log path.
//   - prefix: the per-line prefix applied to the console mirror.
//   - console: the underlying console stream (os.Stdout or os.Stderr).
//   - pather: resolves the stream's log file name to a full path.
//   - stream: the stream's file/rotation/format configuration.
//
// Returns:
//   - io.WriteCloser: the console-only writer, or a file+console fan-out.
//   - error: any error opening the rotating file.
func newCaptureStream(programName, prefix string, console io.Writer, pather ProgramLogPather, stream config.LogStreamConfig) (io.WriteCloser, error) {
	mirror := NewLineWriter(console, prefix)
	if stream.File() == "" {
		// No file configured: the console mirror alone is the stream.
		return mirror, nil
	}

	path := pather.GetProgramLogPath(programName, stream.File())
	file, err := NewWriter(path, &stream)
	if err != nil {
		// Propagate the file writer creation error.
		return nil, err
	}
	return NewMultiWriter(file, mirror), nil
}

// Stdout returns the stdout writer.
//
// Returns:
//   - io.Writer: the configured stdout writer instance.
func (c *Capture) Stdout() io.Writer {
	// Return the configured stdout writer for the capture.
	return c.stdout
}

// Stderr returns the stderr writer.
//
// Returns:
//   - io.Writer: the configured stderr writer instance.
func (c *Capture) Stderr() io.Writer {
	// Return the configured stderr writer for the capture.
	return c.stderr
}

// Close closes both output streams.
// It is thread-safe and can be called multiple times safely.
//
// Returns:
//   - error: the first error encountered during close operations, if any.
func (c *Capture) Close() error {
	c.mu.Lock()
	// Defer unlocking the mutex to ensure it is released on function exit.
	defer c.mu.Unlock()

	// Check if the capture has already been closed to prevent double-close.
	if c.closed {
		// Return nil since already closed successfully.
		return nil
	}
	c.closed = true

	var firstErr error
	// Check if stdout close returns an error and capture it.
	if err := c.stdout.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	// Check if stderr close returns an error and capture it.
	if err := c.stderr.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	// Return the first error encountered, or nil if both closed successfully.
	return firstErr
}
