// Package process provides domain entities and value objects for process lifecycle management.
package process

import (
	"errors"
	"fmt"
)

// Process domain sentinel errors, per the error taxonomy: SpawnError,
// PollError, and KillError are adapter-level failures wrapped with the
// program name before leaving the supervisor; SendError and
// UnknownProgram are raised above this package, by the mailbox and the
// command gateway respectively.
var (
	// ErrSpawn indicates the OS refused to launch a child process.
	ErrSpawn error = errors.New("spawn failed")
	// ErrPoll indicates the OS poll call failed.
	ErrPoll error = errors.New("poll failed")
	// ErrKill indicates the OS kill call failed and the child is not known to have exited.
	ErrKill error = errors.New("kill failed")
)

// NewSpawnError wraps a spawn failure with the owning program's name.
//
// Params:
//   - program: the name of the program that failed to spawn.
//   - cause: the underlying OS error.
//
// Returns:
//   - error: a wrapped error satisfying errors.Is(err, ErrSpawn).
func NewSpawnError(program string, cause error) error {
	return fmt.Errorf("spawn %q: %w: %w", program, ErrSpawn, cause)
}

// NewPollError wraps a poll failure with the owning program's name.
//
// Params:
//   - program: the name of the program whose poll call failed.
//   - cause: the underlying OS error.
//
// Returns:
//   - error: a wrapped error satisfying errors.Is(err, ErrPoll).
func NewPollError(program string, cause error) error {
	return fmt.Errorf("poll %q: %w: %w", program, ErrPoll, cause)
}

// NewKillError wraps a kill failure with the owning program's name.
//
// Params:
//   - program: the name of the program that failed to be killed.
//   - cause: the underlying OS error.
//
// Returns:
//   - error: a wrapped error satisfying errors.Is(err, ErrKill).
func NewKillError(program string, cause error) error {
	return fmt.Errorf("kill %q: %w: %w", program, ErrKill, cause)
}
