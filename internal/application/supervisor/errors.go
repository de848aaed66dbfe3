// Package supervisor implements the orchestration layer of the core: the
// Supervisor Worker state machine, the Supervisor Pool that builds one
// worker per configured program, the Status Registry shared with the HTTP
// front-end, and the Command Gateway the front-end posts commands through.
package supervisor

import "errors"

// Gateway/mailbox-level sentinel errors. SpawnError, PollError, and
// KillError live in domain/process because they are adapter-level
// failures; these two are raised here, above the mailbox and the
// command gateway respectively.
var (
	// ErrMailboxClosed indicates the supervisor owning this mailbox has
	// stopped consuming it (graceful shutdown or a fatal adapter error).
	ErrMailboxClosed error = errors.New("mailbox closed")
	// ErrUnknownProgram indicates the Command Gateway has no mailbox
	// registered under the requested program name.
	ErrUnknownProgram error = errors.New("unknown program")
)
