// Package history defines the application port for a program's
// event-history store: a supplementary, diagnostics-only record of
// when each supervised program started and exited, kept outside the
// core state machine (it is never read back to decide a transition).
package history

import "github.com/kodflow/overseerd/internal/domain/process"

// Recorder persists lifecycle events for later inspection via
// GET /programs/{name}. Implementations must tolerate being nil at the
// call site (callers check before invoking); Record itself never blocks
// the caller's state-machine loop for long, but a slow or failing store
// must not be allowed to stall program supervision, so callers treat a
// Record error as log-and-continue.
type Recorder interface {
	// Record appends one lifecycle event for program.
	//
	// Params:
	//   - program: the program name the event belongs to.
	//   - event: the lifecycle event to persist.
	//
	// Returns:
	//   - error: any error persisting the event.
	Record(program string, event process.Event) error

	// Recent returns up to limit of the most recently recorded events
	// for program, newest first.
	//
	// Params:
	//   - program: the program name to query.
	//   - limit: the maximum number of events to return.
	//
	// Returns:
	//   - []process.Event: the most recent events, newest first.
	//   - error: any error reading the store.
	Recent(program string, limit int) ([]process.Event, error)
}
