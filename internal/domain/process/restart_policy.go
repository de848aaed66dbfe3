// Package process provides domain entities and value objects for process lifecycle management.
package process

import "time"

// RestartTracker accumulates diagnostic restart bookkeeping for one
// supervisor: a count of restarts and the exit code last observed.
//
// This is observability only. It never gates or delays the
// policy-driven EnqueueCommand(Start) produced by Decide; the transition
// table's behavior is unaffected by anything this type does. Restart-storm
// throttling (backoff, caps) is intentionally left to a future extension.
type RestartTracker struct {
	// attempts counts restarts observed since the supervisor started.
	attempts int
	// lastExitCode is the exit code of the most recently observed exit.
	lastExitCode int
	// lastRestart is when the tracker last recorded a restart.
	lastRestart time.Time
}

// NewRestartTracker creates a new, zeroed restart tracker.
//
// Returns:
//   - *RestartTracker: a new restart tracker instance.
func NewRestartTracker() *RestartTracker {
	return &RestartTracker{}
}

// RecordExit records an observed exit code. Call this once per
// Exited(code) step, independent of whether a restart follows.
//
// Params:
//   - exitCode: the exit code observed by the last poll.
func (rt *RestartTracker) RecordExit(exitCode int) {
	rt.lastExitCode = exitCode
}

// RecordRestart records that a restart was enqueued as a result of the
// most recent exit.
func (rt *RestartTracker) RecordRestart() {
	rt.attempts++
	rt.lastRestart = time.Now()
}

// Attempts returns the number of restarts recorded so far.
//
// Returns:
//   - int: the current restart count.
func (rt *RestartTracker) Attempts() int {
	return rt.attempts
}

// LastExitCode returns the most recently recorded exit code.
//
// Returns:
//   - int: the last observed exit code.
func (rt *RestartTracker) LastExitCode() int {
	return rt.lastExitCode
}

// LastRestart returns the timestamp of the most recent recorded restart.
//
// Returns:
//   - time.Time: the zero value if no restart has been recorded yet.
func (rt *RestartTracker) LastRestart() time.Time {
	return rt.lastRestart
}
