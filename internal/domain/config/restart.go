// Package config provides domain value objects for service configuration.
package config

// RestartConfig defines program restart behavior.
//
// Retries and backoff are intentionally absent: the core state machine
// applies Policy unconditionally on every observed exit. Restart counting
// for diagnostic exposure lives in domain/process.RestartTracker, which
// never feeds back into this config or gates a transition.
type RestartConfig struct {
	// Policy specifies when the program should be restarted after it exits.
	Policy RestartPolicy
}

// RestartPolicy defines when to restart a program after it exits.
type RestartPolicy string

// Restart policy constants.
const (
	// RestartAlways restarts the program on any exit, success or failure.
	RestartAlways RestartPolicy = "always"
	// RestartNever never restarts the program after exit.
	RestartNever RestartPolicy = "never"
	// RestartOnError restarts the program exactly when the exit status reports failure.
	RestartOnError RestartPolicy = "on-error"
)

// String returns the string representation of the restart policy.
//
// Returns:
//   - string: the policy value as a string.
func (p RestartPolicy) String() string {
	// convert policy to string
	return string(p)
}

// ShouldRestart determines whether an observed exit should trigger a restart.
//
// Params:
//   - exitCode: the exit code returned by the process.
//
// Returns:
//   - bool: true if a Start should be enqueued for this exit.
func (p RestartPolicy) ShouldRestart(exitCode int) bool {
	// dispatch on policy to decide whether an exit should trigger a restart
	switch p {
	// restart regardless of exit status
	case RestartAlways:
		return true
	// restart only when the exit status reports failure
	case RestartOnError:
		return exitCode != 0
	// never restart
	case RestartNever:
		return false
	// unknown policy defaults to no restart
	default:
		return false
	}
}

// DefaultRestartConfig returns a RestartConfig with sensible defaults.
//
// Returns:
//   - RestartConfig: a configuration with the OnError policy.
func DefaultRestartConfig() RestartConfig {
	// create config with OnError policy
	return RestartConfig{Policy: RestartOnError}
}

// NewRestartConfig creates a new RestartConfig with the given policy.
//
// Params:
//   - policy: the restart policy to use.
//
// Returns:
//   - RestartConfig: a restart configuration with the given policy.
func NewRestartConfig(policy RestartPolicy) RestartConfig {
	// create config with specified policy
	return RestartConfig{Policy: policy}
}
