// Package config provides domain value objects for service configuration.
package config

// ProgramConfig defines a single supervised program.
//
// It is immutable for the lifetime of its supervisor: the Supervisor Pool
// consumes one ProgramConfig per worker and never mutates it afterward.
type ProgramConfig struct {
	// Name is the unique identifier for this program within the application.
	Name string
	// Command is the executable path or command to run.
	Command string
	// Args contains command-line arguments passed to the command.
	Args []string
	// Environment contains key-value pairs overlaid on the inherited environment.
	Environment map[string]string
	// Restart defines the restart behavior when the program exits.
	Restart RestartConfig

	// User optionally specifies the username the program runs as.
	// Empty means inherit the supervisor's own user.
	User string
	// Group optionally specifies the group the program runs as.
	// Empty means inherit the supervisor's own group.
	Group string
	// WorkingDirectory optionally specifies the program's working directory.
	// Empty means inherit the supervisor's own working directory.
	WorkingDirectory string

	// Logging optionally captures the program's stdout/stderr to rotating
	// files instead of inheriting the supervisor's stdio. A zero value
	// (Enabled() == false) leaves stdio inherited, which is the default.
	Logging ProgramLogging
}

// ProgramLogging configures optional stdout/stderr capture for a program.
// When Stdout and Stderr are both unset, the Child Adapter leaves the
// child's stdio inherited rather than redirected.
type ProgramLogging struct {
	// Stdout, if FilePath is non-empty, redirects the child's stdout to a
	// rotating file instead of inheriting the supervisor's stdout.
	Stdout LogStreamConfig
	// Stderr, if FilePath is non-empty, redirects the child's stderr to a
	// rotating file instead of inheriting the supervisor's stderr.
	Stderr LogStreamConfig
}

// Enabled reports whether any stdio capture is configured.
//
// Returns:
//   - bool: true if stdout or stderr capture is configured.
func (l ProgramLogging) Enabled() bool {
	// capture is active if either stream has a configured file path
	return l.Stdout.File() != "" || l.Stderr.File() != ""
}

// NewProgramConfig creates a new ProgramConfig with the given name and command.
//
// Params:
//   - name: unique identifier for the program
//   - command: executable path or command to run
//
// Returns:
//   - ProgramConfig: program configuration with the default restart policy
func NewProgramConfig(name, command string) ProgramConfig {
	// Return program config with default restart policy settings.
	return ProgramConfig{
		Name:    name,
		Command: command,
		Restart: DefaultRestartConfig(),
	}
}
