// Package config provides domain value objects for service configuration.
package config

const (
	// defaultMaxLogFiles is the default number of rotated log files to keep.
	defaultMaxLogFiles int = 10
)

// Config represents the root configuration structure.
// It contains global settings, logging configuration, and program definitions.
type Config struct {
	// Version specifies the configuration schema version for compatibility.
	Version string
	// Logging defines global logging defaults applied to the daemon and programs.
	Logging LoggingConfig
	// Programs contains the list of program configurations to supervise.
	Programs []ProgramConfig
	// AdminAPI configures the HTTP admin front-end's bind address and
	// optional event-history persistence.
	AdminAPI AdminAPIConfig
	// ConfigPath stores the path from which this configuration was loaded.
	ConfigPath string
}

// FindProgram returns a program configuration by name.
//
// Params:
//   - name: program name to find
//
// Returns:
//   - *ProgramConfig: program configuration or nil if not found
func (c *Config) FindProgram(name string) *ProgramConfig {
	// search programs by name
	for i := range c.Programs {
		// check if program name matches
		if c.Programs[i].Name == name {
			// return matching program
			return &c.Programs[i]
		}
	}
	// no match found
	return nil
}

// Validate validates the configuration.
//
// Returns:
//   - error: validation error if any
func (c *Config) Validate() error {
	// delegate to validation function
	return Validate(c)
}

// GetProgramLogPath returns the full path for a program log file.
//
// Params:
//   - programName: name of the program
//   - logFile: name of the log file
//
// Returns:
//   - string: full path to the program log file
func (c *Config) GetProgramLogPath(programName, logFile string) string {
	// Construct path by joining base directory, program name, and log filename.
	return c.Logging.BaseDir + "/" + programName + "/" + logFile
}

// NewConfig creates a new Config with the provided programs.
//
// Params:
//   - programs: list of program configurations to supervise.
//
// Returns:
//   - *Config: configuration with the provided programs and default logging settings.
func NewConfig(programs []ProgramConfig) *Config {
	// create config with version 1 and defaults
	return &Config{
		Version:  "1",
		Logging:  DefaultLoggingConfig(),
		Programs: programs,
		AdminAPI: DefaultAdminAPIConfig(),
	}
}

// DefaultConfig returns a new Config with default values.
//
// Returns:
//   - *Config: configuration with sensible defaults for logging and rotation
func DefaultConfig() *Config {
	// return config with default values
	return &Config{
		Version: "1",
		Logging: LoggingConfig{
			BaseDir: "/var/log/overseerd",
			Defaults: LogDefaults{
				TimestampFormat: "iso8601",
				Rotation: RotationConfig{
					MaxSize:  "100MB",
					MaxFiles: defaultMaxLogFiles,
				},
			},
		},
		AdminAPI: DefaultAdminAPIConfig(),
	}
}
