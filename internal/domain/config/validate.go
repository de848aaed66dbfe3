// Package config provides domain value objects for service configuration.
package config

import (
	"errors"
	"fmt"
)

// Validation errors.
var (
	// ErrNoPrograms indicates no programs are configured.
	ErrNoPrograms error = errors.New("no programs configured")
	// ErrEmptyProgramName indicates a program has no name.
	ErrEmptyProgramName error = errors.New("program name is required")
	// ErrEmptyCommand indicates a program has no command.
	ErrEmptyCommand error = errors.New("program command is required")
	// ErrDuplicateProgramName indicates duplicate program names.
	ErrDuplicateProgramName error = errors.New("duplicate program name")
)

// Validate validates the configuration.
//
// Params:
//   - cfg: configuration to validate
//
// Returns:
//   - error: validation error if any
func Validate(cfg *Config) error {
	// Check if at least one program is configured.
	if len(cfg.Programs) == 0 {
		// Return error when no programs are defined.
		return ErrNoPrograms
	}

	seen := make(map[string]bool, len(cfg.Programs))

	// Iterate through all programs to validate each one.
	for i := range cfg.Programs {
		prg := &cfg.Programs[i]

		// Validate the program configuration.
		if err := validateProgram(prg); err != nil {
			// Return wrapped error with program name context.
			return fmt.Errorf("program %q: %w", prg.Name, err)
		}

		// Check for duplicate program names.
		if seen[prg.Name] {
			// Return error for duplicate program name.
			return fmt.Errorf("%w: %s", ErrDuplicateProgramName, prg.Name)
		}
		seen[prg.Name] = true
	}

	// Return nil when all validations pass.
	return nil
}

// validateProgram validates a single program configuration.
//
// Params:
//   - prg: program configuration to validate
//
// Returns:
//   - error: validation error if any
func validateProgram(prg *ProgramConfig) error {
	// Check if program name is provided.
	if prg.Name == "" {
		// Return error when program name is empty.
		return ErrEmptyProgramName
	}

	// Check if program command is provided.
	if prg.Command == "" {
		// Return error when program command is empty.
		return ErrEmptyCommand
	}

	// Return nil when all validations pass.
	return nil
}
