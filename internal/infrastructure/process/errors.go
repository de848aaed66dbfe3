// Package process provides shared infrastructure-level helpers for the
// OS-process adapters (executor, control, credentials, reaper).
package process

import "fmt"

// WrapError wraps a low-level OS error with the operation that produced it.
//
// Params:
//   - op: short name of the failing operation (e.g. "getpgid").
//   - err: the underlying error.
//
// Returns:
//   - error: a wrapped error, or nil if err is nil.
func WrapError(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", op, err)
}
