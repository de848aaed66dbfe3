// Package main provides the entry point for the overseerd process
// supervisor. overseerd launches a fixed roster of child programs
// described by a YAML configuration file, restarts them per their
// configured policy, and exposes an admin HTTP API to inspect and
// steer their lifecycles.
package main

import (
	"os"

	"github.com/kodflow/overseerd/internal/bootstrap"
)

func main() {
	os.Exit(bootstrap.Run())
}
