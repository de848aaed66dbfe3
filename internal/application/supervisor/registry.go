package supervisor

import (
	"sync"

	"github.com/kodflow/overseerd/internal/domain/process"
)

// Registry is a process-wide mapping from program name to program
// status, plus the single application-wide status value. Read by the
// HTTP front-end, written only by supervisor workers. All operations
// serialize under a single mutex; holders must not perform I/O or
// blocking work while it is held, only the map mutation itself, so a
// slow HTTP client can never stall a worker's state machine.
type Registry struct {
	mu                sync.RWMutex
	programs          map[string]process.Status
	applicationStatus process.ApplicationStatus
}

// NewRegistry creates an empty registry. Program status entries are
// absent until the first Set call for that name; keys are never removed
// once written.
//
// Returns:
//   - *Registry: a new, empty status registry.
func NewRegistry() *Registry {
	return &Registry{
		programs:          make(map[string]process.Status),
		applicationStatus: process.ApplicationRunning,
	}
}

// Set idempotently writes a program's status: inserts if absent,
// overwrites if present.
//
// Params:
//   - name: the program name.
//   - status: the status snapshot to record.
func (r *Registry) Set(name string, status process.Status) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.programs[name] = status
}

// Get reads a program's status.
//
// Params:
//   - name: the program name.
//
// Returns:
//   - process.Status: the status snapshot, valid only if ok is true.
//   - bool: true if the program has a recorded status.
func (r *Registry) Get(name string) (process.Status, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.programs[name]
	return s, ok
}

// List returns a snapshot sequence of every recorded program status,
// ordered by name for deterministic output.
//
// Returns:
//   - []process.Status: a point-in-time copy of every program's status.
func (r *Registry) List() []process.Status {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]process.Status, 0, len(r.programs))
	for _, s := range r.programs {
		out = append(out, s)
	}
	sortStatusesByName(out)
	return out
}

// ApplicationStatus returns the current application-wide status.
//
// Returns:
//   - process.ApplicationStatus: the application status.
func (r *Registry) ApplicationStatus() process.ApplicationStatus {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.applicationStatus
}

// sortStatusesByName sorts statuses in place by program name, giving
// List a stable, deterministic ordering for the HTTP front-end.
//
// Params:
//   - statuses: the slice to sort in place.
func sortStatusesByName(statuses []process.Status) {
	for i := 1; i < len(statuses); i++ {
		for j := i; j > 0 && statuses[j-1].Name > statuses[j].Name; j-- {
			statuses[j-1], statuses[j] = statuses[j], statuses[j-1]
		}
	}
}
