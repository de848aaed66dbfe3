package supervisor_test

import (
	"context"
	"sync"

	"github.com/kodflow/overseerd/internal/domain/process"
)

// fakeAdapter is an in-memory process.ChildAdapter test double. Each
// Spawn hands out an incrementing fake PID and a dedicated exit channel;
// a test simulates a child dying either by calling exit directly (the
// program terminates on its own) or indirectly via Kill (the supervisor
// terminates it). It never touches the OS.
type fakeAdapter struct {
	mu         sync.Mutex
	nextPID    int
	lastPID    int
	children   map[int]chan process.ExitResult
	spawnCount int
	killCount  int
	spawnErr   error
}

func newFakeAdapter() *fakeAdapter {
	return &fakeAdapter{children: make(map[int]chan process.ExitResult)}
}

func (f *fakeAdapter) Spawn(_ context.Context, _ process.Spec, _ ...process.SpawnOption) (process.ChildHandle, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.spawnErr != nil {
		return process.ChildHandle{}, f.spawnErr
	}

	f.nextPID++
	pid := f.nextPID
	f.lastPID = pid
	ch := make(chan process.ExitResult, 1)
	f.children[pid] = ch
	f.spawnCount++

	return process.ChildHandle{PID: pid, Wait: ch}, nil
}

func (f *fakeAdapter) Poll(handle process.ChildHandle) (process.DerivedState, error) {
	select {
	case res, ok := <-handle.Wait:
		if !ok {
			return process.DerivedExited(0), nil
		}
		return process.DerivedExited(res.Code), nil
	default:
		return process.DerivedAlive(), nil
	}
}

func (f *fakeAdapter) Kill(handle process.ChildHandle) error {
	f.mu.Lock()
	ch := f.children[handle.PID]
	f.killCount++
	f.mu.Unlock()

	if ch == nil {
		return nil
	}
	select {
	case ch <- process.ExitResult{Code: -1}:
	default:
	}
	return nil
}

// exit simulates a supervised child terminating on its own with the
// given exit code.
func (f *fakeAdapter) exit(pid, code int) {
	f.mu.Lock()
	ch := f.children[pid]
	f.mu.Unlock()

	if ch == nil {
		return
	}
	select {
	case ch <- process.ExitResult{Code: code}:
	default:
	}
}

func (f *fakeAdapter) SpawnCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.spawnCount
}

func (f *fakeAdapter) KillCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.killCount
}

func (f *fakeAdapter) LastPID() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastPID
}
