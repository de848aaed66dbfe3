package supervisor

import (
	"context"
	"time"

	"github.com/kodflow/overseerd/internal/application/history"
	"github.com/kodflow/overseerd/internal/domain/config"
	"github.com/kodflow/overseerd/internal/domain/logging"
	"github.com/kodflow/overseerd/internal/domain/process"
)

// heartbeatInterval is the mailbox-receive timeout: the worker observes
// child exit only via this polling cadence, so it bounds exit-detection
// latency without wiring OS signal handlers.
const heartbeatInterval time.Duration = 10 * time.Millisecond

// Worker is the Supervisor Worker: it owns one optional
// ChildHandle for one program, consumes commands from its Mailbox, polls
// child liveness through the Child Adapter, and runs the state machine
// by calling process.Decide and executing the resulting actions in
// order. It never blocks indefinitely on either the child or the
// mailbox.
type Worker struct {
	cfg            config.ProgramConfig
	adapter        process.ChildAdapter
	mailbox        *Mailbox
	registry       *Registry
	tracker        *process.RestartTracker
	logger         logging.Logger
	recorder       history.Recorder
	captureFactory CaptureFactory

	handle    process.ChildHandle
	startedAt time.Time
	capture   OutputCapture
}

// NewWorker builds a worker for one program. The worker does not start
// consuming its mailbox until Run is called.
//
// Params:
//   - cfg: the program's immutable configuration.
//   - adapter: the Child Adapter used to spawn/poll/kill this program's child.
//   - mailbox: this worker's command mailbox (the worker is its sole consumer).
//   - registry: the shared Status Registry.
//   - logger: optional structured logger; nil is safe (events are dropped).
//   - recorder: optional event-history recorder; nil is safe (events are dropped).
//   - captureFactory: optional builder for per-spawn stdout/stderr capture;
//     nil is safe (the child's output is left unset, so it inherits the
//     supervisor's own stdout/stderr) and
//     is also what every worker gets when its program never configures
//     Logging, regardless of whether a factory is supplied.
//
// Returns:
//   - *Worker: a worker ready to Run.
func NewWorker(cfg config.ProgramConfig, adapter process.ChildAdapter, mailbox *Mailbox, registry *Registry, logger logging.Logger, recorder history.Recorder, captureFactory CaptureFactory) *Worker {
	return &Worker{
		cfg:            cfg,
		adapter:        adapter,
		mailbox:        mailbox,
		registry:       registry,
		tracker:        process.NewRestartTracker(),
		logger:         logger,
		recorder:       recorder,
		captureFactory: captureFactory,
	}
}

// Run drives the worker through its lifecycle until ctx is cancelled
// (graceful shutdown) or a fatal adapter error occurs. It is
// intended to run on its own goroutine for the lifetime of the
// supervisor pool.
//
// Params:
//   - ctx: cancelled by the pool to request shutdown.
func (w *Worker) Run(ctx context.Context) {
	defer w.mailbox.Close()

	for {
		if ctx.Err() != nil {
			w.shutdown()
			return
		}

		derived, err := w.derive()
		if err != nil {
			w.fail(err)
			return
		}
		if derived.Kind == process.Exited {
			w.tracker.RecordExit(derived.ExitCode)
			w.recordExit(derived.ExitCode)
		}

		cmd, ok := w.mailbox.Receive(ctx, heartbeatInterval)
		if !ok && ctx.Err() != nil {
			w.shutdown()
			return
		}

		var cmdPtr *process.CommandMsg
		if ok {
			cmdPtr = &cmd
		}

		actions := process.Decide(derived, cmdPtr, w.cfg.Restart.Policy)
		if err := w.execute(actions); err != nil {
			w.fail(err)
			return
		}
	}
}

// derive computes this worker's derived state from its current
// handle and a fresh non-blocking poll.
//
// Returns:
//   - process.DerivedState: NoChild, Alive, or Exited(code).
//   - error: a wrapped PollError if the adapter's poll call failed.
func (w *Worker) derive() (process.DerivedState, error) {
	if w.handle.Empty() {
		return process.DerivedNoChild(), nil
	}

	state, err := w.adapter.Poll(w.handle)
	if err != nil {
		return process.DerivedState{}, process.NewPollError(w.cfg.Name, err)
	}
	return state, nil
}

// execute runs the pure action list produced by Decide, in order,
// against the Child Adapter and the Status Registry.
//
// Params:
//   - actions: the actions to execute, in order.
//
// Returns:
//   - error: a wrapped SpawnError if spawning the child failed; kill
//     failures are logged and do not abort the step.
func (w *Worker) execute(actions []process.Action) error {
	for _, action := range actions {
		switch action.Kind {
		case process.ActionSpawnChild:
			if err := w.spawn(); err != nil {
				return err
			}
		case process.ActionKillChild:
			w.kill()
		case process.ActionClearHandle:
			w.handle = process.ChildHandle{}
			w.closeCapture()
		case process.ActionUpdateStatus:
			w.updateStatus(action.Status)
		case process.ActionEnqueueCommand:
			w.enqueue(action.Command)
		}
	}
	return nil
}

// spawn launches a new child for this program via the Child Adapter. If
// the program configures Logging and a CaptureFactory was supplied, it
// opens a fresh OutputCapture first and routes the child's stdout/stderr
// to it; the capture outlives the child until the handle is cleared.
//
// Returns:
//   - error: a wrapped SpawnError if capture setup or the adapter spawn failed.
func (w *Worker) spawn() error {
	spec := process.NewSpec(process.SpecParams{
		Command: w.cfg.Command,
		Args:    w.cfg.Args,
		Dir:     w.cfg.WorkingDirectory,
		Env:     w.cfg.Environment,
		User:    w.cfg.User,
		Group:   w.cfg.Group,
	})

	var opts []process.SpawnOption
	if w.cfg.Logging.Enabled() && w.captureFactory != nil {
		capture, err := w.captureFactory(w.cfg.Name, w.cfg.Logging)
		if err != nil {
			return process.NewSpawnError(w.cfg.Name, err)
		}
		w.capture = capture
		opts = append(opts, process.WithOutput(capture.Stdout(), capture.Stderr()))
	}

	handle, err := w.adapter.Spawn(context.Background(), spec, opts...)
	if err != nil {
		w.closeCapture()
		return process.NewSpawnError(w.cfg.Name, err)
	}

	w.handle = handle
	w.startedAt = time.Now()
	w.recordEvent(process.NewEvent(process.EventStarted, w.cfg.Name, handle.PID, 0, nil))
	return nil
}

// closeCapture releases the current OutputCapture, if any. A close
// failure is logged and never aborts the caller: a broken log sink must
// not stop supervision.
func (w *Worker) closeCapture() {
	if w.capture == nil {
		return
	}
	if err := w.capture.Close(); err != nil {
		w.logWarn("capture_close_failed", err)
	}
	w.capture = nil
}

// recordExit records the program's exit as EventStopped (exit code 0)
// or EventFailed (non-zero), using the PID it last ran under.
//
// Params:
//   - exitCode: the exit code derive observed for the dead child.
func (w *Worker) recordExit(exitCode int) {
	eventType := process.EventStopped
	if exitCode != 0 {
		eventType = process.EventFailed
	}
	pid := w.handle.PID
	w.recordEvent(process.NewEvent(eventType, w.cfg.Name, pid, exitCode, nil))
}

// recordEvent appends one event to the history recorder, if configured.
// A recorder failure is logged and never interrupts supervision.
//
// Params:
//   - event: the event to record.
func (w *Worker) recordEvent(event process.Event) {
	if w.recorder == nil {
		return
	}
	if err := w.recorder.Record(w.cfg.Name, event); err != nil {
		w.logWarn("history_record_failed", err)
	}
}

// kill asks the Child Adapter to terminate the current child. A kill
// failure is logged, never fatal: the child may still exit of its
// own accord and be reaped by the next poll.
func (w *Worker) kill() {
	if w.handle.Empty() {
		return
	}
	if err := w.adapter.Kill(w.handle); err != nil {
		w.logWarn("kill_failed", process.NewKillError(w.cfg.Name, err))
	}
}

// updateStatus writes a status snapshot to the registry: the given state,
// the current child's PID and uptime, and the counters kept by the
// restart tracker. Restarts themselves are recorded in enqueue.
//
// Params:
//   - state: the program state to record.
func (w *Worker) updateStatus(state process.ProgramState) {
	pid := 0
	var uptime time.Duration
	if !w.handle.Empty() {
		pid = w.handle.PID
		uptime = time.Since(w.startedAt)
	}

	w.registry.Set(w.cfg.Name, process.Status{
		Name:         w.cfg.Name,
		State:        state,
		PID:          pid,
		Uptime:       uptime,
		Restarts:     w.tracker.Attempts(),
		LastExitCode: w.tracker.LastExitCode(),
	})
}

// enqueue self-posts a command onto this worker's own mailbox. Every
// EnqueueCommand action produced by Decide carries CommandStart and
// represents a policy-driven restart, so this also records the attempt
// on the restart tracker.
//
// Params:
//   - cmd: the command to self-enqueue.
func (w *Worker) enqueue(cmd process.CommandMsg) {
	if err := w.mailbox.Send(cmd); err != nil {
		// The mailbox is only closed by this same goroutine on exit, so a
		// failure here is unreachable in practice; log defensively.
		w.logWarn("self_enqueue_failed", err)
		return
	}
	if cmd == process.CommandStart {
		w.tracker.RecordRestart()
	}
}

// shutdown is the graceful teardown path: kill the child if one
// is alive and mark the program Stopped.
func (w *Worker) shutdown() {
	if !w.handle.Empty() {
		w.kill()
		w.handle = process.ChildHandle{}
	}
	w.closeCapture()
	w.updateStatus(process.ProgramStopped)
}

// fail handles a fatal adapter error (SpawnError or PollError-class):
// the program becomes unrecoverable for this worker. The
// mailbox is closed (via Run's deferred Close) so further HTTP commands
// surface as SendError to the caller.
//
// Params:
//   - err: the fatal error that ended this worker's loop.
func (w *Worker) fail(err error) {
	w.closeCapture()
	w.updateStatus(process.ProgramStopped)
	w.logError("supervisor_failed", err)
}

// logWarn emits a warning-level event if a logger is configured.
//
// Params:
//   - eventType: short event type tag.
//   - err: the error to attach.
func (w *Worker) logWarn(eventType string, err error) {
	if w.logger == nil {
		return
	}
	w.logger.Warn(w.cfg.Name, eventType, err.Error(), nil)
}

// logError emits an error-level event if a logger is configured.
//
// Params:
//   - eventType: short event type tag.
//   - err: the error to attach.
func (w *Worker) logError(eventType string, err error) {
	if w.logger == nil {
		return
	}
	w.logger.Error(w.cfg.Name, eventType, err.Error(), nil)
}
