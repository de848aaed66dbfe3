// Package process provides domain entities and value objects for process lifecycle management.
package process

import "github.com/kodflow/overseerd/internal/domain/config"

// Decide computes the pure list of intended actions for one supervisor
// step from (derived state, optional command, restart policy), exactly
// per the transition table: every (derived_state, command?) pair is
// total, and combinations not in the table are unreachable by
// construction (cmd is nil for "none").
//
// Params:
//   - state: the derived state at the start of this step.
//   - cmd: the command dequeued this step, or nil if none was available.
//   - policy: the program's restart policy, applied only on (Exited, none).
//
// Returns:
//   - []Action: the ordered list of side effects to execute for this step.
func Decide(state DerivedState, cmd *CommandMsg, policy config.RestartPolicy) []Action {
	switch state.Kind {
	case NoChild:
		return decideNoChild(cmd)
	case Alive:
		return decideAlive(cmd)
	case Exited:
		return decideExited(state.ExitCode, cmd, policy)
	default:
		return nil
	}
}

// decideNoChild handles the NoChild row of the transition table.
func decideNoChild(cmd *CommandMsg) []Action {
	if cmd == nil {
		// NoChild, none: no-op.
		return nil
	}
	switch *cmd {
	case CommandStart:
		// NoChild, Start: spawn child; set status Running.
		return []Action{SpawnChild(), UpdateStatus(ProgramRunning)}
	case CommandStop:
		// NoChild, Stop: no-op.
		return nil
	case CommandRestart:
		// NoChild, Restart: no-op. Nothing is running to restart.
		return nil
	default:
		return nil
	}
}

// decideAlive handles the Alive row of the transition table.
func decideAlive(cmd *CommandMsg) []Action {
	if cmd == nil {
		// Alive, none: no-op.
		return nil
	}
	switch *cmd {
	case CommandStart:
		// Alive, Start: no-op (already running).
		return nil
	case CommandStop:
		// Alive, Stop: kill child; set status Stopped; clear handle.
		return []Action{KillChild(), UpdateStatus(ProgramStopped), ClearHandle()}
	case CommandRestart:
		// Alive, Restart: kill child; spawn new child; set status Running.
		return []Action{KillChild(), SpawnChild(), UpdateStatus(ProgramRunning)}
	default:
		return nil
	}
}

// decideExited handles the Exited row of the transition table.
func decideExited(exitCode int, cmd *CommandMsg, policy config.RestartPolicy) []Action {
	if cmd == nil {
		// Exited(code), none: always set status Stopped first, clear handle
		// before any self-enqueue, then apply policy.
		actions := []Action{UpdateStatus(ProgramStopped), ClearHandle()}
		if policy.ShouldRestart(exitCode) {
			actions = append(actions, EnqueueCommand(CommandStart))
		}
		return actions
	}
	switch *cmd {
	case CommandStop:
		// Exited(_), Stop: clear handle; set status Stopped.
		return []Action{ClearHandle(), UpdateStatus(ProgramStopped)}
	case CommandStart, CommandRestart:
		// Exited(_), Start/Restart: spawn child; set status Running.
		return []Action{SpawnChild(), UpdateStatus(ProgramRunning)}
	default:
		return nil
	}
}
