// Package process provides domain entities and value objects for process lifecycle management.
package process

// ActionKind enumerates the intended side effects a supervisor step can
// produce. The Decide function returns a pure list of these before any
// side effect is executed, keeping the state machine testable with a
// mock Child Adapter and a mock mailbox.
type ActionKind int

// Action kind constants.
const (
	// ActionSpawnChild requests that the Child Adapter spawn a new child.
	ActionSpawnChild ActionKind = iota
	// ActionKillChild requests that the Child Adapter kill the current child.
	ActionKillChild
	// ActionClearHandle requests that the supervisor drop its ChildHandle.
	ActionClearHandle
	// ActionUpdateStatus requests a Status Registry write.
	ActionUpdateStatus
	// ActionEnqueueCommand requests a self-send onto the supervisor's own mailbox.
	ActionEnqueueCommand
)

// Action is one intended side effect produced by Decide. Only the field
// matching Kind is meaningful: Status for ActionUpdateStatus, Command for
// ActionEnqueueCommand.
type Action struct {
	// Kind identifies which side effect this action requests.
	Kind ActionKind
	// Status is the program state to write, valid when Kind == ActionUpdateStatus.
	Status ProgramState
	// Command is the command to self-enqueue, valid when Kind == ActionEnqueueCommand.
	Command CommandMsg
}

// SpawnChild is the ActionSpawnChild action.
func SpawnChild() Action { return Action{Kind: ActionSpawnChild} }

// KillChild is the ActionKillChild action.
func KillChild() Action { return Action{Kind: ActionKillChild} }

// ClearHandle is the ActionClearHandle action.
func ClearHandle() Action { return Action{Kind: ActionClearHandle} }

// UpdateStatus is the ActionUpdateStatus action for the given state.
//
// Params:
//   - s: the program state to record.
//
// Returns:
//   - Action: an ActionUpdateStatus action.
func UpdateStatus(s ProgramState) Action {
	return Action{Kind: ActionUpdateStatus, Status: s}
}

// EnqueueCommand is the ActionEnqueueCommand action for the given command.
//
// Params:
//   - c: the command to self-enqueue.
//
// Returns:
//   - Action: an ActionEnqueueCommand action.
func EnqueueCommand(c CommandMsg) Action {
	return Action{Kind: ActionEnqueueCommand, Command: c}
}
