package supervisor

import (
	"fmt"

	"github.com/kodflow/overseerd/internal/domain/process"
)

// Gateway is a read-only map from program name to command sender,
// looked up by the HTTP front-end on each request. It is the only thing
// the transport layer is given access to beyond the Status Registry — it
// never reasons about state machines, only posts commands.
type Gateway struct {
	mailboxes map[string]*Mailbox
}

// NewGateway wraps a name-to-mailbox map as a Gateway. The map is not
// copied; callers must not mutate it after construction.
//
// Params:
//   - mailboxes: the program name to mailbox map built by the Supervisor Pool.
//
// Returns:
//   - *Gateway: a gateway ready to dispatch commands.
func NewGateway(mailboxes map[string]*Mailbox) *Gateway {
	return &Gateway{mailboxes: mailboxes}
}

// Dispatch posts a command to the named program's mailbox.
//
// Params:
//   - name: the program name.
//   - cmd: the command to post.
//
// Returns:
//   - error: ErrUnknownProgram if name is not registered, or a wrapped
//     SendError if the mailbox refused the command (its supervisor is gone).
func (g *Gateway) Dispatch(name string, cmd process.CommandMsg) error {
	mailbox, ok := g.mailboxes[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownProgram, name)
	}

	if err := mailbox.Send(cmd); err != nil {
		return fmt.Errorf("send %s to %q: %w", cmd, name, err)
	}
	return nil
}

// Names returns every program name known to the gateway, in no
// particular order.
//
// Returns:
//   - []string: the registered program names.
func (g *Gateway) Names() []string {
	names := make([]string, 0, len(g.mailboxes))
	for name := range g.mailboxes {
		names = append(names, name)
	}
	return names
}
