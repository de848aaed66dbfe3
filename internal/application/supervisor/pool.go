package supervisor

import (
	"context"
	"sync"

	"github.com/kodflow/overseerd/internal/application/history"
	"github.com/kodflow/overseerd/internal/domain/config"
	"github.com/kodflow/overseerd/internal/domain/logging"
	"github.com/kodflow/overseerd/internal/domain/process"
)

// Pool is the Supervisor Pool: it builds one Supervisor Worker per
// configured program, wires each to its own command mailbox, and
// publishes the Command Gateway and Status Registry shared with the HTTP
// front-end. Post-construction it performs no further coordination
// beyond fanning out shutdown: workers are otherwise independent.
type Pool struct {
	registry *Registry
	gateway  *Gateway
	workers  []*Worker

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewPool builds a worker, with its own mailbox, for every program in
// programs. Workers do not start running until Start is called.
//
// Params:
//   - programs: the configured programs to supervise.
//   - adapter: the Child Adapter shared by every worker (it is a pure,
//     stateless wrapper around OS process operations, so one instance
//     safely serves every program).
//   - logger: optional structured logger passed to every worker.
//   - recorder: optional event-history recorder passed to every worker.
//   - captureFactory: optional builder for per-program stdout/stderr
//     capture, passed to every worker; nil is safe.
//
// Returns:
//   - *Pool: a pool with its Status Registry and Command Gateway ready to
//     be handed to the HTTP front-end, even before Start is called.
func NewPool(programs []config.ProgramConfig, adapter process.ChildAdapter, logger logging.Logger, recorder history.Recorder, captureFactory CaptureFactory) *Pool {
	registry := NewRegistry()
	mailboxes := make(map[string]*Mailbox, len(programs))
	workers := make([]*Worker, 0, len(programs))

	for _, cfg := range programs {
		mailbox := NewMailbox()
		mailboxes[cfg.Name] = mailbox
		workers = append(workers, NewWorker(cfg, adapter, mailbox, registry, logger, recorder, captureFactory))
	}

	return &Pool{
		registry: registry,
		gateway:  NewGateway(mailboxes),
		workers:  workers,
	}
}

// Registry returns the shared Status Registry.
//
// Returns:
//   - *Registry: the pool's status registry.
func (p *Pool) Registry() *Registry {
	return p.registry
}

// Gateway returns the Command Gateway exposed to the HTTP front-end.
//
// Returns:
//   - *Gateway: the pool's command gateway.
func (p *Pool) Gateway() *Gateway {
	return p.gateway
}

// Start spawns one goroutine per worker. It returns immediately; workers
// run until Stop cancels them.
//
// Params:
//   - ctx: the parent context; cancelling it also stops every worker.
func (p *Pool) Start(ctx context.Context) {
	runCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel

	for _, w := range p.workers {
		p.wg.Add(1)
		go func(worker *Worker) {
			defer p.wg.Done()
			worker.Run(runCtx)
		}(w)
	}
}

// Stop cancels every worker's context and blocks until all of them have
// returned: each worker kills its child (if any) and marks its program
// Stopped before exiting.
func (p *Pool) Stop() {
	if p.cancel != nil {
		p.cancel()
	}
	p.wg.Wait()
}
