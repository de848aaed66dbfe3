package http

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/kodflow/overseerd/internal/application/history"
	"github.com/kodflow/overseerd/internal/application/supervisor"
	"github.com/kodflow/overseerd/internal/domain/logging"
)

// historyLimit bounds how many recent events GET /programs/{name} embeds.
const historyLimit = 20

// Server is the HTTP admin front-end: a thin read/dispatch layer over
// the Status Registry and Command Gateway built by the Supervisor Pool.
// It holds no supervision state of its own.
type Server struct {
	host   string
	port   int
	server *http.Server

	registry *supervisor.Registry
	gateway  *supervisor.Gateway
	history  history.Recorder
	logger   logging.Logger
}

// NewServer builds an admin HTTP server bound to host:port, routing
// requests against registry and gateway.
//
// Params:
//   - host: the interface to bind to.
//   - port: the TCP port to bind to.
//   - registry: the Status Registry to read program and application status from.
//   - gateway: the Command Gateway to dispatch start/stop/restart commands through.
//   - recorder: optional event-history recorder embedded in GET /programs/{name}; nil is safe.
//   - logger: optional structured logger; nil is safe.
//
// Returns:
//   - *Server: a server ready to Serve.
func NewServer(host string, port int, registry *supervisor.Registry, gateway *supervisor.Gateway, recorder history.Recorder, logger logging.Logger) *Server {
	s := &Server{
		host:     host,
		port:     port,
		registry: registry,
		gateway:  gateway,
		history:  recorder,
		logger:   logger,
	}

	router := httprouter.New()
	router.GET("/ready", s.handleReady)
	router.GET("/app", s.handleApplication)
	router.GET("/programs", s.handleListPrograms)
	router.GET("/programs/:name", s.handleGetProgram)
	router.POST("/programs/:name/:action", s.handleCommand)

	s.server = &http.Server{
		Addr:    net.JoinHostPort(host, fmt.Sprint(port)),
		Handler: router,
	}
	return s
}

// Handler returns the server's routed http.Handler, primarily so tests
// can exercise routes in-process via httptest without binding a port.
//
// Returns:
//   - http.Handler: the server's router.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Serve starts accepting connections and blocks until the listener
// stops, either because Shutdown was called (returns nil) or because
// ListenAndServe failed for another reason.
//
// Returns:
//   - error: nil on graceful shutdown, otherwise the listen/serve error.
func (s *Server) Serve() error {
	err := s.server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown gracefully stops the server, waiting for in-flight requests
// to complete or ctx to be cancelled, whichever comes first.
//
// Params:
//   - ctx: bounds how long Shutdown waits for in-flight requests.
//
// Returns:
//   - error: any error returned by the underlying http.Server.Shutdown.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
