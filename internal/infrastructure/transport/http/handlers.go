package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/kodflow/overseerd/internal/application/supervisor"
	"github.com/kodflow/overseerd/internal/domain/process"
)

// writeJSON encodes v as the response body with the given status code.
// Encoding failures are swallowed beyond logging: the status line and
// any bytes already flushed cannot be retracted.
//
// Params:
//   - w: the response writer.
//   - status: the HTTP status code to write.
//   - v: the value to encode as JSON.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logWarn("encode_response_failed", err)
	}
}

// writeError writes a responseError body with the given status code.
//
// Params:
//   - w: the response writer.
//   - status: the HTTP status code to write.
//   - msg: the error message to report.
func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, responseError{Error: msg})
}

// handleReady answers GET /ready: a bare liveness ping used by process
// managers and health checks. It never inspects the registry, so it
// stays up even if every supervised program is down.
func (s *Server) handleReady(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	w.WriteHeader(http.StatusOK)
}

// handleApplication answers GET /app with the whole-application status.
func (s *Server) handleApplication(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	status := s.registry.ApplicationStatus()
	s.writeJSON(w, http.StatusOK, applicationStatusResponse{Status: status.String()})
}

// handleListPrograms answers GET /programs with every known program's
// current status snapshot.
func (s *Server) handleListPrograms(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	s.writeJSON(w, http.StatusOK, toProgramStatusResponses(s.registry.List()))
}

// handleGetProgram answers GET /programs/:name with one program's
// status, or 404 if no such program has ever reported status.
func (s *Server) handleGetProgram(w http.ResponseWriter, _ *http.Request, ps httprouter.Params) {
	name := ps.ByName("name")
	status, ok := s.registry.Get(name)
	if !ok {
		s.writeError(w, http.StatusNotFound, "unknown program: "+name)
		return
	}
	s.writeJSON(w, http.StatusOK, toProgramStatusResponse(status, s.recentHistory(name)))
}

// recentHistory fetches the embedded history for one program's detail
// response. A nil recorder or a read failure both yield no history
// rather than failing the whole request.
//
// Params:
//   - name: the program name to look up.
//
// Returns:
//   - []process.Event: recent events, newest first, or nil.
func (s *Server) recentHistory(name string) []process.Event {
	if s.history == nil {
		return nil
	}
	events, err := s.history.Recent(name, historyLimit)
	if err != nil {
		s.logWarn("history_read_failed", err)
		return nil
	}
	return events
}

// handleCommand answers POST /programs/:name/:action, dispatching the
// requested command through the Command Gateway. Gateway errors map
// directly onto HTTP status codes: UnknownProgram is 404, SendError
// (mailbox closed) is 400.
func (s *Server) handleCommand(w http.ResponseWriter, _ *http.Request, ps httprouter.Params) {
	name := ps.ByName("name")
	action := ps.ByName("action")

	cmd, ok := commandFromAction(action)
	if !ok {
		s.writeError(w, http.StatusBadRequest, "unknown action: "+action)
		return
	}

	if err := s.gateway.Dispatch(name, cmd); err != nil {
		if errors.Is(err, supervisor.ErrUnknownProgram) {
			s.writeError(w, http.StatusNotFound, err.Error())
			return
		}
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	w.WriteHeader(http.StatusOK)
}

// logWarn emits a warning-level event if a logger is configured.
//
// Params:
//   - eventType: short event type tag.
//   - err: the error to attach.
func (s *Server) logWarn(eventType string, err error) {
	if s.logger == nil {
		return
	}
	s.logger.Warn("", eventType, err.Error(), nil)
}
