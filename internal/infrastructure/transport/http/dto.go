// Package http implements the Command Gateway's HTTP admin front-end: a
// small read-mostly JSON API over the Status Registry, plus program
// control posted through the Command Gateway.
package http

import (
	"github.com/kodflow/overseerd/internal/domain/process"
)

// responseError is the JSON shape of every non-2xx response body.
type responseError struct {
	Error string `json:"error"`
}

// applicationStatusResponse is the JSON shape of GET /app.
type applicationStatusResponse struct {
	Status string `json:"status"`
}

// programStatusResponse is the JSON shape of one program entry returned
// by GET /programs and GET /programs/:name.
type programStatusResponse struct {
	Name         string                 `json:"name"`
	State        string                 `json:"state"`
	PID          int                    `json:"pid"`
	UptimeMillis int64                  `json:"uptime_ms"`
	Restarts     int                    `json:"restarts"`
	LastExitCode int                    `json:"last_exit_code"`
	History      []historyEventResponse `json:"history,omitempty"`
}

// historyEventResponse is the JSON shape of one recorded lifecycle event.
type historyEventResponse struct {
	Type      string `json:"type"`
	PID       int    `json:"pid,omitempty"`
	ExitCode  int    `json:"exit_code,omitempty"`
	Timestamp int64  `json:"timestamp_unix_ms"`
}

// toHistoryEventResponses converts recorded domain events into their
// wire representation, newest first (the order Recent already returns).
//
// Params:
//   - events: the events to convert.
//
// Returns:
//   - []historyEventResponse: the JSON-ready representations.
func toHistoryEventResponses(events []process.Event) []historyEventResponse {
	out := make([]historyEventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, historyEventResponse{
			Type:      e.Type.String(),
			PID:       e.PID,
			ExitCode:  e.ExitCode,
			Timestamp: e.Timestamp.UnixMilli(),
		})
	}
	return out
}

// toProgramStatusResponse converts a domain status snapshot into its
// wire representation. history may be nil, in which case the field is
// omitted from the JSON body.
//
// Params:
//   - s: the status snapshot to convert.
//   - events: recent history events to embed, newest first, or nil.
//
// Returns:
//   - programStatusResponse: the JSON-ready representation of s.
func toProgramStatusResponse(s process.Status, events []process.Event) programStatusResponse {
	return programStatusResponse{
		Name:         s.Name,
		State:        s.State.String(),
		PID:          s.PID,
		UptimeMillis: s.Uptime.Milliseconds(),
		Restarts:     s.Restarts,
		LastExitCode: s.LastExitCode,
		History:      toHistoryEventResponses(events),
	}
}

// toProgramStatusResponses converts a slice of status snapshots,
// preserving order. Listing never embeds history, keeping GET /programs
// a cheap, single-registry-read operation.
//
// Params:
//   - statuses: the snapshots to convert.
//
// Returns:
//   - []programStatusResponse: the JSON-ready representations.
func toProgramStatusResponses(statuses []process.Status) []programStatusResponse {
	out := make([]programStatusResponse, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, toProgramStatusResponse(s, nil))
	}
	return out
}

// commandFromAction maps a URL action segment ("start"/"stop"/"restart")
// to its domain command.
//
// Params:
//   - action: the lowercase action segment from the request path.
//
// Returns:
//   - process.CommandMsg: the corresponding command.
//   - bool: false if action is not a recognized command name.
func commandFromAction(action string) (process.CommandMsg, bool) {
	switch action {
	case "start":
		return process.CommandStart, true
	case "stop":
		return process.CommandStop, true
	case "restart":
		return process.CommandRestart, true
	default:
		return 0, false
	}
}
