package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/claude/workoutguide/internal/runner"
	"github.com/claude/workoutguide/internal/session"
)

type startRunRequest struct {
	WorkoutID string `json:"workoutId"`
}

type abortRunRequest struct {
	Confirm bool `json:"confirm"`
}

func (s *Server) handleStartRun(w http.ResponseWriter, r *http.Request) {
	var req startRunRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if req.WorkoutID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "workoutId is required"})
		return
	}

	wo, ok := s.Catalog().Get(req.WorkoutID)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "workout not found"})
		return
	}

	st, err := s.runs.Start(wo)
	if err != nil {
		writeRunError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, st)
}

func (s *Server) handleCurrentRun(w http.ResponseWriter, r *http.Request) {
	st, err := s.runs.Current()
	if err != nil {
		writeRunError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

// handleRunTransition adapts a run manager operation to a POST handler.
func (s *Server) handleRunTransition(op func() (session.Status, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st, err := op()
		if err != nil {
			writeRunError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, st)
	}
}

// handleAbortRun ends the run early. The client must send {"confirm": true}
// once the user has confirmed.
func (s *Server) handleAbortRun(w http.ResponseWriter, r *http.Request) {
	var req abortRunRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if !req.Confirm {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "ending a workout early requires confirm=true"})
		return
	}
	st, err := s.runs.Abort()
	if err != nil {
		writeRunError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func writeRunError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, session.ErrNoActiveRun):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.Is(err, session.ErrRunActive), errors.Is(err, runner.ErrInvalidTransition):
		writeJSON(w, http.StatusConflict, map[string]string{"error": err.Error()})
	case errors.Is(err, session.ErrClosed):
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": err.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}
