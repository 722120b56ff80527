package server

import (
	"encoding/json"
	"net/http"

	"github.com/claude/workoutguide/internal/workout"
	"github.com/go-chi/chi/v5"
)

func (s *Server) handleListWorkouts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.Catalog().Summaries())
}

func (s *Server) handleGetWorkout(w http.ResponseWriter, r *http.Request) {
	wo, ok := s.Catalog().Get(chi.URLParam(r, "id"))
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "workout not found"})
		return
	}
	writeJSON(w, http.StatusOK, workout.NewPreview(wo))
}

func (s *Server) handleWorkoutPlan(w http.ResponseWriter, r *http.Request) {
	wo, ok := s.Catalog().Get(chi.URLParam(r, "id"))
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "workout not found"})
		return
	}
	writeJSON(w, http.StatusOK, workout.Plan(wo))
}

func (s *Server) handleReloadCatalog(w http.ResponseWriter, r *http.Request) {
	cat, err := s.reload(r.Context())
	if err != nil {
		s.log.Error("catalog reload failed", "error", err)
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": err.Error()})
		return
	}
	s.catalog.Store(cat)
	s.log.Info("catalog reloaded", "workouts", cat.Len())
	writeJSON(w, http.StatusOK, map[string]int{"workouts": cat.Len()})
}

func (s *Server) handleReloadDisabled(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, map[string]string{"error": "catalog reload is disabled"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
