package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/claude/workoutguide/internal/runner"
)

// handleRunEvents streams the current run as server-sent events: a "status"
// event per change and a final "finished" event when the run ends.
func (s *Server) handleRunEvents(w http.ResponseWriter, r *http.Request) {
	// Subscribe before reading the current status so no change is lost in between.
	updates, unsubscribe := s.runs.Subscribe()
	defer unsubscribe()

	st, err := s.runs.Current()
	if err != nil {
		writeRunError(w, err)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "streaming not supported"})
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	runID := st.ID
	for {
		event := "status"
		if st.State == runner.StateFinished {
			event = "finished"
		}
		fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, mustJSON(st))
		flusher.Flush()
		if event == "finished" {
			return
		}

		select {
		case <-r.Context().Done():
			return
		case st = <-updates:
			if st.ID != runID {
				// A new run replaced the one this stream was following.
				return
			}
		}
	}
}

func mustJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return `{}`
	}
	return string(b)
}
