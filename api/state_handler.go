package api

import (
	"net/http"

	"github.com/raushankrgupta/tryon-studio/utils"
)

// StateHandler exposes the session's renderable state in one shot: both
// slots, the scalar config, the current result and whether a submission is
// in flight.
func StateHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	sess := lookupSession(w, r, nil)
	if sess == nil {
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"session_id":     sess.ID,
		"person_slot":    slotState(sess.Person),
		"garment_slot":   slotState(sess.Garment),
		"config":         sess.Config(),
		"current_result": sess.CurrentResult(),
		"in_flight":      sess.Coordinator.InFlight(),
		"history_count":  sess.History.Len(),
	})
}
