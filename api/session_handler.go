package api

import (
	"net/http"

	"github.com/raushankrgupta/tryon-studio/utils"
)

// CreateSessionHandler starts a fresh acquisition session and returns its ID
func CreateSessionHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	sess := sessions.Create()
	utils.RespondJSON(w, http.StatusOK, map[string]string{"session_id": sess.ID})
}
