package api

import (
	"net/http"
	"strings"

	"github.com/raushankrgupta/tryon-studio/camera"
	"github.com/raushankrgupta/tryon-studio/prefs"
	"github.com/raushankrgupta/tryon-studio/session"
	"github.com/raushankrgupta/tryon-studio/utils"
)

var (
	sessions    *session.Manager
	frameSource camera.FrameSource
	preferences *prefs.Store
)

// Init wires the API handlers to their collaborators. Must be called before
// any route is served.
func Init(m *session.Manager, src camera.FrameSource, p *prefs.Store) {
	sessions = m
	frameSource = src
	preferences = p
}

// lookupSession resolves the session_id form/query value. Writes the error
// response itself and returns nil when the session is missing.
func lookupSession(w http.ResponseWriter, r *http.Request, logger *strings.Builder) *session.Session {
	id := r.FormValue("session_id")
	if id == "" {
		id = r.URL.Query().Get("session_id")
	}
	if id == "" {
		utils.RespondError(w, logger, "session_id is required", http.StatusBadRequest)
		return nil
	}

	sess, err := sessions.Get(id)
	if err != nil {
		utils.RespondError(w, logger, "Session not found", http.StatusNotFound)
		return nil
	}
	return sess
}
