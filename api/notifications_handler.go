package api

import (
	"net/http"

	"github.com/raushankrgupta/tryon-studio/utils"
)

// NotificationsHandler drains the session's pending toast events for the
// presentation layer to render
func NotificationsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	sess := lookupSession(w, r, nil)
	if sess == nil {
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"notifications": sess.Notifier.Drain(),
	})
}
