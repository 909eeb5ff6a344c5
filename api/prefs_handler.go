package api

import (
	"net/http"

	"github.com/raushankrgupta/tryon-studio/utils"
)

// ThemeHandler reads or writes the persisted dark-mode preference
func ThemeHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		utils.RespondJSON(w, http.StatusOK, map[string]bool{"dark_mode": preferences.DarkMode()})

	case http.MethodPost:
		value := r.FormValue("dark_mode")
		if value != "true" && value != "false" {
			utils.RespondError(w, nil, "dark_mode must be true or false", http.StatusBadRequest)
			return
		}
		if err := preferences.SetDarkMode(value == "true"); err != nil {
			utils.RespondError(w, nil, "Failed to save preference", http.StatusInternalServerError)
			return
		}
		utils.RespondJSON(w, http.StatusOK, map[string]bool{"dark_mode": preferences.DarkMode()})

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}
