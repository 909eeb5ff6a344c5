package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/raushankrgupta/tryon-studio/api"
	"github.com/raushankrgupta/tryon-studio/camera"
	"github.com/raushankrgupta/tryon-studio/config"
	"github.com/raushankrgupta/tryon-studio/prefs"
	"github.com/raushankrgupta/tryon-studio/session"
	"github.com/raushankrgupta/tryon-studio/utils"
)

func main() {
	config.LoadConfig()

	// Preference store (theme)
	store, err := prefs.Open(config.PrefsDBPath)
	if err != nil {
		log.Fatalf("Failed to open preference store: %v", err)
	}
	defer store.Close()

	// Live capture backend
	frameSource, err := camera.NewFrameSource(config.CameraBackend, config.CameraStreamURL, config.ChromeDriverPath)
	if err != nil {
		log.Fatalf("Failed to configure frame source: %v", err)
	}

	sessions := session.NewManager(config.TryOnEndpoint, store.DarkMode)
	api.Init(sessions, frameSource, store)

	// CORS Middleware
	corsMiddleware := func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS, PUT, DELETE")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}
			next(w, r)
		}
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/session", corsMiddleware(api.CreateSessionHandler))
	mux.HandleFunc("/slot/mode", corsMiddleware(api.SetSlotModeHandler))
	mux.HandleFunc("/slot/upload", corsMiddleware(api.UploadSlotHandler))
	mux.HandleFunc("/slot/remove", corsMiddleware(api.RemoveSlotHandler))
	mux.HandleFunc("/slot/capture", corsMiddleware(api.CaptureSlotHandler))
	mux.HandleFunc("/try-on", corsMiddleware(api.TryOnHandler))
	mux.HandleFunc("/history", corsMiddleware(api.HistoryHandler))
	mux.HandleFunc("/state", corsMiddleware(api.StateHandler))
	mux.HandleFunc("/notifications", corsMiddleware(api.NotificationsHandler))
	mux.HandleFunc("/preferences/theme", corsMiddleware(api.ThemeHandler))

	port := config.Port
	fmt.Printf("Try-on studio starting on port %s...\n", port)
	fmt.Printf("Processing endpoint: %s\n", config.TryOnEndpoint)
	if err := http.ListenAndServe(":"+port, utils.LatencyMiddleware(mux)); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
