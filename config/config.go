package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	Port             string
	TryOnEndpoint    string
	CameraBackend    string
	CameraStreamURL  string
	PrefsDBPath      string
	ChromeDriverPath string
)

// LoadConfig loads environment variables from .env file
func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using default values or system environment variables")
	}

	Port = os.Getenv("PORT")
	if Port == "" {
		Port = "8080"
	}

	TryOnEndpoint = os.Getenv("TRYON_ENDPOINT")
	if TryOnEndpoint == "" {
		TryOnEndpoint = "http://localhost:8000/api/try-on"
	}

	// Frame source backend for live capture: "http", "chromedp" or "selenium"
	CameraBackend = os.Getenv("CAMERA_BACKEND")
	if CameraBackend == "" {
		CameraBackend = "http"
	}

	CameraStreamURL = os.Getenv("CAMERA_STREAM_URL")

	PrefsDBPath = os.Getenv("PREFS_DB_PATH")
	if PrefsDBPath == "" {
		PrefsDBPath = "prefs.db"
	}

	ChromeDriverPath = os.Getenv("CHROMEDRIVER_PATH")
	if ChromeDriverPath == "" {
		ChromeDriverPath = "/usr/local/bin/chromedriver"
	}
}
