package api

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/raushankrgupta/tryon-studio/camera"
	"github.com/raushankrgupta/tryon-studio/models"
	"github.com/raushankrgupta/tryon-studio/session"
	"github.com/raushankrgupta/tryon-studio/utils"
)

// SetSlotModeHandler switches a slot between upload and camera acquisition
func SetSlotModeHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	sess := lookupSession(w, r, nil)
	if sess == nil {
		return
	}

	slot, err := sess.Slot(r.FormValue("slot"))
	if err != nil {
		utils.RespondError(w, nil, err.Error(), http.StatusBadRequest)
		return
	}

	mode, err := session.ParseMode(r.FormValue("mode"))
	if err != nil {
		utils.RespondError(w, nil, err.Error(), http.StatusBadRequest)
		return
	}

	slot.SetMode(mode)
	utils.RespondJSON(w, http.StatusOK, slotState(slot))
}

// UploadSlotHandler replaces a slot's artifact with an uploaded image file
func UploadSlotHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Slot Upload API]")

	if r.Method != http.MethodPost {
		utils.RespondError(w, &logMessageBuilder, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Parse multipart form (max 10MB)
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		utils.RespondError(w, &logMessageBuilder, "Error parsing form data", http.StatusBadRequest)
		return
	}

	sess := lookupSession(w, r, &logMessageBuilder)
	if sess == nil {
		return
	}

	slot, err := sess.Slot(r.FormValue("slot"))
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, err.Error(), http.StatusBadRequest)
		return
	}

	file, fileHeader, err := r.FormFile("image")
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "Error retrieving file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "Error reading file content", http.StatusInternalServerError)
		return
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = http.DetectContentType(data)
	}

	slot.SetArtifactFromUpload(models.Artifact{
		Bytes:    data,
		MimeType: mimeType,
		FileName: fileHeader.Filename,
	})

	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Slot %s received %s (%d bytes)", slot.Name(), fileHeader.Filename, len(data)))
	utils.RespondJSON(w, http.StatusOK, slotState(slot))
}

// RemoveSlotHandler clears a slot's artifact and preview
func RemoveSlotHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	sess := lookupSession(w, r, nil)
	if sess == nil {
		return
	}

	slot, err := sess.Slot(r.FormValue("slot"))
	if err != nil {
		utils.RespondError(w, nil, err.Error(), http.StatusBadRequest)
		return
	}

	slot.Remove()
	utils.RespondJSON(w, http.StatusOK, slotState(slot))
}

// CaptureSlotHandler grabs one frame from the live source and commits it
// into the slot
func CaptureSlotHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Slot Capture API]")

	if r.Method != http.MethodPost {
		utils.RespondError(w, &logMessageBuilder, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	sess := lookupSession(w, r, &logMessageBuilder)
	if sess == nil {
		return
	}

	slot, err := sess.Slot(r.FormValue("slot"))
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, err.Error(), http.StatusBadRequest)
		return
	}

	adapter := camera.NewAdapter(frameSource)
	preview, err := adapter.Capture(r.Context(), slot, sess.Notifier)
	if err != nil {
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Capture decode failed: %v", err))
	}
	if preview == "" && err == nil {
		utils.AddToLogMessage(&logMessageBuilder, "Frame source not ready, nothing captured")
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"preview":  preview,
		"captured": err == nil && preview != "",
		"slot":     slotState(slot),
	})
}

// slotState is the slot view the presentation layer renders
func slotState(slot *session.Slot) map[string]interface{} {
	return map[string]interface{}{
		"name":         slot.Name(),
		"mode":         slot.Mode(),
		"has_artifact": slot.HasArtifact(),
		"file_name":    slot.Artifact().FileName,
		"preview":      slot.Preview(),
	}
}
