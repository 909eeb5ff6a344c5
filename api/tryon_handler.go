package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/raushankrgupta/tryon-studio/models"
	"github.com/raushankrgupta/tryon-studio/tryon"
	"github.com/raushankrgupta/tryon-studio/utils"
)

// TryOnHandler validates the session's slots, assembles a submission and
// drives it through the coordinator. Only one request per session is ever in
// flight; repeated triggers while one is outstanding are rejected without a
// second network call.
func TryOnHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Virtual Try-On API]")

	if r.Method != http.MethodPost {
		utils.RespondError(w, &logMessageBuilder, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	sess := lookupSession(w, r, &logMessageBuilder)
	if sess == nil {
		return
	}

	cfg := models.SubmissionConfig{
		ModelType:    r.FormValue("model_type"),
		Gender:       r.FormValue("gender"),
		GarmentType:  r.FormValue("garment_type"),
		Style:        r.FormValue("style"),
		Background:   r.FormValue("background"),
		Instructions: r.FormValue("instructions"),
	}
	sess.UpdateConfig(cfg)

	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Try-On Request: Session=%s, GarmentType=%s, Style=%s", sess.ID, cfg.GarmentType, cfg.Style))

	// Validation happens before any network interaction
	req, err := tryon.BuildSubmission(sess.Person.Artifact(), sess.Garment.Artifact(), cfg)
	if err != nil {
		if errors.Is(err, tryon.ErrMissingImages) {
			sess.Notifier.Error("Please upload both person and cloth images")
		}
		utils.RespondError(w, &logMessageBuilder, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := sess.Coordinator.Submit(r.Context(), req, sess)
	if err != nil {
		if errors.Is(err, tryon.ErrInFlight) {
			utils.RespondError(w, &logMessageBuilder, err.Error(), http.StatusConflict)
			return
		}
		// The coordinator already emitted the error toast
		utils.RespondError(w, &logMessageBuilder, err.Error(), http.StatusBadGateway)
		return
	}

	utils.AddToLogMessage(&logMessageBuilder, "Try-on completed")
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"result": result})
}
