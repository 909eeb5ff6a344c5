package session

import (
	"fmt"

	"github.com/raushankrgupta/tryon-studio/models"
)

// Mode selects which acquisition path a slot is using
type Mode string

const (
	ModeUpload Mode = "upload"
	ModeCamera Mode = "camera"
)

// ParseMode converts a wire value into a Mode
func ParseMode(value string) (Mode, error) {
	switch value {
	case string(ModeUpload):
		return ModeUpload, nil
	case string(ModeCamera):
		return ModeCamera, nil
	}
	return "", fmt.Errorf("unknown mode %q", value)
}

// Slot holds the acquisition state for one image input (person or garment):
// the active mode, the committed artifact if any, and a transient preview
// left behind by a camera capture. All transitions are total; there are no
// error states.
type Slot struct {
	name            string
	captureFileName string

	mode     Mode
	artifact models.Artifact
	preview  string
}

// NewSlot creates an empty slot in upload mode. captureFileName is the fixed
// file name given to artifacts committed from the camera.
func NewSlot(name, captureFileName string) *Slot {
	return &Slot{
		name:            name,
		captureFileName: captureFileName,
		mode:            ModeUpload,
	}
}

func (s *Slot) Name() string            { return s.name }
func (s *Slot) CaptureFileName() string { return s.captureFileName }
func (s *Slot) Mode() Mode              { return s.mode }
func (s *Slot) Preview() string         { return s.preview }

// Artifact returns the committed artifact, zero-valued when the slot is empty
func (s *Slot) Artifact() models.Artifact { return s.artifact }

// HasArtifact reports whether an image has been committed
func (s *Slot) HasArtifact() bool { return !s.artifact.IsZero() }

// SetMode switches the acquisition path. Switching to upload discards a
// capture preview that was never committed into an artifact; switching to
// camera clears the preview so the live view can take its place, but a
// committed artifact always survives mode changes (only Remove or an
// overwriting upload/capture replaces it).
func (s *Slot) SetMode(mode Mode) {
	switch mode {
	case ModeUpload:
		if !s.HasArtifact() {
			s.preview = ""
		}
	case ModeCamera:
		s.preview = ""
	}
	s.mode = mode
}

// SetArtifactFromUpload replaces the artifact unconditionally. The mode and
// any existing preview are left alone.
func (s *Slot) SetArtifactFromUpload(a models.Artifact) {
	s.artifact = a
}

// SetCapturePreview records the preview obtained synchronously from a camera
// snapshot, before the decode has settled.
func (s *Slot) SetCapturePreview(preview string) {
	s.preview = preview
}

// CommitCapture stores a successfully decoded camera artifact and turns the
// camera off, reverting the slot to the upload display path.
func (s *Slot) CommitCapture(a models.Artifact) {
	s.artifact = a
	s.mode = ModeUpload
}

// Remove clears both artifact and preview, returning the slot to its empty
// state without touching the mode.
func (s *Slot) Remove() {
	s.artifact = models.Artifact{}
	s.preview = ""
}
