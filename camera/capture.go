// Package camera turns frames from a live video source into committed image
// artifacts.
package camera

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"
	"net/http"

	_ "image/gif"
	_ "image/png"

	"github.com/raushankrgupta/tryon-studio/models"
	"github.com/raushankrgupta/tryon-studio/notify"
	"github.com/raushankrgupta/tryon-studio/session"
)

// Adapter captures a still frame for a slot. The preview is produced as soon
// as a snapshot exists; the decode into a committed artifact can still fail
// afterwards, in which case the slot's previous artifact is preserved and
// only an error toast is emitted (the already-displayed preview stands).
type Adapter struct {
	source FrameSource
}

// NewAdapter creates a capture adapter over the given frame source
func NewAdapter(source FrameSource) *Adapter {
	return &Adapter{source: source}
}

// Capture grabs one frame from the source and commits it into the slot.
// Returns the preview data URL, or "" when the source had no frame to give
// (no state changes, no toast in that case). On a successful commit the slot
// reverts to upload mode and a "captured" toast is emitted.
func (a *Adapter) Capture(ctx context.Context, slot *session.Slot, notifier *notify.Notifier) (string, error) {
	snapshot, err := a.source.Snapshot(ctx)
	if err != nil || len(snapshot) == 0 {
		// Source not ready. Nothing was displayed, nothing changes.
		return "", nil
	}

	preview := previewDataURL(snapshot)
	slot.SetCapturePreview(preview)

	artifact, err := decodeSnapshot(snapshot, slot.CaptureFileName())
	if err != nil {
		notifier.Error(captureFailMessage(slot.Name()))
		return preview, err
	}

	slot.CommitCapture(artifact)
	notifier.Success(capturedMessage(slot.Name()))
	return preview, nil
}

// previewDataURL encodes the raw snapshot for immediate display
func previewDataURL(snapshot []byte) string {
	mimeType := http.DetectContentType(snapshot)
	return fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(snapshot))
}

// decodeSnapshot turns an encoded snapshot into a named JPEG artifact. The
// image is decoded to verify it and re-encoded so PNG screenshots from the
// browser backends still come out as image/jpeg.
func decodeSnapshot(snapshot []byte, fileName string) (models.Artifact, error) {
	img, _, err := image.Decode(bytes.NewReader(snapshot))
	if err != nil {
		return models.Artifact{}, fmt.Errorf("decoding snapshot: %w", err)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}); err != nil {
		return models.Artifact{}, fmt.Errorf("encoding snapshot: %w", err)
	}

	return models.Artifact{
		Bytes:    buf.Bytes(),
		MimeType: "image/jpeg",
		FileName: fileName,
	}, nil
}

func capturedMessage(slotName string) string {
	if slotName == "garment" {
		return "Garment photo captured successfully!"
	}
	return "Photo captured successfully!"
}

func captureFailMessage(slotName string) string {
	if slotName == "garment" {
		return "Failed to process the captured garment image"
	}
	return "Failed to process the captured image"
}
