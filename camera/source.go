package camera

import (
	"context"
	"errors"
	"fmt"
)

// ErrNoFrame indicates the video source had no frame to give (not ready,
// stream warming up). It is not a failure: capture treats it as a silent
// no-op.
var ErrNoFrame = errors.New("no frame available from source")

// FrameSource produces single encoded still frames from a live video feed
type FrameSource interface {
	// Snapshot grabs one encoded frame from the source
	Snapshot(ctx context.Context) ([]byte, error)
}

// NewFrameSource returns the capture backend selected by configuration
func NewFrameSource(backend, streamURL, chromeDriverPath string) (FrameSource, error) {
	switch backend {
	case "http":
		return NewHTTPSource(streamURL), nil
	case "chromedp":
		return NewChromedpSource(streamURL), nil
	case "selenium":
		return NewSeleniumSource(streamURL, chromeDriverPath), nil
	}
	return nil, fmt.Errorf("no frame source backend named %q", backend)
}
