package camera

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"
)

// ChromedpSource renders the camera's viewer page in headless Chrome and
// screenshots it. Works for network cameras that only expose a browser UI.
type ChromedpSource struct {
	streamURL string
}

// NewChromedpSource creates a headless-Chrome screenshot source
func NewChromedpSource(streamURL string) *ChromedpSource {
	return &ChromedpSource{streamURL: streamURL}
}

// Snapshot navigates to the stream page and captures one JPEG screenshot
func (s *ChromedpSource) Snapshot(ctx context.Context) ([]byte, error) {
	if s.streamURL == "" {
		return nil, ErrNoFrame
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", "new"), // Use new headless mode
		chromedp.Flag("autoplay-policy", "no-user-gesture-required"),
	)

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	defer cancel()

	taskCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	headers := map[string]interface{}{
		"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,*/*;q=0.8",
		"Accept-Language": "en-US,en;q=0.5",
		"Connection":      "keep-alive",
	}

	if err := chromedp.Run(taskCtx, network.SetExtraHTTPHeaders(network.Headers(headers))); err != nil {
		return nil, fmt.Errorf("chromedp header error: %w", err)
	}

	var frame []byte
	err := chromedp.Run(taskCtx,
		chromedp.Navigate(s.streamURL),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Sleep(2*time.Second), // let the stream render at least one frame
		chromedp.FullScreenshot(&frame, 85),
	)
	if err != nil {
		return nil, fmt.Errorf("chromedp capture error: %w", err)
	}

	if len(frame) == 0 {
		return nil, ErrNoFrame
	}
	return frame, nil
}
