package camera

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// HTTPSource grabs frames from an IP camera exposing a still-image URL
// (e.g. the /shot.jpg endpoint most MJPEG cameras serve).
type HTTPSource struct {
	Client    *http.Client
	streamURL string
}

// NewHTTPSource creates a still-frame HTTP camera source
func NewHTTPSource(streamURL string) *HTTPSource {
	return &HTTPSource{
		Client: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:          100,
				IdleConnTimeout:       90 * time.Second,
				TLSHandshakeTimeout:   10 * time.Second,
				ExpectContinueTimeout: 1 * time.Second,
			},
		},
		streamURL: streamURL,
	}
}

// Snapshot fetches one frame from the camera's snapshot URL
func (s *HTTPSource) Snapshot(ctx context.Context) ([]byte, error) {
	if s.streamURL == "" {
		return nil, ErrNoFrame
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.streamURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "image/jpeg,image/png,image/*;q=0.8")

	res, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("camera fetch failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("camera returned status %d", res.StatusCode)
	}

	frame, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}
	if len(frame) == 0 {
		return nil, ErrNoFrame
	}
	return frame, nil
}
