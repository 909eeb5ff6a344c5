package camera

import (
	"context"
	"fmt"
	"time"

	"github.com/tebeka/selenium"
	"github.com/tebeka/selenium/chrome"
)

// SeleniumSource drives a full browser through chromedriver and screenshots
// the camera's viewer page. Slower than chromedp but tolerates pages the
// headless CDP path can't render.
type SeleniumSource struct {
	streamURL        string
	chromeDriverPath string
	ports            *PortManager
}

// NewSeleniumSource creates a WebDriver screenshot source
func NewSeleniumSource(streamURL, chromeDriverPath string) *SeleniumSource {
	return &SeleniumSource{
		streamURL:        streamURL,
		chromeDriverPath: chromeDriverPath,
		ports:            NewPortManager(4444, 16),
	}
}

// Snapshot starts a chromedriver, opens the stream page and takes one screenshot
func (s *SeleniumSource) Snapshot(ctx context.Context) ([]byte, error) {
	if s.streamURL == "" {
		return nil, ErrNoFrame
	}

	port, err := s.ports.GetPort()
	if err != nil {
		return nil, fmt.Errorf("port error: %w", err)
	}
	defer s.ports.ReleasePort(port)

	service, err := selenium.NewChromeDriverService(s.chromeDriverPath, port)
	if err != nil {
		return nil, fmt.Errorf("error starting Chrome driver service: %v", err)
	}
	defer service.Stop()

	caps := selenium.Capabilities{"browserName": "chrome"}
	caps.AddChrome(chrome.Capabilities{
		Args: []string{
			"--headless=new",
			"--no-sandbox",
			"--disable-dev-shm-usage",
			"--disable-gpu",
			"--autoplay-policy=no-user-gesture-required",
			"--window-size=1280,720",
		},
	})

	driver, err := selenium.NewRemote(caps, fmt.Sprintf("http://localhost:%d/wd/hub", port))
	if err != nil {
		return nil, fmt.Errorf("error creating WebDriver: %v", err)
	}
	defer driver.Quit()

	driver.SetPageLoadTimeout(60 * time.Second)

	if err := driver.Get(s.streamURL); err != nil {
		return nil, fmt.Errorf("navigation error: %w", err)
	}

	time.Sleep(2 * time.Second) // let the stream render

	frame, err := driver.Screenshot()
	if err != nil {
		return nil, fmt.Errorf("screenshot error: %w", err)
	}
	if len(frame) == 0 {
		return nil, ErrNoFrame
	}
	return frame, nil
}
