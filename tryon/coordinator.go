package tryon

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/raushankrgupta/tryon-studio/models"
	"github.com/raushankrgupta/tryon-studio/notify"
)

// ErrInFlight is returned when a submission arrives while another one is
// still outstanding. The UI disables the control, but rapid repeated
// triggers must not produce a second network call either way.
var ErrInFlight = errors.New("a try-on request is already in flight")

const genericFailureMessage = "An error occurred during processing"

// ResultSink receives a completed result: the session publishes it as the
// current result and appends it to the history ledger.
type ResultSink interface {
	Publish(models.Result)
}

// Coordinator owns the single in-flight try-on request for a session. It
// issues the multipart POST to the processing endpoint, maps the outcome to
// a result or an error toast, and guarantees no concurrent duplicates. No
// timeout is enforced; the call settles whenever the transport does. No
// cancellation beyond the request context is supported.
type Coordinator struct {
	client   *resty.Client
	endpoint string
	notifier *notify.Notifier

	mu       sync.Mutex
	inFlight bool
}

// NewCoordinator creates an idle coordinator targeting the given endpoint
func NewCoordinator(endpoint string, notifier *notify.Notifier) *Coordinator {
	return &Coordinator{
		client:   resty.New(),
		endpoint: endpoint,
		notifier: notifier,
	}
}

// InFlight reports whether a submission is currently outstanding
func (c *Coordinator) InFlight() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inFlight
}

// successResponse is the processing service's payload on success
type successResponse struct {
	Image string `json:"image"`
	Text  string `json:"text"`
}

// failureResponse optionally carries a server-provided error message
type failureResponse struct {
	Message string `json:"message"`
}

// Submit sends one try-on request and waits for it to settle. On success the
// result is handed to the sink and a success toast is emitted; on transport
// or server failure an error toast is emitted (using the server message when
// present) and no result is produced. The coordinator always returns to idle.
func (c *Coordinator) Submit(ctx context.Context, req *models.SubmissionRequest, sink ResultSink) (*models.Result, error) {
	c.mu.Lock()
	if c.inFlight {
		c.mu.Unlock()
		return nil, ErrInFlight
	}
	c.inFlight = true
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.inFlight = false
		c.mu.Unlock()
	}()

	res, err := c.client.R().
		SetContext(ctx).
		SetMultipartField("person_image", req.PersonImage.FileName, req.PersonImage.MimeType, bytes.NewReader(req.PersonImage.Bytes)).
		SetMultipartField("cloth_image", req.ClothImage.FileName, req.ClothImage.MimeType, bytes.NewReader(req.ClothImage.Bytes)).
		SetFormData(map[string]string{
			"instructions": req.Config.Instructions,
			"model_type":   req.Config.ModelType,
			"gender":       req.Config.Gender,
			"garment_type": req.Config.GarmentType,
			"style":        req.Config.Style,
			"background":   req.Config.Background,
		}).
		Post(c.endpoint)

	if err != nil {
		c.notifier.Error(genericFailureMessage)
		return nil, fmt.Errorf("try-on request failed: %w", err)
	}

	if !res.IsSuccess() {
		message := genericFailureMessage
		var failure failureResponse
		if err := json.Unmarshal(res.Body(), &failure); err == nil && failure.Message != "" {
			message = failure.Message
		}
		c.notifier.Error(message)
		return nil, fmt.Errorf("try-on endpoint returned status %d", res.StatusCode())
	}

	var success successResponse
	if err := json.Unmarshal(res.Body(), &success); err != nil {
		c.notifier.Error(genericFailureMessage)
		return nil, fmt.Errorf("malformed try-on response: %w", err)
	}

	now := time.Now()
	result := models.Result{
		ID:          now.UnixMilli(),
		ResultImage: success.Image,
		Text:        success.Text,
		Timestamp:   now.Format("1/2/2006, 3:04:05 PM"),
	}

	sink.Publish(result)
	c.notifier.Success("Virtual try-on completed successfully!")
	return &result, nil
}
