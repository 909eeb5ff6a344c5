package tryon

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raushankrgupta/tryon-studio/models"
	"github.com/raushankrgupta/tryon-studio/notify"
)

type recordingSink struct {
	mu        sync.Mutex
	published []models.Result
}

func (s *recordingSink) Publish(r models.Result) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.published = append(s.published, r)
}

func (s *recordingSink) all() []models.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Result(nil), s.published...)
}

func testRequest() *models.SubmissionRequest {
	return &models.SubmissionRequest{
		PersonImage: models.Artifact{Bytes: []byte("person-bytes"), MimeType: "image/jpeg", FileName: "a.jpg"},
		ClothImage:  models.Artifact{Bytes: []byte("cloth-bytes"), MimeType: "image/jpeg", FileName: "b.jpg"},
		Config: models.SubmissionConfig{
			ModelType:   "full",
			Gender:      "male",
			GarmentType: "shalwar_kameez",
			Style:       "traditional",
			Background:  "studio",
		},
	}
}

func TestSubmitSuccess(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)

		assert.NoError(t, r.ParseMultipartForm(10<<20))

		if person, header, err := r.FormFile("person_image"); assert.NoError(t, err) {
			person.Close()
			assert.Equal(t, "a.jpg", header.Filename)
		}
		if cloth, header, err := r.FormFile("cloth_image"); assert.NoError(t, err) {
			cloth.Close()
			assert.Equal(t, "b.jpg", header.Filename)
		}

		assert.Equal(t, "full", r.FormValue("model_type"))
		assert.Equal(t, "male", r.FormValue("gender"))
		assert.Equal(t, "shalwar_kameez", r.FormValue("garment_type"))
		assert.Equal(t, "traditional", r.FormValue("style"))
		assert.Equal(t, "studio", r.FormValue("background"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"image":"https://x/out.png","text":"Great fit!"}`))
	}))
	defer server.Close()

	notifier := notify.NewNotifier(nil)
	sink := &recordingSink{}
	coordinator := NewCoordinator(server.URL, notifier)

	result, err := coordinator.Submit(context.Background(), testRequest(), sink)
	require.NoError(t, err)

	assert.Equal(t, "https://x/out.png", result.ResultImage)
	assert.Equal(t, "Great fit!", result.Text)
	assert.NotZero(t, result.ID)
	assert.NotEmpty(t, result.Timestamp)

	published := sink.all()
	require.Len(t, published, 1)
	assert.Equal(t, *result, published[0])

	events := notifier.Drain()
	require.Len(t, events, 1)
	assert.Equal(t, notify.SeveritySuccess, events[0].Severity)
	assert.Equal(t, "Virtual try-on completed successfully!", events[0].Message)

	assert.False(t, coordinator.InFlight())
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestSubmitServerErrorUsesServerMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusRequestEntityTooLarge)
		w.Write([]byte(`{"message":"image too large"}`))
	}))
	defer server.Close()

	notifier := notify.NewNotifier(nil)
	sink := &recordingSink{}
	coordinator := NewCoordinator(server.URL, notifier)

	result, err := coordinator.Submit(context.Background(), testRequest(), sink)
	require.Error(t, err)
	assert.Nil(t, result)

	// No result published, history unchanged
	assert.Empty(t, sink.all())

	events := notifier.Drain()
	require.Len(t, events, 1)
	assert.Equal(t, notify.SeverityError, events[0].Severity)
	assert.Equal(t, "image too large", events[0].Message)

	assert.False(t, coordinator.InFlight())
}

func TestSubmitServerErrorWithoutMessageFallsBack(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	notifier := notify.NewNotifier(nil)
	coordinator := NewCoordinator(server.URL, notifier)

	_, err := coordinator.Submit(context.Background(), testRequest(), &recordingSink{})
	require.Error(t, err)

	events := notifier.Drain()
	require.Len(t, events, 1)
	assert.Equal(t, "An error occurred during processing", events[0].Message)
}

func TestSubmitTransportError(t *testing.T) {
	notifier := notify.NewNotifier(nil)
	coordinator := NewCoordinator("http://127.0.0.1:1/api/try-on", notifier)

	_, err := coordinator.Submit(context.Background(), testRequest(), &recordingSink{})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInFlight)

	events := notifier.Drain()
	require.Len(t, events, 1)
	assert.Equal(t, notify.SeverityError, events[0].Severity)
	assert.False(t, coordinator.InFlight())
}

func TestSubmitRejectsSecondCallWhileInFlight(t *testing.T) {
	release := make(chan struct{})
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		<-release
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"image":"https://x/out.png","text":"ok"}`))
	}))
	defer server.Close()

	notifier := notify.NewNotifier(nil)
	sink := &recordingSink{}
	coordinator := NewCoordinator(server.URL, notifier)

	done := make(chan error, 1)
	go func() {
		_, err := coordinator.Submit(context.Background(), testRequest(), sink)
		done <- err
	}()

	require.Eventually(t, coordinator.InFlight, 2*time.Second, 10*time.Millisecond)

	// Rapid repeated trigger: must be ignored with no second network call
	_, err := coordinator.Submit(context.Background(), testRequest(), sink)
	assert.ErrorIs(t, err, ErrInFlight)

	close(release)
	require.NoError(t, <-done)

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	require.Len(t, sink.all(), 1)
	assert.False(t, coordinator.InFlight())
}
