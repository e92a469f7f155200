package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"checkin/config"
	"checkin/internal/domain/constants"
	"checkin/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func testEvent() *service.CheckInEvent {
	return &service.CheckInEvent{
		RequestID:   "req-1",
		EventID:     "evt-1",
		CheckInID:   42,
		UserID:      "google-sub-1",
		Date:        "2025-03-14",
		CheckInTime: "2025-03-14T08:00:00Z",
	}
}

func TestLocalHTTPPublisher_PublishCheckInEvent(t *testing.T) {
	var received PushMessage
	var requestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &received)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	publisher := NewLocalHTTPPublisher(srv.URL, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, publisher.PublishCheckInEvent(context.Background(), testEvent()))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "evt-1", received.Message.MessageID)
	assert.Equal(t, constants.CheckInCompletedEventType, received.Message.Attributes["event_type"])
	assert.Equal(t, "42", received.Message.Attributes["checkin_id"])

	raw, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)
	var event service.CheckInEvent
	require.NoError(t, json.Unmarshal(raw, &event))
	assert.Equal(t, *testEvent(), event)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	publisher := NewLocalHTTPPublisher(srv.URL, slog.New(slog.NewTextHandler(io.Discard, nil)))
	err := publisher.PublishCheckInEvent(context.Background(), testEvent())
	assert.ErrorContains(t, err, "non-success status: 500")
}

func TestNewEventPublisher(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr string
	}{
		{name: "not configured disables publishing", cfg: nil},
		{name: "empty provider disables publishing", cfg: &config.PubSubConfig{TopicID: "checkin-events"}},
		{name: "local", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:8081/push"}},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}, wantErr: "local endpoint is required"},
		{name: "google without project", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, TopicID: "t"}, wantErr: "project ID is required"},
		{name: "google without topic", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, ProjectID: "p"}, wantErr: "topic ID is required"},
		{name: "unknown provider", cfg: &config.PubSubConfig{Provider: "kafka"}, wantErr: "unknown pubsub provider"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     fxtest.NewLifecycle(t),
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.cfg},
				Logger: logger,
			})
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			require.NotNil(t, publisher)
			if tt.cfg == nil || tt.cfg.Provider == "" {
				assert.IsType(t, &disabledPublisher{}, publisher)
				assert.NoError(t, publisher.PublishCheckInEvent(context.Background(), testEvent()))
			}
		})
	}
}

func TestDisabledPublisher_CountsSkippedEvents(t *testing.T) {
	publisher := &disabledPublisher{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}

	require.NoError(t, publisher.PublishCheckInEvent(context.Background(), testEvent()))
	require.NoError(t, publisher.PublishCheckInEvent(context.Background(), testEvent()))

	assert.Equal(t, int64(2), publisher.skipped.Load())
	assert.NoError(t, publisher.Close())
}
