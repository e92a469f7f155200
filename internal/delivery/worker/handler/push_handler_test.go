package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"checkin/internal/domain/service"
	"checkin/internal/infra/pubsub"
	mockUC "checkin/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestPushHandler(t *testing.T) (*PushHandler, *mockUC.MockLeaderboardUsecase) {
	leaderboardUC := mockUC.NewMockLeaderboardUsecase(t)

	return &PushHandler{
		leaderboardUC: leaderboardUC,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}, leaderboardUC
}

func pushBody(t *testing.T, event *service.CheckInEvent, attrs map[string]string) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg pubsub.PushMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = event.EventID
	msg.Message.Attributes = attrs
	msg.Subscription = "projects/test/subscriptions/checkin-sub"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func servePush(h *PushHandler, body string, header http.Header) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

var sampleEvent = &service.CheckInEvent{
	RequestID:   "req-1",
	EventID:     "evt-1",
	CheckInID:   7,
	UserID:      "user-a",
	Date:        "2025-03-14",
	CheckInTime: "2025-03-14T08:00:00Z",
}

func TestPushHandler_RefreshesLeaderboard(t *testing.T) {
	h, leaderboardUC := newTestPushHandler(t)
	leaderboardUC.EXPECT().
		Refresh(mock.Anything, time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)).
		Run(func(ctx context.Context, _ time.Time) {
			assert.NotNil(t, ctx)
		}).
		Return(nil)

	rec := servePush(h, pushBody(t, sampleEvent, map[string]string{"event_type": "checkin.completed"}), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_RefreshFailureIsRetried(t *testing.T) {
	h, leaderboardUC := newTestPushHandler(t)
	leaderboardUC.EXPECT().Refresh(mock.Anything, mock.Anything).Return(errors.New("db down"))

	rec := servePush(h, pushBody(t, sampleEvent, nil), nil)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_DropsUnusableMessages(t *testing.T) {
	badDate := *sampleEvent
	badDate.Date = "14/03/2025"

	tests := []struct {
		name string
		body string
		want int
	}{
		{name: "not json", body: "{", want: http.StatusNoContent},
		{name: "data not base64", body: `{"message":{"data":"%%%"}}`, want: http.StatusNoContent},
		{name: "data not an event", body: `{"message":{"data":"` + base64.StdEncoding.EncodeToString([]byte("[]")) + `"}}`, want: http.StatusNoContent},
		{name: "invalid date", body: pushBody(t, &badDate, nil), want: http.StatusNoContent},
		{name: "other event type", body: pushBody(t, sampleEvent, map[string]string{"event_type": "user.deleted"}), want: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestPushHandler(t)

			rec := servePush(h, tt.body, nil)

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestPushHandler_VerifiesPushToken(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		h, _ := newTestPushHandler(t)
		h.verifyPushAuth = true

		rec := servePush(h, pushBody(t, sampleEvent, nil), nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("audience is the push endpoint", func(t *testing.T) {
		h, leaderboardUC := newTestPushHandler(t)
		h.verifyPushAuth = true
		h.validate = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
			assert.Equal(t, "signed", token)
			assert.Equal(t, "http://example.com/push", audience)

			return &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": true}}, nil
		}
		leaderboardUC.EXPECT().Refresh(mock.Anything, mock.Anything).Return(nil)

		rec := servePush(h, pushBody(t, sampleEvent, nil), http.Header{"Authorization": {"Bearer signed"}})

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("foreign issuer", func(t *testing.T) {
		h, _ := newTestPushHandler(t)
		h.verifyPushAuth = true
		h.validate = func(context.Context, string, string) (*idtoken.Payload, error) {
			return &idtoken.Payload{Issuer: "https://evil.example.com"}, nil
		}

		rec := servePush(h, pushBody(t, sampleEvent, nil), http.Header{"Authorization": {"Bearer signed"}})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestExtractRequestID(t *testing.T) {
	var msg pubsub.PushMessage
	event := &service.CheckInEvent{RequestID: "from-event"}

	assert.Equal(t, "from-event", extractRequestID(context.Background(), &msg, event))

	msg.Message.Attributes = map[string]string{"request_id": "from-attrs"}
	assert.Equal(t, "from-attrs", extractRequestID(context.Background(), &msg, event))
}
