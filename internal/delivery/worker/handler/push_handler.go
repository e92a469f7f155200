// Package handler contains the worker's Pub/Sub push handlers.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"checkin/config"
	deliverycontext "checkin/internal/delivery/context"
	"checkin/internal/domain/constants"
	"checkin/internal/domain/entity"
	"checkin/internal/domain/service"
	"checkin/internal/infra/pubsub"
	"checkin/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// tokenValidator checks a Google-signed push JWT for audience.
type tokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler consumes checkin.completed events and refreshes the cached
// daily leaderboard. Refresh failures answer 503 so Pub/Sub redelivers;
// malformed messages answer 2xx so they are dropped.
type PushHandler struct {
	verifyPushAuth bool
	validate       tokenValidator
	leaderboardUC  usecase.LeaderboardUsecase
	logger         *slog.Logger
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config        *config.Config
	Logger        *slog.Logger
	LeaderboardUC usecase.LeaderboardUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Only real Google deliveries carry a signed token.
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		validate:       idtoken.Validate,
		leaderboardUC:  params.LeaderboardUC,
		logger:         params.Logger,
	}
}

// HandlePush handles incoming Pub/Sub push messages. Messages that can never
// be processed are acknowledged with 204 so Pub/Sub stops redelivering them;
// only a failed refresh asks for a retry.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg pubsub.PushMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Dropping unparsable push message", slog.Any("error", err))

		return c.NoContent(http.StatusNoContent)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Dropping message with undecodable data",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusNoContent)
	}

	var event service.CheckInEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Dropping message that is not a check-in event",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusNoContent)
	}

	requestID := extractRequestID(ctx, &pushMsg, &event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	if eventType := pushMsg.Message.Attributes["event_type"]; eventType != "" && eventType != constants.CheckInCompletedEventType {
		reqLogger.Info("[Worker] Ignoring unknown event type", slog.String("event_type", eventType))

		return c.NoContent(http.StatusNoContent)
	}

	date, err := entity.ParseDate(event.Date)
	if err != nil {
		reqLogger.Error("[Worker] Event carries an invalid date",
			slog.String("event_id", event.EventID),
			slog.String("date", event.Date),
		)

		return c.NoContent(http.StatusNoContent)
	}

	if err := h.leaderboardUC.Refresh(ctx, date); err != nil {
		reqLogger.Error("[Worker] Failed to refresh leaderboard",
			slog.String("event_id", event.EventID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusServiceUnavailable)
	}

	reqLogger.Info("[Worker] Leaderboard refreshed",
		slog.String("event_id", event.EventID),
		slog.Int64("checkin_id", event.CheckInID),
		slog.String("date", event.Date),
	)

	return c.NoContent(http.StatusOK)
}

// extractRequestID prefers message attributes, then the event payload, then
// the X-Request-Id middleware value.
func extractRequestID(ctx context.Context, pushMsg *pubsub.PushMessage, event *service.CheckInEvent) string {
	if requestID := pushMsg.Message.Attributes["request_id"]; requestID != "" {
		return requestID
	}
	if event.RequestID != "" {
		return event.RequestID
	}

	return deliverycontext.GetRequestIDFromContext(ctx)
}

// verifyPubSubToken checks the OIDC token Pub/Sub attaches to authenticated push requests.
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	token, ok := strings.CutPrefix(req.Header.Get(echo.HeaderAuthorization), "Bearer ")
	if !ok || token == "" {
		return errors.New("missing bearer token")
	}

	scheme := "https"
	if req.TLS == nil && req.Header.Get(echo.HeaderXForwardedProto) != "https" {
		scheme = "http"
	}
	audience := scheme + "://" + req.Host + req.URL.Path

	payload, err := h.validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}
	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
