package handler_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"checkin/config"
	"checkin/internal/delivery/api"
	"checkin/internal/delivery/api/middleware"
	"checkin/internal/delivery/api/router"
	"checkin/internal/delivery/api/router/handler"
	"checkin/internal/domain/entity"
	domainerrors "checkin/internal/domain/errors"
	mockUC "checkin/internal/mocks/usecase"
	"checkin/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const frontendURL = "https://checkin.example.com"

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string         `json:"code"`
		Message string         `json:"message"`
		Details map[string]any `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

type apiFixtures struct {
	echo          *echo.Echo
	authUC        *mockUC.MockAuthUsecase
	checkInUC     *mockUC.MockCheckInUsecase
	leaderboardUC *mockUC.MockLeaderboardUsecase
	reactionUC    *mockUC.MockReactionUsecase
}

func newAPIFixtures(t *testing.T, opts ...func(*config.Config)) apiFixtures {
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1M"
	cfg.Frontend.URL = frontendURL
	cfg.Session = &config.SessionConfig{CookieName: "checkin_session", CookieSecure: true, CookieSameSite: "none"}
	for _, opt := range opts {
		opt(cfg)
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	fx := apiFixtures{
		authUC:        mockUC.NewMockAuthUsecase(t),
		checkInUC:     mockUC.NewMockCheckInUsecase(t),
		leaderboardUC: mockUC.NewMockLeaderboardUsecase(t),
		reactionUC:    mockUC.NewMockReactionUsecase(t),
	}

	authMiddleware := middleware.NewAuthMiddleware(fx.authUC, cfg)
	e := api.NewEcho(cfg, logger)
	router.NewRouter(router.RouterParams{
		AuthHandler: handler.NewAuthHandler(handler.AuthHandlerParams{
			AuthUC:         fx.authUC,
			AuthMiddleware: authMiddleware,
			Config:         cfg,
			Logger:         logger,
		}),
		CheckInHandler:     handler.NewCheckInHandler(handler.CheckInHandlerParams{CheckInUC: fx.checkInUC, Logger: logger}),
		LeaderboardHandler: handler.NewLeaderboardHandler(handler.LeaderboardHandlerParams{LeaderboardUC: fx.leaderboardUC}),
		ReactionHandler:    handler.NewReactionHandler(handler.ReactionHandlerParams{ReactionUC: fx.reactionUC}),
		AuthMiddleware:     authMiddleware,
		Config:             cfg,
	}).RegisterRoutes(e)
	fx.echo = e

	return fx
}

func (fx apiFixtures) signIn(userID string) {
	fx.authUC.EXPECT().
		ResolvePrincipal(mock.Anything, usecase.Credentials{BearerToken: "tok-" + userID}).
		Return(userID, nil)
}

func (fx apiFixtures) do(method, target, body, userID string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if userID != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer tok-"+userID)
	}
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	assert.NotEmpty(t, env.Meta.RequestID)

	return env
}

func TestHealthCheck(t *testing.T) {
	fx := newAPIFixtures(t)

	rec := fx.do(http.MethodGet, "/health", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, rec.Body.String())
}

func TestCheckInRoutes_RequireAuthentication(t *testing.T) {
	fx := newAPIFixtures(t)
	fx.authUC.EXPECT().
		ResolvePrincipal(mock.Anything, usecase.Credentials{}).
		Return("", domainerrors.ErrNotAuthenticated)

	rec := fx.do(http.MethodPost, "/api/verify-location", `{"latitude":52.35,"longitude":4.95}`, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	env := decode(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "NOT_AUTHENTICATED", env.Error.Code)
}

func TestAuthMiddleware_PrefersCookieAndBearerTogether(t *testing.T) {
	fx := newAPIFixtures(t)
	fx.authUC.EXPECT().
		ResolvePrincipal(mock.Anything, usecase.Credentials{SessionToken: "jwt", BearerToken: "opaque"}).
		Return("user-a", nil)
	fx.checkInUC.EXPECT().Status(mock.Anything, "user-a").Return(&usecase.StatusOutput{CheckedIn: false}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/status", nil)
	req.AddCookie(&http.Cookie{Name: "checkin_session", Value: "jwt"})
	req.Header.Set(echo.HeaderAuthorization, "Bearer opaque")
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"checked_in":false}`, string(decode(t, rec).Data))
}

func TestCheckInHandler_VerifyLocation(t *testing.T) {
	t.Run("passes absent coordinates through as nil", func(t *testing.T) {
		fx := newAPIFixtures(t)
		fx.signIn("user-a")
		fx.checkInUC.EXPECT().
			VerifyLocation(mock.Anything, "user-a", usecase.VerifyLocationInput{}).
			Return(nil, domainerrors.ErrMissingCoordinates)

		rec := fx.do(http.MethodPost, "/api/verify-location", `{}`, "user-a")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "MISSING_COORDINATES", decode(t, rec).Error.Code)
	})

	t.Run("out of range exposes distance", func(t *testing.T) {
		fx := newAPIFixtures(t)
		fx.signIn("user-a")
		fx.checkInUC.EXPECT().
			VerifyLocation(mock.Anything, "user-a", mock.Anything).
			Return(nil, domainerrors.NewOutOfRangeError(35120.4, 10000))

		rec := fx.do(http.MethodPost, "/api/verify-location", `{"latitude":52.09,"longitude":5.12}`, "user-a")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		env := decode(t, rec)
		assert.Equal(t, "OUT_OF_RANGE", env.Error.Code)
		assert.InDelta(t, 35120.4, env.Error.Details["distance"], 0.001)
		assert.InDelta(t, 10000.0, env.Error.Details["allowed_radius"], 0.001)
	})

	t.Run("malformed body", func(t *testing.T) {
		fx := newAPIFixtures(t)
		fx.signIn("user-a")

		rec := fx.do(http.MethodPost, "/api/verify-location", `{"latitude":"north"}`, "user-a")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", decode(t, rec).Error.Code)
	})
}

func TestCheckInHandler_CheckIn(t *testing.T) {
	checkInTime := time.Date(2025, 3, 14, 8, 0, 0, 0, time.UTC)

	t.Run("created", func(t *testing.T) {
		fx := newAPIFixtures(t)
		fx.signIn("user-a")
		fx.checkInUC.EXPECT().
			CheckIn(mock.Anything, "user-a", mock.MatchedBy(func(in usecase.CheckInInput) bool {
				return in.Latitude != nil && *in.Latitude == 52.3547 && in.Photo == "data:image/jpeg;base64,AAA"
			})).
			Return(&usecase.CheckInOutput{CheckInID: 7, CheckInTime: checkInTime, Message: "Checked in successfully!"}, nil)

		rec := fx.do(http.MethodPost, "/api/checkin", `{"latitude":52.3547,"longitude":4.9543,"photo":"data:image/jpeg;base64,AAA"}`, "user-a")

		assert.Equal(t, http.StatusCreated, rec.Code)
		var out usecase.CheckInOutput
		require.NoError(t, json.Unmarshal(decode(t, rec).Data, &out))
		assert.Equal(t, int64(7), out.CheckInID)
		assert.True(t, checkInTime.Equal(out.CheckInTime))
	})

	t.Run("already checked in", func(t *testing.T) {
		fx := newAPIFixtures(t)
		fx.signIn("user-a")
		fx.checkInUC.EXPECT().
			CheckIn(mock.Anything, "user-a", mock.Anything).
			Return(nil, errors.Wrap(domainerrors.NewAlreadyCheckedInError(checkInTime), "check-in"))

		rec := fx.do(http.MethodPost, "/api/checkin", `{"latitude":52.3547,"longitude":4.9543,"photo":"p"}`, "user-a")

		assert.Equal(t, http.StatusConflict, rec.Code)
		env := decode(t, rec)
		assert.Equal(t, "ALREADY_CHECKED_IN", env.Error.Code)
		assert.Equal(t, "2025-03-14T08:00:00Z", env.Error.Details["check_in_time"])
	})

	t.Run("storage failure hides details", func(t *testing.T) {
		fx := newAPIFixtures(t)
		fx.signIn("user-a")
		fx.checkInUC.EXPECT().
			CheckIn(mock.Anything, "user-a", mock.Anything).
			Return(nil, domainerrors.NewDatabaseExecuteError(errors.New("pq: connection reset"), "failed to create check-in"))

		rec := fx.do(http.MethodPost, "/api/checkin", `{"latitude":52.3547,"longitude":4.9543,"photo":"p"}`, "user-a")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		env := decode(t, rec)
		assert.Equal(t, "DATABASE_EXECUTE_FAILED", env.Error.Code)
		assert.Nil(t, env.Error.Details)
		assert.NotContains(t, rec.Body.String(), "connection reset")
	})

	t.Run("unexpected error", func(t *testing.T) {
		fx := newAPIFixtures(t)
		fx.signIn("user-a")
		fx.checkInUC.EXPECT().CheckIn(mock.Anything, "user-a", mock.Anything).Return(nil, errors.New("boom"))

		rec := fx.do(http.MethodPost, "/api/checkin", `{"latitude":1,"longitude":1,"photo":"p"}`, "user-a")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "INTERNAL_ERROR", decode(t, rec).Error.Code)
	})
}

func TestLeaderboardHandler_Daily(t *testing.T) {
	t.Run("today by default", func(t *testing.T) {
		fx := newAPIFixtures(t)
		fx.leaderboardUC.EXPECT().Today(mock.Anything).Return(&usecase.DailyLeaderboardOutput{
			Date:        "2025-03-14",
			Leaderboard: []usecase.LeaderboardEntry{},
		}, nil)

		rec := fx.do(http.MethodGet, "/api/leaderboard", "", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"date":"2025-03-14","leaderboard":[]}`, string(decode(t, rec).Data))
	})

	t.Run("explicit date", func(t *testing.T) {
		fx := newAPIFixtures(t)
		fx.leaderboardUC.EXPECT().
			Daily(mock.Anything, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)).
			Return(&usecase.DailyLeaderboardOutput{Date: "2025-03-01", Leaderboard: []usecase.LeaderboardEntry{}}, nil)

		rec := fx.do(http.MethodGet, "/api/leaderboard?date=2025-03-01", "", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("invalid date", func(t *testing.T) {
		fx := newAPIFixtures(t)

		rec := fx.do(http.MethodGet, "/api/leaderboard?date=14-03-2025", "", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		env := decode(t, rec)
		assert.Equal(t, "INVALID_DATE", env.Error.Code)
		assert.Equal(t, "14-03-2025", env.Error.Details["date"])
	})
}

func TestLeaderboardHandler_History(t *testing.T) {
	tests := []struct {
		name  string
		query string
		days  int
	}{
		{name: "default window", query: "", days: 0},
		{name: "explicit days", query: "?days=7", days: 7},
		{name: "malformed days", query: "?days=week", days: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := newAPIFixtures(t)
			fx.leaderboardUC.EXPECT().
				History(mock.Anything, tt.days).
				Return(&usecase.HistoryOutput{History: []usecase.HistoryDay{}}, nil)

			rec := fx.do(http.MethodGet, "/api/history"+tt.query, "", "")

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, `{"history":[]}`, string(decode(t, rec).Data))
		})
	}
}

func TestReactionHandler_React(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		fx := newAPIFixtures(t)
		fx.signIn("user-a")
		fx.reactionUC.EXPECT().
			React(mock.Anything, "user-a", usecase.ReactInput{CheckInID: 42, Type: "like"}).
			Return(&usecase.ReactOutput{ReactionID: 1, CheckInID: 42, Type: "like", Date: "2025-03-14"}, nil)

		rec := fx.do(http.MethodPost, "/api/checkins/42/reactions", `{"type":"like"}`, "user-a")

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("missing type", func(t *testing.T) {
		fx := newAPIFixtures(t)
		fx.signIn("user-a")

		rec := fx.do(http.MethodPost, "/api/checkins/42/reactions", `{}`, "user-a")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		env := decode(t, rec)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
		assert.Equal(t, "required", env.Error.Details["type"])
	})

	t.Run("non-numeric id", func(t *testing.T) {
		fx := newAPIFixtures(t)
		fx.signIn("user-a")

		rec := fx.do(http.MethodPost, "/api/checkins/abc/reactions", `{"type":"like"}`, "user-a")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "CHECKIN_NOT_FOUND", decode(t, rec).Error.Code)
	})

	t.Run("second reaction of the day", func(t *testing.T) {
		fx := newAPIFixtures(t)
		fx.signIn("user-a")
		fx.reactionUC.EXPECT().React(mock.Anything, "user-a", mock.Anything).Return(nil, domainerrors.ErrReactionAlreadyGiven)

		rec := fx.do(http.MethodPost, "/api/checkins/42/reactions", `{"type":"dislike"}`, "user-a")

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "REACTION_ALREADY_GIVEN", decode(t, rec).Error.Code)
	})
}

func TestAuthHandler_Login(t *testing.T) {
	fx := newAPIFixtures(t)
	fx.authUC.EXPECT().BeginLogin(mock.Anything).Return("https://accounts.google.com/o/oauth2/auth?state=abc", nil)

	rec := fx.do(http.MethodGet, "/auth/login", "", "")

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "https://accounts.google.com/o/oauth2/auth?state=abc", rec.Header().Get(echo.HeaderLocation))
}

func TestAuthHandler_Callback(t *testing.T) {
	t.Run("success sets cookie and hands off bearer token", func(t *testing.T) {
		fx := newAPIFixtures(t)
		fx.authUC.EXPECT().
			CompleteLogin(mock.Anything, usecase.CompleteLoginInput{State: "s1", Code: "c1"}).
			Return(&usecase.CompleteLoginOutput{
				User:         &entity.User{ID: "google-1"},
				BearerToken:  "opaque-token",
				SessionToken: "signed-jwt",
				SessionTTL:   24 * time.Hour,
			}, nil)

		rec := fx.do(http.MethodGet, "/auth/callback?state=s1&code=c1", "", "")

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, frontendURL+"?auth_token=opaque-token", rec.Header().Get(echo.HeaderLocation))

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "checkin_session", cookies[0].Name)
		assert.Equal(t, "signed-jwt", cookies[0].Value)
		assert.True(t, cookies[0].HttpOnly)
		assert.True(t, cookies[0].Secure)
		assert.Equal(t, http.SameSiteNoneMode, cookies[0].SameSite)
		assert.Equal(t, 86400, cookies[0].MaxAge)
	})

	tests := []struct {
		name   string
		err    error
		marker string
	}{
		{name: "stale state", err: domainerrors.ErrOAuthStateInvalid, marker: "auth_failed"},
		{name: "provider rejected", err: domainerrors.ErrOAuthFailed.WrapMessage("access_denied"), marker: "auth_failed"},
		{name: "internal", err: errors.New("db down"), marker: "auth_error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := newAPIFixtures(t)
			fx.authUC.EXPECT().CompleteLogin(mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := fx.do(http.MethodGet, "/auth/callback?state=s1&code=c1", "", "")

			assert.Equal(t, http.StatusFound, rec.Code)
			location, err := url.Parse(rec.Header().Get(echo.HeaderLocation))
			require.NoError(t, err)
			assert.Equal(t, tt.marker, location.Query().Get("error"))
			assert.Empty(t, rec.Result().Cookies())
		})
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	fx := newAPIFixtures(t)
	fx.authUC.EXPECT().Logout(mock.Anything, usecase.Credentials{BearerToken: "tok-user-a"}).Return(nil)

	rec := fx.do(http.MethodGet, "/auth/logout", "", "user-a")

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, frontendURL, rec.Header().Get(echo.HeaderLocation))
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestAuthHandler_CurrentUser(t *testing.T) {
	t.Run("anonymous", func(t *testing.T) {
		fx := newAPIFixtures(t)
		fx.authUC.EXPECT().ResolvePrincipal(mock.Anything, usecase.Credentials{}).Return("", domainerrors.ErrNotAuthenticated)

		rec := fx.do(http.MethodGet, "/auth/user", "", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"authenticated":false}`, string(decode(t, rec).Data))
	})

	t.Run("signed in", func(t *testing.T) {
		fx := newAPIFixtures(t)
		fx.signIn("user-a")
		fx.authUC.EXPECT().CurrentUser(mock.Anything, "user-a").Return(&entity.User{
			ID:      "user-a",
			Name:    "Alice",
			Email:   "alice@example.com",
			Picture: "https://example.com/a.png",
		}, nil)

		rec := fx.do(http.MethodGet, "/auth/user", "", "user-a")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t,
			`{"authenticated":true,"user":{"id":"user-a","name":"Alice","email":"alice@example.com","picture":"https://example.com/a.png"}}`,
			string(decode(t, rec).Data),
		)
	})

	t.Run("store outage is a server error", func(t *testing.T) {
		fx := newAPIFixtures(t)
		fx.authUC.EXPECT().ResolvePrincipal(mock.Anything, mock.Anything).Return("", errors.New("redis down"))

		rec := fx.do(http.MethodGet, "/auth/user", "", "user-a")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestUnknownRoute(t *testing.T) {
	fx := newAPIFixtures(t)

	rec := fx.do(http.MethodGet, "/api/nope", "", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", decode(t, rec).Error.Code)
}

func TestAPIRateLimit(t *testing.T) {
	fx := newAPIFixtures(t, func(cfg *config.Config) {
		cfg.HTTP.RateLimit = config.RateLimitConfig{RequestsPerSecond: 0.001, Burst: 1}
	})
	fx.leaderboardUC.EXPECT().
		History(mock.Anything, 0).
		Return(&usecase.HistoryOutput{History: []usecase.HistoryDay{}}, nil).
		Once()

	first := fx.do(http.MethodGet, "/api/history", "", "")
	second := fx.do(http.MethodGet, "/api/history", "", "")

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Equal(t, "RATE_LIMITED", decode(t, second).Error.Code)
}

func TestCORS_AllowsFrontendWithCredentials(t *testing.T) {
	fx := newAPIFixtures(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/checkin", nil)
	req.Header.Set(echo.HeaderOrigin, frontendURL)
	req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodPost)
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, frontendURL, rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	assert.Equal(t, "true", rec.Header().Get(echo.HeaderAccessControlAllowCredentials))
}
