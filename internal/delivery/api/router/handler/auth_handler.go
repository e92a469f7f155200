package handler

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"checkin/config"
	"checkin/internal/delivery/api/middleware"
	"checkin/internal/delivery/api/response"
	deliverycontext "checkin/internal/delivery/context"
	"checkin/internal/domain/entity"
	domainerrors "checkin/internal/domain/errors"
	"checkin/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Frontend error markers appended as ?error=...
const (
	authErrorFailed   = "auth_failed"
	authErrorInternal = "auth_error"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC         usecase.AuthUsecase
	AuthMiddleware *middleware.AuthMiddleware
	Config         *config.Config
	Logger         *slog.Logger
}

// AuthHandler serves the Google sign-in flow and the current-user probe.
type AuthHandler struct {
	authUC         usecase.AuthUsecase
	authMiddleware *middleware.AuthMiddleware
	frontendURL    string
	cookie         cookieSettings
	logger         *slog.Logger
}

type cookieSettings struct {
	name     string
	secure   bool
	sameSite http.SameSite
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	cookie := cookieSettings{
		name:     middleware.SessionCookieName(params.Config),
		secure:   true,
		sameSite: http.SameSiteNoneMode,
	}
	if params.Config.Session != nil {
		cookie.secure = params.Config.Session.CookieSecure
		cookie.sameSite = parseSameSite(params.Config.Session.CookieSameSite)
	}

	return &AuthHandler{
		authUC:         params.AuthUC,
		authMiddleware: params.AuthMiddleware,
		frontendURL:    params.Config.Frontend.URL,
		cookie:         cookie,
		logger:         params.Logger,
	}
}

func parseSameSite(mode string) http.SameSite {
	switch strings.ToLower(mode) {
	case "lax":
		return http.SameSiteLaxMode
	case "strict":
		return http.SameSiteStrictMode
	default:
		return http.SameSiteNoneMode
	}
}

// UserView is the public projection of a signed-in user.
type UserView struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Picture string `json:"picture"`
}

// CurrentUserResponse is the body of GET /auth/user.
type CurrentUserResponse struct {
	Authenticated bool      `json:"authenticated"`
	User          *UserView `json:"user,omitempty"`
}

func toUserView(u *entity.User) *UserView {
	return &UserView{ID: u.ID, Name: u.Name, Email: u.Email, Picture: u.Picture}
}

// Login redirects to the Google consent screen.
func (h *AuthHandler) Login(c echo.Context) error {
	authURL, err := h.authUC.BeginLogin(c.Request().Context())
	if err != nil {
		return err
	}

	return c.Redirect(http.StatusFound, authURL)
}

// Callback completes sign-in and hands the bearer token to the frontend.
// Failures never surface as JSON; the browser always lands on the frontend.
func (h *AuthHandler) Callback(c echo.Context) error {
	ctx := c.Request().Context()
	log := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	out, err := h.authUC.CompleteLogin(ctx, usecase.CompleteLoginInput{
		State:         c.QueryParam("state"),
		Code:          c.QueryParam("code"),
		ProviderError: c.QueryParam("error"),
	})
	if err != nil {
		marker := authErrorInternal
		if errors.Is(err, domainerrors.ErrOAuthFailed) || errors.Is(err, domainerrors.ErrOAuthStateInvalid) {
			marker = authErrorFailed
		}
		log.Warn("Auth callback failed", slog.Any("error", err), slog.String("marker", marker))

		return c.Redirect(http.StatusFound, h.frontendRedirect("error", marker))
	}

	c.SetCookie(h.sessionCookie(out.SessionToken, out.SessionTTL))

	return c.Redirect(http.StatusFound, h.frontendRedirect("auth_token", out.BearerToken))
}

// Logout revokes the bearer token, clears the session cookie and returns to the frontend.
func (h *AuthHandler) Logout(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.authUC.Logout(ctx, h.authMiddleware.Credentials(c)); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Warn("Logout failed", slog.Any("error", err))
	}

	c.SetCookie(h.sessionCookie("", -time.Second))

	return c.Redirect(http.StatusFound, h.frontendURL)
}

// CurrentUser reports who is signed in. Anonymous callers get authenticated=false.
func (h *AuthHandler) CurrentUser(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.OK(c, CurrentUserResponse{Authenticated: false})
	}

	user, err := h.authUC.CurrentUser(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserNotFound) {
			return response.OK(c, CurrentUserResponse{Authenticated: false})
		}

		return err
	}

	return response.OK(c, CurrentUserResponse{Authenticated: true, User: toUserView(user)})
}

func (h *AuthHandler) sessionCookie(value string, ttl time.Duration) *http.Cookie {
	cookie := &http.Cookie{
		Name:     h.cookie.name,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookie.secure,
		SameSite: h.cookie.sameSite,
		MaxAge:   int(ttl / time.Second),
	}
	if ttl < 0 {
		cookie.MaxAge = -1
	}

	return cookie
}

func (h *AuthHandler) frontendRedirect(key, value string) string {
	target, err := url.Parse(h.frontendURL)
	if err != nil {
		return h.frontendURL
	}

	query := target.Query()
	query.Set(key, value)
	target.RawQuery = query.Encode()

	return target.String()
}
