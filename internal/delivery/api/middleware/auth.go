package middleware

import (
	"strings"

	"checkin/config"
	deliverycontext "checkin/internal/delivery/context"
	domainerrors "checkin/internal/domain/errors"
	"checkin/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const bearerPrefix = "Bearer "

// AuthMiddleware resolves the request principal from the session cookie or
// the Authorization bearer token.
type AuthMiddleware struct {
	authUC     usecase.AuthUsecase
	cookieName string
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUC usecase.AuthUsecase, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{
		authUC:     authUC,
		cookieName: SessionCookieName(cfg),
	}
}

// SessionCookieName is the configured session cookie name.
func SessionCookieName(cfg *config.Config) string {
	if cfg.Session != nil && cfg.Session.CookieName != "" {
		return cfg.Session.CookieName
	}

	return "session"
}

// Credentials collects whatever the request presented.
func (m *AuthMiddleware) Credentials(c echo.Context) usecase.Credentials {
	var creds usecase.Credentials
	if cookie, err := c.Cookie(m.cookieName); err == nil {
		creds.SessionToken = cookie.Value
	}

	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if token, ok := strings.CutPrefix(header, bearerPrefix); ok {
		creds.BearerToken = strings.TrimSpace(token)
	}

	return creds
}

// Authenticate rejects the request with NOT_AUTHENTICATED unless a principal resolves.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := m.authUC.ResolvePrincipal(c.Request().Context(), m.Credentials(c))
		if err != nil {
			return err
		}

		deliverycontext.SetUserID(c, userID)

		return next(c)
	}
}

// Optional resolves a principal when possible and lets anonymous requests through.
func (m *AuthMiddleware) Optional(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := m.authUC.ResolvePrincipal(c.Request().Context(), m.Credentials(c))
		switch {
		case err == nil:
			deliverycontext.SetUserID(c, userID)
		case !errors.Is(err, domainerrors.ErrNotAuthenticated):
			return err
		}

		return next(c)
	}
}

// GetUserID returns the principal set by Authenticate or Optional.
func GetUserID(c echo.Context) (string, bool) {
	return deliverycontext.GetUserID(c)
}

// RequireUserID is GetUserID for handlers behind Authenticate.
func RequireUserID(c echo.Context) (string, error) {
	userID, ok := GetUserID(c)
	if !ok {
		return "", domainerrors.ErrNotAuthenticated
	}

	return userID, nil
}
