// Package router wires API handlers onto echo routes.
package router

import (
	"checkin/config"
	"checkin/internal/delivery/api/middleware"
	"checkin/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

type RouterParams struct {
	fx.In

	AuthHandler        *handler.AuthHandler
	CheckInHandler     *handler.CheckInHandler
	LeaderboardHandler *handler.LeaderboardHandler
	ReactionHandler    *handler.ReactionHandler
	AuthMiddleware     *middleware.AuthMiddleware
	Config             *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler        *handler.AuthHandler
	checkInHandler     *handler.CheckInHandler
	leaderboardHandler *handler.LeaderboardHandler
	reactionHandler    *handler.ReactionHandler
	authMiddleware     *middleware.AuthMiddleware
	config             *config.Config
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:        params.AuthHandler,
		checkInHandler:     params.CheckInHandler,
		leaderboardHandler: params.LeaderboardHandler,
		reactionHandler:    params.ReactionHandler,
		authMiddleware:     params.AuthMiddleware,
		config:             params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.GET("/login", r.authHandler.Login)
		authGroup.GET("/callback", r.authHandler.Callback)
		authGroup.GET("/logout", r.authHandler.Logout)
		authGroup.GET("/user", r.authHandler.CurrentUser, r.authMiddleware.Optional)
	}

	api := e.Group("/api")
	if limiter := r.rateLimiter(); limiter != nil {
		api.Use(limiter)
	}

	// Public read models
	api.GET("/leaderboard", r.leaderboardHandler.Daily)
	api.GET("/history", r.leaderboardHandler.History)

	// Per-route rather than a sub-group so unknown /api paths stay 404, not 401.
	authenticated := r.authMiddleware.Authenticate
	api.POST("/verify-location", r.checkInHandler.VerifyLocation, authenticated)
	api.POST("/checkin", r.checkInHandler.CheckIn, authenticated)
	api.GET("/status", r.checkInHandler.Status, authenticated)
	api.POST("/checkins/:id/reactions", r.reactionHandler.React, authenticated)
}

// rateLimiter is a per-IP limiter for /api, disabled when no rate is configured.
func (r *router) rateLimiter() echo.MiddlewareFunc {
	cfg := r.config.HTTP.RateLimit
	if cfg.RequestsPerSecond <= 0 {
		return nil
	}

	store := echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
		Rate:  rate.Limit(cfg.RequestsPerSecond),
		Burst: max(cfg.Burst, 1),
	})

	return echomiddleware.RateLimiter(store)
}
