package handler

import (
	"strconv"

	"checkin/internal/delivery/api/response"
	"checkin/internal/domain/entity"
	domainerrors "checkin/internal/domain/errors"
	"checkin/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LeaderboardHandlerParams holds dependencies for LeaderboardHandler, injected by Fx.
type LeaderboardHandlerParams struct {
	fx.In

	LeaderboardUC usecase.LeaderboardUsecase
}

// LeaderboardHandler serves the public daily board and history.
type LeaderboardHandler struct {
	leaderboardUC usecase.LeaderboardUsecase
}

// NewLeaderboardHandler is the constructor for LeaderboardHandler
func NewLeaderboardHandler(params LeaderboardHandlerParams) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboardUC: params.LeaderboardUC}
}

// Daily handles GET /api/leaderboard?date=YYYY-MM-DD. Without date it serves today.
func (h *LeaderboardHandler) Daily(c echo.Context) error {
	ctx := c.Request().Context()

	raw := c.QueryParam("date")
	if raw == "" {
		out, err := h.leaderboardUC.Today(ctx)
		if err != nil {
			return err
		}

		return response.OK(c, out)
	}

	date, err := entity.ParseDate(raw)
	if err != nil {
		return domainerrors.ErrInvalidDate.WithDetails(map[string]string{"date": raw})
	}

	out, err := h.leaderboardUC.Daily(ctx, date)
	if err != nil {
		return err
	}

	return response.OK(c, out)
}

// History handles GET /api/history?days=N. A missing or malformed days
// selects the default window.
func (h *LeaderboardHandler) History(c echo.Context) error {
	days, err := strconv.Atoi(c.QueryParam("days"))
	if err != nil {
		days = 0
	}

	out, err := h.leaderboardUC.History(c.Request().Context(), days)
	if err != nil {
		return err
	}

	return response.OK(c, out)
}
