package handler

import (
	"log/slog"
	"net/http"

	"checkin/internal/delivery/api/middleware"
	"checkin/internal/delivery/api/response"
	domainerrors "checkin/internal/domain/errors"
	"checkin/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CheckInHandlerParams holds dependencies for CheckInHandler, injected by Fx.
type CheckInHandlerParams struct {
	fx.In

	CheckInUC usecase.CheckInUsecase
	Logger    *slog.Logger
}

// CheckInHandler serves the two-step check-in flow.
type CheckInHandler struct {
	checkInUC usecase.CheckInUsecase
	logger    *slog.Logger
}

// NewCheckInHandler is the constructor for CheckInHandler
func NewCheckInHandler(params CheckInHandlerParams) *CheckInHandler {
	return &CheckInHandler{
		checkInUC: params.CheckInUC,
		logger:    params.Logger,
	}
}

// VerifyLocation handles POST /api/verify-location.
func (h *CheckInHandler) VerifyLocation(c echo.Context) error {
	userID, err := middleware.RequireUserID(c)
	if err != nil {
		return err
	}

	var req usecase.VerifyLocationInput
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid location payload")
	}

	out, err := h.checkInUC.VerifyLocation(c.Request().Context(), userID, req)
	if err != nil {
		return err
	}

	return response.OK(c, out)
}

// CheckIn handles POST /api/checkin.
func (h *CheckInHandler) CheckIn(c echo.Context) error {
	userID, err := middleware.RequireUserID(c)
	if err != nil {
		return err
	}

	var req usecase.CheckInInput
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid check-in payload")
	}

	out, err := h.checkInUC.CheckIn(c.Request().Context(), userID, req)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, out)
}

// Status handles GET /api/status.
func (h *CheckInHandler) Status(c echo.Context) error {
	userID, err := middleware.RequireUserID(c)
	if err != nil {
		return err
	}

	out, err := h.checkInUC.Status(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return response.OK(c, out)
}
