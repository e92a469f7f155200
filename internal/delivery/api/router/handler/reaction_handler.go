package handler

import (
	"net/http"
	"strconv"

	"checkin/internal/delivery/api/middleware"
	"checkin/internal/delivery/api/response"
	domainerrors "checkin/internal/domain/errors"
	"checkin/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ReactionHandlerParams holds dependencies for ReactionHandler, injected by Fx.
type ReactionHandlerParams struct {
	fx.In

	ReactionUC usecase.ReactionUsecase
}

// ReactionHandler serves likes and dislikes on check-ins.
type ReactionHandler struct {
	reactionUC usecase.ReactionUsecase
}

// NewReactionHandler is the constructor for ReactionHandler
func NewReactionHandler(params ReactionHandlerParams) *ReactionHandler {
	return &ReactionHandler{reactionUC: params.ReactionUC}
}

// ReactRequest is the body of POST /api/checkins/:id/reactions.
type ReactRequest struct {
	Type string `json:"type" validate:"required"`
}

// React handles POST /api/checkins/:id/reactions.
func (h *ReactionHandler) React(c echo.Context) error {
	userID, err := middleware.RequireUserID(c)
	if err != nil {
		return err
	}

	checkInID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || checkInID <= 0 {
		return domainerrors.ErrCheckInNotFound
	}

	var req ReactRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid reaction payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	out, err := h.reactionUC.React(c.Request().Context(), userID, usecase.ReactInput{
		CheckInID: checkInID,
		Type:      req.Type,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, out)
}
