package handlers

import (
	"net/http"

	"cashflow/internal/errors"
	"cashflow/internal/services"

	"github.com/labstack/echo/v4"
)

// UserHandler serves the current user's profile
type UserHandler struct {
	userService  services.UserServiceInterface
	cookieSecure bool
}

func NewUserHandler(userService services.UserServiceInterface, cookieSecure bool) *UserHandler {
	return &UserHandler{
		userService:  userService,
		cookieSecure: cookieSecure,
	}
}

// GetMe returns the authenticated user
// @Summary Current user
// @Tags Users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} SuccessResponse{data=dto.UserResponse}
// @Router /users/me [get]
func (h *UserHandler) GetMe(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	user, err := h.userService.GetMe(userID)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: toUserResponse(user)})
}

// DeleteMe deletes the authenticated user together with their categories and transactions
// @Summary Delete current user
// @Tags Users
// @Security BearerAuth
// @Success 204
// @Router /users/me [delete]
func (h *UserHandler) DeleteMe(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	if err := h.userService.DeleteMe(c.Request().Context(), userID); err != nil {
		return handleServiceError(c, err)
	}

	c.SetCookie(&http.Cookie{
		Name:     AccessTokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteStrictMode,
	})
	return c.NoContent(http.StatusNoContent)
}
