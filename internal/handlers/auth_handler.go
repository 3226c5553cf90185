package handlers

import (
	stderrors "errors"
	"net/http"
	"time"

	"cashflow/internal/dto"
	"cashflow/internal/errors"
	"cashflow/internal/services"

	"github.com/labstack/echo/v4"
)

const (
	// AccessTokenCookie is the cookie carrying the JWT for browser clients
	AccessTokenCookie = "access_token"
	// AccessTokenContextKey holds the raw token of an authenticated request
	AccessTokenContextKey = "access_token"

	accessTokenCookieMaxAge = 7 * 24 * time.Hour
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService  services.AuthServiceInterface
	cookieSecure bool
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(authService services.AuthServiceInterface, cookieSecure bool) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		cookieSecure: cookieSecure,
	}
}

// SignUp handles user registration
// @Summary Register a new user
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.SignUpRequest true "Registration details"
// @Success 201 {object} SuccessResponse{data=dto.AuthResponse}
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001"
// @Failure 409 {object} errors.ErrorResponse "USER_002"
// @Router /auth/sign-up [post]
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req dto.SignUpRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	user, token, err := h.authService.SignUp(c.Request().Context(), &req)
	if err != nil {
		if stderrors.Is(err, services.ErrUsernameTaken) {
			return SendError(c, errors.UserAlreadyExists)
		}
		return SendSystemError(c, err)
	}

	h.setTokenCookie(c, token.AccessToken)

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data: dto.AuthResponse{
			User:  toUserResponse(user),
			Token: *token,
		},
		Message: "User registered successfully",
	})
}

// SignIn handles user authentication
// @Summary Sign in
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.SignInRequest true "Credentials"
// @Success 200 {object} SuccessResponse{data=dto.AuthResponse}
// @Failure 401 {object} errors.ErrorResponse "AUTH_001"
// @Router /auth/sign-in [post]
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req dto.SignInRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	user, token, err := h.authService.SignIn(c.Request().Context(), &req)
	if err != nil {
		if stderrors.Is(err, services.ErrInvalidCredentials) {
			return SendError(c, errors.AuthInvalidCredentials)
		}
		return SendSystemError(c, err)
	}

	h.setTokenCookie(c, token.AccessToken)

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.AuthResponse{
			User:  toUserResponse(user),
			Token: *token,
		},
	})
}

// SignOut revokes the current access token and clears the cookie
// @Summary Sign out
// @Tags Authentication
// @Security BearerAuth
// @Success 204
// @Failure 401 {object} errors.ErrorResponse "AUTH_002..AUTH_005"
// @Router /auth/sign-out [post]
func (h *AuthHandler) SignOut(c echo.Context) error {
	token, ok := c.Get(AccessTokenContextKey).(string)
	if !ok || token == "" {
		return SendError(c, errors.AuthMissingToken)
	}

	if err := h.authService.SignOut(c.Request().Context(), token); err != nil {
		return SendSystemError(c, err)
	}

	h.clearTokenCookie(c)
	return c.NoContent(http.StatusNoContent)
}

func (h *AuthHandler) setTokenCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     AccessTokenCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(accessTokenCookieMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteStrictMode,
	})
}

func (h *AuthHandler) clearTokenCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     AccessTokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteStrictMode,
	})
}
