package middleware

import (
	stderrors "errors"
	"log/slog"

	"cashflow/internal/errors"
	"cashflow/internal/handlers"
	"cashflow/internal/repositories"
	"cashflow/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequireAuth creates a middleware that requires a valid JWT token, taken
// from the Authorization header or the access_token cookie, and checks that
// the token has not been blacklisted (e.g., after sign-out)
func RequireAuth(tokenService services.TokenServiceInterface, blacklistedTokenRepo repositories.BlacklistedTokenRepositoryInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var token string

			if authHeader := c.Request().Header.Get(echo.HeaderAuthorization); authHeader != "" {
				extracted, err := tokenService.ExtractTokenFromHeader(authHeader)
				if err != nil {
					return handlers.SendError(c, errors.AuthInvalidTokenFormat)
				}
				token = extracted
			} else if cookie, err := c.Cookie(handlers.AccessTokenCookie); err == nil && cookie.Value != "" {
				token = cookie.Value
			}

			if token == "" {
				return handlers.SendError(c, errors.AuthMissingToken)
			}

			claims, err := tokenService.ValidateAccessToken(token)
			if err != nil {
				if stderrors.Is(err, services.ErrExpiredToken) {
					return handlers.SendError(c, errors.AuthExpiredToken)
				}
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			revoked, err := blacklistedTokenRepo.IsBlacklisted(claims.ID)
			if err != nil {
				slog.ErrorContext(c.Request().Context(), "Failed to check token blacklist",
					"error", err,
					"jti", claims.ID)
				return handlers.SendSystemError(c, err)
			}
			if revoked {
				return handlers.SendError(c, errors.AuthTokenRevoked)
			}

			userID, err := uuid.Parse(claims.UserID)
			if err != nil {
				return handlers.SendError(c, errors.AuthInvalidTokenFormat, errors.WithDetails("Invalid user ID in token"))
			}

			c.Set("user_id", userID)
			c.Set("username", claims.Username)
			c.Set("token_jti", claims.ID)
			c.Set(handlers.AccessTokenContextKey, token)

			return next(c)
		}
	}
}
