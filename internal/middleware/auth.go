package middleware

import (
	"errors"
	"strings"

	apierrors "fintrack/internal/errors"
	"fintrack/internal/handlers"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequireAuth validates the bearer token minted by the authentication
// collaborator and resolves the caller's identity into the request
// context. Token issuance, refresh, and revocation live outside this
// service.
func RequireAuth(secret, issuer string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return handlers.SendError(c, apierrors.AuthMissingToken)
			}

			rawToken, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok || rawToken == "" {
				return handlers.SendError(c, apierrors.AuthInvalidTokenFormat)
			}

			claims := jwt.RegisteredClaims{}
			token, err := jwt.ParseWithClaims(rawToken, &claims, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(secret), nil
			}, jwt.WithIssuer(issuer), jwt.WithExpirationRequired())
			if err != nil {
				if errors.Is(err, jwt.ErrTokenExpired) {
					return handlers.SendError(c, apierrors.AuthExpiredToken)
				}
				return handlers.SendError(c, apierrors.AuthInvalidTokenFormat)
			}
			if !token.Valid {
				return handlers.SendError(c, apierrors.AuthInvalidTokenFormat)
			}

			userID, err := uuid.Parse(claims.Subject)
			if err != nil {
				return handlers.SendError(c, apierrors.AuthInvalidTokenFormat,
					apierrors.WithDetails("Invalid user ID in token"))
			}

			c.Set("user_id", userID)
			return next(c)
		}
	}
}
