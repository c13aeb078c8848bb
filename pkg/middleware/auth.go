package middleware

import (
	"strings"

	"duitku/pkg/auth"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// TokenCookie is the http-only cookie carrying the session JWT.
const TokenCookie = "token"

// AuthRequired resolves the caller's identity from the token cookie,
// falling back to an Authorization bearer header for non-browser clients.
func AuthRequired(jwtManager *auth.JWTManager, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(TokenCookie)
		if token == "" {
			header := c.Get(fiber.HeaderAuthorization)
			token = strings.TrimPrefix(header, "Bearer ")
		}

		if token == "" {
			logger.Warn("Missing authentication token", zap.String("path", c.Path()))
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized",
			})
		}

		claims, err := jwtManager.ValidateToken(token)
		if err != nil {
			logger.Warn("Invalid token", zap.Error(err))
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid token",
			})
		}

		c.Locals("userID", claims.UserID)

		return c.Next()
	}
}
