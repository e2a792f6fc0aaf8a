package middleware

import (
	"strings"

	"newswire-backend/app/repository"
	"newswire-backend/internal/pkg/security"
	"newswire-backend/internal/pkg/usercontext"

	"github.com/gofiber/fiber/v2"
)

const bearerPrefix = "Bearer "

// UserContextMiddleware resolves the bearer token (when present) into a user
// context for every request. An invalid or missing token leaves the request
// anonymous; the role gates below then reject protected routes.
func UserContextMiddleware(tokens *security.TokenManager, users repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" || !strings.HasPrefix(header, bearerPrefix) {
			return c.Next()
		}

		claims, err := tokens.Validate(strings.TrimPrefix(header, bearerPrefix))
		if err != nil {
			return c.Next()
		}

		// The token is only accepted if the embedded username still resolves
		// to the same user row.
		user, err := users.GetByUsername(claims.Subject)
		if err != nil || user.ID != claims.UserID {
			return c.Next()
		}

		usercontext.SetUserContext(c, usercontext.UserContext{
			UserID:     user.ID,
			Username:   user.Username,
			Role:       user.Role,
			IsLoggedIn: true,
			IsAdmin:    user.IsAdmin(),
		})
		return c.Next()
	}
}

// RequireAuth ensures an authenticated user and returns JSON 401 otherwise.
func RequireAuth(c *fiber.Ctx) error {
	if !usercontext.IsLoggedIn(c) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error":   "unauthorized",
			"message": "authentication required",
		})
	}
	return c.Next()
}

// RequireAdmin ensures an authenticated admin; 401 for anonymous, 403 otherwise.
func RequireAdmin(c *fiber.Ctx) error {
	if !usercontext.IsLoggedIn(c) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error":   "unauthorized",
			"message": "authentication required",
		})
	}
	if !usercontext.IsAdmin(c) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error":   "forbidden",
			"message": "admin role required",
		})
	}
	return c.Next()
}
