package jwt

import (
	"context"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// SubjectChecker verifies that a token subject still resolves to a stored
// user. A structurally valid token for a user that no longer exists must be
// rejected.
type SubjectChecker interface {
	Exists(ctx context.Context, email string) (bool, error)
}

// SubjectCheckerFunc adapts a plain function to SubjectChecker.
type SubjectCheckerFunc func(ctx context.Context, email string) (bool, error)

func (f SubjectCheckerFunc) Exists(ctx context.Context, email string) (bool, error) {
	return f(ctx, email)
}

// NewAuthMiddleware returns a Fiber middleware that validates Bearer JWT
// (HS256) and checks the subject against users. On success sets the subject
// email into c.Locals("userEmail").
func NewAuthMiddleware(gen *Generator, users SubjectChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": "Missing or invalid auth token"})
		}
		tokenStr := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if tokenStr == "" {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": "Missing or invalid auth token"})
		}
		email, err := gen.Verify(tokenStr)
		if err != nil {
			if err == ErrTokenExpired {
				return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": "Token expired"})
			}
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token", "details": err.Error()})
		}
		ok, err := users.Exists(c.Context(), email)
		if err != nil {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token", "details": err.Error()})
		}
		if !ok {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": "User not found"})
		}
		c.Locals("userEmail", email)
		return c.Next()
	}
}
