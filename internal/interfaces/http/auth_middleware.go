package http

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/iamungmonita/plants-box-api/internal/domain"
	"github.com/iamungmonita/plants-box-api/pkg/jwt"
)

// Locals keys set by the auth middleware.
const (
	LocalUserID    = "user_id"
	LocalFirstName = "first_name"
	LocalCodes     = "codes"
)

// AuthMiddleware validates the Bearer JWT and stores the principal's ID, name
// and capability codes in c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return respondError(c, fmt.Errorf("%w: Authorization header required", domain.ErrUnauthorized))
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return respondError(c, fmt.Errorf("%w: format: Bearer <token>", domain.ErrUnauthorized))
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return respondError(c, fmt.Errorf("%w: empty token", domain.ErrUnauthorized))
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return respondError(c, fmt.Errorf("%w: invalid or expired token", domain.ErrUnauthorized))
		}
		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalFirstName, claims.FirstName)
		c.Locals(LocalCodes, claims.Codes)
		return c.Next()
	}
}

// RequireCode guards a route behind one capability code. Runs after
// AuthMiddleware.
func RequireCode(code string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		for _, have := range GetCodes(c) {
			if have == code {
				return c.Next()
			}
		}
		return respondError(c, fmt.Errorf("%w: missing capability %s", domain.ErrForbidden, code))
	}
}

// GetUserID returns the principal ID from the context (after auth middleware).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetFirstName returns the principal's first name from the context.
func GetFirstName(c *fiber.Ctx) string {
	v := c.Locals(LocalFirstName)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetCodes returns the principal's capability codes from the context.
func GetCodes(c *fiber.Ctx) []string {
	v := c.Locals(LocalCodes)
	if v == nil {
		return nil
	}
	codes, _ := v.([]string)
	return codes
}
