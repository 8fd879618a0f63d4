package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// Config holds configuration for the auth middleware.
type Config struct {
	// Secret is the HMAC key used to verify token signatures.
	Secret string
}

// Locals keys populated by the middleware on successful authentication.
const (
	LocalEmail = "auth_email"
	LocalRole  = "auth_role"
)

// New returns a middleware that validates a JWT bearer token.
// On success the subject email and role claims are stored in locals;
// otherwise the request is rejected with 401.
func New(cfg Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			return unauthorized(c, "missing bearer token")
		}

		tokenStr := strings.TrimPrefix(header, "Bearer ")

		claims := jwt.MapClaims{}
		_, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
			return []byte(cfg.Secret), nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
		if err != nil {
			return unauthorized(c, "invalid or expired token")
		}

		email, _ := claims["sub"].(string)
		role, _ := claims["role"].(string)
		if email == "" || role == "" {
			return unauthorized(c, "malformed token claims")
		}

		c.Locals(LocalEmail, email)
		c.Locals(LocalRole, role)

		return c.Next()
	}
}

// RequireRole returns a middleware that rejects authenticated requests whose
// role claim does not match. It must run after New.
func RequireRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actual, _ := c.Locals(LocalRole).(string)
		if actual != role {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "not enough permissions",
			})
		}
		return c.Next()
	}
}

func unauthorized(c *fiber.Ctx, reason string) error {
	c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": reason,
	})
}
