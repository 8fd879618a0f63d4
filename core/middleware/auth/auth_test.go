package auth_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"products-api/core/middleware/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

const secret = "test-secret"

func newApp() *fiber.App {
	app := fiber.New()
	guard := auth.New(auth.Config{Secret: secret})

	app.Get("/protected", guard, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"email": c.Locals(auth.LocalEmail),
			"role":  c.Locals(auth.LocalRole),
		})
	})
	app.Get("/admin", guard, auth.RequireRole("admin"), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func sign(t *testing.T, claims jwt.MapClaims, key string, method jwt.SigningMethod) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString([]byte(key))
	assert.NoError(t, err)
	return token
}

func get(t *testing.T, app *fiber.App, path, token string) int {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	return resp.StatusCode
}

func validClaims(role string) jwt.MapClaims {
	now := time.Now()
	return jwt.MapClaims{
		"sub":  "user@example.com",
		"role": role,
		"iat":  now.Unix(),
		"exp":  now.Add(time.Hour).Unix(),
	}
}

func TestAuthMiddleware(t *testing.T) {
	app := newApp()

	t.Run("ValidToken", func(t *testing.T) {
		token := sign(t, validClaims("user"), secret, jwt.SigningMethodHS256)
		assert.Equal(t, fiber.StatusOK, get(t, app, "/protected", token))
	})

	t.Run("MissingToken", func(t *testing.T) {
		assert.Equal(t, fiber.StatusUnauthorized, get(t, app, "/protected", ""))
	})

	t.Run("WrongSecret", func(t *testing.T) {
		token := sign(t, validClaims("user"), "other-secret", jwt.SigningMethodHS256)
		assert.Equal(t, fiber.StatusUnauthorized, get(t, app, "/protected", token))
	})

	t.Run("ExpiredToken", func(t *testing.T) {
		claims := validClaims("user")
		claims["exp"] = time.Now().Add(-time.Minute).Unix()
		token := sign(t, claims, secret, jwt.SigningMethodHS256)
		assert.Equal(t, fiber.StatusUnauthorized, get(t, app, "/protected", token))
	})

	t.Run("NoExpiry", func(t *testing.T) {
		claims := validClaims("user")
		delete(claims, "exp")
		token := sign(t, claims, secret, jwt.SigningMethodHS256)
		assert.Equal(t, fiber.StatusUnauthorized, get(t, app, "/protected", token))
	})

	t.Run("MissingRoleClaim", func(t *testing.T) {
		claims := validClaims("user")
		delete(claims, "role")
		token := sign(t, claims, secret, jwt.SigningMethodHS256)
		assert.Equal(t, fiber.StatusUnauthorized, get(t, app, "/protected", token))
	})
}

func TestRequireRole(t *testing.T) {
	app := newApp()

	t.Run("AdminAllowed", func(t *testing.T) {
		token := sign(t, validClaims("admin"), secret, jwt.SigningMethodHS256)
		assert.Equal(t, fiber.StatusOK, get(t, app, "/admin", token))
	})

	t.Run("UserForbidden", func(t *testing.T) {
		token := sign(t, validClaims("user"), secret, jwt.SigningMethodHS256)
		assert.Equal(t, fiber.StatusForbidden, get(t, app, "/admin", token))
	})
}
