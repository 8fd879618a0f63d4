package product_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"products-api/core/database"
	"products-api/core/server"
	"products-api/feature/product"
	"products-api/feature/product/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

const testSecret = "test-secret"

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	dbCfg := database.Config{
		Driver: "sqlite",
		Name:   ":memory:",
	}
	db, err := database.Connect(dbCfg)
	assert.NoError(t, err)

	err = db.AutoMigrate(&models.Product{})
	assert.NoError(t, err)

	cfg := server.Config{JwtSecret: testSecret}
	feature := product.NewFeature(db, zap.NewNop(), cfg)

	app := fiber.New()
	err = feature.Load(app)
	assert.NoError(t, err)
	return app
}

func signToken(t *testing.T, role string) string {
	t.Helper()

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  "tester@example.com",
		"role": role,
		"iat":  now.Unix(),
		"exp":  now.Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	assert.NoError(t, err)
	return token
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}, token string) (int, []byte) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		err := json.NewEncoder(&buf).Encode(body)
		assert.NoError(t, err)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	assert.NoError(t, err)

	var out bytes.Buffer
	_, _ = out.ReadFrom(resp.Body)
	return resp.StatusCode, out.Bytes()
}

func TestProductRoutesRequireAuth(t *testing.T) {
	app := newTestApp(t)

	status, _ := doJSON(t, app, "GET", "/products/", nil, "")
	assert.Equal(t, fiber.StatusUnauthorized, status)

	// Write operations also require the admin role
	userToken := signToken(t, "user")
	status, _ = doJSON(t, app, "POST", "/products/", models.CreateRequest{Name: "X", Price: 1}, userToken)
	assert.Equal(t, fiber.StatusForbidden, status)

	status, _ = doJSON(t, app, "DELETE", "/products/1", nil, userToken)
	assert.Equal(t, fiber.StatusForbidden, status)
}

func TestProductCRUDFlow(t *testing.T) {
	app := newTestApp(t)
	adminToken := signToken(t, "admin")
	userToken := signToken(t, "user")

	// Create
	status, body := doJSON(t, app, "POST", "/products/", models.CreateRequest{
		Name:     "Widget",
		Price:    9.99,
		Category: "tools",
	}, adminToken)
	assert.Equal(t, fiber.StatusCreated, status)

	var created models.Product
	assert.NoError(t, json.Unmarshal(body, &created))
	assert.NotZero(t, created.ID)

	// Read is open to any authenticated user
	status, body = doJSON(t, app, "GET", fmt.Sprintf("/products/%d", created.ID), nil, userToken)
	assert.Equal(t, fiber.StatusOK, status)

	var got models.Product
	assert.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, "Widget", got.Name)

	// Update
	status, body = doJSON(t, app, "PUT", fmt.Sprintf("/products/%d", created.ID), map[string]interface{}{
		"price": 12.5,
	}, adminToken)
	assert.Equal(t, fiber.StatusOK, status)
	assert.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, 12.5, got.Price)
	assert.Equal(t, "Widget", got.Name)

	// List
	status, body = doJSON(t, app, "GET", "/products/?category=tools", nil, userToken)
	assert.Equal(t, fiber.StatusOK, status)

	var listing models.ListResponse
	assert.NoError(t, json.Unmarshal(body, &listing))
	assert.Equal(t, int64(1), listing.Total)

	// Delete
	status, _ = doJSON(t, app, "DELETE", fmt.Sprintf("/products/%d", created.ID), nil, adminToken)
	assert.Equal(t, fiber.StatusNoContent, status)

	status, _ = doJSON(t, app, "GET", fmt.Sprintf("/products/%d", created.ID), nil, userToken)
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestProductValidation(t *testing.T) {
	app := newTestApp(t)
	adminToken := signToken(t, "admin")

	status, _ := doJSON(t, app, "POST", "/products/", models.CreateRequest{Price: 1}, adminToken)
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _ = doJSON(t, app, "POST", "/products/", models.CreateRequest{Name: "X", Price: -1}, adminToken)
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _ = doJSON(t, app, "GET", "/products/abc", nil, adminToken)
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _ = doJSON(t, app, "GET", "/products/?min_price=oops", nil, adminToken)
	assert.Equal(t, fiber.StatusBadRequest, status)
}
