package auth

import (
	"errors"
	"strconv"

	"products-api/core/logger"
	"products-api/core/middleware/auth"
	"products-api/feature/auth/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for authentication.
type Handler struct {
	service    *Service
	authGuard  fiber.Handler
	adminGuard fiber.Handler
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, authGuard, adminGuard fiber.Handler) *Handler {
	return &Handler{service: service, authGuard: authGuard, adminGuard: adminGuard}
}

// RegisterRoutes registers the auth routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/auth")
	group.Post("/register", h.HandleRegister)
	group.Post("/login", h.HandleLogin)
	group.Get("/me", h.authGuard, h.HandleMe)
	group.Put("/users/:id/role", h.authGuard, h.adminGuard, h.HandleUpdateRole)
}

// HandleRegister creates a new user account.
// @Summary Register
// @Description Register a new user account.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Registration data"
// @Success 201 {object} models.UserResponse "Created user"
// @Failure 400 {object} map[string]string "Validation error or duplicate email"
// @Router /api/v1/auth/register [post]
func (h *Handler) HandleRegister(c *fiber.Ctx) error {
	var req models.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if req.Email == "" || req.Password == "" {
		return badRequest(c, "email and password are required")
	}

	user, err := h.service.Register(c.Context(), req)
	if err != nil {
		if errors.Is(err, ErrEmailTaken) || errors.Is(err, ErrInvalidRole) {
			return badRequest(c, err.Error())
		}
		l := logger.WithRequestID(h.service.logger, c)
		l.Error("Registration failed", zap.Error(err))
		return internalError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(user.ToResponse())
}

// HandleLogin verifies credentials and returns an access token.
// @Summary Login
// @Description Authenticate and receive a JWT access token.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Credentials"
// @Success 200 {object} models.TokenResponse "Access token"
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Router /api/v1/auth/login [post]
func (h *Handler) HandleLogin(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	token, err := h.service.Login(c.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
		}
		l := logger.WithRequestID(h.service.logger, c)
		l.Error("Login failed", zap.Error(err))
		return internalError(c, err)
	}

	return c.JSON(models.TokenResponse{AccessToken: token, TokenType: "bearer"})
}

// HandleMe returns the current authenticated user.
// @Summary Current user
// @Description Get the authenticated user's profile.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.UserResponse "Current user"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /api/v1/auth/me [get]
func (h *Handler) HandleMe(c *fiber.Ctx) error {
	email, _ := c.Locals(auth.LocalEmail).(string)

	user, err := h.service.GetByEmail(c.Context(), email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return internalError(c, err)
	}

	return c.JSON(user.ToResponse())
}

// HandleUpdateRole changes a user's role (admin only).
// @Summary Update user role
// @Description Change the role of a user (admin only).
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param request body models.UpdateRoleRequest true "New role"
// @Success 200 {object} models.UserResponse "Updated user"
// @Failure 404 {object} map[string]string "User not found"
// @Router /api/v1/auth/users/{id}/role [put]
func (h *Handler) HandleUpdateRole(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return badRequest(c, "invalid user id")
	}

	var req models.UpdateRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	user, err := h.service.UpdateRole(c.Context(), uint(id), req.Role)
	if err != nil {
		switch {
		case errors.Is(err, ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, ErrInvalidRole):
			return badRequest(c, err.Error())
		default:
			return internalError(c, err)
		}
	}

	return c.JSON(user.ToResponse())
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}

func internalError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}
