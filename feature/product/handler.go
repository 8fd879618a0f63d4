package product

import (
	"errors"
	"strconv"

	"products-api/core/logger"
	"products-api/feature/product/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for products.
type Handler struct {
	service    *Service
	authGuard  fiber.Handler
	adminGuard fiber.Handler
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, authGuard, adminGuard fiber.Handler) *Handler {
	return &Handler{service: service, authGuard: authGuard, adminGuard: adminGuard}
}

// RegisterRoutes registers the product routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/products", h.authGuard)
	group.Post("/", h.adminGuard, h.HandleCreate)
	group.Get("/", h.HandleList)
	group.Get("/:id", h.HandleGet)
	group.Put("/:id", h.adminGuard, h.HandleUpdate)
	group.Delete("/:id", h.adminGuard, h.HandleDelete)
}

// HandleCreate creates a new product (admin only).
// @Summary Create product
// @Description Create a new product (admin only).
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CreateRequest true "Product data"
// @Success 201 {object} models.Product "Created product"
// @Failure 400 {object} map[string]string "Validation error"
// @Router /api/v1/products [post]
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	var req models.CreateRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if req.Name == "" {
		return badRequest(c, "name is required")
	}

	product, err := h.service.Create(c.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidPrice) {
			return badRequest(c, err.Error())
		}
		l := logger.WithRequestID(h.service.logger, c)
		l.Error("Product creation failed", zap.Error(err))
		return internalError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleList returns a paginated product listing with filters.
// @Summary List products
// @Description List products with pagination, search and filters.
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Param search query string false "Search in name and description"
// @Param category query string false "Filter by category"
// @Param min_price query number false "Minimum price"
// @Param max_price query number false "Maximum price"
// @Success 200 {object} models.ListResponse "Product listing"
// @Router /api/v1/products [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	params := models.ListParams{
		Page:     c.QueryInt("page", 1),
		PageSize: c.QueryInt("page_size", DefaultPageSize),
		Search:   c.Query("search"),
		Category: c.Query("category"),
	}
	if v := c.Query("min_price"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f < 0 {
			return badRequest(c, "invalid min_price")
		}
		params.MinPrice = &f
	}
	if v := c.Query("max_price"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f < 0 {
			return badRequest(c, "invalid max_price")
		}
		params.MaxPrice = &f
	}

	listing, err := h.service.List(c.Context(), params)
	if err != nil {
		l := logger.WithRequestID(h.service.logger, c)
		l.Error("Product listing failed", zap.Error(err))
		return internalError(c, err)
	}

	return c.JSON(listing)
}

// HandleGet returns a product by ID.
// @Summary Get product
// @Description Get a product by its local ID.
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 200 {object} models.Product "Product"
// @Failure 404 {object} map[string]string "Product not found"
// @Router /api/v1/products/{id} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "invalid product id")
	}

	product, err := h.service.Get(c.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return notFound(c)
		}
		return internalError(c, err)
	}

	return c.JSON(product)
}

// HandleUpdate updates a product (admin only).
// @Summary Update product
// @Description Update product fields (admin only).
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Param request body models.UpdateRequest true "Fields to update"
// @Success 200 {object} models.Product "Updated product"
// @Failure 404 {object} map[string]string "Product not found"
// @Router /api/v1/products/{id} [put]
func (h *Handler) HandleUpdate(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "invalid product id")
	}

	var req models.UpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	product, err := h.service.Update(c.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			return notFound(c)
		case errors.Is(err, ErrInvalidPrice):
			return badRequest(c, err.Error())
		default:
			return internalError(c, err)
		}
	}

	return c.JSON(product)
}

// HandleDelete removes a product (admin only).
// @Summary Delete product
// @Description Delete a product (admin only).
// @Tags products
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Product not found"
// @Router /api/v1/products/{id} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "invalid product id")
	}

	if err := h.service.Delete(c.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return notFound(c)
		}
		return internalError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	return uint(id), err
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}

func notFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": ErrNotFound.Error()})
}

func internalError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}
