package sync

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// Handler handles HTTP requests for product synchronization.
type Handler struct {
	orchestrator *Orchestrator
	authGuard    fiber.Handler
	adminGuard   fiber.Handler
}

// NewHandler creates a new HTTP handler.
func NewHandler(o *Orchestrator, authGuard, adminGuard fiber.Handler) *Handler {
	return &Handler{orchestrator: o, authGuard: authGuard, adminGuard: adminGuard}
}

// RegisterRoutes registers the sync routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/sync", h.authGuard, h.adminGuard)
	group.Post("/trigger", h.HandleTrigger)
	group.Get("/status", h.HandleStatus)
}

// HandleTrigger starts a sync run (admin only).
// @Summary Trigger sync
// @Description Start a product synchronization run. Rejected with 409 while a run is in flight.
// @Tags sync
// @Produce json
// @Security BearerAuth
// @Success 202 {object} map[string]string "Accepted run ID"
// @Failure 409 {object} map[string]string "ID of the in-flight run"
// @Router /api/v1/sync/trigger [post]
func (h *Handler) HandleTrigger(c *fiber.Ctx) error {
	runID, err := h.orchestrator.Trigger()
	if err != nil {
		var running *AlreadyRunningError
		if errors.As(err, &running) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"run_id": running.RunID})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"run_id": runID})
}

// HandleStatus returns the current and last completed runs (admin only).
// @Summary Sync status
// @Description Get the in-flight and last completed sync runs.
// @Tags sync
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.StatusSnapshot "Sync status"
// @Router /api/v1/sync/status [get]
func (h *Handler) HandleStatus(c *fiber.Ctx) error {
	return c.JSON(h.orchestrator.Status())
}
