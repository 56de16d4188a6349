package status

import (
	"hogger/core/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for status reports.
type Handler struct {
	service  *Service
	gatherer prometheus.Gatherer
}

// NewHandler creates a new HTTP handler. A nil gatherer disables /metrics.
func NewHandler(service *Service, gatherer prometheus.Gatherer) *Handler {
	return &Handler{service: service, gatherer: gatherer}
}

// RegisterRoutes registers the status routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/status")
	group.Get("/lock", h.HandleLock)
	group.Get("/plan", h.HandlePlan)
	group.Get("/schema", h.HandleSchema)

	if h.gatherer != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{})))
	}
}

// HandleLock returns the lock state.
func (h *Handler) HandleLock(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.Lock(c.Context())
	if err != nil {
		l.Error("Lock status check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(report)
}

// HandlePlan returns the plan preview.
func (h *Handler) HandlePlan(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.Plan(c.Context(), c.QueryBool("refresh"))
	if err != nil {
		l.Error("Plan preview failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	l.Debug("Served plan preview",
		zap.Int("created", report.Summary.Created),
		zap.Int("modified", report.Summary.Modified),
		zap.Int("deleted", report.Summary.Deleted))
	return c.JSON(report)
}

// HandleSchema returns the schema check of every managed table.
func (h *Handler) HandleSchema(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.Schema(c.Context())
	if err != nil {
		l.Error("Schema check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(report)
}
