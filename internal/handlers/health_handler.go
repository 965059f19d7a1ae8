package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// HealthHandler reports liveness and dependency status. It owns the database
// handle it checks: status is probed per request with a bounded timeout, not
// read from a process-wide flag.
type HealthHandler struct {
	db            *gorm.DB
	cacheEnabled  bool
	eventsEnabled bool
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(db *gorm.DB, cacheEnabled, eventsEnabled bool) *HealthHandler {
	return &HealthHandler{
		db:            db,
		cacheEnabled:  cacheEnabled,
		eventsEnabled: eventsEnabled,
	}
}

// RegisterRoutes registers the health route with the Fiber app.
func (h *HealthHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/health", h.HandleHealth)
}

// HandleHealth pings the database and reports overall status.
func (h *HealthHandler) HandleHealth(c *fiber.Ctx) error {
	dbStatus := "connected"
	if err := h.pingDB(c.UserContext()); err != nil {
		dbStatus = "unreachable: " + err.Error()
	}

	return c.JSON(fiber.Map{
		"status":   "healthy",
		"time":     time.Now().Format(time.RFC3339),
		"database": dbStatus,
		"cache":    h.cacheEnabled,
		"events":   h.eventsEnabled,
	})
}

func (h *HealthHandler) pingDB(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	sqlDB, err := h.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
