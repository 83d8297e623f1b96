package handler

import (
	"net/http"
	"time"

	"freshpack-backend/internal/dto"
	"freshpack-backend/internal/service"

	"github.com/labstack/echo/v4"
)

type MaintenanceHandler struct {
	seedService service.SeedService
}

func NewMaintenanceHandler(seedService service.SeedService) *MaintenanceHandler {
	return &MaintenanceHandler{
		seedService: seedService,
	}
}

func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.HealthResponse{
		Status:    "OK",
		Timestamp: time.Now().UTC(),
	})
}

func (h *MaintenanceHandler) Seed(c echo.Context) error {
	ctx := c.Request().Context()

	result, err := h.seedService.Seed(ctx)
	if err != nil {
		return respondError(err, "Failed to seed database")
	}

	return c.JSON(http.StatusOK, result)
}

func (h *MaintenanceHandler) ForceSync(c echo.Context) error {
	ctx := c.Request().Context()

	result, err := h.seedService.ForceSync(ctx)
	if err != nil {
		return respondError(err, "Failed to sync database")
	}

	return c.JSON(http.StatusOK, result)
}
