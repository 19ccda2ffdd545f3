package handler

import (
	"github.com/gofiber/fiber/v2"

	"vehicle-service/internal/middleware"
	"vehicle-service/internal/service"
)

type HistoryHandler struct {
	historyService service.HistoryService
}

func NewHistoryHandler(historyService service.HistoryService) *HistoryHandler {
	return &HistoryHandler{historyService: historyService}
}

func (h *HistoryHandler) Get(c *fiber.Ctx) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return middleware.Unauthorized("User not authenticated")
	}

	history, err := h.historyService.GetHistory(c.Context(), c.Params("vehicleId"), identity.Scope())
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(history)
}
