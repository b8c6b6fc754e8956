package http

import (
	"github.com/dendyelo/nooda-inventory/internal/application/activity"
	"github.com/dendyelo/nooda-inventory/internal/application/dto"
	"github.com/gofiber/fiber/v2"
)

// ActivityHandler maneja la consulta del log de actividad.
type ActivityHandler struct {
	uc *activity.UseCase
}

// NewActivityHandler construye el handler.
func NewActivityHandler(uc *activity.UseCase) *ActivityHandler {
	return &ActivityHandler{uc: uc}
}

// ListRecent godoc
// @Summary      Listar las entradas más recientes del log de actividad
// @Tags         activity
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "máximo de entradas (default 20, tope 100)"
// @Success      200  {array}  dto.ActivityLogDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/activity [get]
func (h *ActivityHandler) ListRecent(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 0)
	entries, err := h.uc.ListRecent(c.Context(), limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(entries)
}
