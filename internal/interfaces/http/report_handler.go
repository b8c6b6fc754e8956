package http

import (
	"time"

	"github.com/dendyelo/nooda-inventory/internal/application/dto"
	"github.com/dendyelo/nooda-inventory/internal/application/report"
	"github.com/gofiber/fiber/v2"
)

// ReportHandler expone el reporte diario por HTTP. El mismo caso de uso
// alimenta al notificador de correo (cmd/reminder).
type ReportHandler struct {
	uc  *report.UseCase
	loc *time.Location
}

// NewReportHandler construye el handler con la zona horaria del negocio.
func NewReportHandler(uc *report.UseCase, loc *time.Location) *ReportHandler {
	return &ReportHandler{uc: uc, loc: loc}
}

// Daily godoc
// @Summary      Reporte del día: ventas, producción y stock crítico
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        date  query  string  false  "día a reportar, formato 2006-01-02 (default hoy)"
// @Success      200  {object}  dto.DailyReportDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/daily [get]
func (h *ReportHandler) Daily(c *fiber.Ctx) error {
	ref := time.Now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, h.loc)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "date debe tener formato 2006-01-02"})
		}
		ref = parsed
	}
	result, err := h.uc.DailyReport(c.Context(), ref, h.loc)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(result)
}
