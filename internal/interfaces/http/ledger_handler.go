package http

import (
	"errors"

	"github.com/dendyelo/nooda-inventory/internal/application/dto"
	"github.com/dendyelo/nooda-inventory/internal/application/ledger"
	"github.com/dendyelo/nooda-inventory/internal/domain"
	"github.com/gofiber/fiber/v2"
)

// LedgerHandler maneja las peticiones HTTP del motor de ledger (protegido).
type LedgerHandler struct {
	uc *ledger.UseCase
}

// NewLedgerHandler construye el handler.
func NewLedgerHandler(uc *ledger.UseCase) *LedgerHandler {
	return &LedgerHandler{uc: uc}
}

// Produce godoc
// @Summary      Ejecutar una corrida de producción
// @Tags         ledger
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProduceRequest  true  "product_id, quantity"
// @Success      200   {object}  dto.ProductionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/ledger/production [post]
func (h *LedgerHandler) Produce(c *fiber.Ctx) error {
	var in dto.ProduceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	result, err := h.uc.Produce(c.Context(), GetActor(c), ledger.ProduceInput{
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
	})
	if err != nil {
		return ledgerError(c, err)
	}
	return c.JSON(dto.ProductionResponse{
		Message:           result.Description,
		ProductionSummary: result.ProductionSummary,
		ImpactSummary:     result.ImpactSummary,
	})
}

// PreviewProduce godoc
// @Summary      Previsualizar el impacto de una producción sin aplicarla
// @Tags         ledger
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProduceRequest  true  "product_id, quantity"
// @Success      200   {object}  dto.ProductionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/ledger/production/preview [post]
func (h *LedgerHandler) PreviewProduce(c *fiber.Ctx) error {
	var in dto.ProduceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	result, err := h.uc.PreviewProduce(c.Context(), ledger.ProduceInput{
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
	})
	if err != nil {
		return ledgerError(c, err)
	}
	return c.JSON(dto.ProductionResponse{
		ProductionSummary: result.ProductionSummary,
		ImpactSummary:     result.ImpactSummary,
	})
}

// Sell godoc
// @Summary      Registrar una venta (carrito completo, todo-o-nada)
// @Tags         ledger
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SellRequest  true  "items: [{product_id, quantity}]"
// @Success      200   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/ledger/sales [post]
func (h *LedgerHandler) Sell(c *fiber.Ctx) error {
	var in dto.SellRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	result, err := h.uc.Sell(c.Context(), GetActor(c), sellInput(in))
	if err != nil {
		return ledgerError(c, err)
	}
	return c.JSON(dto.SaleResponse{
		Message:       result.Description,
		SaleSummary:   result.SaleSummary,
		ImpactSummary: result.ImpactSummary,
	})
}

// PreviewSell godoc
// @Summary      Previsualizar el impacto de una venta sin aplicarla
// @Tags         ledger
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SellRequest  true  "items: [{product_id, quantity}]"
// @Success      200   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/ledger/sales/preview [post]
func (h *LedgerHandler) PreviewSell(c *fiber.Ctx) error {
	var in dto.SellRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	result, err := h.uc.PreviewSell(c.Context(), sellInput(in))
	if err != nil {
		return ledgerError(c, err)
	}
	return c.JSON(dto.SaleResponse{
		SaleSummary:   result.SaleSummary,
		ImpactSummary: result.ImpactSummary,
	})
}

// AdjustStock godoc
// @Summary      Ajustar manualmente el stock de un componente
// @Tags         ledger
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AdjustStockRequest  true  "component_id, direction (add|subtract), amount"
// @Success      200   {object}  dto.AdjustStockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/ledger/adjustments [post]
func (h *LedgerHandler) AdjustStock(c *fiber.Ctx) error {
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	result, err := h.uc.AdjustStock(c.Context(), GetActor(c), ledger.AdjustInput{
		ComponentID: in.ComponentID,
		Direction:   in.Direction,
		Amount:      in.Amount,
	})
	if err != nil {
		return ledgerError(c, err)
	}
	return c.JSON(dto.AdjustStockResponse{
		Message:  result.Description,
		NewStock: result.NewStock,
	})
}

func sellInput(in dto.SellRequest) ledger.SellInput {
	items := make([]ledger.SaleItem, len(in.Items))
	for i, item := range in.Items {
		items[i] = ledger.SaleItem{ProductID: item.ProductID, Quantity: item.Quantity}
	}
	return ledger.SellInput{Items: items}
}

// ledgerError mapea los errores del motor de ledger a códigos HTTP.
// Para stock insuficiente el mensaje enumera TODOS los faltantes
// (bloque de productos, línea en blanco, bloque de ingredientes).
func ledgerError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrNoRecipe):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "NO_RECIPE", Message: err.Error()})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: err.Error()})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
