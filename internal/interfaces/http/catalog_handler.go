package http

import (
	"github.com/dendyelo/nooda-inventory/internal/application/catalog"
	"github.com/dendyelo/nooda-inventory/internal/application/dto"
	"github.com/gofiber/fiber/v2"
)

// CatalogHandler maneja los listados de productos y componentes.
type CatalogHandler struct {
	uc *catalog.UseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *catalog.UseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// ListProducts godoc
// @Summary      Listar productos terminados
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ProductDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/products [get]
func (h *CatalogHandler) ListProducts(c *fiber.Ctx) error {
	products, err := h.uc.ListProducts(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(products)
}

// ListComponents godoc
// @Summary      Listar materias primas
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ComponentDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/components [get]
func (h *CatalogHandler) ListComponents(c *fiber.Ctx) error {
	components, err := h.uc.ListComponents(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(components)
}
