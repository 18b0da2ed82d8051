package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/warehome-api/internal/application/catalog"
)

// ItemTypeHandler maneja las peticiones HTTP para tipos de artículo.
type ItemTypeHandler struct {
	leafHandler
}

// NewItemTypeHandler construye el handler.
func NewItemTypeHandler(uc *catalog.ItemTypeUseCase) *ItemTypeHandler {
	return &ItemTypeHandler{leafHandler{uc: uc}}
}

// List godoc
// @Summary      Listar tipos de artículo de una categoría
// @Tags         item-types
// @Produce      json
// @Param        category_path  query  string  false  "Ruta de la categoría (vacío = sin categoría)"
// @Success      200  {object}  dto.LeafListResponse
// @Failure      404  {object}  dto.ErrorResponse  "CATEGORY_NOT_FOUND"
// @Router       /api/item-types [get]
func (h *ItemTypeHandler) List(c *fiber.Ctx) error { return h.list(c) }

// Create godoc
// @Summary      Crear tipo de artículo
// @Tags         item-types
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateLeafRequest  true  "Nombre y categoría"
// @Success      200   {object}  dto.StatusResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse  "CATEGORY_NOT_FOUND"
// @Failure      409   {object}  dto.ErrorResponse  "ALREADY_EXISTS"
// @Router       /api/item-types [post]
func (h *ItemTypeHandler) Create(c *fiber.Ctx) error { return h.create(c) }

// Delete godoc
// @Summary      Eliminar tipo de artículo
// @Tags         item-types
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DeleteLeafRequest  true  "Nombre y categoría"
// @Success      200   {object}  dto.StatusResponse
// @Failure      404   {object}  dto.ErrorResponse  "NOT_FOUND"
// @Router       /api/item-types [delete]
func (h *ItemTypeHandler) Delete(c *fiber.Ctx) error { return h.delete(c) }
