package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/warehome-api/internal/application/catalog"
)

// StorageHandler maneja las peticiones HTTP para bodegas.
type StorageHandler struct {
	leafHandler
}

// NewStorageHandler construye el handler.
func NewStorageHandler(uc *catalog.StorageUseCase) *StorageHandler {
	return &StorageHandler{leafHandler{uc: uc}}
}

// List godoc
// @Summary      Listar bodegas de una categoría
// @Tags         storages
// @Produce      json
// @Param        category_path  query  string  false  "Ruta de la categoría (vacío = sin categoría)"
// @Success      200  {object}  dto.LeafListResponse
// @Failure      404  {object}  dto.ErrorResponse  "CATEGORY_NOT_FOUND"
// @Router       /api/storages [get]
func (h *StorageHandler) List(c *fiber.Ctx) error { return h.list(c) }

// Create godoc
// @Summary      Crear bodega
// @Tags         storages
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateLeafRequest  true  "Nombre y categoría"
// @Success      200   {object}  dto.StatusResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse  "CATEGORY_NOT_FOUND"
// @Failure      409   {object}  dto.ErrorResponse  "ALREADY_EXISTS"
// @Router       /api/storages [post]
func (h *StorageHandler) Create(c *fiber.Ctx) error { return h.create(c) }

// Delete godoc
// @Summary      Eliminar bodega
// @Tags         storages
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DeleteLeafRequest  true  "Nombre y categoría"
// @Success      200   {object}  dto.StatusResponse
// @Failure      404   {object}  dto.ErrorResponse  "NOT_FOUND"
// @Router       /api/storages [delete]
func (h *StorageHandler) Delete(c *fiber.Ctx) error { return h.delete(c) }
