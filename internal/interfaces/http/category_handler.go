package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/warehome-api/internal/application/catalog"
	"github.com/jhoicas/warehome-api/internal/application/dto"
)

// CategoryHandler expone una jerarquía de categorías (bodegas o tipos de artículo).
type CategoryHandler struct {
	uc     *catalog.CategoryUseCase
	export *catalog.ExportUseCase
}

// NewCategoryHandler construye el handler de la jerarquía que maneja uc.
func NewCategoryHandler(uc *catalog.CategoryUseCase, export *catalog.ExportUseCase) *CategoryHandler {
	return &CategoryHandler{uc: uc, export: export}
}

// Tree godoc
// @Summary      Árbol de categorías
// @Description  Raíz con los elementos sin categoría y las categorías de primer nivel como hijos.
// @Tags         storage-categories,item-type-categories
// @Produce      json
// @Success      200  {object}  dto.StorageCategoryTreeResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/storage-categories/tree [get]
// @Router       /api/item-type-categories/tree [get]
func (h *CategoryHandler) Tree(c *fiber.Ctx) error {
	tree, err := h.uc.GetTree(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(catalog.TreeResponse(h.uc.Kind(), tree))
}

// List godoc
// @Summary      Listar subcategorías
// @Tags         storage-categories,item-type-categories
// @Produce      json
// @Param        parent_path  query  string  false  "Ruta del padre (vacío = primer nivel)"
// @Param        recursive    query  bool    false  "Incluir todos los descendientes"
// @Success      200  {object}  dto.CategoryListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/storage-categories [get]
// @Router       /api/item-type-categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	parent := strings.TrimSpace(c.Query("parent_path"))
	out, status, err := h.uc.ListChildren(c.UserContext(), parent, c.QueryBool("recursive", false))
	if err != nil {
		return respondError(c, err)
	}
	if !status.OK() {
		return respondStatus(c, status, "")
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear categoría
// @Tags         storage-categories,item-type-categories
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCategoryRequest  true  "Nombre y ruta del padre"
// @Success      200   {object}  dto.StatusResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse  "PARENT_NOT_FOUND"
// @Failure      409   {object}  dto.ErrorResponse  "ALREADY_EXISTS"
// @Router       /api/storage-categories [post]
// @Router       /api/item-type-categories [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, status, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	path := ""
	if out != nil {
		path = out.Path
	}
	return respondStatus(c, status, path)
}

// Delete godoc
// @Summary      Eliminar categoría
// @Description  Solo se eliminan categorías sin subcategorías ni elementos.
// @Tags         storage-categories,item-type-categories
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DeleteCategoryRequest  true  "Ruta completa"
// @Success      200   {object}  dto.StatusResponse
// @Failure      404   {object}  dto.ErrorResponse  "NOT_FOUND"
// @Failure      409   {object}  dto.ErrorResponse  "NOT_EMPTY"
// @Router       /api/storage-categories [delete]
// @Router       /api/item-type-categories [delete]
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	var in dto.DeleteCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	status, err := h.uc.Delete(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondStatus(c, status, "")
}

// Export godoc
// @Summary      Exportar árbol
// @Tags         storage-categories,item-type-categories
// @Produce      json,application/xml,application/pdf
// @Param        format  query  string  false  "json, xml o pdf"  default(json)
// @Success      200  {file}    file
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/storage-categories/tree/export [get]
// @Router       /api/item-type-categories/tree/export [get]
func (h *CategoryHandler) Export(c *fiber.Ctx) error {
	res, err := h.export.Export(c.UserContext(), h.uc.Kind(), c.Query("format", "json"))
	if err != nil {
		return respondError(c, err)
	}
	c.Attachment(res.Filename)
	c.Set(fiber.HeaderContentType, res.ContentType)
	return c.Send(res.Data)
}
