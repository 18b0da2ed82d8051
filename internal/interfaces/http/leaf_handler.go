package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/warehome-api/internal/application/catalog"
	"github.com/jhoicas/warehome-api/internal/application/dto"
)

// leafService contrato común de StorageUseCase e ItemTypeUseCase.
type leafService interface {
	Create(ctx context.Context, in dto.CreateLeafRequest) (*dto.LeafResponse, catalog.Status, error)
	Delete(ctx context.Context, in dto.DeleteLeafRequest) (catalog.Status, error)
	List(ctx context.Context, categoryPath *string) (*dto.LeafListResponse, catalog.Status, error)
}

var (
	_ leafService = (*catalog.StorageUseCase)(nil)
	_ leafService = (*catalog.ItemTypeUseCase)(nil)
)

type leafHandler struct {
	uc leafService
}

func (h leafHandler) list(c *fiber.Ctx) error {
	out, status, err := h.uc.List(c.UserContext(), optionalQuery(c, "category_path"))
	if err != nil {
		return respondError(c, err)
	}
	if !status.OK() {
		return respondStatus(c, status, "")
	}
	return c.JSON(out)
}

func (h leafHandler) create(c *fiber.Ctx) error {
	var in dto.CreateLeafRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	_, status, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondStatus(c, status, "")
}

func (h leafHandler) delete(c *fiber.Ctx) error {
	var in dto.DeleteLeafRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	status, err := h.uc.Delete(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondStatus(c, status, "")
}
