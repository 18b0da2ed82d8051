package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/warehome-api/internal/application/catalog"
	"github.com/jhoicas/warehome-api/internal/application/dto"
	"github.com/jhoicas/warehome-api/internal/domain"
)

// httpStatus traduce el resultado de un caso de uso a código HTTP.
func httpStatus(s catalog.Status) int {
	switch s {
	case catalog.StatusSuccess:
		return fiber.StatusOK
	case catalog.StatusNotFound, catalog.StatusParentNotFound, catalog.StatusCategoryNotFound:
		return fiber.StatusNotFound
	case catalog.StatusAlreadyExists, catalog.StatusNotEmpty:
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

var statusMessages = map[catalog.Status]string{
	catalog.StatusAlreadyExists:    "el recurso ya existe",
	catalog.StatusNotFound:         "recurso no encontrado",
	catalog.StatusParentNotFound:   "la categoría padre no existe",
	catalog.StatusCategoryNotFound: "la categoría no existe",
	catalog.StatusNotEmpty:         "la categoría tiene subcategorías o elementos",
}

// respondStatus escribe el resultado de una operación de escritura.
func respondStatus(c *fiber.Ctx, s catalog.Status, path string) error {
	if s.OK() {
		return c.JSON(dto.StatusResponse{Status: s.String(), Path: path})
	}
	return c.Status(httpStatus(s)).JSON(dto.ErrorResponse{Code: s.String(), Message: statusMessages[s]})
}

// respondError distingue errores de validación (400) de fallos internos (500).
func respondError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrInvalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}

// optionalQuery devuelve nil cuando el parámetro no viene o viene vacío.
func optionalQuery(c *fiber.Ctx, key string) *string {
	v := strings.TrimSpace(c.Query(key))
	if v == "" {
		return nil
	}
	return &v
}
