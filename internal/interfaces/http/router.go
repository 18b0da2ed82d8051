package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/warehome-api/internal/application/catalog"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	StorageCategories  *catalog.CategoryUseCase
	ItemTypeCategories *catalog.CategoryUseCase
	Storages           *catalog.StorageUseCase
	ItemTypes          *catalog.ItemTypeUseCase
	Export             *catalog.ExportUseCase
}

// DepsFromServices arma RouterDeps a partir de los casos de uso del catálogo.
func DepsFromServices(s *catalog.Services) RouterDeps {
	return RouterDeps{
		StorageCategories:  s.StorageCategories,
		ItemTypeCategories: s.ItemTypeCategories,
		Storages:           s.Storages,
		ItemTypes:          s.ItemTypes,
		Export:             s.Export,
	}
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Categorías de bodegas
	registerCategories(api.Group("/storage-categories"), NewCategoryHandler(deps.StorageCategories, deps.Export))

	// Categorías de tipos de artículo
	registerCategories(api.Group("/item-type-categories"), NewCategoryHandler(deps.ItemTypeCategories, deps.Export))

	// Bodegas
	storages := api.Group("/storages")
	storageHandler := NewStorageHandler(deps.Storages)
	storages.Get("/", storageHandler.List)
	storages.Post("/", storageHandler.Create)
	storages.Delete("/", storageHandler.Delete)

	// Tipos de artículo
	itemTypes := api.Group("/item-types")
	itemTypeHandler := NewItemTypeHandler(deps.ItemTypes)
	itemTypes.Get("/", itemTypeHandler.List)
	itemTypes.Post("/", itemTypeHandler.Create)
	itemTypes.Delete("/", itemTypeHandler.Delete)
}

func registerCategories(group fiber.Router, h *CategoryHandler) {
	group.Get("/tree", h.Tree)
	group.Get("/tree/export", h.Export)
	group.Get("/", h.List)
	group.Post("/", h.Create)
	group.Delete("/", h.Delete)
}
