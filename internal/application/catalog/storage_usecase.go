package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/jhoicas/warehome-api/internal/application/dto"
	"github.com/jhoicas/warehome-api/internal/domain"
	"github.com/jhoicas/warehome-api/internal/domain/entity"
	"github.com/jhoicas/warehome-api/internal/domain/repository"
)

// StorageUseCase casos de uso para bodegas.
type StorageUseCase struct {
	storages   repository.StorageRepository
	categories repository.CategoryRepository
	observer   Observer
}

// NewStorageUseCase construye el caso de uso. observer puede ser nil.
func NewStorageUseCase(storages repository.StorageRepository, categories repository.CategoryRepository, observer Observer) *StorageUseCase {
	if observer == nil {
		observer = NopObserver{}
	}
	return &StorageUseCase{storages: storages, categories: categories, observer: observer}
}

// Create crea una bodega; el par (nombre, categoría) es único.
func (uc *StorageUseCase) Create(ctx context.Context, in dto.CreateLeafRequest) (*dto.LeafResponse, Status, error) {
	if err := entity.ValidateName(in.Name); err != nil {
		return nil, "", err
	}
	category, found, err := resolveCategory(ctx, uc.categories, in.CategoryPath)
	if err != nil {
		return nil, "", err
	}
	if !found {
		return nil, record(uc.observer, EntityStorage, "create", StatusCategoryNotFound), nil
	}

	existing, err := uc.storages.Get(ctx, in.Name, categoryPathOf(category))
	if err != nil {
		return nil, "", fmt.Errorf("obtener bodega: %w", err)
	}
	if existing != nil {
		return nil, record(uc.observer, EntityStorage, "create", StatusAlreadyExists), nil
	}

	storage := &entity.Storage{Leaf: newLeaf(in.Name, category)}
	if err := uc.storages.Create(ctx, storage); err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicate):
			return nil, record(uc.observer, EntityStorage, "create", StatusAlreadyExists), nil
		case errors.Is(err, domain.ErrNotFound):
			return nil, record(uc.observer, EntityStorage, "create", StatusCategoryNotFound), nil
		}
		return nil, "", err
	}
	out := toLeafResponse(storage.Leaf)
	return &out, record(uc.observer, EntityStorage, "create", StatusSuccess), nil
}

// Delete elimina la bodega con ese nombre dentro de esa categoría.
func (uc *StorageUseCase) Delete(ctx context.Context, in dto.DeleteLeafRequest) (Status, error) {
	if in.Name == "" {
		return "", fmt.Errorf("%w: el nombre es requerido", domain.ErrInvalidInput)
	}
	category, found, err := resolveCategory(ctx, uc.categories, in.CategoryPath)
	if err != nil {
		return "", err
	}
	if !found {
		return record(uc.observer, EntityStorage, "delete", StatusNotFound), nil
	}
	storage, err := uc.storages.Get(ctx, in.Name, categoryPathOf(category))
	if err != nil {
		return "", fmt.Errorf("obtener bodega: %w", err)
	}
	if storage == nil {
		return record(uc.observer, EntityStorage, "delete", StatusNotFound), nil
	}
	if err := uc.storages.Delete(ctx, storage.ID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return record(uc.observer, EntityStorage, "delete", StatusNotFound), nil
		}
		return "", err
	}
	return record(uc.observer, EntityStorage, "delete", StatusSuccess), nil
}

// List lista las bodegas de una categoría (nil o vacío = sin categoría).
func (uc *StorageUseCase) List(ctx context.Context, categoryPath *string) (*dto.LeafListResponse, Status, error) {
	category, found, err := resolveCategory(ctx, uc.categories, categoryPath)
	if err != nil {
		return nil, "", err
	}
	if !found {
		return nil, StatusCategoryNotFound, nil
	}
	list, err := uc.storages.ListByCategory(ctx, categoryPathOf(category))
	if err != nil {
		return nil, "", fmt.Errorf("listar bodegas: %w", err)
	}
	items := make([]dto.LeafResponse, 0, len(list))
	for _, s := range list {
		items = append(items, toLeafResponse(s.Leaf))
	}
	return &dto.LeafListResponse{Items: items, Total: len(items)}, StatusSuccess, nil
}
