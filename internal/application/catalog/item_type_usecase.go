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

// ItemTypeUseCase casos de uso para tipos de artículo.
type ItemTypeUseCase struct {
	itemTypes  repository.ItemTypeRepository
	categories repository.CategoryRepository
	observer   Observer
}

// NewItemTypeUseCase construye el caso de uso. observer puede ser nil.
func NewItemTypeUseCase(itemTypes repository.ItemTypeRepository, categories repository.CategoryRepository, observer Observer) *ItemTypeUseCase {
	if observer == nil {
		observer = NopObserver{}
	}
	return &ItemTypeUseCase{itemTypes: itemTypes, categories: categories, observer: observer}
}

// Create crea un tipo de artículo; el par (nombre, categoría) es único.
func (uc *ItemTypeUseCase) Create(ctx context.Context, in dto.CreateLeafRequest) (*dto.LeafResponse, Status, error) {
	if err := entity.ValidateName(in.Name); err != nil {
		return nil, "", err
	}
	category, found, err := resolveCategory(ctx, uc.categories, in.CategoryPath)
	if err != nil {
		return nil, "", err
	}
	if !found {
		return nil, record(uc.observer, EntityItemType, "create", StatusCategoryNotFound), nil
	}

	existing, err := uc.itemTypes.Get(ctx, in.Name, categoryPathOf(category))
	if err != nil {
		return nil, "", fmt.Errorf("obtener tipo de artículo: %w", err)
	}
	if existing != nil {
		return nil, record(uc.observer, EntityItemType, "create", StatusAlreadyExists), nil
	}

	itemType := &entity.ItemType{Leaf: newLeaf(in.Name, category)}
	if err := uc.itemTypes.Create(ctx, itemType); err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicate):
			return nil, record(uc.observer, EntityItemType, "create", StatusAlreadyExists), nil
		case errors.Is(err, domain.ErrNotFound):
			return nil, record(uc.observer, EntityItemType, "create", StatusCategoryNotFound), nil
		}
		return nil, "", err
	}
	out := toLeafResponse(itemType.Leaf)
	return &out, record(uc.observer, EntityItemType, "create", StatusSuccess), nil
}

// Delete elimina el tipo de artículo con ese nombre dentro de esa categoría.
func (uc *ItemTypeUseCase) Delete(ctx context.Context, in dto.DeleteLeafRequest) (Status, error) {
	if in.Name == "" {
		return "", fmt.Errorf("%w: el nombre es requerido", domain.ErrInvalidInput)
	}
	category, found, err := resolveCategory(ctx, uc.categories, in.CategoryPath)
	if err != nil {
		return "", err
	}
	if !found {
		return record(uc.observer, EntityItemType, "delete", StatusNotFound), nil
	}
	itemType, err := uc.itemTypes.Get(ctx, in.Name, categoryPathOf(category))
	if err != nil {
		return "", fmt.Errorf("obtener tipo de artículo: %w", err)
	}
	if itemType == nil {
		return record(uc.observer, EntityItemType, "delete", StatusNotFound), nil
	}
	if err := uc.itemTypes.Delete(ctx, itemType.ID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return record(uc.observer, EntityItemType, "delete", StatusNotFound), nil
		}
		return "", err
	}
	return record(uc.observer, EntityItemType, "delete", StatusSuccess), nil
}

// List lista los tipos de artículo de una categoría (nil o vacío = sin categoría).
func (uc *ItemTypeUseCase) List(ctx context.Context, categoryPath *string) (*dto.LeafListResponse, Status, error) {
	category, found, err := resolveCategory(ctx, uc.categories, categoryPath)
	if err != nil {
		return nil, "", err
	}
	if !found {
		return nil, StatusCategoryNotFound, nil
	}
	list, err := uc.itemTypes.ListByCategory(ctx, categoryPathOf(category))
	if err != nil {
		return nil, "", fmt.Errorf("listar tipos de artículo: %w", err)
	}
	items := make([]dto.LeafResponse, 0, len(list))
	for _, s := range list {
		items = append(items, toLeafResponse(s.Leaf))
	}
	return &dto.LeafListResponse{Items: items, Total: len(items)}, StatusSuccess, nil
}
