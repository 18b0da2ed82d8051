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

// CategoryUseCase casos de uso de una jerarquía de categorías (bodegas o tipos de artículo).
type CategoryUseCase struct {
	kind       entity.CategoryKind
	categories repository.CategoryRepository
	leaves     LeafIndex
	observer   Observer
}

// NewCategoryUseCase construye el caso de uso. observer puede ser nil.
func NewCategoryUseCase(kind entity.CategoryKind, categories repository.CategoryRepository, leaves LeafIndex, observer Observer) *CategoryUseCase {
	if observer == nil {
		observer = NopObserver{}
	}
	return &CategoryUseCase{kind: kind, categories: categories, leaves: leaves, observer: observer}
}

// NewStorageCategoryUseCase jerarquía de categorías de bodegas.
func NewStorageCategoryUseCase(categories repository.CategoryRepository, storages repository.StorageRepository, observer Observer) *CategoryUseCase {
	return NewCategoryUseCase(entity.KindStorage, categories, StorageLeaves(storages), observer)
}

// NewItemTypeCategoryUseCase jerarquía de categorías de tipos de artículo.
func NewItemTypeCategoryUseCase(categories repository.CategoryRepository, itemTypes repository.ItemTypeRepository, observer Observer) *CategoryUseCase {
	return NewCategoryUseCase(entity.KindItemType, categories, ItemTypeLeaves(itemTypes), observer)
}

// Kind jerarquía que administra este caso de uso.
func (uc *CategoryUseCase) Kind() entity.CategoryKind { return uc.kind }

func (uc *CategoryUseCase) entityName() string {
	if uc.kind == entity.KindItemType {
		return EntityItemTypeCategory
	}
	return EntityStorageCategory
}

// GetTree materializa la jerarquía completa con dos consultas (categorías y hojas).
func (uc *CategoryUseCase) GetTree(ctx context.Context) (*TreeNode, error) {
	categories, err := uc.categories.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar categorías: %w", err)
	}
	names, err := uc.leaves.NamesByCategory(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar hojas: %w", err)
	}
	return buildTree(categories, names), nil
}

// Create crea la categoría name bajo parentPath (nil o vacío = primer nivel).
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CreateCategoryRequest) (*dto.CategoryResponse, Status, error) {
	if err := entity.ValidateName(in.Name); err != nil {
		return nil, "", err
	}

	var parent *entity.Category
	parentPath := ""
	if in.ParentPath != nil && *in.ParentPath != "" {
		parentPath = *in.ParentPath
		if err := entity.ValidatePath(parentPath); err != nil {
			return nil, "", err
		}
		p, err := uc.categories.GetByPath(ctx, parentPath)
		if err != nil {
			return nil, "", fmt.Errorf("obtener categoría padre: %w", err)
		}
		if p == nil {
			return nil, record(uc.observer, uc.entityName(), "create", StatusParentNotFound), nil
		}
		parent = p
	}

	path := entity.JoinPath(parentPath, in.Name)
	exists, err := uc.categories.Exists(ctx, path)
	if err != nil {
		return nil, "", fmt.Errorf("verificar categoría: %w", err)
	}
	if exists {
		return nil, record(uc.observer, uc.entityName(), "create", StatusAlreadyExists), nil
	}

	category := &entity.Category{Path: path}
	if parent != nil {
		parentID := parent.ID
		category.ParentID = &parentID
	}
	if err := uc.categories.Create(ctx, category); err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicate):
			// Otra petición creó la misma ruta entre la verificación y el insert.
			return nil, record(uc.observer, uc.entityName(), "create", StatusAlreadyExists), nil
		case errors.Is(err, domain.ErrNotFound):
			return nil, record(uc.observer, uc.entityName(), "create", StatusParentNotFound), nil
		}
		return nil, "", err
	}
	return toCategoryResponse(category), record(uc.observer, uc.entityName(), "create", StatusSuccess), nil
}

// Delete elimina una categoría vacía (sin subcategorías ni hojas).
func (uc *CategoryUseCase) Delete(ctx context.Context, in dto.DeleteCategoryRequest) (Status, error) {
	if err := entity.ValidatePath(in.Path); err != nil {
		return "", err
	}
	category, err := uc.categories.GetByPath(ctx, in.Path)
	if err != nil {
		return "", fmt.Errorf("obtener categoría: %w", err)
	}
	if category == nil {
		return record(uc.observer, uc.entityName(), "delete", StatusNotFound), nil
	}

	children, err := uc.categories.ListByParent(ctx, in.Path)
	if err != nil {
		return "", fmt.Errorf("listar subcategorías: %w", err)
	}
	if len(children) > 0 {
		return record(uc.observer, uc.entityName(), "delete", StatusNotEmpty), nil
	}
	leaves, err := uc.leaves.CountByCategory(ctx, in.Path)
	if err != nil {
		return "", fmt.Errorf("contar hojas: %w", err)
	}
	if leaves > 0 {
		return record(uc.observer, uc.entityName(), "delete", StatusNotEmpty), nil
	}

	if err := uc.categories.Delete(ctx, in.Path); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return record(uc.observer, uc.entityName(), "delete", StatusNotFound), nil
		case errors.Is(err, domain.ErrConflict):
			// La FK con ON DELETE RESTRICT detectó un hijo agregado después de la verificación.
			return record(uc.observer, uc.entityName(), "delete", StatusNotEmpty), nil
		}
		return "", err
	}
	return record(uc.observer, uc.entityName(), "delete", StatusSuccess), nil
}

// ListChildren lista las subcategorías de parentPath ("" = primer nivel).
// Con recursive=true incluye todos los descendientes en preorden.
func (uc *CategoryUseCase) ListChildren(ctx context.Context, parentPath string, recursive bool) (*dto.CategoryListResponse, Status, error) {
	if parentPath != "" {
		if err := entity.ValidatePath(parentPath); err != nil {
			return nil, "", err
		}
		exists, err := uc.categories.Exists(ctx, parentPath)
		if err != nil {
			return nil, "", fmt.Errorf("verificar categoría: %w", err)
		}
		if !exists {
			return nil, StatusNotFound, nil
		}
	}
	items := make([]dto.CategoryResponse, 0)
	if err := uc.collect(ctx, parentPath, recursive, &items); err != nil {
		return nil, "", err
	}
	return &dto.CategoryListResponse{Items: items, Total: len(items)}, StatusSuccess, nil
}

func (uc *CategoryUseCase) collect(ctx context.Context, parentPath string, recursive bool, out *[]dto.CategoryResponse) error {
	children, err := uc.categories.ListByParent(ctx, parentPath)
	if err != nil {
		return fmt.Errorf("listar subcategorías: %w", err)
	}
	for _, c := range children {
		*out = append(*out, *toCategoryResponse(c))
		if recursive {
			if err := uc.collect(ctx, c.Path, true, out); err != nil {
				return err
			}
		}
	}
	return nil
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{
		Name:       c.Name(),
		Path:       c.Path,
		ParentPath: c.ParentPath(),
	}
}
