package catalog

import (
	"context"
	"fmt"

	"github.com/jhoicas/warehome-api/internal/application/dto"
	"github.com/jhoicas/warehome-api/internal/domain/entity"
	"github.com/jhoicas/warehome-api/internal/domain/repository"
)

// resolveCategory busca la categoría de una hoja. path nil o vacío = sin categoría.
// found=false significa que se indicó una ruta que no existe.
func resolveCategory(ctx context.Context, categories repository.CategoryRepository, path *string) (category *entity.Category, found bool, err error) {
	if path == nil || *path == "" {
		return nil, true, nil
	}
	if err := entity.ValidatePath(*path); err != nil {
		return nil, false, err
	}
	category, err = categories.GetByPath(ctx, *path)
	if err != nil {
		return nil, false, fmt.Errorf("obtener categoría: %w", err)
	}
	return category, category != nil, nil
}

// newLeaf arma los datos comunes de una hoja nueva.
func newLeaf(name string, category *entity.Category) entity.Leaf {
	leaf := entity.Leaf{Name: name}
	if category != nil {
		id := category.ID
		leaf.CategoryID = &id
		leaf.CategoryPath = category.Path
	}
	return leaf
}

func categoryPathOf(category *entity.Category) string {
	if category == nil {
		return ""
	}
	return category.Path
}

func toLeafResponse(l entity.Leaf) dto.LeafResponse {
	return dto.LeafResponse{ID: l.ID, Name: l.Name, CategoryPath: l.CategoryPath}
}
