package repository

import (
	"context"

	"github.com/jhoicas/warehome-api/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para una jerarquía de categorías (DIP).
// Cada jerarquía (bodegas, tipos de artículo) tiene su propia instancia.
type CategoryRepository interface {
	Exists(ctx context.Context, path string) (bool, error)
	// GetByPath devuelve (nil, nil) si la categoría no existe.
	GetByPath(ctx context.Context, path string) (*entity.Category, error)
	// ListByParent lista los hijos directos; parentPath vacío = primer nivel.
	ListByParent(ctx context.Context, parentPath string) ([]*entity.Category, error)
	ListAll(ctx context.Context) ([]*entity.Category, error)
	// Create asigna el ID; devuelve domain.ErrDuplicate si la ruta ya existe
	// y domain.ErrNotFound si el padre desapareció.
	Create(ctx context.Context, category *entity.Category) error
	// Delete devuelve domain.ErrNotFound si no hay fila y domain.ErrConflict si aún tiene dependientes.
	Delete(ctx context.Context, path string) error
}
