package repository

import (
	"context"

	"github.com/jhoicas/warehome-api/internal/domain/entity"
)

// StorageRepository define el puerto de persistencia para Storage (DIP).
// categoryPath vacío se refiere a las bodegas sin categoría.
type StorageRepository interface {
	Get(ctx context.Context, name, categoryPath string) (*entity.Storage, error)
	ListByCategory(ctx context.Context, categoryPath string) ([]*entity.Storage, error)
	ListAll(ctx context.Context) ([]*entity.Storage, error)
	CountByCategory(ctx context.Context, categoryPath string) (int, error)
	// Create asigna el ID; domain.ErrDuplicate si el par (nombre, categoría) ya existe,
	// domain.ErrNotFound si la categoría desapareció.
	Create(ctx context.Context, storage *entity.Storage) error
	// Delete devuelve domain.ErrNotFound si no hay fila.
	Delete(ctx context.Context, id int64) error
}
