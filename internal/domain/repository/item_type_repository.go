package repository

import (
	"context"

	"github.com/jhoicas/warehome-api/internal/domain/entity"
)

// ItemTypeRepository define el puerto de persistencia para ItemType (DIP).
type ItemTypeRepository interface {
	Get(ctx context.Context, name, categoryPath string) (*entity.ItemType, error)
	ListByCategory(ctx context.Context, categoryPath string) ([]*entity.ItemType, error)
	ListAll(ctx context.Context) ([]*entity.ItemType, error)
	CountByCategory(ctx context.Context, categoryPath string) (int, error)
	Create(ctx context.Context, itemType *entity.ItemType) error
	Delete(ctx context.Context, id int64) error
}
