package postgres

import (
	"context"

	"github.com/jhoicas/warehome-api/internal/domain/entity"
	"github.com/jhoicas/warehome-api/internal/domain/repository"
)

var _ repository.ItemTypeRepository = (*ItemTypeRepo)(nil)

// ItemTypeRepo implementación del puerto ItemTypeRepository sobre PostgreSQL.
type ItemTypeRepo struct {
	store leafStore
}

// NewItemTypeRepository construye el adaptador de tipos de artículo. Pasar pool o tx (Querier).
func NewItemTypeRepository(q Querier) *ItemTypeRepo {
	return &ItemTypeRepo{store: leafStore{q: q, leaves: tableItemTypes, categories: tableItemTypeCategories}}
}

func (r *ItemTypeRepo) Get(ctx context.Context, name, categoryPath string) (*entity.ItemType, error) {
	l, err := r.store.get(ctx, name, categoryPath)
	if err != nil || l == nil {
		return nil, err
	}
	return &entity.ItemType{Leaf: *l}, nil
}

func (r *ItemTypeRepo) ListByCategory(ctx context.Context, categoryPath string) ([]*entity.ItemType, error) {
	leaves, err := r.store.listByCategory(ctx, categoryPath)
	return toItemTypes(leaves), err
}

func (r *ItemTypeRepo) ListAll(ctx context.Context) ([]*entity.ItemType, error) {
	leaves, err := r.store.listAll(ctx)
	return toItemTypes(leaves), err
}

func (r *ItemTypeRepo) CountByCategory(ctx context.Context, categoryPath string) (int, error) {
	return r.store.countByCategory(ctx, categoryPath)
}

func (r *ItemTypeRepo) Create(ctx context.Context, itemType *entity.ItemType) error {
	return r.store.create(ctx, &itemType.Leaf)
}

func (r *ItemTypeRepo) Delete(ctx context.Context, id int64) error {
	return r.store.delete(ctx, id)
}

func toItemTypes(leaves []entity.Leaf) []*entity.ItemType {
	out := make([]*entity.ItemType, 0, len(leaves))
	for _, l := range leaves {
		out = append(out, &entity.ItemType{Leaf: l})
	}
	return out
}
