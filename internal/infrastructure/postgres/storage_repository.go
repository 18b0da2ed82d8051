package postgres

import (
	"context"

	"github.com/jhoicas/warehome-api/internal/domain/entity"
	"github.com/jhoicas/warehome-api/internal/domain/repository"
)

var _ repository.StorageRepository = (*StorageRepo)(nil)

// StorageRepo implementación del puerto StorageRepository sobre PostgreSQL.
type StorageRepo struct {
	store leafStore
}

// NewStorageRepository construye el adaptador de persistencia para bodegas. Pasar pool o tx (Querier).
func NewStorageRepository(q Querier) *StorageRepo {
	return &StorageRepo{store: leafStore{q: q, leaves: tableStorages, categories: tableStorageCategories}}
}

func (r *StorageRepo) Get(ctx context.Context, name, categoryPath string) (*entity.Storage, error) {
	l, err := r.store.get(ctx, name, categoryPath)
	if err != nil || l == nil {
		return nil, err
	}
	return &entity.Storage{Leaf: *l}, nil
}

func (r *StorageRepo) ListByCategory(ctx context.Context, categoryPath string) ([]*entity.Storage, error) {
	leaves, err := r.store.listByCategory(ctx, categoryPath)
	return toStorages(leaves), err
}

func (r *StorageRepo) ListAll(ctx context.Context) ([]*entity.Storage, error) {
	leaves, err := r.store.listAll(ctx)
	return toStorages(leaves), err
}

func (r *StorageRepo) CountByCategory(ctx context.Context, categoryPath string) (int, error) {
	return r.store.countByCategory(ctx, categoryPath)
}

func (r *StorageRepo) Create(ctx context.Context, storage *entity.Storage) error {
	return r.store.create(ctx, &storage.Leaf)
}

func (r *StorageRepo) Delete(ctx context.Context, id int64) error {
	return r.store.delete(ctx, id)
}

func toStorages(leaves []entity.Leaf) []*entity.Storage {
	out := make([]*entity.Storage, 0, len(leaves))
	for _, l := range leaves {
		out = append(out, &entity.Storage{Leaf: l})
	}
	return out
}
