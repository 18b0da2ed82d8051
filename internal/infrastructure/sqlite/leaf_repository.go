package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jhoicas/warehome-api/internal/domain"
	"github.com/jhoicas/warehome-api/internal/domain/entity"
	"github.com/jhoicas/warehome-api/internal/domain/repository"
)

var (
	_ repository.StorageRepository  = (*StorageRepo)(nil)
	_ repository.ItemTypeRepository = (*ItemTypeRepo)(nil)
)

// leafStore SQL compartido entre bodegas y tipos de artículo.
type leafStore struct {
	q          Querier
	leaves     string
	categories string
}

func (s leafStore) selectSQL(where, order string) string {
	return fmt.Sprintf(`
		SELECT l.id, l.name, l.category_id, COALESCE(c.path, '')
		FROM %s l
		LEFT JOIN %s c ON c.id = l.category_id
		%s %s`, s.leaves, s.categories, where, order)
}

func (s leafStore) get(ctx context.Context, name, categoryPath string) (*entity.Leaf, error) {
	var l entity.Leaf
	err := s.q.QueryRowContext(ctx, s.selectSQL(`WHERE l.name = ? AND COALESCE(c.path, '') = ?`, ""), name, categoryPath).
		Scan(&l.ID, &l.Name, &l.CategoryID, &l.CategoryPath)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get %s: %w", s.leaves, err)
	}
	return &l, nil
}

func (s leafStore) list(ctx context.Context, query string, args ...any) ([]entity.Leaf, error) {
	rows, err := s.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", s.leaves, err)
	}
	defer func() { _ = rows.Close() }()
	var out []entity.Leaf
	for rows.Next() {
		var l entity.Leaf
		if err := rows.Scan(&l.ID, &l.Name, &l.CategoryID, &l.CategoryPath); err != nil {
			return nil, fmt.Errorf("scan %s: %w", s.leaves, err)
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (s leafStore) listByCategory(ctx context.Context, categoryPath string) ([]entity.Leaf, error) {
	return s.list(ctx, s.selectSQL(`WHERE COALESCE(c.path, '') = ?`, `ORDER BY l.name`), categoryPath)
}

func (s leafStore) listAll(ctx context.Context) ([]entity.Leaf, error) {
	return s.list(ctx, s.selectSQL("", `ORDER BY COALESCE(c.path, ''), l.name`))
}

func (s leafStore) countByCategory(ctx context.Context, categoryPath string) (int, error) {
	query := fmt.Sprintf(`
		SELECT COUNT(*) FROM %s l
		LEFT JOIN %s c ON c.id = l.category_id
		WHERE COALESCE(c.path, '') = ?`, s.leaves, s.categories)
	var n int
	if err := s.q.QueryRowContext(ctx, query, categoryPath).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", s.leaves, err)
	}
	return n, nil
}

func (s leafStore) create(ctx context.Context, l *entity.Leaf) error {
	res, err := s.q.ExecContext(ctx, fmt.Sprintf(`INSERT INTO %s (name, category_id) VALUES (?, ?)`, s.leaves), l.Name, l.CategoryID)
	if err != nil {
		return translateInsert("insert "+s.leaves, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert %s: %w", s.leaves, err)
	}
	l.ID = id
	return nil
}

func (s leafStore) delete(ctx context.Context, id int64) error {
	res, err := s.q.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = ?`, s.leaves), id)
	if err != nil {
		return fmt.Errorf("delete %s: %w", s.leaves, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("delete %s: %w", s.leaves, domain.ErrNotFound)
	}
	return nil
}

// StorageRepo bodegas sobre SQLite.
type StorageRepo struct{ store leafStore }

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
	return wrapLeaves(leaves, func(l entity.Leaf) *entity.Storage { return &entity.Storage{Leaf: l} }), err
}

func (r *StorageRepo) ListAll(ctx context.Context) ([]*entity.Storage, error) {
	leaves, err := r.store.listAll(ctx)
	return wrapLeaves(leaves, func(l entity.Leaf) *entity.Storage { return &entity.Storage{Leaf: l} }), err
}

func (r *StorageRepo) CountByCategory(ctx context.Context, categoryPath string) (int, error) {
	return r.store.countByCategory(ctx, categoryPath)
}

func (r *StorageRepo) Create(ctx context.Context, storage *entity.Storage) error {
	return r.store.create(ctx, &storage.Leaf)
}

func (r *StorageRepo) Delete(ctx context.Context, id int64) error { return r.store.delete(ctx, id) }

// ItemTypeRepo tipos de artículo sobre SQLite.
type ItemTypeRepo struct{ store leafStore }

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
	return wrapLeaves(leaves, func(l entity.Leaf) *entity.ItemType { return &entity.ItemType{Leaf: l} }), err
}

func (r *ItemTypeRepo) ListAll(ctx context.Context) ([]*entity.ItemType, error) {
	leaves, err := r.store.listAll(ctx)
	return wrapLeaves(leaves, func(l entity.Leaf) *entity.ItemType { return &entity.ItemType{Leaf: l} }), err
}

func (r *ItemTypeRepo) CountByCategory(ctx context.Context, categoryPath string) (int, error) {
	return r.store.countByCategory(ctx, categoryPath)
}

func (r *ItemTypeRepo) Create(ctx context.Context, itemType *entity.ItemType) error {
	return r.store.create(ctx, &itemType.Leaf)
}

func (r *ItemTypeRepo) Delete(ctx context.Context, id int64) error { return r.store.delete(ctx, id) }

func wrapLeaves[T any](leaves []entity.Leaf, wrap func(entity.Leaf) *T) []*T {
	out := make([]*T, 0, len(leaves))
	for _, l := range leaves {
		out = append(out, wrap(l))
	}
	return out
}
