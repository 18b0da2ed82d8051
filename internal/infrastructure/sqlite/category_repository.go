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

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

const (
	tableStorageCategories  = "storage_categories"
	tableItemTypeCategories = "item_type_categories"
	tableStorages           = "storages"
	tableItemTypes          = "item_types"
)

// CategoryRepo implementación de CategoryRepository sobre SQLite, una por jerarquía.
type CategoryRepo struct {
	q     Querier
	table string
}

func NewStorageCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q, table: tableStorageCategories}
}

func NewItemTypeCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q, table: tableItemTypeCategories}
}

func (r *CategoryRepo) Exists(ctx context.Context, path string) (bool, error) {
	var ok bool
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE path = ?)`, r.table)
	if err := r.q.QueryRowContext(ctx, query, path).Scan(&ok); err != nil {
		return false, fmt.Errorf("exists category: %w", err)
	}
	return ok, nil
}

func (r *CategoryRepo) GetByPath(ctx context.Context, path string) (*entity.Category, error) {
	query := fmt.Sprintf(`SELECT id, path, parent_id FROM %s WHERE path = ?`, r.table)
	var c entity.Category
	if err := r.q.QueryRowContext(ctx, query, path).Scan(&c.ID, &c.Path, &c.ParentID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}

func (r *CategoryRepo) ListByParent(ctx context.Context, parentPath string) ([]*entity.Category, error) {
	if parentPath == "" {
		return r.list(ctx, fmt.Sprintf(`SELECT id, path, parent_id FROM %s WHERE parent_id IS NULL ORDER BY path`, r.table))
	}
	query := fmt.Sprintf(`
		SELECT c.id, c.path, c.parent_id
		FROM %[1]s c
		JOIN %[1]s p ON p.id = c.parent_id
		WHERE p.path = ?
		ORDER BY c.path`, r.table)
	return r.list(ctx, query, parentPath)
}

func (r *CategoryRepo) ListAll(ctx context.Context) ([]*entity.Category, error) {
	return r.list(ctx, fmt.Sprintf(`SELECT id, path, parent_id FROM %s ORDER BY path`, r.table))
}

func (r *CategoryRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Category, error) {
	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer func() { _ = rows.Close() }()
	var out []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Path, &c.ParentID); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}

func (r *CategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	query := fmt.Sprintf(`INSERT INTO %s (path, parent_id) VALUES (?, ?)`, r.table)
	res, err := r.q.ExecContext(ctx, query, category.Path, category.ParentID)
	if err != nil {
		return translateInsert("insert category", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert category: %w", err)
	}
	category.ID = id
	return nil
}

func (r *CategoryRepo) Delete(ctx context.Context, path string) error {
	res, err := r.q.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s WHERE path = ?`, r.table), path)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("delete category: %w", domain.ErrConflict)
		}
		return fmt.Errorf("delete category: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("delete category: %w", domain.ErrNotFound)
	}
	return nil
}
