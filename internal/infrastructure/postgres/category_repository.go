package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/warehome-api/internal/domain"
	"github.com/jhoicas/warehome-api/internal/domain/entity"
	"github.com/jhoicas/warehome-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// Tablas de cada jerarquía.
const (
	tableStorageCategories  = "storage_categories"
	tableItemTypeCategories = "item_type_categories"
	tableStorages           = "storages"
	tableItemTypes          = "item_types"
)

// CategoryRepo implementación de CategoryRepository sobre PostgreSQL, una por jerarquía.
type CategoryRepo struct {
	q     Querier
	table string
}

// NewStorageCategoryRepository categorías de bodegas. Pasar pool o tx (Querier).
func NewStorageCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q, table: tableStorageCategories}
}

// NewItemTypeCategoryRepository categorías de tipos de artículo. Pasar pool o tx (Querier).
func NewItemTypeCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q, table: tableItemTypeCategories}
}

func (r *CategoryRepo) Exists(ctx context.Context, path string) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE path = $1)`, r.table)
	var ok bool
	if err := r.q.QueryRow(ctx, query, path).Scan(&ok); err != nil {
		return false, fmt.Errorf("exists category: %w", err)
	}
	return ok, nil
}

func (r *CategoryRepo) GetByPath(ctx context.Context, path string) (*entity.Category, error) {
	query := fmt.Sprintf(`SELECT id, path, parent_id FROM %s WHERE path = $1`, r.table)
	var c entity.Category
	err := r.q.QueryRow(ctx, query, path).Scan(&c.ID, &c.Path, &c.ParentID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}

func (r *CategoryRepo) ListByParent(ctx context.Context, parentPath string) ([]*entity.Category, error) {
	if parentPath == "" {
		query := fmt.Sprintf(`SELECT id, path, parent_id FROM %s WHERE parent_id IS NULL ORDER BY path`, r.table)
		return r.list(ctx, query)
	}
	query := fmt.Sprintf(`
		SELECT c.id, c.path, c.parent_id
		FROM %[1]s c
		JOIN %[1]s p ON p.id = c.parent_id
		WHERE p.path = $1
		ORDER BY c.path`, r.table)
	return r.list(ctx, query, parentPath)
}

func (r *CategoryRepo) ListAll(ctx context.Context) ([]*entity.Category, error) {
	query := fmt.Sprintf(`SELECT id, path, parent_id FROM %s ORDER BY path`, r.table)
	return r.list(ctx, query)
}

func (r *CategoryRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Category, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
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
	query := fmt.Sprintf(`INSERT INTO %s (path, parent_id) VALUES ($1, $2) RETURNING id`, r.table)
	if err := r.q.QueryRow(ctx, query, category.Path, category.ParentID).Scan(&category.ID); err != nil {
		return translateInsert("insert category", err)
	}
	return nil
}

func (r *CategoryRepo) Delete(ctx context.Context, path string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE path = $1`, r.table)
	cmd, err := r.q.Exec(ctx, query, path)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("delete category: %w", domain.ErrConflict)
		}
		return fmt.Errorf("delete category: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("delete category: %w", domain.ErrNotFound)
	}
	return nil
}
