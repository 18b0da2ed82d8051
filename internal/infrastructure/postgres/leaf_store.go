package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/warehome-api/internal/domain"
	"github.com/jhoicas/warehome-api/internal/domain/entity"
)

// leafStore SQL compartido entre bodegas y tipos de artículo.
// La ruta de la categoría se resuelve con LEFT JOIN; '' = sin categoría.
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
		%s
		%s`, s.leaves, s.categories, where, order)
}

func (s leafStore) get(ctx context.Context, name, categoryPath string) (*entity.Leaf, error) {
	query := s.selectSQL(`WHERE l.name = $1 AND COALESCE(c.path, '') = $2`, "")
	var l entity.Leaf
	err := s.q.QueryRow(ctx, query, name, categoryPath).Scan(&l.ID, &l.Name, &l.CategoryID, &l.CategoryPath)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get %s: %w", s.leaves, err)
	}
	return &l, nil
}

func (s leafStore) listByCategory(ctx context.Context, categoryPath string) ([]entity.Leaf, error) {
	return s.list(ctx, s.selectSQL(`WHERE COALESCE(c.path, '') = $1`, `ORDER BY l.name`), categoryPath)
}

func (s leafStore) listAll(ctx context.Context) ([]entity.Leaf, error) {
	return s.list(ctx, s.selectSQL("", `ORDER BY COALESCE(c.path, ''), l.name`))
}

func (s leafStore) list(ctx context.Context, query string, args ...any) ([]entity.Leaf, error) {
	rows, err := s.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", s.leaves, err)
	}
	defer rows.Close()
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

func (s leafStore) countByCategory(ctx context.Context, categoryPath string) (int, error) {
	query := fmt.Sprintf(`
		SELECT COUNT(*)
		FROM %s l
		LEFT JOIN %s c ON c.id = l.category_id
		WHERE COALESCE(c.path, '') = $1`, s.leaves, s.categories)
	var n int
	if err := s.q.QueryRow(ctx, query, categoryPath).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", s.leaves, err)
	}
	return n, nil
}

func (s leafStore) create(ctx context.Context, l *entity.Leaf) error {
	query := fmt.Sprintf(`INSERT INTO %s (name, category_id) VALUES ($1, $2) RETURNING id`, s.leaves)
	if err := s.q.QueryRow(ctx, query, l.Name, l.CategoryID).Scan(&l.ID); err != nil {
		return translateInsert("insert "+s.leaves, err)
	}
	return nil
}

func (s leafStore) delete(ctx context.Context, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, s.leaves)
	cmd, err := s.q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete %s: %w", s.leaves, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("delete %s: %w", s.leaves, domain.ErrNotFound)
	}
	return nil
}
