package catalog_test

import (
	"context"
	"sort"
	"strings"

	"github.com/stretchr/testify/mock"

	"github.com/jhoicas/warehome-api/internal/application/catalog"
	"github.com/jhoicas/warehome-api/internal/domain"
	"github.com/jhoicas/warehome-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria con la misma semántica que los de BD
// ──────────────────────────────────────────────────────────────────────────────

type memCategories struct {
	nextID int64
	byPath map[string]*entity.Category
	// failCreate simula un insert concurrente que gana la carrera.
	failCreate error
	failDelete error
}

func newMemCategories() *memCategories {
	return &memCategories{byPath: map[string]*entity.Category{}}
}

func (m *memCategories) Exists(_ context.Context, path string) (bool, error) {
	_, ok := m.byPath[path]
	return ok, nil
}

func (m *memCategories) GetByPath(_ context.Context, path string) (*entity.Category, error) {
	c, ok := m.byPath[path]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (m *memCategories) ListByParent(_ context.Context, parentPath string) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range m.byPath {
		if entity.ParentOf(c.Path) == parentPath {
			cp := *c
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out, nil
}

func (m *memCategories) ListAll(_ context.Context) ([]*entity.Category, error) {
	out := make([]*entity.Category, 0, len(m.byPath))
	for _, c := range m.byPath {
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out, nil
}

func (m *memCategories) Create(_ context.Context, c *entity.Category) error {
	if m.failCreate != nil {
		return m.failCreate
	}
	if _, ok := m.byPath[c.Path]; ok {
		return domain.ErrDuplicate
	}
	m.nextID++
	c.ID = m.nextID
	cp := *c
	m.byPath[c.Path] = &cp
	return nil
}

func (m *memCategories) Delete(_ context.Context, path string) error {
	if m.failDelete != nil {
		return m.failDelete
	}
	if _, ok := m.byPath[path]; !ok {
		return domain.ErrNotFound
	}
	delete(m.byPath, path)
	return nil
}

// memLeaves almacena hojas indexadas por "categoría\x00nombre".
type memLeaves struct {
	nextID int64
	items  map[string]entity.Leaf
}

func newMemLeaves() *memLeaves { return &memLeaves{items: map[string]entity.Leaf{}} }

func leafKey(name, categoryPath string) string { return categoryPath + "\x00" + name }

func (m *memLeaves) get(name, categoryPath string) (entity.Leaf, bool) {
	l, ok := m.items[leafKey(name, categoryPath)]
	return l, ok
}

func (m *memLeaves) list(categoryPath string, all bool) []entity.Leaf {
	var out []entity.Leaf
	for _, l := range m.items {
		if all || l.CategoryPath == categoryPath {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.Compare(out[i].CategoryPath+"/"+out[i].Name, out[j].CategoryPath+"/"+out[j].Name) < 0
	})
	return out
}

func (m *memLeaves) create(l *entity.Leaf) error {
	if _, ok := m.items[leafKey(l.Name, l.CategoryPath)]; ok {
		return domain.ErrDuplicate
	}
	m.nextID++
	l.ID = m.nextID
	m.items[leafKey(l.Name, l.CategoryPath)] = *l
	return nil
}

func (m *memLeaves) delete(id int64) error {
	for k, l := range m.items {
		if l.ID == id {
			delete(m.items, k)
			return nil
		}
	}
	return domain.ErrNotFound
}

type memStorages struct{ *memLeaves }

func (m memStorages) Get(_ context.Context, name, categoryPath string) (*entity.Storage, error) {
	l, ok := m.get(name, categoryPath)
	if !ok {
		return nil, nil
	}
	return &entity.Storage{Leaf: l}, nil
}

func (m memStorages) ListByCategory(_ context.Context, categoryPath string) ([]*entity.Storage, error) {
	var out []*entity.Storage
	for _, l := range m.list(categoryPath, false) {
		out = append(out, &entity.Storage{Leaf: l})
	}
	return out, nil
}

func (m memStorages) ListAll(_ context.Context) ([]*entity.Storage, error) {
	var out []*entity.Storage
	for _, l := range m.list("", true) {
		out = append(out, &entity.Storage{Leaf: l})
	}
	return out, nil
}

func (m memStorages) CountByCategory(_ context.Context, categoryPath string) (int, error) {
	return len(m.list(categoryPath, false)), nil
}

func (m memStorages) Create(_ context.Context, s *entity.Storage) error { return m.create(&s.Leaf) }

func (m memStorages) Delete(_ context.Context, id int64) error { return m.delete(id) }

type memItemTypes struct{ *memLeaves }

func (m memItemTypes) Get(_ context.Context, name, categoryPath string) (*entity.ItemType, error) {
	l, ok := m.get(name, categoryPath)
	if !ok {
		return nil, nil
	}
	return &entity.ItemType{Leaf: l}, nil
}

func (m memItemTypes) ListByCategory(_ context.Context, categoryPath string) ([]*entity.ItemType, error) {
	var out []*entity.ItemType
	for _, l := range m.list(categoryPath, false) {
		out = append(out, &entity.ItemType{Leaf: l})
	}
	return out, nil
}

func (m memItemTypes) ListAll(_ context.Context) ([]*entity.ItemType, error) {
	var out []*entity.ItemType
	for _, l := range m.list("", true) {
		out = append(out, &entity.ItemType{Leaf: l})
	}
	return out, nil
}

func (m memItemTypes) CountByCategory(_ context.Context, categoryPath string) (int, error) {
	return len(m.list(categoryPath, false)), nil
}

func (m memItemTypes) Create(_ context.Context, it *entity.ItemType) error { return m.create(&it.Leaf) }

func (m memItemTypes) Delete(_ context.Context, id int64) error { return m.delete(id) }

// memTx ejecuta fn sobre los mismos repositorios, sin rollback.
type memTx struct{ repos catalog.Repositories }

func (t memTx) Run(_ context.Context, fn func(repos catalog.Repositories) error) error {
	return fn(t.repos)
}

// mockObserver registra las operaciones reportadas.
type mockObserver struct{ mock.Mock }

func (m *mockObserver) ObserveOperation(name, operation string, status catalog.Status) {
	m.Called(name, operation, status)
}

func strPtr(s string) *string { return &s }
