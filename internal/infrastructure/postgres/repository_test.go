package postgres_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/warehome-api/internal/application/catalog"
	"github.com/jhoicas/warehome-api/internal/domain"
	"github.com/jhoicas/warehome-api/internal/domain/entity"
	"github.com/jhoicas/warehome-api/internal/infrastructure/postgres"
	"github.com/jhoicas/warehome-api/pkg/config"
)

// testDatabaseEnv apunta a una base desechable: los tests vacían las tablas del catálogo.
const testDatabaseEnv = "TEST_DATABASE_URL"

// openTestPool conecta, migra (dos veces) y deja las tablas vacías.
func openTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	url := os.Getenv(testDatabaseEnv)
	if url == "" {
		t.Skipf("%s no definido; se omiten los tests contra PostgreSQL", testDatabaseEnv)
	}
	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, config.DBConfig{Driver: "postgres", DatabaseURL: url})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, postgres.Migrate(ctx, pool))
	require.NoError(t, postgres.Migrate(ctx, pool), "las migraciones deben ser idempotentes")
	_, err = pool.Exec(ctx, `TRUNCATE storages, item_types, storage_categories, item_type_categories RESTART IDENTITY CASCADE`)
	require.NoError(t, err)
	return pool
}

func createCategory(t *testing.T, repo *postgres.CategoryRepo, path string, parent *entity.Category) *entity.Category {
	t.Helper()
	c := &entity.Category{Path: path}
	if parent != nil {
		id := parent.ID
		c.ParentID = &id
	}
	require.NoError(t, repo.Create(context.Background(), c))
	require.NotZero(t, c.ID)
	return c
}

func categoryPaths(list []*entity.Category) []string {
	out := make([]string, 0, len(list))
	for _, c := range list {
		out = append(out, c.Path)
	}
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Categorías
// ──────────────────────────────────────────────────────────────────────────────

func TestCategoryRepo_CRUD(t *testing.T) {
	pool := openTestPool(t)
	repo := postgres.NewStorageCategoryRepository(pool)
	ctx := context.Background()

	garaje := createCategory(t, repo, "garaje", nil)
	estante := createCategory(t, repo, "garaje/estante", garaje)
	createCategory(t, repo, "garaje/banco", garaje)
	createCategory(t, repo, "atico", nil)

	ok, err := repo.Exists(ctx, "garaje/estante")
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := repo.GetByPath(ctx, "garaje/estante")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, estante.ID, got.ID)
	require.NotNil(t, got.ParentID)
	assert.Equal(t, garaje.ID, *got.ParentID)

	missing, err := repo.GetByPath(ctx, "sotano")
	require.NoError(t, err)
	assert.Nil(t, missing, "inexistente = (nil, nil)")

	top, err := repo.ListByParent(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"atico", "garaje"}, categoryPaths(top))

	kids, err := repo.ListByParent(ctx, "garaje")
	require.NoError(t, err)
	assert.Equal(t, []string{"garaje/banco", "garaje/estante"}, categoryPaths(kids))

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestCategoryRepo_RestriccionesDeBD(t *testing.T) {
	pool := openTestPool(t)
	repo := postgres.NewStorageCategoryRepository(pool)
	ctx := context.Background()

	garaje := createCategory(t, repo, "garaje", nil)
	createCategory(t, repo, "garaje/estante", garaje)

	err := repo.Create(ctx, &entity.Category{Path: "garaje"})
	assert.ErrorIs(t, err, domain.ErrDuplicate, "23505 en la ruta única")

	ghost := int64(9999)
	err = repo.Create(ctx, &entity.Category{Path: "fantasma/hijo", ParentID: &ghost})
	assert.ErrorIs(t, err, domain.ErrNotFound, "23503 con padre inexistente")

	err = repo.Delete(ctx, "garaje")
	assert.ErrorIs(t, err, domain.ErrConflict, "ON DELETE RESTRICT con hijos")

	err = repo.Delete(ctx, "sotano")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, repo.Delete(ctx, "garaje/estante"))
	require.NoError(t, repo.Delete(ctx, "garaje"))
}

func TestCategoryRepo_JerarquiasIndependientes(t *testing.T) {
	pool := openTestPool(t)
	storages := postgres.NewStorageCategoryRepository(pool)
	itemTypes := postgres.NewItemTypeCategoryRepository(pool)
	createCategory(t, storages, "general", nil)
	createCategory(t, itemTypes, "general", nil)

	ok, err := itemTypes.Exists(context.Background(), "general")
	require.NoError(t, err)
	assert.True(t, ok, "la misma ruta puede existir en ambas jerarquías")
}

// ──────────────────────────────────────────────────────────────────────────────
// Hojas
// ──────────────────────────────────────────────────────────────────────────────

func TestStorageRepo_UnicidadPorCategoria(t *testing.T) {
	pool := openTestPool(t)
	cats := postgres.NewStorageCategoryRepository(pool)
	repo := postgres.NewStorageRepository(pool)
	ctx := context.Background()
	garaje := createCategory(t, cats, "garaje", nil)
	atico := createCategory(t, cats, "atico", nil)
	gid, aid := garaje.ID, atico.ID

	in := &entity.Storage{Leaf: entity.Leaf{Name: "caja", CategoryID: &gid, CategoryPath: "garaje"}}
	require.NoError(t, repo.Create(ctx, in))
	assert.NotZero(t, in.ID)

	assert.ErrorIs(t, repo.Create(ctx, &entity.Storage{Leaf: entity.Leaf{Name: "caja", CategoryID: &gid}}),
		domain.ErrDuplicate)
	require.NoError(t, repo.Create(ctx, &entity.Storage{Leaf: entity.Leaf{Name: "caja", CategoryID: &aid}}),
		"el mismo nombre en otra categoría es válido")

	require.NoError(t, repo.Create(ctx, &entity.Storage{Leaf: entity.Leaf{Name: "caja"}}),
		"el mismo nombre sin categoría es válido")
	assert.ErrorIs(t, repo.Create(ctx, &entity.Storage{Leaf: entity.Leaf{Name: "caja"}}), domain.ErrDuplicate,
		"el índice parcial impide dos 'caja' sin categoría")

	got, err := repo.Get(ctx, "caja", "garaje")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "garaje", got.CategoryPath)
	assert.True(t, got.Categorized())

	loose, err := repo.Get(ctx, "caja", "")
	require.NoError(t, err)
	require.NotNil(t, loose)
	assert.False(t, loose.Categorized())

	n, err := repo.CountByCategory(ctx, "garaje")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "", all[0].CategoryPath, "las hojas sin categoría primero")

	assert.ErrorIs(t, cats.Delete(ctx, "garaje"), domain.ErrConflict, "categoría con bodegas")

	require.NoError(t, repo.Delete(ctx, got.ID))
	assert.ErrorIs(t, repo.Delete(ctx, got.ID), domain.ErrNotFound)
}

func TestItemTypeRepo_CategoriaInexistente(t *testing.T) {
	pool := openTestPool(t)
	repo := postgres.NewItemTypeRepository(pool)
	ghost := int64(42)
	err := repo.Create(context.Background(), &entity.ItemType{Leaf: entity.Leaf{Name: "martillo", CategoryID: &ghost}})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Transacciones
// ──────────────────────────────────────────────────────────────────────────────

func TestTxRunner_RollbackEnError(t *testing.T) {
	pool := openTestPool(t)
	runner := postgres.NewTxRunner(pool)
	ctx := context.Background()
	boom := errors.New("falla a mitad de la importación")

	err := runner.Run(ctx, func(repos catalog.Repositories) error {
		require.NoError(t, repos.StorageCategories.Create(ctx, &entity.Category{Path: "garaje"}))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	ok, err := postgres.NewStorageCategoryRepository(pool).Exists(ctx, "garaje")
	require.NoError(t, err)
	assert.False(t, ok, "el rollback descarta lo creado")

	require.NoError(t, runner.Run(ctx, func(repos catalog.Repositories) error {
		return repos.Categories(entity.KindItemType).Create(ctx, &entity.Category{Path: "herramientas"})
	}))
	ok, err = postgres.NewItemTypeCategoryRepository(pool).Exists(ctx, "herramientas")
	require.NoError(t, err)
	assert.True(t, ok)
}
