package catalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/warehome-api/internal/application/catalog"
	"github.com/jhoicas/warehome-api/internal/application/dto"
	"github.com/jhoicas/warehome-api/internal/domain"
)

func TestStorageCreate_Casos(t *testing.T) {
	f := newCategoryFixture()
	ctx := context.Background()
	f.mustCreate(t, "garaje", nil)

	out, st, err := f.storageUC.Create(ctx, dto.CreateLeafRequest{Name: "caja", CategoryPath: strPtr("garaje")})
	require.NoError(t, err)
	assert.Equal(t, catalog.StatusSuccess, st)
	assert.Equal(t, "garaje", out.CategoryPath)
	assert.NotZero(t, out.ID)

	_, st, err = f.storageUC.Create(ctx, dto.CreateLeafRequest{Name: "caja", CategoryPath: strPtr("garaje")})
	require.NoError(t, err)
	assert.Equal(t, catalog.StatusAlreadyExists, st)

	_, st, err = f.storageUC.Create(ctx, dto.CreateLeafRequest{Name: "caja"})
	require.NoError(t, err)
	assert.Equal(t, catalog.StatusSuccess, st, "el mismo nombre sin categoría es otra hoja")

	_, st, err = f.storageUC.Create(ctx, dto.CreateLeafRequest{Name: "caja", CategoryPath: strPtr("atico")})
	require.NoError(t, err)
	assert.Equal(t, catalog.StatusCategoryNotFound, st)

	_, _, err = f.storageUC.Create(ctx, dto.CreateLeafRequest{Name: "a/b"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestStorageDelete_SoloBorraLaDeEsaCategoria(t *testing.T) {
	f := newCategoryFixture()
	ctx := context.Background()
	f.mustCreate(t, "garaje", nil)
	f.mustCreate(t, "atico", nil)
	for _, p := range []string{"garaje", "atico"} {
		_, st, err := f.storageUC.Create(ctx, dto.CreateLeafRequest{Name: "caja", CategoryPath: strPtr(p)})
		require.NoError(t, err)
		require.Equal(t, catalog.StatusSuccess, st)
	}

	st, err := f.storageUC.Delete(ctx, dto.DeleteLeafRequest{Name: "caja", CategoryPath: strPtr("garaje")})
	require.NoError(t, err)
	assert.Equal(t, catalog.StatusSuccess, st)

	left, _, err := f.storageUC.List(ctx, strPtr("atico"))
	require.NoError(t, err)
	assert.Equal(t, 1, left.Total, "la caja del ático no debe tocarse")

	st, err = f.storageUC.Delete(ctx, dto.DeleteLeafRequest{Name: "caja", CategoryPath: strPtr("garaje")})
	require.NoError(t, err)
	assert.Equal(t, catalog.StatusNotFound, st)

	st, err = f.storageUC.Delete(ctx, dto.DeleteLeafRequest{Name: "caja", CategoryPath: strPtr("sotano")})
	require.NoError(t, err)
	assert.Equal(t, catalog.StatusNotFound, st, "categoría inexistente")
}

func TestStorageList(t *testing.T) {
	f := newCategoryFixture()
	ctx := context.Background()
	_, _, err := f.storageUC.Create(ctx, dto.CreateLeafRequest{Name: "suelta"})
	require.NoError(t, err)

	list, st, err := f.storageUC.List(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, catalog.StatusSuccess, st)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "suelta", list.Items[0].Name)

	_, st, err = f.storageUC.List(ctx, strPtr("nada"))
	require.NoError(t, err)
	assert.Equal(t, catalog.StatusCategoryNotFound, st)
}

func TestItemTypeUseCase_CrearYBorrar(t *testing.T) {
	cats := newMemCategories()
	items := memItemTypes{newMemLeaves()}
	obs := &mockObserver{}
	obs.On("ObserveOperation", catalog.EntityItemType, "create", catalog.StatusSuccess).Once()
	obs.On("ObserveOperation", catalog.EntityItemType, "create", catalog.StatusCategoryNotFound).Once()
	obs.On("ObserveOperation", catalog.EntityItemType, "delete", catalog.StatusSuccess).Once()
	uc := catalog.NewItemTypeUseCase(items, cats, obs)
	ctx := context.Background()

	_, st, err := uc.Create(ctx, dto.CreateLeafRequest{Name: "martillo"})
	require.NoError(t, err)
	assert.Equal(t, catalog.StatusSuccess, st)

	_, st, err = uc.Create(ctx, dto.CreateLeafRequest{Name: "taladro", CategoryPath: strPtr("herramientas")})
	require.NoError(t, err)
	assert.Equal(t, catalog.StatusCategoryNotFound, st)

	st, err = uc.Delete(ctx, dto.DeleteLeafRequest{Name: "martillo"})
	require.NoError(t, err)
	assert.Equal(t, catalog.StatusSuccess, st)

	obs.AssertExpectations(t)
}
