package catalog_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/warehome-api/internal/application/catalog"
	"github.com/jhoicas/warehome-api/internal/application/dto"
	"github.com/jhoicas/warehome-api/internal/domain"
	"github.com/jhoicas/warehome-api/internal/domain/entity"
)

type catalogFixture struct {
	repos    catalog.Repositories
	storage  *catalog.CategoryUseCase
	itemType *catalog.CategoryUseCase
}

func newCatalogFixture() *catalogFixture {
	repos := catalog.Repositories{
		StorageCategories:  newMemCategories(),
		ItemTypeCategories: newMemCategories(),
		Storages:           memStorages{newMemLeaves()},
		ItemTypes:          memItemTypes{newMemLeaves()},
	}
	return &catalogFixture{
		repos:    repos,
		storage:  catalog.NewStorageCategoryUseCase(repos.StorageCategories, repos.Storages, nil),
		itemType: catalog.NewItemTypeCategoryUseCase(repos.ItemTypeCategories, repos.ItemTypes, nil),
	}
}

func sampleDocument() *catalog.ImportDocument {
	return &catalog.ImportDocument{
		Categories: []catalog.ImportCategory{
			{Kind: entity.KindStorage, Path: "garaje/estante"},
			{Kind: entity.KindItemType, Path: "herramientas"},
		},
		Leaves: []catalog.ImportLeaf{
			{Kind: entity.KindStorage, CategoryPath: "garaje/estante", Name: "caja1"},
			{Kind: entity.KindStorage, Name: "suelta"},
			{Kind: entity.KindItemType, CategoryPath: "herramientas/electricas", Name: "taladro"},
		},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Import
// ──────────────────────────────────────────────────────────────────────────────

func TestImport_CreaAncestrosYEsIdempotente(t *testing.T) {
	f := newCatalogFixture()
	uc := catalog.NewImportUseCase(memTx{repos: f.repos}, zerolog.Nop())
	ctx := context.Background()

	report, err := uc.Import(ctx, sampleDocument())
	require.NoError(t, err)
	assert.Equal(t, dto.ImportReportResponse{CategoriesCreated: 4, LeavesCreated: 3}, *report,
		"garaje, garaje/estante, herramientas y herramientas/electricas")

	ok, err := f.repos.ItemTypeCategories.Exists(ctx, "herramientas/electricas")
	require.NoError(t, err)
	assert.True(t, ok, "la categoría de la hoja se crea si falta")

	again, err := uc.Import(ctx, sampleDocument())
	require.NoError(t, err)
	assert.Equal(t, dto.ImportReportResponse{CategoriesSkipped: 2, LeavesSkipped: 3}, *again)
}

func TestImport_DocumentoInvalido(t *testing.T) {
	f := newCatalogFixture()
	uc := catalog.NewImportUseCase(memTx{repos: f.repos}, zerolog.Nop())

	_, err := uc.Import(context.Background(), &catalog.ImportDocument{
		Categories: []catalog.ImportCategory{{Kind: "zona", Path: "x"}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Import(context.Background(), &catalog.ImportDocument{
		Leaves: []catalog.ImportLeaf{{Kind: entity.KindStorage, CategoryPath: "a//b", Name: "x"}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Import(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Export
// ──────────────────────────────────────────────────────────────────────────────

type upperExporter struct{}

func (upperExporter) Format() string      { return "txt" }
func (upperExporter) ContentType() string { return "text/plain" }
func (upperExporter) Export(_ context.Context, _ entity.CategoryKind, tree *catalog.TreeNode) ([]byte, error) {
	var out []byte
	tree.Walk(func(n *catalog.TreeNode, _ int) { out = append(out, []byte(n.Path+";")...) })
	return out, nil
}

func TestExport_FormatosYErrores(t *testing.T) {
	f := newCatalogFixture()
	ctx := context.Background()
	_, err := catalog.NewImportUseCase(memTx{repos: f.repos}, zerolog.Nop()).Import(ctx, sampleDocument())
	require.NoError(t, err)

	uc := catalog.NewExportUseCase([]catalog.TreeSource{f.storage, f.itemType}, upperExporter{})
	assert.Equal(t, []string{"json", "txt"}, uc.Formats())

	res, err := uc.Export(ctx, entity.KindStorage, "txt")
	require.NoError(t, err)
	assert.Equal(t, ";garaje;garaje/estante;", string(res.Data))
	assert.Equal(t, "storage_categories.txt", res.Filename)

	res, err = uc.Export(ctx, entity.KindItemType, " JSON ")
	require.NoError(t, err)
	assert.Equal(t, "application/json", res.ContentType)
	var tree dto.ItemTypeCategoryTreeResponse
	require.NoError(t, json.Unmarshal(res.Data, &tree))
	require.Len(t, tree.Children, 1)
	assert.Equal(t, "herramientas", tree.Children[0].Name)
	assert.Equal(t, []string{"taladro"}, tree.Children[0].Children[0].ItemNames)

	_, err = uc.Export(ctx, entity.KindStorage, "docx")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.Export(ctx, "zona", "json")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
