package pdf_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/warehome-api/internal/application/catalog"
	"github.com/jhoicas/warehome-api/internal/domain/entity"
	"github.com/jhoicas/warehome-api/internal/infrastructure/pdf"
)

func TestTreeExporter_GeneraPDF(t *testing.T) {
	tree := &catalog.TreeNode{
		LeafNames: []string{"suelta"},
		Children: []*catalog.TreeNode{
			{Name: "garaje", Path: "garaje", LeafNames: []string{"caja1"}, Children: []*catalog.TreeNode{
				{Name: "estante", Path: "garaje/estante", LeafNames: []string{}},
			}},
		},
	}
	e := pdf.NewTreeExporter("warehome-api")
	assert.Equal(t, "pdf", e.Format())
	assert.Equal(t, "application/pdf", e.ContentType())

	out, err := e.Export(context.Background(), entity.KindStorage, tree)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")), "debe ser un documento PDF")
}

func TestTreeExporter_ArbolVacio(t *testing.T) {
	e := pdf.NewTreeExporter("")
	out, err := e.Export(context.Background(), entity.KindItemType, &catalog.TreeNode{LeafNames: []string{}})
	require.NoError(t, err)
	assert.NotEmpty(t, out)

	_, err = e.Export(context.Background(), entity.KindItemType, nil)
	assert.Error(t, err)
}
