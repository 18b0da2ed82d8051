// Package xmlexport serializa árboles de categorías a XML con etree.
package xmlexport

import (
	"context"
	"fmt"
	"strconv"

	"github.com/beevik/etree"

	"github.com/jhoicas/warehome-api/internal/application/catalog"
	"github.com/jhoicas/warehome-api/internal/domain/entity"
)

var _ catalog.TreeExporter = (*TreeExporter)(nil)

// TreeExporter genera un documento <catalog> con categorías anidadas y sus hojas.
type TreeExporter struct {
	indent int
}

// NewTreeExporter construye el exportador con sangría de 2 espacios.
func NewTreeExporter() *TreeExporter { return &TreeExporter{indent: 2} }

func (e *TreeExporter) Format() string      { return "xml" }
func (e *TreeExporter) ContentType() string { return "application/xml" }

// Export escribe la raíz como <catalog> y cada categoría como <category>.
// Las hojas quedan como <storage> o <item-type> dentro de su categoría.
func (e *TreeExporter) Export(_ context.Context, kind entity.CategoryKind, tree *catalog.TreeNode) ([]byte, error) {
	if tree == nil {
		return nil, fmt.Errorf("xml: árbol vacío")
	}
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("catalog")
	root.CreateAttr("kind", string(kind))
	addContent(root, tree, leafTag(kind))

	doc.Indent(e.indent)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("xml: serializar: %w", err)
	}
	return out, nil
}

func addContent(el *etree.Element, n *catalog.TreeNode, tag string) {
	el.CreateAttr("child-count", strconv.Itoa(n.ChildCount()))
	el.CreateAttr("leaf-count", strconv.Itoa(n.LeafCount()))
	for _, name := range n.LeafNames {
		el.CreateElement(tag).CreateAttr("name", name)
	}
	for _, c := range n.Children {
		child := el.CreateElement("category")
		child.CreateAttr("name", c.Name)
		child.CreateAttr("path", c.Path)
		addContent(child, c, tag)
	}
}

func leafTag(kind entity.CategoryKind) string {
	if kind == entity.KindItemType {
		return "item-type"
	}
	return "storage"
}
