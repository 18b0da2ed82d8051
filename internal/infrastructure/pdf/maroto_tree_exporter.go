// Package pdf genera el listado imprimible de una jerarquía del catálogo.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título de la jerarquía   │  Totales                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Sin categoría: hojas sueltas                               │
//	│  » categoría (sangría por nivel)   │  subcat. / hojas        │
//	│      · hoja                                                 │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/warehome-api/internal/application/catalog"
	"github.com/jhoicas/warehome-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// indentPerLevel sangría en mm por nivel de profundidad.
const indentPerLevel = 5.0

var _ catalog.TreeExporter = (*TreeExporter)(nil)

// TreeExporter implementa catalog.TreeExporter usando Maroto v2.
type TreeExporter struct {
	author string
}

// NewTreeExporter construye el exportador; author aparece en los metadatos del PDF.
func NewTreeExporter(author string) *TreeExporter { return &TreeExporter{author: author} }

func (e *TreeExporter) Format() string      { return "pdf" }
func (e *TreeExporter) ContentType() string { return "application/pdf" }

// Export genera el PDF y devuelve sus bytes.
func (e *TreeExporter) Export(_ context.Context, kind entity.CategoryKind, tree *catalog.TreeNode) ([]byte, error) {
	if tree == nil {
		return nil, fmt.Errorf("pdf: árbol vacío")
	}
	labels := labelsFor(kind)

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(labels.title, true).
		WithAuthor(e.author, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(labels, tree))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(bodyRows(labels, tree)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

type kindLabels struct {
	title string
	leaf  string
}

func labelsFor(kind entity.CategoryKind) kindLabels {
	if kind == entity.KindItemType {
		return kindLabels{title: "Categorías de tipos de artículo", leaf: "tipos"}
	}
	return kindLabels{title: "Categorías de bodegas", leaf: "bodegas"}
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y totales del árbol (der).
func headerRow(labels kindLabels, tree *catalog.TreeNode) core.Row {
	categories, leaves := totals(tree)
	return row.New(14).Add(
		col.New(8).Add(
			text.New(labels.title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New(fmt.Sprintf("%d categorías", categories), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New(fmt.Sprintf("%d %s", leaves, labels.leaf), props.Text{
				Size: 8, Align: align.Right, Top: 7, Color: colorGray,
			}),
		),
	)
}

// bodyRows: una fila por categoría (en preorden) y una por cada hoja.
func bodyRows(labels kindLabels, tree *catalog.TreeNode) []core.Row {
	var rows []core.Row
	if len(tree.LeafNames) > 0 {
		rows = append(rows, row.New(7).Add(col.New(12).Add(
			text.New("Sin categoría", props.Text{Style: fontstyle.Bold, Size: 9, Top: 2, Color: colorGray}),
		)))
		rows = append(rows, leafRows(tree.LeafNames, 1)...)
	}
	tree.Walk(func(n *catalog.TreeNode, depth int) {
		if depth == 0 {
			return
		}
		left := float64(depth-1) * indentPerLevel
		rows = append(rows, row.New(7).Add(
			col.New(9).Add(text.New("» "+n.Name, props.Text{
				Style: fontstyle.Bold, Size: 9, Top: 2, Left: left,
			})),
			col.New(3).Add(text.New(
				fmt.Sprintf("%d subcat. / %d %s", n.ChildCount(), n.LeafCount(), labels.leaf),
				props.Text{Size: 7, Align: align.Right, Top: 2.5, Color: colorGray},
			)),
		))
		rows = append(rows, leafRows(n.LeafNames, depth)...)
	})
	if len(rows) == 0 {
		rows = append(rows, row.New(10).Add(col.New(12).Add(
			text.New("El catálogo está vacío.", props.Text{Size: 9, Align: align.Center, Top: 3, Color: colorGray}),
		)))
	}
	return rows
}

func leafRows(names []string, depth int) []core.Row {
	out := make([]core.Row, 0, len(names))
	left := float64(depth) * indentPerLevel
	for _, name := range names {
		out = append(out, row.New(5).Add(col.New(12).Add(
			text.New("· "+name, props.Text{Size: 8, Top: 1, Left: left}),
		)))
	}
	return out
}

// ── helpers ───────────────────────────────────────────────────────────────────

// totals cuenta categorías (sin la raíz) y hojas de todo el árbol.
func totals(tree *catalog.TreeNode) (categories, leaves int) {
	tree.Walk(func(n *catalog.TreeNode, depth int) {
		if depth > 0 {
			categories++
		}
		leaves += n.LeafCount()
	})
	return categories, leaves
}
