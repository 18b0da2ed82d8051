package catalog

import (
	"sort"

	"github.com/jhoicas/warehome-api/internal/application/dto"
	"github.com/jhoicas/warehome-api/internal/domain/entity"
)

// TreeNode nodo del árbol materializado de una jerarquía.
// La raíz tiene Name y Path vacíos y contiene las hojas sin categoría.
type TreeNode struct {
	Name      string
	Path      string
	Children  []*TreeNode
	LeafNames []string
}

// ChildCount número de categorías hijas directas.
func (n *TreeNode) ChildCount() int { return len(n.Children) }

// LeafCount número de hojas directas.
func (n *TreeNode) LeafCount() int { return len(n.LeafNames) }

// Walk recorre el árbol en preorden; depth es 0 para la raíz.
func (n *TreeNode) Walk(fn func(node *TreeNode, depth int)) {
	type frame struct {
		node  *TreeNode
		depth int
	}
	stack := []frame{{node: n}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		fn(f.node, f.depth)
		for i := len(f.node.Children) - 1; i >= 0; i-- {
			stack = append(stack, frame{node: f.node.Children[i], depth: f.depth + 1})
		}
	}
}

// buildTree arma el árbol a partir de la lista de adyacencia completa y de los nombres
// de hojas agrupados por ruta. Hijos y hojas quedan ordenados por nombre.
func buildTree(categories []*entity.Category, leafNames map[string][]string) *TreeNode {
	pathByID := make(map[int64]string, len(categories))
	for _, c := range categories {
		pathByID[c.ID] = c.Path
	}
	byParent := make(map[string][]*entity.Category)
	for _, c := range categories {
		parentPath := ""
		if c.ParentID != nil {
			parentPath = pathByID[*c.ParentID]
		}
		byParent[parentPath] = append(byParent[parentPath], c)
	}

	root := &TreeNode{LeafNames: namesOrEmpty(leafNames[""])}
	stack := []*TreeNode{root}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		kids := byParent[current.Path]
		sort.Slice(kids, func(i, j int) bool { return kids[i].Name() < kids[j].Name() })
		current.Children = make([]*TreeNode, 0, len(kids))
		for _, c := range kids {
			child := &TreeNode{
				Name:      c.Name(),
				Path:      c.Path,
				LeafNames: namesOrEmpty(leafNames[c.Path]),
			}
			current.Children = append(current.Children, child)
			stack = append(stack, child)
		}
	}
	return root
}

func namesOrEmpty(names []string) []string {
	if names == nil {
		return []string{}
	}
	return names
}

// ToStorageTreeResponse convierte el árbol al DTO de la jerarquía de bodegas.
func ToStorageTreeResponse(n *TreeNode) dto.StorageCategoryTreeResponse {
	out := dto.StorageCategoryTreeResponse{
		Name:         n.Name,
		Children:     make([]dto.StorageCategoryTreeResponse, 0, len(n.Children)),
		ChildCount:   n.ChildCount(),
		StorageNames: namesOrEmpty(n.LeafNames),
		StorageCount: n.LeafCount(),
	}
	for _, c := range n.Children {
		out.Children = append(out.Children, ToStorageTreeResponse(c))
	}
	return out
}

// ToItemTypeTreeResponse convierte el árbol al DTO de la jerarquía de tipos de artículo.
func ToItemTypeTreeResponse(n *TreeNode) dto.ItemTypeCategoryTreeResponse {
	out := dto.ItemTypeCategoryTreeResponse{
		Name:          n.Name,
		Children:      make([]dto.ItemTypeCategoryTreeResponse, 0, len(n.Children)),
		ChildCount:    n.ChildCount(),
		ItemNames:     namesOrEmpty(n.LeafNames),
		ItemTypeCount: n.LeafCount(),
	}
	for _, c := range n.Children {
		out.Children = append(out.Children, ToItemTypeTreeResponse(c))
	}
	return out
}

// TreeResponse devuelve el DTO adecuado para la jerarquía.
func TreeResponse(kind entity.CategoryKind, n *TreeNode) any {
	if kind == entity.KindItemType {
		return ToItemTypeTreeResponse(n)
	}
	return ToStorageTreeResponse(n)
}
