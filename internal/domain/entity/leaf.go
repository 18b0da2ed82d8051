package entity

// Leaf datos comunes de una hoja del catálogo (bodega o tipo de artículo).
// CategoryPath vacío significa que la hoja no tiene categoría.
type Leaf struct {
	ID           int64
	Name         string
	CategoryID   *int64
	CategoryPath string
}

// Categorized indica si la hoja cuelga de una categoría.
func (l Leaf) Categorized() bool {
	return l.CategoryID != nil
}
