package dto

// CreateCategoryRequest entrada para crear una categoría. ParentPath nil o vacío = primer nivel.
type CreateCategoryRequest struct {
	Name       string  `json:"name" validate:"required,excludes=/"`
	ParentPath *string `json:"parent_path"`
}

// DeleteCategoryRequest entrada para eliminar una categoría por su ruta completa.
type DeleteCategoryRequest struct {
	Path string `json:"path" validate:"required"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	Name       string `json:"name"`
	Path       string `json:"path"`
	ParentPath string `json:"parent_path,omitempty"`
}

// CategoryListResponse lista de categorías (hijos directos o descendientes).
type CategoryListResponse struct {
	Items []CategoryResponse `json:"items"`
	Total int                `json:"total"`
}

// CreateLeafRequest entrada para crear una bodega o un tipo de artículo.
// CategoryPath nil o vacío = sin categoría.
type CreateLeafRequest struct {
	Name         string  `json:"name" validate:"required,excludes=/"`
	CategoryPath *string `json:"category_path"`
}

// DeleteLeafRequest identifica una hoja por nombre y categoría.
type DeleteLeafRequest struct {
	Name         string  `json:"name" validate:"required"`
	CategoryPath *string `json:"category_path"`
}

// LeafResponse salida de una bodega o tipo de artículo.
type LeafResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	CategoryPath string `json:"category_path,omitempty"`
}

// LeafListResponse lista de hojas de una categoría.
type LeafListResponse struct {
	Items []LeafResponse `json:"items"`
	Total int            `json:"total"`
}

// StatusResponse cuerpo de respuesta de las operaciones de escritura exitosas.
type StatusResponse struct {
	Status string `json:"status"`
	Path   string `json:"path,omitempty"`
}

// StorageCategoryTreeResponse nodo del árbol de categorías de bodegas.
type StorageCategoryTreeResponse struct {
	Name         string                        `json:"name"`
	Children     []StorageCategoryTreeResponse `json:"children"`
	ChildCount   int                           `json:"child_count"`
	StorageNames []string                      `json:"storage_names"`
	StorageCount int                           `json:"storage_count"`
}

// ItemTypeCategoryTreeResponse nodo del árbol de categorías de tipos de artículo.
type ItemTypeCategoryTreeResponse struct {
	Name          string                         `json:"name"`
	Children      []ItemTypeCategoryTreeResponse `json:"children"`
	ChildCount    int                            `json:"child_count"`
	ItemNames     []string                       `json:"item_names"`
	ItemTypeCount int                            `json:"item_type_count"`
}

// ImportReportResponse resumen de una importación masiva del catálogo.
type ImportReportResponse struct {
	CategoriesCreated int `json:"categories_created"`
	CategoriesSkipped int `json:"categories_skipped"`
	LeavesCreated     int `json:"leaves_created"`
	LeavesSkipped     int `json:"leaves_skipped"`
}
