package catalog

import (
	"context"

	"github.com/jhoicas/warehome-api/internal/domain/entity"
	"github.com/jhoicas/warehome-api/internal/domain/repository"
)

// Nombres de entidad usados al reportar operaciones.
const (
	EntityStorageCategory  = "storage_category"
	EntityItemTypeCategory = "item_type_category"
	EntityStorage          = "storage"
	EntityItemType         = "item_type"
)

// Observer recibe el resultado de cada operación de escritura (métricas).
type Observer interface {
	ObserveOperation(entity, operation string, status Status)
}

// NopObserver descarta las observaciones.
type NopObserver struct{}

func (NopObserver) ObserveOperation(string, string, Status) {}

func record(o Observer, entity, operation string, s Status) Status {
	o.ObserveOperation(entity, operation, s)
	return s
}

// LeafIndex lectura mínima de hojas que necesitan el árbol y el borrado de categorías.
type LeafIndex interface {
	CountByCategory(ctx context.Context, categoryPath string) (int, error)
	// NamesByCategory agrupa los nombres de hojas por ruta de categoría ("" = sin categoría).
	NamesByCategory(ctx context.Context) (map[string][]string, error)
}

// Repositories agrupa los repositorios del catálogo atados a una misma transacción.
type Repositories struct {
	StorageCategories  repository.CategoryRepository
	ItemTypeCategories repository.CategoryRepository
	Storages           repository.StorageRepository
	ItemTypes          repository.ItemTypeRepository
}

// Categories devuelve el repositorio de la jerarquía indicada.
func (r Repositories) Categories(kind entity.CategoryKind) repository.CategoryRepository {
	if kind == entity.KindItemType {
		return r.ItemTypeCategories
	}
	return r.StorageCategories
}

// TxRunner ejecuta fn dentro de una transacción de BD con repositorios atados a esa tx.
type TxRunner interface {
	Run(ctx context.Context, fn func(repos Repositories) error) error
}

// TreeExporter serializa un árbol de categorías en un formato de archivo.
type TreeExporter interface {
	Format() string
	ContentType() string
	Export(ctx context.Context, kind entity.CategoryKind, tree *TreeNode) ([]byte, error)
}
