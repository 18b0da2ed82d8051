package catalog

// Services casos de uso del catálogo armados sobre un mismo juego de repositorios.
type Services struct {
	StorageCategories  *CategoryUseCase
	ItemTypeCategories *CategoryUseCase
	Storages           *StorageUseCase
	ItemTypes          *ItemTypeUseCase
	Export             *ExportUseCase
}

// NewServices construye los casos de uso. observer nil equivale a NopObserver.
func NewServices(repos Repositories, observer Observer, exporters ...TreeExporter) *Services {
	if observer == nil {
		observer = NopObserver{}
	}
	storageCats := NewStorageCategoryUseCase(repos.StorageCategories, repos.Storages, observer)
	itemTypeCats := NewItemTypeCategoryUseCase(repos.ItemTypeCategories, repos.ItemTypes, observer)
	return &Services{
		StorageCategories:  storageCats,
		ItemTypeCategories: itemTypeCats,
		Storages:           NewStorageUseCase(repos.Storages, repos.StorageCategories, observer),
		ItemTypes:          NewItemTypeUseCase(repos.ItemTypes, repos.ItemTypeCategories, observer),
		Export:             NewExportUseCase([]TreeSource{storageCats, itemTypeCats}, exporters...),
	}
}
