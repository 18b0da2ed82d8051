package catalog

import (
	"context"
	"sort"

	"github.com/jhoicas/warehome-api/internal/domain/repository"
)

// StorageLeaves adapta un StorageRepository a LeafIndex.
func StorageLeaves(repo repository.StorageRepository) LeafIndex {
	return storageLeaves{repo: repo}
}

// ItemTypeLeaves adapta un ItemTypeRepository a LeafIndex.
func ItemTypeLeaves(repo repository.ItemTypeRepository) LeafIndex {
	return itemTypeLeaves{repo: repo}
}

type storageLeaves struct {
	repo repository.StorageRepository
}

func (s storageLeaves) CountByCategory(ctx context.Context, categoryPath string) (int, error) {
	return s.repo.CountByCategory(ctx, categoryPath)
}

func (s storageLeaves) NamesByCategory(ctx context.Context) (map[string][]string, error) {
	list, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string][]string)
	for _, st := range list {
		names[st.CategoryPath] = append(names[st.CategoryPath], st.Name)
	}
	sortNames(names)
	return names, nil
}

type itemTypeLeaves struct {
	repo repository.ItemTypeRepository
}

func (s itemTypeLeaves) CountByCategory(ctx context.Context, categoryPath string) (int, error) {
	return s.repo.CountByCategory(ctx, categoryPath)
}

func (s itemTypeLeaves) NamesByCategory(ctx context.Context) (map[string][]string, error) {
	list, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string][]string)
	for _, it := range list {
		names[it.CategoryPath] = append(names[it.CategoryPath], it.Name)
	}
	sortNames(names)
	return names, nil
}

func sortNames(names map[string][]string) {
	for _, list := range names {
		sort.Strings(list)
	}
}
