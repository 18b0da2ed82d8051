package catalogfile

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/jhoicas/warehome-api/internal/application/catalog"
	"github.com/jhoicas/warehome-api/internal/domain"
	"github.com/jhoicas/warehome-api/internal/domain/entity"
)

// yamlFile es la forma anidada del archivo:
//
//	storages:
//	  leaves: [suelta]
//	  categories:
//	    - name: garaje
//	      leaves: [caja1]
//	      children:
//	        - name: estante
//	item_types:
//	  ...
type yamlFile struct {
	Storages  *yamlHierarchy `yaml:"storages"`
	ItemTypes *yamlHierarchy `yaml:"item_types"`
}

type yamlHierarchy struct {
	Leaves     []string       `yaml:"leaves"`
	Categories []yamlCategory `yaml:"categories"`
}

type yamlCategory struct {
	Name     string         `yaml:"name"`
	Leaves   []string       `yaml:"leaves"`
	Children []yamlCategory `yaml:"children"`
}

// ParseYAML aplana el árbol del archivo a un ImportDocument (padres antes que hijos).
func ParseYAML(r io.Reader) (*catalog.ImportDocument, error) {
	var f yamlFile
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return &catalog.ImportDocument{}, nil
		}
		return nil, fmt.Errorf("%w: yaml: %v", domain.ErrInvalidInput, err)
	}

	doc := &catalog.ImportDocument{}
	if f.Storages != nil {
		if err := flatten(doc, entity.KindStorage, f.Storages); err != nil {
			return nil, err
		}
	}
	if f.ItemTypes != nil {
		if err := flatten(doc, entity.KindItemType, f.ItemTypes); err != nil {
			return nil, err
		}
	}
	return doc, nil
}

func flatten(doc *catalog.ImportDocument, kind entity.CategoryKind, h *yamlHierarchy) error {
	for _, name := range h.Leaves {
		doc.Leaves = append(doc.Leaves, catalog.ImportLeaf{Kind: kind, Name: name})
	}

	type pending struct {
		parent string
		node   yamlCategory
	}
	stack := make([]pending, 0, len(h.Categories))
	for i := len(h.Categories) - 1; i >= 0; i-- {
		stack = append(stack, pending{node: h.Categories[i]})
	}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if err := entity.ValidateName(p.node.Name); err != nil {
			return fmt.Errorf("yaml: %s bajo %q: %w", kind, p.parent, err)
		}
		path := entity.JoinPath(p.parent, p.node.Name)
		doc.Categories = append(doc.Categories, catalog.ImportCategory{Kind: kind, Path: path})
		for _, name := range p.node.Leaves {
			doc.Leaves = append(doc.Leaves, catalog.ImportLeaf{Kind: kind, CategoryPath: path, Name: name})
		}
		for i := len(p.node.Children) - 1; i >= 0; i-- {
			stack = append(stack, pending{parent: path, node: p.node.Children[i]})
		}
	}
	return nil
}
