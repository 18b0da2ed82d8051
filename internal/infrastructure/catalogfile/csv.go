package catalogfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jhoicas/warehome-api/internal/application/catalog"
	"github.com/jhoicas/warehome-api/internal/domain"
	"github.com/jhoicas/warehome-api/internal/domain/entity"
)

// Columnas del CSV. La cabecera es obligatoria; el orden es libre.
//
//	kind,category_path,name
//	storage,garaje/estante,caja1
//	storage,garaje/atico,        <- solo categoría
//	item_type,,martillo          <- hoja sin categoría
var csvColumns = []string{"kind", "category_path", "name"}

// ParseCSV lee filas kind,category_path,name. Las líneas que empiezan con # se ignoran.
func ParseCSV(r io.Reader) (*catalog.ImportDocument, error) {
	reader := csv.NewReader(r)
	reader.Comment = '#'
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return &catalog.ImportDocument{}, nil
		}
		return nil, fmt.Errorf("%w: csv: %v", domain.ErrInvalidInput, err)
	}
	idx, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	doc := &catalog.ImportDocument{}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: csv: %v", domain.ErrInvalidInput, err)
		}
		line, _ := reader.FieldPos(0)
		kind := entity.CategoryKind(strings.TrimSpace(field(record, idx["kind"])))
		path := strings.TrimSpace(field(record, idx["category_path"]))
		name := field(record, idx["name"])
		if !kind.Valid() {
			return nil, fmt.Errorf("%w: csv línea %d: kind %q (storage|item_type)", domain.ErrInvalidInput, line, kind)
		}
		switch {
		case name != "":
			doc.Leaves = append(doc.Leaves, catalog.ImportLeaf{Kind: kind, CategoryPath: path, Name: name})
		case path != "":
			doc.Categories = append(doc.Categories, catalog.ImportCategory{Kind: kind, Path: path})
		default:
			return nil, fmt.Errorf("%w: csv línea %d: se requiere category_path o name", domain.ErrInvalidInput, line)
		}
	}
	return doc, nil
}

func columnIndex(header []string) (map[string]int, error) {
	idx := make(map[string]int, len(csvColumns))
	for i, h := range header {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, c := range csvColumns {
		if _, ok := idx[c]; !ok {
			return nil, fmt.Errorf("%w: csv: falta la columna %q en la cabecera", domain.ErrInvalidInput, c)
		}
	}
	return idx, nil
}

func field(record []string, i int) string {
	if i < len(record) {
		return record[i]
	}
	return ""
}
