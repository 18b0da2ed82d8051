package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/jhoicas/warehome-api/internal/domain"
	"github.com/jhoicas/warehome-api/internal/domain/entity"
)

// TreeSource entrega el árbol materializado de una jerarquía.
type TreeSource interface {
	Kind() entity.CategoryKind
	GetTree(ctx context.Context) (*TreeNode, error)
}

// ExportResult archivo generado por una exportación.
type ExportResult struct {
	Data        []byte
	ContentType string
	Filename    string
}

// ExportUseCase exporta el árbol de una jerarquía en alguno de los formatos registrados.
type ExportUseCase struct {
	sources   map[entity.CategoryKind]TreeSource
	exporters map[string]TreeExporter
}

// NewExportUseCase registra las fuentes y los exportadores. El formato json siempre está disponible.
func NewExportUseCase(sources []TreeSource, exporters ...TreeExporter) *ExportUseCase {
	uc := &ExportUseCase{
		sources:   make(map[entity.CategoryKind]TreeSource, len(sources)),
		exporters: map[string]TreeExporter{"json": JSONExporter{}},
	}
	for _, s := range sources {
		uc.sources[s.Kind()] = s
	}
	for _, e := range exporters {
		uc.exporters[e.Format()] = e
	}
	return uc
}

// Formats formatos soportados, ordenados.
func (uc *ExportUseCase) Formats() []string {
	out := make([]string, 0, len(uc.exporters))
	for f := range uc.exporters {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Export genera el archivo del árbol de kind en format.
func (uc *ExportUseCase) Export(ctx context.Context, kind entity.CategoryKind, format string) (*ExportResult, error) {
	source, ok := uc.sources[kind]
	if !ok {
		return nil, fmt.Errorf("%w: jerarquía desconocida %q", domain.ErrInvalidInput, kind)
	}
	format = strings.ToLower(strings.TrimSpace(format))
	exporter, ok := uc.exporters[format]
	if !ok {
		return nil, fmt.Errorf("%w: formato %q no soportado (use %s)", domain.ErrInvalidInput, format, strings.Join(uc.Formats(), ", "))
	}
	tree, err := source.GetTree(ctx)
	if err != nil {
		return nil, err
	}
	data, err := exporter.Export(ctx, kind, tree)
	if err != nil {
		return nil, fmt.Errorf("exportar %s: %w", format, err)
	}
	return &ExportResult{
		Data:        data,
		ContentType: exporter.ContentType(),
		Filename:    fmt.Sprintf("%s_categories.%s", kind, format),
	}, nil
}

// JSONExporter serializa el árbol con la misma forma que la respuesta HTTP.
type JSONExporter struct{}

func (JSONExporter) Format() string      { return "json" }
func (JSONExporter) ContentType() string { return "application/json" }

func (JSONExporter) Export(_ context.Context, kind entity.CategoryKind, tree *TreeNode) ([]byte, error) {
	return json.MarshalIndent(TreeResponse(kind, tree), "", "  ")
}
