package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/jhoicas/warehome-api/internal/application/dto"
	"github.com/jhoicas/warehome-api/internal/domain"
	"github.com/jhoicas/warehome-api/internal/domain/entity"
	"github.com/rs/zerolog"
)

// ImportCategory categoría a crear (con sus ancestros).
type ImportCategory struct {
	Kind entity.CategoryKind
	Path string
}

// ImportLeaf hoja a crear. CategoryPath vacío = sin categoría.
type ImportLeaf struct {
	Kind         entity.CategoryKind
	CategoryPath string
	Name         string
}

// ImportDocument contenido plano de un archivo de catálogo.
type ImportDocument struct {
	Categories []ImportCategory
	Leaves     []ImportLeaf
}

// Validate revisa tipos, rutas y nombres antes de abrir la transacción.
func (d *ImportDocument) Validate() error {
	for i, c := range d.Categories {
		if !c.Kind.Valid() {
			return fmt.Errorf("%w: categoría %d: tipo %q desconocido", domain.ErrInvalidInput, i+1, c.Kind)
		}
		if err := entity.ValidatePath(c.Path); err != nil {
			return fmt.Errorf("categoría %d: %w", i+1, err)
		}
	}
	for i, l := range d.Leaves {
		if !l.Kind.Valid() {
			return fmt.Errorf("%w: hoja %d: tipo %q desconocido", domain.ErrInvalidInput, i+1, l.Kind)
		}
		if err := entity.ValidateName(l.Name); err != nil {
			return fmt.Errorf("hoja %d: %w", i+1, err)
		}
		if l.CategoryPath != "" {
			if err := entity.ValidatePath(l.CategoryPath); err != nil {
				return fmt.Errorf("hoja %d: %w", i+1, err)
			}
		}
	}
	return nil
}

// ImportUseCase carga masiva del catálogo en una sola transacción. Es idempotente.
type ImportUseCase struct {
	tx  TxRunner
	log zerolog.Logger
}

func NewImportUseCase(tx TxRunner, log zerolog.Logger) *ImportUseCase {
	return &ImportUseCase{tx: tx, log: log}
}

// Import crea lo que falte del documento; lo existente se cuenta como omitido.
func (uc *ImportUseCase) Import(ctx context.Context, doc *ImportDocument) (*dto.ImportReportResponse, error) {
	if doc == nil {
		return nil, fmt.Errorf("%w: documento vacío", domain.ErrInvalidInput)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	var report dto.ImportReportResponse
	err := uc.tx.Run(ctx, func(repos Repositories) error {
		report = dto.ImportReportResponse{}
		for _, c := range doc.Categories {
			if _, err := uc.ensureCategory(ctx, repos, c.Kind, c.Path, &report, true); err != nil {
				return err
			}
		}
		for _, l := range doc.Leaves {
			if err := uc.ensureLeaf(ctx, repos, l, &report); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("importar catálogo: %w", err)
	}
	uc.log.Info().
		Int("categories_created", report.CategoriesCreated).
		Int("categories_skipped", report.CategoriesSkipped).
		Int("leaves_created", report.LeavesCreated).
		Int("leaves_skipped", report.LeavesSkipped).
		Msg("catálogo importado")
	return &report, nil
}

// ensureCategory crea path y sus ancestros faltantes, de la raíz hacia abajo.
// explicit indica que path viene declarada en el documento (cuenta como omitida si ya existe).
func (uc *ImportUseCase) ensureCategory(ctx context.Context, repos Repositories, kind entity.CategoryKind, path string, report *dto.ImportReportResponse, explicit bool) (*entity.Category, error) {
	categories := repos.Categories(kind)
	var parent *entity.Category
	current := ""
	for _, seg := range entity.Segments(path) {
		current = entity.JoinPath(current, seg)
		existing, err := categories.GetByPath(ctx, current)
		if err != nil {
			return nil, fmt.Errorf("obtener categoría %q: %w", current, err)
		}
		if existing != nil {
			if explicit && current == path {
				report.CategoriesSkipped++
			}
			parent = existing
			continue
		}
		c := &entity.Category{Path: current}
		if parent != nil {
			parentID := parent.ID
			c.ParentID = &parentID
		}
		if err := categories.Create(ctx, c); err != nil {
			return nil, fmt.Errorf("crear categoría %q: %w", current, err)
		}
		uc.log.Debug().Str("kind", string(kind)).Str("path", current).Msg("categoría creada")
		report.CategoriesCreated++
		parent = c
	}
	return parent, nil
}

func (uc *ImportUseCase) ensureLeaf(ctx context.Context, repos Repositories, l ImportLeaf, report *dto.ImportReportResponse) error {
	var category *entity.Category
	if l.CategoryPath != "" {
		c, err := uc.ensureCategory(ctx, repos, l.Kind, l.CategoryPath, report, false)
		if err != nil {
			return err
		}
		category = c
	}

	var err error
	switch l.Kind {
	case entity.KindItemType:
		var existing *entity.ItemType
		existing, err = repos.ItemTypes.Get(ctx, l.Name, l.CategoryPath)
		if err == nil && existing != nil {
			report.LeavesSkipped++
			return nil
		}
		if err == nil {
			err = repos.ItemTypes.Create(ctx, &entity.ItemType{Leaf: newLeaf(l.Name, category)})
		}
	default:
		var existing *entity.Storage
		existing, err = repos.Storages.Get(ctx, l.Name, l.CategoryPath)
		if err == nil && existing != nil {
			report.LeavesSkipped++
			return nil
		}
		if err == nil {
			err = repos.Storages.Create(ctx, &entity.Storage{Leaf: newLeaf(l.Name, category)})
		}
	}
	if errors.Is(err, domain.ErrDuplicate) {
		report.LeavesSkipped++
		return nil
	}
	if err != nil {
		return fmt.Errorf("crear hoja %q en %q: %w", l.Name, l.CategoryPath, err)
	}
	report.LeavesCreated++
	return nil
}
