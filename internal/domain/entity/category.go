package entity

import (
	"fmt"
	"strings"

	"github.com/jhoicas/warehome-api/internal/domain"
)

// PathSeparator separa los segmentos de la ruta de una categoría.
const PathSeparator = "/"

// CategoryKind identifica a qué jerarquía pertenece una categoría.
type CategoryKind string

const (
	KindStorage  CategoryKind = "storage"
	KindItemType CategoryKind = "item_type"
)

// Valid indica si el tipo de jerarquía es conocido.
func (k CategoryKind) Valid() bool {
	return k == KindStorage || k == KindItemType
}

// Category representa un nodo del espacio de nombres jerárquico.
// Path es la cadena de ancestros unida por "/", p. ej. "garaje/estante/caja".
type Category struct {
	ID       int64
	Path     string
	ParentID *int64 // nil si es raíz
}

// Name devuelve el último segmento de la ruta.
func (c *Category) Name() string {
	return NameOf(c.Path)
}

// ParentPath devuelve la ruta del padre ("" para categorías de primer nivel).
func (c *Category) ParentPath() string {
	return ParentOf(c.Path)
}

// IsRoot indica si la categoría no tiene padre.
func (c *Category) IsRoot() bool {
	return c.ParentID == nil
}

// NameOf devuelve el texto después del último separador.
func NameOf(path string) string {
	if i := strings.LastIndex(path, PathSeparator); i >= 0 {
		return path[i+1:]
	}
	return path
}

// ParentOf devuelve el texto antes del último separador.
func ParentOf(path string) string {
	if i := strings.LastIndex(path, PathSeparator); i >= 0 {
		return path[:i]
	}
	return ""
}

// JoinPath construye la ruta de un hijo a partir de la ruta del padre.
func JoinPath(parentPath, name string) string {
	if parentPath == "" {
		return name
	}
	return parentPath + PathSeparator + name
}

// Segments divide una ruta en sus nombres.
func Segments(path string) []string {
	if path == "" {
		return nil
	}
	return strings.Split(path, PathSeparator)
}

// ValidateName verifica que un nombre sea usable como segmento de ruta o nombre de hoja.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: el nombre es requerido", domain.ErrInvalidInput)
	}
	if name != strings.TrimSpace(name) {
		return fmt.Errorf("%w: el nombre %q tiene espacios al inicio o al final", domain.ErrInvalidInput, name)
	}
	if strings.Contains(name, PathSeparator) {
		return fmt.Errorf("%w: el nombre %q no puede contener %q", domain.ErrInvalidInput, name, PathSeparator)
	}
	return nil
}

// ValidatePath verifica que cada segmento de la ruta sea un nombre válido.
func ValidatePath(path string) error {
	if path == "" {
		return fmt.Errorf("%w: la ruta es requerida", domain.ErrInvalidInput)
	}
	for _, seg := range Segments(path) {
		if err := ValidateName(seg); err != nil {
			return fmt.Errorf("%w: ruta %q mal formada", domain.ErrInvalidInput, path)
		}
	}
	return nil
}
