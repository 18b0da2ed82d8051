// Package catalogfile lee archivos de catálogo (YAML o CSV) para la importación masiva.
package catalogfile

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/warehome-api/internal/application/catalog"
	"github.com/jhoicas/warehome-api/internal/domain"
)

// Formatos soportados.
const (
	FormatYAML = "yaml"
	FormatCSV  = "csv"
)

// Codificaciones de entrada soportadas.
const (
	EncodingUTF8        = "utf-8"
	EncodingLatin1      = "latin1"
	EncodingWindows1252 = "windows-1252"
)

// DetectFormat deduce el formato por la extensión del archivo.
func DetectFormat(filename string) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".csv":
		return FormatCSV, nil
	}
	return "", fmt.Errorf("%w: no se reconoce el formato de %q (use --format)", domain.ErrInvalidInput, filename)
}

// Parse lee r en el formato y la codificación indicados.
func Parse(r io.Reader, format, encoding string) (*catalog.ImportDocument, error) {
	decoded, err := Decode(r, encoding)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(format) {
	case FormatYAML, "yml":
		return ParseYAML(decoded)
	case FormatCSV:
		return ParseCSV(decoded)
	}
	return nil, fmt.Errorf("%w: formato %q no soportado (yaml|csv)", domain.ErrInvalidInput, format)
}

// Decode convierte r a UTF-8. Los archivos exportados desde hojas de cálculo en
// Windows suelen venir en windows-1252 o ISO-8859-1.
func Decode(r io.Reader, encoding string) (io.Reader, error) {
	switch normalizeEncoding(encoding) {
	case EncodingUTF8:
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("leer archivo: %w", err)
		}
		return bytes.NewReader(bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))), nil
	case EncodingLatin1:
		return transform.NewReader(r, charmap.ISO8859_1.NewDecoder()), nil
	case EncodingWindows1252:
		return transform.NewReader(r, charmap.Windows1252.NewDecoder()), nil
	}
	return nil, fmt.Errorf("%w: codificación %q no soportada (utf-8|latin1|windows-1252)", domain.ErrInvalidInput, encoding)
}

func normalizeEncoding(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "utf-8", "utf8":
		return EncodingUTF8
	case "latin1", "latin-1", "iso-8859-1", "iso8859-1":
		return EncodingLatin1
	case "windows-1252", "cp1252":
		return EncodingWindows1252
	}
	return s
}
