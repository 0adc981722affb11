// Package csvexport genera los archivos CSV descargables de los reportes.
//
// Los valores anidados se aplanan con claves compuestas (categoria_name,
// supplier_id, ...) para que cada columna sea un escalar.
package csvexport

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// Row una fila del CSV, indexada por nombre de columna.
type Row map[string]any

// Flatten aplana un mapa anidado: {"category": {"name": "X"}} -> {"category_name": "X"}.
// Los valores escalares y slices se conservan tal cual.
func Flatten(obj map[string]any, prefix string) Row {
	flat := Row{}
	for key, value := range obj {
		newKey := key
		if prefix != "" {
			newKey = prefix + "_" + key
		}
		if nested, ok := value.(map[string]any); ok {
			for k, v := range Flatten(nested, newKey) {
				flat[k] = v
			}
			continue
		}
		flat[newKey] = value
	}
	return flat
}

// Marshal serializa las filas como CSV usando headers como orden de columnas.
// Valores con coma o comillas se envuelven en comillas dobles (RFC 4180).
func Marshal(headers []string, rows []Row) string {
	if len(headers) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(strings.Join(headers, ","))
	for _, row := range rows {
		b.WriteString("\n")
		cells := make([]string, 0, len(headers))
		for _, h := range headers {
			cells = append(cells, formatCell(row[h]))
		}
		b.WriteString(strings.Join(cells, ","))
	}
	return b.String()
}

func formatCell(value any) string {
	if value == nil {
		return ""
	}
	s := fmt.Sprintf("%v", value)
	if strings.ContainsAny(s, ",\"\n") {
		return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	}
	return s
}

// ToLatin1 re-codifica el CSV a ISO-8859-1. Excel en es/pt abre CSV como
// Latin-1 por defecto; sin esto los acentos de nombres de producto se corrompen.
// Caracteres fuera de Latin-1 se sustituyen por el encoder.
func ToLatin1(csv string) ([]byte, error) {
	enc := encoding.ReplaceUnsupported(charmap.ISO8859_1.NewEncoder())
	out, _, err := transform.Bytes(enc, []byte(csv))
	if err != nil {
		return nil, fmt.Errorf("codificar latin1: %w", err)
	}
	return out, nil
}
