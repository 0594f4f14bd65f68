// Package export serializes labeled row sets into downloadable
// artifacts: CSV for spreadsheets, JSON for machines, HTML and PDF for
// people. Serialization is pure; persisting the artifact is a separate
// concern (see ArchiveWriter).
package export

import (
	"encoding/json"
	"strings"

	"washify/internal/domain/entity"
	domainerrors "washify/internal/domain/errors"
)

// utf8BOM makes spreadsheet tools detect the encoding; without it
// Vietnamese text renders as mojibake in Excel.
const utf8BOM = "\ufeff"

// ToCSV renders rows as CSV. Every cell is double-quoted with embedded
// quotes doubled, the header comes from the first row's labels, rows
// are joined by a single newline and the output starts with a UTF-8
// byte order mark.
func ToCSV(rows []*entity.ExportRow) (string, error) {
	if len(rows) == 0 {
		return "", domainerrors.ErrExportEmpty
	}

	labels := rows[0].Labels()

	var b strings.Builder
	b.WriteString(utf8BOM)

	for i, label := range labels {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(quoteCSV(label))
	}

	for _, row := range rows {
		b.WriteByte('\n')
		for i, label := range labels {
			if i > 0 {
				b.WriteByte(',')
			}
			value, _ := row.Get(label)
			b.WriteString(quoteCSV(cellString(value)))
		}
	}

	return b.String(), nil
}

// quoteCSV wraps a cell in double quotes, doubling embedded quotes.
func quoteCSV(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// cellString renders a cell value for CSV: nil becomes the empty
// string, composite values are JSON-stringified, everything else uses
// its natural string form.
func cellString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	default:
		return stringify(v)
	}
}

func stringify(value any) string {
	switch v := value.(type) {
	case bool:
		if v {
			return "true"
		}

		return "false"
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		encoded, err := json.Marshal(v)
		if err != nil {
			return ""
		}

		return string(encoded)
	default:
		// Composite values (maps, slices, structs) export as JSON text.
		encoded, err := json.Marshal(v)
		if err != nil {
			return ""
		}

		return string(encoded)
	}
}
