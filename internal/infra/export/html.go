package export

import (
	"fmt"
	"strings"
	"time"

	"washify/internal/domain/entity"
	domainerrors "washify/internal/domain/errors"
)

// Now is the timestamp source for the "Xuất ngày" line. Overridable in
// tests.
var Now = time.Now

// ToHTML renders rows as a self-contained HTML document with one
// table: header row from the first record's labels, a generated
// timestamp, and every cell value escaped so row content can never
// inject markup.
func ToHTML(rows []*entity.ExportRow, title string) (string, error) {
	if len(rows) == 0 {
		return "", domainerrors.ErrExportEmpty
	}
	if title == "" {
		title = "Dữ liệu xuất khẩu"
	}

	labels := rows[0].Labels()

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	b.WriteString("  <meta charset=\"utf-8\">\n")
	fmt.Fprintf(&b, "  <title>%s</title>\n", escapeHTML(title))
	b.WriteString(`  <style>
    body { font-family: Arial, sans-serif; margin: 20px; }
    table { border-collapse: collapse; width: 100%; margin-top: 20px; }
    th { background-color: #3b82f6; color: white; padding: 10px; text-align: left; }
    td { border: 1px solid #ddd; padding: 10px; }
    tr:nth-child(even) { background-color: #f8f9fa; }
    h1 { color: #333; }
  </style>
`)
	b.WriteString("</head>\n<body>\n")
	fmt.Fprintf(&b, "  <h1>%s</h1>\n", escapeHTML(title))
	fmt.Fprintf(&b, "  <p>Xuất ngày: %s</p>\n", Now().Format("15:04:05 2/1/2006"))
	b.WriteString("  <table>\n    <thead>\n      <tr>")
	for _, label := range labels {
		fmt.Fprintf(&b, "<th>%s</th>", escapeHTML(label))
	}
	b.WriteString("</tr>\n    </thead>\n    <tbody>\n")
	for _, row := range rows {
		b.WriteString("      <tr>")
		for _, label := range labels {
			value, _ := row.Get(label)
			fmt.Fprintf(&b, "<td>%s</td>", escapeHTML(htmlCellString(value)))
		}
		b.WriteString("</tr>\n")
	}
	b.WriteString("    </tbody>\n  </table>\n</body>\n</html>\n")

	return b.String(), nil
}

// htmlCellString renders a cell for display: absent values show as a
// dash, composite values as JSON text.
func htmlCellString(value any) string {
	if value == nil {
		return "-"
	}
	if s, ok := value.(string); ok {
		return s
	}

	return stringify(value)
}

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

func escapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}
