package export

import (
	"bytes"

	"washify/internal/domain/entity"
	domainerrors "washify/internal/domain/errors"
	"washify/internal/errors"

	"github.com/phpdave11/gofpdf"
)

// ToPDF renders rows as a landscape A4 table, one header band and one
// line per row. Column widths are shared equally across the page.
func ToPDF(rows []*entity.ExportRow, title string) ([]byte, error) {
	if len(rows) == 0 {
		return nil, domainerrors.ErrExportEmpty
	}
	if title == "" {
		title = "Du lieu xuat"
	}

	labels := rows[0].Labels()

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle(title, true)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, title)
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "I", 9)
	pdf.Cell(0, 6, "Xuat ngay: "+Now().Format("15:04:05 2/1/2006"))
	pdf.Ln(10)

	pageWidth, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	colWidth := (pageWidth - left - right) / float64(len(labels))

	// Header band.
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(59, 130, 246)
	pdf.SetTextColor(255, 255, 255)
	for _, label := range labels {
		pdf.CellFormat(colWidth, 8, label, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(0, 0, 0)
	fill := false
	pdf.SetFillColor(248, 249, 250)
	for _, row := range rows {
		for _, label := range labels {
			value, _ := row.Get(label)
			pdf.CellFormat(colWidth, 7, htmlCellString(value), "1", 0, "L", fill, 0, "")
		}
		pdf.Ln(-1)
		fill = !fill
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, errors.Wrap(err, "render pdf")
	}

	return buf.Bytes(), nil
}
