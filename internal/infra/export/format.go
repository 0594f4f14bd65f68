package export

import (
	"washify/internal/domain/entity"
	domainerrors "washify/internal/domain/errors"
)

// Format identifies an export serialization.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatHTML Format = "html"
	FormatPDF  Format = "pdf"
)

// Artifact is a rendered export ready to be offered as a download.
type Artifact struct {
	Content     []byte
	ContentType string
	Extension   string
}

// Render serializes rows in the requested format. An unknown format is
// a caller error, an empty row set a user-facing notice.
func Render(format Format, rows []*entity.ExportRow, title string) (Artifact, error) {
	switch format {
	case FormatCSV:
		content, err := ToCSV(rows)
		if err != nil {
			return Artifact{}, err
		}

		return Artifact{Content: []byte(content), ContentType: "text/csv; charset=utf-8", Extension: "csv"}, nil
	case FormatJSON:
		content, err := ToJSON(rows)
		if err != nil {
			return Artifact{}, err
		}

		return Artifact{Content: []byte(content), ContentType: "application/json; charset=utf-8", Extension: "json"}, nil
	case FormatHTML:
		content, err := ToHTML(rows, title)
		if err != nil {
			return Artifact{}, err
		}

		return Artifact{Content: []byte(content), ContentType: "text/html; charset=utf-8", Extension: "html"}, nil
	case FormatPDF:
		content, err := ToPDF(rows, title)
		if err != nil {
			return Artifact{}, err
		}

		return Artifact{Content: content, ContentType: "application/pdf", Extension: "pdf"}, nil
	default:
		return Artifact{}, domainerrors.ErrExportFormat.WithDetails(string(format))
	}
}
