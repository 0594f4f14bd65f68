package export

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"washify/internal/domain/entity"
	domainerrors "washify/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRows() []*entity.ExportRow {
	return []*entity.ExportRow{
		entity.NewExportRow().
			Set("ID", int64(1)).
			Set("Tên", `A,B"C`).
			Set("Ghi Chú", nil),
		entity.NewExportRow().
			Set("ID", int64(2)).
			Set("Tên", "Giặt khô").
			Set("Ghi Chú", map[string]any{"vip": true}),
	}
}

func TestToCSV_QuotesEveryCellAndDoublesQuotes(t *testing.T) {
	out, err := ToCSV(sampleRows())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "\ufeff"), "output must start with a UTF-8 BOM")

	lines := strings.Split(strings.TrimPrefix(out, "\ufeff"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, `"ID","Tên","Ghi Chú"`, lines[0])
	assert.Equal(t, `"1","A,B""C",""`, lines[1])
	assert.Equal(t, `"2","Giặt khô","{""vip"":true}"`, lines[2])
}

func TestToCSV_EmptyRowsIsAUserFacingError(t *testing.T) {
	_, err := ToCSV(nil)
	assert.ErrorIs(t, err, domainerrors.ErrExportEmpty)
}

func TestToJSON_RoundTripKeepsColumnOrder(t *testing.T) {
	out, err := ToJSON(sampleRows())
	require.NoError(t, err)

	assert.False(t, strings.HasPrefix(out, "\ufeff"), "JSON export carries no BOM")
	assert.True(t, strings.HasPrefix(out, "["))

	var decoded []*entity.ExportRow
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, []string{"ID", "Tên", "Ghi Chú"}, decoded[0].Labels())

	name, ok := decoded[0].Get("Tên")
	require.True(t, ok)
	assert.Equal(t, `A,B"C`, name)
}

func TestToHTML_EscapesCellContent(t *testing.T) {
	restore := Now
	Now = func() time.Time { return time.Date(2025, 3, 9, 14, 5, 6, 0, time.UTC) }
	defer func() { Now = restore }()

	rows := []*entity.ExportRow{
		entity.NewExportRow().
			Set("Tên", `<script>alert("x")</script>`).
			Set("Ghi Chú", nil),
	}

	out, err := ToHTML(rows, "Danh Sách & Báo Cáo")
	require.NoError(t, err)

	assert.Contains(t, out, "<h1>Danh Sách &amp; Báo Cáo</h1>")
	assert.Contains(t, out, "Xuất ngày: 14:05:06 9/3/2025")
	assert.Contains(t, out, "&lt;script&gt;alert(&quot;x&quot;)&lt;/script&gt;")
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "<td>-</td>", "absent values render as a dash")
}

func TestToHTML_DefaultTitle(t *testing.T) {
	out, err := ToHTML(sampleRows(), "")
	require.NoError(t, err)

	assert.Contains(t, out, "<title>Dữ liệu xuất khẩu</title>")
}

func TestToPDF_ProducesADocument(t *testing.T) {
	out, err := ToPDF(sampleRows(), "Danh Sách Dịch Vụ")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(string(out), "%PDF"), "output must be a PDF document")
}

func TestRender_DispatchesByFormat(t *testing.T) {
	tests := []struct {
		format      Format
		contentType string
		extension   string
	}{
		{format: FormatCSV, contentType: "text/csv; charset=utf-8", extension: "csv"},
		{format: FormatJSON, contentType: "application/json; charset=utf-8", extension: "json"},
		{format: FormatHTML, contentType: "text/html; charset=utf-8", extension: "html"},
		{format: FormatPDF, contentType: "application/pdf", extension: "pdf"},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			artifact, err := Render(tt.format, sampleRows(), "Báo Cáo")
			require.NoError(t, err)
			assert.Equal(t, tt.contentType, artifact.ContentType)
			assert.Equal(t, tt.extension, artifact.Extension)
			assert.NotEmpty(t, artifact.Content)
		})
	}
}

func TestRender_UnknownFormat(t *testing.T) {
	_, err := Render(Format("xlsx"), sampleRows(), "")

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrExportFormat.ErrorCode(), appErr.ErrorCode())
}
