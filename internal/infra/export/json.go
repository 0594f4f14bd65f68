package export

import (
	"encoding/json"

	"washify/internal/domain/entity"
	domainerrors "washify/internal/domain/errors"
	"washify/internal/errors"
)

// ToJSON renders rows as a pretty-printed JSON array with two-space
// indentation, UTF-8 and no byte order mark. Column order survives the
// round trip because ExportRow marshals its keys in display order.
func ToJSON(rows []*entity.ExportRow) (string, error) {
	if len(rows) == 0 {
		return "", domainerrors.ErrExportEmpty
	}

	encoded, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "encode export rows")
	}

	return string(encoded), nil
}
