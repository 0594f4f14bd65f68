package entity

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
)

// ExportRow is a flattened, human-labeled projection of a record:
// column order is significant (it drives CSV/HTML/PDF column layout),
// keys are display labels and values are already-formatted cells.
// Derived, never persisted.
//
// JSON marshaling preserves column order, so a row survives a
// marshal/unmarshal round trip intact.
type ExportRow struct {
	labels []string
	cells  map[string]any
}

// NewExportRow returns an empty row. Use Set to append columns in
// display order.
func NewExportRow() *ExportRow {
	return &ExportRow{cells: make(map[string]any)}
}

// Set appends a labeled cell. Setting an existing label overwrites the
// value but keeps the original column position.
func (r *ExportRow) Set(label string, value any) *ExportRow {
	if _, ok := r.cells[label]; !ok {
		r.labels = append(r.labels, label)
	}
	r.cells[label] = value

	return r
}

// Labels returns the column labels in display order.
func (r *ExportRow) Labels() []string {
	out := make([]string, len(r.labels))
	copy(out, r.labels)

	return out
}

// Get returns the cell stored under a label.
func (r *ExportRow) Get(label string) (any, bool) {
	v, ok := r.cells[label]

	return v, ok
}

// Len returns the number of columns.
func (r *ExportRow) Len() int {
	return len(r.labels)
}

// MarshalJSON renders the row as a JSON object whose keys appear in
// column order.
func (r ExportRow) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, label := range r.labels {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(label)
		if err != nil {
			return nil, errors.Wrap(err, "marshal export row label")
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(r.cells[label])
		if err != nil {
			return nil, errors.Wrapf(err, "marshal export row cell %q", label)
		}
		buf.Write(val)
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// UnmarshalJSON rebuilds a row from a JSON object, keeping the key
// order of the document.
func (r *ExportRow) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return errors.Wrap(err, "read export row")
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return errors.New("export row must be a JSON object")
	}

	r.labels = nil
	r.cells = make(map[string]any)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return errors.Wrap(err, "read export row label")
		}
		label, ok := keyTok.(string)
		if !ok {
			return errors.New("export row label must be a string")
		}
		var value any
		if err := dec.Decode(&value); err != nil {
			return errors.Wrapf(err, "read export row cell %q", label)
		}
		r.Set(label, value)
	}
	if _, err := dec.Token(); err != nil {
		return errors.Wrap(err, "read export row end")
	}

	return nil
}
