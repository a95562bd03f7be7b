package formats

import (
	"encoding/csv"
	"fmt"
	"strings"

	"toonbench/toon"
)

// MarshalCSV serializes a dataset as CSV. The header is taken from the
// first record's keys; later records contribute one cell per header key,
// empty when the key is absent. Cells use the TOON scalar rendering, so
// lists come out as "[a, b]" and nested objects as their block text.
func MarshalCSV(ds toon.Dataset) (string, error) {
	if len(ds) == 0 {
		return "", nil
	}

	header := ds[0].Keys()

	var sb strings.Builder
	w := csv.NewWriter(&sb)
	if err := w.Write(header); err != nil {
		return "", fmt.Errorf("formats: marshal csv: %w", err)
	}
	for _, rec := range ds {
		row := make([]string, len(header))
		for i, key := range header {
			if v, ok := rec.Get(key); ok {
				row[i] = v.Format()
			}
		}
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("formats: marshal csv: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("formats: marshal csv: %w", err)
	}
	return sb.String(), nil
}

// UnmarshalCSV parses CSV text into a dataset. The first row is the header;
// every cell stays a plain string, matching how CSV erases type
// information.
func UnmarshalCSV(text string) (toon.Dataset, error) {
	r := csv.NewReader(strings.NewReader(text))
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("formats: unmarshal csv: %w", err)
	}
	if len(rows) == 0 {
		return toon.Dataset{}, nil
	}

	header := rows[0]
	ds := toon.Dataset{}
	for _, row := range rows[1:] {
		var rec toon.Record
		for i, cell := range row {
			if i >= len(header) {
				break
			}
			rec = append(rec, toon.Field{Key: header[i], Value: toon.Str(cell)})
		}
		if len(rec) > 0 {
			ds = append(ds, rec)
		}
	}
	return ds, nil
}
