package usecase

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"

	"crawler-console/internal/model"
	"crawler-console/internal/normalize"
)

type encodeFunc func(format model.Format, rows []*model.Record) ([]byte, error)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

func encode(format model.Format, rows []*model.Record) ([]byte, error) {
	switch format {
	case model.FormatJSON:
		return encodeJSON(rows)
	case model.FormatCSV:
		return encodeCSV(rows)
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
}

// encodeJSON writes rows as a 2-space indented array.
func encodeJSON(rows []*model.Record) ([]byte, error) {
	if rows == nil {
		rows = []*model.Record{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rows); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// encodeCSV writes a BOM-prefixed CRLF table. The header is every key seen,
// in first-seen order; missing cells are empty.
func encodeCSV(rows []*model.Record) ([]byte, error) {
	header := unionKeys(rows)

	var buf bytes.Buffer
	buf.Write(utf8BOM)
	if len(header) == 0 {
		return buf.Bytes(), nil
	}

	w := csv.NewWriter(&buf)
	w.UseCRLF = true
	if err := w.Write(header); err != nil {
		return nil, err
	}

	line := make([]string, len(header))
	for _, r := range rows {
		for i, key := range header {
			line[i] = ""
			if v, ok := r.Get(key); ok {
				line[i] = normalize.Stringify(v)
			}
		}
		if err := w.Write(line); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func unionKeys(rows []*model.Record) []string {
	seen := make(map[string]struct{})
	var keys []string
	for _, r := range rows {
		r.Range(func(k string, _ any) bool {
			if _, ok := seen[k]; !ok {
				seen[k] = struct{}{}
				keys = append(keys, k)
			}
			return true
		})
	}
	return keys
}
