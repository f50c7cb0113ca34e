package usecase

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"crawler-console/internal/model"
)

// extraFieldsKey holds the fields of a row that has more columns than the header.
const extraFieldsKey = "__parsed_extra"

// parseCSV reads a header row followed by data rows. All values are strings.
func parseCSV(data []byte) ([]*model.Record, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		decoded, _, err := transform.Bytes(simplifiedchinese.GB18030.NewDecoder(), data)
		if err != nil {
			return nil, err
		}
		data = bytes.TrimPrefix(decoded, utf8BOM)
	}

	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return []*model.Record{}, nil
		}
		return nil, err
	}
	for i := range header {
		header[i] = norm.NFC.String(strings.TrimSpace(header[i]))
	}

	records := make([]*model.Record, 0)
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if blankRow(row) {
			continue
		}
		records = append(records, csvRecord(header, row))
	}
	return records, nil
}

func csvRecord(header, row []string) *model.Record {
	rec := model.NewRecord(len(header))
	for i, key := range header {
		if i >= len(row) {
			break
		}
		rec.Set(key, row[i])
	}
	if len(row) > len(header) {
		extra, _ := json.Marshal(row[len(header):])
		rec.Set(extraFieldsKey, json.RawMessage(extra))
	}
	return rec
}

func blankRow(row []string) bool {
	return len(row) == 1 && row[0] == ""
}
