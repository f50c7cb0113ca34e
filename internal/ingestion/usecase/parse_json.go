package usecase

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/tidwall/gjson"

	"crawler-console/internal/model"
)

var (
	errInvalidJSON = errors.New("invalid JSON")
	errNotArray    = errors.New("JSON root must be an array")
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// parseJSON reads a JSON array of records. Object key order and number
// text are kept as written.
func parseJSON(data []byte) ([]*model.Record, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if !gjson.ValidBytes(data) {
		return nil, errInvalidJSON
	}

	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		return nil, errNotArray
	}

	records := make([]*model.Record, 0)
	root.ForEach(func(_, elem gjson.Result) bool {
		if !elem.IsObject() {
			records = append(records, model.NewRecord(0))
			return true
		}
		r := model.NewRecord(8)
		elem.ForEach(func(key, value gjson.Result) bool {
			r.Set(key.String(), jsonValue(value))
			return true
		})
		records = append(records, r)
		return true
	})
	return records, nil
}

func jsonValue(v gjson.Result) any {
	switch v.Type {
	case gjson.Null:
		return nil
	case gjson.True:
		return true
	case gjson.False:
		return false
	case gjson.Number:
		return json.Number(v.Raw)
	case gjson.String:
		return v.Str
	default:
		return json.RawMessage(v.Raw)
	}
}
