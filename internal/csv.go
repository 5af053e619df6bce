package internal

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
)

// CSVFromJSON renders an exported JSON array as CSV. The header row follows
// the key order of the first object, which matches the sheet's column order;
// rows missing a column get an empty cell.
func CSVFromJSON(raw json.RawMessage) (string, error) {
	var rows []Row
	if err := json.Unmarshal(raw, &rows); err != nil {
		return "", err
	}
	if len(rows) == 0 {
		return "", nil
	}

	header, err := firstKeys(raw)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return "", err
	}
	record := make([]string, len(header))
	for _, r := range rows {
		for i, h := range header {
			record[i] = asString(r[h])
		}
		if err := w.Write(record); err != nil {
			return "", err
		}
	}
	w.Flush()
	return buf.String(), w.Error()
}

// firstKeys walks the token stream of the first object to recover its key
// order, which json.Unmarshal into a map throws away.
func firstKeys(raw []byte) ([]string, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	if t, err := dec.Token(); err != nil || t != json.Delim('[') {
		return nil, fmt.Errorf("expected JSON array")
	}
	if t, err := dec.Token(); err != nil || t != json.Delim('{') {
		return nil, fmt.Errorf("expected object row")
	}

	var keys []string
	for dec.More() {
		t, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := t.(string)
		if !ok {
			return nil, fmt.Errorf("expected object key")
		}
		keys = append(keys, key)
		var v json.RawMessage
		if err := dec.Decode(&v); err != nil {
			return nil, err
		}
	}
	return keys, nil
}
