// Package models defines the lookup record returned by the DNSDB API.
package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// Record is one passive-DNS observation as returned by the lookup API.
// The service makes no schema promise beyond "a JSON object", so the
// record keeps the decoded fields alongside the raw line and exposes
// checked accessors. Records are immutable once parsed.
type Record struct {
	raw    json.RawMessage
	fields map[string]any
}

// ParseRecord decodes one newline-delimited JSON line into a Record.
func ParseRecord(line []byte) (Record, error) {
	var fields map[string]any
	if err := json.Unmarshal(line, &fields); err != nil {
		return Record{}, fmt.Errorf("malformed record: %w", err)
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, line); err != nil {
		return Record{}, fmt.Errorf("malformed record: %w", err)
	}
	return Record{raw: buf.Bytes(), fields: fields}, nil
}

// Has reports whether the record carries the given key.
func (r Record) Has(key string) bool {
	_, ok := r.fields[key]
	return ok
}

// Field returns the raw decoded value for key.
func (r Record) Field(key string) (any, bool) {
	v, ok := r.fields[key]
	return v, ok
}

// String returns the value for key when it is a JSON string.
func (r Record) String(key string) (string, bool) {
	s, ok := r.fields[key].(string)
	return s, ok
}

// Int64 returns the value for key when it is a JSON number.
func (r Record) Int64(key string) (int64, bool) {
	f, ok := r.fields[key].(float64)
	if !ok {
		return 0, false
	}
	return int64(f), true
}

// Strings returns the value for key as a list. A JSON array yields its
// elements, a bare string yields a single-element list; rdata arrives in
// both shapes depending on the query mode.
func (r Record) Strings(key string) ([]string, bool) {
	switch v := r.fields[key].(type) {
	case []any:
		out := make([]string, 0, len(v))
		for _, e := range v {
			if s, ok := e.(string); ok {
				out = append(out, s)
			} else {
				out = append(out, fmt.Sprint(e))
			}
		}
		return out, true
	case string:
		return []string{v}, true
	default:
		return nil, false
	}
}

// Keys returns the record's field names, sorted.
func (r Record) Keys() []string {
	keys := make([]string, 0, len(r.fields))
	for k := range r.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// JSON returns the record's compact JSON encoding as received.
func (r Record) JSON() string {
	return string(r.raw)
}
