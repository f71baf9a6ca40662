// Package docstore defines the document-store contract shared by the
// postgres and firestore drivers: schemaless documents grouped into named
// collections, addressed by opaque ids.
package docstore

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrDuplicate = errors.New("document violates a uniqueness constraint")
	ErrNotFound  = errors.New("document not found")
)

type (
	Document struct {
		ID     string
		Fields map[string]any
	}

	// Filter is an equality filter on a single field.
	Filter struct {
		Field string
		Value any
	}

	// Query is an equality filter plus an optional ordering. OrderBy
	// names a timestamp field; drivers compare it chronologically.
	Query struct {
		Where   *Filter
		OrderBy string
		Desc    bool
	}
)

// DecodeError reports a document whose stored shape does not match the
// entity being decoded. It replaces silent zero values on read.
type DecodeError struct {
	Collection string
	ID         string
	Field      string
	Want       string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("document %s/%s: field %q is not a %s", e.Collection, e.ID, e.Field, e.Want)
}

// String extracts a required string field. Numeric values are coerced:
// documents written by earlier clients stored price as a number.
func String(fields map[string]any, name string) (string, bool) {
	switch v := fields[name].(type) {
	case string:
		return v, true
	case float64:
		return fmt.Sprintf("%v", v), true
	case int64:
		return fmt.Sprintf("%d", v), true
	default:
		return "", false
	}
}

// Time extracts a required timestamp field. The postgres driver stores
// timestamps as RFC 3339 strings inside the JSONB document, the firestore
// driver returns native time.Time values.
func Time(fields map[string]any, name string) (time.Time, bool) {
	switch v := fields[name].(type) {
	case time.Time:
		return v, true
	case string:
		t, err := time.Parse(time.RFC3339Nano, v)
		if err != nil {
			return time.Time{}, false
		}
		return t, true
	default:
		return time.Time{}, false
	}
}

// Maps extracts a field holding a sequence of nested documents.
func Maps(fields map[string]any, name string) ([]map[string]any, bool) {
	raw, ok := fields[name].([]any)
	if !ok {
		return nil, false
	}

	ms := make([]map[string]any, 0, len(raw))
	for _, item := range raw {
		m, ok := item.(map[string]any)
		if !ok {
			return nil, false
		}
		ms = append(ms, m)
	}

	return ms, true
}
