// Package models holds the persisted entities, their write-time request
// shapes and the partial payloads accepted by the API.
package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"
)

// Assignment is one column/value pair of a validated record, in the order the
// record declares its columns.
type Assignment struct {
	Column string
	Value  any
}

// Record is implemented by every validated write-time request. The column set
// it returns is closed: it never depends on caller input.
type Record interface {
	Assignments() []Assignment
}

// Optional records whether a JSON key was present and whether it was null.
type Optional[T any] struct {
	Set   bool
	Value *T
}

func (o *Optional[T]) UnmarshalJSON(b []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		o.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}

// Some returns a present, non-null Optional.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: &v}
}

// Null returns a present, null Optional.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true}
}

// idSent reports whether a payload carried a non-null "id" key.
func idSent(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null"))
}

const dateLayout = "2006-01-02"

// ParseDate accepts a calendar date (2006-01-02) or an RFC 3339 timestamp.
func ParseDate(s string) (datatypes.Date, error) {
	if t, err := time.Parse(dateLayout, s); err == nil {
		return datatypes.Date(t), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return datatypes.Date{}, fmt.Errorf("expected a date formatted as %s", dateLayout)
	}
	return datatypes.Date(t), nil
}

// FormatDate renders a date the way ParseDate accepts it.
func FormatDate(d datatypes.Date) string {
	return time.Time(d).Format(dateLayout)
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if o.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*o.Value)
}
