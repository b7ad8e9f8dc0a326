// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strconv"
	"time"
)

// Record is an opaque inventory document as served by the REST layer.
// Only the category identity field and, for archived and sold records, the
// nested "machine" sub-document carry meaning for synchronization.
type Record map[string]any

// Snapshot is the last known bulk copy of one category.
type Snapshot struct {
	Category  Category  `json:"category"`
	Records   []Record  `json:"records"`
	FetchedAt time.Time `json:"fetchedAt"`
}

// ID returns the identity of r within category c as a string. Numeric ids
// are formatted without exponent. An absent or null id yields "".
func (r Record) ID(c Category) string {
	return stringify(r[c.IDField()])
}

// SetID writes id into the identity field of c.
func (r Record) SetID(c Category, id string) {
	r[c.IDField()] = id
}

// Machine returns the sub-document holding machine attributes. For archived
// and sold records this is the nested "machine" object; for other categories
// it is r itself. A missing or malformed sub-document yields an empty record.
func (r Record) Machine(c Category) Record {
	if !c.Delegates() {
		return r
	}
	switch m := r["machine"].(type) {
	case Record:
		return m
	case map[string]any:
		return Record(m)
	}
	return Record{}
}

// Clone returns a shallow copy of r.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Merge returns a new record with the fields of patch laid over r. Neither r
// nor patch is modified.
func (r Record) Merge(patch Record) Record {
	out := r.Clone()
	for k, v := range patch {
		out[k] = v
	}
	return out
}

// String returns the field value formatted as a string, or "" when the field
// is absent or null.
func (r Record) String(field string) string {
	return stringify(r[field])
}

// FormatValue formats a decoded JSON value the way [Record.String] does.
func FormatValue(v any) string {
	return stringify(v)
}

func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	default:
		return fmt.Sprint(t)
	}
}
