// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/MKhiriev/go-inventory-keeper/models"
)

// searchFields are concatenated for the free-text search, per kind of
// record.
var (
	machineSearchFields = []string{"type", "model", "serialNumber"}
	contactSearchFields = []string{"name", "company"}
)

// RunQuery filters, sorts and paginates records of q.Category the way the
// list endpoint of the live server does. Total is the number of records that
// passed the filters.
func RunQuery(records []models.Record, q models.Query) models.Page {
	q = q.Normalized()

	filtered := make([]models.Record, 0, len(records))
	for _, rec := range records {
		if matches(rec, q) {
			filtered = append(filtered, rec)
		}
	}

	if q.SortBy != "" {
		sortRecords(filtered, q.Category, q.SortBy)
	}

	total := len(filtered)
	start := (q.Page - 1) * q.PageSize
	if start >= total {
		return models.Page{Data: []models.Record{}, Total: total}
	}
	end := min(start+q.PageSize, total)

	return models.Page{Data: filtered[start:end], Total: total}
}

func matches(rec models.Record, q models.Query) bool {
	subject := rec.Machine(q.Category)

	if search := strings.ToLower(q.Search); search != "" {
		if !strings.Contains(strings.ToLower(searchText(subject, q.Category)), search) {
			return false
		}
	}

	if !containsFold(subject.String("model"), q.Model) {
		return false
	}
	if !containsFold(subject.String("type"), q.Type) {
		return false
	}
	if q.ContactID != "" && subject.String("contactId") != q.ContactID {
		return false
	}
	return true
}

// searchText joins the searchable fields with single spaces. Missing fields
// leave their slot empty, so "Dozer  SN-1" has two spaces when the model is
// unknown.
func searchText(subject models.Record, category models.Category) string {
	fields := machineSearchFields
	if category == models.Contacts {
		fields = contactSearchFields
	}
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = subject.String(f)
	}
	return strings.Join(parts, " ")
}

func containsFold(value, sub string) bool {
	if sub == "" {
		return true
	}
	return strings.Contains(strings.ToLower(value), strings.ToLower(sub))
}

// sortRecords stably sorts records by the "[-]field" expression. Missing
// values sort last in both directions.
func sortRecords(records []models.Record, category models.Category, sortBy string) {
	field, desc := strings.CutPrefix(sortBy, "-")

	sort.SliceStable(records, func(i, j int) bool {
		a, aok := sortValue(records[i], category, field)
		b, bok := sortValue(records[j], category, field)
		switch {
		case !aok && !bok:
			return false
		case !aok:
			return false
		case !bok:
			return true
		}
		c := compareValues(a, b)
		if desc {
			return c > 0
		}
		return c < 0
	})
}

// sortValue looks field up on the record and, for archived and sold records,
// on the nested machine. Absent, null and empty string values are missing.
func sortValue(rec models.Record, category models.Category, field string) (any, bool) {
	v, ok := rec[field]
	if (!ok || v == nil) && category.Delegates() {
		v, ok = rec.Machine(category)[field]
	}
	if !ok || v == nil {
		return nil, false
	}
	if s, isString := v.(string); isString && s == "" {
		return nil, false
	}
	return v, true
}

// compareValues orders numbers numerically, strings ordinally and mixed
// types by their string forms.
func compareValues(a, b any) int {
	if x, ok := toFloat(a); ok {
		if y, ok := toFloat(b); ok {
			switch {
			case x < y:
				return -1
			case x > y:
				return 1
			}
			return 0
		}
	}
	return strings.Compare(models.FormatValue(a), models.FormatValue(b))
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}
