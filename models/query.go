package models

import (
	"net/url"
	"strconv"
)

// Default paging values of the list contract.
const (
	DefaultPageSize = 20
	DefaultSortBy   = "model"
	// BulkPageSize is the page size used when pulling whole categories.
	BulkPageSize = 100
)

// Query carries the filter, sort and paging parameters of the list contract.
// The same parameters are understood by the live server and the local query
// engine.
type Query struct {
	Category  Category `json:"category"`
	Search    string   `json:"search,omitempty"`
	Model     string   `json:"model,omitempty"`
	Type      string   `json:"type,omitempty"`
	ContactID string   `json:"contactId,omitempty"`
	SortBy    string   `json:"sortBy,omitempty"`
	Page      int      `json:"page,omitempty"`
	PageSize  int      `json:"pageSize,omitempty"`
}

// Normalized returns a copy of q with paging defaults applied.
func (q Query) Normalized() Query {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 {
		q.PageSize = DefaultPageSize
	}
	if q.SortBy == "" && q.Category.IsMachine() {
		q.SortBy = DefaultSortBy
	}
	return q
}

// Values encodes q as URL query parameters. The category is not included;
// it is part of the request path or the "location" parameter.
func (q Query) Values() url.Values {
	v := url.Values{}
	set := func(k, val string) {
		if val != "" {
			v.Set(k, val)
		}
	}
	set("search", q.Search)
	set("model", q.Model)
	set("type", q.Type)
	set("contactId", q.ContactID)
	set("sortBy", q.SortBy)
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.PageSize > 0 {
		v.Set("pageSize", strconv.Itoa(q.PageSize))
	}
	return v
}

// QueryFromValues decodes URL parameters into a Query for category c.
// Malformed numbers are ignored and fall back to defaults later.
func QueryFromValues(c Category, v url.Values) Query {
	q := Query{
		Category:  c,
		Search:    v.Get("search"),
		Model:     v.Get("model"),
		Type:      v.Get("type"),
		ContactID: v.Get("contactId"),
		SortBy:    v.Get("sortBy"),
	}
	q.Page, _ = strconv.Atoi(v.Get("page"))
	q.PageSize, _ = strconv.Atoi(v.Get("pageSize"))
	return q
}
