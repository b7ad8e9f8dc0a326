package service

import (
	"fmt"
	"testing"

	"github.com/MKhiriev/go-inventory-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func machines(n int) []models.Record {
	out := make([]models.Record, 0, n)
	// reverse order so sorting is observable
	for i := n; i >= 1; i-- {
		out = append(out, models.Record{"m_id": fmt.Sprint(i), "model": fmt.Sprintf("M%02d", i)})
	}
	return out
}

func machineModels(records []models.Record, c models.Category) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.Machine(c).String("model"))
	}
	return out
}

// ── pagination ──────────────────────────────────────────────────────────────

func TestRunQuery_Pagination(t *testing.T) {
	page := RunQuery(machines(25), models.Query{Category: models.Located, Page: 2, PageSize: 10})

	assert.Equal(t, 25, page.Total)
	require.Len(t, page.Data, 10)
	assert.Equal(t, "M11", page.Data[0].String("model"))
	assert.Equal(t, "M20", page.Data[9].String("model"))
}

func TestRunQuery_PagingDefaults(t *testing.T) {
	page := RunQuery(machines(25), models.Query{Category: models.Located, Page: -3})

	assert.Equal(t, 25, page.Total)
	assert.Len(t, page.Data, models.DefaultPageSize)
	assert.Equal(t, "M01", page.Data[0].String("model"))
}

func TestRunQuery_PageBeyondEnd(t *testing.T) {
	page := RunQuery(machines(5), models.Query{Category: models.Located, Page: 4, PageSize: 10})

	assert.Equal(t, 5, page.Total)
	assert.NotNil(t, page.Data)
	assert.Empty(t, page.Data)
}

// ── filters ─────────────────────────────────────────────────────────────────

func TestRunQuery_Filters(t *testing.T) {
	records := []models.Record{
		{"m_id": "1", "type": "Dozer", "model": "D6", "serialNumber": "SN-100", "contactId": "C1"},
		{"m_id": "2", "type": "Excavator", "model": "320", "serialNumber": "SN-200", "contactId": "C2"},
		{"m_id": "3", "type": "Dozer", "model": "D8", "serialNumber": "X-9", "contactId": 7.0},
	}

	tests := []struct {
		name  string
		query models.Query
		want  []string
	}{
		{"search is case-insensitive", models.Query{Search: "dozer"}, []string{"1", "3"}},
		{"search spans fields", models.Query{Search: "d6 sn-1"}, []string{"1"}},
		{"search by serial", models.Query{Search: "x-9"}, []string{"3"}},
		{"model substring", models.Query{Model: "d"}, []string{"1", "3"}},
		{"type substring", models.Query{Type: "EXCAV"}, []string{"2"}},
		{"contact exact", models.Query{ContactID: "C1"}, []string{"1"}},
		{"contact numeric", models.Query{ContactID: "7"}, []string{"3"}},
		{"contact no partial match", models.Query{ContactID: "C"}, []string{}},
		{"combined", models.Query{Type: "dozer", Model: "8"}, []string{"3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := tt.query
			q.Category = models.Located
			q.SortBy = "m_id"
			page := RunQuery(records, q)
			assert.Equal(t, tt.want, ids(models.Located, page.Data))
			assert.Equal(t, len(tt.want), page.Total)
		})
	}
}

func TestRunQuery_SearchKeepsEmptyFieldSlots(t *testing.T) {
	records := []models.Record{
		{"m_id": "1", "model": "D6", "serialNumber": "SN-1"},
		{"m_id": "2", "type": "Dozer", "model": "D6", "serialNumber": "SN-2"},
		{"m_id": "3", "type": "Dozer", "serialNumber": "SN-3"},
	}

	tests := []struct {
		name   string
		search string
		want   []string
	}{
		{"leading blank before model of untyped record", " d6", []string{"1", "2"}},
		{"blank type slot", " d6 sn-1", []string{"1"}},
		{"double space for missing model", "dozer  sn", []string{"3"}},
		{"surrounding spaces are kept", "d6 ", []string{"1", "2"}},
		{"whitespace only matches separators", "  ", []string{"3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := RunQuery(records, models.Query{Category: models.Located, Search: tt.search, SortBy: "m_id"})
			assert.Equal(t, tt.want, ids(models.Located, page.Data))
		})
	}
}

func TestRunQuery_DelegatesToMachine(t *testing.T) {
	records := []models.Record{
		{"s_id": "S1", "machine": map[string]any{"model": "D6", "type": "Dozer", "contactId": "C1"}},
		{"s_id": "S2", "machine": map[string]any{"model": "320", "type": "Excavator"}},
	}

	page := RunQuery(records, models.Query{Category: models.Sold, Search: "doz"})
	assert.Equal(t, []string{"S1"}, ids(models.Sold, page.Data))

	page = RunQuery(records, models.Query{Category: models.Sold, ContactID: "C1"})
	assert.Equal(t, []string{"S1"}, ids(models.Sold, page.Data))

	// default sort by machine model
	page = RunQuery(records, models.Query{Category: models.Sold})
	assert.Equal(t, []string{"320", "D6"}, machineModels(page.Data, models.Sold))
}

func TestRunQuery_ContactsSearchNameAndCompany(t *testing.T) {
	records := []models.Record{
		{"c_id": "C2", "name": "Zed", "company": "Acme Rentals"},
		{"c_id": "C1", "name": "Ann", "company": "Bolt"},
	}

	page := RunQuery(records, models.Query{Category: models.Contacts, Search: "acme"})
	assert.Equal(t, []string{"C2"}, ids(models.Contacts, page.Data))

	// no default sort for contacts
	page = RunQuery(records, models.Query{Category: models.Contacts})
	assert.Equal(t, []string{"C2", "C1"}, ids(models.Contacts, page.Data))
}

// ── sorting ─────────────────────────────────────────────────────────────────

func TestRunQuery_NullLastBothDirections(t *testing.T) {
	records := []models.Record{
		{"m_id": "1"},
		{"m_id": "2", "model": "B"},
		{"m_id": "3", "model": nil},
		{"m_id": "4", "model": "A"},
		{"m_id": "5", "model": ""},
	}

	asc := RunQuery(records, models.Query{Category: models.Located, SortBy: "model"})
	assert.Equal(t, []string{"4", "2", "1", "3", "5"}, ids(models.Located, asc.Data))

	desc := RunQuery(records, models.Query{Category: models.Located, SortBy: "-model"})
	assert.Equal(t, []string{"2", "4", "1", "3", "5"}, ids(models.Located, desc.Data))
}

func TestRunQuery_NumericSort(t *testing.T) {
	records := []models.Record{
		{"m_id": "a", "year": 2019.0},
		{"m_id": "b", "year": 2005.0},
		{"m_id": "c", "year": 2101.0},
	}

	page := RunQuery(records, models.Query{Category: models.Located, SortBy: "-year"})

	assert.Equal(t, []string{"c", "a", "b"}, ids(models.Located, page.Data))
}

func TestRunQuery_StableSort(t *testing.T) {
	records := []models.Record{
		{"m_id": "1", "model": "A"},
		{"m_id": "2", "model": "A"},
		{"m_id": "3", "model": "A"},
	}

	page := RunQuery(records, models.Query{Category: models.Located, SortBy: "-model"})

	assert.Equal(t, []string{"1", "2", "3"}, ids(models.Located, page.Data))
}

func TestCompareValues(t *testing.T) {
	assert.Equal(t, -1, compareValues(2.0, 10.0))
	assert.Equal(t, 1, compareValues("b", "a"))
	assert.Equal(t, 0, compareValues(3, 3.0))
	// mixed types compare by string form: "10" < "9"
	assert.Equal(t, -1, compareValues(10.0, "9"))
}
