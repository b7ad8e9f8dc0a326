package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-inventory-keeper/models"
)

type column struct {
	title string
	field string
	width int
}

var (
	machineColumns = []column{
		{"Model", "model", 16},
		{"Type", "type", 14},
		{"Serial", "serialNumber", 18},
		{"Salesman", "salesman", 14},
	}
	contactColumns = []column{
		{"Name", "name", 20},
		{"Company", "company", 20},
		{"Phone", "phone", 16},
	}
)

const idWidth = 10

func columnsFor(c models.Category) []column {
	if c.IsMachine() {
		return machineColumns
	}
	return contactColumns
}

func categoryTitle(c models.Category) string {
	switch c {
	case models.Located:
		return "Located"
	case models.Archived:
		return "Archived"
	case models.Sold:
		return "Sold"
	case models.Contacts:
		return "Contacts"
	}
	return string(c)
}

// renderTable draws one row per record with the cursor on row idx. Archived
// and sold rows show the attributes of the nested machine.
func renderTable(c models.Category, records []models.Record, idx int) string {
	cols := columnsFor(c)

	var b strings.Builder
	b.WriteString("  ")
	b.WriteString(fitText("ID", idWidth))
	for _, col := range cols {
		b.WriteString(" ")
		b.WriteString(fitText(col.title, col.width))
	}
	b.WriteString("\n")

	for i, rec := range records {
		cursor := "  "
		if i == idx {
			cursor = "> "
		}

		row := fitText(rec.ID(c), idWidth)
		attrs := rec.Machine(c)
		for _, col := range cols {
			row += " " + fitText(valueOrDash(attrs.String(col.field)), col.width)
		}
		if i == idx {
			row = selectedStyle.Render(row)
		}
		b.WriteString(cursor + row + "\n")
	}
	return b.String()
}

func renderTabs(current models.Category) string {
	tabs := make([]string, 0, len(models.Categories()))
	for _, c := range models.Categories() {
		if c == current {
			tabs = append(tabs, activeTabStyle.Render(categoryTitle(c)))
			continue
		}
		tabs = append(tabs, tabStyle.Render(categoryTitle(c)))
	}
	return strings.Join(tabs, " ")
}

func pageCount(total, pageSize int) int {
	if pageSize <= 0 || total <= 0 {
		return 1
	}
	return (total + pageSize - 1) / pageSize
}

func pageInfo(q models.Query, total int) string {
	q = q.Normalized()
	return fmt.Sprintf("page %d/%d, %d records", q.Page, pageCount(total, q.PageSize), total)
}
