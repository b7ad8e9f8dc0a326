package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/go-inventory-keeper/models"
)

// renderDetail lists every field of rec in key order. The nested machine of
// archived and sold records is listed after the record's own fields.
func renderDetail(c models.Category, rec models.Record) string {
	var b strings.Builder
	writeFields(&b, rec, "", func(k string) bool { return c.Delegates() && k == "machine" })

	if c.Delegates() {
		b.WriteString("\nmachine\n")
		writeFields(&b, rec.Machine(c), "  ", func(string) bool { return false })
	}

	title := fmt.Sprintf("%s %s", strings.ToUpper(categoryTitle(c)), valueOrDash(rec.ID(c)))
	return renderPage(title, b.String(), "esc: back  d: delete  c: copy serial")
}

func writeFields(b *strings.Builder, rec models.Record, indent string, skip func(string) bool) {
	fields := make([]string, 0, len(rec))
	for k := range rec {
		if !skip(k) {
			fields = append(fields, k)
		}
	}
	slices.Sort(fields)

	for _, k := range fields {
		fmt.Fprintf(b, "%s%-18s %s\n", indent, k, valueOrDash(rec.String(k)))
	}
}
