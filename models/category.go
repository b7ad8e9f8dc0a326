package models

import (
	"errors"
	"strings"
)

// ErrUnknownCategory is returned by [ParseCategory] for any value outside the
// fixed set of record categories.
var ErrUnknownCategory = errors.New("unknown record category")

// Category identifies one of the record kinds tracked by the inventory.
// The set is fixed: located (in-stock) machines, archived machines, sold
// machines and contacts.
type Category string

const (
	// Located holds machines that are currently in stock.
	Located Category = "located"
	// Archived holds machines moved out of the active inventory.
	Archived Category = "archived"
	// Sold holds machines that were sold to a contact.
	Sold Category = "sold"
	// Contacts holds customers and salesmen referenced by machines.
	Contacts Category = "contacts"
)

// SnapshotFiltersKey is the cache key under which filter option sets are
// stored next to the per-category snapshots.
const SnapshotFiltersKey = "snapshot:filters"

// Categories returns every record category in a stable order.
func Categories() []Category {
	return []Category{Located, Archived, Sold, Contacts}
}

// MachineCategories returns the three categories that hold machine records.
func MachineCategories() []Category {
	return []Category{Located, Archived, Sold}
}

// ParseCategory converts a raw string (case-insensitive) to a [Category].
func ParseCategory(raw string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(raw)))
	if !c.Valid() {
		return "", ErrUnknownCategory
	}
	return c, nil
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case Located, Archived, Sold, Contacts:
		return true
	}
	return false
}

// IDField returns the name of the identity field of records in c.
func (c Category) IDField() string {
	switch c {
	case Located:
		return "m_id"
	case Archived:
		return "a_id"
	case Sold:
		return "s_id"
	case Contacts:
		return "c_id"
	}
	return ""
}

// SnapshotKey returns the cache key holding the snapshot of c.
func (c Category) SnapshotKey() string {
	return "snapshot:" + string(c)
}

// IsMachine reports whether c holds machine records.
func (c Category) IsMachine() bool {
	return c == Located || c == Archived || c == Sold
}

// Delegates reports whether records of c keep their machine attributes in a
// nested "machine" sub-document.
func (c Category) Delegates() bool {
	return c == Archived || c == Sold
}

// String implements fmt.Stringer.
func (c Category) String() string {
	return string(c)
}
