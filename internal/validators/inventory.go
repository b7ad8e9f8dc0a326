package validators

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/MKhiriev/go-inventory-keeper/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldCategory targets the record category of a query or mutation.
	FieldCategory = "category"

	// FieldMethod targets the mutation kind (create, update, delete).
	FieldMethod = "method"

	// FieldID targets the record id of an update or delete.
	FieldID = "id"

	// FieldPayload targets the item of a create or the patch of an update.
	FieldPayload = "payload"

	// FieldSource targets the source machine of archived and sold creates.
	FieldSource = "source"

	// FieldPage targets the 1-indexed page number of a query.
	FieldPage = "page"

	// FieldPageSize targets the page size of a query.
	FieldPageSize = "page_size"

	// FieldSortBy targets the "[-]field" sort expression of a query.
	FieldSortBy = "sort_by"
)

// MaxPageSize is the largest page a list query may request.
const MaxPageSize = 500

var sortByPattern = regexp.MustCompile(`^-?[A-Za-z_][A-Za-z0-9_]*$`)

// InventoryValidator implements [Validator] for list queries and mutations:
// models.Query and models.Mutation, by value or by pointer.
type InventoryValidator struct {
}

// NewInventoryValidator constructs a new InventoryValidator and returns it as
// the Validator interface.
func NewInventoryValidator() Validator {
	return &InventoryValidator{}
}

// Validate dispatches on the dynamic type of obj. Optional fields restrict
// validation to the named subset.
func (v *InventoryValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Query:
		return v.validateQuery(ctx, value, fields...)
	case *models.Query:
		return v.validateQuery(ctx, *value, fields...)

	case models.Mutation:
		return v.validateMutation(ctx, value, fields...)
	case *models.Mutation:
		return v.validateMutation(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateQuery validates a list query. Zero page and page size are accepted
// and later replaced by defaults.
//
// Default validated fields: Category, Page, PageSize, SortBy.
func (v *InventoryValidator) validateQuery(_ context.Context, q models.Query, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCategory, FieldPage, FieldPageSize, FieldSortBy}
	}

	for _, f := range fields {
		switch f {
		case FieldCategory:
			if !q.Category.Valid() {
				return fmt.Errorf("%w: %q", ErrInvalidCategory, q.Category)
			}
		case FieldPage:
			if q.Page < 0 {
				return ErrInvalidPage
			}
		case FieldPageSize:
			if q.PageSize < 0 || q.PageSize > MaxPageSize {
				return fmt.Errorf("%w: must be between 1 and %d", ErrInvalidPageSize, MaxPageSize)
			}
		case FieldSortBy:
			if q.SortBy != "" && !sortByPattern.MatchString(q.SortBy) {
				return fmt.Errorf("%w: %q", ErrInvalidSortBy, q.SortBy)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateMutation validates a mutation intent.
//
// Default validated fields: Method, Category, ID, Payload, Source. The ID
// check applies to updates and deletes, the payload check to creates and
// updates, and the source check to archived and sold creates only.
func (v *InventoryValidator) validateMutation(_ context.Context, m models.Mutation, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldMethod, FieldCategory, FieldID, FieldPayload, FieldSource}
	}

	for _, f := range fields {
		switch f {
		case FieldMethod:
			if !m.Method.Valid() {
				return fmt.Errorf("%w: %q", ErrInvalidMethod, m.Method)
			}
		case FieldCategory:
			if !m.Category.Valid() {
				return fmt.Errorf("%w: %q", ErrInvalidCategory, m.Category)
			}
		case FieldID:
			if m.Method != models.MethodCreate && strings.TrimSpace(m.ID) == "" {
				return ErrEmptyID
			}
		case FieldPayload:
			if m.Method != models.MethodDelete && len(m.Payload) == 0 {
				return ErrEmptyPayload
			}
		case FieldSource:
			if m.Method == models.MethodCreate && m.Category.Delegates() && !hasSource(m.Category, m.Payload) {
				return ErrNoSource
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// hasSource reports whether an archived or sold item names the located
// machine it derives from, or carries the machine document itself.
func hasSource(c models.Category, item models.Record) bool {
	if item.String("sourceId") != "" {
		return true
	}
	return len(item.Machine(c)) > 0
}
