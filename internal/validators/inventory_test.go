// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-inventory-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// TestNewInventoryValidator
// ---------------------------------------------------------------------------

func TestNewInventoryValidator(t *testing.T) {
	v := NewInventoryValidator()
	require.NotNil(t, v)
}

// ---------------------------------------------------------------------------
// TestValidate_Dispatch
// ---------------------------------------------------------------------------

func TestValidate_Dispatch(t *testing.T) {
	v := NewInventoryValidator()
	ctx := context.Background()

	q := models.Query{Category: models.Located}
	m := models.Mutation{Method: models.MethodDelete, Category: models.Sold, ID: "S1"}

	assert.NoError(t, v.Validate(ctx, q))
	assert.NoError(t, v.Validate(ctx, &q))
	assert.NoError(t, v.Validate(ctx, m))
	assert.NoError(t, v.Validate(ctx, &m))
	assert.ErrorIs(t, v.Validate(ctx, "not a model"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(ctx, models.Record{}), ErrUnsupportedType)
}

// ---------------------------------------------------------------------------
// TestValidateQuery
// ---------------------------------------------------------------------------

func TestValidateQuery(t *testing.T) {
	tests := []struct {
		name    string
		query   models.Query
		fields  []string
		wantErr error
	}{
		{
			name:  "zero paging is accepted",
			query: models.Query{Category: models.Contacts},
		},
		{
			name:  "descending sort",
			query: models.Query{Category: models.Located, SortBy: "-year", Page: 3, PageSize: 50},
		},
		{
			name:    "unknown category",
			query:   models.Query{Category: "rented"},
			wantErr: ErrInvalidCategory,
		},
		{
			name:    "negative page",
			query:   models.Query{Category: models.Located, Page: -1},
			wantErr: ErrInvalidPage,
		},
		{
			name:    "page size over limit",
			query:   models.Query{Category: models.Located, PageSize: MaxPageSize + 1},
			wantErr: ErrInvalidPageSize,
		},
		{
			name:    "sort expression with operators",
			query:   models.Query{Category: models.Located, SortBy: "model; drop"},
			wantErr: ErrInvalidSortBy,
		},
		{
			name:    "double minus",
			query:   models.Query{Category: models.Located, SortBy: "--model"},
			wantErr: ErrInvalidSortBy,
		},
		{
			name:   "scoped to category only",
			query:  models.Query{Category: models.Sold, Page: -5},
			fields: []string{FieldCategory},
		},
		{
			name:    "unknown field",
			query:   models.Query{Category: models.Sold},
			fields:  []string{"colour"},
			wantErr: ErrUnknownField,
		},
	}

	v := NewInventoryValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.query, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ---------------------------------------------------------------------------
// TestValidateMutation
// ---------------------------------------------------------------------------

func TestValidateMutation(t *testing.T) {
	tests := []struct {
		name     string
		mutation models.Mutation
		wantErr  error
	}{
		{
			name:     "create located",
			mutation: models.Mutation{Method: models.MethodCreate, Category: models.Located, Payload: models.Record{"model": "D6"}},
		},
		{
			name:     "create without payload",
			mutation: models.Mutation{Method: models.MethodCreate, Category: models.Located},
			wantErr:  ErrEmptyPayload,
		},
		{
			name:     "update without id",
			mutation: models.Mutation{Method: models.MethodUpdate, Category: models.Contacts, ID: "  ", Payload: models.Record{"name": "A"}},
			wantErr:  ErrEmptyID,
		},
		{
			name:     "update with empty patch",
			mutation: models.Mutation{Method: models.MethodUpdate, Category: models.Contacts, ID: "C1", Payload: models.Record{}},
			wantErr:  ErrEmptyPayload,
		},
		{
			name:     "delete needs no payload",
			mutation: models.Mutation{Method: models.MethodDelete, Category: models.Located, ID: "M1"},
		},
		{
			name:     "unknown method",
			mutation: models.Mutation{Method: "patch", Category: models.Located, ID: "M1"},
			wantErr:  ErrInvalidMethod,
		},
		{
			name:     "unknown category",
			mutation: models.Mutation{Method: models.MethodDelete, Category: "", ID: "M1"},
			wantErr:  ErrInvalidCategory,
		},
		{
			name:     "archive with source id",
			mutation: models.Mutation{Method: models.MethodCreate, Category: models.Archived, Payload: models.Record{"sourceId": "M1"}},
		},
		{
			name: "sell with machine document",
			mutation: models.Mutation{Method: models.MethodCreate, Category: models.Sold, Payload: models.Record{
				"machine": map[string]any{"model": "D6"},
			}},
		},
		{
			name:     "archive without source",
			mutation: models.Mutation{Method: models.MethodCreate, Category: models.Archived, Payload: models.Record{"reason": "old"}},
			wantErr:  ErrNoSource,
		},
	}

	v := NewInventoryValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.mutation)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateMutation_ScopedFields(t *testing.T) {
	v := NewInventoryValidator()
	m := models.Mutation{Method: models.MethodUpdate, Category: models.Located}

	assert.NoError(t, v.Validate(context.Background(), m, FieldMethod, FieldCategory))
	assert.ErrorIs(t, v.Validate(context.Background(), m, FieldID), ErrEmptyID)
	assert.ErrorIs(t, v.Validate(context.Background(), m, FieldMethod, "unknown"), ErrUnknownField)
}
