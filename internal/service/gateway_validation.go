package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-inventory-keeper/internal/validators"
	"github.com/MKhiriev/go-inventory-keeper/models"
)

// InventoryGatewayWrapper defines middleware composition for
// InventoryGateway. Implementations wrap an existing gateway to add behavior
// such as validation.
type InventoryGatewayWrapper interface {
	Wrap(InventoryGateway) InventoryGateway // returns a decorated InventoryGateway applying additional behavior
}

// GatewayValidationService rejects malformed queries and mutations before
// they reach the wrapped gateway, so nothing invalid is ever sent or queued.
type GatewayValidationService struct {
	inner     InventoryGateway
	validator validators.Validator
}

// NewGatewayValidationService returns a wrapper validating with the
// inventory validator.
func NewGatewayValidationService() InventoryGatewayWrapper {
	return &GatewayValidationService{
		validator: validators.NewInventoryValidator(),
	}
}

func (v *GatewayValidationService) Wrap(inner InventoryGateway) InventoryGateway {
	v.inner = inner
	return v
}

func (v *GatewayValidationService) List(ctx context.Context, q models.Query) (models.Page, error) {
	if err := v.validator.Validate(ctx, q); err != nil {
		return models.Page{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.List(ctx, q)
}

func (v *GatewayValidationService) Detail(ctx context.Context, category models.Category, id string) (models.Record, error) {
	m := models.Mutation{Method: models.MethodDelete, Category: category, ID: id}
	if err := v.validator.Validate(ctx, m, validators.FieldCategory, validators.FieldID); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.Detail(ctx, category, id)
}

func (v *GatewayValidationService) Filters(ctx context.Context) (models.FilterOptions, error) {
	return v.inner.Filters(ctx)
}

func (v *GatewayValidationService) Locations(ctx context.Context, serial string) (models.MachineLocations, error) {
	return v.inner.Locations(ctx, serial)
}

func (v *GatewayValidationService) Create(ctx context.Context, category models.Category, item models.Record) (models.Ack, error) {
	if err := v.validate(ctx, models.Mutation{Method: models.MethodCreate, Category: category, Payload: item}); err != nil {
		return models.Ack{}, err
	}
	return v.inner.Create(ctx, category, item)
}

func (v *GatewayValidationService) Update(ctx context.Context, category models.Category, id string, patch models.Record) (models.Ack, error) {
	if err := v.validate(ctx, models.Mutation{Method: models.MethodUpdate, Category: category, ID: id, Payload: patch}); err != nil {
		return models.Ack{}, err
	}
	return v.inner.Update(ctx, category, id, patch)
}

func (v *GatewayValidationService) Delete(ctx context.Context, category models.Category, id string) (models.Ack, error) {
	if err := v.validate(ctx, models.Mutation{Method: models.MethodDelete, Category: category, ID: id}); err != nil {
		return models.Ack{}, err
	}
	return v.inner.Delete(ctx, category, id)
}

func (v *GatewayValidationService) Archive(ctx context.Context, id string, payload models.Record) (models.Ack, error) {
	if err := v.validateMove(ctx, id); err != nil {
		return models.Ack{}, err
	}
	return v.inner.Archive(ctx, id, payload)
}

func (v *GatewayValidationService) Sell(ctx context.Context, id string, payload models.Record) (models.Ack, error) {
	if err := v.validateMove(ctx, id); err != nil {
		return models.Ack{}, err
	}
	return v.inner.Sell(ctx, id, payload)
}

func (v *GatewayValidationService) validate(ctx context.Context, m models.Mutation) error {
	if err := v.validator.Validate(ctx, m); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return nil
}

// validateMove checks the located machine a move starts from.
func (v *GatewayValidationService) validateMove(ctx context.Context, id string) error {
	return v.validate(ctx, models.Mutation{Method: models.MethodDelete, Category: models.Located, ID: id})
}
