package utils

import (
	"github.com/MKhiriev/go-inventory-keeper/models"
	"github.com/google/uuid"
)

// UUIDGenerator produces time-ordered identifiers for outbox operations and
// temporary record ids.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7 string, falling back to a random UUIDv4 when the
// clock source fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// TempID returns an identifier for a record that has not been confirmed by
// the server yet.
func (g *UUIDGenerator) TempID() string {
	return models.TempIDPrefix + g.Generate()
}
