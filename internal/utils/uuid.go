package utils

import "github.com/google/uuid"

// UUIDGenerator hands out time-ordered identifiers. Lock tokens, upload task
// IDs and placeholder remote IDs all come from here.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator { return new(UUIDGenerator) }

// Generate returns a UUIDv7, or a random v4 when the v7 source fails.
func (*UUIDGenerator) Generate() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.New().String()
}
