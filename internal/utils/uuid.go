package utils

import "github.com/google/uuid"

// UUIDGenerator produces globally unique, opaque identifiers for session
// ids, password-reset ids and reset keys.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7 string; time-ordered ids keep btree indexes
// append-mostly. Falls back to a random v4 if v7 generation fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
