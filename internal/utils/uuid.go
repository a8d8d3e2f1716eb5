package utils

import "github.com/google/uuid"

// UUIDGenerator produces random version 4 UUID strings.
// It is used both for bearer tokens and for request trace IDs.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a new random UUID in canonical textual form.
// uuid.NewString panics only if the system randomness source fails.
func (g *UUIDGenerator) Generate() string {
	return uuid.NewString()
}
