package id

import "github.com/google/uuid"

// Generator creates opaque IDs for new entities.
type Generator interface {
	NewID() string
}

type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// Fixed returns the same ID every call. Test helper.
type Fixed string

func (f Fixed) NewID() string {
	return string(f)
}
