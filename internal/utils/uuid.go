package utils

import "github.com/google/uuid"

// UUIDGenerator produces unique string identifiers for request tracing and
// per-session CSRF values. It prefers time-ordered UUIDv7 and falls back to
// UUIDv4 if v7 generation fails.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
