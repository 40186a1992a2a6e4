package utils

import "github.com/google/uuid"

// UUIDGenerator produces the trace identifiers attached to every request.
// V7 UUIDs are time-ordered, which keeps trace ids roughly sortable in log
// aggregation.
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
