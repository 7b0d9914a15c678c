package utils

import "github.com/google/uuid"

// TraceIDGenerator produces request trace ids.
type TraceIDGenerator struct {
}

func NewTraceIDGenerator() *TraceIDGenerator {
	return &TraceIDGenerator{}
}

// Generate returns a time-ordered UUIDv7, falling back to a random v4.
func (g *TraceIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
