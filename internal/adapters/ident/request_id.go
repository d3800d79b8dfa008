// Package ident generates identifiers for records created at the desk.
package ident

import (
	"strings"

	"github.com/google/uuid"

	"github.com/example/desk/internal/ports/secondary"
)

const requestIDLength = 8

// UUIDGenerator implements secondary.RequestIDGenerator with random UUIDs,
// shortened to their first eight hex digits.
type UUIDGenerator struct{}

// NewUUIDGenerator creates a new UUIDGenerator.
func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// NextRequestID returns a short upper-case id such as "3F2504E0".
func (g *UUIDGenerator) NextRequestID() string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return strings.ToUpper(id[:requestIDLength])
}

// Ensure UUIDGenerator implements the interface
var _ secondary.RequestIDGenerator = (*UUIDGenerator)(nil)
