package domain

import "github.com/google/uuid"

// NewID generates a UUIDv7 string for application-owned entities.
func NewID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// ValidID reports whether s is a syntactically valid UUID. Path parameters
// that fail this check are rejected before any ownership lookup runs.
func ValidID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
