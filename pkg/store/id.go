package store

import "github.com/google/uuid"

// NewID returns an opaque string id for a new document.
func NewID() string {
	return uuid.NewString()
}
