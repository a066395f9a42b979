package pkg

import "github.com/google/uuid"

// NewID is the single identifier factory for every aggregate. Centralized so
// the generation scheme can change without touching use cases.
func NewID() string {
	return uuid.NewString()
}
