package model

import (
	"context"
	"errors"
)

var (
	ErrNotFound      = errors.New("check record not found")
	ErrAlreadyExists = errors.New("check record already exists")
)

// CheckRepository defines the interface for storing and retrieving check records
type CheckRepository interface {
	// Store saves a check record
	Store(ctx context.Context, record *CheckRecord) error

	// Get retrieves a check record by word and check key (the composite key)
	Get(ctx context.Context, word, checkKey string) (*CheckRecord, error)

	// List retrieves all check records
	List(ctx context.Context) ([]*CheckRecord, error)

	// Delete removes a check record by word and check key (the composite key)
	Delete(ctx context.Context, word, checkKey string) error

	// UnconditionalDelete removes a check record without requiring it to exist
	UnconditionalDelete(ctx context.Context, word, checkKey string) error
}
