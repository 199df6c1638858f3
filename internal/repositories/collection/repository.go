// Package collection provides the interface for collection persistence
package collection

//go:generate mockgen -destination=mock/mock_repository.go -package=collectionmock github.com/MGX-LJY/kbxy-monsters-pro-sub000/internal/repositories/collection Repository

import (
	"context"

	"github.com/MGX-LJY/kbxy-monsters-pro-sub000/internal/entities"
)

// Repository defines the interface for collection persistence
type Repository interface {
	// Create creates a new collection
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if a collection with the same ID exists
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a collection by ID
	// Returns errors.InvalidArgument for empty/invalid IDs
	// Returns errors.NotFound if collection doesn't exist
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// List retrieves all collections sorted by name then ID
	// Returns errors.Internal for storage failures
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Delete deletes a collection by ID. Member monsters are untouched.
	// Returns errors.InvalidArgument for empty/invalid IDs
	// Returns errors.NotFound if collection doesn't exist
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// SetMembers replaces a collection's ordered member list. The write is
	// guarded the same way a monster reconcile is: it aborts when the stored
	// record no longer carries ExpectedUpdatedAt.
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.NotFound if collection doesn't exist
	// Returns errors.Aborted if the collection changed since it was read
	// Returns errors.Internal for storage failures
	SetMembers(ctx context.Context, input SetMembersInput) (*SetMembersOutput, error)
}

// CreateInput defines the input for creating a collection
type CreateInput struct {
	Collection *entities.Collection
}

// CreateOutput defines the output for creating a collection
type CreateOutput struct {
	Collection *entities.Collection
}

// GetInput defines the input for getting a collection
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a collection
type GetOutput struct {
	Collection *entities.Collection
}

// ListInput defines the input for listing collections
type ListInput struct {
	// Empty for now, can be extended later
}

// ListOutput defines the output for listing collections
type ListOutput struct {
	Collections []*entities.Collection
}

// DeleteInput defines the input for deleting a collection
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a collection
type DeleteOutput struct {
	// Empty for now, can be extended later
}

// SetMembersInput defines the input for replacing a collection's members
type SetMembersInput struct {
	CollectionID      string
	ExpectedUpdatedAt int64
	MonsterIDs        []string
	UpdatedAt         int64
}

// SetMembersOutput defines the output for replacing a collection's members
type SetMembersOutput struct {
	Collection *entities.Collection
}
