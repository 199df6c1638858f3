// Package tag provides the interface for tag registry persistence
package tag

//go:generate mockgen -destination=mock/mock_repository.go -package=tagmock github.com/MGX-LJY/kbxy-monsters-pro-sub000/internal/repositories/tag Repository

import (
	"context"

	"github.com/MGX-LJY/kbxy-monsters-pro-sub000/internal/entities"
)

// Repository defines the interface for tag registry persistence. The registry
// holds tag metadata only; tag codes carried on monsters are plain strings
// and are never validated against it.
type Repository interface {
	// Create registers a new tag
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if a tag with the same code exists
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a tag by code
	// Returns errors.InvalidArgument for empty codes
	// Returns errors.NotFound if tag doesn't exist
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// List retrieves all registered tags sorted by code
	// Returns errors.Internal for storage failures
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Delete removes a tag from the registry. Monsters carrying the code
	// keep it; only the metadata entry goes away.
	// Returns errors.InvalidArgument for empty codes
	// Returns errors.NotFound if tag doesn't exist
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// Seed upserts the given tags, typically the engine-owned vocabulary
	// Returns errors.Internal for storage failures
	Seed(ctx context.Context, input SeedInput) (*SeedOutput, error)
}

// CreateInput defines the input for registering a tag
type CreateInput struct {
	Tag *entities.Tag
}

// CreateOutput defines the output for registering a tag
type CreateOutput struct {
	Tag *entities.Tag
}

// GetInput defines the input for getting a tag
type GetInput struct {
	Code string
}

// GetOutput defines the output for getting a tag
type GetOutput struct {
	Tag *entities.Tag
}

// ListInput defines the input for listing tags
type ListInput struct {
	// Empty for now, can be extended later
}

// ListOutput defines the output for listing tags
type ListOutput struct {
	Tags []*entities.Tag
}

// DeleteInput defines the input for deleting a tag
type DeleteInput struct {
	Code string
}

// DeleteOutput defines the output for deleting a tag
type DeleteOutput struct {
	// Empty for now, can be extended later
}

// SeedInput defines the input for seeding tags
type SeedInput struct {
	Tags []*entities.Tag
}

// SeedOutput defines the output for seeding tags
type SeedOutput struct {
	// Seeded is the number of tags written
	Seeded int
}
