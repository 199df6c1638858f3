// Package monster provides the interface for monster persistence
package monster

//go:generate mockgen -destination=mock/mock_repository.go -package=monstermock github.com/MGX-LJY/kbxy-monsters-pro-sub000/internal/repositories/monster Repository

import (
	"context"

	"github.com/MGX-LJY/kbxy-monsters-pro-sub000/internal/entities"
)

// Repository defines the interface for monster persistence. A monster record
// and its derived scores are one aggregate: Reconcile commits a derivation
// pass over both atomically.
type Repository interface {
	// Create creates a new monster record and its tag index entries
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if a monster with the same ID exists
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a monster by ID along with its derived scores.
	// Scores is nil when no derivation has been committed yet.
	// Returns errors.InvalidArgument for empty/invalid IDs
	// Returns errors.NotFound if monster doesn't exist
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces an existing monster record and maintains the tag indexes
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.NotFound if monster doesn't exist
	// Returns errors.Internal for storage failures
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes a monster, its derived scores, and its index entries
	// Returns errors.InvalidArgument for empty/invalid IDs
	// Returns errors.NotFound if monster doesn't exist
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// List retrieves all monsters sorted by name then ID
	// Returns errors.Internal for storage failures
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// ListByTag retrieves all monsters carrying the given tag code
	// Returns errors.InvalidArgument for empty tag codes
	// Returns errors.Internal for storage failures
	ListByTag(ctx context.Context, input ListByTagInput) (*ListByTagOutput, error)

	// ListIDs retrieves all monster IDs sorted ascending
	// Returns errors.Internal for storage failures
	ListIDs(ctx context.Context, input ListIDsInput) (*ListIDsOutput, error)

	// Reconcile commits the outcome of a derivation pass. It watches the
	// monster key, verifies the record still carries ExpectedUpdatedAt, and
	// writes exactly the changed pieces in one transaction. A reconcile with
	// no changed pieces performs no writes.
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.NotFound if monster doesn't exist
	// Returns errors.Aborted if the record changed since the snapshot was taken
	// Returns errors.Internal for storage failures
	Reconcile(ctx context.Context, input ReconcileInput) (*ReconcileOutput, error)
}

// CreateInput defines the input for creating a monster
type CreateInput struct {
	Monster *entities.Monster
}

// CreateOutput defines the output for creating a monster
type CreateOutput struct {
	Monster *entities.Monster
}

// GetInput defines the input for getting a monster
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a monster
type GetOutput struct {
	Monster *entities.Monster
	Scores  *entities.DerivedScores
}

// UpdateInput defines the input for updating a monster
type UpdateInput struct {
	Monster *entities.Monster
}

// UpdateOutput defines the output for updating a monster
type UpdateOutput struct {
	Monster *entities.Monster
}

// DeleteInput defines the input for deleting a monster
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a monster
type DeleteOutput struct {
	// Empty for now, can be extended later
}

// ListInput defines the input for listing all monsters
type ListInput struct {
	// Empty for now, can be extended later
}

// ListOutput defines the output for listing all monsters
type ListOutput struct {
	Monsters []*entities.Monster
}

// ListByTagInput defines the input for listing monsters by tag code
type ListByTagInput struct {
	TagCode string
}

// ListByTagOutput defines the output for listing monsters by tag code
type ListByTagOutput struct {
	Monsters []*entities.Monster
}

// ListIDsInput defines the input for listing monster IDs
type ListIDsInput struct {
	// Empty for now, can be extended later
}

// ListIDsOutput defines the output for listing monster IDs
type ListIDsOutput struct {
	IDs []string
}

// ReconcileInput carries the deltas of one derivation pass. ExpectedUpdatedAt
// is the UpdatedAt the caller read when it snapshotted the monster; the write
// aborts if the stored record no longer carries it. Only pieces whose Changed
// flag is set are written. UpdatedAt is the new record timestamp, used only
// when the record itself changes (role or tags).
type ReconcileInput struct {
	MonsterID         string
	ExpectedUpdatedAt int64

	Role        string
	RoleChanged bool

	Tags        []string
	TagsChanged bool

	Scores        *entities.DerivedScores
	ScoresChanged bool

	UpdatedAt int64
}

// ReconcileOutput defines the output for a reconcile
type ReconcileOutput struct {
	Monster *entities.Monster
	Scores  *entities.DerivedScores
	// Written is false when the reconcile found nothing to change
	Written bool
}
