// Package monster defines the interface for monster curation operations
package monster

//go:generate mockgen -destination=mock/mock_service.go -package=monstermock github.com/MGX-LJY/kbxy-monsters-pro-sub000/internal/services/monster Service

import (
	"context"

	"github.com/MGX-LJY/kbxy-monsters-pro-sub000/internal/engine"
	"github.com/MGX-LJY/kbxy-monsters-pro-sub000/internal/entities"
)

// RoleMode controls how a derivation pass treats the stored role label
type RoleMode string

const (
	// RoleModeFillBlank assigns the suggested role only when the stored role is empty
	RoleModeFillBlank RoleMode = "fill_blank"
	// RoleModeOverwrite always replaces the stored role with the suggestion
	RoleModeOverwrite RoleMode = "overwrite"
)

// Service defines the interface for monster curation operations
type Service interface {
	// Monster lifecycle
	CreateMonster(ctx context.Context, input *CreateMonsterInput) (*CreateMonsterOutput, error)
	GetMonster(ctx context.Context, input *GetMonsterInput) (*GetMonsterOutput, error)
	ListMonsters(ctx context.Context, input *ListMonstersInput) (*ListMonstersOutput, error)
	DeleteMonster(ctx context.Context, input *DeleteMonsterInput) (*DeleteMonsterOutput, error)

	// Section-based updates
	UpdateMonster(ctx context.Context, input *UpdateMonsterInput) (*UpdateMonsterOutput, error)
	UpdateAttributes(ctx context.Context, input *UpdateAttributesInput) (*UpdateAttributesOutput, error)
	UpdateSkills(ctx context.Context, input *UpdateSkillsInput) (*UpdateSkillsOutput, error)
	SetRole(ctx context.Context, input *SetRoleInput) (*SetRoleOutput, error)

	// Derivation and classification
	RecomputeMonster(ctx context.Context, input *RecomputeMonsterInput) (*RecomputeMonsterOutput, error)
	RecomputeAll(ctx context.Context, input *RecomputeAllInput) (*RecomputeAllOutput, error)
	PreviewDerivation(ctx context.Context, input *PreviewDerivationInput) (*PreviewDerivationOutput, error)
	SuggestMonsterTags(ctx context.Context, input *SuggestMonsterTagsInput) (*SuggestMonsterTagsOutput, error)
	SuggestMonsterRole(ctx context.Context, input *SuggestMonsterRoleInput) (*SuggestMonsterRoleOutput, error)

	// Import and seed
	ImportMonsters(ctx context.Context, input *ImportMonstersInput) (*ImportMonstersOutput, error)
	GenerateMonsters(ctx context.Context, input *GenerateMonstersInput) (*GenerateMonstersOutput, error)

	// Collections
	CreateCollection(ctx context.Context, input *CreateCollectionInput) (*CreateCollectionOutput, error)
	GetCollection(ctx context.Context, input *GetCollectionInput) (*GetCollectionOutput, error)
	ListCollections(ctx context.Context, input *ListCollectionsInput) (*ListCollectionsOutput, error)
	DeleteCollection(ctx context.Context, input *DeleteCollectionInput) (*DeleteCollectionOutput, error)
	AddToCollection(ctx context.Context, input *AddToCollectionInput) (*AddToCollectionOutput, error)
	RemoveFromCollection(ctx context.Context, input *RemoveFromCollectionInput) (*RemoveFromCollectionOutput, error)

	// Tag registry
	RegisterTag(ctx context.Context, input *RegisterTagInput) (*RegisterTagOutput, error)
	GetTag(ctx context.Context, input *GetTagInput) (*GetTagOutput, error)
	ListTags(ctx context.Context, input *ListTagsInput) (*ListTagsOutput, error)
	DeleteTag(ctx context.Context, input *DeleteTagInput) (*DeleteTagOutput, error)
	SeedTags(ctx context.Context, input *SeedTagsInput) (*SeedTagsOutput, error)
}

// Monster lifecycle types

// CreateMonsterInput defines the request for creating a monster
type CreateMonsterInput struct {
	Name       string
	Element    string
	Role       string   // Optional, validated against role constants when set
	Tags       []string // Curated tags only, engine-namespaced codes are rejected
	Attributes entities.Attributes
	Skills     []entities.Skill
}

// CreateMonsterOutput defines the response for creating a monster
type CreateMonsterOutput struct {
	Monster *entities.Monster
	Scores  *entities.DerivedScores
}

// GetMonsterInput defines the request for getting a monster
type GetMonsterInput struct {
	MonsterID string
}

// GetMonsterOutput defines the response for getting a monster
type GetMonsterOutput struct {
	Monster *entities.Monster
	Scores  *entities.DerivedScores
	// Healed is true when the read triggered a fill-blank derivation pass
	Healed bool
}

// ListMonstersInput defines the request for listing monsters
type ListMonstersInput struct {
	TagCode string // Optional filter
}

// ListMonstersOutput defines the response for listing monsters
type ListMonstersOutput struct {
	Monsters []*entities.Monster
}

// DeleteMonsterInput defines the request for deleting a monster
type DeleteMonsterInput struct {
	MonsterID string
}

// DeleteMonsterOutput defines the response for deleting a monster
type DeleteMonsterOutput struct {
	Message string
}

// Section update types

// UpdateMonsterInput defines the request for updating a monster's identity fields
type UpdateMonsterInput struct {
	MonsterID string
	Name      string
	Element   string
	// Tags replaces the curated (non-engine) tag set; engine-namespaced
	// codes are rejected and the stored engine portion is preserved.
	Tags []string
}

// UpdateMonsterOutput defines the response for updating a monster's identity fields
type UpdateMonsterOutput struct {
	Monster *entities.Monster
	Scores  *entities.DerivedScores
}

// UpdateAttributesInput defines the request for updating a monster's attributes
type UpdateAttributesInput struct {
	MonsterID  string
	Attributes entities.Attributes
}

// UpdateAttributesOutput defines the response for updating a monster's attributes
type UpdateAttributesOutput struct {
	Monster *entities.Monster
	Scores  *entities.DerivedScores
}

// UpdateSkillsInput defines the request for updating a monster's skill list
type UpdateSkillsInput struct {
	MonsterID string
	Skills    []entities.Skill
}

// UpdateSkillsOutput defines the response for updating a monster's skill list
type UpdateSkillsOutput struct {
	Monster *entities.Monster
	Scores  *entities.DerivedScores
}

// SetRoleInput defines the request for manually assigning a role label
type SetRoleInput struct {
	MonsterID string
	Role      string
}

// SetRoleOutput defines the response for manually assigning a role label
type SetRoleOutput struct {
	Monster *entities.Monster
}

// Derivation types

// RecomputeMonsterInput defines the request for recomputing one monster
type RecomputeMonsterInput struct {
	MonsterID string
	RoleMode  RoleMode // Defaults to RoleModeFillBlank
}

// RecomputeMonsterOutput defines the response for recomputing one monster
type RecomputeMonsterOutput struct {
	Monster *entities.Monster
	Scores  *entities.DerivedScores
	// Written is false when the pass produced no changes
	Written bool
}

// RecomputeAllInput defines the request for recomputing every monster
type RecomputeAllInput struct {
	RoleMode    RoleMode // Defaults to RoleModeFillBlank
	Concurrency int      // Worker limit, defaults to 4
}

// RecomputeAllOutput defines the response for recomputing every monster
type RecomputeAllOutput struct {
	Processed int
	Updated   int
	Failures  []RecomputeFailure
}

// RecomputeFailure records one monster that could not be recomputed
type RecomputeFailure struct {
	MonsterID string
	Code      string
	Message   string
}

// PreviewDerivationInput defines the request for previewing a derivation pass
type PreviewDerivationInput struct {
	MonsterID string
}

// PreviewDerivationOutput defines the response for previewing a derivation pass.
// Nothing is written; this is the debugging surface for the extractor.
type PreviewDerivationOutput struct {
	Signals       *engine.SignalVector
	Matches       []engine.PatternMatch
	Scores        *entities.DerivedScores
	SuggestedTags []string
	SuggestedRole string
	RoleReason    string
}

// SuggestMonsterTagsInput defines the request for suggesting engine tags
type SuggestMonsterTagsInput struct {
	MonsterID string
}

// SuggestMonsterTagsOutput defines the response for suggesting engine tags
type SuggestMonsterTagsOutput struct {
	TagCodes []string
}

// SuggestMonsterRoleInput defines the request for suggesting a role label
type SuggestMonsterRoleInput struct {
	MonsterID string
}

// SuggestMonsterRoleOutput defines the response for suggesting a role label
type SuggestMonsterRoleOutput struct {
	Role   string
	Reason string
}

// Import and seed types

// ImportMonstersInput defines the request for importing monsters from the bestiary source
type ImportMonstersInput struct {
	Limit int      // Caps the pull when Keys is empty, 0 means everything
	Keys  []string // Optional explicit source keys
}

// ImportMonstersOutput defines the response for importing monsters
type ImportMonstersOutput struct {
	Imported int
	Skipped  int
	Failures []ImportFailure
}

// ImportFailure records one source monster that could not be imported
type ImportFailure struct {
	Key     string
	Message string
}

// GenerateMonstersInput defines the request for generating demo monsters
type GenerateMonstersInput struct {
	Count int
}

// GenerateMonstersOutput defines the response for generating demo monsters
type GenerateMonstersOutput struct {
	Monsters []*entities.Monster
}

// Collection types

// CreateCollectionInput defines the request for creating a collection
type CreateCollectionInput struct {
	Name string
	Note string // Optional
}

// CreateCollectionOutput defines the response for creating a collection
type CreateCollectionOutput struct {
	Collection *entities.Collection
}

// GetCollectionInput defines the request for getting a collection
type GetCollectionInput struct {
	CollectionID string
}

// GetCollectionOutput defines the response for getting a collection
type GetCollectionOutput struct {
	Collection *entities.Collection
	Members    []*entities.Monster
}

// ListCollectionsInput defines the request for listing collections
type ListCollectionsInput struct {
	// Empty for now, can be extended later
}

// ListCollectionsOutput defines the response for listing collections
type ListCollectionsOutput struct {
	Collections []*entities.Collection
}

// DeleteCollectionInput defines the request for deleting a collection
type DeleteCollectionInput struct {
	CollectionID string
}

// DeleteCollectionOutput defines the response for deleting a collection
type DeleteCollectionOutput struct {
	Message string
}

// AddToCollectionInput defines the request for adding a monster to a collection
type AddToCollectionInput struct {
	CollectionID string
	MonsterID    string
}

// AddToCollectionOutput defines the response for adding a monster to a collection
type AddToCollectionOutput struct {
	Collection *entities.Collection
}

// RemoveFromCollectionInput defines the request for removing a monster from a collection
type RemoveFromCollectionInput struct {
	CollectionID string
	MonsterID    string
}

// RemoveFromCollectionOutput defines the response for removing a monster from a collection
type RemoveFromCollectionOutput struct {
	Collection *entities.Collection
}

// Tag registry types

// RegisterTagInput defines the request for registering a curated tag
type RegisterTagInput struct {
	Code    string
	Display string
	Note    string // Optional
}

// RegisterTagOutput defines the response for registering a curated tag
type RegisterTagOutput struct {
	Tag *entities.Tag
}

// GetTagInput defines the request for getting a tag registry entry
type GetTagInput struct {
	Code string
}

// GetTagOutput defines the response for getting a tag registry entry
type GetTagOutput struct {
	Tag *entities.Tag
}

// ListTagsInput defines the request for listing tag registry entries
type ListTagsInput struct {
	// Empty for now, can be extended later
}

// ListTagsOutput defines the response for listing tag registry entries
type ListTagsOutput struct {
	Tags []*entities.Tag
}

// DeleteTagInput defines the request for deleting a tag registry entry
type DeleteTagInput struct {
	Code string
}

// DeleteTagOutput defines the response for deleting a tag registry entry
type DeleteTagOutput struct {
	Message string
}

// SeedTagsInput defines the request for seeding the canonical engine tags
type SeedTagsInput struct {
	// Empty for now, can be extended later
}

// SeedTagsOutput defines the response for seeding the canonical engine tags
type SeedTagsOutput struct {
	Seeded int
}
