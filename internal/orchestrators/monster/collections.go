package monster

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/MGX-LJY/kbxy-monsters-pro-sub000/internal/entities"
	"github.com/MGX-LJY/kbxy-monsters-pro-sub000/internal/errors"
	collectionrepo "github.com/MGX-LJY/kbxy-monsters-pro-sub000/internal/repositories/collection"
	monsterrepo "github.com/MGX-LJY/kbxy-monsters-pro-sub000/internal/repositories/monster"
	"github.com/MGX-LJY/kbxy-monsters-pro-sub000/internal/services/monster"
)

// CreateCollection creates a new empty collection
func (o *Orchestrator) CreateCollection(ctx context.Context, input *monster.CreateCollectionInput) (*monster.CreateCollectionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", input.Name, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	now := o.clock.Now().Unix()
	col := &entities.Collection{
		ID:         o.collectionIDGen.Generate(),
		Name:       input.Name,
		Note:       input.Note,
		MonsterIDs: []string{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	createOutput, err := o.collectionRepo.Create(ctx, collectionrepo.CreateInput{Collection: col})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create collection")
	}

	slog.Info("Collection created",
		"collection_id", col.ID,
		"name", col.Name,
	)

	return &monster.CreateCollectionOutput{Collection: createOutput.Collection}, nil
}

// GetCollection returns a collection with its member monsters resolved in
// order. Members whose records are gone are skipped, not treated as errors.
func (o *Orchestrator) GetCollection(ctx context.Context, input *monster.GetCollectionInput) (*monster.GetCollectionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("collectionID", input.CollectionID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	getOutput, err := o.collectionRepo.Get(ctx, collectionrepo.GetInput{ID: input.CollectionID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get collection").
			WithMeta("collection_id", input.CollectionID)
	}
	col := getOutput.Collection

	members := make([]*entities.Monster, 0, len(col.MonsterIDs))
	for _, id := range col.MonsterIDs {
		memberOutput, err := o.monsterRepo.Get(ctx, monsterrepo.GetInput{ID: id})
		if err != nil {
			if errors.IsNotFound(err) {
				slog.Warn("Collection member no longer exists",
					"collection_id", col.ID,
					"monster_id", id,
				)
				continue
			}
			return nil, errors.Wrapf(err, "failed to resolve collection member").
				WithMeta("monster_id", id)
		}
		members = append(members, memberOutput.Monster)
	}

	return &monster.GetCollectionOutput{
		Collection: col,
		Members:    members,
	}, nil
}

// ListCollections returns all collections
func (o *Orchestrator) ListCollections(ctx context.Context, input *monster.ListCollectionsInput) (*monster.ListCollectionsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	listOutput, err := o.collectionRepo.List(ctx, collectionrepo.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list collections")
	}

	return &monster.ListCollectionsOutput{Collections: listOutput.Collections}, nil
}

// DeleteCollection removes a collection. Member monsters are untouched.
func (o *Orchestrator) DeleteCollection(ctx context.Context, input *monster.DeleteCollectionInput) (*monster.DeleteCollectionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("collectionID", input.CollectionID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	_, err := o.collectionRepo.Delete(ctx, collectionrepo.DeleteInput{ID: input.CollectionID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete collection").
			WithMeta("collection_id", input.CollectionID)
	}

	slog.Info("Collection deleted", "collection_id", input.CollectionID)

	return &monster.DeleteCollectionOutput{
		Message: fmt.Sprintf("Collection %s deleted", input.CollectionID),
	}, nil
}

// AddToCollection appends a monster to a collection. Adding a monster that
// is already a member is a no-op, member order is preserved.
func (o *Orchestrator) AddToCollection(ctx context.Context, input *monster.AddToCollectionInput) (*monster.AddToCollectionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("collectionID", input.CollectionID, vb)
	errors.ValidateRequired("monsterID", input.MonsterID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	// The monster has to exist before it can be a member
	if _, err := o.monsterRepo.Get(ctx, monsterrepo.GetInput{ID: input.MonsterID}); err != nil {
		return nil, errors.Wrapf(err, "failed to get monster").
			WithMeta("monster_id", input.MonsterID)
	}

	getOutput, err := o.collectionRepo.Get(ctx, collectionrepo.GetInput{ID: input.CollectionID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get collection").
			WithMeta("collection_id", input.CollectionID)
	}
	col := getOutput.Collection

	if col.Contains(input.MonsterID) {
		return &monster.AddToCollectionOutput{Collection: col}, nil
	}

	members := append(slices.Clone(col.MonsterIDs), input.MonsterID)

	setOutput, err := o.collectionRepo.SetMembers(ctx, collectionrepo.SetMembersInput{
		CollectionID:      col.ID,
		ExpectedUpdatedAt: col.UpdatedAt,
		MonsterIDs:        members,
		UpdatedAt:         o.clock.Now().Unix(),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to add monster to collection").
			WithMeta("collection_id", col.ID).
			WithMeta("monster_id", input.MonsterID)
	}

	slog.Info("Monster added to collection",
		"collection_id", col.ID,
		"monster_id", input.MonsterID,
		"members", len(members),
	)

	return &monster.AddToCollectionOutput{Collection: setOutput.Collection}, nil
}

// RemoveFromCollection drops a monster from a collection. Removing a
// monster that is not a member is a no-op.
func (o *Orchestrator) RemoveFromCollection(ctx context.Context, input *monster.RemoveFromCollectionInput) (*monster.RemoveFromCollectionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("collectionID", input.CollectionID, vb)
	errors.ValidateRequired("monsterID", input.MonsterID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	getOutput, err := o.collectionRepo.Get(ctx, collectionrepo.GetInput{ID: input.CollectionID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get collection").
			WithMeta("collection_id", input.CollectionID)
	}
	col := getOutput.Collection

	if !col.Contains(input.MonsterID) {
		return &monster.RemoveFromCollectionOutput{Collection: col}, nil
	}

	members := make([]string, 0, len(col.MonsterIDs)-1)
	for _, id := range col.MonsterIDs {
		if id != input.MonsterID {
			members = append(members, id)
		}
	}

	setOutput, err := o.collectionRepo.SetMembers(ctx, collectionrepo.SetMembersInput{
		CollectionID:      col.ID,
		ExpectedUpdatedAt: col.UpdatedAt,
		MonsterIDs:        members,
		UpdatedAt:         o.clock.Now().Unix(),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to remove monster from collection").
			WithMeta("collection_id", col.ID).
			WithMeta("monster_id", input.MonsterID)
	}

	slog.Info("Monster removed from collection",
		"collection_id", col.ID,
		"monster_id", input.MonsterID,
		"members", len(members),
	)

	return &monster.RemoveFromCollectionOutput{Collection: setOutput.Collection}, nil
}
