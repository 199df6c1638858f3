// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"

	"go.uber.org/mock/gomock"

	"github.com/MGX-LJY/kbxy-monsters-pro-sub000/internal/engine"
	enginemock "github.com/MGX-LJY/kbxy-monsters-pro-sub000/internal/engine/mock"
	"github.com/MGX-LJY/kbxy-monsters-pro-sub000/internal/entities"
	"github.com/MGX-LJY/kbxy-monsters-pro-sub000/internal/errors"
	monsterrepo "github.com/MGX-LJY/kbxy-monsters-pro-sub000/internal/repositories/monster"
	monsterrepomock "github.com/MGX-LJY/kbxy-monsters-pro-sub000/internal/repositories/monster/mock"
)

// ExpectMonsterGet sets up a mock expectation for reading a monster along
// with its stored scores
func ExpectMonsterGet(
	ctx context.Context, mockRepo *monsterrepomock.MockRepository,
	monsterID string, mon *entities.Monster, scores *entities.DerivedScores, err error,
) {
	mockRepo.EXPECT().
		Get(ctx, monsterrepo.GetInput{ID: monsterID}).
		Return(&monsterrepo.GetOutput{Monster: mon, Scores: scores}, err)
}

// ExpectMonsterCreate sets up a create expectation that echoes the record
// back the way the repository does
func ExpectMonsterCreate(ctx context.Context, mockRepo *monsterrepomock.MockRepository) *gomock.Call {
	return mockRepo.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input monsterrepo.CreateInput) (*monsterrepo.CreateOutput, error) {
			return &monsterrepo.CreateOutput{Monster: input.Monster}, nil
		})
}

// ExpectMonsterUpdate sets up an update expectation that echoes the record
// back the way the repository does
func ExpectMonsterUpdate(ctx context.Context, mockRepo *monsterrepomock.MockRepository) *gomock.Call {
	return mockRepo.EXPECT().
		Update(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input monsterrepo.UpdateInput) (*monsterrepo.UpdateOutput, error) {
			return &monsterrepo.UpdateOutput{Monster: input.Monster}, nil
		})
}

// ExpectMonsterListIDs sets up a mock expectation for listing monster IDs
func ExpectMonsterListIDs(
	ctx context.Context, mockRepo *monsterrepomock.MockRepository,
	ids []string, err error,
) {
	mockRepo.EXPECT().
		ListIDs(ctx, monsterrepo.ListIDsInput{}).
		Return(&monsterrepo.ListIDsOutput{IDs: ids}, err)
}

// ExpectReconcile sets up a reconcile expectation that behaves like the
// repository: it enforces the UpdatedAt guard, applies the deltas to base,
// and reports whether anything was written.
func ExpectReconcile(ctx context.Context, mockRepo *monsterrepomock.MockRepository, base *entities.Monster) *gomock.Call {
	return mockRepo.EXPECT().
		Reconcile(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input monsterrepo.ReconcileInput) (*monsterrepo.ReconcileOutput, error) {
			if input.ExpectedUpdatedAt != base.UpdatedAt {
				return nil, errors.Abortedf("monster %s was modified during the derivation pass", input.MonsterID)
			}
			if !input.RoleChanged && !input.TagsChanged && !input.ScoresChanged {
				return &monsterrepo.ReconcileOutput{Monster: base, Written: false}, nil
			}

			updated := *base
			if input.RoleChanged {
				updated.Role = input.Role
			}
			if input.TagsChanged {
				updated.Tags = input.Tags
			}
			if input.RoleChanged || input.TagsChanged {
				updated.UpdatedAt = input.UpdatedAt
			}
			return &monsterrepo.ReconcileOutput{Monster: &updated, Scores: input.Scores, Written: true}, nil
		})
}

// ExpectDerivationPass sets up the full extract, derive and classify chain
// over one monster snapshot. The scores value is returned with MonsterID and
// ComputedAt unset, the orchestrator stamps those itself.
func ExpectDerivationPass(
	ctx context.Context, mockEngine *enginemock.MockEngine,
	mon *entities.Monster, signals *engine.SignalVector,
	scores *entities.DerivedScores, tags []string, role, reason string,
) {
	mockEngine.EXPECT().
		ExtractSignals(ctx, &engine.ExtractSignalsInput{Monster: mon}).
		Return(&engine.ExtractSignalsOutput{Signals: signals}, nil)

	mockEngine.EXPECT().
		DeriveScores(ctx, &engine.DeriveScoresInput{Monster: mon, Signals: signals}).
		Return(&engine.DeriveScoresOutput{Scores: scores}, nil)

	mockEngine.EXPECT().
		SuggestTags(ctx, &engine.SuggestTagsInput{Monster: mon, Signals: signals}).
		Return(&engine.SuggestTagsOutput{Tags: tags}, nil)

	mockEngine.EXPECT().
		SuggestRole(ctx, &engine.SuggestRoleInput{Monster: mon, Signals: signals}).
		Return(&engine.SuggestRoleOutput{Role: role, Reason: reason}, nil)
}
