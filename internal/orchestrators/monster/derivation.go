package monster

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/MGX-LJY/kbxy-monsters-pro-sub000/internal/engine"
	"github.com/MGX-LJY/kbxy-monsters-pro-sub000/internal/entities"
	"github.com/MGX-LJY/kbxy-monsters-pro-sub000/internal/errors"
	monsterrepo "github.com/MGX-LJY/kbxy-monsters-pro-sub000/internal/repositories/monster"
	"github.com/MGX-LJY/kbxy-monsters-pro-sub000/internal/services/monster"
)

const defaultRecomputeConcurrency = 4

// recomputeResult carries the outcome of one derivation pass
type recomputeResult struct {
	Monster *entities.Monster
	Scores  *entities.DerivedScores
	Written bool
}

// recomputeAndLabel runs the extract, derive and classify stages over a
// snapshot of a monster and commits the deltas through a single Reconcile
// call. The repository rejects the commit with an Aborted error when the
// record moved past the snapshot in the meantime.
//
// Curated tags always survive: the merged tag set replaces only the
// engine-owned portion. Role handling follows mode, fill-blank only labels
// an empty role while overwrite always applies the suggestion.
// storedScores is the score set read alongside the snapshot, nil when the
// monster has never been derived.
func (o *Orchestrator) recomputeAndLabel(ctx context.Context, mon *entities.Monster, storedScores *entities.DerivedScores, mode monster.RoleMode) (*recomputeResult, error) {
	extractOutput, err := o.engine.ExtractSignals(ctx, &engine.ExtractSignalsInput{Monster: mon})
	if err != nil {
		return nil, errors.Wrap(err, "failed to extract signals")
	}

	deriveOutput, err := o.engine.DeriveScores(ctx, &engine.DeriveScoresInput{
		Monster: mon,
		Signals: extractOutput.Signals,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive scores")
	}

	tagsOutput, err := o.engine.SuggestTags(ctx, &engine.SuggestTagsInput{
		Monster: mon,
		Signals: extractOutput.Signals,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to suggest tags")
	}

	roleOutput, err := o.engine.SuggestRole(ctx, &engine.SuggestRoleInput{
		Monster: mon,
		Signals: extractOutput.Signals,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to suggest role")
	}

	newRole := mon.Role
	switch mode {
	case monster.RoleModeOverwrite:
		newRole = roleOutput.Role
	default:
		if mon.Role == "" {
			newRole = roleOutput.Role
		}
	}
	roleChanged := newRole != mon.Role

	newTags := entities.MergeTags(mon.Tags, tagsOutput.Tags)
	tagsChanged := !slices.Equal(newTags, mon.Tags)

	newScores := deriveOutput.Scores
	newScores.MonsterID = mon.ID
	newScores.ComputedAt = o.clock.Now().Unix()
	scoresChanged := storedScores == nil || !newScores.Equal(storedScores)

	var scoresDelta *entities.DerivedScores
	if scoresChanged {
		scoresDelta = newScores
	}

	reconcileOutput, err := o.monsterRepo.Reconcile(ctx, monsterrepo.ReconcileInput{
		MonsterID:         mon.ID,
		ExpectedUpdatedAt: mon.UpdatedAt,
		Role:              newRole,
		RoleChanged:       roleChanged,
		Tags:              newTags,
		TagsChanged:       tagsChanged,
		Scores:            scoresDelta,
		ScoresChanged:     scoresChanged,
		UpdatedAt:         o.clock.Now().Unix(),
	})
	if err != nil {
		// Keep the code intact, callers branch on Aborted
		return nil, err
	}

	resultScores := storedScores
	if scoresChanged {
		resultScores = newScores
	}

	return &recomputeResult{
		Monster: reconcileOutput.Monster,
		Scores:  resultScores,
		Written: reconcileOutput.Written,
	}, nil
}

// resolveRoleMode applies the fill-blank default and rejects unknown modes
func resolveRoleMode(mode monster.RoleMode) (monster.RoleMode, error) {
	switch mode {
	case "":
		return monster.RoleModeFillBlank, nil
	case monster.RoleModeFillBlank, monster.RoleModeOverwrite:
		return mode, nil
	default:
		return "", errors.InvalidArgumentf("unknown role mode %s", mode)
	}
}

// RecomputeMonster runs one derivation pass over a single monster and
// reports whether anything was written.
func (o *Orchestrator) RecomputeMonster(ctx context.Context, input *monster.RecomputeMonsterInput) (*monster.RecomputeMonsterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("monsterID", input.MonsterID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	mode, err := resolveRoleMode(input.RoleMode)
	if err != nil {
		return nil, err
	}

	getOutput, err := o.monsterRepo.Get(ctx, monsterrepo.GetInput{ID: input.MonsterID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get monster").
			WithMeta("monster_id", input.MonsterID)
	}

	result, err := o.recomputeAndLabel(ctx, getOutput.Monster, getOutput.Scores, mode)
	if err != nil {
		return nil, err
	}

	slog.Info("Monster recomputed",
		"monster_id", input.MonsterID,
		"mode", string(mode),
		"written", result.Written,
	)

	return &monster.RecomputeMonsterOutput{
		Monster: result.Monster,
		Scores:  result.Scores,
		Written: result.Written,
	}, nil
}

// RecomputeAll runs a derivation pass over every monster with a bounded
// worker pool. Per-monster failures are collected and reported, they never
// stop the run. Only context cancellation does.
func (o *Orchestrator) RecomputeAll(ctx context.Context, input *monster.RecomputeAllInput) (*monster.RecomputeAllOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	mode, err := resolveRoleMode(input.RoleMode)
	if err != nil {
		return nil, err
	}

	concurrency := input.Concurrency
	if concurrency <= 0 {
		concurrency = defaultRecomputeConcurrency
	}

	idsOutput, err := o.monsterRepo.ListIDs(ctx, monsterrepo.ListIDsInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list monster IDs")
	}

	var (
		mu        sync.Mutex
		processed int
		updated   int
		failures  []monster.RecomputeFailure
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for _, id := range idsOutput.IDs {
		id := id
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			recordFailure := func(err error) {
				mu.Lock()
				defer mu.Unlock()
				failures = append(failures, monster.RecomputeFailure{
					MonsterID: id,
					Code:      errors.GetCode(err).String(),
					Message:   errors.GetMessage(err),
				})
			}

			getOutput, err := o.monsterRepo.Get(gctx, monsterrepo.GetInput{ID: id})
			if err != nil {
				recordFailure(err)
				return nil
			}

			result, err := o.recomputeAndLabel(gctx, getOutput.Monster, getOutput.Scores, mode)
			if err != nil {
				recordFailure(err)
				return nil
			}

			mu.Lock()
			processed++
			if result.Written {
				updated++
			}
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "recompute run interrupted")
	}

	slog.Info("Recompute run finished",
		"mode", string(mode),
		"processed", processed,
		"updated", updated,
		"failed", len(failures),
	)

	return &monster.RecomputeAllOutput{
		Processed: processed,
		Updated:   updated,
		Failures:  failures,
	}, nil
}

// PreviewDerivation runs the full pipeline over a monster without writing
// anything, exposing the signals and pattern matches behind the suggestion.
func (o *Orchestrator) PreviewDerivation(ctx context.Context, input *monster.PreviewDerivationInput) (*monster.PreviewDerivationOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("monsterID", input.MonsterID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	getOutput, err := o.monsterRepo.Get(ctx, monsterrepo.GetInput{ID: input.MonsterID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get monster").
			WithMeta("monster_id", input.MonsterID)
	}
	mon := getOutput.Monster

	extractOutput, err := o.engine.ExtractSignals(ctx, &engine.ExtractSignalsInput{Monster: mon})
	if err != nil {
		return nil, errors.Wrap(err, "failed to extract signals")
	}

	deriveOutput, err := o.engine.DeriveScores(ctx, &engine.DeriveScoresInput{
		Monster: mon,
		Signals: extractOutput.Signals,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive scores")
	}

	tagsOutput, err := o.engine.SuggestTags(ctx, &engine.SuggestTagsInput{
		Monster: mon,
		Signals: extractOutput.Signals,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to suggest tags")
	}

	roleOutput, err := o.engine.SuggestRole(ctx, &engine.SuggestRoleInput{
		Monster: mon,
		Signals: extractOutput.Signals,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to suggest role")
	}

	scores := deriveOutput.Scores
	scores.MonsterID = mon.ID

	return &monster.PreviewDerivationOutput{
		Signals:       extractOutput.Signals,
		Matches:       extractOutput.Matches,
		Scores:        scores,
		SuggestedTags: tagsOutput.Tags,
		SuggestedRole: roleOutput.Role,
		RoleReason:    roleOutput.Reason,
	}, nil
}

// SuggestMonsterTags returns the engine tag suggestion for a stored monster
// without applying it.
func (o *Orchestrator) SuggestMonsterTags(ctx context.Context, input *monster.SuggestMonsterTagsInput) (*monster.SuggestMonsterTagsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("monsterID", input.MonsterID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	getOutput, err := o.monsterRepo.Get(ctx, monsterrepo.GetInput{ID: input.MonsterID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get monster").
			WithMeta("monster_id", input.MonsterID)
	}

	// Signals omitted, the engine extracts them itself
	tagsOutput, err := o.engine.SuggestTags(ctx, &engine.SuggestTagsInput{Monster: getOutput.Monster})
	if err != nil {
		return nil, errors.Wrap(err, "failed to suggest tags")
	}

	return &monster.SuggestMonsterTagsOutput{TagCodes: tagsOutput.Tags}, nil
}

// SuggestMonsterRole returns the engine role suggestion for a stored
// monster without applying it.
func (o *Orchestrator) SuggestMonsterRole(ctx context.Context, input *monster.SuggestMonsterRoleInput) (*monster.SuggestMonsterRoleOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("monsterID", input.MonsterID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	getOutput, err := o.monsterRepo.Get(ctx, monsterrepo.GetInput{ID: input.MonsterID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get monster").
			WithMeta("monster_id", input.MonsterID)
	}

	roleOutput, err := o.engine.SuggestRole(ctx, &engine.SuggestRoleInput{Monster: getOutput.Monster})
	if err != nil {
		return nil, errors.Wrap(err, "failed to suggest role")
	}

	return &monster.SuggestMonsterRoleOutput{
		Role:   roleOutput.Role,
		Reason: roleOutput.Reason,
	}, nil
}
