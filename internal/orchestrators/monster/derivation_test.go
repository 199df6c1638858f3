package monster_test

import (
	"context"

	"go.uber.org/mock/gomock"

	"github.com/MGX-LJY/kbxy-monsters-pro-sub000/internal/engine"
	"github.com/MGX-LJY/kbxy-monsters-pro-sub000/internal/entities"
	"github.com/MGX-LJY/kbxy-monsters-pro-sub000/internal/errors"
	monsterrepo "github.com/MGX-LJY/kbxy-monsters-pro-sub000/internal/repositories/monster"
	monstersvc "github.com/MGX-LJY/kbxy-monsters-pro-sub000/internal/services/monster"
	"github.com/MGX-LJY/kbxy-monsters-pro-sub000/internal/testutils/builders"
	"github.com/MGX-LJY/kbxy-monsters-pro-sub000/internal/testutils/mocks"
)

func (s *OrchestratorTestSuite) TestRecomputeMonster_FillBlankKeepsManualRole() {
	existing := builders.NewMonsterBuilder().
		WithID("mon_123").
		WithRole(entities.RoleTank).
		WithTags(entities.TagBulwark).
		WithTimestamps(1000, 1000).
		Build()
	storedScores := &entities.DerivedScores{
		MonsterID: "mon_123", Offense: 40, Survive: 100, Control: 0, Tempo: 30, PPPressure: 0,
		ComputedAt: 1000,
	}

	mocks.ExpectMonsterGet(s.ctx, s.mockMonsterRepo, "mon_123", existing, storedScores, nil)

	signals := &engine.SignalVector{Shield: true}
	newScores := &entities.DerivedScores{Offense: 40, Survive: 100, Control: 0, Tempo: 30, PPPressure: 0}
	// The engine disagrees with the manual label, fill-blank must not care
	mocks.ExpectDerivationPass(s.ctx, s.mockEngine, existing, signals, newScores,
		[]string{entities.TagBulwark}, entities.RoleAttacker, "offense leads")
	mocks.ExpectReconcile(s.ctx, s.mockMonsterRepo, existing)

	output, err := s.orchestrator.RecomputeMonster(s.ctx, &monstersvc.RecomputeMonsterInput{
		MonsterID: "mon_123",
	})

	s.NoError(err)
	s.Require().NotNil(output)
	s.False(output.Written)
	s.Equal(entities.RoleTank, output.Monster.Role)
	s.Equal(int64(1000), output.Monster.UpdatedAt)
	s.Equal(storedScores, output.Scores)
}

func (s *OrchestratorTestSuite) TestRecomputeMonster_OverwriteAppliesSuggestion() {
	existing := builders.NewMonsterBuilder().
		WithID("mon_123").
		WithRole(entities.RoleTank).
		WithTags(entities.TagBulwark).
		WithTimestamps(1000, 1000).
		Build()
	storedScores := &entities.DerivedScores{
		MonsterID: "mon_123", Offense: 40, Survive: 100, Control: 0, Tempo: 30, PPPressure: 0,
		ComputedAt: 1000,
	}

	mocks.ExpectMonsterGet(s.ctx, s.mockMonsterRepo, "mon_123", existing, storedScores, nil)

	signals := &engine.SignalVector{Shield: true}
	newScores := &entities.DerivedScores{Offense: 40, Survive: 100, Control: 0, Tempo: 30, PPPressure: 0}
	mocks.ExpectDerivationPass(s.ctx, s.mockEngine, existing, signals, newScores,
		[]string{entities.TagBulwark}, entities.RoleAttacker, "offense leads")
	mocks.ExpectReconcile(s.ctx, s.mockMonsterRepo, existing)

	output, err := s.orchestrator.RecomputeMonster(s.ctx, &monstersvc.RecomputeMonsterInput{
		MonsterID: "mon_123",
		RoleMode:  monstersvc.RoleModeOverwrite,
	})

	s.NoError(err)
	s.Require().NotNil(output)
	s.True(output.Written)
	s.Equal(entities.RoleAttacker, output.Monster.Role)
	s.Equal(fixedTime.Unix(), output.Monster.UpdatedAt)
}

func (s *OrchestratorTestSuite) TestRecomputeMonster_UnknownMode() {
	output, err := s.orchestrator.RecomputeMonster(s.ctx, &monstersvc.RecomputeMonsterInput{
		MonsterID: "mon_123",
		RoleMode:  "freestyle",
	})

	s.Error(err)
	s.Nil(output)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "unknown role mode")
}

func (s *OrchestratorTestSuite) TestRecomputeMonster_AbortedPropagates() {
	existing := builders.NewMonsterBuilder().
		WithID("mon_123").
		WithRole(entities.RoleTank).
		WithTags(entities.TagBulwark).
		WithTimestamps(1000, 1000).
		Build()

	mocks.ExpectMonsterGet(s.ctx, s.mockMonsterRepo, "mon_123", existing, nil, nil)

	signals := &engine.SignalVector{}
	newScores := &entities.DerivedScores{Offense: 40, Survive: 100, Control: 0, Tempo: 30, PPPressure: 0}
	mocks.ExpectDerivationPass(s.ctx, s.mockEngine, existing, signals, newScores,
		[]string{entities.TagBulwark}, entities.RoleTank, "bulk leads")

	s.mockMonsterRepo.EXPECT().
		Reconcile(s.ctx, gomock.Any()).
		Return(nil, errors.Aborted("monster mon_123 was modified during the derivation pass"))

	output, err := s.orchestrator.RecomputeMonster(s.ctx, &monstersvc.RecomputeMonsterInput{
		MonsterID: "mon_123",
	})

	s.Error(err)
	s.Nil(output)
	s.True(errors.IsAborted(err))
}

func (s *OrchestratorTestSuite) TestRecomputeAll_CollectsFailures() {
	// Worker goroutines run with an errgroup-derived context, so every
	// expectation inside the pool matches on any context.
	mocks.ExpectMonsterListIDs(s.ctx, s.mockMonsterRepo, []string{"mon_1", "mon_2", "mon_404"}, nil)

	m1 := builders.NewMonsterBuilder().
		WithID("mon_1").
		WithTimestamps(1000, 1000).
		Build()
	m1.Tags = nil
	m2 := builders.NewMonsterBuilder().
		WithID("mon_2").
		WithRole(entities.RoleTank).
		WithTags(entities.TagBulwark).
		WithTimestamps(1000, 1000).
		Build()
	m2Scores := &entities.DerivedScores{
		MonsterID: "mon_2", Offense: 40, Survive: 100, Control: 0, Tempo: 30, PPPressure: 0,
		ComputedAt: 1000,
	}

	s.mockMonsterRepo.EXPECT().
		Get(gomock.Any(), monsterrepo.GetInput{ID: "mon_1"}).
		Return(&monsterrepo.GetOutput{Monster: m1}, nil)
	s.mockMonsterRepo.EXPECT().
		Get(gomock.Any(), monsterrepo.GetInput{ID: "mon_2"}).
		Return(&monsterrepo.GetOutput{Monster: m2, Scores: m2Scores}, nil)
	s.mockMonsterRepo.EXPECT().
		Get(gomock.Any(), monsterrepo.GetInput{ID: "mon_404"}).
		Return(nil, errors.NotFound("monster with ID mon_404 not found"))

	signals := &engine.SignalVector{}
	expectPass := func(mon *entities.Monster, scores *entities.DerivedScores, tags []string, role string) {
		s.mockEngine.EXPECT().
			ExtractSignals(gomock.Any(), &engine.ExtractSignalsInput{Monster: mon}).
			Return(&engine.ExtractSignalsOutput{Signals: signals}, nil)
		s.mockEngine.EXPECT().
			DeriveScores(gomock.Any(), &engine.DeriveScoresInput{Monster: mon, Signals: signals}).
			Return(&engine.DeriveScoresOutput{Scores: scores}, nil)
		s.mockEngine.EXPECT().
			SuggestTags(gomock.Any(), &engine.SuggestTagsInput{Monster: mon, Signals: signals}).
			Return(&engine.SuggestTagsOutput{Tags: tags}, nil)
		s.mockEngine.EXPECT().
			SuggestRole(gomock.Any(), &engine.SuggestRoleInput{Monster: mon, Signals: signals}).
			Return(&engine.SuggestRoleOutput{Role: role, Reason: "test"}, nil)
	}

	expectPass(m1, &entities.DerivedScores{Offense: 70, Survive: 30, Control: 0, Tempo: 40, PPPressure: 0},
		nil, entities.RoleAttacker)
	expectPass(m2, &entities.DerivedScores{Offense: 40, Survive: 100, Control: 0, Tempo: 30, PPPressure: 0},
		[]string{entities.TagBulwark}, entities.RoleTank)

	s.mockMonsterRepo.EXPECT().
		Reconcile(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input monsterrepo.ReconcileInput) (*monsterrepo.ReconcileOutput, error) {
			switch input.MonsterID {
			case "mon_1":
				// Role fill plus first scores
				updated := *m1
				updated.Role = input.Role
				updated.UpdatedAt = input.UpdatedAt
				return &monsterrepo.ReconcileOutput{Monster: &updated, Scores: input.Scores, Written: true}, nil
			case "mon_2":
				return &monsterrepo.ReconcileOutput{Monster: m2, Written: false}, nil
			default:
				return nil, errors.Internalf("unexpected reconcile for %s", input.MonsterID)
			}
		}).
		Times(2)

	output, err := s.orchestrator.RecomputeAll(s.ctx, &monstersvc.RecomputeAllInput{
		Concurrency: 2,
	})

	s.NoError(err)
	s.Require().NotNil(output)
	s.Equal(2, output.Processed)
	s.Equal(1, output.Updated)
	s.Require().Len(output.Failures, 1)
	s.Equal("mon_404", output.Failures[0].MonsterID)
	s.Equal("NOT_FOUND", output.Failures[0].Code)
	s.Contains(output.Failures[0].Message, "mon_404")
}

func (s *OrchestratorTestSuite) TestPreviewDerivation_WritesNothing() {
	existing := builders.NewMonsterBuilder().
		WithID("mon_123").
		WithSkill("冰封", "法术", 95, "有几率冰冻对方").
		Build()

	mocks.ExpectMonsterGet(s.ctx, s.mockMonsterRepo, "mon_123", existing, nil, nil)

	signals := &engine.SignalVector{HardCCCount: 1}
	matches := []engine.PatternMatch{
		{Signal: "hard_cc", Skill: "冰封", Keyword: "冰冻"},
	}
	s.mockEngine.EXPECT().
		ExtractSignals(s.ctx, &engine.ExtractSignalsInput{Monster: existing}).
		Return(&engine.ExtractSignalsOutput{Signals: signals, Matches: matches}, nil)
	s.mockEngine.EXPECT().
		DeriveScores(s.ctx, &engine.DeriveScoresInput{Monster: existing, Signals: signals}).
		Return(&engine.DeriveScoresOutput{
			Scores: &entities.DerivedScores{Offense: 60, Survive: 30, Control: 55, Tempo: 40, PPPressure: 0},
		}, nil)
	s.mockEngine.EXPECT().
		SuggestTags(s.ctx, &engine.SuggestTagsInput{Monster: existing, Signals: signals}).
		Return(&engine.SuggestTagsOutput{Tags: []string{entities.TagControl}}, nil)
	s.mockEngine.EXPECT().
		SuggestRole(s.ctx, &engine.SuggestRoleInput{Monster: existing, Signals: signals}).
		Return(&engine.SuggestRoleOutput{Role: entities.RoleController, Reason: "control leads"}, nil)

	output, err := s.orchestrator.PreviewDerivation(s.ctx, &monstersvc.PreviewDerivationInput{
		MonsterID: "mon_123",
	})

	s.NoError(err)
	s.Require().NotNil(output)
	s.Equal(signals, output.Signals)
	s.Equal(matches, output.Matches)
	s.Equal("mon_123", output.Scores.MonsterID)
	s.Equal(int32(55), output.Scores.Control)
	s.Equal([]string{entities.TagControl}, output.SuggestedTags)
	s.Equal(entities.RoleController, output.SuggestedRole)
	s.Equal("control leads", output.RoleReason)
}

func (s *OrchestratorTestSuite) TestSuggestMonsterTags_Success() {
	existing := builders.NewMonsterBuilder().WithID("mon_123").Build()

	mocks.ExpectMonsterGet(s.ctx, s.mockMonsterRepo, "mon_123", existing, nil, nil)

	s.mockEngine.EXPECT().
		SuggestTags(s.ctx, &engine.SuggestTagsInput{Monster: existing}).
		Return(&engine.SuggestTagsOutput{Tags: []string{entities.TagHighSpeed}}, nil)

	output, err := s.orchestrator.SuggestMonsterTags(s.ctx, &monstersvc.SuggestMonsterTagsInput{
		MonsterID: "mon_123",
	})

	s.NoError(err)
	s.Require().NotNil(output)
	s.Equal([]string{entities.TagHighSpeed}, output.TagCodes)
}

func (s *OrchestratorTestSuite) TestSuggestMonsterRole_Success() {
	existing := builders.NewMonsterBuilder().WithID("mon_123").Build()

	mocks.ExpectMonsterGet(s.ctx, s.mockMonsterRepo, "mon_123", existing, nil, nil)

	s.mockEngine.EXPECT().
		SuggestRole(s.ctx, &engine.SuggestRoleInput{Monster: existing}).
		Return(&engine.SuggestRoleOutput{Role: entities.RoleGeneralist, Reason: "no axis leads"}, nil)

	output, err := s.orchestrator.SuggestMonsterRole(s.ctx, &monstersvc.SuggestMonsterRoleInput{
		MonsterID: "mon_123",
	})

	s.NoError(err)
	s.Require().NotNil(output)
	s.Equal(entities.RoleGeneralist, output.Role)
	s.Equal("no axis leads", output.Reason)
}
