package monster_test

import (
	"context"

	"go.uber.org/mock/gomock"

	"github.com/MGX-LJY/kbxy-monsters-pro-sub000/internal/clients/bestiary"
	"github.com/MGX-LJY/kbxy-monsters-pro-sub000/internal/engine"
	"github.com/MGX-LJY/kbxy-monsters-pro-sub000/internal/entities"
	"github.com/MGX-LJY/kbxy-monsters-pro-sub000/internal/errors"
	monsterrepo "github.com/MGX-LJY/kbxy-monsters-pro-sub000/internal/repositories/monster"
	monstersvc "github.com/MGX-LJY/kbxy-monsters-pro-sub000/internal/services/monster"
	"github.com/MGX-LJY/kbxy-monsters-pro-sub000/internal/testutils/builders"
	"github.com/MGX-LJY/kbxy-monsters-pro-sub000/internal/testutils/mocks"
)

func (s *OrchestratorTestSuite) TestImportMonsters_ImportsByKey() {
	s.mockMonsterRepo.EXPECT().
		Get(s.ctx, monsterrepo.GetInput{ID: "mon_dnd5e_goblin"}).
		Return(nil, errors.NotFound("monster with ID mon_dnd5e_goblin not found"))

	s.mockBestiary.EXPECT().
		GetMonsterData(s.ctx, "goblin").
		Return(&bestiary.MonsterData{
			Key:          "goblin",
			Name:         "Goblin",
			Strength:     8,
			Dexterity:    14,
			Constitution: 10,
			Intelligence: 10,
			Wisdom:       8,
			Charisma:     8,
		}, nil)

	// 55 + 2.5 * score, constitution feeding both vitality and physical resist
	imported := &entities.Monster{
		ID:   "mon_dnd5e_goblin",
		Name: "Goblin",
		Attributes: entities.Attributes{
			Vitality:       80,
			Speed:          90,
			PhysicalPower:  75,
			PhysicalResist: 80,
			MagicPower:     80,
			MagicResist:    75,
		},
		CreatedAt: fixedTime.Unix(),
		UpdatedAt: fixedTime.Unix(),
	}

	mocks.ExpectMonsterCreate(s.ctx, s.mockMonsterRepo)

	signals := &engine.SignalVector{}
	newScores := &entities.DerivedScores{Offense: 50, Survive: 45, Control: 0, Tempo: 55, PPPressure: 0}
	mocks.ExpectDerivationPass(s.ctx, s.mockEngine, imported, signals, newScores,
		nil, entities.RoleGeneralist, "no axis leads")
	mocks.ExpectReconcile(s.ctx, s.mockMonsterRepo, imported)

	output, err := s.orchestrator.ImportMonsters(s.ctx, &monstersvc.ImportMonstersInput{
		Keys: []string{"goblin"},
	})

	s.NoError(err)
	s.Require().NotNil(output)
	s.Equal(1, output.Imported)
	s.Equal(0, output.Skipped)
	s.Empty(output.Failures)
}

func (s *OrchestratorTestSuite) TestImportMonsters_SkipsExisting() {
	existing := builders.NewMonsterBuilder().WithID("mon_dnd5e_goblin").WithName("Goblin").Build()

	s.mockMonsterRepo.EXPECT().
		Get(s.ctx, monsterrepo.GetInput{ID: "mon_dnd5e_goblin"}).
		Return(&monsterrepo.GetOutput{Monster: existing}, nil)

	output, err := s.orchestrator.ImportMonsters(s.ctx, &monstersvc.ImportMonstersInput{
		Keys: []string{"goblin"},
	})

	s.NoError(err)
	s.Require().NotNil(output)
	s.Equal(0, output.Imported)
	s.Equal(1, output.Skipped)
	s.Empty(output.Failures)
}

func (s *OrchestratorTestSuite) TestImportMonsters_LimitCapsThePull() {
	s.mockBestiary.EXPECT().
		ListMonsterRefs(s.ctx).
		Return([]*bestiary.MonsterRef{
			{Key: "aboleth", Name: "Aboleth"},
			{Key: "goblin", Name: "Goblin"},
			{Key: "orc", Name: "Orc"},
		}, nil)

	s.mockMonsterRepo.EXPECT().
		Get(s.ctx, monsterrepo.GetInput{ID: "mon_dnd5e_aboleth"}).
		Return(nil, errors.NotFound("monster with ID mon_dnd5e_aboleth not found"))

	s.mockBestiary.EXPECT().
		GetMonsterData(s.ctx, "aboleth").
		Return(&bestiary.MonsterData{
			Key:          "aboleth",
			Name:         "Aboleth",
			Strength:     21,
			Dexterity:    9,
			Constitution: 15,
			Intelligence: 18,
			Wisdom:       15,
			Charisma:     18,
		}, nil)

	imported := &entities.Monster{
		ID:   "mon_dnd5e_aboleth",
		Name: "Aboleth",
		Attributes: entities.Attributes{
			Vitality:       93,
			Speed:          78,
			PhysicalPower:  108,
			PhysicalResist: 93,
			MagicPower:     100,
			MagicResist:    93,
		},
		CreatedAt: fixedTime.Unix(),
		UpdatedAt: fixedTime.Unix(),
	}
	mocks.ExpectMonsterCreate(s.ctx, s.mockMonsterRepo)

	signals := &engine.SignalVector{}
	newScores := &entities.DerivedScores{Offense: 90, Survive: 70, Control: 0, Tempo: 40, PPPressure: 0}
	mocks.ExpectDerivationPass(s.ctx, s.mockEngine, imported, signals, newScores,
		nil, entities.RoleAttacker, "offense leads")
	mocks.ExpectReconcile(s.ctx, s.mockMonsterRepo, imported)

	// Second key already exists, third key is beyond the limit
	existing := builders.NewMonsterBuilder().WithID("mon_dnd5e_goblin").WithName("Goblin").Build()
	s.mockMonsterRepo.EXPECT().
		Get(s.ctx, monsterrepo.GetInput{ID: "mon_dnd5e_goblin"}).
		Return(&monsterrepo.GetOutput{Monster: existing}, nil)

	output, err := s.orchestrator.ImportMonsters(s.ctx, &monstersvc.ImportMonstersInput{
		Limit: 2,
	})

	s.NoError(err)
	s.Require().NotNil(output)
	s.Equal(1, output.Imported)
	s.Equal(1, output.Skipped)
	s.Empty(output.Failures)
}

func (s *OrchestratorTestSuite) TestImportMonsters_RecordsFetchFailure() {
	s.mockMonsterRepo.EXPECT().
		Get(s.ctx, monsterrepo.GetInput{ID: "mon_dnd5e_missing"}).
		Return(nil, errors.NotFound("monster with ID mon_dnd5e_missing not found"))

	s.mockBestiary.EXPECT().
		GetMonsterData(s.ctx, "missing").
		Return(nil, errors.Internal("failed to get monster missing"))

	output, err := s.orchestrator.ImportMonsters(s.ctx, &monstersvc.ImportMonstersInput{
		Keys: []string{"missing"},
	})

	s.NoError(err)
	s.Require().NotNil(output)
	s.Equal(0, output.Imported)
	s.Require().Len(output.Failures, 1)
	s.Equal("missing", output.Failures[0].Key)
	s.Contains(output.Failures[0].Message, "failed to get monster")
}

func (s *OrchestratorTestSuite) TestGenerateMonsters_RejectsBadCount() {
	output, err := s.orchestrator.GenerateMonsters(s.ctx, &monstersvc.GenerateMonstersInput{Count: 0})

	s.Error(err)
	s.Nil(output)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "between 1 and 100")
}

func (s *OrchestratorTestSuite) TestGenerateMonsters_SeedsDemoData() {
	s.mockIDGen.EXPECT().Generate().Return("mon_gen1")
	s.mockIDGen.EXPECT().Generate().Return("mon_gen2")

	createdByID := make(map[string]*entities.Monster)
	s.mockMonsterRepo.EXPECT().
		Create(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input monsterrepo.CreateInput) (*monsterrepo.CreateOutput, error) {
			createdByID[input.Monster.ID] = input.Monster
			return &monsterrepo.CreateOutput{Monster: input.Monster}, nil
		}).
		Times(2)

	signals := &engine.SignalVector{}
	s.mockEngine.EXPECT().
		ExtractSignals(s.ctx, gomock.Any()).
		Return(&engine.ExtractSignalsOutput{Signals: signals}, nil).
		Times(2)
	s.mockEngine.EXPECT().
		DeriveScores(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *engine.DeriveScoresInput) (*engine.DeriveScoresOutput, error) {
			return &engine.DeriveScoresOutput{
				Scores: &entities.DerivedScores{Offense: 60, Survive: 60, Control: 10, Tempo: 60, PPPressure: 5},
			}, nil
		}).
		Times(2)
	s.mockEngine.EXPECT().
		SuggestTags(s.ctx, gomock.Any()).
		Return(&engine.SuggestTagsOutput{}, nil).
		Times(2)
	s.mockEngine.EXPECT().
		SuggestRole(s.ctx, gomock.Any()).
		Return(&engine.SuggestRoleOutput{Role: entities.RoleAttacker, Reason: "offense leads"}, nil).
		Times(2)

	s.mockMonsterRepo.EXPECT().
		Reconcile(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input monsterrepo.ReconcileInput) (*monsterrepo.ReconcileOutput, error) {
			base := createdByID[input.MonsterID]
			updated := *base
			if input.RoleChanged {
				updated.Role = input.Role
			}
			if input.TagsChanged {
				updated.Tags = input.Tags
			}
			updated.UpdatedAt = input.UpdatedAt
			return &monsterrepo.ReconcileOutput{Monster: &updated, Scores: input.Scores, Written: true}, nil
		}).
		Times(2)

	output, err := s.orchestrator.GenerateMonsters(s.ctx, &monstersvc.GenerateMonstersInput{Count: 2})

	s.NoError(err)
	s.Require().NotNil(output)
	s.Require().Len(output.Monsters, 2)

	first := output.Monsters[0]
	s.Equal("mon_gen1", first.ID)
	s.Equal("烈焰兽1号", first.Name)
	s.Equal("火", first.Element)
	s.Equal(entities.RoleAttacker, first.Role)
	s.Len(first.Skills, 2)

	second := output.Monsters[1]
	s.Equal("mon_gen2", second.ID)
	s.Equal("碧水灵1号", second.Name)
	s.Equal("水", second.Element)

	// Each attribute is base 40 plus 3d30
	for _, mon := range output.Monsters {
		for _, value := range []float64{
			mon.Attributes.Vitality,
			mon.Attributes.Speed,
			mon.Attributes.PhysicalPower,
			mon.Attributes.PhysicalResist,
			mon.Attributes.MagicPower,
			mon.Attributes.MagicResist,
		} {
			s.GreaterOrEqual(value, float64(43))
			s.LessOrEqual(value, float64(130))
		}
	}
}
