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

func (s *OrchestratorTestSuite) TestUpdateMonster_PreservesEngineTags() {
	existing := builders.NewMonsterBuilder().
		WithID("mon_123").
		WithName("旧名字").
		WithRole(entities.RoleAttacker).
		WithTags(entities.TagHighSpeed, "人形").
		WithTimestamps(1000, 1000).
		Build()
	storedScores := &entities.DerivedScores{
		MonsterID: "mon_123", Offense: 90, Survive: 50, Control: 10, Tempo: 70, PPPressure: 0,
		ComputedAt: 1000,
	}

	mocks.ExpectMonsterGet(s.ctx, s.mockMonsterRepo, "mon_123", existing, storedScores, nil)

	// The engine-owned portion must survive the curated tag replacement
	updated := &entities.Monster{
		ID:        "mon_123",
		Name:      "新名字",
		Element:   "火",
		Role:      entities.RoleAttacker,
		Tags:      []string{entities.TagHighSpeed, "魅力"},
		CreatedAt: 1000,
		UpdatedAt: fixedTime.Unix(),
	}
	mocks.ExpectMonsterUpdate(s.ctx, s.mockMonsterRepo)

	signals := &engine.SignalVector{SpeedUp: true}
	newScores := &entities.DerivedScores{Offense: 90, Survive: 50, Control: 10, Tempo: 70, PPPressure: 0}
	mocks.ExpectDerivationPass(s.ctx, s.mockEngine, updated, signals, newScores,
		[]string{entities.TagHighSpeed}, entities.RoleAttacker, "speed leads")
	mocks.ExpectReconcile(s.ctx, s.mockMonsterRepo, updated)

	output, err := s.orchestrator.UpdateMonster(s.ctx, &monstersvc.UpdateMonsterInput{
		MonsterID: "mon_123",
		Name:      "新名字",
		Element:   "火",
		Tags:      []string{"魅力"},
	})

	s.NoError(err)
	s.Require().NotNil(output)
	s.Equal("新名字", output.Monster.Name)
	s.Equal("火", output.Monster.Element)
	s.Equal([]string{entities.TagHighSpeed, "魅力"}, output.Monster.Tags)
	// Scores agreed with the stored set, so the stored set is returned
	s.Equal(storedScores, output.Scores)
}

func (s *OrchestratorTestSuite) TestUpdateMonster_RejectsEngineTagInput() {
	output, err := s.orchestrator.UpdateMonster(s.ctx, &monstersvc.UpdateMonsterInput{
		MonsterID: "mon_123",
		Name:      "新名字",
		Tags:      []string{entities.TagControl},
	})

	s.Error(err)
	s.Nil(output)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "engine-owned")
}

func (s *OrchestratorTestSuite) TestUpdateAttributes_RewritesScores() {
	existing := builders.NewMonsterBuilder().
		WithID("mon_123").
		WithRole(entities.RoleTank).
		WithTags(entities.TagBulwark).
		WithAttributes(300, 60, 70, 120, 50, 110).
		WithTimestamps(1000, 1000).
		Build()
	storedScores := &entities.DerivedScores{
		MonsterID: "mon_123", Offense: 40, Survive: 100, Control: 0, Tempo: 30, PPPressure: 0,
		ComputedAt: 1000,
	}

	mocks.ExpectMonsterGet(s.ctx, s.mockMonsterRepo, "mon_123", existing, storedScores, nil)

	updated := &entities.Monster{
		ID:         "mon_123",
		Name:       existing.Name,
		Element:    existing.Element,
		Role:       entities.RoleTank,
		Tags:       []string{entities.TagBulwark},
		Attributes: entities.Attributes{Vitality: 400, Speed: 60, PhysicalPower: 70, PhysicalResist: 130, MagicPower: 50, MagicResist: 120},
		CreatedAt:  1000,
		UpdatedAt:  fixedTime.Unix(),
	}
	mocks.ExpectMonsterUpdate(s.ctx, s.mockMonsterRepo)

	signals := &engine.SignalVector{Shield: true}
	newScores := &entities.DerivedScores{Offense: 40, Survive: 110, Control: 0, Tempo: 30, PPPressure: 0}
	mocks.ExpectDerivationPass(s.ctx, s.mockEngine, updated, signals, newScores,
		[]string{entities.TagBulwark}, entities.RoleTank, "bulk leads")
	mocks.ExpectReconcile(s.ctx, s.mockMonsterRepo, updated)

	output, err := s.orchestrator.UpdateAttributes(s.ctx, &monstersvc.UpdateAttributesInput{
		MonsterID:  "mon_123",
		Attributes: updated.Attributes,
	})

	s.NoError(err)
	s.Require().NotNil(output)
	s.Equal(float64(400), output.Monster.Attributes.Vitality)
	s.Require().NotNil(output.Scores)
	s.Equal(int32(110), output.Scores.Survive)
	s.Equal(fixedTime.Unix(), output.Scores.ComputedAt)
}

func (s *OrchestratorTestSuite) TestUpdateSkills_RelabelsFromNewText() {
	existing := builders.NewMonsterBuilder().
		WithID("mon_123").
		WithRole(entities.RoleAttacker).
		WithTimestamps(1000, 1000).
		Build()
	existing.Tags = nil
	storedScores := &entities.DerivedScores{
		MonsterID: "mon_123", Offense: 80, Survive: 40, Control: 0, Tempo: 50, PPPressure: 0,
		ComputedAt: 1000,
	}

	mocks.ExpectMonsterGet(s.ctx, s.mockMonsterRepo, "mon_123", existing, storedScores, nil)

	skills := []entities.Skill{
		{Name: "冰封", Kind: "法术", Power: powerPtr(95), Description: "有几率冰冻对方"},
	}
	updated := &entities.Monster{
		ID:         "mon_123",
		Name:       existing.Name,
		Element:    existing.Element,
		Role:       entities.RoleAttacker,
		Attributes: existing.Attributes,
		Skills:     skills,
		CreatedAt:  1000,
		UpdatedAt:  fixedTime.Unix(),
	}
	mocks.ExpectMonsterUpdate(s.ctx, s.mockMonsterRepo)

	signals := &engine.SignalVector{HardCCCount: 1}
	newScores := &entities.DerivedScores{Offense: 80, Survive: 40, Control: 60, Tempo: 50, PPPressure: 0}
	mocks.ExpectDerivationPass(s.ctx, s.mockEngine, updated, signals, newScores,
		[]string{entities.TagControl}, entities.RoleController, "control leads")
	mocks.ExpectReconcile(s.ctx, s.mockMonsterRepo, updated)

	output, err := s.orchestrator.UpdateSkills(s.ctx, &monstersvc.UpdateSkillsInput{
		MonsterID: "mon_123",
		Skills:    skills,
	})

	s.NoError(err)
	s.Require().NotNil(output)
	// Role was already assigned, fill-blank leaves it alone
	s.Equal(entities.RoleAttacker, output.Monster.Role)
	s.Equal([]string{entities.TagControl}, output.Monster.Tags)
	s.Equal(int32(60), output.Scores.Control)
}

func (s *OrchestratorTestSuite) TestUpdateSkills_RejectsNegativePower() {
	output, err := s.orchestrator.UpdateSkills(s.ctx, &monstersvc.UpdateSkillsInput{
		MonsterID: "mon_123",
		Skills: []entities.Skill{
			{Name: "坏技能", Kind: "物理", Power: powerPtr(-5)},
		},
	})

	s.Error(err)
	s.Nil(output)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "negative power")
}

func (s *OrchestratorTestSuite) TestSetRole_Success() {
	existing := builders.NewMonsterBuilder().
		WithID("mon_123").
		WithRole(entities.RoleAttacker).
		WithTimestamps(1000, 1000).
		Build()

	mocks.ExpectMonsterGet(s.ctx, s.mockMonsterRepo, "mon_123", existing, nil, nil)

	s.mockMonsterRepo.EXPECT().
		Update(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input monsterrepo.UpdateInput) (*monsterrepo.UpdateOutput, error) {
			s.Equal(entities.RoleTank, input.Monster.Role)
			s.Equal(fixedTime.Unix(), input.Monster.UpdatedAt)
			return &monsterrepo.UpdateOutput{Monster: input.Monster}, nil
		})

	output, err := s.orchestrator.SetRole(s.ctx, &monstersvc.SetRoleInput{
		MonsterID: "mon_123",
		Role:      entities.RoleTank,
	})

	s.NoError(err)
	s.Require().NotNil(output)
	s.Equal(entities.RoleTank, output.Monster.Role)
}

func (s *OrchestratorTestSuite) TestSetRole_UnknownRole() {
	output, err := s.orchestrator.SetRole(s.ctx, &monstersvc.SetRoleInput{
		MonsterID: "mon_123",
		Role:      "dps",
	})

	s.Error(err)
	s.Nil(output)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "must be one of")
}
