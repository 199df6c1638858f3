package monster_test

import (
	"context"

	"go.uber.org/mock/gomock"

	"github.com/MGX-LJY/kbxy-monsters-pro-sub000/internal/entities"
	"github.com/MGX-LJY/kbxy-monsters-pro-sub000/internal/errors"
	tagrepo "github.com/MGX-LJY/kbxy-monsters-pro-sub000/internal/repositories/tag"
	monstersvc "github.com/MGX-LJY/kbxy-monsters-pro-sub000/internal/services/monster"
)

func (s *OrchestratorTestSuite) TestRegisterTag_Success() {
	registered := &entities.Tag{
		Code:      "人形",
		Display:   "人形系",
		Kind:      entities.TagKindFree,
		Note:      "体型分类",
		CreatedAt: fixedTime.Unix(),
	}
	s.mockTagRepo.EXPECT().
		Create(s.ctx, tagrepo.CreateInput{Tag: registered}).
		Return(&tagrepo.CreateOutput{Tag: registered}, nil)

	output, err := s.orchestrator.RegisterTag(s.ctx, &monstersvc.RegisterTagInput{
		Code:    "人形",
		Display: "人形系",
		Note:    "体型分类",
	})

	s.NoError(err)
	s.Require().NotNil(output)
	s.Equal("人形", output.Tag.Code)
	s.Equal(entities.TagKindFree, output.Tag.Kind)
}

func (s *OrchestratorTestSuite) TestRegisterTag_DisplayDefaultsToCode() {
	s.mockTagRepo.EXPECT().
		Create(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input tagrepo.CreateInput) (*tagrepo.CreateOutput, error) {
			s.Equal("稀有", input.Tag.Display)
			return &tagrepo.CreateOutput{Tag: input.Tag}, nil
		})

	output, err := s.orchestrator.RegisterTag(s.ctx, &monstersvc.RegisterTagInput{Code: "稀有"})

	s.NoError(err)
	s.Require().NotNil(output)
	s.Equal("稀有", output.Tag.Display)
}

func (s *OrchestratorTestSuite) TestRegisterTag_RejectsEngineNamespace() {
	output, err := s.orchestrator.RegisterTag(s.ctx, &monstersvc.RegisterTagInput{
		Code: "buf_custom",
	})

	s.Error(err)
	s.Nil(output)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "engine-owned namespace")
}

func (s *OrchestratorTestSuite) TestRegisterTag_AlreadyExists() {
	s.mockTagRepo.EXPECT().
		Create(s.ctx, gomock.Any()).
		Return(nil, errors.AlreadyExists("tag with code 人形 already exists"))

	output, err := s.orchestrator.RegisterTag(s.ctx, &monstersvc.RegisterTagInput{Code: "人形"})

	s.Error(err)
	s.Nil(output)
	s.True(errors.IsAlreadyExists(err))
}

func (s *OrchestratorTestSuite) TestGetTag_Success() {
	tag := &entities.Tag{Code: "buf_high_speed", Display: "高速", Kind: entities.TagKindBuff}
	s.mockTagRepo.EXPECT().
		Get(s.ctx, tagrepo.GetInput{Code: "buf_high_speed"}).
		Return(&tagrepo.GetOutput{Tag: tag}, nil)

	output, err := s.orchestrator.GetTag(s.ctx, &monstersvc.GetTagInput{Code: "buf_high_speed"})

	s.NoError(err)
	s.Require().NotNil(output)
	s.Equal("高速", output.Tag.Display)
}

func (s *OrchestratorTestSuite) TestListTags_Success() {
	tags := []*entities.Tag{
		{Code: "buf_high_speed", Display: "高速", Kind: entities.TagKindBuff},
		{Code: "人形", Display: "人形", Kind: entities.TagKindFree},
	}
	s.mockTagRepo.EXPECT().
		List(s.ctx, tagrepo.ListInput{}).
		Return(&tagrepo.ListOutput{Tags: tags}, nil)

	output, err := s.orchestrator.ListTags(s.ctx, &monstersvc.ListTagsInput{})

	s.NoError(err)
	s.Require().NotNil(output)
	s.Len(output.Tags, 2)
}

func (s *OrchestratorTestSuite) TestDeleteTag_Success() {
	s.mockTagRepo.EXPECT().
		Delete(s.ctx, tagrepo.DeleteInput{Code: "人形"}).
		Return(&tagrepo.DeleteOutput{}, nil)

	output, err := s.orchestrator.DeleteTag(s.ctx, &monstersvc.DeleteTagInput{Code: "人形"})

	s.NoError(err)
	s.Require().NotNil(output)
	s.Contains(output.Message, "人形")
}

func (s *OrchestratorTestSuite) TestDeleteTag_RejectsEngineNamespace() {
	output, err := s.orchestrator.DeleteTag(s.ctx, &monstersvc.DeleteTagInput{
		Code: entities.TagHighSpeed,
	})

	s.Error(err)
	s.Nil(output)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "engine-owned namespace")
}

func (s *OrchestratorTestSuite) TestSeedTags_StampsAndCounts() {
	s.mockTagRepo.EXPECT().
		Seed(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input tagrepo.SeedInput) (*tagrepo.SeedOutput, error) {
			s.Len(input.Tags, 8)
			for _, tag := range input.Tags {
				s.True(entities.IsEngineTag(tag.Code))
				s.Equal(fixedTime.Unix(), tag.CreatedAt)
			}
			return &tagrepo.SeedOutput{Seeded: len(input.Tags)}, nil
		})

	output, err := s.orchestrator.SeedTags(s.ctx, &monstersvc.SeedTagsInput{})

	s.NoError(err)
	s.Require().NotNil(output)
	s.Equal(8, output.Seeded)
}
