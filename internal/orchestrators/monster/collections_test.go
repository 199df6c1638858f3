package monster_test

import (
	"github.com/MGX-LJY/kbxy-monsters-pro-sub000/internal/entities"
	"github.com/MGX-LJY/kbxy-monsters-pro-sub000/internal/errors"
	collectionrepo "github.com/MGX-LJY/kbxy-monsters-pro-sub000/internal/repositories/collection"
	monstersvc "github.com/MGX-LJY/kbxy-monsters-pro-sub000/internal/services/monster"
	"github.com/MGX-LJY/kbxy-monsters-pro-sub000/internal/testutils/builders"
	"github.com/MGX-LJY/kbxy-monsters-pro-sub000/internal/testutils/mocks"
)

func (s *OrchestratorTestSuite) TestCreateCollection_Success() {
	s.mockColIDGen.EXPECT().Generate().Return("col_123")

	created := &entities.Collection{
		ID:         "col_123",
		Name:       "主力队",
		Note:       "PVP 常用",
		MonsterIDs: []string{},
		CreatedAt:  fixedTime.Unix(),
		UpdatedAt:  fixedTime.Unix(),
	}
	s.mockCollectionRepo.EXPECT().
		Create(s.ctx, collectionrepo.CreateInput{Collection: created}).
		Return(&collectionrepo.CreateOutput{Collection: created}, nil)

	output, err := s.orchestrator.CreateCollection(s.ctx, &monstersvc.CreateCollectionInput{
		Name: "主力队",
		Note: "PVP 常用",
	})

	s.NoError(err)
	s.Require().NotNil(output)
	s.Equal("col_123", output.Collection.ID)
	s.Equal("主力队", output.Collection.Name)
	s.Empty(output.Collection.MonsterIDs)
}

func (s *OrchestratorTestSuite) TestCreateCollection_MissingName() {
	output, err := s.orchestrator.CreateCollection(s.ctx, &monstersvc.CreateCollectionInput{})

	s.Error(err)
	s.Nil(output)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "name")
}

func (s *OrchestratorTestSuite) TestGetCollection_ResolvesMembersInOrder() {
	col := &entities.Collection{
		ID:         "col_1",
		Name:       "主力队",
		MonsterIDs: []string{"mon_2", "mon_1"},
		CreatedAt:  1000,
		UpdatedAt:  1000,
	}
	s.mockCollectionRepo.EXPECT().
		Get(s.ctx, collectionrepo.GetInput{ID: "col_1"}).
		Return(&collectionrepo.GetOutput{Collection: col}, nil)

	second := builders.NewMonsterBuilder().WithID("mon_2").WithName("岩甲龟").Build()
	first := builders.NewMonsterBuilder().WithID("mon_1").WithName("碧水灵").Build()
	mocks.ExpectMonsterGet(s.ctx, s.mockMonsterRepo, "mon_2", second, nil, nil)
	mocks.ExpectMonsterGet(s.ctx, s.mockMonsterRepo, "mon_1", first, nil, nil)

	output, err := s.orchestrator.GetCollection(s.ctx, &monstersvc.GetCollectionInput{CollectionID: "col_1"})

	s.NoError(err)
	s.Require().NotNil(output)
	s.Equal(col, output.Collection)
	// Member order follows the collection, not the store
	s.Require().Len(output.Members, 2)
	s.Equal("mon_2", output.Members[0].ID)
	s.Equal("mon_1", output.Members[1].ID)
}

func (s *OrchestratorTestSuite) TestGetCollection_SkipsDeletedMembers() {
	col := &entities.Collection{
		ID:         "col_1",
		Name:       "主力队",
		MonsterIDs: []string{"mon_1", "mon_gone", "mon_2"},
		CreatedAt:  1000,
		UpdatedAt:  1000,
	}
	s.mockCollectionRepo.EXPECT().
		Get(s.ctx, collectionrepo.GetInput{ID: "col_1"}).
		Return(&collectionrepo.GetOutput{Collection: col}, nil)

	first := builders.NewMonsterBuilder().WithID("mon_1").Build()
	second := builders.NewMonsterBuilder().WithID("mon_2").Build()
	mocks.ExpectMonsterGet(s.ctx, s.mockMonsterRepo, "mon_1", first, nil, nil)
	mocks.ExpectMonsterGet(s.ctx, s.mockMonsterRepo, "mon_gone", nil, nil,
		errors.NotFound("monster with ID mon_gone not found"))
	mocks.ExpectMonsterGet(s.ctx, s.mockMonsterRepo, "mon_2", second, nil, nil)

	output, err := s.orchestrator.GetCollection(s.ctx, &monstersvc.GetCollectionInput{CollectionID: "col_1"})

	s.NoError(err)
	s.Require().NotNil(output)
	s.Require().Len(output.Members, 2)
	s.Equal("mon_1", output.Members[0].ID)
	s.Equal("mon_2", output.Members[1].ID)
}

func (s *OrchestratorTestSuite) TestGetCollection_NotFound() {
	s.mockCollectionRepo.EXPECT().
		Get(s.ctx, collectionrepo.GetInput{ID: "col_404"}).
		Return(nil, errors.NotFound("collection with ID col_404 not found"))

	output, err := s.orchestrator.GetCollection(s.ctx, &monstersvc.GetCollectionInput{CollectionID: "col_404"})

	s.Error(err)
	s.Nil(output)
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestListCollections_Success() {
	cols := []*entities.Collection{
		{ID: "col_1", Name: "主力队"},
		{ID: "col_2", Name: "后备队"},
	}
	s.mockCollectionRepo.EXPECT().
		List(s.ctx, collectionrepo.ListInput{}).
		Return(&collectionrepo.ListOutput{Collections: cols}, nil)

	output, err := s.orchestrator.ListCollections(s.ctx, &monstersvc.ListCollectionsInput{})

	s.NoError(err)
	s.Require().NotNil(output)
	s.Len(output.Collections, 2)
}

func (s *OrchestratorTestSuite) TestDeleteCollection_Success() {
	s.mockCollectionRepo.EXPECT().
		Delete(s.ctx, collectionrepo.DeleteInput{ID: "col_1"}).
		Return(&collectionrepo.DeleteOutput{}, nil)

	output, err := s.orchestrator.DeleteCollection(s.ctx, &monstersvc.DeleteCollectionInput{CollectionID: "col_1"})

	s.NoError(err)
	s.Require().NotNil(output)
	s.Contains(output.Message, "col_1")
}

func (s *OrchestratorTestSuite) TestAddToCollection_Success() {
	member := builders.NewMonsterBuilder().WithID("mon_9").Build()
	mocks.ExpectMonsterGet(s.ctx, s.mockMonsterRepo, "mon_9", member, nil, nil)

	col := &entities.Collection{
		ID:         "col_1",
		Name:       "主力队",
		MonsterIDs: []string{"mon_1"},
		CreatedAt:  1000,
		UpdatedAt:  1000,
	}
	s.mockCollectionRepo.EXPECT().
		Get(s.ctx, collectionrepo.GetInput{ID: "col_1"}).
		Return(&collectionrepo.GetOutput{Collection: col}, nil)

	updated := &entities.Collection{
		ID:         "col_1",
		Name:       "主力队",
		MonsterIDs: []string{"mon_1", "mon_9"},
		CreatedAt:  1000,
		UpdatedAt:  fixedTime.Unix(),
	}
	s.mockCollectionRepo.EXPECT().
		SetMembers(s.ctx, collectionrepo.SetMembersInput{
			CollectionID:      "col_1",
			ExpectedUpdatedAt: 1000,
			MonsterIDs:        []string{"mon_1", "mon_9"},
			UpdatedAt:         fixedTime.Unix(),
		}).
		Return(&collectionrepo.SetMembersOutput{Collection: updated}, nil)

	output, err := s.orchestrator.AddToCollection(s.ctx, &monstersvc.AddToCollectionInput{
		CollectionID: "col_1",
		MonsterID:    "mon_9",
	})

	s.NoError(err)
	s.Require().NotNil(output)
	s.Equal([]string{"mon_1", "mon_9"}, output.Collection.MonsterIDs)
	s.Equal(fixedTime.Unix(), output.Collection.UpdatedAt)
}

func (s *OrchestratorTestSuite) TestAddToCollection_AlreadyMemberIsNoOp() {
	member := builders.NewMonsterBuilder().WithID("mon_1").Build()
	mocks.ExpectMonsterGet(s.ctx, s.mockMonsterRepo, "mon_1", member, nil, nil)

	col := &entities.Collection{
		ID:         "col_1",
		Name:       "主力队",
		MonsterIDs: []string{"mon_1"},
		CreatedAt:  1000,
		UpdatedAt:  1000,
	}
	// No SetMembers call, membership is already in place
	s.mockCollectionRepo.EXPECT().
		Get(s.ctx, collectionrepo.GetInput{ID: "col_1"}).
		Return(&collectionrepo.GetOutput{Collection: col}, nil)

	output, err := s.orchestrator.AddToCollection(s.ctx, &monstersvc.AddToCollectionInput{
		CollectionID: "col_1",
		MonsterID:    "mon_1",
	})

	s.NoError(err)
	s.Require().NotNil(output)
	s.Equal(col, output.Collection)
}

func (s *OrchestratorTestSuite) TestAddToCollection_MonsterMissing() {
	mocks.ExpectMonsterGet(s.ctx, s.mockMonsterRepo, "mon_404", nil, nil,
		errors.NotFound("monster with ID mon_404 not found"))

	output, err := s.orchestrator.AddToCollection(s.ctx, &monstersvc.AddToCollectionInput{
		CollectionID: "col_1",
		MonsterID:    "mon_404",
	})

	s.Error(err)
	s.Nil(output)
	s.True(errors.IsNotFound(err))
	s.Contains(err.Error(), "failed to get monster")
}

func (s *OrchestratorTestSuite) TestRemoveFromCollection_Success() {
	col := &entities.Collection{
		ID:         "col_1",
		Name:       "主力队",
		MonsterIDs: []string{"mon_1", "mon_2", "mon_3"},
		CreatedAt:  1000,
		UpdatedAt:  1000,
	}
	s.mockCollectionRepo.EXPECT().
		Get(s.ctx, collectionrepo.GetInput{ID: "col_1"}).
		Return(&collectionrepo.GetOutput{Collection: col}, nil)

	updated := &entities.Collection{
		ID:         "col_1",
		Name:       "主力队",
		MonsterIDs: []string{"mon_1", "mon_3"},
		CreatedAt:  1000,
		UpdatedAt:  fixedTime.Unix(),
	}
	s.mockCollectionRepo.EXPECT().
		SetMembers(s.ctx, collectionrepo.SetMembersInput{
			CollectionID:      "col_1",
			ExpectedUpdatedAt: 1000,
			MonsterIDs:        []string{"mon_1", "mon_3"},
			UpdatedAt:         fixedTime.Unix(),
		}).
		Return(&collectionrepo.SetMembersOutput{Collection: updated}, nil)

	output, err := s.orchestrator.RemoveFromCollection(s.ctx, &monstersvc.RemoveFromCollectionInput{
		CollectionID: "col_1",
		MonsterID:    "mon_2",
	})

	s.NoError(err)
	s.Require().NotNil(output)
	s.Equal([]string{"mon_1", "mon_3"}, output.Collection.MonsterIDs)
}

func (s *OrchestratorTestSuite) TestRemoveFromCollection_NotMemberIsNoOp() {
	col := &entities.Collection{
		ID:         "col_1",
		Name:       "主力队",
		MonsterIDs: []string{"mon_1"},
		CreatedAt:  1000,
		UpdatedAt:  1000,
	}
	s.mockCollectionRepo.EXPECT().
		Get(s.ctx, collectionrepo.GetInput{ID: "col_1"}).
		Return(&collectionrepo.GetOutput{Collection: col}, nil)

	output, err := s.orchestrator.RemoveFromCollection(s.ctx, &monstersvc.RemoveFromCollectionInput{
		CollectionID: "col_1",
		MonsterID:    "mon_9",
	})

	s.NoError(err)
	s.Require().NotNil(output)
	s.Equal(col, output.Collection)
}
