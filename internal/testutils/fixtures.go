package testutils

import (
	"github.com/MGX-LJY/kbxy-monsters-pro-sub000/internal/entities"
)

const (
	// TestMonsterName is the default monster name for test fixtures
	TestMonsterName = "布鲁克"

	// TestMonsterID is the default monster ID for test fixtures
	TestMonsterID = "mon_test_001"
)

// CreateTestMonster creates a test monster with sensible defaults. The skill
// texts carry no recognizable battle-effect patterns, so derivation over this
// fixture yields signal-free scores.
func CreateTestMonster(id string) *entities.Monster {
	power := int32(95)
	return &entities.Monster{
		ID:      id,
		Name:    TestMonsterName,
		Element: "水",
		Tags:    []string{},
		Attributes: entities.Attributes{
			Vitality:       100,
			Speed:          95,
			PhysicalPower:  105,
			PhysicalResist: 90,
			MagicPower:     80,
			MagicResist:    85,
		},
		Skills: []entities.Skill{
			{
				Name:        "水流冲击",
				Kind:        entities.SkillKindMagic,
				Element:     "水",
				Power:       &power,
				Description: "向对方喷射高压水流",
			},
		},
		CreatedAt: 1700000000,
		UpdatedAt: 1700000000,
	}
}

// CreateTestScores creates a derived score set for a monster
func CreateTestScores(monsterID string) *entities.DerivedScores {
	return &entities.DerivedScores{
		MonsterID:  monsterID,
		Offense:    70,
		Survive:    65,
		Control:    10,
		Tempo:      95,
		PPPressure: 0,
		ComputedAt: 1700000000,
	}
}

// CreateTestCollection creates a test collection holding the given member IDs
func CreateTestCollection(id, name string, memberIDs ...string) *entities.Collection {
	return &entities.Collection{
		ID:         id,
		Name:       name,
		MonsterIDs: memberIDs,
		CreatedAt:  1700000000,
		UpdatedAt:  1700000000,
	}
}
