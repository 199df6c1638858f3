// Package builders provides test data builders for creating test fixtures
package builders

import (
	"time"

	"github.com/MGX-LJY/kbxy-monsters-pro-sub000/internal/entities"
)

// MonsterBuilder provides a fluent interface for building test Monster instances
type MonsterBuilder struct {
	monster *entities.Monster
}

// NewMonsterBuilder creates a new builder with minimal defaults
func NewMonsterBuilder() *MonsterBuilder {
	now := time.Now().Unix()
	return &MonsterBuilder{
		monster: &entities.Monster{
			ID:        "mon_test_123",
			Name:      "测试怪",
			Element:   "水",
			Tags:      []string{},
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}

// WithID sets the monster ID
func (b *MonsterBuilder) WithID(id string) *MonsterBuilder {
	b.monster.ID = id
	return b
}

// WithName sets the monster name
func (b *MonsterBuilder) WithName(name string) *MonsterBuilder {
	b.monster.Name = name
	return b
}

// WithElement sets the monster element
func (b *MonsterBuilder) WithElement(element string) *MonsterBuilder {
	b.monster.Element = element
	return b
}

// WithRole sets the assigned role
func (b *MonsterBuilder) WithRole(role string) *MonsterBuilder {
	b.monster.Role = role
	return b
}

// WithTags replaces the tag set
func (b *MonsterBuilder) WithTags(tags ...string) *MonsterBuilder {
	b.monster.Tags = tags
	return b
}

// WithAttributes sets the six base stats in declaration order: vitality,
// speed, physical power, physical resist, magic power, magic resist.
func (b *MonsterBuilder) WithAttributes(vit, spd, physPower, physResist, magPower, magResist float64) *MonsterBuilder {
	b.monster.Attributes = entities.Attributes{
		Vitality:       vit,
		Speed:          spd,
		PhysicalPower:  physPower,
		PhysicalResist: physResist,
		MagicPower:     magPower,
		MagicResist:    magResist,
	}
	return b
}

// WithSkill appends a skill with a power value
func (b *MonsterBuilder) WithSkill(name, kind string, power int32, description string) *MonsterBuilder {
	b.monster.Skills = append(b.monster.Skills, entities.Skill{
		Name:        name,
		Kind:        kind,
		Power:       &power,
		Description: description,
	})
	return b
}

// WithStatusSkill appends a skill without a power value
func (b *MonsterBuilder) WithStatusSkill(name, kind, description string) *MonsterBuilder {
	b.monster.Skills = append(b.monster.Skills, entities.Skill{
		Name:        name,
		Kind:        kind,
		Description: description,
	})
	return b
}

// WithTimestamps sets both record timestamps
func (b *MonsterBuilder) WithTimestamps(createdAt, updatedAt int64) *MonsterBuilder {
	b.monster.CreatedAt = createdAt
	b.monster.UpdatedAt = updatedAt
	return b
}

// Build returns the constructed Monster
func (b *MonsterBuilder) Build() *entities.Monster {
	return b.monster
}
