// Package monster implements the monster curation orchestrator
package monster

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/MGX-LJY/kbxy-monsters-pro-sub000/internal/clients/bestiary"
	"github.com/MGX-LJY/kbxy-monsters-pro-sub000/internal/engine"
	"github.com/MGX-LJY/kbxy-monsters-pro-sub000/internal/entities"
	"github.com/MGX-LJY/kbxy-monsters-pro-sub000/internal/errors"
	"github.com/MGX-LJY/kbxy-monsters-pro-sub000/internal/pkg/clock"
	"github.com/MGX-LJY/kbxy-monsters-pro-sub000/internal/pkg/idgen"
	collectionrepo "github.com/MGX-LJY/kbxy-monsters-pro-sub000/internal/repositories/collection"
	monsterrepo "github.com/MGX-LJY/kbxy-monsters-pro-sub000/internal/repositories/monster"
	tagrepo "github.com/MGX-LJY/kbxy-monsters-pro-sub000/internal/repositories/tag"
	"github.com/MGX-LJY/kbxy-monsters-pro-sub000/internal/services/monster"
)

// Config holds all dependencies for the monster orchestrator
type Config struct {
	MonsterRepo           monsterrepo.Repository
	TagRepo               tagrepo.Repository
	CollectionRepo        collectionrepo.Repository
	Engine                engine.Engine
	BestiaryClient        bestiary.Client
	IDGenerator           idgen.Generator
	CollectionIDGenerator idgen.Generator
	Clock                 clock.Clock
}

// Validate ensures all required dependencies are present
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.MonsterRepo == nil {
		vb.RequiredField("MonsterRepo")
	}
	if c.TagRepo == nil {
		vb.RequiredField("TagRepo")
	}
	if c.CollectionRepo == nil {
		vb.RequiredField("CollectionRepo")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.BestiaryClient == nil {
		vb.RequiredField("BestiaryClient")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.CollectionIDGenerator == nil {
		vb.RequiredField("CollectionIDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

// Orchestrator implements the monster curation service
type Orchestrator struct {
	monsterRepo     monsterrepo.Repository
	tagRepo         tagrepo.Repository
	collectionRepo  collectionrepo.Repository
	engine          engine.Engine
	bestiaryClient  bestiary.Client
	idGen           idgen.Generator
	collectionIDGen idgen.Generator
	clock           clock.Clock
}

// New creates a new monster orchestrator with the provided dependencies
func New(cfg *Config) (*Orchestrator, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Orchestrator{
		monsterRepo:     cfg.MonsterRepo,
		tagRepo:         cfg.TagRepo,
		collectionRepo:  cfg.CollectionRepo,
		engine:          cfg.Engine,
		bestiaryClient:  cfg.BestiaryClient,
		idGen:           cfg.IDGenerator,
		collectionIDGen: cfg.CollectionIDGenerator,
		clock:           cfg.Clock,
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ monster.Service = (*Orchestrator)(nil)

// CreateMonster validates and stores a new monster, then runs a first
// fill-blank derivation pass over it so it never sits unlabeled.
func (o *Orchestrator) CreateMonster(ctx context.Context, input *monster.CreateMonsterInput) (*monster.CreateMonsterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", input.Name, vb)
	if input.Role != "" && !entities.IsValidRole(input.Role) {
		vb.Fieldf("role", "%s is not a known role", input.Role)
	}
	validateAttributes(&input.Attributes, vb)
	validateSkills(input.Skills, vb)
	validateCuratedTags(input.Tags, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	now := o.clock.Now().Unix()
	mon := &entities.Monster{
		ID:         o.idGen.Generate(),
		Name:       input.Name,
		Element:    input.Element,
		Role:       input.Role,
		Tags:       entities.NormalizeTags(input.Tags),
		Attributes: input.Attributes,
		Skills:     input.Skills,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	createOutput, err := o.monsterRepo.Create(ctx, monsterrepo.CreateInput{Monster: mon})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create monster")
	}

	result, err := o.recomputeAndLabel(ctx, createOutput.Monster, nil, monster.RoleModeFillBlank)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to derive scores for new monster").
			WithMeta("monster_id", mon.ID)
	}

	slog.Info("Monster created",
		"monster_id", mon.ID,
		"name", mon.Name,
		"role", result.Monster.Role,
	)

	return &monster.CreateMonsterOutput{
		Monster: result.Monster,
		Scores:  result.Scores,
	}, nil
}

// GetMonster returns a monster with its derived scores. A record with no
// role, no committed scores, or no engine tags gets one fill-blank pass
// before it is returned, so stale imports heal on first read.
func (o *Orchestrator) GetMonster(ctx context.Context, input *monster.GetMonsterInput) (*monster.GetMonsterOutput, error) {
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
	scores := getOutput.Scores
	healed := false

	engineTags, _ := entities.PartitionTags(mon.Tags)
	if mon.Role == "" || scores == nil || len(engineTags) == 0 {
		result, err := o.recomputeAndLabel(ctx, mon, scores, monster.RoleModeFillBlank)
		switch {
		case err == nil:
			mon = result.Monster
			scores = result.Scores
			healed = result.Written
		case errors.IsAborted(err):
			// Lost a race with another writer, serve the stored state as-is
			slog.Warn("Monster heal pass aborted by concurrent write",
				"monster_id", mon.ID)
		default:
			return nil, errors.Wrapf(err, "failed to heal monster").
				WithMeta("monster_id", mon.ID)
		}
	}

	return &monster.GetMonsterOutput{
		Monster: mon,
		Scores:  scores,
		Healed:  healed,
	}, nil
}

// ListMonsters returns all monsters, or only the ones carrying a tag when
// a tag code filter is set.
func (o *Orchestrator) ListMonsters(ctx context.Context, input *monster.ListMonstersInput) (*monster.ListMonstersOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if input.TagCode != "" {
		listOutput, err := o.monsterRepo.ListByTag(ctx, monsterrepo.ListByTagInput{TagCode: input.TagCode})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to list monsters by tag %s", input.TagCode)
		}
		return &monster.ListMonstersOutput{Monsters: listOutput.Monsters}, nil
	}

	listOutput, err := o.monsterRepo.List(ctx, monsterrepo.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list monsters")
	}

	return &monster.ListMonstersOutput{Monsters: listOutput.Monsters}, nil
}

// DeleteMonster removes a monster along with its scores and index entries
func (o *Orchestrator) DeleteMonster(ctx context.Context, input *monster.DeleteMonsterInput) (*monster.DeleteMonsterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("monsterID", input.MonsterID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	_, err := o.monsterRepo.Delete(ctx, monsterrepo.DeleteInput{ID: input.MonsterID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete monster").
			WithMeta("monster_id", input.MonsterID)
	}

	slog.Info("Monster deleted", "monster_id", input.MonsterID)

	return &monster.DeleteMonsterOutput{
		Message: fmt.Sprintf("Monster %s deleted", input.MonsterID),
	}, nil
}

// UpdateMonster replaces the identity fields and the curated tag set of a
// monster. Engine-owned tags on the record are preserved as-is, the input
// only ever replaces the curated portion. Ends with a fill-blank pass since
// tag edits can shift the derived signals.
func (o *Orchestrator) UpdateMonster(ctx context.Context, input *monster.UpdateMonsterInput) (*monster.UpdateMonsterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("monsterID", input.MonsterID, vb)
	errors.ValidateRequired("name", input.Name, vb)
	validateCuratedTags(input.Tags, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	getOutput, err := o.monsterRepo.Get(ctx, monsterrepo.GetInput{ID: input.MonsterID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get monster").
			WithMeta("monster_id", input.MonsterID)
	}

	engineTags, _ := entities.PartitionTags(getOutput.Monster.Tags)

	updated := *getOutput.Monster
	updated.Name = input.Name
	updated.Element = input.Element
	updated.Tags = entities.NormalizeTags(append(engineTags, input.Tags...))
	updated.UpdatedAt = o.clock.Now().Unix()

	return o.commitUpdate(ctx, &updated, getOutput.Scores)
}

// UpdateAttributes replaces the six base attributes and recomputes
func (o *Orchestrator) UpdateAttributes(ctx context.Context, input *monster.UpdateAttributesInput) (*monster.UpdateAttributesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("monsterID", input.MonsterID, vb)
	validateAttributes(&input.Attributes, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	getOutput, err := o.monsterRepo.Get(ctx, monsterrepo.GetInput{ID: input.MonsterID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get monster").
			WithMeta("monster_id", input.MonsterID)
	}

	updated := *getOutput.Monster
	updated.Attributes = input.Attributes
	updated.UpdatedAt = o.clock.Now().Unix()

	out, err := o.commitUpdate(ctx, &updated, getOutput.Scores)
	if err != nil {
		return nil, err
	}
	return &monster.UpdateAttributesOutput{Monster: out.Monster, Scores: out.Scores}, nil
}

// UpdateSkills replaces the skill list and recomputes
func (o *Orchestrator) UpdateSkills(ctx context.Context, input *monster.UpdateSkillsInput) (*monster.UpdateSkillsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("monsterID", input.MonsterID, vb)
	validateSkills(input.Skills, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	getOutput, err := o.monsterRepo.Get(ctx, monsterrepo.GetInput{ID: input.MonsterID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get monster").
			WithMeta("monster_id", input.MonsterID)
	}

	updated := *getOutput.Monster
	updated.Skills = input.Skills
	updated.UpdatedAt = o.clock.Now().Unix()

	out, err := o.commitUpdate(ctx, &updated, getOutput.Scores)
	if err != nil {
		return nil, err
	}
	return &monster.UpdateSkillsOutput{Monster: out.Monster, Scores: out.Scores}, nil
}

// SetRole assigns a role label by hand. Manual labels stick, fill-blank
// passes never touch a non-empty role.
func (o *Orchestrator) SetRole(ctx context.Context, input *monster.SetRoleInput) (*monster.SetRoleOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("monsterID", input.MonsterID, vb)
	errors.ValidateRequired("role", input.Role, vb)
	if input.Role != "" {
		errors.ValidateEnum("role", input.Role, entities.Roles, vb)
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	getOutput, err := o.monsterRepo.Get(ctx, monsterrepo.GetInput{ID: input.MonsterID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get monster").
			WithMeta("monster_id", input.MonsterID)
	}

	updated := *getOutput.Monster
	updated.Role = input.Role
	updated.UpdatedAt = o.clock.Now().Unix()

	updateOutput, err := o.monsterRepo.Update(ctx, monsterrepo.UpdateInput{Monster: &updated})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update monster").
			WithMeta("monster_id", input.MonsterID)
	}

	slog.Info("Monster role set",
		"monster_id", input.MonsterID,
		"role", input.Role,
	)

	return &monster.SetRoleOutput{Monster: updateOutput.Monster}, nil
}

// commitUpdate writes an edited monster record and follows with a fill-blank
// derivation pass so scores and engine tags track the edit.
func (o *Orchestrator) commitUpdate(ctx context.Context, updated *entities.Monster, storedScores *entities.DerivedScores) (*monster.UpdateMonsterOutput, error) {
	updateOutput, err := o.monsterRepo.Update(ctx, monsterrepo.UpdateInput{Monster: updated})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update monster").
			WithMeta("monster_id", updated.ID)
	}

	result, err := o.recomputeAndLabel(ctx, updateOutput.Monster, storedScores, monster.RoleModeFillBlank)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to recompute monster after update").
			WithMeta("monster_id", updated.ID)
	}

	slog.Info("Monster updated",
		"monster_id", updated.ID,
		"derived_written", result.Written,
	)

	return &monster.UpdateMonsterOutput{
		Monster: result.Monster,
		Scores:  result.Scores,
	}, nil
}

func validateAttributes(attrs *entities.Attributes, vb *errors.ValidationBuilder) {
	errors.ValidateNonNegative("vitality", attrs.Vitality, vb)
	errors.ValidateNonNegative("speed", attrs.Speed, vb)
	errors.ValidateNonNegative("physicalPower", attrs.PhysicalPower, vb)
	errors.ValidateNonNegative("physicalResist", attrs.PhysicalResist, vb)
	errors.ValidateNonNegative("magicPower", attrs.MagicPower, vb)
	errors.ValidateNonNegative("magicResist", attrs.MagicResist, vb)
}

func validateSkills(skills []entities.Skill, vb *errors.ValidationBuilder) {
	for i, skill := range skills {
		if skill.Name == "" {
			vb.Fieldf("skills", "skill at index %d has no name", i)
		}
		if skill.Power != nil && *skill.Power < 0 {
			vb.Fieldf("skills", "skill %s has negative power", skill.Name)
		}
	}
}

// validateCuratedTags rejects engine-namespaced codes, those are owned by
// the classifier and never set by hand.
func validateCuratedTags(tags []string, vb *errors.ValidationBuilder) {
	for _, code := range tags {
		if entities.IsEngineTag(code) {
			vb.Fieldf("tags", "%s is an engine-owned code and cannot be set by hand", code)
		}
	}
}
