package monster

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/MGX-LJY/kbxy-monsters-pro-sub000/internal/entities"
	"github.com/MGX-LJY/kbxy-monsters-pro-sub000/internal/errors"
	tagrepo "github.com/MGX-LJY/kbxy-monsters-pro-sub000/internal/repositories/tag"
	"github.com/MGX-LJY/kbxy-monsters-pro-sub000/internal/services/monster"
)

// RegisterTag adds a curator tag to the registry. Engine-namespaced codes
// are rejected, the classifier owns those and seeds them itself.
func (o *Orchestrator) RegisterTag(ctx context.Context, input *monster.RegisterTagInput) (*monster.RegisterTagOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("code", input.Code, vb)
	if entities.IsEngineTag(input.Code) {
		vb.Fieldf("code", "%s is in an engine-owned namespace", input.Code)
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	display := input.Display
	if display == "" {
		display = input.Code
	}

	tag := &entities.Tag{
		Code:      input.Code,
		Display:   display,
		Kind:      entities.TagKindFree,
		Note:      input.Note,
		CreatedAt: o.clock.Now().Unix(),
	}

	createOutput, err := o.tagRepo.Create(ctx, tagrepo.CreateInput{Tag: tag})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to register tag").
			WithMeta("tag_code", input.Code)
	}

	slog.Info("Tag registered", "tag_code", tag.Code, "display", tag.Display)

	return &monster.RegisterTagOutput{Tag: createOutput.Tag}, nil
}

// GetTag returns a registry entry by code
func (o *Orchestrator) GetTag(ctx context.Context, input *monster.GetTagInput) (*monster.GetTagOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("code", input.Code, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	getOutput, err := o.tagRepo.Get(ctx, tagrepo.GetInput{Code: input.Code})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get tag").
			WithMeta("tag_code", input.Code)
	}

	return &monster.GetTagOutput{Tag: getOutput.Tag}, nil
}

// ListTags returns every registered tag
func (o *Orchestrator) ListTags(ctx context.Context, input *monster.ListTagsInput) (*monster.ListTagsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	listOutput, err := o.tagRepo.List(ctx, tagrepo.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tags")
	}

	return &monster.ListTagsOutput{Tags: listOutput.Tags}, nil
}

// DeleteTag removes a curator tag from the registry. Engine-owned entries
// stay put, and monsters carrying the code keep it either way.
func (o *Orchestrator) DeleteTag(ctx context.Context, input *monster.DeleteTagInput) (*monster.DeleteTagOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("code", input.Code, vb)
	if entities.IsEngineTag(input.Code) {
		vb.Fieldf("code", "%s is in an engine-owned namespace", input.Code)
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	_, err := o.tagRepo.Delete(ctx, tagrepo.DeleteInput{Code: input.Code})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete tag").
			WithMeta("tag_code", input.Code)
	}

	slog.Info("Tag deleted", "tag_code", input.Code)

	return &monster.DeleteTagOutput{
		Message: fmt.Sprintf("Tag %s deleted", input.Code),
	}, nil
}

// SeedTags upserts the registry entries for the engine tag vocabulary
func (o *Orchestrator) SeedTags(ctx context.Context, input *monster.SeedTagsInput) (*monster.SeedTagsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	now := o.clock.Now().Unix()
	tags := entities.DefaultTags()
	for _, tag := range tags {
		tag.CreatedAt = now
	}

	seedOutput, err := o.tagRepo.Seed(ctx, tagrepo.SeedInput{Tags: tags})
	if err != nil {
		return nil, errors.Wrap(err, "failed to seed tags")
	}

	slog.Info("Engine tags seeded", "count", seedOutput.Seeded)

	return &monster.SeedTagsOutput{Seeded: seedOutput.Seeded}, nil
}
