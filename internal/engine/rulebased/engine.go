// Package rulebased implements the engine interface with a deterministic
// keyword-rule system: a central pattern vocabulary feeds signal extraction,
// and fixed weighted formulas turn attributes and signals into scores, tags,
// and a role.
package rulebased

import (
	"context"

	"github.com/MGX-LJY/kbxy-monsters-pro-sub000/internal/engine"
	"github.com/MGX-LJY/kbxy-monsters-pro-sub000/internal/errors"
)

// Engine is the rule-based implementation of engine.Engine
type Engine struct{}

// Config contains configuration for creating a new Engine. The vocabulary
// and formula weights are compiled in; there is nothing to configure yet,
// but construction goes through Config like every other component.
type Config struct{}

// Validate checks the configuration
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	return nil
}

// New creates a rule-based engine
func New(cfg *Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Engine{}, nil
}

// Verify interface compliance
var _ engine.Engine = (*Engine)(nil)

// ExtractSignals scans skill text and existing tags for mechanic signals
func (e *Engine) ExtractSignals(
	ctx context.Context,
	input *engine.ExtractSignalsInput,
) (*engine.ExtractSignalsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("extract signals input is required")
	}
	if input.Monster == nil {
		return nil, errors.InvalidArgument("monster is required")
	}

	return extract(input.Monster), nil
}

// DeriveScores computes the five derived scores from attributes and signals
func (e *Engine) DeriveScores(
	ctx context.Context,
	input *engine.DeriveScoresInput,
) (*engine.DeriveScoresOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("derive scores input is required")
	}
	if input.Monster == nil {
		return nil, errors.InvalidArgument("monster is required")
	}

	sig := input.Signals
	if sig == nil {
		sig = extract(input.Monster).Signals
	}

	return &engine.DeriveScoresOutput{
		Scores: derive(input.Monster, sig),
	}, nil
}

// SuggestTags returns the engine-namespaced tags that currently apply
func (e *Engine) SuggestTags(
	ctx context.Context,
	input *engine.SuggestTagsInput,
) (*engine.SuggestTagsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("suggest tags input is required")
	}
	if input.Monster == nil {
		return nil, errors.InvalidArgument("monster is required")
	}

	sig := input.Signals
	if sig == nil {
		sig = extract(input.Monster).Signals
	}

	return &engine.SuggestTagsOutput{
		Tags: suggestTags(input.Monster, sig),
	}, nil
}

// SuggestRole picks one role label for the monster
func (e *Engine) SuggestRole(
	ctx context.Context,
	input *engine.SuggestRoleInput,
) (*engine.SuggestRoleOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("suggest role input is required")
	}
	if input.Monster == nil {
		return nil, errors.InvalidArgument("monster is required")
	}

	sig := input.Signals
	if sig == nil {
		sig = extract(input.Monster).Signals
	}

	role, reason := suggestRole(input.Monster, sig)
	return &engine.SuggestRoleOutput{
		Role:   role,
		Reason: reason,
	}, nil
}
