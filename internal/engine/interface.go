// Package engine defines the derivation and auto-classification contract
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/MGX-LJY/kbxy-monsters-pro-sub000/internal/engine Engine

import (
	"context"
)

// Engine derives gameplay facts from monster records: skill-text signals,
// the five derived scores, tag suggestions, and a role suggestion.
//
// Implementations must be deterministic and side-effect free: the same
// monster yields the same outputs regardless of call order, wall time, or
// prior calls. Persistence of results is the orchestrator's job.
type Engine interface {
	// Signal extraction from skill text and existing tags
	ExtractSignals(ctx context.Context, input *ExtractSignalsInput) (*ExtractSignalsOutput, error)

	// Score derivation over attributes and signals
	DeriveScores(ctx context.Context, input *DeriveScoresInput) (*DeriveScoresOutput, error)

	// Classification
	SuggestTags(ctx context.Context, input *SuggestTagsInput) (*SuggestTagsOutput, error)
	SuggestRole(ctx context.Context, input *SuggestRoleInput) (*SuggestRoleOutput, error)
}
