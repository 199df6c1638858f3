package engine

import (
	"github.com/MGX-LJY/kbxy-monsters-pro-sub000/internal/entities"
)

// SignalVector holds every mechanic feature the extractor can detect in a
// monster's skill set. Booleans mark presence; counts count matching skills
// (a skill matching the same signal twice still counts once).
type SignalVector struct {
	// Offense
	CritBoost        bool
	IgnoreDefense    bool
	ArmorBreak       bool
	EnemyDefenseDown bool
	EnemyResistDown  bool
	Mark             bool
	MultiHit         bool

	// Survive
	Heal            bool
	Shield          bool
	DamageReduction bool
	SelfCleanse     bool
	Immunity        bool
	LifeSteal       bool
	OwnDefenseUp    bool
	OwnResistUp     bool

	// Control
	HardCCCount  int
	SoftCC       bool
	AccuracyDown bool
	SpeedDown    bool
	AttackDown   bool
	MagicDown    bool

	// Tempo
	FirstStrike    bool
	SpeedUp        bool
	ExtraTurn      bool
	ActionBarManip bool

	// PP pressure
	PPDisruptHitCount int
	PPDisruptAny      bool
	DispelEnemy       bool
	SkillSeal         bool
	BuffSteal         bool
	MarkOrExpose      bool
}

// PatternMatch records one vocabulary hit for debugging and preview output
type PatternMatch struct {
	Signal  string
	Skill   string
	Keyword string
}

// ExtractSignalsInput contains the monster to scan
type ExtractSignalsInput struct {
	Monster *entities.Monster
}

// ExtractSignalsOutput contains the extracted signal vector and the
// per-pattern matches that produced it. TagDerived lists signals that were
// inferred from existing engine-namespaced tags rather than skill text.
type ExtractSignalsOutput struct {
	Signals    *SignalVector
	Matches    []PatternMatch
	TagDerived []string
}

// DeriveScoresInput contains the monster to score. Signals may be nil, in
// which case the engine extracts them itself.
type DeriveScoresInput struct {
	Monster *entities.Monster
	Signals *SignalVector
}

// DeriveScoresOutput contains the five derived scores, each in [0, 120].
// MonsterID and ComputedAt are left zero; the orchestrator stamps them.
type DeriveScoresOutput struct {
	Scores *entities.DerivedScores
}

// SuggestTagsInput contains the monster to classify. Signals may be nil.
type SuggestTagsInput struct {
	Monster *entities.Monster
	Signals *SignalVector
}

// SuggestTagsOutput contains the engine-namespaced tag codes that currently
// apply, sorted
type SuggestTagsOutput struct {
	Tags []string
}

// SuggestRoleInput contains the monster to classify. Signals may be nil.
type SuggestRoleInput struct {
	Monster *entities.Monster
	Signals *SignalVector
}

// SuggestRoleOutput contains the suggested role label code and a short
// human-readable reason for the choice
type SuggestRoleOutput struct {
	Role   string
	Reason string
}
