package entities

import (
	"sort"
	"strings"
)

// Tag namespace prefixes. Codes under these three prefixes are owned by the
// engine: each recomputation replaces that whole portion of a monster's tag
// set with the fresh suggestion. Every other code is a foreign (curator)
// tag and is preserved verbatim.
const (
	TagPrefixBuff    = "buf_"
	TagPrefixDebuff  = "deb_"
	TagPrefixUtility = "util_"
)

// Engine-owned tag codes, the classifier's complete output vocabulary
const (
	TagHighSpeed    = "buf_high_speed"
	TagStrongAttack = "buf_strong_attack"
	TagBulwark      = "buf_bulwark"
	TagFirstStrike  = "buf_first_strike"
	TagMultiHit     = "buf_multi_hit"
	TagControl      = "deb_control"
	TagPPPressure   = "deb_pp_pressure"
	TagSupport      = "util_support"
)

// Tag kind codes for the tag registry
const (
	TagKindBuff    = "buff"
	TagKindDebuff  = "debuff"
	TagKindUtility = "utility"
	TagKindFree    = "free"
)

// Tag is a registry entry pairing a tag code with its localized display name
type Tag struct {
	Code      string
	Display   string
	Kind      string
	Note      string
	CreatedAt int64
}

// DefaultTags returns registry entries for every engine-owned tag code
func DefaultTags() []*Tag {
	return []*Tag{
		{Code: TagHighSpeed, Display: "高速", Kind: TagKindBuff},
		{Code: TagStrongAttack, Display: "强攻", Kind: TagKindBuff},
		{Code: TagBulwark, Display: "耐久", Kind: TagKindBuff},
		{Code: TagFirstStrike, Display: "先手", Kind: TagKindBuff},
		{Code: TagMultiHit, Display: "多段", Kind: TagKindBuff},
		{Code: TagControl, Display: "控制", Kind: TagKindDebuff},
		{Code: TagPPPressure, Display: "PP压制", Kind: TagKindDebuff},
		{Code: TagSupport, Display: "辅助", Kind: TagKindUtility},
	}
}

// IsEngineTag reports whether code belongs to one of the three
// engine-owned namespaces
func IsEngineTag(code string) bool {
	return strings.HasPrefix(code, TagPrefixBuff) ||
		strings.HasPrefix(code, TagPrefixDebuff) ||
		strings.HasPrefix(code, TagPrefixUtility)
}

// TagKindForCode derives the registry kind from a code's namespace prefix
func TagKindForCode(code string) string {
	switch {
	case strings.HasPrefix(code, TagPrefixBuff):
		return TagKindBuff
	case strings.HasPrefix(code, TagPrefixDebuff):
		return TagKindDebuff
	case strings.HasPrefix(code, TagPrefixUtility):
		return TagKindUtility
	default:
		return TagKindFree
	}
}

// PartitionTags splits a tag set into its engine-namespaced portion and its
// foreign portion, preserving order within each portion.
func PartitionTags(tags []string) (engine, foreign []string) {
	for _, t := range tags {
		if IsEngineTag(t) {
			engine = append(engine, t)
		} else {
			foreign = append(foreign, t)
		}
	}
	return engine, foreign
}

// NormalizeTags returns a sorted copy of tags with duplicates and empty
// codes removed
func NormalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// MergeTags unions the foreign portion of current with the fresh engine
// suggestion, returning a normalized tag set. This is the tag half of the
// reconciliation protocol: foreign tags survive, the engine-namespaced
// portion is replaced outright.
func MergeTags(current, engineSuggestion []string) []string {
	_, foreign := PartitionTags(current)
	merged := make([]string, 0, len(foreign)+len(engineSuggestion))
	merged = append(merged, foreign...)
	merged = append(merged, engineSuggestion...)
	return NormalizeTags(merged)
}
