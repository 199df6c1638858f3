package rulebased

import (
	"math"
	"sort"

	"github.com/MGX-LJY/kbxy-monsters-pro-sub000/internal/engine"
	"github.com/MGX-LJY/kbxy-monsters-pro-sub000/internal/entities"
)

// Score bounds. Every derived score is rounded to the nearest integer and
// clamped into [scoreMin, scoreMax]; the offense sum is additionally capped
// at offenseRawCap before rounding.
const (
	scoreMin      = 0
	scoreMax      = 120
	offenseRawCap = 130
)

// Skill-power bonus thresholds: the average of the three strongest skill
// powers grants a flat offense bonus.
const (
	powerBonusHighThreshold = 160
	powerBonusHigh          = 6
	powerBonusLowThreshold  = 150
	powerBonusLow           = 3
)

// derive computes all five scores for a monster under the given signals
func derive(monster *entities.Monster, sig *engine.SignalVector) *entities.DerivedScores {
	a := monster.Attributes
	return &entities.DerivedScores{
		Offense:    clampScore(deriveOffense(a, sig, monster.Skills)),
		Survive:    clampScore(deriveSurvive(a, sig)),
		Control:    clampScore(deriveControl(a, sig)),
		Tempo:      clampScore(deriveTempo(a, sig)),
		PPPressure: clampScore(derivePPPressure(sig)),
	}
}

func deriveOffense(a entities.Attributes, sig *engine.SignalVector, skills []entities.Skill) float64 {
	atkHigh := math.Max(a.PhysicalPower, a.MagicPower)
	atkLow := math.Min(a.PhysicalPower, a.MagicPower)

	base := 0.55*atkHigh + 0.15*atkLow + 0.20*a.Speed

	bonus := 0.0
	bonus += 10 * b2f(sig.CritBoost)
	bonus += 12 * b2f(sig.IgnoreDefense)
	bonus += 8 * b2f(sig.MultiHit)
	bonus += 6 * b2f(sig.ArmorBreak)
	bonus += 4 * b2f(sig.EnemyDefenseDown)
	bonus += 4 * b2f(sig.EnemyResistDown)
	bonus += 3 * b2f(sig.Mark)

	return math.Min(offenseRawCap, base+bonus+skillPowerBonus(skills))
}

func deriveSurvive(a entities.Attributes, sig *engine.SignalVector) float64 {
	base := 0.45*a.Vitality + 0.30*a.PhysicalResist + 0.25*a.MagicResist

	bonus := 0.0
	bonus += 10 * b2f(sig.Heal)
	bonus += 10 * b2f(sig.Shield)
	bonus += 8 * b2f(sig.DamageReduction)
	bonus += 5 * b2f(sig.SelfCleanse)
	bonus += 4 * b2f(sig.Immunity)
	bonus += 3 * b2f(sig.LifeSteal)
	bonus += 2 * b2f(sig.OwnDefenseUp)
	bonus += 2 * b2f(sig.OwnResistUp)

	return base + bonus
}

func deriveControl(a entities.Attributes, sig *engine.SignalVector) float64 {
	score := 14 * float64(sig.HardCCCount)
	score += 8 * b2f(sig.SoftCC)
	score += 6 * b2f(sig.AccuracyDown)
	score += 4 * b2f(sig.SpeedDown)
	score += 3 * b2f(sig.AttackDown)
	score += 3 * b2f(sig.MagicDown)
	score += 0.10 * a.Speed
	return score
}

func deriveTempo(a entities.Attributes, sig *engine.SignalVector) float64 {
	score := 1.0 * a.Speed
	score += 15 * b2f(sig.FirstStrike)
	score += 10 * b2f(sig.ExtraTurn)
	score += 8 * b2f(sig.SpeedUp)
	score += 6 * b2f(sig.ActionBarManip)
	return score
}

func derivePPPressure(sig *engine.SignalVector) float64 {
	score := 18 * b2f(sig.PPDisruptAny)
	score += 5 * float64(sig.PPDisruptHitCount)
	score += 8 * b2f(sig.DispelEnemy)
	score += 10 * b2f(sig.SkillSeal)
	score += 6 * b2f(sig.BuffSteal)
	score += 3 * b2f(sig.MarkOrExpose)
	return score
}

// skillPowerBonus rewards monsters whose strongest skills carry high power
// values. Skills without a power value are ignored; a monster with no
// powered skills earns no bonus.
func skillPowerBonus(skills []entities.Skill) float64 {
	var powers []int32
	for _, s := range skills {
		if s.Power != nil {
			powers = append(powers, *s.Power)
		}
	}
	if len(powers) == 0 {
		return 0
	}

	sort.Slice(powers, func(i, j int) bool { return powers[i] > powers[j] })
	n := len(powers)
	if n > 3 {
		n = 3
	}
	sum := 0.0
	for _, p := range powers[:n] {
		sum += float64(p)
	}
	avg := sum / float64(n)

	switch {
	case avg >= powerBonusHighThreshold:
		return powerBonusHigh
	case avg >= powerBonusLowThreshold:
		return powerBonusLow
	default:
		return 0
	}
}

func clampScore(v float64) int32 {
	r := math.Round(v)
	if r < scoreMin {
		return scoreMin
	}
	if r > scoreMax {
		return scoreMax
	}
	return int32(r)
}

func b2f(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
