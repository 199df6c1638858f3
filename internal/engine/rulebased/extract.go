package rulebased

import (
	"sort"
	"strings"

	"github.com/MGX-LJY/kbxy-monsters-pro-sub000/internal/engine"
	"github.com/MGX-LJY/kbxy-monsters-pro-sub000/internal/entities"
)

// normalizeText lower-cases skill text and collapses runs of whitespace so
// patterns see one stable form
func normalizeText(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// extract scans every skill against the vocabulary and merges in signals
// implied by the monster's existing engine-namespaced tags.
func extract(monster *entities.Monster) *engine.ExtractSignalsOutput {
	found := make(map[string]int)
	var matches []engine.PatternMatch

	for _, skill := range monster.Skills {
		text := normalizeText(skill.Name + " " + skill.Description)
		if text == "" {
			continue
		}
		// One skill counts a signal at most once, however many of its
		// patterns fire.
		hit := make(map[string]bool, 4)
		for _, r := range vocabulary {
			if hit[r.signal] {
				continue
			}
			if m := r.expr.FindString(text); m != "" {
				hit[r.signal] = true
				matches = append(matches, engine.PatternMatch{
					Signal:  r.signal,
					Skill:   skill.Name,
					Keyword: m,
				})
			}
		}
		for sig := range hit {
			found[sig]++
		}
	}

	vector := buildVector(found)

	var tagDerived []string
	for _, tag := range monster.Tags {
		for _, sig := range tagImplications[tag] {
			if applyImplication(vector, sig) {
				tagDerived = append(tagDerived, sig)
			}
		}
	}
	sort.Strings(tagDerived)

	return &engine.ExtractSignalsOutput{
		Signals:    vector,
		Matches:    matches,
		TagDerived: tagDerived,
	}
}

// applyImplication ORs one tag-implied signal into the vector, reporting
// whether it changed anything. Implied pp disruption raises the any-flag
// only, never the per-skill hit count; implied hard control guarantees a
// count of at least one so the control formula sees it.
func applyImplication(v *engine.SignalVector, sig string) bool {
	switch sig {
	case sigPPDisrupt:
		if !v.PPDisruptAny {
			v.PPDisruptAny = true
			return true
		}
	case sigHardCC:
		if v.HardCCCount == 0 {
			v.HardCCCount = 1
			return true
		}
	case sigFirstStrike:
		if !v.FirstStrike {
			v.FirstStrike = true
			return true
		}
	case sigMultiHit:
		if !v.MultiHit {
			v.MultiHit = true
			return true
		}
	case sigHeal:
		if !v.Heal {
			v.Heal = true
			return true
		}
	}
	return false
}

// buildVector folds the per-signal skill counts into the typed vector
func buildVector(found map[string]int) *engine.SignalVector {
	v := &engine.SignalVector{}

	v.CritBoost = found[sigCritBoost] > 0
	v.IgnoreDefense = found[sigIgnoreDefense] > 0
	v.ArmorBreak = found[sigArmorBreak] > 0
	v.EnemyDefenseDown = found[sigEnemyDefenseDown] > 0
	v.EnemyResistDown = found[sigEnemyResistDown] > 0
	v.Mark = found[sigMark] > 0
	v.MultiHit = found[sigMultiHit] > 0

	v.Heal = found[sigHeal] > 0
	v.Shield = found[sigShield] > 0
	v.DamageReduction = found[sigDamageReduction] > 0
	v.SelfCleanse = found[sigSelfCleanse] > 0
	v.Immunity = found[sigImmunity] > 0
	v.LifeSteal = found[sigLifeSteal] > 0
	v.OwnDefenseUp = found[sigOwnDefenseUp] > 0
	v.OwnResistUp = found[sigOwnResistUp] > 0

	v.HardCCCount = found[sigHardCC]
	v.SoftCC = found[sigSoftCC] > 0
	v.AccuracyDown = found[sigAccuracyDown] > 0
	v.SpeedDown = found[sigSpeedDown] > 0
	v.AttackDown = found[sigAttackDown] > 0
	v.MagicDown = found[sigMagicDown] > 0

	v.FirstStrike = found[sigFirstStrike] > 0
	v.SpeedUp = found[sigSpeedUp] > 0
	v.ExtraTurn = found[sigExtraTurn] > 0
	v.ActionBarManip = found[sigActionBarManip] > 0

	v.PPDisruptHitCount = found[sigPPDisrupt]
	v.PPDisruptAny = found[sigPPDisrupt] > 0
	v.DispelEnemy = found[sigDispelEnemy] > 0
	v.SkillSeal = found[sigSkillSeal] > 0
	v.BuffSteal = found[sigBuffSteal] > 0
	v.MarkOrExpose = found[sigMarkOrExpose] > 0

	return v
}
