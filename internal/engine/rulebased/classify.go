package rulebased

import (
	"sort"

	"github.com/MGX-LJY/kbxy-monsters-pro-sub000/internal/engine"
	"github.com/MGX-LJY/kbxy-monsters-pro-sub000/internal/entities"
)

// Attribute thresholds for stat-trait tags and role profiles
const (
	highSpeedThreshold    = 110
	strongAttackThreshold = 115
	bulkVitalityThreshold = 115
	bulkAvgResistMin      = 105
	bulkMagicResistMin    = 110
	tankMagicResistMin    = 115
)

// suggestTags returns the engine-namespaced tag codes that currently apply,
// sorted. Foreign tags are never produced here; the reconciliation step
// merges this output with whatever curators added by hand.
func suggestTags(monster *entities.Monster, sig *engine.SignalVector) []string {
	a := monster.Attributes
	var tags []string

	if a.Speed >= highSpeedThreshold {
		tags = append(tags, entities.TagHighSpeed)
	}
	if a.PhysicalPower >= strongAttackThreshold {
		tags = append(tags, entities.TagStrongAttack)
	}
	if tanky(a) {
		tags = append(tags, entities.TagBulwark)
	}
	if sig.FirstStrike {
		tags = append(tags, entities.TagFirstStrike)
	}
	if sig.MultiHit {
		tags = append(tags, entities.TagMultiHit)
	}
	if controllish(sig) || sig.SoftCC {
		tags = append(tags, entities.TagControl)
	}
	if sig.PPDisruptAny {
		tags = append(tags, entities.TagPPPressure)
	}
	if supportish(sig) {
		tags = append(tags, entities.TagSupport)
	}

	sort.Strings(tags)
	return tags
}

// suggestRole picks one role label by first-match priority: offensive
// profiles win only when neither control nor support mechanics are present,
// control beats support, support beats tank, and anything without a clear
// profile lands on generalist.
func suggestRole(monster *entities.Monster, sig *engine.SignalVector) (string, string) {
	a := monster.Attributes

	offensive := offensive(a, sig)
	control := controllish(sig)
	support := supportish(sig)

	switch {
	case offensive && !control && !support:
		return entities.RoleAttacker, "offense-leaning stats or mechanics without control or support leanings"
	case control && !offensive:
		return entities.RoleController, "control mechanics dominate the kit"
	case support && !offensive:
		return entities.RoleSupport, "sustain or utility mechanics dominate the kit"
	case tankRole(a) && !offensive:
		return entities.RoleTank, "bulk thresholds met without offensive mechanics"
	default:
		return entities.RoleGeneralist, "no single profile dominates"
	}
}

func offensive(a entities.Attributes, sig *engine.SignalVector) bool {
	return a.PhysicalPower >= strongAttackThreshold ||
		sig.CritBoost || sig.IgnoreDefense || sig.MultiHit
}

func controllish(sig *engine.SignalVector) bool {
	return sig.HardCCCount >= 1 || sig.AccuracyDown || sig.SpeedDown
}

func supportish(sig *engine.SignalVector) bool {
	return sig.Heal || sig.Shield || sig.SelfCleanse || sig.Immunity ||
		sig.DamageReduction || sig.SpeedUp
}

func tanky(a entities.Attributes) bool {
	return a.Vitality >= bulkVitalityThreshold ||
		(a.PhysicalResist+a.MagicResist)/2 >= bulkAvgResistMin ||
		a.MagicResist >= bulkMagicResistMin
}

func tankRole(a entities.Attributes) bool {
	return a.Vitality >= bulkVitalityThreshold || a.MagicResist >= tankMagicResistMin
}
