package rulebased

import (
	"regexp"

	"github.com/MGX-LJY/kbxy-monsters-pro-sub000/internal/entities"
)

// Signal identifiers, used in pattern-match reporting and the tag fallback
// table. Counting signals (hard_cc, pp_disrupt) count matching skills; the
// rest are presence flags.
const (
	sigCritBoost        = "crit_boost"
	sigIgnoreDefense    = "ignore_defense"
	sigArmorBreak       = "armor_break"
	sigEnemyDefenseDown = "enemy_defense_down"
	sigEnemyResistDown  = "enemy_resist_down"
	sigMark             = "mark"
	sigMultiHit         = "multi_hit"

	sigHeal            = "heal"
	sigShield          = "shield"
	sigDamageReduction = "damage_reduction"
	sigSelfCleanse     = "self_cleanse"
	sigImmunity        = "immunity"
	sigLifeSteal       = "life_steal"
	sigOwnDefenseUp    = "own_defense_up"
	sigOwnResistUp     = "own_resist_up"

	sigHardCC       = "hard_cc"
	sigSoftCC       = "soft_cc"
	sigAccuracyDown = "accuracy_down"
	sigSpeedDown    = "speed_down"
	sigAttackDown   = "attack_down"
	sigMagicDown    = "magic_down"

	sigFirstStrike    = "first_strike"
	sigSpeedUp        = "speed_up"
	sigExtraTurn      = "extra_turn"
	sigActionBarManip = "action_bar_manip"

	sigPPDisrupt    = "pp_disrupt"
	sigDispelEnemy  = "dispel_enemy"
	sigSkillSeal    = "skill_seal"
	sigBuffSteal    = "buff_steal"
	sigMarkOrExpose = "mark_or_expose"
)

// rule binds one signal to one pattern. The table is ordered so extraction
// output (and therefore preview output) is stable.
type rule struct {
	signal string
	expr   *regexp.Regexp
}

// vocabulary is the central pattern table mapping skill text to signals.
// Source texts are predominantly Chinese with English phrasing appearing in
// imported and demo data, so every signal carries patterns for both. Skill
// text is lower-cased and whitespace-normalized before matching. Adding a
// game mechanic means adding rows here and nothing else.
var vocabulary = []rule{
	// Offense
	{sigCritBoost, regexp.MustCompile(`暴击|会心|crit`)},
	{sigIgnoreDefense, regexp.MustCompile(`无视.{0,3}防御|ignores? defen[cs]e`)},
	{sigArmorBreak, regexp.MustCompile(`破防|破甲|护甲破坏|armou?r break|break armou?r|sunder`)},
	{sigEnemyDefenseDown, regexp.MustCompile(`(降低|减少)对[方手].{0,4}防御|对[方手]防御(降低|下降)|defen[cs]e down|lowers? .{0,10}defen[cs]e`)},
	{sigEnemyResistDown, regexp.MustCompile(`(降低|减少)对[方手].{0,4}(魔抗|法抗|抗性)|对[方手](魔抗|法抗|抗性)(降低|下降)|resist(ance)? down|lowers? .{0,10}resist`)},
	{sigMark, regexp.MustCompile(`标记|marks? the|marked`)},
	{sigMultiHit, regexp.MustCompile(`连击|多段|连续攻击|随机攻击.{0,4}次|[2-9]连|multi[- ]?hit|hits? [2-9]+ times`)},

	// Survive
	{sigHeal, regexp.MustCompile(`回复|恢复|治疗|heal|regenerat|restores? hp`)},
	{sigShield, regexp.MustCompile(`护盾|护罩|屏障|shield|barrier`)},
	{sigDamageReduction, regexp.MustCompile(`减伤|伤害减半|受到.{0,6}伤害(降低|减少)|damage (taken )?reduc|takes? less damage|halves? damage`)},
	{sigSelfCleanse, regexp.MustCompile(`(解除|清除|净化)自身.{0,4}(异常|不良|状态)?|cleanse`)},
	{sigImmunity, regexp.MustCompile(`免疫|immun`)},
	{sigLifeSteal, regexp.MustCompile(`吸血|吸取.{0,3}体力|life ?steal|drains? hp`)},
	{sigOwnDefenseUp, regexp.MustCompile(`(提高|提升|强化)自身.{0,4}防御|自身防御(提高|提升)|defen[cs]e up`)},
	{sigOwnResistUp, regexp.MustCompile(`(提高|提升|强化)自身.{0,4}(魔抗|法抗|抗性)|自身(魔抗|法抗|抗性)(提高|提升)|resist(ance)? up`)},

	// Control
	{sigHardCC, regexp.MustCompile(`眩晕|晕眩|昏迷|昏睡|睡眠|冰冻|冻结|石化|束缚|定身|禁锢|麻痹|stuns?|freezes?|frozen|petrif|puts? .{0,10}to sleep|paralyz`)},
	{sigSoftCC, regexp.MustCompile(`混乱|嘲讽|魅惑|恐惧|confus|taunt|charm|terrif`)},
	{sigAccuracyDown, regexp.MustCompile(`(降低|减少).{0,3}命中|命中(降低|下降)|致盲|accuracy down|lowers? .{0,10}accuracy|blind`)},
	{sigSpeedDown, regexp.MustCompile(`(降低|减少).{0,4}速度|速度(降低|下降)|减速|speed down|slows? `)},
	{sigAttackDown, regexp.MustCompile(`(降低|减少).{0,2}攻击|(降低|减少).{0,4}物攻|攻击(降低|下降)|attack down|weaken`)},
	{sigMagicDown, regexp.MustCompile(`(降低|减少).{0,4}(魔攻|特攻|魔法攻击|法术攻击)|(魔攻|特攻)(降低|下降)|magic (attack )?down`)},

	// Tempo
	{sigFirstStrike, regexp.MustCompile(`先手|先制|优先出手|率先行动|first strike|strikes? first|priority`)},
	{sigSpeedUp, regexp.MustCompile(`(提高|提升).{0,4}速度|速度(提高|提升)|加速|speed up|haste`)},
	{sigExtraTurn, regexp.MustCompile(`额外行动|再次行动|追加回合|额外回合|extra turn|acts? again|additional action`)},
	{sigActionBarManip, regexp.MustCompile(`行动条|行动值|action bar|turn meter`)},

	// PP pressure. The pp_disrupt rule is deliberately narrow: only
	// skill-use-count reduction counts, generic dispel text does not.
	{sigPPDisrupt, regexp.MustCompile(`(减少|扣除|降低).{0,12}(使用次数|技能次数)|(减少|扣除|降低).{0,4}pp|pp.{0,3}(减少|扣除|降低)|reduces? .{0,12}pp|drains? pp|deplete`)},
	{sigDispelEnemy, regexp.MustCompile(`驱散|(消除|解除)对[方手].{0,4}(增益|强化|buff)?|dispel|purge|removes? .{0,8}buff`)},
	{sigSkillSeal, regexp.MustCompile(`封印|禁用技能|无法使用技能|技能封锁|沉默|seal|silence`)},
	{sigBuffSteal, regexp.MustCompile(`(偷取|夺取|窃取).{0,4}(增益|强化|buff)?|steals? .{0,8}buff`)},
	{sigMarkOrExpose, regexp.MustCompile(`标记|暴露|破绽|expose|marks? the|marked`)},
}

// tagImplications maps engine-owned tag codes to the signals they imply.
// Classification is monotonic with respect to prior runs: a monster that
// once earned a mechanic tag keeps the underlying signal even when its
// current skill text no longer matches any pattern (text edits, truncated
// imports). Attribute-threshold tags imply nothing since attributes are
// always available to recompute from.
var tagImplications = map[string][]string{
	entities.TagFirstStrike: {sigFirstStrike},
	entities.TagMultiHit:    {sigMultiHit},
	entities.TagControl:     {sigHardCC},
	entities.TagPPPressure:  {sigPPDisrupt},
	entities.TagSupport:     {sigHeal},
}
