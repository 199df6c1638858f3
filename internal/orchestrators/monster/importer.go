package monster

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/MGX-LJY/kbxy-monsters-pro-sub000/internal/clients/bestiary"
	"github.com/MGX-LJY/kbxy-monsters-pro-sub000/internal/entities"
	"github.com/MGX-LJY/kbxy-monsters-pro-sub000/internal/errors"
	monsterrepo "github.com/MGX-LJY/kbxy-monsters-pro-sub000/internal/repositories/monster"
	"github.com/MGX-LJY/kbxy-monsters-pro-sub000/internal/services/monster"
)

const (
	// importIDPrefix makes bestiary record IDs deterministic, which is what
	// keeps re-imports idempotent
	importIDPrefix = "mon_dnd5e_"

	// Ability score to attribute scale projection
	abilityScaleBase   = 55.0
	abilityScaleFactor = 2.5

	// Generated attributes roll 3d30 on top of this base
	attributeRollBase = 40

	maxGenerateCount = 100
)

// ImportMonsters pulls monsters from the bestiary source into the local
// store. Explicit keys win over the limit, records that already exist are
// skipped, and per-key failures are collected without stopping the run.
func (o *Orchestrator) ImportMonsters(ctx context.Context, input *monster.ImportMonstersInput) (*monster.ImportMonstersOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	keys := input.Keys
	if len(keys) == 0 {
		refs, err := o.bestiaryClient.ListMonsterRefs(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to list bestiary monsters")
		}
		keys = make([]string, 0, len(refs))
		for _, ref := range refs {
			keys = append(keys, ref.Key)
		}
		if input.Limit > 0 && len(keys) > input.Limit {
			keys = keys[:input.Limit]
		}
	}

	var imported, skipped int
	var failures []monster.ImportFailure

	for _, key := range keys {
		id := importMonsterID(key)

		_, err := o.monsterRepo.Get(ctx, monsterrepo.GetInput{ID: id})
		if err == nil {
			skipped++
			continue
		}
		if !errors.IsNotFound(err) {
			failures = append(failures, monster.ImportFailure{Key: key, Message: err.Error()})
			continue
		}

		data, err := o.bestiaryClient.GetMonsterData(ctx, key)
		if err != nil {
			failures = append(failures, monster.ImportFailure{Key: key, Message: err.Error()})
			continue
		}

		now := o.clock.Now().Unix()
		mon := &entities.Monster{
			ID:         id,
			Name:       data.Name,
			Attributes: convertAbilityScores(data),
			CreatedAt:  now,
			UpdatedAt:  now,
		}

		createOutput, err := o.monsterRepo.Create(ctx, monsterrepo.CreateInput{Monster: mon})
		if err != nil {
			if errors.IsAlreadyExists(err) {
				skipped++
				continue
			}
			failures = append(failures, monster.ImportFailure{Key: key, Message: err.Error()})
			continue
		}

		if _, err := o.recomputeAndLabel(ctx, createOutput.Monster, nil, monster.RoleModeFillBlank); err != nil {
			// The record exists but is unlabeled, the next read heals it
			failures = append(failures, monster.ImportFailure{Key: key, Message: err.Error()})
			continue
		}

		imported++
	}

	slog.Info("Bestiary import finished",
		"imported", imported,
		"skipped", skipped,
		"failed", len(failures),
	)

	return &monster.ImportMonstersOutput{
		Imported: imported,
		Skipped:  skipped,
		Failures: failures,
	}, nil
}

// GenerateMonsters seeds demo monsters with rolled attributes and skills
// drawn from a fixed pool, then labels each one with a fill-blank pass.
func (o *Orchestrator) GenerateMonsters(ctx context.Context, input *monster.GenerateMonstersInput) (*monster.GenerateMonstersOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRange("count", input.Count, 1, maxGenerateCount, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	monsters := make([]*entities.Monster, 0, input.Count)
	for i := 0; i < input.Count; i++ {
		attrs, err := o.rollAttributes()
		if err != nil {
			return nil, errors.Wrap(err, "failed to roll attributes")
		}

		serial := i/len(demoNames) + 1
		name := fmt.Sprintf("%s%d号", demoNames[i%len(demoNames)], serial)

		now := o.clock.Now().Unix()
		mon := &entities.Monster{
			ID:      o.idGen.Generate(),
			Name:    name,
			Element: demoElements[i%len(demoElements)],
			Skills: []entities.Skill{
				demoAttackSkills[i%len(demoAttackSkills)],
				demoSupportSkills[i%len(demoSupportSkills)],
			},
			Attributes: attrs,
			CreatedAt:  now,
			UpdatedAt:  now,
		}

		createOutput, err := o.monsterRepo.Create(ctx, monsterrepo.CreateInput{Monster: mon})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to create generated monster %s", name)
		}

		result, err := o.recomputeAndLabel(ctx, createOutput.Monster, nil, monster.RoleModeFillBlank)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to derive scores for generated monster %s", name)
		}

		monsters = append(monsters, result.Monster)
	}

	slog.Info("Generated demo monsters", "count", len(monsters))

	return &monster.GenerateMonstersOutput{Monsters: monsters}, nil
}

// rollAttributes rolls each base attribute as 3d30 over the base value
func (o *Orchestrator) rollAttributes() (entities.Attributes, error) {
	values := make([]float64, 6)
	for i := range values {
		roll, err := dice.NewRoll(3, 30)
		if err != nil {
			return entities.Attributes{}, err
		}
		values[i] = float64(attributeRollBase + roll.GetValue())
	}

	return entities.Attributes{
		Vitality:       values[0],
		Speed:          values[1],
		PhysicalPower:  values[2],
		PhysicalResist: values[3],
		MagicPower:     values[4],
		MagicResist:    values[5],
	}, nil
}

// importMonsterID builds the deterministic record ID for a bestiary key
func importMonsterID(key string) string {
	return importIDPrefix + key
}

// convertAbilityScores maps 5e ability scores onto the kbxy attribute
// scale. Constitution backs both vitality and physical resist, charisma
// has no analogue here and is dropped.
func convertAbilityScores(data *bestiary.MonsterData) entities.Attributes {
	return entities.Attributes{
		Vitality:       convertAbilityScore(data.Constitution),
		Speed:          convertAbilityScore(data.Dexterity),
		PhysicalPower:  convertAbilityScore(data.Strength),
		PhysicalResist: convertAbilityScore(data.Constitution),
		MagicPower:     convertAbilityScore(data.Intelligence),
		MagicResist:    convertAbilityScore(data.Wisdom),
	}
}

// convertAbilityScore projects one ability score onto the attribute scale
func convertAbilityScore(score int) float64 {
	value := math.Round(abilityScaleBase + abilityScaleFactor*float64(score))
	if value < 0 {
		return 0
	}
	return value
}

func skillPower(value int32) *int32 {
	return &value
}

// Demo seed pools. Skill descriptions use real source phrasing so the
// generated data exercises the extraction vocabulary.
var (
	demoNames = []string{
		"烈焰兽", "碧水灵", "雷鸣鸟", "岩甲龟", "疾风狐", "幽影猫", "圣光鹿", "毒牙蛛",
	}

	demoElements = []string{
		"火", "水", "雷", "土", "风", "暗", "光", "毒",
	}

	demoAttackSkills = []entities.Skill{
		{Name: "烈焰冲击", Kind: "物理", Element: "火", Power: skillPower(100), Description: "全力一击，暴击率提高"},
		{Name: "激流旋涡", Kind: "法术", Element: "水", Power: skillPower(95), Description: "卷起旋涡，有几率降低对方速度"},
		{Name: "雷光连刺", Kind: "物理", Element: "雷", Power: skillPower(40), Description: "连续攻击2到3次"},
		{Name: "岩石重压", Kind: "物理", Element: "土", Power: skillPower(110), Description: "大地之力，无视对方防御"},
		{Name: "风刃乱舞", Kind: "物理", Element: "风", Power: skillPower(85), Description: "先制+1，优先出手"},
		{Name: "暗影偷袭", Kind: "物理", Element: "暗", Power: skillPower(90), Description: "命中后偷取对方增益"},
		{Name: "圣光审判", Kind: "法术", Element: "光", Power: skillPower(105), Description: "神圣之光，有几率令对方眩晕"},
		{Name: "剧毒尖牙", Kind: "物理", Element: "毒", Power: skillPower(80), Description: "命中后减少对方技能使用次数"},
	}

	demoSupportSkills = []entities.Skill{
		{Name: "治愈之光", Kind: "变化", Element: "光", Description: "回复自身最大体力的二分之一"},
		{Name: "铁壁", Kind: "变化", Element: "土", Description: "提高自身防御和魔抗"},
		{Name: "净化之雾", Kind: "变化", Element: "水", Description: "清除自身异常状态"},
		{Name: "威吓", Kind: "变化", Element: "暗", Description: "降低对方攻击"},
		{Name: "疾风步", Kind: "变化", Element: "风", Description: "提高自身速度"},
		{Name: "魔光护盾", Kind: "变化", Element: "光", Description: "展开护盾，受到的伤害减少"},
		{Name: "封印之符", Kind: "变化", Element: "暗", Description: "封印对方最后使用的技能"},
		{Name: "迷惑香气", Kind: "变化", Element: "毒", Description: "降低对方命中"},
	}
)
