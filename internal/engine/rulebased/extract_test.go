package rulebased

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/MGX-LJY/kbxy-monsters-pro-sub000/internal/engine"
	"github.com/MGX-LJY/kbxy-monsters-pro-sub000/internal/entities"
)

type ExtractSignalsTestSuite struct {
	suite.Suite
	engine *Engine
	ctx    context.Context
}

func TestExtractSignalsSuite(t *testing.T) {
	suite.Run(t, new(ExtractSignalsTestSuite))
}

func (s *ExtractSignalsTestSuite) SetupTest() {
	eng, err := New(&Config{})
	s.Require().NoError(err)
	s.engine = eng
	s.ctx = context.Background()
}

func (s *ExtractSignalsTestSuite) extract(monster *entities.Monster) *engine.ExtractSignalsOutput {
	out, err := s.engine.ExtractSignals(s.ctx, &engine.ExtractSignalsInput{Monster: monster})
	s.Require().NoError(err)
	s.Require().NotNil(out.Signals)
	return out
}

func (s *ExtractSignalsTestSuite) TestChineseControlText() {
	monster := &entities.Monster{
		Name: "石像守卫",
		Skills: []entities.Skill{
			{Name: "岩石重击", Description: "攻击对方，有50%几率使对方眩晕1回合"},
			{Name: "沙尘暴", Description: "降低对方命中等级"},
		},
	}

	out := s.extract(monster)
	s.Assert().Equal(1, out.Signals.HardCCCount)
	s.Assert().True(out.Signals.AccuracyDown)
	s.Assert().False(out.Signals.PPDisruptAny)
	s.Assert().Empty(out.TagDerived)
}

func (s *ExtractSignalsTestSuite) TestHardCCCountsSkillsNotKeywords() {
	monster := &entities.Monster{
		Name: "梦魇",
		Skills: []entities.Skill{
			// Two hard CC words in one skill still count once
			{Name: "噩梦缠绕", Description: "使对方昏睡，若已处于眩晕状态则伤害翻倍"},
			{Name: "寒冰牢笼", Description: "冰冻对方1回合"},
			{Name: "普通攻击", Description: "造成物理伤害"},
		},
	}

	out := s.extract(monster)
	s.Assert().Equal(2, out.Signals.HardCCCount)
}

func (s *ExtractSignalsTestSuite) TestPPDisruptIsNarrow() {
	withPPText := &entities.Monster{
		Skills: []entities.Skill{
			{Name: "魔力汲取", Description: "减少对方随机一个技能的使用次数2点"},
		},
	}
	out := s.extract(withPPText)
	s.Assert().True(out.Signals.PPDisruptAny)
	s.Assert().Equal(1, out.Signals.PPDisruptHitCount)

	// Generic dispel wording must not count as pp disruption
	dispelOnly := &entities.Monster{
		Skills: []entities.Skill{
			{Name: "净化之光", Description: "驱散对方身上的所有增益效果"},
		},
	}
	out = s.extract(dispelOnly)
	s.Assert().False(out.Signals.PPDisruptAny)
	s.Assert().Equal(0, out.Signals.PPDisruptHitCount)
	s.Assert().True(out.Signals.DispelEnemy)
}

func (s *ExtractSignalsTestSuite) TestTagFallbackKeepsPPPressure() {
	// Previously classified monster whose skill text degraded: the
	// deb_pp_pressure tag alone must keep the any-flag alive without
	// inventing a hit count.
	monster := &entities.Monster{
		Tags: []string{entities.TagPPPressure, "my-custom-note"},
		Skills: []entities.Skill{
			{Name: "撞击", Description: "造成伤害"},
		},
	}

	out := s.extract(monster)
	s.Assert().True(out.Signals.PPDisruptAny)
	s.Assert().Equal(0, out.Signals.PPDisruptHitCount)
	s.Assert().Equal([]string{sigPPDisrupt}, out.TagDerived)
}

func (s *ExtractSignalsTestSuite) TestTagFallbackControl() {
	monster := &entities.Monster{
		Tags: []string{entities.TagControl},
	}

	out := s.extract(monster)
	s.Assert().Equal(1, out.Signals.HardCCCount)
	s.Assert().Equal([]string{sigHardCC}, out.TagDerived)

	// Text evidence wins over the fallback: no double count
	withText := &entities.Monster{
		Tags: []string{entities.TagControl},
		Skills: []entities.Skill{
			{Name: "电磁炮", Description: "麻痹对方"},
			{Name: "冻气", Description: "冰冻对方"},
		},
	}
	out = s.extract(withText)
	s.Assert().Equal(2, out.Signals.HardCCCount)
	s.Assert().Empty(out.TagDerived)
}

func (s *ExtractSignalsTestSuite) TestForeignTagsImplyNothing() {
	monster := &entities.Monster{
		Tags: []string{"my-custom-note", "event-2024"},
	}

	out := s.extract(monster)
	s.Assert().Equal(&engine.SignalVector{}, out.Signals)
	s.Assert().Empty(out.TagDerived)
}

func (s *ExtractSignalsTestSuite) TestEnglishPatterns() {
	monster := &entities.Monster{
		Name: "Imported Wyrm",
		Skills: []entities.Skill{
			{Name: "Frost Breath", Description: "May freeze the target for one turn"},
			{Name: "Quick Claws", Description: "Multi-hit attack, strikes first when HP is full"},
			{Name: "Mending Scales", Description: "Heal 30% of max HP"},
		},
	}

	out := s.extract(monster)
	s.Assert().Equal(1, out.Signals.HardCCCount)
	s.Assert().True(out.Signals.MultiHit)
	s.Assert().True(out.Signals.FirstStrike)
	s.Assert().True(out.Signals.Heal)
}

func (s *ExtractSignalsTestSuite) TestOffenseAndSurviveSignals() {
	monster := &entities.Monster{
		Skills: []entities.Skill{
			{Name: "破甲猛击", Description: "破防攻击，必定暴击"},
			{Name: "贯穿击", Description: "无视对方防御造成伤害"},
			{Name: "守护之盾", Description: "为自身添加护盾，受到的伤害减少50%"},
			{Name: "吸血之爪", Description: "吸血，回复造成伤害的30%"},
		},
	}

	out := s.extract(monster)
	s.Assert().True(out.Signals.ArmorBreak)
	s.Assert().True(out.Signals.CritBoost)
	s.Assert().True(out.Signals.IgnoreDefense)
	s.Assert().True(out.Signals.Shield)
	s.Assert().True(out.Signals.DamageReduction)
	s.Assert().True(out.Signals.LifeSteal)
	s.Assert().True(out.Signals.Heal)
}

func (s *ExtractSignalsTestSuite) TestTempoSignals() {
	monster := &entities.Monster{
		Skills: []entities.Skill{
			{Name: "疾风步", Description: "提高自身速度等级，优先出手"},
			{Name: "时间扭曲", Description: "获得额外行动机会并提升行动条"},
		},
	}

	out := s.extract(monster)
	s.Assert().True(out.Signals.SpeedUp)
	s.Assert().True(out.Signals.FirstStrike)
	s.Assert().True(out.Signals.ExtraTurn)
	s.Assert().True(out.Signals.ActionBarManip)
}

func (s *ExtractSignalsTestSuite) TestMatchesReportPatternHits() {
	monster := &entities.Monster{
		Skills: []entities.Skill{
			{Name: "冰封", Description: "冰冻对方"},
		},
	}

	out := s.extract(monster)
	s.Require().Len(out.Matches, 1)
	s.Assert().Equal(sigHardCC, out.Matches[0].Signal)
	s.Assert().Equal("冰封", out.Matches[0].Skill)
	s.Assert().Equal("冰冻", out.Matches[0].Keyword)
}

func (s *ExtractSignalsTestSuite) TestEmptySkillsAndBlankText() {
	out := s.extract(&entities.Monster{Name: "白板"})
	s.Assert().Equal(&engine.SignalVector{}, out.Signals)
	s.Assert().Empty(out.Matches)

	blank := &entities.Monster{
		Skills: []entities.Skill{{Name: "", Description: "   "}},
	}
	out = s.extract(blank)
	s.Assert().Equal(&engine.SignalVector{}, out.Signals)
}

func TestNormalizeText(t *testing.T) {
	assert.Equal(t, "frost breath hits twice", normalizeText("  Frost   Breath\nhits TWICE "))
	assert.Equal(t, "眩晕 降低命中", normalizeText("眩晕　 降低命中"))
	assert.Equal(t, "", normalizeText("   "))
}
