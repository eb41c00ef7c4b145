package service

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"

	"xivfinder.app/backend/internal/gamedata"
	"xivfinder.app/backend/internal/model"
)

func newCategoryFixture() *Category {
	duties := map[uint16]gamedata.DutyInfo{
		100: {Name: gamedata.I18n{EN: "Fixture Dungeon"}, ContentKind: model.ContentKindDungeons},
		101: {Name: gamedata.I18n{EN: "Fixture Trial"}, ContentKind: model.ContentKindTrials},
		102: {Name: gamedata.I18n{EN: "Fixture Raid"}, ContentKind: model.ContentKindRaids},
		103: {Name: gamedata.I18n{EN: "Fixture Guildhest"}, ContentKind: model.ContentKindGuildhests},
		104: {Name: gamedata.I18n{EN: "Fixture Arena"}, ContentKind: model.ContentKindPvp},
		200: {Name: gamedata.I18n{EN: "Fixture Ultimate"}, HighEnd: true, ContentKind: model.ContentKindRaids},
		300: {Name: gamedata.I18n{EN: "Fixture Oddity"}, ContentKind: model.ContentKindDutyRoulette},
	}
	roulettes := map[uint16]gamedata.RouletteInfo{
		1:   {Name: gamedata.I18n{EN: "Fixture Leveling"}},
		40:  {Name: gamedata.I18n{EN: "Fixture Crystalline"}, Pvp: true},
		18:  {Name: gamedata.I18n{EN: "Fixture GATE 18"}},
		21:  {Name: gamedata.I18n{EN: "Fixture GATE 21"}},
		195: {Name: gamedata.I18n{EN: "Fixture Saucer 195"}},
	}
	worlds := map[uint16]gamedata.WorldInfo{
		1042: {Name: "Fixture Alpha", DataCenter: "Fixture DC"},
		1044: {Name: "Fixture Beta", DataCenter: "Fixture DC"},
	}
	jobs := map[uint8]gamedata.JobInfo{
		19: {Abbrev: "PLD", Role: model.RoleTank},
	}
	territories := map[uint16]gamedata.I18n{
		144: {EN: "Fixture Saucer Plaza", JA: "フィクスチャ広場"},
	}
	gd := gamedata.NewWithTables(duties, roulettes, worlds, jobs, territories)
	return NewCategory(gd)
}

func TestCategoryResolveRuleOrder(t *testing.T) {
	t.Parallel()
	s := newCategoryFixture()

	tests := []struct {
		name         string
		dutyType     model.DutyType
		dutyCategory model.DutyCategory
		dutyID       uint16
		want         model.Category
		wantOk       bool
	}{
		{"roulette", model.DutyTypeRoulette, model.DutyCategoryNone, 1, model.CategoryDutyRoulette, true},
		{"pvp roulette", model.DutyTypeRoulette, model.DutyCategoryNone, 40, model.CategoryPvp, true},
		{"unknown roulette still groups as roulette", model.DutyTypeRoulette, model.DutyCategoryNone, 9999, model.CategoryDutyRoulette, true},
		{"roulette wins over quest battles override", model.DutyTypeRoulette, model.DutyCategoryQuestBattles, 1, model.CategoryDutyRoulette, true},

		{"gathering forays", model.DutyTypeNormal, model.DutyCategoryGatheringForays, 100, model.CategoryGatheringForays, true},
		{"deep dungeons", model.DutyTypeOther, model.DutyCategoryDeepDungeons, 0, model.CategoryDeepDungeons, true},
		{"adventuring forays", model.DutyTypeNormal, model.DutyCategoryAdventuringForays, 100, model.CategoryAdventuringForays, true},
		{"variant and criterion", model.DutyTypeNormal, model.DutyCategoryVariantCriterion, 100, model.CategoryVariantAndCriterionDungeonFinder, true},

		{"high-end beats content kind", model.DutyTypeNormal, model.DutyCategoryNone, 200, model.CategoryHighEndDuty, true},
		{"dungeon", model.DutyTypeNormal, model.DutyCategoryNone, 100, model.CategoryDungeons, true},
		{"trial", model.DutyTypeNormal, model.DutyCategoryNone, 101, model.CategoryTrials, true},
		{"raid", model.DutyTypeNormal, model.DutyCategoryNone, 102, model.CategoryRaids, true},
		{"guildhest", model.DutyTypeNormal, model.DutyCategoryNone, 103, model.CategoryGuildhests, true},
		{"pvp duty", model.DutyTypeNormal, model.DutyCategoryNone, 104, model.CategoryPvp, true},

		{"quest battles apply to any type", model.DutyTypeOther, model.DutyCategoryQuestBattles, 9999, model.CategoryQuestBattles, true},
		{"fates apply to any type", model.DutyTypeNormal, model.DutyCategoryFates, 9999, model.CategoryFates, true},
		{"treasure hunt", model.DutyTypeOther, model.DutyCategoryTreasureHunt, 9999, model.CategoryTreasureHunt, true},
		{"the hunt", model.DutyTypeOther, model.DutyCategoryTheHunt, 9999, model.CategoryTheHunt, true},

		{"other with unknown duty is none", model.DutyTypeOther, model.DutyCategoryNone, 9999, model.CategoryNone, true},
		{"other with known duty stays unclassified", model.DutyTypeOther, model.DutyCategoryNone, 300, model.CategoryNone, false},
		{"normal with unknown duty stays unclassified", model.DutyTypeNormal, model.DutyCategoryNone, 9999, model.CategoryNone, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got, ok := s.Resolve(tt.dutyType, tt.dutyCategory, tt.dutyID)
			if got != tt.want || ok != tt.wantOk {
				t.Errorf("Resolve(%s) = (%s, %v), want (%s, %v)\ninput: %s",
					tt.name, got, ok, tt.want, tt.wantOk,
					spew.Sdump(tt.dutyType, tt.dutyCategory, tt.dutyID))
			}
		})
	}
}

func TestCategoryResolveIsDeterministic(t *testing.T) {
	t.Parallel()
	s := newCategoryFixture()

	first, firstOk := s.Resolve(model.DutyTypeNormal, model.DutyCategoryNone, 200)
	for i := 0; i < 100; i++ {
		got, ok := s.Resolve(model.DutyTypeNormal, model.DutyCategoryNone, 200)
		assert.Equal(t, first, got)
		assert.Equal(t, firstOk, ok)
	}
}

func TestGoldSaucerRemap(t *testing.T) {
	t.Parallel()
	s := newCategoryFixture()

	// The remap only kicks in for Gold Saucer content: lookups must go
	// through the remapped roulette id, observable via the resolved name.
	tests := []struct {
		dutyID   uint16
		wantName string
	}{
		{11, "Fixture GATE 21"},
		{13, "Fixture GATE 18"},
		{20, "Fixture Saucer 195"},
	}

	for _, tt := range tests {
		l := &model.Listing{
			DutyType:     model.DutyTypeRoulette,
			DutyCategory: model.DutyCategoryGoldSaucer,
			DutyID:       tt.dutyID,
		}
		assert.Equal(t, tt.wantName, s.DutyName(l, gamedata.LangEN))

		got, ok := s.Resolve(l.DutyType, l.DutyCategory, l.DutyID)
		assert.True(t, ok)
		assert.Equal(t, model.CategoryDutyRoulette, got)
	}

	t.Run("no remap outside gold saucer", func(t *testing.T) {
		l := &model.Listing{DutyType: model.DutyTypeRoulette, DutyID: 1}
		assert.Equal(t, "Fixture Leveling", s.DutyName(l, gamedata.LangEN))
	})
}

func TestDutyNameFallback(t *testing.T) {
	t.Parallel()
	s := newCategoryFixture()

	l := &model.Listing{DutyType: model.DutyTypeNormal, DutyID: 9999}
	assert.Equal(t, "Unknown (9999)", s.DutyName(l, gamedata.LangEN))
}
