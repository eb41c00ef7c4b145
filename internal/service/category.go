package service

import (
	"fmt"

	"xivfinder.app/backend/internal/gamedata"
	"xivfinder.app/backend/internal/model"
)

// Category resolves the display classification of a listing from its
// (duty_type, duty_category, duty_id) triple and the static reference tables.
type Category struct {
	GameDataService *gamedata.Service
}

func NewCategory(gameDataService *gamedata.Service) *Category {
	return &Category{
		GameDataService: gameDataService,
	}
}

// goldSaucerRemap redirects roulette lookups for Gold Saucer content whose
// sheet numbering does not match the in-game presentation order. The table is
// transcribed verbatim from the sheet quirk; treat it as opaque.
var goldSaucerRemap = map[uint16]uint16{
	11: 21,
	12: 17,
	13: 18,
	14: 19,
	15: 20,
	16: 21,
	17: 22,
	18: 23,
	19: 24,
	20: 195,
	21: 196,
	22: 197,
	23: 198,
	24: 199,
	25: 200,
	26: 201,
}

func (s *Category) rouletteLookupID(dutyCategory model.DutyCategory, dutyID uint16) uint16 {
	if dutyCategory != model.DutyCategoryGoldSaucer {
		return dutyID
	}
	if remapped, ok := goldSaucerRemap[dutyID]; ok {
		return remapped
	}
	return dutyID
}

// Resolve classifies a listing. The rule list below is evaluated in order and
// the first match wins; the ordering is a product requirement, not an
// implementation convenience. A false second return means the listing is
// unclassifiable: excluded from category-filtered views but still rendered in
// unfiltered ones.
func (s *Category) Resolve(dutyType model.DutyType, dutyCategory model.DutyCategory, dutyID uint16) (model.Category, bool) {
	if dutyType == model.DutyTypeRoulette {
		if r, ok := s.GameDataService.RouletteInfo(s.rouletteLookupID(dutyCategory, dutyID)); ok && r.Pvp {
			return model.CategoryPvp, true
		}
		return model.CategoryDutyRoulette, true
	}

	if dutyType == model.DutyTypeNormal && dutyCategory == model.DutyCategoryGatheringForays {
		return model.CategoryGatheringForays, true
	}
	if dutyType == model.DutyTypeOther && dutyCategory == model.DutyCategoryDeepDungeons {
		return model.CategoryDeepDungeons, true
	}
	if dutyType == model.DutyTypeNormal && dutyCategory == model.DutyCategoryAdventuringForays {
		return model.CategoryAdventuringForays, true
	}
	if dutyType == model.DutyTypeNormal && dutyCategory == model.DutyCategoryVariantCriterion {
		return model.CategoryVariantAndCriterionDungeonFinder, true
	}

	if dutyType == model.DutyTypeNormal {
		if d, ok := s.GameDataService.DutyInfo(dutyID); ok {
			// High-end wins over the content kind: an ultimate raid is
			// "High-end Duty", not "Raids".
			if d.HighEnd {
				return model.CategoryHighEndDuty, true
			}
			switch d.ContentKind {
			case model.ContentKindDungeons:
				return model.CategoryDungeons, true
			case model.ContentKindGuildhests:
				return model.CategoryGuildhests, true
			case model.ContentKindTrials:
				return model.CategoryTrials, true
			case model.ContentKindRaids:
				return model.CategoryRaids, true
			case model.ContentKindPvp:
				return model.CategoryPvp, true
			}
		}
	}

	// These four override the duty type entirely.
	switch dutyCategory {
	case model.DutyCategoryQuestBattles:
		return model.CategoryQuestBattles, true
	case model.DutyCategoryFates:
		return model.CategoryFates, true
	case model.DutyCategoryTreasureHunt:
		return model.CategoryTreasureHunt, true
	case model.DutyCategoryTheHunt:
		return model.CategoryTheHunt, true
	}

	if dutyType == model.DutyTypeOther {
		if _, ok := s.GameDataService.DutyInfo(dutyID); !ok {
			return model.CategoryNone, true
		}
	}

	return model.CategoryNone, false
}

// DutyName renders the display name of a listing's duty in the negotiated
// language. A lookup miss never fails rendering: unrecognized content falls
// back to a placeholder carrying the raw id.
func (s *Category) DutyName(l *model.Listing, lang gamedata.Lang) string {
	if l.DutyType == model.DutyTypeRoulette {
		if r, ok := s.GameDataService.RouletteInfo(s.rouletteLookupID(l.DutyCategory, l.DutyID)); ok {
			return r.Name.In(lang)
		}
		return fmt.Sprintf("Unknown (%d)", l.DutyID)
	}
	if d, ok := s.GameDataService.DutyInfo(l.DutyID); ok {
		return d.Name.In(lang)
	}
	return fmt.Sprintf("Unknown (%d)", l.DutyID)
}
