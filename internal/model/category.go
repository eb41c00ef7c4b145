package model

// Category is the display classification of a listing. It is derived from
// (duty_type, duty_category, duty_id) every time it is needed and never
// stored, so resolver corrections retroactively reclassify history.
type Category uint8

// The declaration order doubles as the fixed total order used by the default
// listing sort (descending). Do not reorder.
const (
	CategoryNone Category = iota
	CategoryDutyRoulette
	CategoryDungeons
	CategoryGuildhests
	CategoryTrials
	CategoryRaids
	CategoryHighEndDuty
	CategoryPvp
	CategoryQuestBattles
	CategoryFates
	CategoryTreasureHunt
	CategoryTheHunt
	CategoryGatheringForays
	CategoryDeepDungeons
	CategoryAdventuringForays
	CategoryVariantAndCriterionDungeonFinder
)

var categoryNames = map[Category]string{
	CategoryNone:                             "None",
	CategoryDutyRoulette:                     "Duty Roulette",
	CategoryDungeons:                         "Dungeons",
	CategoryGuildhests:                       "Guildhests",
	CategoryTrials:                           "Trials",
	CategoryRaids:                            "Raids",
	CategoryHighEndDuty:                      "High-end Duty",
	CategoryPvp:                              "PvP",
	CategoryQuestBattles:                     "Quest Battles",
	CategoryFates:                            "FATEs",
	CategoryTreasureHunt:                     "Treasure Hunt",
	CategoryTheHunt:                          "The Hunt",
	CategoryGatheringForays:                  "Gathering Forays",
	CategoryDeepDungeons:                     "Deep Dungeons",
	CategoryAdventuringForays:                "Adventuring Forays",
	CategoryVariantAndCriterionDungeonFinder: "V&C Dungeon Finder",
}

func (c Category) String() string {
	if s, ok := categoryNames[c]; ok {
		return s
	}
	return "None"
}
