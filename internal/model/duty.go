package model

// DutyType mirrors the wire value the game client attaches to a listing.
type DutyType uint8

const (
	DutyTypeOther    DutyType = 0
	DutyTypeRoulette DutyType = 1 << 0
	DutyTypeNormal   DutyType = 1 << 1
)

// DutyCategory is a bitset-valued enumeration; exactly one bit is meaningful
// per listing. The bit positions are part of the wire contract.
type DutyCategory uint16

const (
	DutyCategoryNone              DutyCategory = 0
	DutyCategoryQuestBattles      DutyCategory = 1 << 0
	DutyCategoryFates             DutyCategory = 1 << 1
	DutyCategoryTreasureHunt      DutyCategory = 1 << 2
	DutyCategoryTheHunt           DutyCategory = 1 << 3
	DutyCategoryGatheringForays   DutyCategory = 1 << 4
	DutyCategoryDeepDungeons      DutyCategory = 1 << 5
	DutyCategoryAdventuringForays DutyCategory = 1 << 6
	DutyCategoryVariantCriterion  DutyCategory = 1 << 7
	DutyCategoryGoldSaucer        DutyCategory = 1 << 8
)

// ContentKind is the content-type classifier of a duty in the reference sheets.
type ContentKind uint32

const (
	ContentKindDutyRoulette ContentKind = 1
	ContentKindDungeons     ContentKind = 2
	ContentKindGuildhests   ContentKind = 3
	ContentKindTrials       ContentKind = 4
	ContentKindRaids        ContentKind = 5
	ContentKindPvp          ContentKind = 6
)
