package model

// Packed flag bitsets carried verbatim from the listing wire format. Bit
// positions are the serialization contract; predicates give them names.

type ObjectiveFlags uint32

const (
	ObjectiveDutyCompletion ObjectiveFlags = 1 << 0
	ObjectivePractice       ObjectiveFlags = 1 << 1
	ObjectiveLoot           ObjectiveFlags = 1 << 2
)

func (f ObjectiveFlags) Contains(o ObjectiveFlags) bool { return f&o != 0 }
func (f ObjectiveFlags) Practice() bool                 { return f.Contains(ObjectivePractice) }

type ConditionFlags uint32

const (
	ConditionNone           ConditionFlags = 1 << 0
	ConditionDutyComplete   ConditionFlags = 1 << 1
	ConditionDutyIncomplete ConditionFlags = 1 << 2
)

func (f ConditionFlags) Contains(c ConditionFlags) bool { return f&c != 0 }

type DutyFinderSettingsFlags uint32

const (
	DutyFinderSettingUndersizedParty  DutyFinderSettingsFlags = 1 << 0
	DutyFinderSettingMinimumItemLevel DutyFinderSettingsFlags = 1 << 1
	DutyFinderSettingSilenceEcho      DutyFinderSettingsFlags = 1 << 2
)

func (f DutyFinderSettingsFlags) Contains(s DutyFinderSettingsFlags) bool { return f&s != 0 }

type LootRuleFlags uint32

const (
	LootRuleGreedOnly  LootRuleFlags = 1 << 0
	LootRuleLootmaster LootRuleFlags = 1 << 1
)

func (f LootRuleFlags) Contains(l LootRuleFlags) bool { return f&l != 0 }
func (f LootRuleFlags) GreedOnly() bool               { return f.Contains(LootRuleGreedOnly) }

type SearchAreaFlags uint32

const (
	SearchAreaDataCentre      SearchAreaFlags = 1 << 0
	SearchAreaPrivate         SearchAreaFlags = 1 << 1
	SearchAreaAllianceRaid    SearchAreaFlags = 1 << 2
	SearchAreaWorld           SearchAreaFlags = 1 << 3
	SearchAreaOnePlayerPerJob SearchAreaFlags = 1 << 4
)

func (f SearchAreaFlags) Contains(s SearchAreaFlags) bool { return f&s != 0 }

// CrossWorld reports whether the listing recruits across the whole data centre.
func (f SearchAreaFlags) CrossWorld() bool { return f.Contains(SearchAreaDataCentre) }

// Private listings are visible in-game only to players with the party code and
// are excluded from every public view.
func (f SearchAreaFlags) Private() bool { return f.Contains(SearchAreaPrivate) }
