package gamedata

import (
	"xivfinder.app/backend/internal/model"
)

// DutyInfo is one row of the duty reference sheet.
type DutyInfo struct {
	Name        I18n
	HighEnd     bool
	ContentKind model.ContentKind
}

// duties is a condensed transcription of the duty sheet: enough coverage for
// every content kind the resolver distinguishes. Ids follow the sheet.
var duties = map[uint16]DutyInfo{
	// Dungeons
	4:   {Name: I18n{EN: "Sastasha", JA: "天然要害 サスタシャ浸食洞"}, ContentKind: model.ContentKindDungeons},
	5:   {Name: I18n{EN: "The Tam-Tara Deepcroft", JA: "地下霊殿 タムタラの墓所"}, ContentKind: model.ContentKindDungeons},
	6:   {Name: I18n{EN: "Copperbell Mines", JA: "封鎖坑道 カッパーベル銅山"}, ContentKind: model.ContentKindDungeons},
	14:  {Name: I18n{EN: "The Thousand Maws of Toto-Rak", JA: "監獄廃墟 トトラクの千獄"}, ContentKind: model.ContentKindDungeons},
	783: {Name: I18n{EN: "The Dead Ends", JA: "最終幻想 レムナント"}, ContentKind: model.ContentKindDungeons},

	// Guildhests
	10: {Name: I18n{EN: "Basic Training: Enemy Parties"}, ContentKind: model.ContentKindGuildhests},
	11: {Name: I18n{EN: "Under the Armor"}, ContentKind: model.ContentKindGuildhests},

	// Trials
	56:  {Name: I18n{EN: "The Bowl of Embers", JA: "イフリート討伐戦"}, ContentKind: model.ContentKindTrials},
	57:  {Name: I18n{EN: "The Navel", JA: "タイタン討伐戦"}, ContentKind: model.ContentKindTrials},
	810: {Name: I18n{EN: "The Final Day", JA: "終焉幻想 アーモロート"}, ContentKind: model.ContentKindTrials},

	// High-end trials (extreme)
	59:  {Name: I18n{EN: "The Bowl of Embers (Extreme)", JA: "極イフリート討滅戦"}, HighEnd: true, ContentKind: model.ContentKindTrials},
	811: {Name: I18n{EN: "The Minstrel's Ballad: Endsinger's Aria", JA: "終極の戦い"}, HighEnd: true, ContentKind: model.ContentKindTrials},

	// Raids
	93:  {Name: I18n{EN: "The Binding Coil of Bahamut - Turn 1", JA: "大迷宮バハムート：邂逅編1"}, ContentKind: model.ContentKindRaids},
	801: {Name: I18n{EN: "Asphodelos: The First Circle", JA: "万魔殿パンデモニウム：辺獄編1"}, ContentKind: model.ContentKindRaids},

	// High-end raids (savage, ultimate)
	805: {Name: I18n{EN: "Asphodelos: The First Circle (Savage)", JA: "万魔殿パンデモニウム零式：辺獄編1"}, HighEnd: true, ContentKind: model.ContentKindRaids},
	788: {Name: I18n{EN: "Dragonsong's Reprise (Ultimate)", JA: "絶竜詩戦争"}, HighEnd: true, ContentKind: model.ContentKindRaids},
	908: {Name: I18n{EN: "The Omega Protocol (Ultimate)", JA: "絶オメガ検証戦"}, HighEnd: true, ContentKind: model.ContentKindRaids},

	// PvP
	130: {Name: I18n{EN: "The Borderland Ruins (Secure)", JA: "外縁遺跡群 (制圧戦)"}, ContentKind: model.ContentKindPvp},
	599: {Name: I18n{EN: "The Feast (Custom Match - Crystal Tower)"}, ContentKind: model.ContentKindPvp},
}
