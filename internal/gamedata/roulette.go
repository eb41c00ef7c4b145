package gamedata

// RouletteInfo is one row of the roulette reference sheet.
type RouletteInfo struct {
	Name I18n
	Pvp  bool
}

var roulettes = map[uint16]RouletteInfo{
	1:  {Name: I18n{EN: "Duty Roulette: Leveling", JA: "コンテンツルーレット：レベリング"}},
	2:  {Name: I18n{EN: "Duty Roulette: Level Cap Dungeons", JA: "コンテンツルーレット：レベルキャップダンジョン"}},
	3:  {Name: I18n{EN: "Duty Roulette: Main Scenario", JA: "コンテンツルーレット：メインクエスト"}},
	4:  {Name: I18n{EN: "Duty Roulette: Guildhests", JA: "コンテンツルーレット：ギルドオーダー"}},
	5:  {Name: I18n{EN: "Duty Roulette: Expert", JA: "コンテンツルーレット：エキスパート"}},
	6:  {Name: I18n{EN: "Duty Roulette: Trials", JA: "コンテンツルーレット：討伐・討滅戦"}},
	7:  {Name: I18n{EN: "Daily Challenge: Frontline", JA: "デイリーチャレンジ：フロントライン"}, Pvp: true},
	8:  {Name: I18n{EN: "Duty Roulette: Mentor", JA: "コンテンツルーレット：メンター"}},
	9:  {Name: I18n{EN: "Duty Roulette: Alliance Raids", JA: "コンテンツルーレット：アライアンスレイド"}},
	15: {Name: I18n{EN: "Duty Roulette: Normal Raids", JA: "コンテンツルーレット：ノーマルレイド"}},

	// GATE events; reachable only through the Gold Saucer remap table.
	17: {Name: I18n{EN: "GATE: Cliffhanger"}},
	18: {Name: I18n{EN: "GATE: Air Force One"}},
	19: {Name: I18n{EN: "GATE: Leap of Faith (The Fall of Belah'dia)"}},
	20: {Name: I18n{EN: "GATE: Any Way the Wind Blows"}},
	21: {Name: I18n{EN: "GATE: The Slice Is Right"}},
	22: {Name: I18n{EN: "GATE: Leap of Faith (The Falling City of Nym)"}},
	23: {Name: I18n{EN: "GATE: Vase Off"}},
	24: {Name: I18n{EN: "GATE: Leap of Faith (Sylphstep)"}},

	40: {Name: I18n{EN: "Crystalline Conflict (Casual Match)", JA: "クリスタルコンフリクト(カジュアルマッチ)"}, Pvp: true},

	// Gold Saucer tournaments; reachable only through the remap table.
	195: {Name: I18n{EN: "Chocobo Race: Sagolii Road"}},
	196: {Name: I18n{EN: "Chocobo Race: Costa del Sol"}},
	197: {Name: I18n{EN: "Chocobo Race: Tranquil Paths"}},
	198: {Name: I18n{EN: "Chocobo Race: Random"}},
	199: {Name: I18n{EN: "Triple Triad: Roundrox Match"}},
	200: {Name: I18n{EN: "Triple Triad: Spinner's Pull"}},
	201: {Name: I18n{EN: "Air Force One: Gauntlet"}},
}
