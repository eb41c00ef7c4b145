package gamedata

var territories = map[uint16]I18n{
	128: {EN: "Limsa Lominsa Upper Decks", JA: "リムサ・ロミンサ：上甲板層"},
	129: {EN: "Limsa Lominsa Lower Decks", JA: "リムサ・ロミンサ：下甲板層"},
	130: {EN: "Ul'dah - Steps of Nald", JA: "ウルダハ：ナル回廊"},
	132: {EN: "New Gridania", JA: "グリダニア：新市街"},
	144: {EN: "The Gold Saucer", JA: "ゴールドソーサー"},
	418: {EN: "Foundation", JA: "イシュガルド：下層"},
	628: {EN: "Kugane", JA: "クガネ"},
	819: {EN: "The Crystarium", JA: "クリスタリウム"},
	962: {EN: "Old Sharlayan", JA: "オールド・シャーレアン"},
}
