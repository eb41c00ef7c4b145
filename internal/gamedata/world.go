package gamedata

// WorldInfo is one row of the world reference sheet. Ids below 1000 are
// reserved by the game and never appear on valid listings.
type WorldInfo struct {
	Name       string
	DataCenter string
}

var worlds = map[uint16]WorldInfo{
	// LuXingNiao
	1042: {Name: "LaNuoXiYa", DataCenter: "LuXingNiao"},
	1044: {Name: "HuanYingQunDao", DataCenter: "LuXingNiao"},
	1060: {Name: "MengYaChi", DataCenter: "LuXingNiao"},
	1081: {Name: "ShenYiZhiDi", DataCenter: "LuXingNiao"},
	1167: {Name: "HongYuHai", DataCenter: "LuXingNiao"},
	1173: {Name: "YuZhouHeYin", DataCenter: "LuXingNiao"},
	1174: {Name: "WoXianXiRan", DataCenter: "LuXingNiao"},
	1175: {Name: "ChenXiWangZuo", DataCenter: "LuXingNiao"},

	// MoGuLi
	1076: {Name: "BaiJinHuanXiang", DataCenter: "MoGuLi"},
	1113: {Name: "LvRenZhanQiao", DataCenter: "MoGuLi"},
	1121: {Name: "FuXiaoZhiJian", DataCenter: "MoGuLi"},
	1166: {Name: "LongChaoShenDian", DataCenter: "MoGuLi"},
	1170: {Name: "QianXinYuXi", DataCenter: "MoGuLi"},
	1172: {Name: "MengYuBaoJing", DataCenter: "MoGuLi"},
	1176: {Name: "MengDuoNa", DataCenter: "MoGuLi"},

	// MaoXiaoPang
	1043: {Name: "ZiShuiZhanQiao", DataCenter: "MaoXiaoPang"},
	1045: {Name: "MoDuNa", DataCenter: "MaoXiaoPang"},
	1106: {Name: "JingYuZhuangYuan", DataCenter: "MaoXiaoPang"},
	1169: {Name: "YanXia", DataCenter: "MaoXiaoPang"},
	1171: {Name: "ShenQuanHen", DataCenter: "MaoXiaoPang"},
	1178: {Name: "RouFengHaiWan", DataCenter: "MaoXiaoPang"},
	1179: {Name: "HuPoYuan", DataCenter: "MaoXiaoPang"},
}
