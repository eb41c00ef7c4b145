package gamedata

import (
	"xivfinder.app/backend/internal/model"
)

// JobInfo is one row of the class/job reference sheet.
type JobInfo struct {
	Abbrev string
	Role   model.Role
}

var jobs = map[uint8]JobInfo{
	1:  {Abbrev: "GLA", Role: model.RoleTank},
	2:  {Abbrev: "PGL", Role: model.RoleDPS},
	3:  {Abbrev: "MRD", Role: model.RoleTank},
	4:  {Abbrev: "LNC", Role: model.RoleDPS},
	5:  {Abbrev: "ARC", Role: model.RoleDPS},
	6:  {Abbrev: "CNJ", Role: model.RoleHealer},
	7:  {Abbrev: "THM", Role: model.RoleDPS},
	19: {Abbrev: "PLD", Role: model.RoleTank},
	20: {Abbrev: "MNK", Role: model.RoleDPS},
	21: {Abbrev: "WAR", Role: model.RoleTank},
	22: {Abbrev: "DRG", Role: model.RoleDPS},
	23: {Abbrev: "BRD", Role: model.RoleDPS},
	24: {Abbrev: "WHM", Role: model.RoleHealer},
	25: {Abbrev: "BLM", Role: model.RoleDPS},
	26: {Abbrev: "ACN", Role: model.RoleDPS},
	27: {Abbrev: "SMN", Role: model.RoleDPS},
	28: {Abbrev: "SCH", Role: model.RoleHealer},
	29: {Abbrev: "ROG", Role: model.RoleDPS},
	30: {Abbrev: "NIN", Role: model.RoleDPS},
	31: {Abbrev: "MCH", Role: model.RoleDPS},
	32: {Abbrev: "DRK", Role: model.RoleTank},
	33: {Abbrev: "AST", Role: model.RoleHealer},
	34: {Abbrev: "SAM", Role: model.RoleDPS},
	35: {Abbrev: "RDM", Role: model.RoleDPS},
	36: {Abbrev: "BLU", Role: model.RoleDPS},
	37: {Abbrev: "GNB", Role: model.RoleTank},
	38: {Abbrev: "DNC", Role: model.RoleDPS},
	39: {Abbrev: "RPR", Role: model.RoleDPS},
	40: {Abbrev: "SGE", Role: model.RoleHealer},
}
