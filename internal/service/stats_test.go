package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"xivfinder.app/backend/internal/gamedata"
	"xivfinder.app/backend/internal/model"
)

func newStatsFixture() *Stats {
	gd := gamedata.NewWithTables(
		map[uint16]gamedata.DutyInfo{},
		map[uint16]gamedata.RouletteInfo{},
		map[uint16]gamedata.WorldInfo{
			1042: {Name: "Fixture Alpha", DataCenter: "Fixture DC"},
			1044: {Name: "Fixture Beta", DataCenter: "Fixture DC"},
		},
		map[uint8]gamedata.JobInfo{},
		map[uint16]gamedata.I18n{})
	return &Stats{GameDataService: gd}
}

func TestGroupAliasesCoversEveryIdentity(t *testing.T) {
	t.Parallel()
	s := newStatsFixture()

	rows := []*model.AliasResult{
		{ContentIDLower: 1, Name: []byte("Aka Ono"), HomeWorld: 1042},
		{ContentIDLower: 2, Name: []byte("Bee Bop"), HomeWorld: 1044},
		{ContentIDLower: 1, Name: []byte("Aka Renamed"), HomeWorld: 1042},
		{ContentIDLower: 3, Name: []byte("Cee Side"), HomeWorld: 9999},
	}

	order, bySubmitter := s.groupAliases(rows)

	// every identity gets an alias set, not just the ones on a leaderboard
	assert.Equal(t, []uint64{1, 2, 3}, order)
	assert.Len(t, bySubmitter, 3)

	if assert.Len(t, bySubmitter[1], 2) {
		assert.Equal(t, "Aka Ono", bySubmitter[1][0].Name)
		assert.Equal(t, "Fixture Alpha", bySubmitter[1][0].HomeWorld)
		assert.Equal(t, "Aka Renamed", bySubmitter[1][1].Name)
	}
	if assert.Len(t, bySubmitter[2], 1) {
		assert.Equal(t, "Fixture Beta", bySubmitter[2][0].HomeWorld)
	}
	// unknown home world degrades to empty, never drops the alias
	if assert.Len(t, bySubmitter[3], 1) {
		assert.Equal(t, "", bySubmitter[3][0].HomeWorld)
	}
}

func TestAssembleSubmittersAttachesAliases(t *testing.T) {
	t.Parallel()
	s := newStatsFixture()

	_, bySubmitter := s.groupAliases([]*model.AliasResult{
		{ContentIDLower: 1, Name: []byte("Aka Ono"), HomeWorld: 1042},
		{ContentIDLower: 2, Name: []byte("Bee Bop"), HomeWorld: 1044},
	})

	submitters := assembleSubmitters([]*model.SubmitterCountResult{
		{ContentIDLower: 2, Count: 7},
		{ContentIDLower: 1, Count: 3},
	}, bySubmitter)

	if assert.Len(t, submitters, 2) {
		assert.Equal(t, uint64(2), submitters[0].ContentIDLower)
		assert.Equal(t, 7, submitters[0].Count)
		if assert.Len(t, submitters[0].Aliases, 1) {
			assert.Equal(t, "Bee Bop", submitters[0].Aliases[0].Name)
		}
		assert.Equal(t, uint64(1), submitters[1].ContentIDLower)
	}
}
