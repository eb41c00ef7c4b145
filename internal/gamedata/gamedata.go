// Package gamedata holds the static reference tables distilled from the game
// sheets: duties, roulettes, worlds, jobs and territories. The tables are
// immutable, loaded once at process start, and injected as a read-only
// dependency so tests can swap them for fixtures.
package gamedata

import (
	"golang.org/x/text/language"
)

// Lang selects which localized display name a lookup returns.
type Lang string

const (
	LangEN Lang = "en"
	LangJA Lang = "ja"
	LangDE Lang = "de"
	LangFR Lang = "fr"
)

var langMatcher = language.NewMatcher([]language.Tag{
	language.English,
	language.Japanese,
	language.German,
	language.French,
})

var langByIndex = []Lang{LangEN, LangJA, LangDE, LangFR}

// MatchLanguage negotiates a Lang from an Accept-Language header value.
func MatchLanguage(header string) Lang {
	if header == "" {
		return LangEN
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil {
		return LangEN
	}
	_, idx, _ := langMatcher.Match(tags...)
	return langByIndex[idx]
}

// I18n is a localized display name. English is always present; missing
// locales fall back to it.
type I18n struct {
	EN string
	JA string
	DE string
	FR string
}

func (n I18n) In(lang Lang) string {
	s := ""
	switch lang {
	case LangJA:
		s = n.JA
	case LangDE:
		s = n.DE
	case LangFR:
		s = n.FR
	}
	if s == "" {
		return n.EN
	}
	return s
}

// Service bundles the reference tables behind total-or-absent lookups.
type Service struct {
	duties      map[uint16]DutyInfo
	roulettes   map[uint16]RouletteInfo
	worlds      map[uint16]WorldInfo
	jobs        map[uint8]JobInfo
	territories map[uint16]I18n
}

// New returns a Service over the built-in static tables.
func New() *Service {
	return &Service{
		duties:      duties,
		roulettes:   roulettes,
		worlds:      worlds,
		jobs:        jobs,
		territories: territories,
	}
}

// NewWithTables returns a Service over caller-supplied tables. Intended for
// test fixtures.
func NewWithTables(
	duties map[uint16]DutyInfo,
	roulettes map[uint16]RouletteInfo,
	worlds map[uint16]WorldInfo,
	jobs map[uint8]JobInfo,
	territories map[uint16]I18n,
) *Service {
	return &Service{
		duties:      duties,
		roulettes:   roulettes,
		worlds:      worlds,
		jobs:        jobs,
		territories: territories,
	}
}

func (s *Service) DutyInfo(id uint16) (DutyInfo, bool) {
	d, ok := s.duties[id]
	return d, ok
}

func (s *Service) RouletteInfo(id uint16) (RouletteInfo, bool) {
	r, ok := s.roulettes[id]
	return r, ok
}

func (s *Service) WorldInfo(id uint16) (WorldInfo, bool) {
	w, ok := s.worlds[id]
	return w, ok
}

func (s *Service) JobInfo(code uint8) (JobInfo, bool) {
	j, ok := s.jobs[code]
	return j, ok
}

func (s *Service) TerritoryName(id uint16) (I18n, bool) {
	t, ok := s.territories[id]
	return t, ok
}
