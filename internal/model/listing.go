package model

import (
	"time"

	"github.com/uptrace/bun"

	"xivfinder.app/backend/internal/constant"
)

// Listing is the stored canonical form of a recruitment advertisement.
//
// (ListingID, LastServerRestart, CreatedWorld) is the natural key: the game
// server re-issues listing ids from zero after every restart, and different
// worlds issue overlapping ids. The table carries a unique index over the
// triple and every write is an upsert against it.
type Listing struct {
	bun.BaseModel `bun:"listings,alias:l"`

	RecordID int64 `bun:",pk,autoincrement" json:"-"`

	ListingID         uint32 `bun:"listing_id" json:"id"`
	LastServerRestart uint32 `bun:"last_server_restart" json:"lastServerRestart"`
	CreatedWorld      uint16 `bun:"created_world" json:"createdWorld"`

	HomeWorld    uint16 `bun:"home_world" json:"homeWorld"`
	CurrentWorld uint16 `bun:"current_world" json:"currentWorld"`

	// Territory is the zone the recruiter was last seen in, 0 when unknown.
	Territory uint16 `bun:"territory" json:"territory"`

	// ContentIDLower identifies the submitting character; it keys the
	// alias and top-submitter statistics facets.
	ContentIDLower uint64 `bun:"content_id_lower" json:"contentIdLower"`

	// Name and Description hold packed payload text, decoded only at
	// presentation time.
	Name        []byte `bun:"name" json:"name"`
	Description []byte `bun:"description" json:"description"`

	DutyType     DutyType     `bun:"duty_type" json:"dutyType"`
	DutyCategory DutyCategory `bun:"duty_category" json:"dutyCategory"`
	DutyID       uint16       `bun:"duty_id" json:"dutyId"`

	MinItemLevel     uint16 `bun:"min_item_level" json:"minItemLevel"`
	BeginnersWelcome bool   `bun:"beginners_welcome" json:"beginnersWelcome"`

	Objective          ObjectiveFlags          `bun:"objective" json:"objective"`
	Conditions         ConditionFlags          `bun:"conditions" json:"conditions"`
	SearchArea         SearchAreaFlags         `bun:"search_area" json:"searchArea"`
	DutyFinderSettings DutyFinderSettingsFlags `bun:"duty_finder_settings" json:"dutyFinderSettings"`
	LootRules          LootRuleFlags           `bun:"loot_rules" json:"lootRules"`

	SlotsAvailable uint8 `bun:"slots_available" json:"slotsAvailable"`

	// Slots holds the per-slot accepting-job masks; JobsPresent the job code
	// occupying each slot (0 = empty). Both have SlotsAvailable entries.
	Slots       []int64 `bun:"slots,array" json:"slots"`
	JobsPresent []int64 `bun:"jobs_present,array" json:"jobsPresent"`

	// SecondsRemaining is the self-reported remaining recruitment time at the
	// moment of submission. It decays against UpdatedAt at query time.
	SecondsRemaining uint16 `bun:"seconds_remaining" json:"secondsRemaining"`

	CreatedAt time.Time `bun:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bun:"updated_at" json:"updatedAt"`
}

// TimeLeft is the listing's remaining recruitment time as of now, its
// self-reported timer decayed by the wall-clock time since the last refresh.
func (l *Listing) TimeLeft(now time.Time) float64 {
	return float64(l.SecondsRemaining) - now.Sub(l.UpdatedAt).Seconds()
}

// UpdatedMinute truncates UpdatedAt to its five-minute bucket. It is the
// stable secondary sort key of the default view: listings refreshed within
// the same window interleave by category instead of by sub-minute jitter.
func (l *Listing) UpdatedMinute() time.Time {
	return l.UpdatedAt.Truncate(constant.UpdatedMinuteBucket)
}

// SlotMasks returns the accepting-job masks in slot order.
func (l *Listing) SlotMasks() []JobMask {
	masks := make([]JobMask, len(l.Slots))
	for i, s := range l.Slots {
		masks[i] = JobMask(s)
	}
	return masks
}
