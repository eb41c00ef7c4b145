package modelv1

import (
	"time"
)

// Alias is one (display name, home world) pair a submitter has been seen as.
type Alias struct {
	Name      string `json:"name"`
	HomeWorld string `json:"homeWorld"`
}

// SubmitterAliases is the alias facet entry for one submitter identity: every
// distinct (name, home world) pair the identity has ever been seen as.
type SubmitterAliases struct {
	ContentIDLower uint64   `json:"contentIdLower"`
	Aliases        []*Alias `json:"aliases"`
}

// Submitter aggregates one submitting character.
type Submitter struct {
	ContentIDLower uint64   `json:"contentIdLower"`
	Count          int      `json:"count"`
	Aliases        []*Alias `json:"aliases"`
}

// DutyCount is the number of records seen for one (type, category, duty) triple.
type DutyCount struct {
	DutyType     uint8  `json:"dutyType"`
	DutyCategory uint16 `json:"dutyCategory"`
	DutyID       uint16 `json:"dutyId"`
	Count        int    `json:"count"`
}

// Stats is the rolling aggregate over all stored records, recomputed on a
// fixed interval; the previous snapshot is served until the next computation
// completes.
type Stats struct {
	UpdatedAt time.Time `json:"updatedAt"`

	TotalListings   int `json:"totalListings"`
	TotalSubmitters int `json:"totalSubmitters"`

	DutyCounts    []*DutyCount        `json:"dutyCounts"`
	Aliases       []*SubmitterAliases `json:"aliases"`
	TopSubmitters []*Submitter        `json:"topSubmitters"`

	// Submission-time histograms over the original created_at, UTC.
	HourOfDay [24]int `json:"hourOfDay"`
	DayOfWeek [7]int  `json:"dayOfWeek"`
}
