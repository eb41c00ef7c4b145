package modelv1

import (
	"time"
)

// Slot is the presentation form of one party slot.
type Slot struct {
	// Open marks a slot with no job restriction at all. Open slots carry no
	// role summary.
	Open bool `json:"open"`

	// Filled is the job abbreviation of the member occupying the slot, empty
	// while the slot is vacant.
	Filled string `json:"filled,omitempty"`

	Tank   bool `json:"tank"`
	Healer bool `json:"healer"`
	DPS    bool `json:"dps"`
}

// Listing is the presentation form of a live listing: packed text decoded,
// numeric ids resolved to display names, derived timing fields attached.
type Listing struct {
	ID uint32 `json:"id"`

	Name        string `json:"name"`
	Description string `json:"description"`

	Category string `json:"category"`
	Duty     string `json:"duty"`

	MinItemLevel     uint16 `json:"minItemLevel"`
	BeginnersWelcome bool   `json:"beginnersWelcome"`
	CrossWorld       bool   `json:"crossWorld"`
	Practice         bool   `json:"practice"`
	GreedOnly        bool   `json:"greedOnly"`

	CreatedWorld string `json:"createdWorld"`
	HomeWorld    string `json:"homeWorld"`
	CurrentWorld string `json:"currentWorld"`
	DataCenter   string `json:"datacenter"`

	// Location is the zone the recruiter was last seen in, empty when the
	// submitting client did not report one.
	Location string `json:"location,omitempty"`

	SlotsAvailable uint8   `json:"slotsAvailable"`
	SlotsFilled    uint8   `json:"slotsFilled"`
	Slots          []*Slot `json:"slots"`

	// TimeLeft is in seconds, decayed to the moment the view was computed.
	TimeLeft  float64   `json:"timeLeft"`
	UpdatedAt time.Time `json:"updatedAt"`
}
