package types

// SubmitListing is the wire shape a contributing client posts. Numeric wire
// fields are kept raw here; decoding into semantic types happens during
// normalization.
type SubmitListing struct {
	ID                uint32 `json:"id" validate:"required"`
	LastServerRestart uint32 `json:"lastServerRestart"`
	CreatedWorld      uint16 `json:"createdWorld" validate:"required"`
	HomeWorld         uint16 `json:"homeWorld" validate:"required"`
	CurrentWorld      uint16 `json:"currentWorld" validate:"required"`

	// Territory is the zone the recruiter was last seen in, 0 when the
	// client does not report it.
	Territory uint16 `json:"territory"`

	ContentIDLower uint64 `json:"contentIdLower" validate:"required"`

	// Name and Description are packed payload text, base64 on the wire.
	Name        []byte `json:"name"`
	Description []byte `json:"description"`

	DutyType     uint8  `json:"dutyType" validate:"lte=2"`
	DutyCategory uint16 `json:"dutyCategory"`
	DutyID       uint16 `json:"dutyId"`

	MinItemLevel     uint16 `json:"minItemLevel"`
	BeginnersWelcome bool   `json:"beginnersWelcome"`

	Objective          uint32 `json:"objective"`
	Conditions         uint32 `json:"conditions"`
	SearchArea         uint32 `json:"searchArea"`
	DutyFinderSettings uint32 `json:"dutyFinderSettings"`
	LootRules          uint32 `json:"lootRules"`

	SlotsAvailable uint8    `json:"slotsAvailable" validate:"lte=8"`
	Slots          []uint64 `json:"slots" validate:"max=8"`
	JobsPresent    []uint8  `json:"jobsPresent" validate:"max=8"`

	SecondsRemaining uint16 `json:"secondsRemaining"`
}

// BatchSubmitRequest carries a batch of listings from a crawler-style client.
type BatchSubmitRequest struct {
	Listings []*SubmitListing `json:"listings" validate:"required,dive"`
}
