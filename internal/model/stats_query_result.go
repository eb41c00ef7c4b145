package model

// Scan targets for the statistics facet queries.

type DutyCountResult struct {
	DutyType     uint8  `bun:"duty_type"`
	DutyCategory uint16 `bun:"duty_category"`
	DutyID       uint16 `bun:"duty_id"`
	Count        int    `bun:"count"`
}

type SubmitterCountResult struct {
	ContentIDLower uint64 `bun:"content_id_lower"`
	Count          int    `bun:"count"`
}

type AliasResult struct {
	ContentIDLower uint64 `bun:"content_id_lower"`
	Name           []byte `bun:"name"`
	HomeWorld      uint16 `bun:"home_world"`
}

type BucketCountResult struct {
	Bucket int `bun:"bucket"`
	Count  int `bun:"count"`
}
