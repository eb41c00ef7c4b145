package constant

import "time"

const (
	// MaintainWindow is how recently a listing must have been refreshed by its
	// submitter to still count as live. Submitters re-send their listings roughly
	// once a minute while the recruitment window is open.
	MaintainWindow = 5 * time.Minute

	// ScanBackstop bounds how much history the live query scans at the store.
	ScanBackstop = 2 * time.Hour

	// UpdatedMinuteBucket is the truncation applied to updated_at to form the
	// stable secondary sort key for the default listing view.
	UpdatedMinuteBucket = 5 * time.Minute

	// CacheSweepInterval is how often the in-process caches evict expired entries.
	CacheSweepInterval = time.Minute
)
