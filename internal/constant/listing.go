package constant

const (
	// MinValidWorldID is the reserved minimum world identifier a listing may reference.
	// Submissions naming any world below this are malformed.
	MinValidWorldID = 1000

	// MaxSecondsRemaining is the sanity bound on a listing's self-reported remaining
	// time. The game never hands out recruitment windows longer than an hour.
	MaxSecondsRemaining = 3600

	MaxPerPage     = 100
	DefaultPerPage = 20

	TopSubmitterCount = 15
)
