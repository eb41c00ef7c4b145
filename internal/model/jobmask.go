package model

// Role is the combat role a job fulfils.
type Role uint8

const (
	RoleTank Role = iota
	RoleHealer
	RoleDPS
)

func (r Role) String() string {
	switch r {
	case RoleTank:
		return "tank"
	case RoleHealer:
		return "healer"
	default:
		return "dps"
	}
}

// Job pairs a ClassJob sheet code with its role.
type Job struct {
	Code uint8
	Role Role
}

// JobMask is the per-slot accepting-job bitset from the wire format.
type JobMask uint64

// jobBits maps bit positions to jobs, in wire bit order. Bit 0 is unused by
// the game client. New jobs appear as new bits; unknown bits must decode to
// nothing so older builds keep working against newer clients.
var jobBits = []struct {
	Bit JobMask
	Job Job
}{
	{1 << 1, Job{1, RoleTank}},     // GLA
	{1 << 2, Job{2, RoleDPS}},      // PGL
	{1 << 3, Job{3, RoleTank}},     // MRD
	{1 << 4, Job{4, RoleDPS}},      // LNC
	{1 << 5, Job{5, RoleDPS}},      // ARC
	{1 << 6, Job{6, RoleHealer}},   // CNJ
	{1 << 7, Job{7, RoleDPS}},      // THM
	{1 << 8, Job{19, RoleTank}},    // PLD
	{1 << 9, Job{20, RoleDPS}},     // MNK
	{1 << 10, Job{21, RoleTank}},   // WAR
	{1 << 11, Job{22, RoleDPS}},    // DRG
	{1 << 12, Job{23, RoleDPS}},    // BRD
	{1 << 13, Job{24, RoleHealer}}, // WHM
	{1 << 14, Job{25, RoleDPS}},    // BLM
	{1 << 15, Job{26, RoleDPS}},    // ACN
	{1 << 16, Job{27, RoleDPS}},    // SMN
	{1 << 17, Job{28, RoleHealer}}, // SCH
	{1 << 18, Job{29, RoleDPS}},    // ROG
	{1 << 19, Job{30, RoleDPS}},    // NIN
	{1 << 20, Job{31, RoleDPS}},    // MCH
	{1 << 21, Job{32, RoleTank}},   // DRK
	{1 << 22, Job{33, RoleHealer}}, // AST
	{1 << 23, Job{34, RoleDPS}},    // SAM
	{1 << 24, Job{35, RoleDPS}},    // RDM
	{1 << 25, Job{36, RoleDPS}},    // BLU
	{1 << 26, Job{37, RoleTank}},   // GNB
	{1 << 27, Job{38, RoleDPS}},    // DNC
	{1 << 28, Job{39, RoleDPS}},    // RPR
	{1 << 29, Job{40, RoleHealer}}, // SGE
}

// allJobBits is the union of every known job bit.
var allJobBits = func() JobMask {
	var m JobMask
	for _, b := range jobBits {
		m |= b.Bit
	}
	return m
}()

// Open reports whether the mask describes an unrestricted slot. The game
// client writes every job bit into a slot that has no restriction at all, so
// a fully-set mask means "open slot", not "accepts each of these jobs".
func (m JobMask) Open() bool {
	return m&allJobBits == allJobBits
}

// Decode returns the jobs the mask accepts, in wire bit order. Unknown bits
// are ignored. An open mask decodes to nothing: callers are expected to
// check Open() first and render such a slot as unrestricted.
func (m JobMask) Decode() []Job {
	if m.Open() {
		return nil
	}
	var jobs []Job
	for _, b := range jobBits {
		if m&b.Bit != 0 {
			jobs = append(jobs, b.Job)
		}
	}
	return jobs
}

func (m JobMask) hasRole(r Role) bool {
	for _, j := range m.Decode() {
		if j.Role == r {
			return true
		}
	}
	return false
}

func (m JobMask) HasTank() bool   { return m.hasRole(RoleTank) }
func (m JobMask) HasHealer() bool { return m.hasRole(RoleHealer) }
func (m JobMask) HasDPS() bool    { return m.hasRole(RoleDPS) }
