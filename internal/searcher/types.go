package searcher

import (
	"math"

	"github.com/hupe1980/grann/distance"
)

// InvalidID marks unused parent slots and empty buffer entries. Callers must
// treat it as "no further valid neighbor found", never as an error.
const InvalidID = ^uint32(0)

// MaxDistance is the sentinel distance for empty buffer entries. Sentinels
// sort after every real candidate.
const MaxDistance = float32(math.MaxFloat32)

// Candidate is one frontier entry. Visited is an explicit tag rather than a
// stolen id bit; once set it is never cleared within a traversal.
type Candidate struct {
	Distance float32
	ID       uint32
	Visited  bool
}

var sentinel = Candidate{Distance: MaxDistance, ID: InvalidID}

// less orders candidates by (distance, id) ascending. The id tie-break keeps
// the sort deterministic under equal distances.
func less(a, b Candidate) bool {
	if a.Distance != b.Distance {
		return a.Distance < b.Distance
	}

	return a.ID < b.ID
}

// Config carries the per-traversal parameters. All values must be validated
// by the caller; see BufferCapacity for the static capacity precondition.
type Config struct {
	// ITopK is the size of the maintained best-known result region.
	ITopK int

	// SearchWidth is the maximum number of parents expanded per iteration.
	SearchWidth int

	// MinIterations forces a minimum exploration effort even if the search
	// looks converged. MaxIterations bounds the traversal unconditionally.
	MinIterations int
	MaxIterations int

	// HashBits sizes the visited set at 2^HashBits slots.
	HashBits int

	// Seeds are explicit initial nodes. RandomSamples is the number of
	// additional random nodes drawn during initial expansion.
	Seeds         []uint32
	RandomSamples int

	// Seed drives the random sampling of the initial expansion.
	Seed int64

	// Distance scores query/vector pairs. Smaller is closer.
	Distance distance.Func

	// Accept is the admission predicate, already bound to its query.
	// A nil Accept disables the filtering stages entirely.
	Accept func(node uint32) bool
}
