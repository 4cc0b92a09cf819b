package physics

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/botsim/game"
	"github.com/oomph-ac/botsim/oerror"
	"github.com/oomph-ac/botsim/omath"
)

// Resolution is the outcome of a single MTV search.
type Resolution struct {
	// Correction is the vector that must be added to the tentative position to separate the avatar from the
	// world. It is the zero vector if the search bailed.
	Correction mgl64.Vec3
	// Explored is the amount of accumulated vectors the oracle was queried for.
	Explored int
	// Terminals is the amount of collision-free corrections found.
	Terminals int
	// Bailed is true if no collision-free correction could be found within the exploration limit.
	Bailed bool
}

// Resolver searches for the minimum translation vector that separates the avatar from world geometry after a
// tentative move. The search is breadth-first over sums of the push-out vectors returned by a CollisionOracle,
// and never accepts a correction that would make the avatar faster than it intended to move.
type Resolver struct {
	oracle CollisionOracle

	// Limit is the maximum amount of accumulated vectors explored in a single search.
	Limit int
	// Tolerance is the slack allowed on the squared speed of the corrected movement.
	Tolerance float64
}

// NewResolver returns a Resolver querying the oracle passed. Non-positive limits and negative tolerances are
// replaced by their defaults.
func NewResolver(oracle CollisionOracle, limit int, tolerance float64) (*Resolver, error) {
	if oracle == nil {
		return nil, oerror.New(game.ErrorMissingOracle)
	}
	if limit <= 0 {
		limit = game.DefaultSearchLimit
	}
	if tolerance < 0 {
		tolerance = game.MTVTolerance
	}
	return &Resolver{oracle: oracle, Limit: limit, Tolerance: tolerance}, nil
}

// Resolve returns the smallest correction for the avatar at the tentative position pos, which it reached by
// moving with vel. Equal-magnitude corrections are ordered by omath.Compare so the result is deterministic.
func (r *Resolver) Resolve(pos, vel mgl64.Vec3) Resolution {
	var (
		res      Resolution
		maxSpeed = omath.LenSqr(vel) + r.Tolerance
		queue    = []mgl64.Vec3{{}}
		seen     = map[mgl64.Vec3]struct{}{{}: {}}
		best     mgl64.Vec3
	)

	// Expand the search until the first collision-free correction is found. Every vector still queued at that
	// point is at most one level deeper, so only those are checked afterwards.
	for len(queue) > 0 && res.Terminals == 0 {
		if res.Explored >= r.Limit {
			return r.bail(res)
		}
		current := queue[0]
		queue = queue[1:]
		res.Explored++

		candidates := r.oracle.Test(pos, current)
		if len(candidates) == 0 {
			res.Terminals++
			best = current
			break
		}
		for _, c := range candidates {
			next := current.Add(c)
			if _, ok := seen[next]; ok {
				continue
			}
			if omath.LenSqr(vel.Add(next)) > maxSpeed {
				continue
			}
			seen[next] = struct{}{}
			queue = append(queue, next)
		}
	}
	if res.Terminals == 0 {
		return r.bail(res)
	}

	for _, current := range queue {
		if res.Explored >= r.Limit {
			break
		}
		res.Explored++
		if len(r.oracle.Test(pos, current)) != 0 {
			continue
		}
		res.Terminals++
		if omath.Less(current, best) {
			best = current
		}
	}
	res.Correction = best
	return res
}

func (r *Resolver) bail(res Resolution) Resolution {
	res.Bailed = true
	res.Correction = mgl64.Vec3{}
	return res
}
