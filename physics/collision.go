package physics

import (
	"slices"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/botsim/game"
	"github.com/oomph-ac/botsim/oerror"
	"github.com/oomph-ac/botsim/omath"
)

// overlapEpsilon is the penetration below which two boxes are considered to merely touch.
const overlapEpsilon = 1e-7

// MTVTest is a CollisionOracle testing the bounding volume of the avatar against the block boxes of a world.
type MTVTest struct {
	world  BBoxProvider
	volume BoundingVolume
}

// NewMTVTest returns an MTVTest for the volume passed in the world passed.
func NewMTVTest(w BBoxProvider, volume BoundingVolume) (*MTVTest, error) {
	if w == nil {
		return nil, oerror.New(game.ErrorMissingWorld)
	}
	if err := volume.validate(); err != nil {
		return nil, err
	}
	return &MTVTest{world: w, volume: volume}, nil
}

// Volume returns the bounding volume tested.
func (t *MTVTest) Volume() BoundingVolume {
	return t.volume
}

// Test places the volume at pos moved by vec and returns the six axis push-out vectors of the first block box
// it penetrates, smallest first. It returns nil if the volume penetrates nothing.
func (t *MTVTest) Test(pos, vec mgl64.Vec3) []mgl64.Vec3 {
	bb := t.volume.BBox(pos.Add(vec))
	for _, other := range t.world.GetNearbyBBoxes(bb) {
		if !penetrates(bb, other) {
			continue
		}
		return pushOuts(bb, other)
	}
	return nil
}

// penetrates returns true if the two boxes overlap by more than overlapEpsilon on every axis.
func penetrates(a, b cube.BBox) bool {
	aMin, aMax, bMin, bMax := a.Min(), a.Max(), b.Min(), b.Max()
	for i := range 3 {
		if aMax[i]-bMin[i] <= overlapEpsilon || bMax[i]-aMin[i] <= overlapEpsilon {
			return false
		}
	}
	return true
}

// pushOuts returns the vectors along each axis, in both directions, that move the box moving out of the box
// stationary.
func pushOuts(moving, stationary cube.BBox) []mgl64.Vec3 {
	mMin, mMax, sMin, sMax := moving.Min(), moving.Max(), stationary.Min(), stationary.Max()
	vecs := make([]mgl64.Vec3, 0, 6)
	for i := range 3 {
		var pos, neg mgl64.Vec3
		pos[i] = sMax[i] - mMin[i]
		neg[i] = sMin[i] - mMax[i]
		vecs = append(vecs, pos, neg)
	}
	slices.SortFunc(vecs, func(a, b mgl64.Vec3) int {
		if omath.Less(a, b) {
			return -1
		} else if omath.Less(b, a) {
			return 1
		}
		return 0
	})
	return vecs
}
