package physics

import (
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/df-mc/dragonfly/server/world"
	"github.com/go-gl/mathgl/mgl64"
)

// World bridges the voxel world for the block lookups the integrator needs.
type World interface {
	Block(pos cube.Pos) world.Block
}

// BBoxProvider returns the collision boxes of all blocks that may intersect with the given box.
type BBoxProvider interface {
	GetNearbyBBoxes(aabb cube.BBox) []cube.BBox
}

// CollisionOracle tests whether the bounding volume of the avatar, placed at pos and moved by vec, overlaps with
// world geometry. It returns the candidate push-out vectors along single axes that would separate the two, or no
// vectors at all if nothing overlaps. Implementations must be pure: calling Test twice with the same arguments
// must return the same result.
type CollisionOracle interface {
	Test(pos, vec mgl64.Vec3) []mgl64.Vec3
}

// Abilities exposes the server-granted abilities that movement depends on.
type Abilities interface {
	WalkingSpeed() float64
}

// StaticAbilities is an Abilities implementation with a fixed walking speed.
type StaticAbilities struct {
	Speed float64
}

// WalkingSpeed ...
func (a StaticAbilities) WalkingSpeed() float64 {
	return a.Speed
}
