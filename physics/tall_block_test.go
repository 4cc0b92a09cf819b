package physics

import (
	"testing"

	"github.com/df-mc/dragonfly/server/block"
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/botsim/world"
	"github.com/stretchr/testify/require"
)

func TestLandingOnFenceGate(t *testing.T) {
	w := world.New(nil)
	w.SetBlock(cube.Pos{0, 0, 0}, block.WoodFenceGate{Wood: block.OakWood()})
	in := newTestIntegrator(t, w, mgl64.Vec3{0.5, 1.5, 0.5}, nil)
	s := in.State()

	for n := 1; n <= 20; n++ {
		res := in.Tick()
		require.False(t, res.Bailed, "tick %d", n)
	}
	require.True(t, s.OnGround)
	require.InDelta(t, 1.5, s.Position.Y(), 1e-6)
}

func TestWalkingIntoStairsAndFences(t *testing.T) {
	w := world.New(nil)
	planks := block.Planks{Wood: block.OakWood()}
	w.Fill(cube.Pos{-4, -1, -4}, cube.Pos{4, -1, 4}, block.Stone{})
	w.SetBlock(cube.Pos{0, 0, 2}, block.Stairs{Block: planks})
	w.SetBlock(cube.Pos{1, 0, 2}, block.WoodFence{Wood: block.OakWood()})
	in := newTestIntegrator(t, w, mgl64.Vec3{0.5, 0, 0.5}, nil)
	s := in.State()

	require.NotPanics(t, func() {
		for n := 0; n < 40; n++ {
			s.Direction = mgl64.Vec3{0, 0, 1}
			in.Tick()
		}
	})
	// The stair is a full block tall on one half and the avatar cannot step up, so it stops in front of it.
	require.Less(t, s.Position.Z(), 2.0)
}
