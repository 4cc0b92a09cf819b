package physics

import (
	"math"

	"github.com/df-mc/dragonfly/server/block"
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/df-mc/dragonfly/server/world"
	"github.com/go-gl/mathgl/mgl64"
)

// mockWorld is a world made of full solid blocks.
type mockWorld struct {
	solid map[cube.Pos]world.Block
}

func newMockWorld() *mockWorld {
	return &mockWorld{solid: make(map[cube.Pos]world.Block)}
}

func (w *mockWorld) set(x, y, z int, b world.Block) {
	w.solid[cube.Pos{x, y, z}] = b
}

func (w *mockWorld) floor(min, max, y int) {
	for x := min; x <= max; x++ {
		for z := min; z <= max; z++ {
			w.set(x, y, z, block.Stone{})
		}
	}
}

func (w *mockWorld) Block(pos cube.Pos) world.Block {
	if b, ok := w.solid[pos]; ok {
		return b
	}
	return block.Air{}
}

func (w *mockWorld) GetNearbyBBoxes(aabb cube.BBox) []cube.BBox {
	var boxes []cube.BBox
	min, max := aabb.Min(), aabb.Max()
	for x := int(math.Floor(min[0])); x <= int(math.Floor(max[0])); x++ {
		for y := int(math.Floor(min[1])); y <= int(math.Floor(max[1])); y++ {
			for z := int(math.Floor(min[2])); z <= int(math.Floor(max[2])); z++ {
				pos := cube.Pos{x, y, z}
				if _, ok := w.solid[pos]; ok {
					boxes = append(boxes, cube.Box(0, 0, 0, 1, 1, 1).Translate(pos.Vec3()))
				}
			}
		}
	}
	return boxes
}

// scriptedOracle answers collision tests from a fixed table keyed by the accumulated vector.
type scriptedOracle struct {
	answers map[mgl64.Vec3][]mgl64.Vec3
	calls   int
}

func (o *scriptedOracle) Test(_, vec mgl64.Vec3) []mgl64.Vec3 {
	o.calls++
	return o.answers[vec]
}

// funcOracle wraps a function as a CollisionOracle.
type funcOracle func(pos, vec mgl64.Vec3) []mgl64.Vec3

func (f funcOracle) Test(pos, vec mgl64.Vec3) []mgl64.Vec3 {
	return f(pos, vec)
}
