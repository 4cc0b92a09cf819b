package world

import (
	"log/slog"
	"math"

	"github.com/df-mc/dragonfly/server/block"
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/df-mc/dragonfly/server/world"
	"github.com/sandertv/gophertunnel/minecraft/protocol"
	"github.com/sasha-s/go-deadlock"
)

// World is an in-memory voxel world. Blocks are bucketed per chunk so regions far away from the avatar can be
// dropped cheaply. Positions that were never set hold air.
type World struct {
	chunks map[protocol.ChunkPos]map[cube.Pos]world.Block
	log    *slog.Logger

	deadlock.RWMutex
}

// New returns an empty World.
func New(log *slog.Logger) *World {
	if log == nil {
		log = slog.Default()
	}
	return &World{
		chunks: make(map[protocol.ChunkPos]map[cube.Pos]world.Block),
		log:    log,
	}
}

func chunkPosOf(pos cube.Pos) protocol.ChunkPos {
	return protocol.ChunkPos{int32(pos[0]) >> 4, int32(pos[2]) >> 4}
}

// Block returns the block at the position passed.
func (w *World) Block(pos cube.Pos) world.Block {
	if pos.OutOfBounds(world.Overworld.Range()) {
		return block.Air{}
	}

	w.RLock()
	defer w.RUnlock()
	if b, ok := w.chunks[chunkPosOf(pos)][pos]; ok {
		return b
	}
	return block.Air{}
}

// SetBlock sets the block at the position passed. Setting air removes the block.
func (w *World) SetBlock(pos cube.Pos, b world.Block) {
	if pos.OutOfBounds(world.Overworld.Range()) {
		return
	}
	chunkPos := chunkPosOf(pos)

	w.Lock()
	defer w.Unlock()

	if _, air := b.(block.Air); air || b == nil {
		if c, ok := w.chunks[chunkPos]; ok {
			delete(c, pos)
			if len(c) == 0 {
				delete(w.chunks, chunkPos)
			}
		}
		return
	}
	if w.chunks[chunkPos] == nil {
		w.chunks[chunkPos] = make(map[cube.Pos]world.Block)
	}
	w.chunks[chunkPos][pos] = b
}

// Fill sets every block in the cuboid spanned by the two positions, inclusive, to b.
func (w *World) Fill(a, b cube.Pos, bl world.Block) {
	minX, maxX := min(a[0], b[0]), max(a[0], b[0])
	minY, maxY := min(a[1], b[1]), max(a[1], b[1])
	minZ, maxZ := min(a[2], b[2]), max(a[2], b[2])
	for x := minX; x <= maxX; x++ {
		for y := minY; y <= maxY; y++ {
			for z := minZ; z <= maxZ; z++ {
				w.SetBlock(cube.Pos{x, y, z}, bl)
			}
		}
	}
}

// BlockCollisions returns the collision boxes of the block at the position passed, in world space.
func (w *World) BlockCollisions(pos cube.Pos) []cube.BBox {
	b := w.Block(pos)
	boxes := BlockBBoxes(b, pos, w)
	for i, bb := range boxes {
		boxes[i] = bb.Translate(pos.Vec3())
	}
	return boxes
}

// GetNearbyBBoxes returns the collision boxes of every block that touches or intersects with the box passed.
// Blocks such as fences and walls stick out of their cell, so the cells around the box are searched too. Boxes
// are ordered by block position, X first, then Y, then Z.
func (w *World) GetNearbyBBoxes(aabb cube.BBox) []cube.BBox {
	grown := aabb.Grow(0.5)
	minPos, maxPos := grown.Min(), grown.Max()
	var boxes []cube.BBox
	for x := int(math.Floor(minPos[0])); x <= int(math.Floor(maxPos[0])); x++ {
		for y := int(math.Floor(minPos[1])); y <= int(math.Floor(maxPos[1])); y++ {
			for z := int(math.Floor(minPos[2])); z <= int(math.Floor(maxPos[2])); z++ {
				for _, bb := range w.BlockCollisions(cube.Pos{x, y, z}) {
					if touches(bb, aabb) {
						boxes = append(boxes, bb)
					}
				}
			}
		}
	}
	return boxes
}

// touches returns true if the boxes intersect or share a face.
func touches(a, b cube.BBox) bool {
	aMin, aMax, bMin, bMax := a.Min(), a.Max(), b.Min(), b.Max()
	for i := range 3 {
		if aMax[i] < bMin[i] || bMax[i] < aMin[i] {
			return false
		}
	}
	return true
}

// ChunkCount returns the amount of chunks that hold at least one block.
func (w *World) ChunkCount() int {
	w.RLock()
	defer w.RUnlock()
	return len(w.chunks)
}

// CleanChunks removes every chunk further than radius chunks away from the chunk position passed.
func (w *World) CleanChunks(radius int32, pos protocol.ChunkPos) {
	w.Lock()
	defer w.Unlock()

	for chunkPos := range w.chunks {
		if chunkInRange(radius, chunkPos, pos) {
			continue
		}
		delete(w.chunks, chunkPos)
		w.log.Debug("removed out of range chunk", "chunkPos", chunkPos, "radius", radius, "pos", pos)
	}
}

// PurgeChunks removes all chunks from the world.
func (w *World) PurgeChunks() {
	w.Lock()
	defer w.Unlock()
	clear(w.chunks)
}

// chunkInRange returns true if the chunk position is within the given radius of the chunk position.
func chunkInRange(radius int32, chunkPos, pos protocol.ChunkPos) bool {
	diffX, diffZ := float64(pos[0]-chunkPos[0]), float64(pos[1]-chunkPos[1])
	return int32(math.Hypot(diffX, diffZ)) <= radius
}
