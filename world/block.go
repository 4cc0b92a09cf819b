package world

import (
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/df-mc/dragonfly/server/world"
)

// BlockName returns the name of the block.
func BlockName(b world.Block) string {
	n, _ := b.EncodeBlock()
	return n
}

// BlockBBoxes returns the collision boxes of the block, relative to its position. Models that connect to their
// neighbours, such as stairs and fences, read them from src. A few blocks collide differently from the shape
// their model describes.
func BlockBBoxes(b world.Block, pos cube.Pos, src world.BlockSource) []cube.BBox {
	switch BlockName(b) {
	case "minecraft:air":
		return nil
	case "minecraft:portal", "minecraft:end_portal", "minecraft:vine", "minecraft:lever",
		"minecraft:redstone_wire", "minecraft:rail", "minecraft:tallgrass", "minecraft:fern":
		return nil
	case "minecraft:web":
		return []cube.BBox{cube.Box(0, 0, 0, 1, 1, 1)}
	case "minecraft:bed":
		return []cube.BBox{cube.Box(0, 0, 0, 1, 9.0/16.0, 1)}
	case "minecraft:waterlily":
		return []cube.BBox{cube.Box(0, 0, 0, 1, 1.0/64.0, 1)}
	case "minecraft:soul_sand":
		return []cube.BBox{cube.Box(0, 0, 0, 1, 7.0/8.0, 1)}
	case "minecraft:end_portal_frame":
		return []cube.BBox{cube.Box(0, 0, 0, 1, 13.0/16.0, 1)}
	}
	return b.Model().BBox(pos, src)
}
