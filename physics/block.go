package physics

import (
	"github.com/df-mc/dragonfly/server/block"
	"github.com/df-mc/dragonfly/server/world"
	"github.com/oomph-ac/botsim/game"
)

// BlockName returns the canonical name of a block.
func BlockName(b world.Block) string {
	n, _ := b.EncodeBlock()
	return n
}

// BlockSlipperiness returns the slipperiness of the block, which determines how much an avatar standing on it
// accelerates and slides.
func BlockSlipperiness(b world.Block) float64 {
	if b == nil {
		return game.BaseGroundSlip
	}
	if f, ok := b.(block.Frictional); ok {
		return f.Friction()
	}

	switch BlockName(b) {
	case "minecraft:slime":
		return 0.8
	case "minecraft:ice", "minecraft:packed_ice":
		return 0.98
	case "minecraft:blue_ice":
		return 0.99
	default:
		return game.BaseGroundSlip
	}
}
