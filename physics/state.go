package physics

import (
	"encoding/binary"
	"math"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/botsim/game"
	"github.com/oomph-ac/botsim/oerror"
	"github.com/zeebo/xxh3"
)

// BoundingVolume is the box the avatar occupies. It is centred horizontally on the position of the avatar and
// extends upwards from it.
type BoundingVolume struct {
	Width, Height float64
}

// PlayerVolume returns the bounding volume of a standing player.
func PlayerVolume() BoundingVolume {
	return BoundingVolume{Width: game.PlayerWidth, Height: game.PlayerHeight}
}

// BBox returns the bounding box of the volume placed at pos.
func (v BoundingVolume) BBox(pos mgl64.Vec3) cube.BBox {
	hw := v.Width / 2
	return cube.Box(pos[0]-hw, pos[1], pos[2]-hw, pos[0]+hw, pos[1]+v.Height, pos[2]+hw)
}

func (v BoundingVolume) validate() error {
	if v.Width <= 0 || v.Height <= 0 {
		return oerror.New(game.ErrorInvalidVolume, v.Width, v.Height)
	}
	return nil
}

// State holds the movement state of the avatar. Only the tick handler writes Position and Velocity; everything
// else goes through Override.
type State struct {
	Position mgl64.Vec3
	Velocity mgl64.Vec3
	// Direction is the horizontal direction the avatar wants to move in during the current tick. It is consumed
	// by the next physics tick and reset to zero afterwards.
	Direction mgl64.Vec3

	Yaw, Pitch float64

	// OnGround is true if the last physics tick pushed the avatar upwards out of the world.
	OnGround  bool
	Sprinting bool
	// Mounted is true while the avatar rides a vehicle. Physics are not simulated while mounted.
	Mounted bool

	// MoveAccel is the acceleration applied when walking, derived from the abilities of the avatar.
	MoveAccel float64

	abilities Abilities
	skip      bool
}

// NewState returns a State at the position passed, walking at the speed granted by the abilities.
func NewState(pos mgl64.Vec3, abilities Abilities) (*State, error) {
	if abilities == nil {
		return nil, oerror.New(game.ErrorMissingAbilities)
	}
	return &State{
		Position:  pos,
		MoveAccel: abilities.WalkingSpeed(),
		abilities: abilities,
	}, nil
}

// Abilities returns the abilities the state was created with.
func (s *State) Abilities() Abilities {
	return s.abilities
}

// Override forces a position and orientation onto the avatar, as a server teleport does. Velocity is reset and
// the next physics tick is skipped so the override is reported back unchanged.
func (s *State) Override(pos mgl64.Vec3, yaw, pitch float64) {
	s.Position = pos
	s.Yaw, s.Pitch = yaw, pitch
	s.Velocity = mgl64.Vec3{}
	s.skip = true
}

// SkipPending returns true if the next physics tick will be skipped.
func (s *State) SkipPending() bool {
	return s.skip
}

// ConsumeSkip clears the skip flag, returning whether it was set.
func (s *State) ConsumeSkip() bool {
	skip := s.skip
	s.skip = false
	return skip
}

// Fingerprint returns a hash of the simulated fields of the state. Two states with the same fingerprint will
// simulate identically against the same world.
func (s *State) Fingerprint() uint64 {
	var buf [12*8 + 4]byte
	off := 0
	for _, v := range [...]mgl64.Vec3{s.Position, s.Velocity, s.Direction} {
		for _, f := range v {
			binary.LittleEndian.PutUint64(buf[off:], math.Float64bits(f))
			off += 8
		}
	}
	for _, f := range [...]float64{s.Yaw, s.Pitch, s.MoveAccel} {
		binary.LittleEndian.PutUint64(buf[off:], math.Float64bits(f))
		off += 8
	}
	for _, b := range [...]bool{s.OnGround, s.Sprinting, s.Mounted, s.skip} {
		if b {
			buf[off] = 1
		}
		off++
	}
	return xxh3.Hash(buf[:])
}
