package physics

import (
	"log/slog"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/botsim/event"
	"github.com/oomph-ac/botsim/game"
	"github.com/oomph-ac/botsim/oerror"
	"github.com/oomph-ac/botsim/omath"
)

// Integrator advances a State by one physics tick at a time.
type Integrator struct {
	state    *State
	world    World
	resolver *Resolver
	bus      *event.Bus
	log      *slog.Logger
}

// NewIntegrator returns an Integrator moving the state through the world passed. The bus may be nil, in which
// case bails are only logged.
func NewIntegrator(state *State, w World, resolver *Resolver, bus *event.Bus, log *slog.Logger) (*Integrator, error) {
	switch {
	case state == nil:
		return nil, oerror.New(game.ErrorMissingState)
	case w == nil:
		return nil, oerror.New(game.ErrorMissingWorld)
	case resolver == nil:
		return nil, oerror.New(game.ErrorMissingResolver)
	}
	if log == nil {
		log = slog.Default()
	}
	return &Integrator{state: state, world: w, resolver: resolver, bus: bus, log: log}, nil
}

// State returns the state moved by the integrator.
func (i *Integrator) State() *State {
	return i.state
}

// Tick runs a single physics tick: acceleration, collision, gravity and drag, in that order.
func (i *Integrator) Tick() Resolution {
	i.Accelerate()
	res := i.Collide()
	i.ApplyGravity()
	i.ApplyDrag()
	return res
}

// BlockSlip returns the slipperiness affecting the avatar. Airborne avatars are not slowed by any block.
func (i *Integrator) BlockSlip() float64 {
	if !i.state.OnGround {
		return 1
	}
	pos := omath.Floor(i.state.Position.Sub(mgl64.Vec3{0, game.SlipProbeDepth}))
	return BlockSlipperiness(i.world.Block(pos))
}

// Accelerate adds the movement of the current tick's direction to the velocity.
func (i *Integrator) Accelerate() {
	s := i.state
	if omath.IsZero(s.Direction) {
		return
	}
	accel := game.AirAcceleration
	if s.OnGround {
		slip := i.BlockSlip()
		accelMod := (game.BaseGroundSlip * game.BaseGroundSlip * game.BaseGroundSlip) / (slip * slip * slip)
		accel = s.MoveAccel * accelMod * game.BaseDrag
	}
	s.Velocity = s.Velocity.Add(omath.SafeNormalize(s.Direction).Mul(accel))
}

// Collide moves the avatar by its velocity and resolves the resulting overlap with the world. Every axis that
// had to be corrected loses its velocity, and the avatar is on the ground if it was pushed upwards.
func (i *Integrator) Collide() Resolution {
	s := i.state
	res := i.resolver.Resolve(s.Position.Add(s.Velocity), s.Velocity)
	if res.Bailed {
		i.bail(res)
	}

	mtv := res.Correction
	s.Position = s.Position.Add(s.Velocity.Add(mtv))
	for axis := range 3 {
		if mtv[axis] != 0 {
			s.Velocity[axis] = 0
		}
	}
	s.OnGround = mtv[1] > 0
	return res
}

// ApplyGravity pulls the avatar downwards.
func (i *Integrator) ApplyGravity() {
	i.state.Velocity[1] -= game.Gravity
}

// ApplyDrag slows the avatar down, horizontally depending on the ground it stands on.
func (i *Integrator) ApplyDrag() {
	s := i.state
	drag := i.BlockSlip() * game.DragMultiplier
	s.Velocity[0] *= drag
	s.Velocity[2] *= drag
	s.Velocity[1] *= game.BaseDrag
}

func (i *Integrator) bail(res Resolution) {
	s := i.state
	i.log.Debug("collision search bailed", "pos", s.Position, "vel", s.Velocity, "explored", res.Explored)
	if i.bus != nil {
		i.bus.Bail.Emit(event.Bail{Position: s.Position, Velocity: s.Velocity, Explored: res.Explored})
	}
	s.Velocity = mgl64.Vec3{}
}
