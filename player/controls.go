package player

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/botsim/game"
	"github.com/oomph-ac/botsim/omath"
)

// Jump makes the avatar jump if it is standing on the ground. Sprinting avatars are also boosted along the
// direction they are moving in. Jumping vehicles are not supported, so Jump does nothing while mounted.
func (c *Controller) Jump() {
	s := c.state
	if s.Mounted {
		c.log.Debug("ignored jump while mounted")
		return
	}
	if !s.OnGround {
		return
	}
	if s.Sprinting {
		if groundSpeed := omath.Horizontal(s.Velocity); !omath.IsZero(groundSpeed) {
			s.Velocity = s.Velocity.Add(groundSpeed.Normalize().Mul(game.SprintJumpBoost))
		}
	}
	s.Velocity[1] = game.JumpVelocity
}

// Walk makes the avatar move at its walking speed, stopping it from sprinting.
func (c *Controller) Walk() {
	s := c.state
	if s.Sprinting {
		c.net.PushPacket(EntityAction{Action: ActionStopSprint})
	}
	s.Sprinting = false
	s.MoveAccel = s.Abilities().WalkingSpeed()
}

// Sprint makes the avatar sprint.
func (c *Controller) Sprint() {
	s := c.state
	if !s.Sprinting {
		c.net.PushPacket(EntityAction{Action: ActionStartSprint})
	}
	s.Sprinting = true
	s.MoveAccel = s.Abilities().WalkingSpeed() * game.SprintMultiplier
}

// MoveTarget makes the avatar move towards the target this tick. It returns true if the target is reached
// within this tick at the current horizontal speed of the avatar: the squared horizontal distance is at most
// the squared horizontal velocity. An avatar at rest has only reached the target when it stands on it.
func (c *Controller) MoveTarget(target mgl64.Vec3) bool {
	s := c.state
	dir := omath.Horizontal(target.Sub(s.Position))
	s.Direction = dir
	return omath.LenSqr(dir) <= omath.LenSqr(omath.Horizontal(s.Velocity))
}

// MoveVector makes the avatar move along the horizontal part of the vector this tick.
func (c *Controller) MoveVector(vec mgl64.Vec3) {
	c.state.Direction = omath.Horizontal(vec)
}

// MoveAngle makes the avatar move along the angle passed this tick. The angle is in degrees unless radians
// is true.
func (c *Controller) MoveAngle(angle float64, radians bool) {
	c.state.Direction = omath.DirectionFromAngle(angle, radians)
}
