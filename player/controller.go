package player

import (
	"log/slog"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/botsim/event"
	"github.com/oomph-ac/botsim/game"
	"github.com/oomph-ac/botsim/oerror"
	"github.com/oomph-ac/botsim/omath"
	"github.com/oomph-ac/botsim/physics"
)

// Controller drives the physics of the avatar from the ticks of an external scheduler and reports the resulting
// state to the server. It also exposes the movement controls used by the layers above it.
//
// A Controller is not safe for concurrent use. All of its methods, including the tick handlers, must be called
// from the goroutine that runs the simulation.
type Controller struct {
	state      *physics.State
	integrator *physics.Integrator
	net        Net
	log        *slog.Logger

	lastResolution physics.Resolution
	physicsTicks   uint64
	// steered is the direction consumed by the last physics tick.
	steered mgl64.Vec3

	unsubscribe []func()
}

// NewController returns a Controller that simulates the state of the integrator and reports it over net. The
// controller subscribes to the tick and position update signals of the bus until Close is called.
func NewController(integrator *physics.Integrator, net Net, bus *event.Bus, log *slog.Logger) (*Controller, error) {
	switch {
	case integrator == nil:
		return nil, oerror.New(game.ErrorMissingIntegrator)
	case net == nil:
		return nil, oerror.New(game.ErrorMissingNet)
	case bus == nil:
		return nil, oerror.New(game.ErrorMissingBus)
	}
	if log == nil {
		log = slog.Default()
	}

	c := &Controller{
		state:      integrator.State(),
		integrator: integrator,
		net:        net,
		log:        log,
	}
	c.unsubscribe = []func(){
		bus.PhysicsTick.Subscribe(func(event.Tick) { c.PhysicsTick() }),
		bus.ClientTick.Subscribe(func(event.Tick) { c.ClientTick() }),
		bus.PositionUpdate.Subscribe(func(u event.PositionUpdate) { c.Teleport(u) }),
	}
	return c, nil
}

// State returns the physics state controlled.
func (c *Controller) State() *physics.State {
	return c.state
}

// LastResolution returns the result of the collision search of the last simulated physics tick.
func (c *Controller) LastResolution() physics.Resolution {
	return c.lastResolution
}

// PhysicsTicks returns the amount of physics ticks that were simulated, skipped ticks excluded.
func (c *Controller) PhysicsTicks() uint64 {
	return c.physicsTicks
}

// PhysicsTick simulates a single physics tick. The tick is skipped if a position update was received since
// the previous one. The movement direction is consumed either way.
func (c *Controller) PhysicsTick() {
	defer func() {
		c.steered = c.state.Direction
		c.state.Direction = mgl64.Vec3{}
	}()

	if c.state.ConsumeSkip() {
		c.state.Velocity = mgl64.Vec3{}
		c.log.Debug("skipped physics tick after position update", "pos", c.state.Position)
		return
	}

	if c.state.Mounted {
		// The vehicle moves the avatar: only face the way we want to steer.
		if !omath.IsZero(c.state.Direction) {
			c.state.Yaw, _ = omath.YawPitchTowards(c.state.Direction)
			c.state.Pitch = 0
		}
		return
	}

	c.lastResolution = c.integrator.Tick()
	c.physicsTicks++
}

// ClientTick reports the state of the avatar to the server. While mounted, the steering input is the direction
// set for the coming physics tick or, if that tick already ran, the direction it consumed.
func (c *Controller) ClientTick() {
	s := c.state
	if s.Mounted {
		dir := s.Direction
		if omath.IsZero(dir) {
			dir = c.steered
		}
		c.net.PushPacket(Look{Yaw: s.Yaw, Pitch: s.Pitch, OnGround: s.OnGround})
		c.net.PushPacket(SteerVehicle{Forward: dir.Len()})
		return
	}
	c.net.PushPacket(PositionLook{
		X: s.Position[0], Y: s.Position[1], Z: s.Position[2],
		Yaw: s.Yaw, Pitch: s.Pitch,
		OnGround: s.OnGround,
	})
}

// Teleport applies an authoritative position update from the server.
func (c *Controller) Teleport(u event.PositionUpdate) {
	c.state.Override(u.Position, u.Yaw, u.Pitch)
}

// Close stops the controller from receiving signals from the bus.
func (c *Controller) Close() {
	for _, unsub := range c.unsubscribe {
		unsub()
	}
	c.unsubscribe = nil
}
