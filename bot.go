// Package botsim wires a simulated avatar together: a voxel world, the collision search, the physics integrator,
// the tick controller and the scheduler driving it.
package botsim

import (
	"log/slog"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/botsim/event"
	"github.com/oomph-ac/botsim/physics"
	"github.com/oomph-ac/botsim/player"
	"github.com/oomph-ac/botsim/settings"
	"github.com/oomph-ac/botsim/world"
	"github.com/oomph-ac/botsim/worker"
)

// Bot is a simulated avatar together with the world it moves in.
type Bot struct {
	World      *world.World
	Bus        *event.Bus
	Controller *player.Controller
	Scheduler  *worker.Scheduler
}

// Close stops the scheduler and detaches the controller from the bus.
func (b *Bot) Close() {
	b.Scheduler.Close()
	b.Controller.Close()
}

func provideWorld(log *slog.Logger) *world.World {
	return world.New(log)
}

func provideVolume(s settings.Settings) physics.BoundingVolume {
	return physics.BoundingVolume{Width: s.Avatar.Width, Height: s.Avatar.Height}
}

func provideOracle(w *world.World, volume physics.BoundingVolume) (*physics.MTVTest, error) {
	return physics.NewMTVTest(w, volume)
}

func provideResolver(oracle *physics.MTVTest, s settings.Settings) (*physics.Resolver, error) {
	return physics.NewResolver(oracle, s.Physics.SearchLimit, s.Physics.Tolerance)
}

func provideState(s settings.Settings) (*physics.State, error) {
	spawn := mgl64.Vec3{s.Avatar.SpawnX, s.Avatar.SpawnY, s.Avatar.SpawnZ}
	return physics.NewState(spawn, physics.StaticAbilities{Speed: s.Physics.WalkingSpeed})
}

func provideIntegrator(state *physics.State, w *world.World, resolver *physics.Resolver, bus *event.Bus, log *slog.Logger) (*physics.Integrator, error) {
	return physics.NewIntegrator(state, w, resolver, bus, log)
}

func provideScheduler(bus *event.Bus, state *physics.State, s settings.Settings, log *slog.Logger) (*worker.Scheduler, error) {
	sch, err := worker.NewScheduler(bus, s.Ticks.PhysicsRate, s.Ticks.ClientRate, log)
	if err != nil {
		return nil, err
	}
	sch.Digest = state
	return sch, nil
}
