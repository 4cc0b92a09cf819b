package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/botsim/event"
	"github.com/oomph-ac/botsim/game"
	"github.com/oomph-ac/botsim/oerror"
	"go.uber.org/atomic"
)

// updateQueueSize is the amount of position updates that may wait for the next tick.
const updateQueueSize = 16

// Fingerprinter is implemented by states that can produce a digest of themselves.
type Fingerprinter interface {
	Fingerprint() uint64
}

// Scheduler raises the tick signals of a bus from a single goroutine. Position updates received from other
// goroutines are queued and raised between ticks, so nothing subscribed to the bus ever runs concurrently.
type Scheduler struct {
	bus *event.Bus
	log *slog.Logger

	physicsInterval time.Duration
	clientInterval  time.Duration

	physicsTicks uint64
	clientTicks  uint64

	// Digest is optional. When set, its fingerprint is logged at debug level after every physics tick.
	Digest Fingerprinter

	updates chan event.PositionUpdate
	closed  atomic.Bool
	done    chan struct{}
}

// NewScheduler returns a Scheduler raising physics and client ticks on the bus at the rates passed, in ticks
// per second.
func NewScheduler(bus *event.Bus, physicsRate, clientRate int, log *slog.Logger) (*Scheduler, error) {
	if bus == nil {
		return nil, oerror.New(game.ErrorMissingBus)
	}
	if physicsRate <= 0 || clientRate <= 0 {
		return nil, oerror.New(game.ErrorInvalidTickRate, physicsRate, clientRate)
	}
	if log == nil {
		log = slog.Default()
	}
	return &Scheduler{
		bus:             bus,
		log:             log,
		physicsInterval: time.Second / time.Duration(physicsRate),
		clientInterval:  time.Second / time.Duration(clientRate),
		updates:         make(chan event.PositionUpdate, updateQueueSize),
		done:            make(chan struct{}),
	}, nil
}

// Teleport queues an authoritative position update. It is raised on the bus before the next tick. Teleport never
// blocks: it returns false if the scheduler was closed or if updateQueueSize updates are already waiting.
func (s *Scheduler) Teleport(pos mgl64.Vec3, yaw, pitch float64) bool {
	if s.closed.Load() {
		return false
	}
	select {
	case s.updates <- event.PositionUpdate{Position: pos, Yaw: yaw, Pitch: pitch}:
		return true
	default:
		s.log.Warn("dropped position update, queue is full", "pos", pos)
		return false
	}
}

// Run raises ticks until ctx is cancelled or the scheduler is closed. It must be called at most once.
func (s *Scheduler) Run(ctx context.Context) error {
	physics := time.NewTicker(s.physicsInterval)
	defer physics.Stop()
	client := time.NewTicker(s.clientInterval)
	defer client.Stop()

	for {
		select {
		case <-ctx.Done():
			s.Close()
			return ctx.Err()
		case <-s.done:
			return nil
		case u := <-s.updates:
			s.exec(func() { s.bus.PositionUpdate.Emit(u) })
		case <-physics.C:
			s.flushUpdates()
			s.physicsTick()
		case <-client.C:
			s.flushUpdates()
			s.clientTick()
		}
	}
}

// Step synchronously raises n physics ticks, each followed by a client tick, without waiting on the clock.
// It must not be called while Run is active.
func (s *Scheduler) Step(n int) {
	for i := 0; i < n && !s.closed.Load(); i++ {
		s.flushUpdates()
		s.physicsTick()
		s.clientTick()
	}
}

// PhysicsTicks returns the amount of physics ticks raised so far.
func (s *Scheduler) PhysicsTicks() uint64 {
	return s.physicsTicks
}

// ClientTicks returns the amount of client ticks raised so far.
func (s *Scheduler) ClientTicks() uint64 {
	return s.clientTicks
}

// Close stops the scheduler. It is safe to call Close more than once and from any goroutine.
func (s *Scheduler) Close() {
	if s.closed.CompareAndSwap(false, true) {
		close(s.done)
	}
}

func (s *Scheduler) flushUpdates() {
	for {
		select {
		case u := <-s.updates:
			s.exec(func() { s.bus.PositionUpdate.Emit(u) })
		default:
			return
		}
	}
}

func (s *Scheduler) physicsTick() {
	s.physicsTicks++
	n := s.physicsTicks
	s.exec(func() { s.bus.PhysicsTick.Emit(event.Tick{N: n}) })
	if s.Digest != nil {
		s.log.Debug("physics tick", "tick", n, "fingerprint", s.Digest.Fingerprint())
	}
}

func (s *Scheduler) clientTick() {
	s.clientTicks++
	n := s.clientTicks
	s.exec(func() { s.bus.ClientTick.Emit(event.Tick{N: n}) })
}

// exec runs f, reporting a panic to sentry instead of letting it take the scheduler down.
func (s *Scheduler) exec(f func()) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("recovered from panic in tick handler", "panic", r)
			sentry.CurrentHub().Recover(r)
		}
	}()
	f()
}
