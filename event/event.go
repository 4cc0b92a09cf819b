package event

import "github.com/elliotchance/orderedmap/v2"

// Signal is a typed list of observers. Observers are called synchronously, in the order they subscribed.
// A Signal is not safe for concurrent use: it is meant to be driven from the single goroutine that runs
// the simulation.
type Signal[T any] struct {
	subs   *orderedmap.OrderedMap[uint64, func(T)]
	nextID uint64
}

// Subscribe adds f to the observers of the signal. The returned function removes it again and may be called
// more than once.
func (s *Signal[T]) Subscribe(f func(T)) (unsubscribe func()) {
	if s.subs == nil {
		s.subs = orderedmap.NewOrderedMap[uint64, func(T)]()
	}
	id := s.nextID
	s.nextID++
	s.subs.Set(id, f)
	return func() {
		s.subs.Delete(id)
	}
}

// Emit calls every observer with v. Observers added or removed while emitting take effect on the next Emit.
func (s *Signal[T]) Emit(v T) {
	if s.subs == nil || s.subs.Len() == 0 {
		return
	}
	observers := make([]func(T), 0, s.subs.Len())
	for el := s.subs.Front(); el != nil; el = el.Next() {
		observers = append(observers, el.Value)
	}
	for _, f := range observers {
		f(v)
	}
}

// Len returns the amount of observers currently subscribed.
func (s *Signal[T]) Len() int {
	if s.subs == nil {
		return 0
	}
	return s.subs.Len()
}

// Bus groups the signals exchanged between the simulation and the layers around it.
type Bus struct {
	// PhysicsTick is raised by the scheduler once per physics tick.
	PhysicsTick Signal[Tick]
	// ClientTick is raised by the scheduler whenever the avatar should report its state to the server.
	ClientTick Signal[Tick]
	// PositionUpdate is raised when the server forces a new position onto the avatar.
	PositionUpdate Signal[PositionUpdate]
	// Bail is raised when the collision search could not separate the avatar from the world.
	Bail Signal[Bail]
}

// NewBus returns an empty Bus.
func NewBus() *Bus {
	return &Bus{}
}
