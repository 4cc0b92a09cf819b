package event

import "github.com/go-gl/mathgl/mgl64"

// Tick carries the counter of the tick stream that raised it.
type Tick struct {
	N uint64
}

// PositionUpdate is an authoritative position and orientation sent by the server.
type PositionUpdate struct {
	Position   mgl64.Vec3
	Yaw, Pitch float64
}

// Bail describes a collision search that failed to find a correction.
type Bail struct {
	Position mgl64.Vec3
	Velocity mgl64.Vec3
	Explored int
}
