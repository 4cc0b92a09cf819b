package game

const (
	// Gravity is subtracted from vertical velocity once every physics tick.
	Gravity = 0.08
	// BaseDrag multiplies vertical velocity every tick and scales grounded acceleration.
	BaseDrag = 0.98
	// DragMultiplier scales the slipperiness of the block under the avatar to produce horizontal drag.
	DragMultiplier = 0.91
	// BaseGroundSlip is the slipperiness of ordinary ground.
	BaseGroundSlip = 0.6
	// AirAcceleration is the acceleration applied to an airborne avatar, regardless of its walking speed.
	AirAcceleration = 0.02
	// JumpVelocity is the vertical velocity an avatar leaves the ground with.
	JumpVelocity = 0.42
	// SprintJumpBoost is the horizontal boost added along the ground velocity when jumping while sprinting.
	SprintJumpBoost = 0.2
	// SprintMultiplier scales the walking speed while sprinting.
	SprintMultiplier = 1.3
	// DefaultWalkingSpeed is the walking speed granted to a player with default abilities.
	DefaultWalkingSpeed = 0.1

	PlayerWidth  = 0.6
	PlayerHeight = 1.8

	// SlipProbeDepth is how far below the feet the block that determines slipperiness is looked up.
	SlipProbeDepth = 0.5000001

	// MTVTolerance is the slack allowed when checking that a correction does not speed the avatar up.
	MTVTolerance = 1e-4
	// DefaultSearchLimit is the maximum amount of correction vectors the MTV search will explore.
	DefaultSearchLimit = 1024

	// PhysicsTickRate is the amount of physics ticks in a second.
	PhysicsTickRate = 20
)
