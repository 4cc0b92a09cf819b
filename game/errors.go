package game

const (
	ErrorMissingWorld      = "Error: A world is required to simulate movement."
	ErrorMissingOracle     = "Error: A collision oracle is required to simulate movement."
	ErrorMissingState      = "Error: A physics state is required to simulate movement."
	ErrorMissingAbilities  = "Error: Player abilities are required to simulate movement."
	ErrorMissingNet        = "Error: A network collaborator is required to report movement."
	ErrorMissingBus        = "Error: An event bus is required to drive the controller."
	ErrorMissingResolver   = "Error: A collision resolver is required to simulate movement."
	ErrorMissingIntegrator = "Error: An integrator is required to drive the avatar."

	ErrorInvalidVolume   = "Error: Bounding volume must have a positive width and height, got %vx%v."
	ErrorInvalidTickRate = "Error: Tick rates must be positive, got %v physics and %v client ticks per second."
)
