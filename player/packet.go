package player

// Kind identifies the type of an outbound Packet.
type Kind uint8

const (
	KindPositionLook Kind = iota
	KindLook
	KindSteerVehicle
	KindEntityAction
)

// Packet is a movement update sent to the server.
type Packet interface {
	Kind() Kind
}

// Net delivers outbound packets to the server. PushPacket must not block the tick it is called from.
type Net interface {
	PushPacket(pk Packet)
}

// PositionLook reports the absolute position and orientation of the avatar.
type PositionLook struct {
	X, Y, Z    float64
	Yaw, Pitch float64
	OnGround   bool
}

// Kind ...
func (PositionLook) Kind() Kind { return KindPositionLook }

// Look reports only the orientation of the avatar, used while it rides a vehicle.
type Look struct {
	Yaw, Pitch float64
	OnGround   bool
}

// Kind ...
func (Look) Kind() Kind { return KindLook }

// SteerVehicle reports the steering input of an avatar riding a vehicle.
type SteerVehicle struct {
	Sideways float64
	Forward  float64
	Flags    uint8
}

// Kind ...
func (SteerVehicle) Kind() Kind { return KindSteerVehicle }

// Action is an action reported through an EntityAction packet.
type Action uint8

const (
	ActionStartSprint Action = iota
	ActionStopSprint
)

// EntityAction reports a change in the movement mode of the avatar.
type EntityAction struct {
	Action Action
}

// Kind ...
func (EntityAction) Kind() Kind { return KindEntityAction }
