package session

import (
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/botsim/player"
	"github.com/sandertv/gophertunnel/minecraft/protocol"
	"github.com/sandertv/gophertunnel/minecraft/protocol/packet"
)

// EyeHeight is the offset between the feet of a player and the position Bedrock packets carry.
const EyeHeight = 1.62

// PacketWriter writes packets to a connection. *minecraft.Conn implements it.
type PacketWriter interface {
	WritePacket(pk packet.Packet) error
}

// PacketNet is a player.Net that encodes movement updates as Bedrock packets for the avatar with the runtime
// ID passed. Write errors are logged and dropped: the next client tick reports the full state again.
type PacketNet struct {
	conn PacketWriter
	rid  uint64
	log  *slog.Logger

	tick    uint64
	lastPos mgl32.Vec3
}

// NewPacketNet returns a PacketNet writing to conn.
func NewPacketNet(conn PacketWriter, runtimeID uint64, log *slog.Logger) *PacketNet {
	if log == nil {
		log = slog.Default()
	}
	return &PacketNet{conn: conn, rid: runtimeID, log: log}
}

// PushPacket encodes pk and writes it to the connection.
func (n *PacketNet) PushPacket(pk player.Packet) {
	var out packet.Packet
	switch pk := pk.(type) {
	case player.PositionLook:
		n.lastPos = mgl32.Vec3{float32(pk.X), float32(pk.Y + EyeHeight), float32(pk.Z)}
		out = &packet.MovePlayer{
			EntityRuntimeID: n.rid,
			Position:        n.lastPos,
			Pitch:           float32(pk.Pitch),
			Yaw:             float32(pk.Yaw),
			HeadYaw:         float32(pk.Yaw),
			Mode:            packet.MoveModeNormal,
			OnGround:        pk.OnGround,
			Tick:            n.tick,
		}
	case player.Look:
		out = &packet.MovePlayer{
			EntityRuntimeID: n.rid,
			Position:        n.lastPos,
			Pitch:           float32(pk.Pitch),
			Yaw:             float32(pk.Yaw),
			HeadYaw:         float32(pk.Yaw),
			Mode:            packet.MoveModeRotation,
			OnGround:        pk.OnGround,
			Tick:            n.tick,
		}
	case player.SteerVehicle:
		out = &packet.PlayerAuthInput{
			Position:   n.lastPos,
			MoveVector: mgl32.Vec2{float32(pk.Sideways), float32(pk.Forward)},
			Tick:       n.tick,
		}
	case player.EntityAction:
		action := int32(protocol.PlayerActionStartSprint)
		if pk.Action == player.ActionStopSprint {
			action = protocol.PlayerActionStopSprint
		}
		out = &packet.PlayerAction{EntityRuntimeID: n.rid, ActionType: action}
	default:
		n.log.Warn("dropped unknown movement packet", "packet", pk)
		return
	}

	n.tick++
	if err := n.conn.WritePacket(out); err != nil {
		n.log.Error("error writing movement packet", "packet", out.ID(), "err", err)
	}
}
