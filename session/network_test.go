package session

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/botsim/player"
	"github.com/sandertv/gophertunnel/minecraft/protocol"
	"github.com/sandertv/gophertunnel/minecraft/protocol/packet"
	"github.com/stretchr/testify/require"
)

type recordingWriter struct {
	packets []packet.Packet
	err     error
}

func (w *recordingWriter) WritePacket(pk packet.Packet) error {
	w.packets = append(w.packets, pk)
	return w.err
}

func TestPositionLookEncodesMovePlayer(t *testing.T) {
	w := &recordingWriter{}
	n := NewPacketNet(w, 7, nil)
	n.PushPacket(player.PositionLook{X: 1, Y: 64, Z: -2, Yaw: 90, Pitch: 10, OnGround: true})

	require.Len(t, w.packets, 1)
	pk, ok := w.packets[0].(*packet.MovePlayer)
	require.True(t, ok)
	require.Equal(t, uint64(7), pk.EntityRuntimeID)
	require.Equal(t, mgl32.Vec3{1, 65.62, -2}, pk.Position)
	require.Equal(t, float32(90), pk.Yaw)
	require.Equal(t, float32(10), pk.Pitch)
	require.Equal(t, byte(packet.MoveModeNormal), pk.Mode)
	require.True(t, pk.OnGround)
}

func TestMountedUpdatesReuseLastPosition(t *testing.T) {
	w := &recordingWriter{}
	n := NewPacketNet(w, 1, nil)
	n.PushPacket(player.PositionLook{X: 3, Y: 0, Z: 3})
	n.PushPacket(player.Look{Yaw: -90})
	n.PushPacket(player.SteerVehicle{Forward: 0.5})

	require.Len(t, w.packets, 3)
	look := w.packets[1].(*packet.MovePlayer)
	require.Equal(t, byte(packet.MoveModeRotation), look.Mode)
	require.Equal(t, mgl32.Vec3{3, 1.62, 3}, look.Position)

	steer := w.packets[2].(*packet.PlayerAuthInput)
	require.Equal(t, mgl32.Vec2{0, 0.5}, steer.MoveVector)
	require.Equal(t, uint64(2), steer.Tick)
}

func TestEntityActionEncodesSprint(t *testing.T) {
	w := &recordingWriter{}
	n := NewPacketNet(w, 4, nil)
	n.PushPacket(player.EntityAction{Action: player.ActionStartSprint})
	n.PushPacket(player.EntityAction{Action: player.ActionStopSprint})

	require.Equal(t, int32(protocol.PlayerActionStartSprint), w.packets[0].(*packet.PlayerAction).ActionType)
	require.Equal(t, int32(protocol.PlayerActionStopSprint), w.packets[1].(*packet.PlayerAction).ActionType)
}

func TestWriteErrorsAreDropped(t *testing.T) {
	w := &recordingWriter{err: errors.New("closed")}
	n := NewPacketNet(w, 1, nil)
	require.NotPanics(t, func() {
		n.PushPacket(player.PositionLook{})
	})
	require.Len(t, w.packets, 1)
}
