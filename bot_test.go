package botsim

import (
	"testing"

	"github.com/df-mc/dragonfly/server/block"
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/botsim/player"
	"github.com/oomph-ac/botsim/settings"
	"github.com/stretchr/testify/require"
)

type recordingNet struct {
	packets []player.Packet
}

func (n *recordingNet) PushPacket(pk player.Packet) {
	n.packets = append(n.packets, pk)
}

func newTestBot(t *testing.T) (*Bot, *recordingNet) {
	t.Helper()
	net := &recordingNet{}
	b, err := NewBot(settings.DefaultSettings(), net, nil)
	require.NoError(t, err)
	t.Cleanup(b.Close)
	b.World.Fill(cube.Pos{-16, 0, -16}, cube.Pos{16, 0, 16}, block.Stone{})
	return b, net
}

func TestBotSettlesOnFloor(t *testing.T) {
	b, net := newTestBot(t)
	b.Scheduler.Step(10)

	s := b.Controller.State()
	require.True(t, s.OnGround)
	require.InDelta(t, 1, s.Position.Y(), 1e-6)
	require.Len(t, net.packets, 10)

	last, ok := net.packets[9].(player.PositionLook)
	require.True(t, ok)
	require.True(t, last.OnGround)
}

func TestBotWalksAlongAngle(t *testing.T) {
	b, _ := newTestBot(t)
	b.Scheduler.Step(5)

	start := b.Controller.State().Position
	for i := 0; i < 20; i++ {
		b.Controller.MoveAngle(0, false)
		b.Scheduler.Step(1)
	}
	end := b.Controller.State().Position
	require.Greater(t, end.Z()-start.Z(), 1.0)
	require.InDelta(t, start.X(), end.X(), 1e-9)
	require.InDelta(t, 1, end.Y(), 1e-6)
}

func TestBotTeleportSkipsTick(t *testing.T) {
	b, net := newTestBot(t)
	b.Scheduler.Step(5)

	target := mgl64.Vec3{4, 1, 4}
	require.True(t, b.Scheduler.Teleport(target, 90, 0))
	b.Scheduler.Step(1)

	last := net.packets[len(net.packets)-1].(player.PositionLook)
	require.Equal(t, target, mgl64.Vec3{last.X, last.Y, last.Z})
	require.Equal(t, 90.0, last.Yaw)
}

func TestNewBotRejectsInvalidSettings(t *testing.T) {
	s := settings.DefaultSettings()
	s.Avatar.Width = 0
	_, err := NewBot(s, &recordingNet{}, nil)
	require.Error(t, err)

	s = settings.DefaultSettings()
	s.Ticks.ClientRate = 0
	_, err = NewBot(s, &recordingNet{}, nil)
	require.Error(t, err)
}
