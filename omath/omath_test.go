package omath

import (
	"math"
	"testing"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"
)

func TestLessPrefersMagnitude(t *testing.T) {
	require.True(t, Less(mgl64.Vec3{0, 0.1, 0}, mgl64.Vec3{-0.2, 0, 0}))
	require.False(t, Less(mgl64.Vec3{0.3, 0, 0}, mgl64.Vec3{0, 0, -0.2}))
}

func TestLessBreaksTiesCanonically(t *testing.T) {
	// Equal magnitudes: ordered by x, then y, then z.
	a, b, c := mgl64.Vec3{-0.5, 0, 0}, mgl64.Vec3{0, 0, 0.5}, mgl64.Vec3{0, 0.5, 0}
	require.True(t, Less(a, b))
	require.True(t, Less(b, c))
	require.True(t, Less(a, c))
	require.False(t, Less(c, b))
	require.False(t, Less(c, a))
	require.False(t, Less(a, a))
	require.Equal(t, 0, Compare(c, c))
	require.Equal(t, -1, Compare(b, c))
}

func TestSafeNormalize(t *testing.T) {
	require.Equal(t, mgl64.Vec3{}, SafeNormalize(mgl64.Vec3{}))
	n := SafeNormalize(mgl64.Vec3{3, 0, 4})
	require.InDelta(t, 1, n.Len(), 1e-12)
	require.InDelta(t, 0.6, n.X(), 1e-12)
}

func TestFloor(t *testing.T) {
	require.Equal(t, cube.Pos{-1, 0, 2}, Floor(mgl64.Vec3{-0.2, 0.99, 2}))
}

func TestDirectionFromAngle(t *testing.T) {
	d := DirectionFromAngle(90, false)
	require.InDelta(t, 1, d.X(), 1e-12)
	require.InDelta(t, 0, d.Z(), 1e-12)

	r := DirectionFromAngle(math.Pi, true)
	require.InDelta(t, -1, r.Z(), 1e-12)
	require.Zero(t, r.Y())
}

func TestYawPitchTowards(t *testing.T) {
	yaw, pitch := YawPitchTowards(mgl64.Vec3{1, 0, 0})
	require.InDelta(t, -90, yaw, 1e-9)
	require.InDelta(t, 0, pitch, 1e-9)

	_, pitch = YawPitchTowards(mgl64.Vec3{0, 1, 0})
	require.InDelta(t, -90, pitch, 1e-9)
}
