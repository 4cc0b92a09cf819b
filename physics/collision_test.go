package physics

import (
	"testing"

	"github.com/df-mc/dragonfly/server/block"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"
)

func TestMTVTestTouchingIsNotColliding(t *testing.T) {
	w := newMockWorld()
	w.floor(-1, 1, -1)
	oracle, err := NewMTVTest(w, PlayerVolume())
	require.NoError(t, err)
	require.Empty(t, oracle.Test(mgl64.Vec3{0.5, 0, 0.5}, mgl64.Vec3{}))
}

func TestMTVTestPushOutsAreSorted(t *testing.T) {
	w := newMockWorld()
	w.set(0, -1, 0, block.Stone{})
	oracle, err := NewMTVTest(w, PlayerVolume())
	require.NoError(t, err)

	vecs := oracle.Test(mgl64.Vec3{0.5, 0, 0.5}, mgl64.Vec3{0, -0.25, 0})
	require.Len(t, vecs, 6)
	require.InDelta(t, 0.25, vecs[0].Y(), 1e-12)
	require.Zero(t, vecs[0].X())
	require.Zero(t, vecs[0].Z())
	for i := 1; i < len(vecs); i++ {
		require.LessOrEqual(t, vecs[i-1].Len(), vecs[i].Len())
	}
}

func TestMTVTestHonoursAccumulatedVector(t *testing.T) {
	w := newMockWorld()
	w.set(0, -1, 0, block.Stone{})
	oracle, err := NewMTVTest(w, PlayerVolume())
	require.NoError(t, err)

	pos := mgl64.Vec3{0.5, -0.25, 0.5}
	require.NotEmpty(t, oracle.Test(pos, mgl64.Vec3{}))
	require.Empty(t, oracle.Test(pos, mgl64.Vec3{0, 0.25, 0}))
}

func TestNewMTVTestValidates(t *testing.T) {
	_, err := NewMTVTest(nil, PlayerVolume())
	require.Error(t, err)
	_, err = NewMTVTest(newMockWorld(), BoundingVolume{Width: 0, Height: 1.8})
	require.Error(t, err)
}

func TestBoundingVolumeBBox(t *testing.T) {
	bb := PlayerVolume().BBox(mgl64.Vec3{1, 2, 3})
	require.InDelta(t, 0.7, bb.Min().X(), 1e-12)
	require.InDelta(t, 2, bb.Min().Y(), 1e-12)
	require.InDelta(t, 3.3, bb.Max().Z(), 1e-12)
	require.InDelta(t, 3.8, bb.Max().Y(), 1e-12)
}
