package omath

import (
	"math"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl64"
)

// LenSqr returns the squared magnitude of the vector.
func LenSqr(v mgl64.Vec3) float64 {
	return v.Dot(v)
}

// Horizontal returns the vector with its Y component removed.
func Horizontal(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v[0], 0, v[2]}
}

// IsZero returns true if every component of the vector is exactly zero.
func IsZero(v mgl64.Vec3) bool {
	return v[0] == 0 && v[1] == 0 && v[2] == 0
}

// SafeNormalize normalizes the vector, returning the zero vector instead of NaNs when the vector has no length.
func SafeNormalize(v mgl64.Vec3) mgl64.Vec3 {
	if IsZero(v) {
		return mgl64.Vec3{}
	}
	return v.Normalize()
}

// Compare orders two vectors lexicographically by X, then Y, then Z. It returns -1 if a sorts before b,
// 1 if it sorts after and 0 if both are equal.
func Compare(a, b mgl64.Vec3) int {
	for i := range 3 {
		if a[i] < b[i] {
			return -1
		} else if a[i] > b[i] {
			return 1
		}
	}
	return 0
}

// Less reports whether a is the smaller of the two vectors: the one with the lesser magnitude, or the one
// that sorts first by Compare when both magnitudes are equal.
func Less(a, b mgl64.Vec3) bool {
	la, lb := LenSqr(a), LenSqr(b)
	if la != lb {
		return la < lb
	}
	return Compare(a, b) < 0
}

// Floor floors every component of the vector into a block position.
func Floor(v mgl64.Vec3) cube.Pos {
	return cube.Pos{int(math.Floor(v[0])), int(math.Floor(v[1])), int(math.Floor(v[2]))}
}

// DirectionFromAngle returns a horizontal unit vector pointing along the given angle. The angle is
// interpreted in degrees unless radians is true.
func DirectionFromAngle(angle float64, radians bool) mgl64.Vec3 {
	if !radians {
		angle = mgl64.DegToRad(angle)
	}
	return mgl64.Vec3{math.Sin(angle), 0, math.Cos(angle)}
}

// YawPitchTowards returns the yaw and pitch, in degrees, an entity must face to look along the given
// relative vector.
func YawPitchTowards(rel mgl64.Vec3) (yaw, pitch float64) {
	hz := math.Hypot(rel[0], rel[2])
	yaw = mgl64.RadToDeg(-math.Atan2(rel[0], rel[2]))
	pitch = mgl64.RadToDeg(-math.Atan2(rel[1], hz))
	return
}
