package dihedral

import (
	"math"
)

// Point3 is a point in three dimensional space. It is also used to
// represent the displacement vector between two points. A Point3 has no
// identity beyond its coordinates and is always passed by value.
type Point3 [3]float64

// epsilon bounds the squared magnitude below which a plane normal (or the
// central bond vector) is considered degenerate.
const epsilon = 1e-24

// Dihedral returns the signed dihedral angle, in the range (-pi, pi], of
// the four ordered points given. The sign follows the convention of
// biochemistry textbooks: looking down the axis from p1 to p2, a clockwise
// rotation carrying the plane of the first three points onto the plane of
// the last three is positive.
//
// If three or more of the points are collinear or coincident, the two
// planes are not determined and Dihedral returns NaN. (This is checked
// explicitly rather than left to floating point propagation, which would
// otherwise yield an arbitrary finite angle from atan2(0, 0).)
func Dihedral(p0, p1, p2, p3 Point3) float64 {
	b1, b2, b3 := sub(p1, p0), sub(p2, p1), sub(p3, p2)
	n1, n2 := cross(b1, b2), cross(b2, b3)
	if dot(n1, n1) <= epsilon || dot(n2, n2) <= epsilon {
		return math.NaN()
	}

	// The y component is the scalar triple product of the normalized
	// central bond with n1 x n2; together with x = n1 . n2 this gives the
	// angle and its sign in one atan2 call, with no quadrant ambiguity.
	y := dot(unit(b2), cross(n1, n2))
	x := dot(n1, n2)
	return math.Atan2(y, x)
}

// DihedralUnsigned returns the dihedral angle of the four ordered points
// given with the direction of rotation discarded, in the range [0, pi].
// It always equals the absolute value of Dihedral on the same points, but
// is cheaper to compute.
//
// As with Dihedral, degenerate input (three or more points collinear or
// coincident) yields NaN.
func DihedralUnsigned(p0, p1, p2, p3 Point3) float64 {
	b1, b2, b3 := sub(p1, p0), sub(p2, p1), sub(p3, p2)
	n1, n2 := cross(b1, b2), cross(b2, b3)
	if dot(n1, n1) <= epsilon || dot(n2, n2) <= epsilon {
		return math.NaN()
	}

	cos := dot(n1, n2) / (norm(n1) * norm(n2))

	// Rounding can push the ratio just outside [-1, 1], which would turn
	// a perfectly planar configuration into NaN. Clamp before acos.
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	return math.Acos(cos)
}

// Degrees converts an angle in radians to degrees.
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// Radians converts an angle in degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}
