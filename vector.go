package dihedral

import (
	"math"
)

// sub returns the displacement vector from p1 to p2.
func sub(p2, p1 Point3) Point3 {
	return Point3{p2[0] - p1[0], p2[1] - p1[1], p2[2] - p1[2]}
}

// dot returns the dot product of two vectors.
func dot(m, n Point3) float64 {
	return m[0]*n[0] + m[1]*n[1] + m[2]*n[2]
}

// cross returns the cross product of two vectors.
func cross(m, n Point3) Point3 {
	return Point3{
		m[1]*n[2] - m[2]*n[1],
		m[2]*n[0] - m[0]*n[2],
		m[0]*n[1] - m[1]*n[0],
	}
}

// norm returns the length of a vector.
func norm(v Point3) float64 {
	return math.Sqrt(dot(v, v))
}

// unit returns the vector scaled to unit length.
func unit(v Point3) Point3 {
	n := norm(v)
	return Point3{v[0] / n, v[1] / n, v[2] / n}
}
