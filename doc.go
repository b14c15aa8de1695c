/*
Package dihedral computes the dihedral (torsion) angle determined by four
ordered points in three dimensional space: the angle between the plane
through the first three points and the plane through the last three,
measured around the axis formed by the middle two.

Two variants are provided. Dihedral returns a signed angle in (-pi, pi]
following the convention used in biochemistry textbooks (the sign carries
the direction of rotation about the central bond). DihedralUnsigned drops
the direction and returns an angle in [0, pi]; it is slightly cheaper since
it needs one fewer cross product and no two-argument arctangent.

The formulas are described here:
http://math.stackexchange.com/a/47084
http://en.wikipedia.org/wiki/Dihedral_angle#In_stereochemistry
*/
package dihedral
