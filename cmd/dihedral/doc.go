/*
dihedral computes the dihedral (torsion) angle of four points in three
dimensional space, given as twelve numbers on the command line: the x, y
and z coordinates of each point in order.

By default the signed angle is printed in radians, in the range (-pi, pi],
following the sign convention of biochemistry textbooks. With the
'-unsigned' flag the direction of rotation is discarded and the angle lies
in [0, pi]. With the '-degrees' flag the angle is printed in degrees.

If three or more of the points are collinear or coincident, the angle is
undefined and NaN is printed.

Usage:

	dihedral [flags] x0 y0 z0 x1 y1 z1 x2 y2 z2 x3 y3 z3
*/
package main
