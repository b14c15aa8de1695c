package dihedral

import (
	"fmt"
	"math"
	"math/rand"
	"testing"
	"time"

	matrix "github.com/skelterjohn/go.matrix"
)

var rng = rand.New(rand.NewSource(time.Now().UnixNano()))

// Backbone and side chain atoms of a leucine residue, taken from a real
// PDB entry. The expected angles below are the torsion angles reported by
// standard structure analysis tools for the same coordinates.
var (
	atomN   = Point3{24.969, 13.428, 30.692}
	atomCA  = Point3{24.044, 12.661, 29.808}
	atomC   = Point3{22.785, 13.482, 29.543}
	atomO   = Point3{21.951, 13.670, 30.431}
	atomCB  = Point3{23.672, 11.328, 30.466}
	atomCG  = Point3{22.881, 10.326, 29.620}
	atomCD1 = Point3{23.691, 9.935, 28.389}
	atomCD2 = Point3{22.557, 9.096, 30.459}
)

func ExampleDihedral() {
	fmt.Printf("%.1f\n", Degrees(Dihedral(atomN, atomCA, atomC, atomO)))
	fmt.Printf("%.1f\n", Degrees(Dihedral(atomCA, atomCB, atomCG, atomCD1)))
	// Output:
	// -71.2
	// 60.8
}

func TestDihedral(t *testing.T) {
	tests := []struct {
		p0, p1, p2, p3 Point3
		degrees        float64
	}{
		{atomN, atomCA, atomC, atomO, -71.21515},
		{atomN, atomCA, atomCB, atomCG, -171.94319},
		{atomCA, atomCB, atomCG, atomCD1, 60.82226},
		{atomCA, atomCB, atomCG, atomCD2, -177.63641},
	}
	for _, test := range tests {
		got := Degrees(Dihedral(test.p0, test.p1, test.p2, test.p3))
		if math.Abs(got-test.degrees) > 1e-2 {
			t.Errorf("The dihedral angle of %v, %v, %v and %v should be "+
				"%f degrees, but we computed %f degrees.",
				test.p0, test.p1, test.p2, test.p3, test.degrees, got)
		}
	}
}

func TestDihedralUnsigned(t *testing.T) {
	tests := []struct {
		p0, p1, p2, p3 Point3
		degrees        float64
	}{
		{atomN, atomCA, atomC, atomO, 71.21515},
		{atomN, atomCA, atomCB, atomCG, 171.94319},
		{atomCA, atomCB, atomCG, atomCD1, 60.82226},
		{atomCA, atomCB, atomCG, atomCD2, 177.63641},
	}
	for _, test := range tests {
		got := Degrees(DihedralUnsigned(test.p0, test.p1, test.p2, test.p3))
		if math.Abs(got-test.degrees) > 1e-2 {
			t.Errorf("The unsigned dihedral angle of %v, %v, %v and %v "+
				"should be %f degrees, but we computed %f degrees.",
				test.p0, test.p1, test.p2, test.p3, test.degrees, got)
		}
	}
}

// TestRightAngle pins the handedness convention: looking down the central
// bond from p1 to p2, this configuration twists counter-clockwise, which
// is negative.
func TestRightAngle(t *testing.T) {
	p0 := Point3{1, 0, 0}
	p1 := Point3{0, 0, 0}
	p2 := Point3{0, 1, 0}
	p3 := Point3{0, 1, 1}
	if got := Dihedral(p0, p1, p2, p3); math.Abs(got+math.Pi/2) > 1e-9 {
		t.Errorf("The canonical right angle torsion should be -pi/2, "+
			"but we computed %f.", got)
	}
}

// TestPlanar checks the two coplanar configurations: folded back on itself
// (cis, angle 0) and fully extended (trans, angle pi).
func TestPlanar(t *testing.T) {
	p0 := Point3{1, 0, 0}
	p1 := Point3{0, 0, 0}
	p2 := Point3{0, 1, 0}

	cis := Point3{1, 1, 0}
	if got := Dihedral(p0, p1, p2, cis); math.Abs(got) > 1e-9 {
		t.Errorf("A cis configuration should have a torsion angle of 0, "+
			"but we computed %f.", got)
	}
	if got := DihedralUnsigned(p0, p1, p2, cis); math.Abs(got) > 1e-9 {
		t.Errorf("A cis configuration should have an unsigned torsion "+
			"angle of 0, but we computed %f.", got)
	}

	trans := Point3{-1, 1, 0}
	if got := Dihedral(p0, p1, p2, trans); math.Abs(got-math.Pi) > 1e-9 {
		t.Errorf("A trans configuration should have a torsion angle of "+
			"pi, but we computed %f.", got)
	}
	if got := DihedralUnsigned(p0, p1, p2, trans); math.Abs(got-math.Pi) > 1e-9 {
		t.Errorf("A trans configuration should have an unsigned torsion "+
			"angle of pi, but we computed %f.", got)
	}
}

// TestUnsignedIsAbs checks that DihedralUnsigned is exactly the magnitude
// of Dihedral over a pile of random configurations.
func TestUnsignedIsAbs(t *testing.T) {
	for i := 0; i < 10000; i++ {
		p0, p1, p2, p3 := randomPoint(), randomPoint(), randomPoint(),
			randomPoint()
		signed := Dihedral(p0, p1, p2, p3)
		unsigned := DihedralUnsigned(p0, p1, p2, p3)
		if math.Abs(math.Abs(signed)-unsigned) > 1e-9 {
			t.Fatalf("The unsigned dihedral angle of %v, %v, %v and %v is "+
				"%f, which is not the magnitude of the signed angle %f.",
				p0, p1, p2, p3, unsigned, signed)
		}
	}
}

// TestReverse checks that traversing the four points in the opposite order
// flips the sign of the angle but not its magnitude.
func TestReverse(t *testing.T) {
	for i := 0; i < 10000; i++ {
		p0, p1, p2, p3 := randomPoint(), randomPoint(), randomPoint(),
			randomPoint()
		forward := Dihedral(p0, p1, p2, p3)
		backward := Dihedral(p3, p2, p1, p0)
		if math.Abs(forward+backward) > 1e-9 {
			t.Fatalf("The dihedral angle of %v, %v, %v and %v is %f, but "+
				"reversing the points gave %f rather than %f.",
				p0, p1, p2, p3, forward, backward, -forward)
		}
	}
}

// TestRigidTransform checks that rotating and translating all four points
// by the same rigid transform leaves both angles unchanged. The rotations
// are built and applied with go.matrix so that the transform itself does
// not depend on any code in this package.
func TestRigidTransform(t *testing.T) {
	for i := 0; i < 1000; i++ {
		p0, p1, p2, p3 := randomPoint(), randomPoint(), randomPoint(),
			randomPoint()
		rot := randomRotation()
		shift := randomPoint()

		q0 := transform(rot, shift, p0)
		q1 := transform(rot, shift, p1)
		q2 := transform(rot, shift, p2)
		q3 := transform(rot, shift, p3)

		signed, signedT := Dihedral(p0, p1, p2, p3), Dihedral(q0, q1, q2, q3)
		if math.Abs(signed-signedT) > 1e-9 {
			t.Fatalf("The dihedral angle of %v, %v, %v and %v is %f, but "+
				"after a rigid transform it came out as %f.",
				p0, p1, p2, p3, signed, signedT)
		}

		unsigned := DihedralUnsigned(p0, p1, p2, p3)
		unsignedT := DihedralUnsigned(q0, q1, q2, q3)
		if math.Abs(unsigned-unsignedT) > 1e-9 {
			t.Fatalf("The unsigned dihedral angle of %v, %v, %v and %v is "+
				"%f, but after a rigid transform it came out as %f.",
				p0, p1, p2, p3, unsigned, unsignedT)
		}
	}
}

// TestDegenerate checks that configurations which do not determine two
// planes come back as NaN rather than as some arbitrary finite angle.
func TestDegenerate(t *testing.T) {
	tests := [][4]Point3{
		// First three points collinear.
		{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}, {2, 1, 0}},
		// Last three points collinear.
		{{0, 1, 0}, {0, 0, 0}, {1, 0, 0}, {2, 0, 0}},
		// All four collinear.
		{{0, 0, 0}, {1, 1, 1}, {2, 2, 2}, {3, 3, 3}},
		// Coincident middle points.
		{{1, 0, 0}, {0, 0, 0}, {0, 0, 0}, {0, 1, 0}},
		// All coincident.
		{{5, 5, 5}, {5, 5, 5}, {5, 5, 5}, {5, 5, 5}},
	}
	for _, test := range tests {
		if got := Dihedral(test[0], test[1], test[2], test[3]); !math.IsNaN(got) {
			t.Errorf("The dihedral angle of the degenerate points %v "+
				"should be NaN, but we computed %f.", test, got)
		}
		if got := DihedralUnsigned(test[0], test[1], test[2], test[3]); !math.IsNaN(got) {
			t.Errorf("The unsigned dihedral angle of the degenerate points "+
				"%v should be NaN, but we computed %f.", test, got)
		}
	}
}

func BenchmarkDihedral(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Dihedral(atomN, atomCA, atomC, atomO)
	}
}

func BenchmarkDihedralUnsigned(b *testing.B) {
	for i := 0; i < b.N; i++ {
		DihedralUnsigned(atomN, atomCA, atomC, atomO)
	}
}

func randomPoint() Point3 {
	return Point3{
		(rng.Float64() - 0.5) * 100,
		(rng.Float64() - 0.5) * 100,
		(rng.Float64() - 0.5) * 100,
	}
}

// randomRotation composes rotations about the three coordinate axes by
// random angles into a single rotation matrix.
func randomRotation() *matrix.DenseMatrix {
	a := rng.Float64() * 2 * math.Pi
	b := rng.Float64() * 2 * math.Pi
	c := rng.Float64() * 2 * math.Pi
	rx := matrix.MakeDenseMatrix([]float64{
		1, 0, 0,
		0, math.Cos(a), -math.Sin(a),
		0, math.Sin(a), math.Cos(a),
	}, 3, 3)
	ry := matrix.MakeDenseMatrix([]float64{
		math.Cos(b), 0, math.Sin(b),
		0, 1, 0,
		-math.Sin(b), 0, math.Cos(b),
	}, 3, 3)
	rz := matrix.MakeDenseMatrix([]float64{
		math.Cos(c), -math.Sin(c), 0,
		math.Sin(c), math.Cos(c), 0,
		0, 0, 1,
	}, 3, 3)
	return must(must(rx.TimesDense(ry)).TimesDense(rz))
}

// transform applies a rotation followed by a translation to a point.
func transform(rot *matrix.DenseMatrix, shift, p Point3) Point3 {
	col := matrix.MakeDenseMatrix([]float64{p[0], p[1], p[2]}, 3, 1)
	q := must(rot.TimesDense(col))
	return Point3{
		q.Get(0, 0) + shift[0],
		q.Get(1, 0) + shift[1],
		q.Get(2, 0) + shift[2],
	}
}

// must panics if the result of a dense matrix operation returns an error.
func must(A *matrix.DenseMatrix, err error) *matrix.DenseMatrix {
	if err != nil {
		panic(err)
	}
	return A
}
