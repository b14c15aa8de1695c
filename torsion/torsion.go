// Package torsion computes backbone torsion angles (phi, psi and omega)
// for the residues of a protein chain, and signed dihedral angles over
// sliding windows of arbitrary coordinate sequences.
package torsion

import (
	"fmt"

	"github.com/TianyiShi2001/dihedral"
	"github.com/TianyiShi2001/dihedral/pdb"
)

// ResidueAngles holds the backbone torsion angles of a single residue, in
// radians. A residue at either end of a chain (or next to a gap in the
// ATOM records) lacks some of its angles; the Has* fields say which of the
// Phi, Psi and Omega values are meaningful.
type ResidueAngles struct {
	Residue    string
	ResidueInd int

	Phi, Psi, Omega          float64
	HasPhi, HasPsi, HasOmega bool
}

// backbone is the N, CA and C coordinates of one residue.
type backbone struct {
	res      *pdb.Residue
	n, ca, c dihedral.Point3
}

// Chain computes the backbone torsion angles for every residue of a chain,
// in chain order, using the textbook definitions:
//
//	phi(i)   = dihedral of C(i-1), N(i), CA(i), C(i)
//	psi(i)   = dihedral of N(i), CA(i), C(i), N(i+1)
//	omega(i) = dihedral of CA(i), C(i), N(i+1), CA(i+1)
//
// Residues missing any of the N, CA or C backbone atoms are skipped
// entirely. Angles spanning two residues are only computed when the two
// residues have consecutive residue sequence numbers, so a gap in the ATOM
// records does not produce a bogus angle across it.
//
// An error is returned if no residue in the chain carries a complete
// backbone.
func Chain(chain *pdb.Chain) ([]ResidueAngles, error) {
	backbones := make([]backbone, 0, len(chain.Residues))
	for _, res := range chain.Residues {
		bb := backbone{res: res}
		var ok [3]bool
		var n, ca, c pdb.Atom

		n, ok[0] = res.Atom("N")
		ca, ok[1] = res.Atom("CA")
		c, ok[2] = res.Atom("C")
		if !ok[0] || !ok[1] || !ok[2] {
			continue
		}
		bb.n, bb.ca, bb.c = n.Coords, ca.Coords, c.Coords
		backbones = append(backbones, bb)
	}
	if len(backbones) == 0 {
		return nil, fmt.Errorf("The chain '%c' does not contain any "+
			"residues with a complete N, CA, C backbone.", chain.Ident)
	}

	angles := make([]ResidueAngles, len(backbones))
	for i, bb := range backbones {
		angles[i] = ResidueAngles{
			Residue:    bb.res.Name,
			ResidueInd: bb.res.Ind,
		}
		if i > 0 && contiguous(backbones[i-1], bb) {
			prev := backbones[i-1]
			angles[i].Phi = dihedral.Dihedral(prev.c, bb.n, bb.ca, bb.c)
			angles[i].HasPhi = true
		}
		if i < len(backbones)-1 && contiguous(bb, backbones[i+1]) {
			next := backbones[i+1]
			angles[i].Psi = dihedral.Dihedral(bb.n, bb.ca, bb.c, next.n)
			angles[i].HasPsi = true
			angles[i].Omega = dihedral.Dihedral(bb.ca, bb.c, next.n, next.ca)
			angles[i].HasOmega = true
		}
	}
	return angles, nil
}

// contiguous reports whether two residues are sequence neighbors.
func contiguous(a, b backbone) bool {
	return b.res.Ind == a.res.Ind+1
}

// Windows computes the signed dihedral angle of every sliding window of
// four consecutive points. The result has len(points)-3 angles; fewer than
// four points yield no angles.
func Windows(points []dihedral.Point3) []float64 {
	if len(points) < 4 {
		return nil
	}
	angles := make([]float64, len(points)-3)
	for i := range angles {
		angles[i] = dihedral.Dihedral(
			points[i], points[i+1], points[i+2], points[i+3])
	}
	return angles
}
