/*
rama draws a Ramachandran plot of one chain of a PDB file in the terminal:
each residue with both a phi and a psi backbone torsion angle becomes a
point at (phi, psi), with both axes running from -180 to 180 degrees.
Cells holding several residues are drawn with heavier glyphs.

Press 'q' or escape to quit. The plot redraws itself when the terminal is
resized.

Usage:

	rama pdb-file chain-id
*/
package main
