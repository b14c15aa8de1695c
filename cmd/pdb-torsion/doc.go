/*
pdb-torsion computes the backbone torsion angles (phi, psi and omega) of
every residue in one chain of a PDB file, and prints them as a table in
degrees. Residues at the chain termini, next to a gap in the ATOM records,
or missing backbone atoms have some or all of their angles replaced with
'--'.

A PDB file may either be plain text or compressed using the Lempel-Ziv
coding (i.e., gzip). If the PDB file is gzipped, it must end with a '.gz'
extension.

Usage:

	pdb-torsion pdb-file chain-id

Details

For residue i, with N, CA and C its backbone atom coordinates:

	phi(i)   is the dihedral angle of C(i-1), N(i), CA(i), C(i)
	psi(i)   is the dihedral angle of N(i), CA(i), C(i), N(i+1)
	omega(i) is the dihedral angle of CA(i), C(i), N(i+1), CA(i+1)

Angles that span two residues are only computed when the residues have
consecutive residue sequence numbers.
*/
package main
