// Package gmxutils is a collection of GROMACS file-format parsers and the
// command-line utilities built on them: index-group creation, ligand
// binding-pocket identification and secondary-structure segment location.
//
// The library packages are:
//
//	ndx        GROMACS index (.ndx) files: named groups of atom indices
//	mdp        GROMACS parameter (.mdp) files: ordered, comment-preserving
//	structure  coordinate files (.gro, .pdb) and residue-code translation
//	pocket     residues around a bound ligand
//	ss         secondary-structure segments from DSSP output
//	gmx        running the gmx binary, selections for make_ndx
//
// The commands under cmd/ are thin front-ends over these packages.
package gmxutils
