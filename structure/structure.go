// Package structure loads molecular structures from GROMACS .gro and PDB
// coordinate files, just deeply enough for atom selection: names, residues,
// chains and coordinates. Coordinates are always in Ångström, so cutoffs mean
// the same thing regardless of the input format. Files ending in .gz are
// decompressed on the fly.
package structure

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/weitse-hsu/gmx-utils/util"
)

// Atom is one atom record of a coordinate file.
type Atom struct {
	Serial  int
	Name    string
	ResName string
	ResID   int
	Chain   string
	Coord   r3.Vec
}

// Residue identifies a residue within a structure.
type Residue struct {
	Chain string
	ID    int
	Name  string
}

// Structure is a loaded coordinate file.
type Structure struct {
	Path  string
	Atoms []Atom
}

// Read loads the structure at path, dispatching on the file extension
// (.gro or .pdb, optionally .gz-compressed).
func Read(path string) (*Structure, error) {
	f, err := util.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var s *Structure
	switch strings.ToLower(filepath.Ext(strings.TrimSuffix(path, ".gz"))) {
	case ".gro":
		s, err = ParseGRO(f, filepath.Base(path))
	case ".pdb":
		s, err = ParsePDB(f, filepath.Base(path))
	default:
		return nil, fmt.Errorf("structure: unsupported file format %q", path)
	}
	if err != nil {
		return nil, err
	}
	s.Path = path
	return s, nil
}

// ReadGRO loads a .gro file.
func ReadGRO(path string) (*Structure, error) {
	return read(path, ParseGRO)
}

// ReadPDB loads a .pdb file.
func ReadPDB(path string) (*Structure, error) {
	return read(path, ParsePDB)
}

func read(path string, parse func(io.Reader, string) (*Structure, error)) (*Structure, error) {
	f, err := util.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	s, err := parse(f, filepath.Base(path))
	if err != nil {
		return nil, err
	}
	s.Path = path
	return s, nil
}

// Select returns the atoms for which pred is true, in file order.
func (s *Structure) Select(pred func(Atom) bool) []Atom {
	var r []Atom
	for _, a := range s.Atoms {
		if pred(a) {
			r = append(r, a)
		}
	}
	return r
}

// ByResName returns the atoms whose residue name matches name.
func (s *Structure) ByResName(name string) []Atom {
	return s.Select(func(a Atom) bool { return a.ResName == name })
}

// Protein returns the atoms belonging to standard amino-acid residues.
func (s *Structure) Protein() []Atom {
	return s.Select(func(a Atom) bool { return IsAminoAcid(a.ResName) })
}

// Residues returns the distinct residues of the given atoms, in first-seen
// order.
func Residues(atoms []Atom) []Residue {
	type key struct {
		chain string
		id    int
	}
	seen := make(map[key]bool)
	var r []Residue
	for _, a := range atoms {
		k := key{a.Chain, a.ResID}
		if !seen[k] {
			seen[k] = true
			r = append(r, Residue{Chain: a.Chain, ID: a.ResID, Name: a.ResName})
		}
	}
	return r
}
