// Package pocket identifies the residues lining a ligand binding pocket: every
// protein residue with at least one atom within a cutoff distance of the bound
// ligand. It also renders the pocket as selection strings for PyMOL, VMD and
// gmx make_ndx, so the result plugs straight into visualization or index-group
// creation.
package pocket

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/weitse-hsu/gmx-utils/structure"
)

// ErrNoLigand is returned when the structure contains no residue with the
// requested ligand residue name.
var ErrNoLigand = errors.New("pocket: no atoms with the given ligand residue name")

// Pocket is the result of an identification run.
type Pocket struct {
	LigResName string
	Cutoff     float64 // Å
	Residues   []structure.Residue
}

// Identify returns the protein residues having any atom within cutoff Å of any
// atom of the ligand residue(s) named ligResName. Residues appear in
// protein-atom scan order, once each. A structure without the ligand yields
// ErrNoLigand; a ligand with no protein neighbors yields an empty pocket.
func Identify(s *structure.Structure, ligResName string, cutoff float64) (*Pocket, error) {
	ligand := s.ByResName(ligResName)
	if len(ligand) == 0 {
		return nil, ErrNoLigand
	}
	var near []structure.Atom
	for _, a := range s.Protein() {
		if withinCutoff(a.Coord, ligand, cutoff) {
			near = append(near, a)
		}
	}
	return &Pocket{
		LigResName: ligResName,
		Cutoff:     cutoff,
		Residues:   structure.Residues(near),
	}, nil
}

func withinCutoff(p r3.Vec, ligand []structure.Atom, cutoff float64) bool {
	c2 := cutoff * cutoff
	for _, l := range ligand {
		d := r3.Sub(p, l.Coord)
		if r3.Norm2(d) <= c2 {
			return true
		}
	}
	return false
}

// PyMOLSelection returns a PyMOL command selecting the pocket residues, e.g.
// "select pocket, resi 10+11+42".
func (p *Pocket) PyMOLSelection() string {
	return fmt.Sprintf("select pocket, resi %s", strings.Join(p.resIDs(), "+"))
}

// NDXSelection returns a gmx make_ndx selection for the backbone atoms of the
// pocket residues, e.g. "a N CA C O & r 10 11 42".
func (p *Pocket) NDXSelection() string {
	return fmt.Sprintf("a N CA C O & r %s", strings.Join(p.resIDs(), " "))
}

// VMDSelection returns a VMD selection for the pocket residues, e.g.
// "resid 10 11 42".
func (p *Pocket) VMDSelection() string {
	return fmt.Sprintf("resid %s", strings.Join(p.resIDs(), " "))
}

func (p *Pocket) resIDs() []string {
	r := make([]string, len(p.Residues))
	for i, res := range p.Residues {
		r[i] = strconv.Itoa(res.ID)
	}
	return r
}
