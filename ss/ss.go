// Package ss locates secondary-structure segments in DSSP output: maximal runs
// of consecutive residues sharing a structure class (helix, sheet or turn),
// optionally filtered by a minimum length, rendered as PyMOL selections.
package ss

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Assignment is the secondary-structure state of one residue, as read from a
// DSSP table. AA is the one-letter residue code.
type Assignment struct {
	Chain string
	ResID int
	AA    string
	Code  byte
}

// Codes returns the DSSP structure codes covered by a class letter:
// H (helix), S (sheet) or T (turn).
func Codes(class byte) (string, error) {
	switch class {
	case 'H':
		return "HGI", nil
	case 'S':
		return "EB", nil
	case 'T':
		return "TS", nil
	}
	return "", fmt.Errorf("ss: unknown secondary structure class %q, want H, S or T", string(class))
}

// ParseDSSP reads the per-residue table of DSSP output from r. The table
// starts after the header line carrying '#'; chain-break records (blank
// residue number) are skipped.
func ParseDSSP(r io.Reader) ([]Assignment, error) {
	var as []Assignment
	start := false
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) < 17 {
			continue
		}
		if !start {
			if line[2] == '#' {
				start = true
			}
			continue
		}
		num := strings.TrimSpace(line[5:10])
		if num == "" {
			continue
		}
		id, err := strconv.Atoi(num)
		if err != nil {
			return nil, fmt.Errorf("ss: bad residue number in dssp line %q", line)
		}
		as = append(as, Assignment{
			Chain: strings.TrimSpace(line[11:12]),
			ResID: id,
			AA:    string(line[13]),
			Code:  line[16],
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return as, nil
}

// Filter returns the assignments whose code belongs to the given class letter.
func Filter(as []Assignment, class byte) ([]Assignment, error) {
	codes, err := Codes(class)
	if err != nil {
		return nil, err
	}
	var r []Assignment
	for _, a := range as {
		if strings.IndexByte(codes, a.Code) >= 0 {
			r = append(r, a)
		}
	}
	return r, nil
}

// Segment is a maximal run of consecutive residues within one chain. The
// labels are one-letter residue code plus number, e.g. "A10" to "K20".
type Segment struct {
	Chain      string
	StartID    int
	EndID      int
	StartLabel string
	EndLabel   string
}

// Len returns the number of residues spanned by the segment.
func (s Segment) Len() int {
	return s.EndID - s.StartID + 1
}

// PyMOLSelection renders the segment as a PyMOL selection expression,
// e.g. "chain A and resi 10-20".
func (s Segment) PyMOLSelection() string {
	return fmt.Sprintf("chain %s and resi %d-%d", s.Chain, s.StartID, s.EndID)
}

// SelectionName names a segment selection the way the ss commands do:
// class letter, chain, 1-based segment counter, e.g. "H_A_1".
func SelectionName(class byte, chain string, n int) string {
	return fmt.Sprintf("%s_%s_%d", string(class), chain, n)
}

// Segments splits the assignments into maximal runs of consecutive residue
// numbers within the same chain and drops runs shorter than minLength
// residues. Input order is kept.
func Segments(as []Assignment, minLength int) []Segment {
	var segs []Segment
	flush := func(start, end Assignment) {
		seg := Segment{
			Chain:      start.Chain,
			StartID:    start.ResID,
			EndID:      end.ResID,
			StartLabel: start.AA + strconv.Itoa(start.ResID),
			EndLabel:   end.AA + strconv.Itoa(end.ResID),
		}
		if seg.Len() >= minLength {
			segs = append(segs, seg)
		}
	}
	for i := 0; i < len(as); {
		j := i
		for j+1 < len(as) && as[j+1].Chain == as[j].Chain && as[j+1].ResID == as[j].ResID+1 {
			j++
		}
		flush(as[i], as[j])
		i = j + 1
	}
	return segs
}

// Chains returns the distinct chains of the segments, in first-seen order.
func Chains(segs []Segment) []string {
	seen := make(map[string]bool)
	var r []string
	for _, s := range segs {
		if !seen[s.Chain] {
			seen[s.Chain] = true
			r = append(r, s.Chain)
		}
	}
	return r
}
