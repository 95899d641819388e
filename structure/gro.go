package structure

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
)

// ParseGRO reads a .gro coordinate file from r. The name is only used in error
// messages. Only the first frame is read. Coordinates in the file are in nm
// and converted to Å.
//
// A gro atom line has fixed columns: residue number (0:5), residue name
// (5:10), atom name (10:15), atom number (15:20), then x, y, z in 8.3 fields.
func ParseGRO(r io.Reader, name string) (*Structure, error) {
	scanner := bufio.NewScanner(r)
	if !scanner.Scan() { // title line
		return nil, fmt.Errorf("gro file %s: empty file", name)
	}
	if !scanner.Scan() {
		return nil, fmt.Errorf("gro file %s: missing atom count", name)
	}
	natoms, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil {
		return nil, fmt.Errorf("gro file %s: bad atom count %q", name, scanner.Text())
	}
	s := &Structure{Atoms: make([]Atom, 0, natoms)}
	for i := 0; i < natoms; i++ {
		if !scanner.Scan() {
			return nil, fmt.Errorf("gro file %s: expected %d atoms, got %d", name, natoms, i)
		}
		a, err := parseGROLine(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf("gro file %s, atom %d: %w", name, i+1, err)
		}
		s.Atoms = append(s.Atoms, a)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return s, nil
}

func parseGROLine(line string) (Atom, error) {
	var a Atom
	if len(line) < 44 {
		return a, fmt.Errorf("line too short: %q", line)
	}
	var errs [5]error
	a.ResID, errs[0] = strconv.Atoi(strings.TrimSpace(line[0:5]))
	a.ResName = strings.TrimSpace(line[5:10])
	a.Name = strings.TrimSpace(line[10:15])
	a.Serial, errs[1] = strconv.Atoi(strings.TrimSpace(line[15:20]))
	a.Coord.X, errs[2] = strconv.ParseFloat(strings.TrimSpace(line[20:28]), 64)
	a.Coord.Y, errs[3] = strconv.ParseFloat(strings.TrimSpace(line[28:36]), 64)
	a.Coord.Z, errs[4] = strconv.ParseFloat(strings.TrimSpace(line[36:44]), 64)
	for _, err := range errs {
		if err != nil {
			return a, err
		}
	}
	// nm to Å. gro files have no chain column.
	a.Coord = r3.Scale(10, a.Coord)
	return a, nil
}
