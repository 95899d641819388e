package structure

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParsePDB reads ATOM and HETATM records from a PDB file. The name is only
// used in error messages. Reading stops at the first ENDMDL, so multi-model
// files contribute their first model only. PDB coordinates are already in Å.
func ParsePDB(r io.Reader, name string) (*Structure, error) {
	s := &Structure{}
	nline := 0
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		nline++
		line := scanner.Text()
		if strings.HasPrefix(line, "ENDMDL") {
			break
		}
		if !strings.HasPrefix(line, "ATOM") && !strings.HasPrefix(line, "HETATM") {
			continue
		}
		a, err := parsePDBLine(line)
		if err != nil {
			return nil, fmt.Errorf("pdb file %s, line %d: %w", name, nline, err)
		}
		s.Atoms = append(s.Atoms, a)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return s, nil
}

func parsePDBLine(line string) (Atom, error) {
	var a Atom
	if len(line) < 54 {
		return a, fmt.Errorf("record too short: %q", line)
	}
	var errs [5]error
	a.Serial, errs[0] = strconv.Atoi(strings.TrimSpace(line[6:11]))
	a.Name = strings.TrimSpace(line[12:16])
	a.ResName = strings.TrimSpace(line[17:20])
	a.Chain = strings.TrimSpace(line[21:22])
	a.ResID, errs[1] = strconv.Atoi(strings.TrimSpace(line[22:26]))
	a.Coord.X, errs[2] = strconv.ParseFloat(strings.TrimSpace(line[30:38]), 64)
	a.Coord.Y, errs[3] = strconv.ParseFloat(strings.TrimSpace(line[38:46]), 64)
	a.Coord.Z, errs[4] = strconv.ParseFloat(strings.TrimSpace(line[46:54]), 64)
	for _, err := range errs {
		if err != nil {
			return a, err
		}
	}
	return a, nil
}
