package structure

import (
	"fmt"
	"strings"
)

// The twenty standard amino acids.
var threeToOne = map[string]string{
	"ALA": "A", "ARG": "R", "ASN": "N", "ASP": "D", "CYS": "C",
	"GLU": "E", "GLN": "Q", "GLY": "G", "HIS": "H", "ILE": "I",
	"LEU": "L", "LYS": "K", "MET": "M", "PHE": "F", "PRO": "P",
	"SER": "S", "THR": "T", "TRP": "W", "TYR": "Y", "VAL": "V",
}

var oneToThree = func() map[string]string {
	m := make(map[string]string, len(threeToOne))
	for k, v := range threeToOne {
		m[v] = k
	}
	return m
}()

// IsAminoAcid reports whether name is a standard three-letter amino-acid code.
func IsAminoAcid(name string) bool {
	_, ok := threeToOne[strings.ToUpper(name)]
	return ok
}

// ConvertResCode translates an amino-acid code between the three-letter and
// one-letter conventions, in whichever direction the input length implies.
// Non-standard codes translate to "X"; any other length is an error.
func ConvertResCode(code string) (string, error) {
	c := strings.ToUpper(code)
	switch len(c) {
	case 3:
		if one, ok := threeToOne[c]; ok {
			return one, nil
		}
		return "X", nil
	case 1:
		if three, ok := oneToThree[c]; ok {
			return three, nil
		}
		return "X", nil
	default:
		return "", fmt.Errorf("invalid amino acid code %q: must be a three-letter or one-letter code", code)
	}
}
