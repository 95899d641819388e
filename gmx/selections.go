package gmx

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Selection pairs a make_ndx selection expression with the name the resulting
// group should get.
type Selection struct {
	Expr string
	Name string
}

// ReadSelections parses a selections file: one selection per line in the form
//
//	1 | 13 # ICL1
//
// where the text before '#' is a make_ndx selection expression and the text
// after it the group name. Blank lines and lines starting with '#' are
// skipped.
func ReadSelections(path string) ([]Selection, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseSelections(f, filepath.Base(path))
}

// ParseSelections reads selections from r. The name is only used in error
// messages. A non-comment line without exactly one '#' separator fails the
// parse.
func ParseSelections(r io.Reader, name string) ([]Selection, error) {
	var sels []Selection
	nline := 0
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		nline++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.Split(line, "#")
		if len(parts) != 2 {
			return nil, fmt.Errorf("selections file %s, line %d: want 'expression # name', got %q", name, nline, line)
		}
		sels = append(sels, Selection{
			Expr: strings.TrimSpace(parts[0]),
			Name: strings.TrimSpace(parts[1]),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return sels, nil
}

// Prompt builds the interactive input that makes gmx make_ndx create the given
// selections and name them, assuming ngroups groups already exist. New groups
// are numbered from ngroups on (make_ndx counts from 0). The script always
// ends with 'q'.
func Prompt(sels []Selection, ngroups int) string {
	var b strings.Builder
	for i, s := range sels {
		fmt.Fprintf(&b, "%s\nname %d %s\n", s.Expr, ngroups+i, s.Name)
	}
	b.WriteString("q\n")
	return b.String()
}
