// Package ndx reads and writes GROMACS index (.ndx) files. An index file is a
// sequence of bracketed group headers, each followed by the whitespace-separated
// atom indices belonging to that group:
//
//	[ GroupName ]
//	1 2 3 4 5
//	6 7 8
//	[ OtherGroup ]
//	9 10
//
// Groups keep the order in which their headers first appear. Redefining a group
// name replaces its members but keeps its original position; this matches what
// gmx make_ndx does when a group is regenerated.
package ndx

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Index holds the named groups of an index file, in first-seen header order.
type Index struct {
	names  []string
	groups map[string][]int
	source string
}

// New returns an empty Index.
func New() *Index {
	return &Index{groups: make(map[string][]int)}
}

// Read opens and parses the index file at path. Errors from opening the file
// are returned as-is; parse errors are of type Error.
func Read(path string) (*Index, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f, filepath.Base(path))
}

// Parse reads an index file from r. The name is only used in error messages.
// Content lines before the first group header are ignored, as index files may
// carry preambles. A non-integer token in a group body fails the whole parse:
// no partial group list is ever returned.
func Parse(r io.Reader, name string) (*Index, error) {
	x := New()
	current := ""
	ingroup := false
	nline := 0
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		nline++
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			current = strings.TrimSpace(line[1 : len(line)-1])
			x.Add(current, nil)
			ingroup = true
			continue
		}
		if !ingroup {
			continue
		}
		for _, tok := range strings.Fields(line) {
			n, err := strconv.Atoi(tok)
			if err != nil {
				return nil, Error{message: MalformedToken, filename: name, line: nline, text: tok}
			}
			x.groups[current] = append(x.groups[current], n)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return x, nil
}

// Len returns the number of groups.
func (x *Index) Len() int {
	return len(x.names)
}

// Names returns the group names in order.
func (x *Index) Names() []string {
	r := make([]string, len(x.names))
	copy(r, x.names)
	return r
}

// Group returns the members of the named group and whether the group exists.
func (x *Index) Group(name string) ([]int, bool) {
	g, ok := x.groups[name]
	return g, ok
}

// Add sets the members of the named group, replacing any previous members.
// A new name is appended at the end; an existing one keeps its position.
func (x *Index) Add(name string, indices []int) {
	if _, ok := x.groups[name]; !ok {
		x.names = append(x.names, name)
	}
	x.groups[name] = indices
}

// Rename changes the name of a group, keeping its position and members.
// It fails if old does not exist or new is already taken.
func (x *Index) Rename(old, new string) error {
	if _, ok := x.groups[old]; !ok {
		return fmt.Errorf("ndx: no group named %q", old)
	}
	if _, ok := x.groups[new]; ok {
		return fmt.Errorf("ndx: group %q already exists", new)
	}
	for i, n := range x.names {
		if n == old {
			x.names[i] = new
			break
		}
	}
	x.groups[new] = x.groups[old]
	delete(x.groups, old)
	return nil
}

// Summary returns a fixed-width table of the groups, one line per group:
//
//	  (0) GroupName:  8 atoms
//	  (1) OtherGroup: 2 atoms
//
// The name column is as wide as the longest name plus the colon, the count
// column as wide as the largest member count, and the index column as wide as
// the largest display index. Downstream tooling parses this text, so the
// alignment is part of the format. An empty Index yields an empty string.
func (x *Index) Summary() string {
	nameW := 0
	maxCount := 0
	for _, n := range x.names {
		if len(n) > nameW {
			nameW = len(n)
		}
		if c := len(x.groups[n]); c > maxCount {
			maxCount = c
		}
	}
	labelW := nameW + 1
	countW := len(strconv.Itoa(maxCount))
	idxW := len(strconv.Itoa(len(x.names) - 1))

	var b strings.Builder
	for i, n := range x.names {
		pad := strings.Repeat(" ", idxW-len(strconv.Itoa(i)))
		fmt.Fprintf(&b, "  (%d) %s%-*s %*d atoms\n", i, pad, labelW, n+":", countW, len(x.groups[n]))
	}
	return b.String()
}

// Write writes the index in ndx format to path, 15 indices per line as
// gmx make_ndx does.
func (x *Index) Write(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	for _, n := range x.names {
		fmt.Fprintf(w, "[ %s ]\n", n)
		for i, idx := range x.groups[n] {
			if i > 0 && i%15 == 0 {
				w.WriteString("\n")
			} else if i > 0 {
				w.WriteString(" ")
			}
			fmt.Fprintf(w, "%4d", idx)
		}
		if len(x.groups[n]) > 0 {
			w.WriteString("\n")
		}
	}
	return w.Flush()
}
