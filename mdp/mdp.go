// Package mdp reads and writes GROMACS parameter (.mdp) files as ordered
// documents. Comments and blank lines are first-class entries, so a file can go
// through a read-modify-write cycle without losing its layout. Only the comment
// trailing a parameter value on the same line is discarded.
//
// Every entry is addressable by key. Parameters use their own key; comments and
// blank lines get synthetic keys C0001, C0002, ... and B0001, B0002, ...
// numbered per variant in order of appearance, so re-parsing the same file
// always yields the same keys.
package mdp

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Kind tags the variant of an Entry.
type Kind int

const (
	Parameter Kind = iota
	Comment
	Blank
)

// Entry is one line of an mdp document. Parameter entries carry Key and Value,
// Comment entries carry Text and a synthetic Key, Blank entries only a
// synthetic Key.
type Entry struct {
	Kind  Kind
	Key   string
	Value any
	Text  string
}

// MDP is an ordered mdp document. The zero value is not usable; use New or
// Read. An MDP is not safe for concurrent mutation.
type MDP struct {
	source  string
	entries []Entry
	index   map[string]int // parameter key -> position in entries
}

// New returns an empty document.
func New() *MDP {
	return &MDP{index: make(map[string]int)}
}

// Read opens and parses the mdp file at path. Errors from opening the file are
// returned as-is; an unparseable line yields an Error and no document.
func Read(path string) (*MDP, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	m, err := Parse(f, filepath.Base(path))
	if err != nil {
		return nil, err
	}
	m.source = path
	return m, nil
}

// Parse reads an mdp document from r. The name is only used in error messages.
// Each line is classified as blank, comment (leading ';') or parameter
// (key = value), in that order; anything else fails the parse. A duplicate
// parameter key keeps its first position and takes the last value.
func Parse(r io.Reader, name string) (*MDP, error) {
	m := New()
	nblank, ncomment := 0, 0
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
			nblank++
			m.entries = append(m.entries, Entry{Kind: Blank, Key: fmt.Sprintf("B%04d", nblank)})
		case strings.HasPrefix(line, ";"):
			ncomment++
			m.entries = append(m.entries, Entry{
				Kind: Comment,
				Key:  fmt.Sprintf("C%04d", ncomment),
				Text: strings.TrimSpace(line[1:]),
			})
		default:
			eq := strings.Index(line, "=")
			if eq <= 0 {
				return nil, Error{message: UnknownLine, filename: name, line: line}
			}
			key := strings.TrimSpace(line[:eq])
			if key == "" {
				return nil, Error{message: UnknownLine, filename: name, line: line}
			}
			val := line[eq+1:]
			// Drop a trailing same-line comment. It is not retained.
			if sc := strings.Index(val, ";"); sc >= 0 {
				val = val[:sc]
			}
			m.Set(key, InferValue(strings.TrimSpace(val)))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return m, nil
}

// Source returns the path the document was read from, or "" for a document
// built with New.
func (m *MDP) Source() string {
	return m.source
}

// Get returns the value of the named parameter and whether it exists.
func (m *MDP) Get(key string) (any, bool) {
	i, ok := m.index[key]
	if !ok {
		return nil, false
	}
	return m.entries[i].Value, true
}

// Set sets the value of the named parameter. An existing key keeps its
// position; a new one is appended at the end of the document. Values should be
// one of int, float64, string, []int or []float64, as produced by InferValue.
func (m *MDP) Set(key string, value any) {
	if i, ok := m.index[key]; ok {
		m.entries[i].Value = value
		return
	}
	m.index[key] = len(m.entries)
	m.entries = append(m.entries, Entry{Kind: Parameter, Key: key, Value: value})
}

// Keys returns the parameter keys in document order. Synthetic comment and
// blank keys are not included.
func (m *MDP) Keys() []string {
	r := make([]string, 0, len(m.index))
	for _, e := range m.entries {
		if e.Kind == Parameter {
			r = append(r, e.Key)
		}
	}
	return r
}

// Entries returns a copy of the entry sequence in document order.
func (m *MDP) Entries() []Entry {
	r := make([]Entry, len(m.entries))
	copy(r, m.entries)
	return r
}

// Write writes the document to path, or over its source file if path is empty.
// Every line is newline-terminated. With skipempty, parameters whose value is
// an empty string or nil are omitted; the rest of the document is unaffected.
func (m *MDP) Write(path string, skipempty bool) error {
	if path == "" {
		path = m.source
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	for _, e := range m.entries {
		switch e.Kind {
		case Blank:
			w.WriteString("\n")
		case Comment:
			fmt.Fprintf(w, "; %s\n", e.Text)
		default:
			if skipempty && (e.Value == nil || e.Value == "") {
				continue
			}
			fmt.Fprintf(w, "%s = %s\n", e.Key, FormatValue(e.Value))
		}
	}
	return w.Flush()
}
