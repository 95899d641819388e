package ndx

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

const sample = `[ GroupName ]
1 2 3 4 5
6 7 8
[ OtherGroup ]
9 10
`

func TestParse(t *testing.T) {
	x, err := Parse(strings.NewReader(sample), "index.ndx")
	require.NoError(t, err)

	require.Equal(t, []string{"GroupName", "OtherGroup"}, x.Names())
	g, ok := x.Group("GroupName")
	require.True(t, ok)
	require.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, g)
	g, ok = x.Group("OtherGroup")
	require.True(t, ok)
	require.Equal(t, []int{9, 10}, g)
}

func TestParsePreambleIgnored(t *testing.T) {
	x, err := Parse(strings.NewReader("some preamble text\n\n"+sample), "index.ndx")
	require.NoError(t, err)
	require.Equal(t, 2, x.Len())
}

func TestParseEmpty(t *testing.T) {
	x, err := Parse(strings.NewReader(""), "empty.ndx")
	require.NoError(t, err)
	require.Equal(t, 0, x.Len())
	require.Equal(t, "", x.Summary())
}

func TestParseMalformedToken(t *testing.T) {
	_, err := Parse(strings.NewReader("[ G ]\n1 2 abc\n"), "bad.ndx")
	require.Error(t, err)
	var perr Error
	require.True(t, errors.As(err, &perr))
	require.Equal(t, MalformedToken, perr.Message())
	require.Equal(t, "bad.ndx", perr.FileName())
	require.Equal(t, "abc", perr.Token())
}

// A repeated header replaces the group's members but keeps its position.
func TestParseDuplicateGroupReplaces(t *testing.T) {
	in := "[ A ]\n1 2\n[ B ]\n3\n[ A ]\n7 8 9\n"
	x, err := Parse(strings.NewReader(in), "dup.ndx")
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B"}, x.Names())
	g, _ := x.Group("A")
	require.Equal(t, []int{7, 8, 9}, g)
}

func TestSummary(t *testing.T) {
	x, err := Parse(strings.NewReader(sample), "index.ndx")
	require.NoError(t, err)
	want := "" +
		"  (0) GroupName:  8 atoms\n" +
		"  (1) OtherGroup: 2 atoms\n"
	require.Equal(t, want, x.Summary())
}

// With ten or more groups the index column widens and single-digit indices get
// a padding space; the count column tracks the largest member count.
func TestSummaryWideColumns(t *testing.T) {
	x := New()
	for i := 0; i < 11; i++ {
		members := make([]int, i+1)
		for j := range members {
			members[j] = j + 1
		}
		x.Add(fmt.Sprintf("g%d", i), members)
	}
	s := x.Summary()
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	require.Len(t, lines, 11)
	require.Equal(t, "  (0)  g0:   1 atoms", lines[0])
	require.Equal(t, "  (10) g10: 11 atoms", lines[10])
}

func TestRename(t *testing.T) {
	x, err := Parse(strings.NewReader(sample), "index.ndx")
	require.NoError(t, err)
	require.NoError(t, x.Rename("GroupName", "Pocket"))
	require.Equal(t, []string{"Pocket", "OtherGroup"}, x.Names())
	g, ok := x.Group("Pocket")
	require.True(t, ok)
	require.Len(t, g, 8)
	_, ok = x.Group("GroupName")
	require.False(t, ok)

	require.Error(t, x.Rename("nope", "x"))
	require.Error(t, x.Rename("Pocket", "OtherGroup"))
}

func TestWriteReadRoundTrip(t *testing.T) {
	x, err := Parse(strings.NewReader(sample), "index.ndx")
	require.NoError(t, err)
	x.Add("Wide", seq(1, 40)) // forces several body lines

	path := filepath.Join(t.TempDir(), "out.ndx")
	require.NoError(t, x.Write(path))

	y, err := Read(path)
	require.NoError(t, err)
	require.Equal(t, x.Names(), y.Names())
	for _, n := range x.Names() {
		got, _ := y.Group(n)
		want, _ := x.Group(n)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("group %s mismatch (-want +got):\n%s", n, diff)
		}
	}
}

func TestReadMissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "nope.ndx"))
	require.Error(t, err)
	require.True(t, os.IsNotExist(err))
}

func seq(from, to int) []int {
	r := make([]int, 0, to-from+1)
	for i := from; i <= to; i++ {
		r = append(r, i)
	}
	return r
}
