package mdp

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

const sample = `; em.mdp - used as input into grompp to generate em.tpr
; Run control
integrator = steep
nsteps = 500000

; Energy minimization
emtol = 100.0 ; this trailing comment is discarded
emstep = 0.01
ref-t = 300 300
define = -DPOSRES
annealing-temp = 0 0 300.5 300.5
free-text = Protein Non-Protein
empty-key =
`

func TestParseEntries(t *testing.T) {
	m, err := Parse(strings.NewReader(sample), "em.mdp")
	require.NoError(t, err)

	keys := []string{"integrator", "nsteps", "emtol", "emstep", "ref-t", "define",
		"annealing-temp", "free-text", "empty-key"}
	require.Equal(t, keys, m.Keys())

	// Entry order equals source line order, comments and blanks included.
	var kinds []Kind
	var synth []string
	for _, e := range m.Entries() {
		kinds = append(kinds, e.Kind)
		if e.Kind != Parameter {
			synth = append(synth, e.Key)
		}
	}
	require.Equal(t, []Kind{Comment, Comment, Parameter, Parameter, Blank,
		Comment, Parameter, Parameter, Parameter, Parameter, Parameter, Parameter, Parameter}, kinds)
	require.Equal(t, []string{"C0001", "C0002", "B0001", "C0003"}, synth)
}

func TestValueInference(t *testing.T) {
	m, err := Parse(strings.NewReader(sample), "em.mdp")
	require.NoError(t, err)

	for _, tc := range []struct {
		key  string
		want any
	}{
		{"integrator", "steep"},
		{"nsteps", 500000},
		{"emtol", 100.0}, // trailing comment dropped
		{"emstep", 0.01},
		{"ref-t", []int{300, 300}},
		{"define", "-DPOSRES"}, // leading sign alone does not make a number
		{"annealing-temp", []float64{0, 0, 300.5, 300.5}}, // mixed int/float falls through to float
		{"free-text", "Protein Non-Protein"},              // multi-token free text stays one string
		{"empty-key", ""},
	} {
		got, ok := m.Get(tc.key)
		require.True(t, ok, tc.key)
		require.Equal(t, tc.want, got, tc.key)
	}
}

func TestInferValueEmpty(t *testing.T) {
	require.Equal(t, "", InferValue(""))
	require.Equal(t, "", InferValue("   "))
}

func TestParseUnknownLine(t *testing.T) {
	_, err := Parse(strings.NewReader("integrator = steep\nthis is not a parameter\n"), "bad.mdp")
	require.Error(t, err)
	var perr Error
	require.True(t, errors.As(err, &perr))
	require.Equal(t, UnknownLine, perr.Message())
	require.Equal(t, "bad.mdp", perr.FileName())
	require.Equal(t, "this is not a parameter", perr.Line())
}

// A duplicate key keeps its first position and takes the last value.
func TestParseDuplicateKey(t *testing.T) {
	m, err := Parse(strings.NewReader("nsteps = 100\nintegrator = md\nnsteps = 500\n"), "dup.mdp")
	require.NoError(t, err)
	require.Equal(t, []string{"nsteps", "integrator"}, m.Keys())
	v, _ := m.Get("nsteps")
	require.Equal(t, 500, v)
	require.Len(t, m.Entries(), 2)
}

func TestSet(t *testing.T) {
	m, err := Parse(strings.NewReader("integrator = steep\n"), "em.mdp")
	require.NoError(t, err)

	m.Set("integrator", "md") // update in place
	m.Set("dt", 0.002)        // append at end
	require.Equal(t, []string{"integrator", "dt"}, m.Keys())
	v, _ := m.Get("integrator")
	require.Equal(t, "md", v)
	v, _ = m.Get("dt")
	require.Equal(t, 0.002, v)
}

func TestWriteRoundTrip(t *testing.T) {
	m, err := Parse(strings.NewReader(sample), "em.mdp")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out.mdp")
	require.NoError(t, m.Write(path, false))

	m2, err := Read(path)
	require.NoError(t, err)
	if diff := cmp.Diff(m.Entries(), m2.Entries()); diff != "" {
		t.Errorf("round trip changed the document (-first +second):\n%s", diff)
	}
}

func TestWriteSkipEmpty(t *testing.T) {
	m, err := Parse(strings.NewReader("a = 1\nempty = \nb = 2\n"), "em.mdp")
	require.NoError(t, err)

	dir := t.TempDir()
	kept := filepath.Join(dir, "kept.mdp")
	skipped := filepath.Join(dir, "skipped.mdp")
	require.NoError(t, m.Write(kept, false))
	require.NoError(t, m.Write(skipped, true))

	b, err := os.ReadFile(kept)
	require.NoError(t, err)
	require.Equal(t, "a = 1\nempty = \nb = 2\n", string(b))

	b, err = os.ReadFile(skipped)
	require.NoError(t, err)
	require.Equal(t, "a = 1\nb = 2\n", string(b))
}

// Re-parsing the same file yields the same synthetic keys in the same places.
func TestSyntheticKeysStable(t *testing.T) {
	a, err := Parse(strings.NewReader(sample), "em.mdp")
	require.NoError(t, err)
	b, err := Parse(strings.NewReader(sample), "em.mdp")
	require.NoError(t, err)
	require.Equal(t, a.Entries(), b.Entries())
}

func TestWriteDefaultsToSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.mdp")
	require.NoError(t, os.WriteFile(path, []byte("nsteps = 100\n"), 0o644))

	m, err := Read(path)
	require.NoError(t, err)
	require.Equal(t, path, m.Source())
	m.Set("nsteps", 500)
	require.NoError(t, m.Write("", false))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "nsteps = 500\n", string(b))
}

func TestReadMissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "nope.mdp"))
	require.Error(t, err)
	require.True(t, os.IsNotExist(err))
}

func TestFormatValue(t *testing.T) {
	require.Equal(t, "500000", FormatValue(500000))
	require.Equal(t, "1.0", FormatValue(1.0)) // floats keep their decimal point
	require.Equal(t, "0.01", FormatValue(0.01))
	require.Equal(t, "300 300", FormatValue([]int{300, 300}))
	require.Equal(t, "0.0 300.5", FormatValue([]float64{0, 300.5}))
	require.Equal(t, "-DPOSRES", FormatValue("-DPOSRES"))
	require.Equal(t, "", FormatValue(nil))
}
