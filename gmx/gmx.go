// Package gmx is the boundary to the GROMACS binary: running gmx subcommands
// with optional piped interactive input, and building the interactive scripts
// that gmx make_ndx expects.
package gmx

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Run executes the command given by args, piping promptInput to its stdin when
// non-empty, and returns the exit code together with the combined stdout and
// stderr. A non-zero exit is reported as an error that still carries the
// captured output, since gmx writes its diagnostics there.
func Run(ctx context.Context, args []string, promptInput string) (int, string, error) {
	if len(args) == 0 {
		return -1, "", fmt.Errorf("gmx: no command given")
	}
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	if promptInput != "" {
		cmd.Stdin = strings.NewReader(promptInput)
	}
	out, err := cmd.CombinedOutput()
	output := string(out)
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return exitErr.ExitCode(), output, fmt.Errorf("gmx: %s exited with code %d:\n%s",
				strings.Join(args, " "), exitErr.ExitCode(), output)
		}
		return -1, output, err
	}
	return 0, output, nil
}

// Version runs "gmx --version", as a cheap check that GROMACS is installed.
func Version(ctx context.Context) (string, error) {
	_, out, err := Run(ctx, []string{"gmx", "--version"}, "")
	return out, err
}

// MakeNDXArgs assembles the argument list for gmx make_ndx over the structure
// file groPath, writing outNDX, and reading the existing index file inNDX when
// non-empty.
func MakeNDXArgs(groPath, inNDX, outNDX string) []string {
	args := []string{"gmx", "make_ndx", "-f", groPath, "-o", outNDX}
	if inNDX != "" {
		args = append(args, "-n", inNDX)
	}
	return args
}

// MakeNDX runs gmx make_ndx with the given interactive input.
func MakeNDX(ctx context.Context, groPath, inNDX, outNDX, promptInput string) (string, error) {
	_, out, err := Run(ctx, MakeNDXArgs(groPath, inNDX, outNDX), promptInput)
	return out, err
}
