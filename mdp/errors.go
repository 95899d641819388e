package mdp

import "fmt"

// Messages for the Error type.
const (
	UnknownLine = "unknown line in mdp file"
)

// Error is the type for mdp parse errors. It carries the file name and the
// offending line, verbatim.
type Error struct {
	message  string
	filename string
	line     string
}

func (err Error) Error() string {
	return fmt.Sprintf("%q: %s, %q", err.filename, err.message, err.line)
}

// FileName returns the name of the file the error refers to.
func (err Error) FileName() string { return err.filename }

// Message returns the error message constant, for comparison against
// UnknownLine and friends.
func (err Error) Message() string { return err.message }

// Line returns the offending line.
func (err Error) Line() string { return err.line }
