package ndx

import "fmt"

// Messages for the Error type.
const (
	MalformedToken = "malformed index token"
)

// Error is the type for index-file parse errors. It carries the file name,
// the line number and the offending token.
type Error struct {
	message  string
	filename string
	line     int
	text     string
}

func (err Error) Error() string {
	return fmt.Sprintf("ndx file %s, line %d: %s %q", err.filename, err.line, err.message, err.text)
}

// FileName returns the name of the file the error refers to.
func (err Error) FileName() string { return err.filename }

// Message returns the error message constant, for comparison against
// MalformedToken and friends.
func (err Error) Message() string { return err.message }

// Token returns the offending token.
func (err Error) Token() string { return err.text }
