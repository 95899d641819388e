package util

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"
)

// Log is the logging setup of a command: a structured logger plus the raw
// writer behind it, both teeing to stdout and a log file. The commands print
// their tables through W so the log file is a faithful record of the session.
type Log struct {
	*slog.Logger
	W io.Writer
	f *os.File
}

// NewLog creates the log file at path and returns the tee around it.
func NewLog(path string) (*Log, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	w := io.MultiWriter(os.Stdout, f)
	return &Log{Logger: slog.New(slog.NewTextHandler(w, nil)), W: w, f: f}, nil
}

// Printf writes plain text through the tee.
func (l *Log) Printf(format string, args ...any) {
	fmt.Fprintf(l.W, format, args...)
}

// Close closes the log file.
func (l *Log) Close() error {
	return l.f.Close()
}

// FormatDuration renders an elapsed time for the command footers, e.g.
// "1 h 2 min 3.4 s".
func FormatDuration(d time.Duration) string {
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := d.Seconds() - float64(h*3600+m*60)
	switch {
	case h > 0:
		return fmt.Sprintf("%d h %d min %.1f s", h, m, s)
	case m > 0:
		return fmt.Sprintf("%d min %.1f s", m, s)
	default:
		return fmt.Sprintf("%.1f s", s)
	}
}
