// Package util carries the small helpers shared by the gmx-utils commands:
// gzip-aware file opening, logging to stdout and a log file at once, and
// elapsed-time formatting.
package util

import (
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// OpenFile opens path for reading. Files ending in .gz are decompressed
// transparently.
func OpenFile(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(path, ".gz") {
		return f, nil
	}
	gz, err := gzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	return &gzFile{gz: gz, f: f}, nil
}

type gzFile struct {
	gz *gzip.Reader
	f  *os.File
}

func (g *gzFile) Read(p []byte) (int, error) { return g.gz.Read(p) }

func (g *gzFile) Close() error {
	g.gz.Close()
	return g.f.Close()
}
