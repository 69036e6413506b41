// Package corpus loads the benchmark input into memory.
//
// The whole file is held as one immutable buffer that every pattern scans.
// With mmap enabled the buffer is backed by a read-only mapping from
// [mmapfile]; when mapping is not possible (empty files, unsupported
// platforms) the loader silently falls back to a plain read.
package corpus

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/spf13/afero"
	"go.dw1.io/mmapfile"
)

// ErrInvalidText is returned when the input is not valid UTF-8.
var ErrInvalidText = errors.New("input is not valid UTF-8 text")

// Corpus is the loaded input. Data must not be modified.
type Corpus struct {
	Data   []byte
	Mapped bool
	closer func() error
}

// New wraps an in-memory buffer.
func New(data []byte) *Corpus {
	return &Corpus{Data: data}
}

// Len returns the corpus size in bytes.
func (c *Corpus) Len() int {
	return len(c.Data)
}

// SizeMiB returns the byte length in mebibytes.
func (c *Corpus) SizeMiB() float64 {
	return float64(len(c.Data)) / 1024 / 1024
}

// Close releases the mapping, if any. Data is invalid afterwards.
func (c *Corpus) Close() error {
	if c.closer == nil {
		return nil
	}
	err := c.closer()
	c.closer = nil
	return err
}

// Loader reads corpora from a filesystem.
type Loader struct {
	Fs   afero.Fs
	Mmap bool
}

// NewLoader returns a loader backed by the OS filesystem.
func NewLoader(mmap bool) *Loader {
	return &Loader{Fs: afero.NewOsFs(), Mmap: mmap}
}

// Load reads path fully into memory and checks that it is valid text.
func (l *Loader) Load(path string) (*Corpus, error) {
	if l.Mmap {
		if c, ok := l.loadMapped(path); ok {
			return c, nil
		}
	}

	fs := l.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%s: %w", path, ErrInvalidText)
	}

	return New(data), nil
}

// loadMapped maps path read-only. It reports false when the caller should
// fall back to a plain read, including when the mapped bytes are not text
// so the plain path produces the error.
func (l *Loader) loadMapped(path string) (*Corpus, bool) {
	if _, ok := l.Fs.(*afero.OsFs); l.Fs != nil && !ok {
		return nil, false
	}

	mf, err := mmapfile.Open(path)
	if err != nil {
		return nil, false
	}

	data := mf.Bytes()
	if len(data) == 0 || !utf8.Valid(data) {
		_ = mf.Close()
		return nil, false
	}

	return &Corpus{Data: data, Mapped: true, closer: mf.Close}, true
}
