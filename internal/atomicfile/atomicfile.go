/*
	atomicfile provides durable output writes shared by both stages: rows are
	buffered to a temp file and only renamed into place once every row has
	been written successfully, so a run that fails partway never leaves a
	truncated file where a caller might read it.
*/
package atomicfile

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tdransfield/wikipedia-analysis/internal/stageerr"
)

// File is a buffered writer backed by a temp file next to the eventual
// destination. Callers write through the embedded *bufio.Writer and call
// Commit to publish the result, or Abort to discard it.
type File struct {
	*bufio.Writer

	tmp    *os.File
	path   string
	closed bool
}

// New creates a temp file alongside path and returns a File ready for
// writing. The temp file is invisible at path until Commit succeeds.
func New(path string) (*File, error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return nil, fmt.Errorf("%w: creating temp output: %s", stageerr.ErrOutputIO, err)
	}

	return &File{Writer: bufio.NewWriter(tmp), tmp: tmp, path: path}, nil
}

// Commit flushes buffered output, closes the temp file, and atomically
// renames it to the destination path.
func (f *File) Commit() error {
	if err := f.Flush(); err != nil {
		f.discard()

		return fmt.Errorf("%w: %s", stageerr.ErrOutputIO, err)
	}

	if err := f.tmp.Close(); err != nil {
		os.Remove(f.tmp.Name())

		return fmt.Errorf("%w: %s", stageerr.ErrOutputIO, err)
	}

	if err := os.Rename(f.tmp.Name(), f.path); err != nil {
		os.Remove(f.tmp.Name())

		return fmt.Errorf("%w: %s", stageerr.ErrOutputIO, err)
	}

	f.closed = true

	return nil
}

// Abort discards the temp file without publishing it. A no-op once Commit
// has already succeeded.
func (f *File) Abort() {
	if f.closed {
		return
	}

	f.discard()
}

func (f *File) discard() {
	f.tmp.Close()
	os.Remove(f.tmp.Name())
}
