package edgegraph

import (
	"github.com/tdransfield/wikipedia-analysis/internal/atomicfile"
)

// Writer emits a §3-conformant edge-list TSV: a header row followed by one
// row per edge, published atomically on Close.
type Writer struct {
	f *atomicfile.File
}

// NewWriter opens path for atomic, buffered edge-list output and writes the
// header row.
func NewWriter(path string) (*Writer, error) {
	f, err := atomicfile.New(path)
	if err != nil {
		return nil, err
	}

	if _, err := f.WriteString(Header + "\n"); err != nil {
		f.Abort()

		return nil, err
	}

	return &Writer{f: f}, nil
}

// WriteEdge appends one source<TAB>target row.
func (w *Writer) WriteEdge(source, target string) error {
	if _, err := w.f.WriteString(source); err != nil {
		return err
	}

	if err := w.f.WriteByte('\t'); err != nil {
		return err
	}

	if _, err := w.f.WriteString(target); err != nil {
		return err
	}

	return w.f.WriteByte('\n')
}

// Close flushes and atomically publishes the output file.
func (w *Writer) Close() error {
	return w.f.Commit()
}

// Abort discards the output without publishing it.
func (w *Writer) Abort() {
	w.f.Abort()
}
