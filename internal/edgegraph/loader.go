package edgegraph

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/tdransfield/wikipedia-analysis/internal/intern"
	"github.com/tdransfield/wikipedia-analysis/internal/stageerr"
)

// maxLineSize bounds a single edge-list row. Real article titles are well
// under this; it exists only to catch corrupted input without an unbounded
// read.
const maxLineSize = 16 * 1024 * 1024

// Load reads a TSV edge list produced by the parse stage into a CSR graph.
// It makes two passes over path: the first interns both columns of every
// row and counts each source's out-degree, the second fills the neighbor
// array at the offsets computed from those counts. Every adjacency run is
// then sorted and deduplicated, and self-edges are dropped defensively.
func Load(path string) (*Graph, error) {
	if err := checkHeader(path); err != nil {
		return nil, err
	}

	in := intern.New(1 << 16)
	outDegree := make([]int32, 0, 1<<16)

	grow := func(id intern.ID) {
		for int(id) >= len(outDegree) {
			outDegree = append(outDegree, 0)
		}
	}

	err := scanRows(path, func(source, target string) {
		s := in.Intern(source)
		t := in.Intern(target)
		grow(s)
		grow(t)
		outDegree[s]++
	})
	if err != nil {
		return nil, err
	}

	n := in.Len()
	for len(outDegree) < n {
		outDegree = append(outDegree, 0)
	}

	offsets := make([]int32, n+1)
	for i := 0; i < n; i++ {
		offsets[i+1] = offsets[i] + outDegree[i]
	}

	neighbors := make([]intern.ID, offsets[n])
	cursor := make([]int32, n)
	copy(cursor, offsets[:n])

	err = scanRows(path, func(source, target string) {
		s, _ := in.Lookup(source)
		t, _ := in.Lookup(target)
		neighbors[cursor[s]] = t
		cursor[s]++
	})
	if err != nil {
		return nil, err
	}

	newOffsets, compacted := sortAndDedup(offsets, neighbors, n)

	return &Graph{interner: in, offsets: newOffsets, neighbors: compacted}, nil
}

// sortAndDedup sorts each adjacency run in place, then compacts it in place
// dropping duplicates and self-edges, returning the shrunk offsets/neighbor
// arrays.
func sortAndDedup(offsets []int32, neighbors []intern.ID, n int) ([]int32, []intern.ID) {
	for i := 0; i < n; i++ {
		run := neighbors[offsets[i]:offsets[i+1]]
		sort.Slice(run, func(a, b int) bool { return run[a] < run[b] })
	}

	newOffsets := make([]int32, n+1)
	var write int32

	for i := 0; i < n; i++ {
		newOffsets[i] = write

		var havePrev bool
		var prev intern.ID

		for j := offsets[i]; j < offsets[i+1]; j++ {
			v := neighbors[j]
			if int(v) == i {
				continue
			}

			if havePrev && v == prev {
				continue
			}

			neighbors[write] = v
			write++
			prev = v
			havePrev = true
		}
	}

	newOffsets[n] = write

	return newOffsets, neighbors[:write]
}

func checkHeader(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %s", stageerr.ErrInputIO, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	if !scanner.Scan() {
		return fmt.Errorf("%w: edge list is empty, expected header %q", stageerr.ErrInputIO, Header)
	}

	if scanner.Text() != Header {
		return fmt.Errorf("%w: malformed edge list header %q", stageerr.ErrInputIO, scanner.Text())
	}

	return nil
}

func scanRows(path string, fn func(source, target string)) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %s", stageerr.ErrInputIO, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	if !scanner.Scan() {
		return fmt.Errorf("%w: edge list is empty", stageerr.ErrInputIO)
	}

	lineNo := 1
	for scanner.Scan() {
		lineNo++

		line := scanner.Text()
		if line == "" {
			continue
		}

		idx := strings.IndexByte(line, '\t')
		if idx < 0 || strings.IndexByte(line[idx+1:], '\t') >= 0 {
			return fmt.Errorf("%w: malformed edge list row %d: %q", stageerr.ErrInputIO, lineNo, line)
		}

		fn(line[:idx], line[idx+1:])
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("%w: %s", stageerr.ErrInputIO, err)
	}

	return nil
}
