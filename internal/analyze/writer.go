package analyze

import (
	"fmt"
	"strings"

	"github.com/tdransfield/wikipedia-analysis/internal/atomicfile"
)

func writeHistogram(path string, rows []HistogramRow) error {
	f, err := atomicfile.New(path)
	if err != nil {
		return err
	}

	if _, err := f.WriteString("degree\tcount\n"); err != nil {
		f.Abort()

		return err
	}

	for _, r := range rows {
		if _, err := fmt.Fprintf(f, "%d\t%d\n", r.Degree, r.Count); err != nil {
			f.Abort()

			return err
		}
	}

	return f.Commit()
}

func writeMostLinked(path string, rows []MostLinkedRow) error {
	f, err := atomicfile.New(path)
	if err != nil {
		return err
	}

	if _, err := f.WriteString("title\tdegree\n"); err != nil {
		f.Abort()

		return err
	}

	for _, r := range rows {
		if _, err := fmt.Fprintf(f, "%s\t%d\n", r.Title, r.Degree); err != nil {
			f.Abort()

			return err
		}
	}

	return f.Commit()
}

// writeStepGroups emits one row per root: title, then one column per step
// reached by that root's BFS. Rows are ragged (§4.2's "…") since roots
// reach different depths; an unknown root's row is just its title.
func writeStepGroups(path string, rows []StepGroupRow) error {
	f, err := atomicfile.New(path)
	if err != nil {
		return err
	}

	maxSteps := 0
	for _, r := range rows {
		if len(r.Steps) > maxSteps {
			maxSteps = len(r.Steps)
		}
	}

	var header strings.Builder

	header.WriteString("title")
	for i := 0; i < maxSteps; i++ {
		fmt.Fprintf(&header, "\tstep%d", i)
	}
	header.WriteByte('\n')

	if _, err := f.WriteString(header.String()); err != nil {
		f.Abort()

		return err
	}

	for _, r := range rows {
		if _, err := f.WriteString(r.Root); err != nil {
			f.Abort()

			return err
		}

		for _, size := range r.Steps {
			if _, err := fmt.Fprintf(f, "\t%d", size); err != nil {
				f.Abort()

				return err
			}
		}

		if err := f.WriteByte('\n'); err != nil {
			f.Abort()

			return err
		}
	}

	return f.Commit()
}
