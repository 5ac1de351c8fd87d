package analyze

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"strings"

	"github.com/tdransfield/wikipedia-analysis/internal/edgegraph"
	"github.com/tdransfield/wikipedia-analysis/internal/intern"
	"github.com/tdransfield/wikipedia-analysis/internal/stageerr"
)

// SelectRoots resolves a RootSelection against g into a concrete list of
// root titles. RootSelection.validate has already confirmed exactly one
// selector is set.
func SelectRoots(g *edgegraph.Graph, sel RootSelection) ([]string, error) {
	switch {
	case sel.UseMostLinked > 0:
		ranked := RankByDegree(g, sel.UseMostLinked)
		titles := make([]string, len(ranked))
		for i, row := range ranked {
			titles[i] = row.Title
		}

		return titles, nil

	case sel.UseRandom > 0:
		return sampleRandomRoots(g, sel.UseRandom, sel.Seed), nil

	case sel.RootsFile != "":
		return readRootsFile(sel.RootsFile)

	default:
		return nil, fmt.Errorf("%w: no root selection set", stageerr.ErrBadArgument)
	}
}

// sampleRandomRoots draws k titles uniformly without replacement, seeded so
// a run is reproducible (§9 Open Question (b): the source pipeline's
// file-based workaround is exposed here as a --seed flag instead).
func sampleRandomRoots(g *edgegraph.Graph, k int, seed int64) []string {
	n := g.NumNodes()
	if k > n {
		k = n
	}

	rnd := rand.New(rand.NewSource(seed))
	perm := rnd.Perm(n)

	titles := make([]string, k)
	for i := 0; i < k; i++ {
		titles[i] = g.Title(intern.ID(perm[i]))
	}

	return titles
}

func readRootsFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening roots file: %s", stageerr.ErrInputIO, err)
	}
	defer f.Close()

	var titles []string

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		titles = append(titles, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading roots file: %s", stageerr.ErrInputIO, err)
	}

	return titles, nil
}
