package parsedriver

import (
	"context"
	"errors"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/tdransfield/wikipedia-analysis/internal/dumpio"
	"github.com/tdransfield/wikipedia-analysis/internal/pipeline"
	"github.com/tdransfield/wikipedia-analysis/internal/stageerr"
)

// pageSource adapts a dumpio.Splitter into a pipeline.Source. Individually
// malformed pages are logged and skipped transparently (§4.1); only a
// stream-level XML error (truncation) is surfaced as fatal via Error().
type pageSource struct {
	splitter *dumpio.Splitter
	counters *counters
	logger   *logrus.Entry

	current dumpio.Page
	err     error
}

var _ pipeline.Source = (*pageSource)(nil)

func (s *pageSource) Next(ctx context.Context) bool {
	for {
		select {
		case <-ctx.Done():
			return false
		default:
		}

		page, err := s.splitter.Next()
		if err == io.EOF {
			return false
		}

		if err != nil {
			if errors.Is(err, stageerr.ErrXMLMalformed) {
				s.err = err

				return false
			}

			s.counters.malformedPages.Add(1)
			s.logger.WithError(err).Warn("skipping malformed page")

			continue
		}

		s.counters.pagesScanned.Add(1)
		s.current = page

		return true
	}
}

func (s *pageSource) Payload() pipeline.Payload {
	return &pagePayload{page: s.current}
}

func (s *pageSource) Error() error {
	return s.err
}
