/*
	dumpio streams MediaWiki XML database dumps one <page> record at a time
	without building a DOM, transparently decompressing bzip2- or
	gzip-compressed input.
*/
package dumpio

import (
	"bufio"
	"compress/bzip2"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/tdransfield/wikipedia-analysis/internal/stageerr"
)

// Page is one decoded <page> record. Body is the raw wikitext between the
// <text> element's tags; callers are responsible for everything downstream
// of that (title canonicalization, link extraction, redirect detection).
type Page struct {
	Title          string
	Namespace      int
	IsRedirect     bool
	RedirectTarget string
	Body           string
}

// Open opens path for streaming, transparently decompressing it according to
// its extension: ".bz2" via the standard library's multistream-aware bzip2
// reader (the pages-articles-multistream dump format concatenates
// independently-decompressible bzip2 streams; compress/bzip2 continues
// reading across the boundary with no special handling required), ".gz" via
// klauspost's higher-throughput gzip reader, and anything else read
// directly. The returned ReadCloser's Close also closes the underlying file.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", stageerr.ErrInputIO, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".bz2":
		return &decompressedFile{Reader: bzip2.NewReader(bufio.NewReader(f)), file: f}, nil
	case ".gz":
		gz, err := gzip.NewReader(bufio.NewReader(f))
		if err != nil {
			f.Close()

			return nil, fmt.Errorf("%w: %s", stageerr.ErrInputIO, err)
		}

		return &decompressedFile{Reader: gz, gz: gz, file: f}, nil
	default:
		return f, nil
	}
}

type decompressedFile struct {
	io.Reader
	gz   *gzip.Reader
	file *os.File
}

func (d *decompressedFile) Close() error {
	if d.gz != nil {
		d.gz.Close()
	}

	return d.file.Close()
}

// Splitter streams <page> records out of a dump without building a DOM.
// Malformed individual pages are reported through Next's error return; only
// truncation or corruption of the underlying XML stream itself is fatal.
type Splitter struct {
	dec *xml.Decoder
}

// NewSplitter wraps r (already decompressed, see Open) in a streaming page
// splitter.
func NewSplitter(r io.Reader) *Splitter {
	return &Splitter{dec: xml.NewDecoder(r)}
}

// Next decodes the next <page> element. It returns io.EOF once the dump is
// exhausted. An error wrapping stageerr.ErrXMLMalformed means the XML stream
// itself is broken (for example truncated) and is fatal. Any other non-nil,
// non-EOF error means a single page could not be decoded; per §4.1 this is a
// warning, not fatal, and callers should log it and call Next again to
// resume scanning.
func (s *Splitter) Next() (Page, error) {
	for {
		tok, err := s.dec.Token()
		if err == io.EOF {
			return Page{}, io.EOF
		}
		if err != nil {
			return Page{}, fmt.Errorf("%w: %s", stageerr.ErrXMLMalformed, err)
		}

		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != "page" {
			continue
		}

		var raw rawPage
		if err := s.dec.DecodeElement(&raw, &start); err != nil {
			return Page{}, fmt.Errorf("malformed page record: %w", err)
		}

		return raw.toPage(), nil
	}
}

// rawPage mirrors the subset of the MediaWiki export schema this tool needs.
type rawPage struct {
	Title    string `xml:"title"`
	Ns       int    `xml:"ns"`
	Redirect *struct {
		Title string `xml:"title,attr"`
	} `xml:"redirect"`
	Revision struct {
		Text string `xml:"text"`
	} `xml:"revision"`
}

func (r rawPage) toPage() Page {
	p := Page{
		Title:     r.Title,
		Namespace: r.Ns,
		Body:      r.Revision.Text,
	}

	if r.Redirect != nil {
		p.IsRedirect = true
		p.RedirectTarget = r.Redirect.Title
	}

	return p
}
