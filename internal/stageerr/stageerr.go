/*
	stageerr defines the sentinel error kinds shared by the parse and analyze
	stages. Call sites wrap one of these with additional context via
	fmt.Errorf("%w: ...", ...) and callers distinguish kinds with errors.Is.
*/
package stageerr

import "errors"

var (
	// ErrInputIO indicates that the dump or edge-list input could not be
	// read. Fatal.
	ErrInputIO = errors.New("input could not be read")

	// ErrOutputIO indicates that a write or atomic rename of the output
	// failed. Fatal.
	ErrOutputIO = errors.New("output could not be written")

	// ErrXMLMalformed indicates unrecoverable dump corruption (the whole
	// file is truncated or not well-formed XML at the top level). Fatal.
	// A single malformed <page> record is a warning, not this error.
	ErrXMLMalformed = errors.New("dump XML is malformed")

	// ErrTitleOverflow indicates a redirect chain exceeded the bounded hop
	// count. Warning: the affected edges are dropped and the run continues.
	ErrTitleOverflow = errors.New("redirect chain too long")

	// ErrUnknownRoot indicates a requested BFS root title is not present in
	// the loaded graph. Warning: the root yields a row with no step sizes.
	ErrUnknownRoot = errors.New("root not found in graph")

	// ErrBadArgument indicates CLI misuse. Fatal, raised before any work
	// begins.
	ErrBadArgument = errors.New("invalid argument")
)
