package ucdblocks

import (
	"io"
	"strconv"
	"strings"
)

// Parse builds a block table from Blocks.txt-style text.
//
// Each line carries one block,
//
//   0080..00FF; Latin-1 Supplement
//
// with '#' starting a comment that runs to the end of the line. Bounds are
// unsigned 32-bit hex values, case-insensitive and of varying width; a
// signed bound is malformed. Whitespace around the two fields is
// insignificant. Blank lines and comment-only lines are skipped.
//
// Parsing is all-or-nothing: the first malformed line aborts with a
// *ParseError carrying that line's 0-based index, and no partial table is
// returned. Entries keep input order; no re-sorting is performed.
func Parse(text string) (*BlockTable, error) {
	var entries []Entry
	for lineno, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		line = strings.SplitN(line, "#", 2)[0]
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, ";", 2)
		if len(parts) < 2 {
			return nil, &ParseError{Line: lineno, Kind: NoSemicolon}
		}
		rng, name := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
		bounds := strings.SplitN(rng, "..", 2)
		if len(bounds) < 2 {
			return nil, &ParseError{Line: lineno, Kind: NoDotDot}
		}
		from, err := strconv.ParseUint(bounds[0], 16, 32)
		if err != nil {
			return nil, &ParseError{Line: lineno, Kind: InvalidInteger, cause: err}
		}
		to, err := strconv.ParseUint(bounds[1], 16, 32)
		if err != nil {
			return nil, &ParseError{Line: lineno, Kind: InvalidInteger, cause: err}
		}
		entries = append(entries, Entry{From: rune(from), To: rune(to), Name: name})
	}
	T().Debugf("parsed %d block ranges", len(entries))
	return &BlockTable{entries: entries}, nil
}

// ParseReader reads all of r and parses it as Blocks.txt data.
func ParseReader(r io.Reader) (*BlockTable, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(string(data))
}
