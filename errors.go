package ucdblocks

import "fmt"

// ParseError reports the first malformed line encountered while parsing
// Blocks.txt data. Line is the 0-based index of the offending line in the
// raw input (blank and comment-only lines count).
type ParseError struct {
	Line  int
	Kind  ParseErrorKind
	cause error // underlying failure, for InvalidInteger
}

// ParseErrorKind is the closed set of ways a Blocks.txt line can be malformed.
type ParseErrorKind int8

const (
	// NoSemicolon: the line lacks the ';' separating range from block name.
	NoSemicolon ParseErrorKind = iota
	// NoDotDot: the range field lacks the ".." separating its bounds.
	NoDotDot
	// InvalidInteger: a range bound is not a valid hexadecimal integer.
	InvalidInteger
)

func (kind ParseErrorKind) String() string {
	switch kind {
	case NoSemicolon:
		return "no semicolon"
	case NoDotDot:
		return "no `..` in range"
	case InvalidInteger:
		return "one end of range is not a valid hexadecimal integer"
	}
	return "unknown"
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid Blocks.txt data on line %d: %s", e.Line+1, e.Kind)
}

// Unwrap returns the underlying numeric-parse failure for InvalidInteger
// errors, and nil for the other kinds.
func (e *ParseError) Unwrap() error {
	return e.cause
}

// FileError reports a failure to build a block table from a local file,
// either because the file could not be read or because its content did not
// parse. The cause is available through Unwrap.
type FileError struct {
	Path  string
	cause error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("error reading %q", e.Path)
}

func (e *FileError) Unwrap() error {
	return e.cause
}

// DownloadError reports a failure to build a block table from the Unicode
// website: the HTTP request failed, the response body could not be read, or
// the downloaded data did not parse. The cause is available through Unwrap.
type DownloadError struct {
	cause error
}

func (e *DownloadError) Error() string {
	return "failed to download Blocks.txt from the Unicode website"
}

func (e *DownloadError) Unwrap() error {
	return e.cause
}
