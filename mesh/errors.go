package mesh

import (
	"errors"
	"strconv"
)

var (
	// ErrVertexDimension is returned when a vertex line does not hold exactly
	// three numeric values.
	ErrVertexDimension = errors.New("vertex must be three-dimension")
	// ErrFaceArity is returned when a face has fewer than three vertex indices.
	ErrFaceArity = errors.New("face must have at least 3 vertices")
	// ErrVertexIndex is returned when a face references a vertex that has
	// not been declared yet.
	ErrVertexIndex = errors.New("face references undeclared vertex")
)

// ParseError reports a malformed geometry line. Any ParseError aborts the import.
type ParseError struct {
	Line int // 1-based line number.
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return "obj line " + strconv.Itoa(e.Line) + " " + strconv.Quote(e.Text) + ": " + e.Err.Error()
}

func (e *ParseError) Unwrap() error { return e.Err }

// IOError reports a failure to open, decompress or read an import source.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.Path == "" {
		return e.Op + ": " + e.Err.Error()
	}
	return e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *IOError) Unwrap() error { return e.Err }
