package mesh

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/soypat/polysoup/geom"
)

// Importer builds a PolygonSoup from some source.
type Importer[T geom.Float] interface {
	Import() (*PolygonSoup[T], error)
}

// ObjImporter imports WaveFront OBJ files. Files with a .gz extension
// (any case) are gzip decompressed before parsing.
//
// Only the v, f and g directives are understood; every other line is ignored.
type ObjImporter[T geom.Float] struct {
	Path string
}

var _ Importer[float64] = ObjImporter[float64]{}

// NewObjImporter returns an importer reading from path.
func NewObjImporter[T geom.Float](path string) ObjImporter[T] {
	return ObjImporter[T]{Path: path}
}

// FromOBJ imports the OBJ file at path.
func FromOBJ[T geom.Float](path string) (*PolygonSoup[T], error) {
	return NewObjImporter[T](path).Import()
}

// IsGzip returns true if the path has a .gz extension.
func (imp ObjImporter[T]) IsGzip() bool {
	return strings.EqualFold(filepath.Ext(imp.Path), ".gz")
}

// Import reads and parses the file. I/O and decompression failures are
// returned as *IOError, malformed vertex or face lines as *ParseError.
// On error the returned soup is nil.
func (imp ObjImporter[T]) Import() (*PolygonSoup[T], error) {
	text, err := imp.readAll()
	if err != nil {
		return nil, err
	}
	return parseOBJ[T](text)
}

func (imp ObjImporter[T]) readAll() (string, error) {
	fp, err := os.Open(imp.Path)
	if err != nil {
		return "", &IOError{Op: "open", Path: imp.Path, Err: err}
	}
	defer fp.Close()
	var r io.Reader = fp
	if imp.IsGzip() {
		zr, err := gzip.NewReader(fp)
		if err != nil {
			return "", &IOError{Op: "gzip", Path: imp.Path, Err: err}
		}
		defer zr.Close()
		r = zr
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return "", &IOError{Op: "read", Path: imp.Path, Err: err}
	}
	return string(b), nil
}

// ReadOBJ parses OBJ text from r. r is read to completion before parsing.
func ReadOBJ[T geom.Float](r io.Reader) (*PolygonSoup[T], error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, &IOError{Op: "read", Err: err}
	}
	return parseOBJ[T](string(b))
}

func parseOBJ[T geom.Float](text string) (*PolygonSoup[T], error) {
	soup := &PolygonSoup[T]{}
	for i, line := range strings.Split(text, "\n") {
		args := strings.Fields(line)
		if len(args) == 0 {
			continue
		}
		var err error
		switch args[0] {
		case "v":
			err = parseVertex(soup, args[1:])
		case "f":
			err = parseFace(soup, args[1:])
		case "g":
			soup.InsertPatch(NewPatch(strings.Join(args[1:], " ")))
		}
		if err != nil {
			return nil, &ParseError{Line: i + 1, Text: strings.TrimSpace(line), Err: err}
		}
	}
	return soup, nil
}

// parseVertex appends a vertex. Tokens that do not parse as T are skipped;
// exactly three must remain.
func parseVertex[T geom.Float](soup *PolygonSoup[T], args []string) error {
	var values [3]T
	n := 0
	for _, arg := range args {
		v, err := geom.ParseFloat[T](arg)
		if err != nil {
			continue
		}
		if n == len(values) {
			return ErrVertexDimension
		}
		values[n] = v
		n++
	}
	if n != len(values) {
		return ErrVertexDimension
	}
	soup.InsertVertex(NewVertex(values[0], values[1], values[2]))
	return nil
}

// parseFace appends a face bound to the most recently declared patch,
// creating the default patch if none exists. Indices are 1-based in the
// file and may carry one leading '+'; tokens that are not positive integers
// are skipped. Every index must refer to an already declared vertex.
func parseFace[T geom.Float](soup *PolygonSoup[T], args []string) error {
	vertices := make([]int, 0, len(args))
	for _, arg := range args {
		v, err := strconv.ParseUint(strings.TrimPrefix(arg, "+"), 10, strconv.IntSize-1)
		if err != nil || v == 0 {
			continue
		}
		vertices = append(vertices, int(v-1))
	}
	if len(vertices) < 3 {
		return ErrFaceArity
	}
	for _, vi := range vertices {
		if vi >= len(soup.vertices) {
			return fmt.Errorf("%w: %d with %d vertices declared", ErrVertexIndex, vi+1, len(soup.vertices))
		}
	}
	if len(soup.patches) == 0 {
		soup.InsertPatch(DefaultPatch())
	}
	soup.InsertFace(NewFaceWithPatch(vertices, len(soup.patches)-1))
	return nil
}
