// Package mesh implements a polygon soup mesh and a WaveFront OBJ importer.
package mesh

import (
	"fmt"

	"github.com/soypat/polysoup/geom"
)

// PolygonSoup is an append-only collection of vertices, faces and patches
// with no connectivity information.
//
// Faces reference vertices and patches by index. Insertions are not
// validated; use Validate to check references after building a soup by hand.
type PolygonSoup[T geom.Float] struct {
	vertices []Vertex[T]
	faces    []Face
	patches  []Patch
}

// NewPolygonSoup constructs a soup that takes ownership of the given slices.
func NewPolygonSoup[T geom.Float](vertices []Vertex[T], faces []Face, patches []Patch) *PolygonSoup[T] {
	return &PolygonSoup[T]{
		vertices: vertices,
		faces:    faces,
		patches:  patches,
	}
}

// Vertices returns the vertices in insertion order.
func (s *PolygonSoup[T]) Vertices() []Vertex[T] { return s.vertices }

// Faces returns the faces in insertion order.
func (s *PolygonSoup[T]) Faces() []Face { return s.faces }

// Patches returns the patches in declaration order.
func (s *PolygonSoup[T]) Patches() []Patch { return s.patches }

// InsertVertex appends a vertex. Its index is len(Vertices())-1 after the call.
func (s *PolygonSoup[T]) InsertVertex(v Vertex[T]) {
	s.vertices = append(s.vertices, v)
}

// InsertFace appends a face.
func (s *PolygonSoup[T]) InsertFace(f Face) {
	s.faces = append(s.faces, f)
}

// InsertPatch appends a patch.
func (s *PolygonSoup[T]) InsertPatch(p Patch) {
	s.patches = append(s.patches, p)
}

// Triangle returns the triangle spanned by the first three vertices of the
// ith face.
func (s *PolygonSoup[T]) Triangle(i int) geom.Triangle[T] {
	f := s.faces[i]
	return geom.NewTriangle(
		s.vertices[f.At(0)].Vec(),
		s.vertices[f.At(1)].Vec(),
		s.vertices[f.At(2)].Vec(),
	)
}

// Triangles returns the triangles of every face for which IsTriangle is true,
// in face order. Other faces are skipped.
func (s *PolygonSoup[T]) Triangles() []geom.Triangle[T] {
	tris := make([]geom.Triangle[T], 0, len(s.faces))
	for i := range s.faces {
		if s.faces[i].IsTriangle() {
			tris = append(tris, s.Triangle(i))
		}
	}
	return tris
}

// Bounds returns the bounding box of all vertices. ok is false for a soup
// without vertices.
func (s *PolygonSoup[T]) Bounds() (bb geom.Box[T], ok bool) {
	if len(s.vertices) == 0 {
		return bb, false
	}
	first := s.vertices[0].Vec()
	bb = geom.NewBox(first, first)
	for _, v := range s.vertices[1:] {
		bb = bb.Include(v.Vec())
	}
	return bb, true
}

// Area returns the summed area of Triangles.
func (s *PolygonSoup[T]) Area() (area T) {
	for _, tri := range s.Triangles() {
		area += tri.Area()
	}
	return area
}

// FacesInPatch returns the indices of faces bound to patch.
func (s *PolygonSoup[T]) FacesInPatch(patch int) []int {
	var idx []int
	for i, f := range s.faces {
		if p, ok := f.Patch(); ok && p == patch {
			idx = append(idx, i)
		}
	}
	return idx
}

// Validate checks that every face references existing vertices and patches.
func (s *PolygonSoup[T]) Validate() error {
	for i, f := range s.faces {
		if f.Len() < 3 {
			return fmt.Errorf("face %d: %w", i, ErrFaceArity)
		}
		for _, vi := range f.Vertices() {
			if vi < 0 || vi >= len(s.vertices) {
				return fmt.Errorf("face %d: vertex index %d out of range [0,%d)", i, vi, len(s.vertices))
			}
		}
		if p, ok := f.Patch(); ok && (p < 0 || p >= len(s.patches)) {
			return fmt.Errorf("face %d: patch index %d out of range [0,%d)", i, p, len(s.patches))
		}
	}
	return nil
}
