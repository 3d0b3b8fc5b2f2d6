package mesh

import "github.com/soypat/polysoup/geom"

// DefaultPatchName names the patch created for faces that precede any group.
const DefaultPatchName = "_DEFAULT"

// Vertex is a point in a soup's vertex list.
type Vertex[T geom.Float] struct {
	X, Y, Z T
}

// NewVertex constructs a vertex from its coordinates.
func NewVertex[T geom.Float](x, y, z T) Vertex[T] {
	return Vertex[T]{X: x, Y: y, Z: z}
}

// VertexFromVec converts a vector to a vertex.
func VertexFromVec[T geom.Float](v geom.Vector3[T]) Vertex[T] {
	return Vertex[T]{X: v.X, Y: v.Y, Z: v.Z}
}

// Vec returns the vertex position as a vector.
func (v Vertex[T]) Vec() geom.Vector3[T] {
	return geom.Vector3[T]{X: v.X, Y: v.Y, Z: v.Z}
}

// At returns the ith coordinate.
func (v Vertex[T]) At(i int) T {
	return v.Vec().At(i)
}

// Set sets the ith coordinate.
func (v *Vertex[T]) Set(i int, s T) {
	vec := v.Vec()
	vec.Set(i, s)
	*v = VertexFromVec(vec)
}

// Face is an ordered list of 0-based vertex indices into a soup,
// optionally bound to a patch.
type Face struct {
	vertices []int
	patch    int
	hasPatch bool
}

// NewFace returns a face with no patch. The face takes ownership of
// vertices; Set writes through to it.
func NewFace(vertices []int) Face {
	return Face{vertices: vertices}
}

// NewFaceWithPatch returns a face bound to the patch at index patch.
// The face takes ownership of vertices.
func NewFaceWithPatch(vertices []int, patch int) Face {
	return Face{vertices: vertices, patch: patch, hasPatch: true}
}

// Vertices returns the vertex indices of the face. The slice is shared with the face.
func (f Face) Vertices() []int { return f.vertices }

// Len returns the number of vertices of the face.
func (f Face) Len() int { return len(f.vertices) }

// Patch returns the patch index of the face and whether it has one.
func (f Face) Patch() (int, bool) { return f.patch, f.hasPatch }

// At returns the ith vertex index.
func (f Face) At(i int) int {
	if i < 0 || i >= len(f.vertices) {
		geom.OutOfRange(i, len(f.vertices))
	}
	return f.vertices[i]
}

// Set sets the ith vertex index. Copies of f share the index slice and
// observe the change.
func (f Face) Set(i, vertex int) {
	if i < 0 || i >= len(f.vertices) {
		geom.OutOfRange(i, len(f.vertices))
	}
	f.vertices[i] = vertex
}

// IsTriangle reports whether the face has exactly 3 vertices and no two
// consecutive indices are equal. The first and last index are not compared.
func (f Face) IsTriangle() bool {
	return len(f.vertices) == 3 &&
		f.vertices[0] != f.vertices[1] &&
		f.vertices[1] != f.vertices[2]
}

// Patch is a named group of faces.
type Patch struct {
	name string
}

// NewPatch returns a patch named name.
func NewPatch(name string) Patch { return Patch{name: name} }

// DefaultPatch returns the patch used for faces declared outside any group.
func DefaultPatch() Patch { return NewPatch(DefaultPatchName) }

// Name returns the patch name.
func (p Patch) Name() string { return p.name }
