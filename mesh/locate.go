package mesh

import (
	"math"

	"github.com/soypat/polysoup/geom"
	"gonum.org/v1/gonum/spatial/kdtree"
	"gonum.org/v1/gonum/spatial/r3"
)

// VertexLocator answers nearest vertex queries over a soup's vertices.
// It holds a copy of the vertex positions taken at construction.
type VertexLocator[T geom.Float] struct {
	tree *kdtree.Tree
}

// NewVertexLocator builds a kd-tree over the vertices of soup.
func NewVertexLocator[T geom.Float](soup *PolygonSoup[T]) *VertexLocator[T] {
	verts := soup.Vertices()
	if len(verts) == 0 {
		return &VertexLocator[T]{}
	}
	pts := make(kdVertices, len(verts))
	for i, v := range verts {
		pts[i] = kdVertex{V: geom.ToR3(v.Vec()), Index: i}
	}
	return &VertexLocator[T]{tree: kdtree.New(pts, true)}
}

// Nearest returns the index of the vertex closest to q and its squared
// distance to q. index is -1 when the soup had no vertices.
func (l *VertexLocator[T]) Nearest(q geom.Vector3[T]) (index int, dist2 T) {
	if l.tree == nil {
		return -1, T(math.Inf(1))
	}
	got, d2 := l.tree.Nearest(kdVertex{V: geom.ToR3(q), Index: -1})
	return got.(kdVertex).Index, T(d2)
}

type kdVertex struct {
	V     r3.Vec
	Index int
}

// Compare returns the signed distance of a from the plane passing through
// b and perpendicular to the dimension d.
func (a kdVertex) Compare(b kdtree.Comparable, d kdtree.Dim) float64 {
	return kdComp(a, b.(kdVertex), int(d))
}

// Dims returns the number of dimensions described in the Comparable.
func (a kdVertex) Dims() int { return 3 }

// Distance returns the squared Euclidean distance between the receiver and
// the parameter.
func (a kdVertex) Distance(b kdtree.Comparable) float64 {
	return r3.Norm2(r3.Sub(a.V, b.(kdVertex).V))
}

// c = a.dim - b.dim
func kdComp(a, b kdVertex, dim int) float64 {
	switch dim {
	case 0:
		return a.V.X - b.V.X
	case 1:
		return a.V.Y - b.V.Y
	case 2:
		return a.V.Z - b.V.Z
	}
	panic("unreachable")
}

type kdVertices []kdVertex

// Index returns the ith element of the list of points.
func (k kdVertices) Index(i int) kdtree.Comparable { return k[i] }

// Len returns the length of the list.
func (k kdVertices) Len() int { return len(k) }

// Pivot partitions the list based on the dimension specified.
func (k kdVertices) Pivot(d kdtree.Dim) int {
	p := kdPlane{dim: int(d), vertices: k}
	return kdtree.Partition(p, kdtree.MedianOfMedians(p))
}

// Slice returns a slice of the list using zero-based half
// open indexing equivalent to built-in slice indexing.
func (k kdVertices) Slice(start, end int) kdtree.Interface { return k[start:end] }

// Bounds implements the kdtree.Bounder interface.
func (k kdVertices) Bounds() *kdtree.Bounding {
	min := r3.Vec{X: math.MaxFloat64, Y: math.MaxFloat64, Z: math.MaxFloat64}
	max := r3.Vec{X: -math.MaxFloat64, Y: -math.MaxFloat64, Z: -math.MaxFloat64}
	for _, v := range k {
		min = r3.Vec{X: math.Min(min.X, v.V.X), Y: math.Min(min.Y, v.V.Y), Z: math.Min(min.Z, v.V.Z)}
		max = r3.Vec{X: math.Max(max.X, v.V.X), Y: math.Max(max.Y, v.V.Y), Z: math.Max(max.Z, v.V.Z)}
	}
	return &kdtree.Bounding{
		Min: kdVertex{V: min, Index: -1},
		Max: kdVertex{V: max, Index: -1},
	}
}

type kdPlane struct {
	dim      int
	vertices kdVertices
}

func (p kdPlane) Less(i, j int) bool {
	return kdComp(p.vertices[i], p.vertices[j], p.dim) < 0
}
func (p kdPlane) Swap(i, j int) {
	p.vertices[i], p.vertices[j] = p.vertices[j], p.vertices[i]
}
func (p kdPlane) Len() int {
	return len(p.vertices)
}
func (p kdPlane) Slice(start, end int) kdtree.SortSlicer {
	p.vertices = p.vertices[start:end]
	return p
}
