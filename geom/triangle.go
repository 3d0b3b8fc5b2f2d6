package geom

// Triangle is defined by three vertices. The order P, Q, R is the
// winding and sets the sign of the normal.
type Triangle[T Float] struct {
	P, Q, R Vector3[T]
}

// NewTriangle constructs a triangle from its vertices.
func NewTriangle[T Float](p, q, r Vector3[T]) Triangle[T] {
	return Triangle[T]{P: p, Q: q, R: r}
}

// At returns the ith vertex.
func (t Triangle[T]) At(i int) Vector3[T] {
	switch i {
	case 0:
		return t.P
	case 1:
		return t.Q
	case 2:
		return t.R
	}
	OutOfRange(i, 3)
	panic("unreachable")
}

// Set replaces the ith vertex.
func (t *Triangle[T]) Set(i int, v Vector3[T]) {
	switch i {
	case 0:
		t.P = v
	case 1:
		t.Q = v
	case 2:
		t.R = v
	default:
		OutOfRange(i, 3)
	}
}

// edgeCross is (Q-P)×(R-P).
func (t Triangle[T]) edgeCross() Vector3[T] {
	return Cross(t.Q.Sub(t.P), t.R.Sub(t.P))
}

// Normal returns the unit normal. Degenerate triangles yield NaN components.
func (t Triangle[T]) Normal() Vector3[T] {
	return Unit(t.edgeCross())
}

// Area returns the area of the triangle. It is zero for degenerate triangles.
func (t Triangle[T]) Area() T {
	return 0.5 * Mag(t.edgeCross())
}

// Bounds returns the smallest box containing the three vertices.
func (t Triangle[T]) Bounds() Box[T] {
	return Box[T]{
		Min: MinElem(t.R, MinElem(t.P, t.Q)),
		Max: MaxElem(t.R, MaxElem(t.P, t.Q)),
	}
}

// Centroid returns the mean of the vertices.
func (t Triangle[T]) Centroid() Vector3[T] {
	return t.P.Add(t.Q).Add(t.R).Scale(1. / 3)
}

// Degenerate returns true if two of the vertices are within tol of each other.
func (t Triangle[T]) Degenerate(tol T) bool {
	// check for identical vertices.
	return EqualWithin(t.P, t.Q, tol) ||
		EqualWithin(t.Q, t.R, tol) ||
		EqualWithin(t.R, t.P, tol)
}
