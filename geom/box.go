package geom

// Box is an axis-aligned bounding box. Methods assume Min is
// component-wise less than or equal to Max but do not check it.
type Box[T Float] struct {
	Min, Max Vector3[T]
}

// NewBox creates a box from its min/max bounds.
func NewBox[T Float](min, max Vector3[T]) Box[T] {
	return Box[T]{Min: min, Max: max}
}

// CenteredBox creates a Box with a given center and size.
// Negative components of size will be interpreted as zero.
func CenteredBox[T Float](center, size Vector3[T]) Box[T] {
	half := MaxElem(size, Vector3[T]{}).Scale(0.5)
	return Box[T]{Min: center.Sub(half), Max: center.Add(half)}
}

// Center returns the center of the box.
func (a Box[T]) Center() Vector3[T] {
	return a.Max.Add(a.Min).Scale(0.5)
}

// Size returns the extent of the box along each axis.
func (a Box[T]) Size() Vector3[T] {
	return a.Max.Sub(a.Min)
}

// HalfSize returns half the size of the box.
func (a Box[T]) HalfSize() Vector3[T] {
	return a.Max.Sub(a.Min).Scale(0.5)
}

// Include enlarges a box to include a point.
func (a Box[T]) Include(v Vector3[T]) Box[T] {
	return Box[T]{
		Min: MinElem(a.Min, v),
		Max: MaxElem(a.Max, v),
	}
}

// Extend returns a box enclosing a and b.
func (a Box[T]) Extend(b Box[T]) Box[T] {
	return Box[T]{
		Min: MinElem(a.Min, b.Min),
		Max: MaxElem(a.Max, b.Max),
	}
}

// Contains checks if the box contains the given vector (considering bounds as inside).
func (a Box[T]) Contains(v Vector3[T]) bool {
	return a.Min.X <= v.X && a.Min.Y <= v.Y && a.Min.Z <= v.Z &&
		v.X <= a.Max.X && v.Y <= a.Max.Y && v.Z <= a.Max.Z
}

// Equals test the equality of boxes within tol.
func (a Box[T]) Equals(b Box[T], tol T) bool {
	return EqualWithin(a.Min, b.Min, tol) && EqualWithin(a.Max, b.Max, tol)
}
