package geom

// Vector3 is a 3 component vector over a floating point scalar.
// Arithmetic methods return new values; the *Assign variants
// modify the receiver in place.
type Vector3[T Float] struct {
	X, Y, Z T
}

// NewVector3 constructs a vector from its components.
func NewVector3[T Float](x, y, z T) Vector3[T] {
	return Vector3[T]{X: x, Y: y, Z: z}
}

// Zeros returns the zero vector.
func Zeros[T Float]() Vector3[T] { return Vector3[T]{} }

// Ones returns a vector with all components set to 1.
func Ones[T Float]() Vector3[T] { return Elem[T](1) }

// Elem returns a vector with all components set to s.
func Elem[T Float](s T) Vector3[T] {
	return Vector3[T]{X: s, Y: s, Z: s}
}

// At returns the ith component. i must be 0, 1 or 2 mapping to X, Y, Z.
func (v Vector3[T]) At(i int) T {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	}
	OutOfRange(i, 3)
	panic("unreachable")
}

// Set sets the ith component to s.
func (v *Vector3[T]) Set(i int, s T) {
	switch i {
	case 0:
		v.X = s
	case 1:
		v.Y = s
	case 2:
		v.Z = s
	default:
		OutOfRange(i, 3)
	}
}

// Add returns v + u.
func (v Vector3[T]) Add(u Vector3[T]) Vector3[T] {
	return Vector3[T]{X: v.X + u.X, Y: v.Y + u.Y, Z: v.Z + u.Z}
}

// AddScalar adds s to each component of v.
func (v Vector3[T]) AddScalar(s T) Vector3[T] {
	return Vector3[T]{X: v.X + s, Y: v.Y + s, Z: v.Z + s}
}

// Sub returns v - u.
func (v Vector3[T]) Sub(u Vector3[T]) Vector3[T] {
	return Vector3[T]{X: v.X - u.X, Y: v.Y - u.Y, Z: v.Z - u.Z}
}

// SubScalar subtracts s from each component of v.
func (v Vector3[T]) SubScalar(s T) Vector3[T] {
	return Vector3[T]{X: v.X - s, Y: v.Y - s, Z: v.Z - s}
}

// Mul returns the element-wise product of v and u.
func (v Vector3[T]) Mul(u Vector3[T]) Vector3[T] {
	return Vector3[T]{X: v.X * u.X, Y: v.Y * u.Y, Z: v.Z * u.Z}
}

// Scale returns v scaled by s.
func (v Vector3[T]) Scale(s T) Vector3[T] {
	return Vector3[T]{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Div returns the element-wise quotient of v and u.
func (v Vector3[T]) Div(u Vector3[T]) Vector3[T] {
	return Vector3[T]{X: v.X / u.X, Y: v.Y / u.Y, Z: v.Z / u.Z}
}

// DivScalar divides each component of v by s.
func (v Vector3[T]) DivScalar(s T) Vector3[T] {
	return Vector3[T]{X: v.X / s, Y: v.Y / s, Z: v.Z / s}
}

// Neg returns -v.
func (v Vector3[T]) Neg() Vector3[T] {
	return Vector3[T]{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// AddAssign sets v to v + u.
func (v *Vector3[T]) AddAssign(u Vector3[T]) { *v = v.Add(u) }

// AddScalarAssign adds s to each component of v.
func (v *Vector3[T]) AddScalarAssign(s T) { *v = v.AddScalar(s) }

// SubAssign sets v to v - u.
func (v *Vector3[T]) SubAssign(u Vector3[T]) { *v = v.Sub(u) }

// SubScalarAssign subtracts s from each component of v.
func (v *Vector3[T]) SubScalarAssign(s T) { *v = v.SubScalar(s) }

// MulAssign multiplies v element-wise by u.
func (v *Vector3[T]) MulAssign(u Vector3[T]) { *v = v.Mul(u) }

// ScaleAssign scales v by s.
func (v *Vector3[T]) ScaleAssign(s T) { *v = v.Scale(s) }

// DivAssign divides v element-wise by u.
func (v *Vector3[T]) DivAssign(u Vector3[T]) { *v = v.Div(u) }

// DivScalarAssign divides each component of v by s.
func (v *Vector3[T]) DivScalarAssign(s T) { *v = v.DivScalar(s) }

// Dot returns the dot product u·v.
func Dot[T Float](u, v Vector3[T]) T {
	return u.X*v.X + u.Y*v.Y + u.Z*v.Z
}

// Cross returns the right-handed cross product u×v.
func Cross[T Float](u, v Vector3[T]) Vector3[T] {
	return Vector3[T]{
		X: u.Y*v.Z - u.Z*v.Y,
		Y: u.Z*v.X - u.X*v.Z,
		Z: u.X*v.Y - u.Y*v.X,
	}
}

// Mag returns the Euclidean norm of v.
func Mag[T Float](v Vector3[T]) T {
	return sqrt(Dot(v, v))
}

// Unit returns v divided by its magnitude. The zero vector
// yields NaN components.
func Unit[T Float](v Vector3[T]) Vector3[T] {
	return v.DivScalar(Mag(v))
}

// MinElem return a vector with the minimum components of two vectors.
func MinElem[T Float](a, b Vector3[T]) Vector3[T] {
	return Vector3[T]{X: minf(a.X, b.X), Y: minf(a.Y, b.Y), Z: minf(a.Z, b.Z)}
}

// MaxElem return a vector with the maximum components of two vectors.
func MaxElem[T Float](a, b Vector3[T]) Vector3[T] {
	return Vector3[T]{X: maxf(a.X, b.X), Y: maxf(a.Y, b.Y), Z: maxf(a.Z, b.Z)}
}

// EqualWithin reports whether every component of a and b differs by at most tol.
func EqualWithin[T Float](a, b Vector3[T], tol T) bool {
	return absf(a.X-b.X) <= tol &&
		absf(a.Y-b.Y) <= tol &&
		absf(a.Z-b.Z) <= tol
}
