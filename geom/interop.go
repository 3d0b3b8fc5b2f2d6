package geom

import (
	"github.com/soypat/glgl/math/ms3"
	"gonum.org/v1/gonum/spatial/r3"
)

// ToR3 converts v to a gonum r3.Vec.
func ToR3[T Float](v Vector3[T]) r3.Vec {
	return r3.Vec{X: float64(v.X), Y: float64(v.Y), Z: float64(v.Z)}
}

// FromR3 converts a gonum r3.Vec to a Vector3. Converting to float32 rounds.
func FromR3[T Float](v r3.Vec) Vector3[T] {
	return Vector3[T]{X: T(v.X), Y: T(v.Y), Z: T(v.Z)}
}

// ToMS3 converts v to a single precision glgl vector.
func ToMS3[T Float](v Vector3[T]) ms3.Vec {
	return ms3.Vec{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)}
}

// FromMS3 converts a glgl vector to a Vector3.
func FromMS3[T Float](v ms3.Vec) Vector3[T] {
	return Vector3[T]{X: T(v.X), Y: T(v.Y), Z: T(v.Z)}
}

// ToR3 converts the box to a gonum r3.Box.
func (a Box[T]) ToR3() r3.Box {
	return r3.Box{Min: ToR3(a.Min), Max: ToR3(a.Max)}
}

// BoxFromR3 converts a gonum r3.Box to a Box.
func BoxFromR3[T Float](b r3.Box) Box[T] {
	return Box[T]{Min: FromR3[T](b.Min), Max: FromR3[T](b.Max)}
}

// ToR3 converts the triangle to a gonum r3.Triangle.
func (t Triangle[T]) ToR3() r3.Triangle {
	return r3.Triangle{ToR3(t.P), ToR3(t.Q), ToR3(t.R)}
}
