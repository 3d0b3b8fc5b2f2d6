package mesh

import (
	"errors"
	"math"
	"testing"

	"github.com/soypat/polysoup/geom"
)

func TestSoupInsertOrder(t *testing.T) {
	const n = 50
	var soup PolygonSoup[float64]
	for i := 0; i < n; i++ {
		soup.InsertVertex(NewVertex(float64(i), float64(2*i), float64(-i)))
	}
	verts := soup.Vertices()
	if len(verts) != n {
		t.Fatalf("want %d vertices, got %d", n, len(verts))
	}
	for i, v := range verts {
		if v != NewVertex(float64(i), float64(2*i), float64(-i)) {
			t.Fatalf("vertex %d out of order: %v", i, v)
		}
	}
	soup.InsertPatch(NewPatch("a"))
	soup.InsertPatch(NewPatch("b"))
	if soup.Patches()[1].Name() != "b" {
		t.Errorf("patches out of order: %v", soup.Patches())
	}
}

// tetra returns a unit right tetrahedron with one patch per pair of faces.
func tetra() *PolygonSoup[float64] {
	return NewPolygonSoup(
		[]Vertex[float64]{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
		[]Face{
			NewFaceWithPatch([]int{0, 2, 1}, 0),
			NewFaceWithPatch([]int{0, 1, 3}, 0),
			NewFaceWithPatch([]int{0, 3, 2}, 1),
			NewFaceWithPatch([]int{1, 2, 3}, 1),
		},
		[]Patch{NewPatch("base"), NewPatch("top")},
	)
}

func TestSoupDerived(t *testing.T) {
	const tol = 1e-12
	soup := tetra()
	tris := soup.Triangles()
	if len(tris) != 4 {
		t.Fatalf("want 4 triangles, got %d", len(tris))
	}
	wantArea := 1.5 + math.Sqrt(3)/2
	if got := soup.Area(); math.Abs(got-wantArea) > tol {
		t.Errorf("Area: got %v, want %v", got, wantArea)
	}
	// Outward normal of the base face.
	if n := tris[0].Normal(); !geom.EqualWithin(n, geom.NewVector3[float64](0, 0, -1), tol) {
		t.Errorf("base normal: got %v", n)
	}
	bb, ok := soup.Bounds()
	if !ok {
		t.Fatal("Bounds not ok")
	}
	if bb.Min != geom.Zeros[float64]() || bb.Max != geom.Ones[float64]() {
		t.Errorf("Bounds: got %v", bb)
	}
	if got := soup.FacesInPatch(1); len(got) != 2 || got[0] != 2 || got[1] != 3 {
		t.Errorf("FacesInPatch(1): got %v", got)
	}
	if got := soup.FacesInPatch(5); len(got) != 0 {
		t.Errorf("FacesInPatch(5): got %v", got)
	}
	if err := soup.Validate(); err != nil {
		t.Error(err)
	}
}

func TestSoupTrianglesSkipsNonTriangles(t *testing.T) {
	soup := NewPolygonSoup(
		[]Vertex[float32]{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}},
		[]Face{
			NewFace([]int{0, 1, 2, 3}),
			NewFace([]int{0, 0, 2}),
			NewFace([]int{0, 1, 2}),
		},
		nil,
	)
	tris := soup.Triangles()
	if len(tris) != 1 {
		t.Fatalf("want 1 triangle, got %d", len(tris))
	}
	if got := soup.Area(); got != 0.5 {
		t.Errorf("Area: got %v, want 0.5", got)
	}
}

func TestSoupEmpty(t *testing.T) {
	var soup PolygonSoup[float32]
	if _, ok := soup.Bounds(); ok {
		t.Error("empty soup has bounds")
	}
	if soup.Area() != 0 || len(soup.Triangles()) != 0 {
		t.Error("empty soup has geometry")
	}
	if err := soup.Validate(); err != nil {
		t.Error(err)
	}
}

func TestSoupValidate(t *testing.T) {
	verts := []Vertex[float64]{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}
	for _, test := range []struct {
		name string
		face Face
		ok   bool
	}{
		{"valid", NewFaceWithPatch([]int{0, 1, 2}, 0), true},
		{"no patch", NewFace([]int{0, 1, 2}), true},
		{"vertex past end", NewFace([]int{0, 1, 3}), false},
		{"negative vertex", NewFace([]int{-1, 1, 2}), false},
		{"patch past end", NewFaceWithPatch([]int{0, 1, 2}, 1), false},
		{"short face", NewFace([]int{0, 1}), false},
	} {
		soup := NewPolygonSoup(verts, []Face{test.face}, []Patch{DefaultPatch()})
		err := soup.Validate()
		if (err == nil) != test.ok {
			t.Errorf("%s: got err %v", test.name, err)
		}
	}
	err := NewPolygonSoup(verts, []Face{NewFace([]int{0, 1})}, nil).Validate()
	if !errors.Is(err, ErrFaceArity) {
		t.Errorf("short face: got %v, want ErrFaceArity", err)
	}
}
