package mesh

import (
	"errors"
	"testing"

	"github.com/soypat/polysoup/geom"
)

func TestFaceIsTriangle(t *testing.T) {
	for _, test := range []struct {
		vertices []int
		want     bool
	}{
		{[]int{0, 1, 2}, true},
		{[]int{0, 0, 2}, false},
		{[]int{0, 1, 1}, false},
		// First and last coinciding is not detected.
		{[]int{0, 1, 0}, true},
		{[]int{0, 1, 2, 3}, false},
		{[]int{0, 1}, false},
	} {
		if got := NewFace(test.vertices).IsTriangle(); got != test.want {
			t.Errorf("IsTriangle(%v): got %v, want %v", test.vertices, got, test.want)
		}
	}
}

func TestFaceAccess(t *testing.T) {
	f := NewFace([]int{4, 5, 6, 7})
	if _, ok := f.Patch(); ok {
		t.Error("NewFace should have no patch")
	}
	if f.Len() != 4 || f.At(3) != 7 {
		t.Errorf("unexpected face %v", f.Vertices())
	}
	f.Set(0, 9)
	if f.At(0) != 9 {
		t.Errorf("Set did not take: %v", f.Vertices())
	}
	// The face owns the caller's slice and copies share it.
	verts := []int{0, 1, 2}
	g := NewFace(verts)
	h := g
	h.Set(1, 8)
	if verts[1] != 8 || g.At(1) != 8 {
		t.Errorf("Set on copy not shared: slice %v, face %v", verts, g.Vertices())
	}
	p, ok := NewFaceWithPatch([]int{0, 1, 2}, 3).Patch()
	if !ok || p != 3 {
		t.Errorf("Patch: got %d, %v", p, ok)
	}
	mustPanicOutOfRange(t, func() { f.At(4) })
	mustPanicOutOfRange(t, func() { f.Set(-1, 0) })
}

func TestVertexAccess(t *testing.T) {
	v := NewVertex[float32](1, 2, 3)
	v.Set(2, 5)
	if v.At(0) != 1 || v.At(1) != 2 || v.At(2) != 5 {
		t.Errorf("unexpected vertex %v", v)
	}
	if v.Vec() != geom.NewVector3[float32](1, 2, 5) || VertexFromVec(v.Vec()) != v {
		t.Errorf("vector conversion mismatch for %v", v)
	}
	mustPanicOutOfRange(t, func() { v.At(3) })
	mustPanicOutOfRange(t, func() { v.Set(3, 0) })
}

func TestPatch(t *testing.T) {
	if DefaultPatch().Name() != DefaultPatchName {
		t.Errorf("default patch named %q", DefaultPatch().Name())
	}
	if NewPatch("wing tip").Name() != "wing tip" {
		t.Error("patch name mismatch")
	}
}

func mustPanicOutOfRange(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, geom.ErrIndexOutOfRange) {
			t.Fatalf("want index out of range panic, got %v", r)
		}
	}()
	f()
}
