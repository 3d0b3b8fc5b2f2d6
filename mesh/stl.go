package mesh

import (
	"encoding/binary"
	"errors"
	"io"
	"math"

	"github.com/soypat/polysoup/geom"
)

const (
	stlHeaderSize = 84 // 80 byte comment followed by the uint32 triangle count.
	stlRecordSize = 50 // normal, three vertices and a uint16 attribute count.
)

// WriteSTL writes the triangles of soup to w in binary STL format.
// Faces that are not triangles are skipped.
func WriteSTL[T geom.Float](w io.Writer, soup *PolygonSoup[T]) error {
	tris := soup.Triangles()
	if len(tris) == 0 {
		return errors.New("soup has no triangles to write")
	}
	if uint64(len(tris)) > math.MaxUint32 {
		return errors.New("too many triangles for STL triangle count")
	}
	var head [stlHeaderSize]byte
	binary.LittleEndian.PutUint32(head[80:], uint32(len(tris)))
	if _, err := w.Write(head[:]); err != nil {
		return err
	}
	var rec [stlRecordSize]byte
	for _, tri := range tris {
		putSTLRecord(rec[:], tri)
		if _, err := w.Write(rec[:]); err != nil {
			return err
		}
	}
	return nil
}

// putSTLRecord encodes tri into b in single precision. The attribute
// count is left zero.
func putSTLRecord[T geom.Float](b []byte, tri geom.Triangle[T]) {
	_ = b[stlRecordSize-1] // early bounds check
	putVec(b, tri.Normal())
	for i := 0; i < 3; i++ {
		putVec(b[12*(i+1):], tri.At(i))
	}
	binary.LittleEndian.PutUint16(b[48:], 0)
}

func putVec[T geom.Float](b []byte, v geom.Vector3[T]) {
	for i := 0; i < 3; i++ {
		binary.LittleEndian.PutUint32(b[4*i:], math.Float32bits(float32(v.At(i))))
	}
}
