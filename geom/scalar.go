// Package geom implements 3D vector algebra, axis aligned boxes and
// triangles generic over single and double precision floats.
package geom

import (
	"errors"
	"math"
	"strconv"

	"github.com/chewxy/math32"
)

// Float is the set of scalar types geometry is defined over.
type Float interface {
	float32 | float64
}

// ErrIndexOutOfRange is the panic value (wrapped) for component accesses
// outside of 0..2.
var ErrIndexOutOfRange = errors.New("index out of range")

// IndexError is panicked when a fixed-size value is indexed out of bounds.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return "index out of range [" + strconv.Itoa(e.Index) + "] with length " + strconv.Itoa(e.Len)
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }

// OutOfRange panics with an *IndexError.
func OutOfRange(i, n int) {
	panic(&IndexError{Index: i, Len: n})
}

// ParseFloat parses s as a decimal T using the bit size of T. Values too
// large for T parse as ±Inf without error. Hexadecimal mantissas such as
// 0x1p1 are rejected.
func ParseFloat[T Float](s string) (T, error) {
	var zero T
	if isHex(s) {
		return zero, &strconv.NumError{Func: "ParseFloat", Num: s, Err: strconv.ErrSyntax}
	}
	f, err := strconv.ParseFloat(s, bitSize(zero))
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return zero, err
	}
	return T(f), nil
}

func isHex(s string) bool {
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}

func bitSize[T Float](v T) int {
	if _, ok := any(v).(float32); ok {
		return 32
	}
	return 64
}

func sqrt[T Float](x T) T {
	switch v := any(x).(type) {
	case float32:
		return T(math32.Sqrt(v))
	case float64:
		return T(math.Sqrt(v))
	}
	panic("unreachable")
}

func minf[T Float](a, b T) T {
	switch v := any(a).(type) {
	case float32:
		return T(math32.Min(v, float32(b)))
	case float64:
		return T(math.Min(v, float64(b)))
	}
	panic("unreachable")
}

func maxf[T Float](a, b T) T {
	switch v := any(a).(type) {
	case float32:
		return T(math32.Max(v, float32(b)))
	case float64:
		return T(math.Max(v, float64(b)))
	}
	panic("unreachable")
}

func absf[T Float](a T) T {
	switch v := any(a).(type) {
	case float32:
		return T(math32.Abs(v))
	case float64:
		return T(math.Abs(v))
	}
	panic("unreachable")
}
