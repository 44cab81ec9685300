// Package coord defines the capabilities that an integer type needs in
// order to be used as a grid coordinate, along with implementations of
// those capabilities for integers of every width from 8 to 128 bits,
// both signed and unsigned.
//
// Each coordinate type C has an associated signed difference type D of
// the same width. Signed coordinate types are their own difference
// type, while unsigned ones map to the signed type of equal width, so
// [Uint16] uses [Int16], [Uint128] uses [Int128], and so on.
//
// Conversions and arithmetic that do not fit in the destination type
// panic with an error wrapping [ErrOverflow]. Such a panic indicates
// that a caller supplied coordinates too large for the type that they
// chose, not a condition to be handled at runtime.
package coord

import (
	"errors"
	"fmt"
)

// ErrOverflow is wrapped by the values of panics caused by a value not
// fitting into the type that it is being converted to or computed in.
var ErrOverflow = errors.New("coordinate overflow")

//go:generate go run mkcoord.go

// Diff is a constraint for signed difference types. D is always the
// implementing type itself.
type Diff[D any] interface {
	comparable

	// Add returns the sum of the receiver and v, panicking on
	// overflow.
	Add(v D) D

	// Sub returns the receiver minus v, panicking on overflow.
	Sub(v D) D

	// Cmp returns -1, 0, or 1 if the receiver is less than, equal to,
	// or greater than v respectively.
	Cmp(v D) int

	// Sign returns -1, 0, or 1 depending on the sign of the receiver.
	Sign() D

	// Abs returns the absolute value of the receiver. It panics if
	// the receiver is the most negative value of its type, as that
	// value has no positive counterpart.
	Abs() D

	// Float32 converts the receiver to a float32.
	Float32() float32
}

// Coord is a constraint for types that can be used as grid
// coordinates. C is always the implementing type itself and D is its
// difference type.
//
// The zero value of C is treated as the coordinate zero.
type Coord[C any, D Diff[D]] interface {
	comparable

	// Add returns the sum of the receiver and v, panicking on
	// overflow.
	Add(v C) C

	// Sub returns the receiver minus v, panicking on overflow.
	Sub(v C) C

	// Rem returns the remainder of the receiver divided by v,
	// truncated towards zero.
	Rem(v C) C

	// Cmp returns -1, 0, or 1 if the receiver is less than, equal to,
	// or greater than v respectively.
	Cmp(v C) int

	// One returns the coordinate one. The receiver is ignored.
	One() C

	// Float32 converts the receiver to a float32.
	Float32() float32

	// FromFloat32 converts v to a coordinate, truncating towards
	// zero. The receiver is ignored.
	FromFloat32(v float32) C

	// Diff converts the receiver to its difference type. It panics if
	// the value is out of the difference type's range.
	Diff() D

	// FromDiff converts d to a coordinate. It panics if d is out of
	// the coordinate type's range. The receiver is ignored.
	FromDiff(d D) C
}

// Point is an X, Y coordinate pair.
type Point[C any] struct {
	X, Y C
}

// Pt is shorthand for Point[C]{X: x, Y: y}.
func Pt[C any](x, y C) Point[C] {
	return Point[C]{X: x, Y: y}
}

func (p Point[C]) String() string {
	return fmt.Sprintf("(%v,%v)", p.X, p.Y)
}
