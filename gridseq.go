// Package gridseq provides sequences of grid coordinates for use in
// grid-based algorithms such as rasterization, pathfinding, and
// collision scanning.
//
// [Line] yields the points of a straight line segment using
// Bresenham's algorithm and [Perimeter] yields the border of an
// axis-aligned rectangle in clockwise order. Both work with any
// coordinate type from package coord, and neither needs a grid to
// exist: they only enumerate coordinates.
//
// Constructors panic when given arguments that they can't handle. The
// Try variants of each constructor return those failures as errors
// instead.
package gridseq

import (
	"errors"
	"iter"

	"deedles.dev/gridseq/coord"
	"deedles.dev/xiter"
)

var (
	// ErrNegativeSize is returned when a rectangle is given a negative
	// width or height.
	ErrNegativeSize = errors.New("negative size")

	// ErrInvertedCorners is returned when a rectangle's bottom-right
	// corner is above or to the left of its top-left corner.
	ErrInvertedCorners = errors.New("inverted corners")
)

// catch recovers from a panic caused by a coordinate overflow and
// stores its value in err. Other panics are propagated.
func catch(err *error) {
	switch r := recover().(type) {
	case nil:
	case error:
		if !errors.Is(r, coord.ErrOverflow) {
			panic(r)
		}
		*err = r
	default:
		panic(r)
	}
}

// fill stores points from seq into dst until either dst is full or seq
// ends. No point beyond the ones stored is pulled from seq.
func fill[C any](dst []coord.Point[C], seq iter.Seq[coord.Point[C]]) (n int) {
	if len(dst) == 0 {
		return 0
	}

	for i, p := range xiter.Enumerate(seq) {
		dst[i] = p
		n = i + 1
		if n == len(dst) {
			break
		}
	}
	return n
}
