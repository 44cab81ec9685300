package gridseq

import (
	"iter"
	"math"

	"deedles.dev/gridseq/coord"
)

// Line yields the points of a straight line segment between two
// points, approximated on the integer grid using Bresenham's
// algorithm. The start point is always yielded first and the end point
// last, each exactly once. A Line whose start and end are the same
// yields only that point.
//
// The following axis is tracked as a float32, so its position is only
// exact while it stays within ±2^24. Beyond that, yielded points may
// drift from the ideal line by the float32 spacing at that magnitude
// and the last point may not have exactly the end's following-axis
// coordinate. The driving axis is always exact.
//
// A Line can not be restarted. Once it has been exhausted, a new one
// must be created with [NewLine].
type Line[C coord.Coord[C, D], D coord.Diff[D]] struct {
	// The line is walked along a driving axis, a, one unit at a time,
	// while the following axis, b, is tracked fractionally. a is y if
	// the line is steep and x otherwise.

	done  bool
	steep bool
	stepA D
	stepB float32
	a     C
	b     float32
	endA  C
}

// NewLine returns a Line from start to end. It panics with an error
// wrapping [coord.ErrOverflow] if the distance between the points can
// not be represented by the difference type of C. See [Line] for the
// precision of the points yielded for coordinates beyond ±2^24.
func NewLine[C coord.Coord[C, D], D coord.Diff[D]](start, end coord.Point[C]) Line[C, D] {
	dx := end.X.Diff().Sub(start.X.Diff())
	dy := end.Y.Diff().Sub(start.Y.Diff())

	steep := dy.Abs().Cmp(dx.Abs()) > 0

	startA, endA, deltaA, startB, deltaB := start.X, end.X, dx, start.Y, dy
	if steep {
		startA, endA, deltaA, startB, deltaB = start.Y, end.Y, dy, start.X, dx
	}

	return Line[C, D]{
		steep: steep,
		stepA: deltaA.Sign(),
		stepB: deltaB.Float32() / deltaA.Abs().Float32(),
		a:     startA,
		b:     startB.Float32(),
		endA:  endA,
	}
}

// TryNewLine is like [NewLine] but returns an error instead of
// panicking.
func TryNewLine[C coord.Coord[C, D], D coord.Diff[D]](start, end coord.Point[C]) (line Line[C, D], err error) {
	defer catch(&err)
	return NewLine[C, D](start, end), nil
}

// LinePoints returns an iterator over the points of a line from start
// to end. Each iteration walks a fresh [Line].
func LinePoints[C coord.Coord[C, D], D coord.Diff[D]](start, end coord.Point[C]) iter.Seq[coord.Point[C]] {
	return func(yield func(coord.Point[C]) bool) {
		line := NewLine[C, D](start, end)
		line.All()(yield)
	}
}

// Next returns the next point of the line. If the line has been
// exhausted, it returns false.
func (line *Line[C, D]) Next() (p coord.Point[C], ok bool) {
	if line.done {
		return p, false
	}

	var zero C
	b := zero.FromFloat32(float32(math.Round(float64(line.b))))

	p = coord.Pt(line.a, b)
	if line.steep {
		p = coord.Pt(b, line.a)
	}

	if line.a == line.endA {
		line.done = true
		return p, true
	}

	line.a = zero.FromDiff(line.a.Diff().Add(line.stepA))
	line.b += line.stepB
	return p, true
}

// Fill stores the next points of the line into dst, stopping when
// either dst is full or the line is exhausted. It returns the number of
// points stored.
func (line *Line[C, D]) Fill(dst []coord.Point[C]) int {
	return fill(dst, line.All())
}

// All returns an iterator that yields the remaining points of the
// line, consuming them as it goes.
func (line *Line[C, D]) All() iter.Seq[coord.Point[C]] {
	return func(yield func(coord.Point[C]) bool) {
		for p, ok := line.Next(); ok; p, ok = line.Next() {
			if !yield(p) {
				return
			}
		}
	}
}
