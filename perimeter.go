package gridseq

import (
	"fmt"
	"iter"

	"deedles.dev/gridseq/coord"
)

// Perimeter yields the points on the border of an axis-aligned
// rectangle, clockwise, starting at the top-left corner. Each point of
// the border is yielded exactly once. A rectangle with a width or
// height of zero has no points.
//
// Like [Line], a Perimeter can not be restarted.
type Perimeter[C coord.Coord[C, D], D coord.Diff[D]] struct {
	left, top     C
	right, bottom C
	width, height C

	cur coord.Point[C]
	ok  bool
}

// PerimeterWithDimensions returns a Perimeter of the rectangle whose
// top-left corner is origin and whose width and height are size.X and
// size.Y. It panics with an error wrapping [ErrNegativeSize] if either
// dimension is negative.
func PerimeterWithDimensions[C coord.Coord[C, D], D coord.Diff[D]](origin, size coord.Point[C]) Perimeter[C, D] {
	p, err := TryPerimeterWithDimensions[C, D](origin, size)
	if err != nil {
		panic(err)
	}
	return p
}

// TryPerimeterWithDimensions is like [PerimeterWithDimensions] but
// returns an error instead of panicking, including if the bottom-right
// corner of the rectangle overflows C.
func TryPerimeterWithDimensions[C coord.Coord[C, D], D coord.Diff[D]](origin, size coord.Point[C]) (p Perimeter[C, D], err error) {
	var zero C
	if (size.X.Cmp(zero) < 0) || (size.Y.Cmp(zero) < 0) {
		return p, fmt.Errorf("%w: %v", ErrNegativeSize, size)
	}

	p = Perimeter[C, D]{
		left:   origin.X,
		top:    origin.Y,
		width:  size.X,
		height: size.Y,
	}
	if (size.X == zero) || (size.Y == zero) {
		return p, nil
	}

	defer catch(&err)

	one := size.X.One()
	p.right = origin.X.Add(size.X.Sub(one))
	p.bottom = origin.Y.Add(size.Y.Sub(one))
	p.cur, p.ok = origin, true
	return p, nil
}

// PerimeterWithCorners returns a Perimeter of the rectangle with the
// given inclusive corners. It is equivalent to
//
//	PerimeterWithDimensions(topLeft, coord.Pt(
//		bottomRight.X - topLeft.X + 1,
//		bottomRight.Y - topLeft.Y + 1,
//	))
//
// It panics with an error wrapping [ErrInvertedCorners] if bottomRight
// is above or to the left of topLeft.
func PerimeterWithCorners[C coord.Coord[C, D], D coord.Diff[D]](topLeft, bottomRight coord.Point[C]) Perimeter[C, D] {
	p, err := TryPerimeterWithCorners[C, D](topLeft, bottomRight)
	if err != nil {
		panic(err)
	}
	return p
}

// TryPerimeterWithCorners is like [PerimeterWithCorners] but returns
// an error instead of panicking, including if the size of the
// rectangle overflows C.
func TryPerimeterWithCorners[C coord.Coord[C, D], D coord.Diff[D]](topLeft, bottomRight coord.Point[C]) (p Perimeter[C, D], err error) {
	if (topLeft.X.Cmp(bottomRight.X) > 0) || (topLeft.Y.Cmp(bottomRight.Y) > 0) {
		return p, fmt.Errorf("%w: %v, %v", ErrInvertedCorners, topLeft, bottomRight)
	}

	defer catch(&err)

	one := topLeft.X.One()
	size := coord.Pt(
		bottomRight.X.Sub(topLeft.X).Add(one),
		bottomRight.Y.Sub(topLeft.Y).Add(one),
	)
	return TryPerimeterWithDimensions[C, D](topLeft, size)
}

// PerimeterPoints returns an iterator over the points of the perimeter
// of the rectangle with the given origin and size. Each iteration walks
// a fresh [Perimeter].
func PerimeterPoints[C coord.Coord[C, D], D coord.Diff[D]](origin, size coord.Point[C]) iter.Seq[coord.Point[C]] {
	return func(yield func(coord.Point[C]) bool) {
		p := PerimeterWithDimensions[C, D](origin, size)
		p.All()(yield)
	}
}

// Bounds returns the inclusive top-left and bottom-right corners of the
// rectangle. If the rectangle is empty, ok is false.
func (p *Perimeter[C, D]) Bounds() (min, max coord.Point[C], ok bool) {
	var zero C
	if (p.width == zero) || (p.height == zero) {
		return min, max, false
	}

	return coord.Pt(p.left, p.top), coord.Pt(p.right, p.bottom), true
}

// EdgesAt returns the edges of the rectangle that pt lies on. A point
// at a corner lies on two edges and a point of a rectangle that is a
// single row or column tall lies on both of the opposing edges. It
// returns EdgeNone if pt is not on the perimeter.
func (p *Perimeter[C, D]) EdgesAt(pt coord.Point[C]) Edges {
	min, max, ok := p.Bounds()
	if !ok {
		return EdgeNone
	}
	if (pt.X.Cmp(min.X) < 0) || (pt.X.Cmp(max.X) > 0) || (pt.Y.Cmp(min.Y) < 0) || (pt.Y.Cmp(max.Y) > 0) {
		return EdgeNone
	}

	var edges Edges
	if pt.Y == min.Y {
		edges |= EdgeTop
	}
	if pt.Y == max.Y {
		edges |= EdgeBottom
	}
	if pt.X == min.X {
		edges |= EdgeLeft
	}
	if pt.X == max.X {
		edges |= EdgeRight
	}
	return edges
}

// Fill stores the next points of the perimeter into dst, stopping when
// either dst is full or the perimeter is exhausted. It returns the
// number of points stored.
func (p *Perimeter[C, D]) Fill(dst []coord.Point[C]) int {
	return fill(dst, p.All())
}

// Next returns the next point of the perimeter. If the perimeter has
// been exhausted, it returns false.
func (p *Perimeter[C, D]) Next() (pt coord.Point[C], ok bool) {
	if !p.ok {
		return pt, false
	}

	pt = p.cur
	p.cur = p.advance(pt)
	p.ok = (p.cur.X != p.left) || (p.cur.Y != p.top)
	return pt, true
}

// All returns an iterator that yields the remaining points of the
// perimeter, consuming them as it goes.
func (p *Perimeter[C, D]) All() iter.Seq[coord.Point[C]] {
	return func(yield func(coord.Point[C]) bool) {
		for pt, ok := p.Next(); ok; pt, ok = p.Next() {
			if !yield(pt) {
				return
			}
		}
	}
}

func (p *Perimeter[C, D]) advance(pt coord.Point[C]) coord.Point[C] {
	one := p.width.One()

	switch {
	case p.width == one:
		return coord.Pt(p.left, p.top.Add(pt.Y.Sub(p.top).Add(one).Rem(p.height)))
	case p.height == one:
		return coord.Pt(p.left.Add(pt.X.Sub(p.left).Add(one).Rem(p.width)), p.top)
	}

	// Each edge is walked up to, but not including, the corner that
	// ends it, so a corner always belongs to the edge that it starts.
	edges := p.EdgesAt(pt)
	switch {
	case (edges&EdgeTop != 0) && (edges&EdgeRight == 0):
		pt.X = pt.X.Add(one)
	case (edges&EdgeRight != 0) && (edges&EdgeBottom == 0):
		pt.Y = pt.Y.Add(one)
	case (edges&EdgeBottom != 0) && (edges&EdgeLeft == 0):
		pt.X = pt.X.Sub(one)
	case (edges&EdgeLeft != 0) && (edges&EdgeTop == 0):
		pt.Y = pt.Y.Sub(one)
	default:
		panic(fmt.Errorf("point %v is not on perimeter", pt))
	}
	return pt
}
