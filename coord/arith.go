package coord

import (
	"fmt"
	"math"
	"unsafe"

	"golang.org/x/exp/constraints"
)

func overflow(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrOverflow, fmt.Sprintf(format, args...))
}

func add[T constraints.Integer](a, b T) T {
	s := a + b
	if (b > 0 && s < a) || (b < 0 && s > a) {
		panic(overflow("%v + %v overflows %T", a, b, a))
	}
	return s
}

func sub[T constraints.Integer](a, b T) T {
	d := a - b
	if (b > 0 && d > a) || (b < 0 && d < a) {
		panic(overflow("%v - %v overflows %T", a, b, a))
	}
	return d
}

// convert converts v to To, panicking if the value changes in the
// process.
func convert[To, From constraints.Integer](v From) To {
	t := To(v)
	if (From(t) != v) || ((t < 0) != (v < 0)) {
		panic(overflow("%v does not fit in %T", v, t))
	}
	return t
}

func sign[T constraints.Signed](v T) T {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func abs[T constraints.Signed](v T) T {
	if v >= 0 {
		return v
	}

	n := -v
	if n < 0 {
		panic(overflow("absolute value of %v overflows %T", v, v))
	}
	return n
}

// limits returns the smallest and largest values of T.
func limits[T constraints.Integer]() (lo, hi T) {
	var zero T
	bits := unsafe.Sizeof(zero) * 8
	if ^zero < 0 {
		lo = T(1) << (bits - 1)
		return lo, ^lo
	}
	return 0, ^zero
}

// truncate converts v to T, rounding towards zero. NaN becomes zero
// and values outside of T's range saturate at its limits.
func truncate[T constraints.Integer](v float32) T {
	lo, hi := limits[T]()
	switch f := float64(v); {
	case math.IsNaN(f):
		return 0
	case f <= float64(lo):
		return lo
	case f >= float64(hi):
		return hi
	default:
		return T(v)
	}
}
