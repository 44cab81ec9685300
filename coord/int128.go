package coord

import (
	"math"
	"math/big"

	"lukechampine.com/uint128"
)

var (
	maxUint128 = uint128.New(math.MaxUint64, math.MaxUint64)
	minInt128  = uint128.New(0, 1<<63)
	maxInt128  = uint128.New(math.MaxUint64, math.MaxInt64)
	two128     = new(big.Int).Lsh(big.NewInt(1), 128)
)

// Uint128 is a 128-bit unsigned coordinate. Its difference type is
// [Int128].
type Uint128 struct {
	u uint128.Uint128
}

// NewUint128 returns the Uint128 with the given high and low 64 bits.
func NewUint128(hi, lo uint64) Uint128 {
	return Uint128{u: uint128.New(lo, hi)}
}

// Uint128From64 returns v as a Uint128.
func Uint128From64(v uint64) Uint128 {
	return Uint128{u: uint128.From64(v)}
}

// Big returns c as a big.Int.
func (c Uint128) Big() *big.Int { return c.u.Big() }

func (c Uint128) String() string { return c.u.String() }

func (c Uint128) Add(v Uint128) Uint128 {
	s := c.u.AddWrap(v.u)
	if s.Cmp(c.u) < 0 {
		panic(overflow("%v + %v overflows %T", c, v, c))
	}
	return Uint128{u: s}
}

func (c Uint128) Sub(v Uint128) Uint128 {
	if c.u.Cmp(v.u) < 0 {
		panic(overflow("%v - %v overflows %T", c, v, c))
	}
	return Uint128{u: c.u.SubWrap(v.u)}
}

func (c Uint128) Rem(v Uint128) Uint128 { return Uint128{u: c.u.Mod(v.u)} }

func (c Uint128) Cmp(v Uint128) int { return c.u.Cmp(v.u) }

func (Uint128) One() Uint128 { return Uint128From64(1) }

func (c Uint128) Float32() float32 { return bigFloat32(c.Big()) }

func (Uint128) FromFloat32(v float32) Uint128 {
	switch f := float64(v); {
	case math.IsNaN(f), f <= 0:
		return Uint128{}
	case math.IsInf(f, 1):
		return Uint128{u: maxUint128}
	default:
		return Uint128{u: uint128.FromBig(bigTrunc(f))}
	}
}

func (c Uint128) Diff() Int128 {
	if c.u.Hi>>63 != 0 {
		panic(overflow("%v does not fit in %T", c, Int128{}))
	}
	return Int128{u: c.u}
}

func (Uint128) FromDiff(d Int128) Uint128 {
	if d.neg() {
		panic(overflow("%v does not fit in %T", d, Uint128{}))
	}
	return Uint128{u: d.u}
}

// Int128 is a 128-bit signed coordinate. It is its own difference
// type.
type Int128 struct {
	// u holds the value in two's complement.
	u uint128.Uint128
}

// NewInt128 returns the Int128 whose two's complement representation
// has the given high and low 64 bits.
func NewInt128(hi, lo uint64) Int128 {
	return Int128{u: uint128.New(lo, hi)}
}

// Int128From64 returns v as an Int128.
func Int128From64(v int64) Int128 {
	u := uint128.From64(uint64(v))
	if v < 0 {
		u.Hi = math.MaxUint64
	}
	return Int128{u: u}
}

func (c Int128) neg() bool { return c.u.Hi>>63 != 0 }

// magnitude returns the absolute value of c as an unsigned integer,
// which can represent the magnitude of every Int128.
func (c Int128) magnitude() uint128.Uint128 {
	if c.neg() {
		return negate(c.u)
	}
	return c.u
}

// Big returns c as a big.Int.
func (c Int128) Big() *big.Int {
	b := c.u.Big()
	if c.neg() {
		b.Sub(b, two128)
	}
	return b
}

func (c Int128) String() string { return c.Big().String() }

func (c Int128) Add(v Int128) Int128 {
	s := Int128{u: c.u.AddWrap(v.u)}
	if (c.neg() == v.neg()) && (s.neg() != c.neg()) {
		panic(overflow("%v + %v overflows %T", c, v, c))
	}
	return s
}

func (c Int128) Sub(v Int128) Int128 {
	d := Int128{u: c.u.SubWrap(v.u)}
	if (c.neg() != v.neg()) && (d.neg() != c.neg()) {
		panic(overflow("%v - %v overflows %T", c, v, c))
	}
	return d
}

func (c Int128) Rem(v Int128) Int128 {
	r := c.magnitude().Mod(v.magnitude())
	if c.neg() {
		r = negate(r)
	}
	return Int128{u: r}
}

func (c Int128) Cmp(v Int128) int {
	if c.neg() != v.neg() {
		if c.neg() {
			return -1
		}
		return 1
	}
	return c.u.Cmp(v.u)
}

func (Int128) One() Int128 { return Int128From64(1) }

func (c Int128) Float32() float32 { return bigFloat32(c.Big()) }

func (Int128) FromFloat32(v float32) Int128 {
	switch f := float64(v); {
	case math.IsNaN(f):
		return Int128{}
	case f >= 0x1p127:
		return Int128{u: maxInt128}
	case f <= -0x1p127:
		return Int128{u: minInt128}
	}

	b := bigTrunc(float64(v))
	if b.Sign() < 0 {
		return Int128{u: negate(uint128.FromBig(b.Neg(b)))}
	}
	return Int128{u: uint128.FromBig(b)}
}

func (c Int128) Diff() Int128 { return c }

func (Int128) FromDiff(d Int128) Int128 { return d }

func (c Int128) Sign() Int128 {
	switch {
	case c.neg():
		return Int128From64(-1)
	case c.u.IsZero():
		return Int128{}
	default:
		return Int128From64(1)
	}
}

func (c Int128) Abs() Int128 {
	if !c.neg() {
		return c
	}
	if c.u == minInt128 {
		panic(overflow("absolute value of %v overflows %T", c, c))
	}
	return Int128{u: negate(c.u)}
}

func negate(u uint128.Uint128) uint128.Uint128 {
	return uint128.Uint128{}.SubWrap(u)
}

func bigFloat32(b *big.Int) float32 {
	f, _ := new(big.Float).SetInt(b).Float32()
	return f
}

// bigTrunc returns f truncated towards zero. f must be finite.
func bigTrunc(f float64) *big.Int {
	b, _ := big.NewFloat(f).Int(nil)
	return b
}
