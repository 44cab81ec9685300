package coord_test

import (
	"math"
	"math/big"
	"testing"

	"deedles.dev/gridseq/coord"
	"github.com/stretchr/testify/require"
)

var (
	minInt128  = coord.NewInt128(1<<63, 0)
	maxInt128  = coord.NewInt128(math.MaxInt64, math.MaxUint64)
	maxUint128 = coord.NewUint128(math.MaxUint64, math.MaxUint64)
)

func TestInt128String(t *testing.T) {
	require.Equal(t, "-170141183460469231731687303715884105728", minInt128.String())
	require.Equal(t, "170141183460469231731687303715884105727", maxInt128.String())
	require.Equal(t, "340282366920938463463374607431768211455", maxUint128.String())
	require.Equal(t, "-5", coord.Int128From64(-5).String())
	require.Zero(t, big.NewInt(math.MinInt64).Cmp(coord.Int128From64(math.MinInt64).Big()))
}

func TestInt128Arithmetic(t *testing.T) {
	a := coord.Int128From64(math.MaxInt64)
	b := a.Add(a)
	require.Equal(t, "18446744073709551614", b.String())
	require.Equal(t, a, b.Sub(a))
	require.Equal(t, coord.Int128From64(-1), coord.Int128{}.Sub(coord.Int128From64(1)))

	requireOverflow(t, func() { maxInt128.Add(coord.Int128From64(1)) })
	requireOverflow(t, func() { minInt128.Sub(coord.Int128From64(1)) })
	requireOverflow(t, func() { maxInt128.Sub(coord.Int128From64(-1)) })
	require.Equal(t, coord.Int128From64(-1), maxInt128.Add(minInt128))
}

func TestInt128Compare(t *testing.T) {
	neg := coord.Int128From64(-3)
	pos := coord.Int128From64(3)
	require.Equal(t, -1, neg.Cmp(pos))
	require.Equal(t, 1, pos.Cmp(neg))
	require.Equal(t, -1, minInt128.Cmp(neg))
	require.Equal(t, 1, maxInt128.Cmp(pos))
	require.Equal(t, -1, coord.Int128From64(-4).Cmp(neg))
	require.Equal(t, 0, neg.Cmp(coord.Int128From64(-3)))
}

func TestInt128Rem(t *testing.T) {
	require.Equal(t, coord.Int128From64(-7%3), coord.Int128From64(-7).Rem(coord.Int128From64(3)))
	require.Equal(t, coord.Int128From64(7%-3), coord.Int128From64(7).Rem(coord.Int128From64(-3)))
	require.Equal(t, coord.Int128From64(-2), minInt128.Rem(coord.Int128From64(3)))
}

func TestInt128SignAbs(t *testing.T) {
	require.Equal(t, coord.Int128From64(-1), minInt128.Sign())
	require.Equal(t, coord.Int128{}, coord.Int128{}.Sign())
	require.Equal(t, coord.Int128From64(1), maxInt128.Sign())
	require.Equal(t, maxInt128, minInt128.Add(coord.Int128From64(1)).Abs())
	require.Equal(t, coord.Int128From64(12), coord.Int128From64(-12).Abs())

	requireOverflow(t, func() { minInt128.Abs() })
}

func TestUint128Diff(t *testing.T) {
	require.Equal(t, maxInt128, coord.NewUint128(math.MaxInt64, math.MaxUint64).Diff())
	require.Equal(t, coord.Uint128From64(9), coord.Uint128{}.FromDiff(coord.Int128From64(9)))

	requireOverflow(t, func() { maxUint128.Diff() })
	requireOverflow(t, func() { coord.NewUint128(1<<63, 0).Diff() })
	requireOverflow(t, func() { coord.Uint128{}.FromDiff(coord.Int128From64(-1)) })
	requireOverflow(t, func() { maxUint128.Add(coord.Uint128From64(1)) })
	requireOverflow(t, func() { coord.Uint128{}.Sub(coord.Uint128From64(1)) })
}

func TestInt128Float32(t *testing.T) {
	require.Equal(t, float32(-3), coord.Int128From64(-3).Float32())
	require.Equal(t, float32(0x1p127), maxInt128.Float32())
	require.Equal(t, float32(-0x1p127), minInt128.Float32())
	require.Equal(t, float32(0x1p100), coord.NewUint128(1<<36, 0).Float32())

	var i coord.Int128
	require.Equal(t, coord.Int128From64(-2), i.FromFloat32(-2.7))
	require.Equal(t, coord.Int128From64(1<<40), i.FromFloat32(0x1p40))
	require.Equal(t, maxInt128, i.FromFloat32(float32(math.Inf(1))))
	require.Equal(t, minInt128, i.FromFloat32(-0x1p127))
	require.Equal(t, coord.Int128{}, i.FromFloat32(float32(math.NaN())))

	var u coord.Uint128
	require.Equal(t, coord.Uint128From64(2), u.FromFloat32(2.7))
	require.Equal(t, coord.NewUint128(1<<36, 0), u.FromFloat32(0x1p100))
	require.Equal(t, coord.Uint128{}, u.FromFloat32(-2.7))
	require.Equal(t, maxUint128, u.FromFloat32(float32(math.Inf(1))))
}
