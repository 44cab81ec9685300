package gridseq_test

import (
	"iter"
	"testing"

	"deedles.dev/gridseq/coord"
	"deedles.dev/xiter"
	"github.com/stretchr/testify/require"
)

// pts pairs up coords into points.
func pts[C any](coords ...C) []coord.Point[C] {
	points := make([]coord.Point[C], 0, len(coords)/2)
	for i := 0; i < len(coords); i += 2 {
		points = append(points, coord.Pt(coords[i], coords[i+1]))
	}
	return points
}

func requireSequence[C comparable](t *testing.T, seq iter.Seq[coord.Point[C]], expected []coord.Point[C]) {
	t.Helper()

	var n int
	for i, p := range xiter.Enumerate(seq) {
		require.Less(t, i, len(expected), "extraneous point %v", p)
		require.Equal(t, expected[i], p, "point %v", i)
		n++
	}
	require.Equal(t, len(expected), n, "missing points")
}
