//go:build go1.24

package gridseq_test

import (
	"testing"

	"deedles.dev/gridseq"
	"deedles.dev/gridseq/coord"
)

func BenchmarkLine(b *testing.B) {
	start, end := coord.Pt[coord.Int32](-500, 20), coord.Pt[coord.Int32](700, -333)
	for b.Loop() {
		for range gridseq.LinePoints(start, end) {
		}
	}
}

func BenchmarkPerimeter(b *testing.B) {
	origin, size := coord.Pt[coord.Uint16](10, 10), coord.Pt[coord.Uint16](300, 200)
	for b.Loop() {
		for range gridseq.PerimeterPoints(origin, size) {
		}
	}
}
