package gridseq

import "strings"

// Edges is a bitmask representing zero or more edges of a rectangle.
type Edges uint32

const (
	EdgeNone Edges = 0
	EdgeTop  Edges = 1 << (iota - 1)
	EdgeBottom
	EdgeLeft
	EdgeRight
)

var edgeNames = [...]string{"top", "bottom", "left", "right"}

func (e Edges) String() string {
	if e == EdgeNone {
		return "none"
	}

	var names []string
	for i, name := range edgeNames {
		if e&(1<<i) != 0 {
			names = append(names, name)
		}
	}
	return strings.Join(names, "|")
}
