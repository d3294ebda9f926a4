package geometry

import (
	"cmp"
	"slices"
)

// Intersection records a hit at parameter T on the shape with index Object in
// the owning world's shape list.
type Intersection struct {
	T      float64
	Object int
}

// Intersections is a list of hits along one ray.
type Intersections []Intersection

// Tag appends one Intersection per parameter, all referring to object.
func (xs Intersections) Tag(object int, ts ...float64) Intersections {
	for _, t := range ts {
		xs = append(xs, Intersection{T: t, Object: object})
	}
	return xs
}

// Sort orders the list by T. Equal T values keep their insertion order so the
// result is deterministic.
func (xs Intersections) Sort() {
	slices.SortStableFunc(xs, func(a, b Intersection) int {
		return cmp.Compare(a.T, b.T)
	})
}

// Hit returns the visible intersection: the one with the smallest
// non-negative T. It does not require the list to be sorted.
func (xs Intersections) Hit() (Intersection, bool) {
	best := -1
	for i, x := range xs {
		if x.T < 0 {
			continue
		}
		if best < 0 || x.T < xs[best].T {
			best = i
		}
	}
	if best < 0 {
		return Intersection{}, false
	}
	return xs[best], true
}
