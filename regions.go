package slicemaster

import "sort"

// Rect is an axis-aligned rectangle in pixel coordinates with exclusive
// right and bottom edges. Detected sprite regions are reported as Rects;
// the JSON tags match what region lists look like on the wire to a UI.
type Rect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Area returns Width*Height.
func (r Rect) Area() int {
	return r.Width * r.Height
}

// ContainsRect reports whether inner lies fully inside r.
// Shared edges count as inside, so a rect contains itself.
func (r Rect) ContainsRect(inner Rect) bool {
	return inner.X >= r.X &&
		inner.Y >= r.Y &&
		inner.X+inner.Width <= r.X+r.Width &&
		inner.Y+inner.Height <= r.Y+r.Height
}

// readingRowBand is the vertical distance, in pixels, within which two
// rects are considered to sit on the same row of a sprite sheet. Part of
// the ordering contract.
const readingRowBand = 15

// SuppressNested removes every rect fully contained in a larger (or equal)
// one. Rects are considered largest first; ties keep their incoming order,
// so of two identical rects the first survives. The input slice is not
// modified.
func SuppressNested(rects []Rect) []Rect {
	if len(rects) < 2 {
		return rects
	}

	byArea := make([]Rect, len(rects))
	copy(byArea, rects)
	sort.SliceStable(byArea, func(i, j int) bool {
		return byArea[i].Area() > byArea[j].Area()
	})

	kept := make([]Rect, 0, len(byArea))
	for _, r := range byArea {
		contained := false
		for _, outer := range kept {
			if outer.ContainsRect(r) {
				contained = true
				break
			}
		}
		if !contained {
			kept = append(kept, r)
		}
	}
	return kept
}

// SortReadingOrder sorts rects in place into sprite-sheet reading order:
// top to bottom, left to right. Two rects whose Y coordinates differ by at
// most readingRowBand pixels belong to the same row and order by X; all
// other pairs order by Y. The band comparison is a single comparator, not
// a bucketing pass, so slightly staggered rows keep the order the band
// implies.
func SortReadingOrder(rects []Rect) {
	sort.SliceStable(rects, func(i, j int) bool {
		a, b := rects[i], rects[j]
		dy := a.Y - b.Y
		if dy < 0 {
			dy = -dy
		}
		if dy <= readingRowBand {
			return a.X < b.X
		}
		return a.Y < b.Y
	})
}
