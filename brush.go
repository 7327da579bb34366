package slicemaster

// EraseCircle zeroes the alpha of every pixel within radius of (cx, cy).
// The disc is hard-edged; run FeatherAlpha afterwards to soften strokes.
// RGB bytes are untouched. A radius of 0 or less erases nothing, and the
// disc may extend past the pixmap edges.
func EraseCircle(pm *Pixmap, cx, cy, radius int) {
	if pm == nil || radius <= 0 {
		return
	}
	stampCircle(pm, cx, cy, radius, func(i int) {
		pm.data[i*4+3] = 0
	})
}

// RestoreCircle copies RGBA bytes back from original for every pixel
// within radius of (cx, cy), undoing earlier erasing. original must be an
// untouched copy with the same dimensions as pm; a nil or mismatched
// original returns ErrInvalidDimensions.
func RestoreCircle(pm, original *Pixmap, cx, cy, radius int) error {
	if pm == nil || original == nil || original.width != pm.width || original.height != pm.height {
		return ErrInvalidDimensions
	}
	if radius <= 0 {
		return nil
	}
	stampCircle(pm, cx, cy, radius, func(i int) {
		copy(pm.data[i*4:i*4+4], original.data[i*4:i*4+4])
	})
	return nil
}

// stampCircle calls apply for every in-bounds flat index within radius of
// (cx, cy).
func stampCircle(pm *Pixmap, cx, cy, radius int, apply func(i int)) {
	w, h := pm.width, pm.height
	r2 := radius * radius

	minY := cy - radius
	if minY < 0 {
		minY = 0
	}
	maxY := cy + radius
	if maxY > h-1 {
		maxY = h - 1
	}
	minX := cx - radius
	if minX < 0 {
		minX = 0
	}
	maxX := cx + radius
	if maxX > w-1 {
		maxX = w - 1
	}

	for y := minY; y <= maxY; y++ {
		dy := y - cy
		for x := minX; x <= maxX; x++ {
			dx := x - cx
			if dx*dx+dy*dy <= r2 {
				apply(y*w + x)
			}
		}
	}
}
