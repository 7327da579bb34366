package slicemaster

// wandMatcher builds the pixel predicate for one wand call. A target with
// alpha 0 switches to transparency matching: the tolerance scales an alpha
// ceiling instead of an RGB distance. In color mode, already-transparent
// pixels never match regardless of their RGB bytes.
func wandMatcher(target Color, tolerance float64) func(Color) bool {
	if tolerance < 0 {
		tolerance = 0
	}
	if tolerance > 100 {
		tolerance = 100
	}

	if target.A == 0 {
		maxAlpha := tolerance / 100 * 255
		return func(c Color) bool {
			return float64(c.A) < maxAlpha
		}
	}

	maxDist := tolerance / 100 * MaxRGBDistance
	return func(c Color) bool {
		if c.A == 0 {
			return false
		}
		return Dist(c, target) <= maxDist
	}
}

// fillWalk drives one wand pass, calling apply for every matched pixel
// index, and returns the match count. Contiguous mode runs an explicit
// stack over 4-connected neighbors from the seed, guarded by a visited
// mask; a seed out of bounds or not matching makes the walk a no-op.
// Global mode is a single pass over all pixels, skipping pixels that are
// already fully transparent.
func fillWalk(pm *Pixmap, seedX, seedY int, match func(Color) bool, contiguous bool, apply func(i int)) int {
	w, h := pm.width, pm.height
	n := 0

	if !contiguous {
		for i := 0; i < w*h; i++ {
			if pm.data[i*4+3] == 0 {
				continue
			}
			if match(pm.colorAt(i)) {
				apply(i)
				n++
			}
		}
		return n
	}

	if seedX < 0 || seedX >= w || seedY < 0 || seedY >= h {
		return 0
	}
	if !match(pm.colorAt(seedY*w + seedX)) {
		return 0
	}

	visited := make([]bool, w*h)
	stack := make([]int, 0, 256)
	stack = append(stack, seedY*w+seedX)

	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[i] {
			continue
		}
		visited[i] = true
		if !match(pm.colorAt(i)) {
			continue
		}
		apply(i)
		n++

		x, y := i%w, i/w
		if x > 0 && !visited[i-1] {
			stack = append(stack, i-1)
		}
		if x < w-1 && !visited[i+1] {
			stack = append(stack, i+1)
		}
		if y > 0 && !visited[i-w] {
			stack = append(stack, i-w)
		}
		if y < h-1 && !visited[i+w] {
			stack = append(stack, i+w)
		}
	}
	return n
}

// FloodFill erases the pixels a magic wand selects: every matched pixel
// has its alpha zeroed in place, RGB bytes untouched. The target color is
// usually sampled at the seed; tolerance is a percentage in [0, 100] and
// clamps. Contiguous mode erases the 4-connected region around the seed;
// global mode erases every match in the image and ignores the seed.
func FloodFill(pm *Pixmap, seedX, seedY int, target Color, tolerance float64, contiguous bool) {
	if pm == nil || len(pm.data) == 0 {
		return
	}
	match := wandMatcher(target, tolerance)
	cleared := fillWalk(pm, seedX, seedY, match, contiguous, func(i int) {
		pm.data[i*4+3] = 0
	})
	Logger().Debug("flood fill",
		"seedX", seedX,
		"seedY", seedY,
		"contiguous", contiguous,
		"tolerance", tolerance,
		"cleared", cleared)
}

// MatchMask runs the same walk as FloodFill without mutating the pixmap
// and returns the selection: matched pixels are 255 in the result. Useful
// for previewing a wand click before committing it with
// [Pixmap.EraseMasked].
func MatchMask(pm *Pixmap, seedX, seedY int, target Color, tolerance float64, contiguous bool) *Mask {
	if pm == nil {
		return nil
	}
	m := NewMask(pm.width, pm.height)
	if len(pm.data) == 0 {
		return m
	}
	match := wandMatcher(target, tolerance)
	fillWalk(pm, seedX, seedY, match, contiguous, func(i int) {
		m.data[i] = 255
	})
	return m
}
