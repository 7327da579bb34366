package slicemaster

// minIslandDim is the smallest bounding-box side of a kept island.
// Thinner components are scan-line debris, not sprites.
const minIslandDim = 4

// DetectOptions configures island detection.
type DetectOptions struct {
	// Threshold is the color distance separating sprite pixels from a
	// solid background. Segmentation scales it by segmentThresholdScale
	// internally; the raw value is what near-duplicate comparison uses.
	Threshold float64

	// MinArea rejects components whose filled pixel count or bounding-box
	// area falls below it. Negative values clamp to 0.
	MinArea int

	// IgnoreNested drops islands whose rect is fully contained in a
	// larger island's rect.
	IgnoreNested bool
}

// DefaultDetectOptions returns the detection defaults.
func DefaultDetectOptions() DetectOptions {
	return DetectOptions{Threshold: 10, MinArea: 64}
}

// DetectIslands segments the pixmap into connected foreground islands and
// returns their bounding rectangles in reading order. The background model
// is inferred from the border once per call. An image with no qualifying
// islands returns nil; detection never fails.
//
// The scan claims every inspected pixel: when a flood fill rejects a
// neighbor, that neighbor is still marked visited, so the one-pixel ring
// around each island never re-seeds a second component.
func DetectIslands(pm *Pixmap, opts DetectOptions) []Rect {
	if pm == nil || pm.width == 0 || pm.height == 0 {
		return nil
	}

	w, h := pm.width, pm.height
	bg := InferBackground(pm)
	logger := Logger()
	logger.Debug("background inferred",
		"kind", bg.Kind.String(),
		"color", bg.Color.String(),
		"width", w,
		"height", h)

	minArea := opts.MinArea
	if minArea < 0 {
		minArea = 0
	}

	visited := make([]bool, w*h)
	stack := make([]int, 0, 256)
	var rects []Rect

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			if visited[idx] {
				continue
			}
			if !bg.Foreground(pm.colorAt(idx), opts.Threshold) {
				visited[idx] = true
				continue
			}

			// Flood fill an island from this seed over 8-connected
			// neighbors, tracking its tight bounds and filled count.
			minX, minY, maxX, maxY := x, y, x, y
			count := 0
			stack = append(stack[:0], idx)

			for len(stack) > 0 {
				i := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if visited[i] {
					continue
				}
				visited[i] = true

				px, py := i%w, i/w
				if !bg.Foreground(pm.colorAt(i), opts.Threshold) {
					continue
				}

				count++
				if px < minX {
					minX = px
				}
				if px > maxX {
					maxX = px
				}
				if py < minY {
					minY = py
				}
				if py > maxY {
					maxY = py
				}

				for dy := -1; dy <= 1; dy++ {
					for dx := -1; dx <= 1; dx++ {
						if dx == 0 && dy == 0 {
							continue
						}
						nx, ny := px+dx, py+dy
						if nx < 0 || nx >= w || ny < 0 || ny >= h {
							continue
						}
						if ni := ny*w + nx; !visited[ni] {
							stack = append(stack, ni)
						}
					}
				}
			}

			bw, bh := maxX-minX+1, maxY-minY+1
			if count < minArea || bw*bh < minArea || bw < minIslandDim || bh < minIslandDim {
				continue
			}
			rects = append(rects, Rect{X: minX, Y: minY, Width: bw, Height: bh})
		}
	}

	if opts.IgnoreNested {
		rects = SuppressNested(rects)
	}
	SortReadingOrder(rects)

	logger.Debug("segmentation complete", "islands", len(rects))
	return rects
}
