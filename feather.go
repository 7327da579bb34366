package slicemaster

// FeatherAlpha softens sprite edges by box-blurring the alpha plane and
// keeping, per pixel, the smaller of the original and blurred alpha. The
// blur is separable: a horizontal then a vertical pass, each averaging
// 2*radius+1 edge-clamped samples through a float intermediate buffer.
// Both passes read snapshots, so already-written pixels never feed back in.
//
// Only alpha changes: RGB bytes are never written, fully transparent
// pixels never gain alpha, and no pixel becomes more opaque. A radius of
// 0 or less is an identity no-op. Returns pm, mutated in place.
func FeatherAlpha(pm *Pixmap, radius int) *Pixmap {
	if pm == nil || radius <= 0 || pm.width == 0 || pm.height == 0 {
		return pm
	}

	w, h := pm.width, pm.height
	orig := AlphaMask(pm)
	size := float64(2*radius + 1)

	// Pass 1: horizontal blur of the alpha snapshot.
	tmp := make([]float64, w*h)
	for y := 0; y < h; y++ {
		row := y * w
		for x := 0; x < w; x++ {
			var sum float64
			for k := -radius; k <= radius; k++ {
				kx := x + k
				if kx < 0 {
					kx = 0
				} else if kx >= w {
					kx = w - 1
				}
				sum += float64(orig.data[row+kx])
			}
			tmp[row+x] = sum / size
		}
	}

	// Pass 2: vertical blur of the horizontal result, written back as
	// min(original, blurred) wherever the pixel had any coverage.
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			o := orig.data[y*w+x]
			if o == 0 {
				continue
			}
			var sum float64
			for k := -radius; k <= radius; k++ {
				ky := y + k
				if ky < 0 {
					ky = 0
				} else if ky >= h {
					ky = h - 1
				}
				sum += tmp[ky*w+x]
			}
			if b := clampUint8(sum / size); b < o {
				pm.data[(y*w+x)*4+3] = b
			}
		}
	}

	Logger().Debug("feather applied", "radius", radius)
	return pm
}

// clampUint8 clamps a float64 to [0, 255] and converts to uint8.
func clampUint8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5) // Round to nearest
}
