package slicemaster

// minOpaqueAlpha is the alpha cutoff below which a pixel counts as
// transparent background everywhere in the engine.
const minOpaqueAlpha = 50

// segmentThresholdScale loosens the caller-facing color threshold for
// segmentation so anti-aliased sprite edges stay attached to their sprite.
// The same threshold is used unscaled for near-duplicate comparison.
const segmentThresholdScale = 2.5

// BackgroundKind classifies what sprites sit on.
type BackgroundKind uint8

const (
	// BackgroundTransparent marks an image whose border is mostly
	// alpha-transparent.
	BackgroundTransparent BackgroundKind = iota

	// BackgroundSolid marks an image matted onto a dominant border color.
	BackgroundSolid
)

// String returns the kind name.
func (k BackgroundKind) String() string {
	switch k {
	case BackgroundTransparent:
		return "transparent"
	case BackgroundSolid:
		return "solid"
	default:
		return "unknown"
	}
}

// Background is the inferred background model of an image. Color is
// meaningful only when Kind is BackgroundSolid. A Background is computed
// once per call and never mutated afterwards.
type Background struct {
	Kind  BackgroundKind
	Color Color
}

// InferBackground infers the background model from the one-pixel border of
// the pixmap. Each border pixel is sampled exactly once; pixels with alpha
// below minOpaqueAlpha count as transparent, the rest tally their exact
// RGB triple. A mostly-transparent border (strictly more than half) yields
// BackgroundTransparent, otherwise the most frequent border triple becomes
// a BackgroundSolid color. Only counts decide; sample order does not.
func InferBackground(pm *Pixmap) Background {
	w, h := pm.width, pm.height

	var (
		total       int
		transparent int
		counts      = make(map[uint32]int)
		bestCount   int
		bestKey     uint32
	)

	sample := func(x, y int) {
		total++
		i := (y*w + x) * 4
		if pm.data[i+3] < minOpaqueAlpha {
			transparent++
			return
		}
		key := uint32(pm.data[i])<<16 | uint32(pm.data[i+1])<<8 | uint32(pm.data[i+2])
		counts[key]++
		if counts[key] > bestCount {
			bestCount = counts[key]
			bestKey = key
		}
	}

	// Top and bottom rows, then the side columns between them. Corners are
	// sampled once and degenerate 1xN / Nx1 images never double-count.
	for x := 0; x < w; x++ {
		sample(x, 0)
		if h > 1 {
			sample(x, h-1)
		}
	}
	for y := 1; y < h-1; y++ {
		sample(0, y)
		if w > 1 {
			sample(w-1, y)
		}
	}

	if total == 0 {
		return Background{Kind: BackgroundTransparent}
	}
	if float64(transparent) > 0.5*float64(total) {
		return Background{Kind: BackgroundTransparent}
	}
	if bestCount == 0 {
		return Background{Kind: BackgroundTransparent}
	}
	return Background{
		Kind: BackgroundSolid,
		Color: Color{
			R: uint8(bestKey >> 16),
			G: uint8(bestKey >> 8),
			B: uint8(bestKey),
			A: 255,
		},
	}
}

// Foreground reports whether a pixel belongs to a sprite under this
// background model. Pixels with alpha below minOpaqueAlpha are never
// foreground. On a transparent background every remaining pixel is
// foreground; on a solid background the pixel must differ from the
// background color by more than threshold*segmentThresholdScale in RGB
// distance. Negative thresholds clamp to 0.
func (bg Background) Foreground(c Color, threshold float64) bool {
	if c.A < minOpaqueAlpha {
		return false
	}
	if bg.Kind == BackgroundTransparent {
		return true
	}
	if threshold < 0 {
		threshold = 0
	}
	return Dist(c, bg.Color) > threshold*segmentThresholdScale
}
