package slicemaster

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// CompareStats summarizes the per-pixel color distance between two sprites.
type CompareStats struct {
	// MeanDist is the mean RGB distance over compared pixel positions.
	MeanDist float64

	// MaxDist is the largest single-position distance.
	MaxDist float64

	// StdDev is the standard deviation of the distances.
	StdDev float64

	// Coverage is the fraction of compared positions where both sprites
	// are opaque.
	Coverage float64
}

// CompareSprites measures how alike two sprite crops are. When dimensions
// differ, b is nearest-resampled to a's size first. Positions transparent
// on both sides are skipped; positions opaque on exactly one side count
// the full MaxRGBDistance as a structural mismatch; the rest contribute
// their RGB distance. Two fully transparent sprites compare as identical.
func CompareSprites(a, b *Pixmap) CompareStats {
	if a == nil || b == nil || a.width == 0 || a.height == 0 || b.width == 0 || b.height == 0 {
		return CompareStats{}
	}
	if b.width != a.width || b.height != a.height {
		rb, err := b.Resized(a.width, a.height)
		if err != nil {
			return CompareStats{}
		}
		b = rb
	}

	dists := make([]float64, 0, a.width*a.height)
	both := 0
	for i := 0; i < a.width*a.height; i++ {
		ca, cb := a.colorAt(i), b.colorAt(i)
		aOpaque := ca.A >= minOpaqueAlpha
		bOpaque := cb.A >= minOpaqueAlpha
		switch {
		case !aOpaque && !bOpaque:
			continue
		case aOpaque != bOpaque:
			dists = append(dists, MaxRGBDistance)
		default:
			both++
			dists = append(dists, Dist(ca, cb))
		}
	}
	if len(dists) == 0 {
		return CompareStats{}
	}

	sd := 0.0
	if len(dists) > 1 {
		sd = stat.StdDev(dists, nil)
	}
	return CompareStats{
		MeanDist: stat.Mean(dists, nil),
		MaxDist:  floats.Max(dists),
		StdDev:   sd,
		Coverage: float64(both) / float64(len(dists)),
	}
}

// NearDuplicate reports whether two sprites are near-duplicates: their
// mean distance stays within threshold. The threshold is the same scale
// as [DetectOptions.Threshold], used raw (segmentation's looser scaling
// does not apply here). Negative thresholds clamp to 0.
func NearDuplicate(a, b *Pixmap, threshold float64) bool {
	if a == nil || b == nil {
		return false
	}
	if threshold < 0 {
		threshold = 0
	}
	return CompareSprites(a, b).MeanDist <= threshold
}
