// Package palette extracts representative color palettes from images.
//
// Palettes feed the slicing UI: swatch strips for preview, suggested wand
// targets, and export-time color reports. Extraction operates on any
// image.Image, so a slicemaster Pixmap can be passed directly.
package palette

import (
	"image"
	"image/color"
	"math"
	"sort"

	"github.com/cenkalti/dominantcolor"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"

	slicemaster "github.com/kanniganfan/SliceMaster"
)

// Method selects the extraction algorithm.
type Method int

const (
	// MethodDominant ranks colors by pixel population (fast, deterministic).
	MethodDominant Method = iota

	// MethodKMeans clusters subsampled pixels and reports cluster centers.
	MethodKMeans
)

// String returns the method name.
func (m Method) String() string {
	switch m {
	case MethodKMeans:
		return "kmeans"
	default:
		return "dominant"
	}
}

// maxKMeansSamples caps the observation count fed to the clusterer.
// Larger images are subsampled on a uniform grid.
const maxKMeansSamples = 10000

// weightedColor pairs a candidate color with its pixel weight.
type weightedColor struct {
	col    colorful.Color
	weight float64
}

// Extract returns up to k palette colors from img using the given method.
// A failed or empty k-means run falls back to the dominant-color method,
// so a non-empty image with k > 0 always yields at least one color.
func Extract(img image.Image, k int, method Method) []colorful.Color {
	if method == MethodKMeans {
		if p := extractKMeans(img, k); len(p) != 0 {
			return p
		}
		slicemaster.Logger().Warn("k-means palette empty, falling back to dominant-color extraction", "k", k)
	}
	return extractDominant(img, k)
}

// extractDominant pulls an oversized candidate set from dominantcolor and
// thins it down to k diverse entries.
func extractDominant(img image.Image, k int) []colorful.Color {
	if k <= 0 || img == nil {
		return nil
	}

	candidates := dominantcolor.FindWeight(img, max(24, k*8))
	if len(candidates) == 0 {
		// Last resort: avoid an empty palette that would break callers.
		candidates = append(candidates, dominantcolor.Color{
			RGBA:   color.RGBA{R: 128, G: 128, B: 128, A: 255},
			Weight: 1.0,
		})
	}
	weighted := make([]weightedColor, 0, len(candidates))
	for _, c := range candidates {
		col, _ := colorful.MakeColor(c.RGBA)
		weighted = append(weighted, weightedColor{col: col.Clamped(), weight: c.Weight})
	}
	return selectDiverse(weighted, k)
}

// extractKMeans clusters a subsample of opaque pixels in RGB space. It
// oversegments (more clusters than requested) and lets selectDiverse pick
// the final k, which keeps small-but-distinct colors from being absorbed
// into large clusters.
func extractKMeans(img image.Image, k int) []colorful.Color {
	if k <= 0 || img == nil {
		return nil
	}

	b := img.Bounds()
	width, height := b.Dx(), b.Dy()
	if width == 0 || height == 0 {
		return nil
	}

	step := 1
	if width*height > maxKMeansSamples {
		step = int(math.Sqrt(float64(width*height)/float64(maxKMeansSamples))) + 1
	}

	dataset := make(clusters.Observations, 0, min(width*height, maxKMeansSamples))
	for y := b.Min.Y; y < b.Max.Y; y += step {
		for x := b.Min.X; x < b.Max.X; x += step {
			r16, g16, b16, a16 := img.At(x, y).RGBA()
			if a16 == 0 {
				continue
			}
			dataset = append(dataset, clusters.Coordinates{
				float64(r16) / 65535.0,
				float64(g16) / 65535.0,
				float64(b16) / 65535.0,
			})
		}
	}
	if len(dataset) == 0 {
		return nil
	}

	workK := min(max(k*4, k+2), len(dataset))
	km := kmeans.New()
	cc, err := km.Partition(dataset, workK)
	if err != nil || len(cc) == 0 {
		return nil
	}

	// Largest clusters first so the weight bias favors dominant tones.
	sort.Slice(cc, func(i, j int) bool {
		return len(cc[i].Observations) > len(cc[j].Observations)
	})

	weighted := make([]weightedColor, 0, len(cc))
	for _, c := range cc {
		if len(c.Center) < 3 {
			continue
		}
		col := colorful.Color{R: c.Center[0], G: c.Center[1], B: c.Center[2]}.Clamped()
		weighted = append(weighted, weightedColor{col: col, weight: float64(len(c.Observations))})
	}
	return selectDiverse(weighted, k)
}

// selectDiverse greedily picks k colors from weighted candidates: the
// heaviest first, then whichever remaining candidate maximizes its minimum
// Lab distance to the picks so far, biased toward heavier candidates.
func selectDiverse(cands []weightedColor, k int) []colorful.Color {
	if k <= 0 || len(cands) == 0 {
		return nil
	}
	if k > len(cands) {
		k = len(cands)
	}

	type entry struct {
		col     colorful.Color
		l, a, b float64
		weight  float64
	}
	entries := make([]entry, len(cands))
	maxWeight := 0.0
	for i, c := range cands {
		l, a, bb := c.col.Lab()
		w := c.weight
		if w <= 0 {
			w = 1e-6
		}
		if w > maxWeight {
			maxWeight = w
		}
		entries[i] = entry{col: c.col, l: l, a: a, b: bb, weight: w}
	}

	seed := 0
	for i := 1; i < len(entries); i++ {
		if entries[i].weight > entries[seed].weight {
			seed = i
		}
	}

	picked := make([]int, 0, k)
	picked = append(picked, seed)
	used := make([]bool, len(entries))
	used[seed] = true

	for len(picked) < k {
		best, bestScore := -1, -1.0
		for i, e := range entries {
			if used[i] {
				continue
			}
			minD2 := math.MaxFloat64
			for _, p := range picked {
				dl := e.l - entries[p].l
				da := e.a - entries[p].a
				db := e.b - entries[p].b
				if d2 := dl*dl + da*da + db*db; d2 < minD2 {
					minD2 = d2
				}
			}
			score := math.Sqrt(minD2) * (0.55 + 0.45*math.Sqrt(e.weight/maxWeight))
			if score > bestScore {
				bestScore = score
				best = i
			}
		}
		if best < 0 {
			break
		}
		used[best] = true
		picked = append(picked, best)
	}

	out := make([]colorful.Color, 0, len(picked))
	for _, i := range picked {
		out = append(out, entries[i].col)
	}
	return out
}

// SortByBrightness orders colors darkest first using linear-RGB luminance.
func SortByBrightness(palette []colorful.Color) {
	sort.SliceStable(palette, func(i, j int) bool {
		ri, gi, bi := palette[i].LinearRgb()
		rj, gj, bj := palette[j].LinearRgb()
		yi := 0.2126*ri + 0.7152*gi + 0.0722*bi
		yj := 0.2126*rj + 0.7152*gj + 0.0722*bj
		return yi < yj
	})
}

// SuggestBackground returns the single most dominant color of the image,
// the default wand target when border inference reports no solid
// background.
func SuggestBackground(img image.Image) slicemaster.Color {
	c := dominantcolor.Find(img)
	return slicemaster.Color{R: c.R, G: c.G, B: c.B, A: 255}
}
