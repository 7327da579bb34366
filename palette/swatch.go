package palette

import (
	"image"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Swatch renders a horizontal palette strip, one square tile per color.
// Returns nil for an empty palette; tileSize below 1 defaults to 64.
func Swatch(palette []colorful.Color, tileSize int) *image.NRGBA {
	if len(palette) == 0 {
		return nil
	}
	if tileSize <= 0 {
		tileSize = 64
	}

	img := image.NewNRGBA(image.Rect(0, 0, tileSize*len(palette), tileSize))
	for i, c := range palette {
		r, g, b := c.Clamped().RGB255()
		tile := color.NRGBA{R: r, G: g, B: b, A: 255}
		for y := 0; y < tileSize; y++ {
			for x := i * tileSize; x < (i+1)*tileSize; x++ {
				img.SetNRGBA(x, y, tile)
			}
		}
	}
	return img
}
