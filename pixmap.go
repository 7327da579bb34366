package slicemaster

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"

	xdraw "golang.org/x/image/draw"
)

var (
	// ErrInvalidDimensions reports a non-positive width or height.
	ErrInvalidDimensions = errors.New("slicemaster: invalid dimensions")

	// ErrOutOfBounds reports a rectangle that leaves the pixmap.
	ErrOutOfBounds = errors.New("slicemaster: rect out of bounds")
)

// Pixmap represents a rectangular pixel buffer.
// Pixels are stored row-major as straight-alpha RGBA, 4 bytes per pixel.
type Pixmap struct {
	width  int
	height int
	data   []uint8 // RGBA format, 4 bytes per pixel
}

// NewPixmap creates a new pixmap with the given dimensions.
// Negative dimensions are treated as zero.
func NewPixmap(width, height int) *Pixmap {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (RGBA format).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// SetPixel sets the color of a single pixel.
// Coordinates outside the pixmap are ignored.
func (p *Pixmap) SetPixel(x, y int, c Color) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = c.R
	p.data[i+1] = c.G
	p.data[i+2] = c.B
	p.data[i+3] = c.A
}

// GetPixel returns the color of a single pixel.
// Returns Transparent for coordinates outside the pixmap.
func (p *Pixmap) GetPixel(x, y int) Color {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Transparent
	}
	i := (y*p.width + x) * 4
	return Color{
		R: p.data[i+0],
		G: p.data[i+1],
		B: p.data[i+2],
		A: p.data[i+3],
	}
}

// colorAt reads the pixel at a flat y*width+x index, skipping bounds checks.
func (p *Pixmap) colorAt(i int) Color {
	i *= 4
	return Color{
		R: p.data[i+0],
		G: p.data[i+1],
		B: p.data[i+2],
		A: p.data[i+3],
	}
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c Color) {
	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = c.R
		p.data[i+1] = c.G
		p.data[i+2] = c.B
		p.data[i+3] = c.A
	}
}

// Clone creates an independent copy of the pixmap.
func (p *Pixmap) Clone() *Pixmap {
	out := NewPixmap(p.width, p.height)
	copy(out.data, p.data)
	return out
}

// Crop returns a new pixmap holding the pixels under r.
// Returns ErrInvalidDimensions if r has non-positive width or height,
// and ErrOutOfBounds if r is not fully inside the pixmap.
func (p *Pixmap) Crop(r Rect) (*Pixmap, error) {
	if r.Width <= 0 || r.Height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if r.X < 0 || r.Y < 0 || r.X+r.Width > p.width || r.Y+r.Height > p.height {
		return nil, ErrOutOfBounds
	}

	out := NewPixmap(r.Width, r.Height)
	for row := 0; row < r.Height; row++ {
		src := ((r.Y+row)*p.width + r.X) * 4
		dst := row * r.Width * 4
		copy(out.data[dst:dst+r.Width*4], p.data[src:src+r.Width*4])
	}
	return out, nil
}

// Resized returns a nearest-neighbor resampled copy of the pixmap.
// Pixel-art sprites resize with hard edges only; no interpolation is offered.
func (p *Pixmap) Resized(width, height int) (*Pixmap, error) {
	if width <= 0 || height <= 0 || p.width <= 0 || p.height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if width == p.width && height == p.height {
		return p.Clone(), nil
	}

	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), p.ToImage(), p.Bounds(), xdraw.Src, nil)
	return FromImage(dst), nil
}

// EraseMasked zeroes the alpha of every pixel whose mask value is above 0.
// RGB bytes are left untouched. The mask must match the pixmap dimensions;
// mismatched masks are ignored.
func (p *Pixmap) EraseMasked(m *Mask) {
	if m == nil || m.width != p.width || m.height != p.height {
		return
	}
	for i, v := range m.data {
		if v > 0 {
			p.data[i*4+3] = 0
		}
	}
}

// ToImage converts the pixmap to an image.NRGBA sharing no state.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// FromImage creates a pixmap from an image.
// *image.NRGBA rows are copied directly and *image.RGBA pixels are
// un-premultiplied; other image types go through color.NRGBAModel.
func FromImage(img image.Image) *Pixmap {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pm := NewPixmap(width, height)

	switch src := img.(type) {
	case *image.NRGBA:
		for y := 0; y < height; y++ {
			off := src.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(pm.data[y*width*4:(y+1)*width*4], src.Pix[off:off+width*4])
		}
	case *image.RGBA:
		for y := 0; y < height; y++ {
			off := src.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			for x := 0; x < width; x++ {
				i := off + x*4
				r, g, b, a := src.Pix[i], src.Pix[i+1], src.Pix[i+2], src.Pix[i+3]
				if a != 0 && a != 255 {
					r = uint8((uint32(r)*255 + uint32(a)/2) / uint32(a))
					g = uint8((uint32(g)*255 + uint32(a)/2) / uint32(a))
					b = uint8((uint32(b)*255 + uint32(a)/2) / uint32(a))
				}
				j := (y*width + x) * 4
				pm.data[j+0] = r
				pm.data[j+1] = g
				pm.data[j+2] = b
				pm.data[j+3] = a
			}
		}
	default:
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				c := img.At(bounds.Min.X+x, bounds.Min.Y+y)
				pm.SetPixel(x, y, FromColor(c))
			}
		}
	}

	return pm
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, p.ToImage())
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.GetPixel(x, y)
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
