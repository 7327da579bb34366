package slicemaster

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestNewPixmap(t *testing.T) {
	pm := NewPixmap(64, 32)
	if pm.Width() != 64 || pm.Height() != 32 {
		t.Errorf("expected 64x32, got %dx%d", pm.Width(), pm.Height())
	}
	if len(pm.Data()) != 64*32*4 {
		t.Errorf("expected %d data bytes, got %d", 64*32*4, len(pm.Data()))
	}
	if got := pm.GetPixel(10, 10); got != Transparent {
		t.Errorf("new pixmap should be transparent, got %+v", got)
	}
}

// TestNewPixmap_NegativeDims verifies negative dimensions clamp to zero
// instead of panicking.
func TestNewPixmap_NegativeDims(t *testing.T) {
	pm := NewPixmap(-5, 10)
	if pm.Width() != 0 || len(pm.Data()) != 0 {
		t.Errorf("expected empty pixmap, got %dx%d with %d bytes", pm.Width(), pm.Height(), len(pm.Data()))
	}
}

func TestSetGetPixel(t *testing.T) {
	pm := NewPixmap(10, 10)
	c := Color{R: 12, G: 34, B: 56, A: 200}
	pm.SetPixel(3, 7, c)

	if got := pm.GetPixel(3, 7); got != c {
		t.Errorf("got %+v, want %+v", got, c)
	}

	// Raw layout check
	i := (7*10 + 3) * 4
	data := pm.Data()
	if data[i] != 12 || data[i+1] != 34 || data[i+2] != 56 || data[i+3] != 200 {
		t.Errorf("raw data mismatch: got (%d, %d, %d, %d)", data[i], data[i+1], data[i+2], data[i+3])
	}
}

// TestSetPixel_OutOfBounds verifies out-of-bounds coordinates are silently
// ignored and reads return Transparent.
func TestSetPixel_OutOfBounds(t *testing.T) {
	pm := NewPixmap(10, 10)
	pm.Clear(Black)

	original := make([]uint8, len(pm.Data()))
	copy(original, pm.Data())

	oob := []struct{ x, y int }{
		{-1, 5}, {10, 5}, {5, -1}, {5, 10},
		{-100, -100}, {100, 100},
	}
	for _, c := range oob {
		pm.SetPixel(c.x, c.y, Red)
		if got := pm.GetPixel(c.x, c.y); got != Transparent {
			t.Errorf("GetPixel(%d, %d) = %+v, want Transparent", c.x, c.y, got)
		}
	}

	for i, v := range pm.Data() {
		if v != original[i] {
			t.Fatalf("out-of-bounds write modified data at index %d: got %d, want %d", i, v, original[i])
		}
	}
}

func TestPixmapClone(t *testing.T) {
	pm := NewPixmap(8, 8)
	pm.Clear(Green)

	clone := pm.Clone()
	pm.Clear(Black)

	if got := clone.GetPixel(4, 4); got != Green {
		t.Errorf("clone should not be affected, got %+v", got)
	}
}

func TestCrop(t *testing.T) {
	pm := NewPixmap(20, 20)
	pm.Clear(Blue)
	pm.SetPixel(5, 6, Red)

	sub, err := pm.Crop(Rect{X: 4, Y: 5, Width: 6, Height: 7})
	if err != nil {
		t.Fatalf("Crop failed: %v", err)
	}
	if sub.Width() != 6 || sub.Height() != 7 {
		t.Errorf("expected 6x7, got %dx%d", sub.Width(), sub.Height())
	}
	if got := sub.GetPixel(1, 1); got != Red {
		t.Errorf("crop origin shifted: got %+v at (1,1), want Red", got)
	}
	if got := sub.GetPixel(0, 0); got != Blue {
		t.Errorf("got %+v at (0,0), want Blue", got)
	}

	// Crop is a copy, not a view
	sub.SetPixel(0, 0, Green)
	if got := pm.GetPixel(4, 5); got != Blue {
		t.Errorf("crop write leaked into source: got %+v", got)
	}
}

func TestCrop_InvalidGeometry(t *testing.T) {
	pm := NewPixmap(20, 20)

	tests := []struct {
		name string
		rect Rect
		want error
	}{
		{"zero width", Rect{X: 0, Y: 0, Width: 0, Height: 5}, ErrInvalidDimensions},
		{"negative height", Rect{X: 0, Y: 0, Width: 5, Height: -1}, ErrInvalidDimensions},
		{"negative origin", Rect{X: -1, Y: 0, Width: 5, Height: 5}, ErrOutOfBounds},
		{"right overflow", Rect{X: 16, Y: 0, Width: 5, Height: 5}, ErrOutOfBounds},
		{"bottom overflow", Rect{X: 0, Y: 16, Width: 5, Height: 5}, ErrOutOfBounds},
		{"full image ok", Rect{X: 0, Y: 0, Width: 20, Height: 20}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := pm.Crop(tt.rect)
			if !errors.Is(err, tt.want) {
				t.Errorf("got err %v, want %v", err, tt.want)
			}
		})
	}
}

func TestResized(t *testing.T) {
	pm := NewPixmap(2, 2)
	pm.SetPixel(0, 0, Red)
	pm.SetPixel(1, 0, Green)
	pm.SetPixel(0, 1, Blue)
	pm.SetPixel(1, 1, White)

	big, err := pm.Resized(4, 4)
	if err != nil {
		t.Fatalf("Resized failed: %v", err)
	}
	if big.Width() != 4 || big.Height() != 4 {
		t.Fatalf("expected 4x4, got %dx%d", big.Width(), big.Height())
	}

	// Nearest-neighbor doubling replicates each source pixel into a 2x2 block
	quads := []struct {
		x, y int
		want Color
	}{
		{0, 0, Red}, {1, 1, Red},
		{2, 0, Green}, {3, 1, Green},
		{0, 2, Blue}, {1, 3, Blue},
		{2, 2, White}, {3, 3, White},
	}
	for _, q := range quads {
		if got := big.GetPixel(q.x, q.y); got != q.want {
			t.Errorf("pixel (%d,%d) = %+v, want %+v", q.x, q.y, got, q.want)
		}
	}

	if _, err := pm.Resized(0, 4); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("expected ErrInvalidDimensions for zero width, got %v", err)
	}
}

func TestEraseMasked(t *testing.T) {
	pm := NewPixmap(4, 4)
	pm.Clear(Red)

	m := NewMask(4, 4)
	m.Set(1, 1, 255)
	m.Set(2, 2, 1)

	pm.EraseMasked(m)

	if got := pm.GetPixel(1, 1); got.A != 0 {
		t.Errorf("masked pixel kept alpha %d", got.A)
	}
	if got := pm.GetPixel(2, 2); got.A != 0 {
		t.Errorf("low mask value should still erase, alpha %d", got.A)
	}
	if got := pm.GetPixel(1, 1); got.R != 255 {
		t.Errorf("erase touched RGB: got %+v", got)
	}
	if got := pm.GetPixel(0, 0); got != Red {
		t.Errorf("unmasked pixel changed: %+v", got)
	}

	// Mismatched mask is ignored
	pm.Clear(Red)
	pm.EraseMasked(NewMask(3, 3))
	if got := pm.GetPixel(0, 0); got != Red {
		t.Errorf("mismatched mask modified pixmap: %+v", got)
	}
}

func TestFromImage_NRGBA(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	img.SetNRGBA(1, 1, color.NRGBA{R: 10, G: 20, B: 30, A: 40})

	pm := FromImage(img)
	want := Color{R: 10, G: 20, B: 30, A: 40}
	if got := pm.GetPixel(1, 1); got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

// TestFromImage_RGBA verifies premultiplied input is converted back to
// straight alpha.
func TestFromImage_RGBA(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	// 50% gray at 50% alpha, premultiplied: (64, 64, 64, 128)
	img.SetRGBA(0, 0, color.RGBA{R: 64, G: 64, B: 64, A: 128})

	pm := FromImage(img)
	got := pm.GetPixel(0, 0)
	if got.A != 128 {
		t.Fatalf("alpha changed: got %d", got.A)
	}
	// 64*255/128 = 127.5, rounds to 128
	if got.R < 127 || got.R > 128 {
		t.Errorf("un-premultiply off: got R=%d, want ~128", got.R)
	}
}

// TestFromImage_OffsetBounds verifies subimages with non-zero Min decode
// from their own origin.
func TestFromImage_OffsetBounds(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	img.SetNRGBA(5, 5, color.NRGBA{R: 99, G: 0, B: 0, A: 255})

	sub := img.SubImage(image.Rect(4, 4, 8, 8)).(*image.NRGBA)
	pm := FromImage(sub)
	if pm.Width() != 4 || pm.Height() != 4 {
		t.Fatalf("expected 4x4, got %dx%d", pm.Width(), pm.Height())
	}
	if got := pm.GetPixel(1, 1); got.R != 99 {
		t.Errorf("offset bounds mishandled: got %+v", got)
	}
}

func TestToImageRoundTrip(t *testing.T) {
	pm := NewPixmap(5, 5)
	pm.SetPixel(2, 3, Color{R: 1, G: 2, B: 3, A: 4})

	back := FromImage(pm.ToImage())
	for i, v := range back.Data() {
		if v != pm.Data()[i] {
			t.Fatalf("round trip mismatch at byte %d: got %d, want %d", i, v, pm.Data()[i])
		}
	}
}
