package slicemaster

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	// Sprite sheets arrive in whatever format the artist exported, so the
	// common raster formats are registered for image.Decode.
	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var (
	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("slicemaster: empty image data")

	// ErrNilPixmap is returned when encoding a nil pixmap.
	ErrNilPixmap = errors.New("slicemaster: nil pixmap")
)

// Decode reads an encoded image from r and normalizes it into a Pixmap.
// Supported formats: PNG, JPEG, GIF, BMP, TIFF, WebP.
func Decode(r io.Reader) (*Pixmap, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("slicemaster: decode: %w", err)
	}
	pm := FromImage(img)
	Logger().Debug("image decoded",
		"format", format,
		"width", pm.width,
		"height", pm.height)
	return pm, nil
}

// DecodeBytes decodes an in-memory encoded image.
func DecodeBytes(data []byte) (*Pixmap, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	return Decode(bytes.NewReader(data))
}

// LoadPixmap reads and decodes an image file.
func LoadPixmap(path string) (*Pixmap, error) {
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, fmt.Errorf("slicemaster: open file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()
	return Decode(f)
}

// EncodePNG writes the pixmap to w as PNG. PNG stores the RGBA bytes
// losslessly, so decoding the output returns identical pixel data.
func EncodePNG(w io.Writer, pm *Pixmap) error {
	if pm == nil {
		return ErrNilPixmap
	}
	if err := png.Encode(w, pm.ToImage()); err != nil {
		return fmt.Errorf("slicemaster: encode PNG: %w", err)
	}
	return nil
}

// EncodeBytes encodes the pixmap as an in-memory PNG.
func EncodeBytes(pm *Pixmap) ([]byte, error) {
	var buf bytes.Buffer
	if err := EncodePNG(&buf, pm); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
