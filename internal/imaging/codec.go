package imaging

import (
	"fmt"
	"image"
	"image/color"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/clone"
	"github.com/disintegration/imaging"

	"github.com/ethanwork/cs-crt-filter/internal/crt"
)

// Load decodes the image at path into a pixel buffer.
//
// The decoded image is normalized to RGBA first so that paletted, grayscale,
// and YCbCr sources all read out the same 8-bit channel values. The alpha
// channel is dropped.
func Load(path string) (*crt.Buffer, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load image: %w", err)
	}

	rgba := clone.AsRGBA(img)
	bounds := rgba.Bounds()
	buf := crt.NewBuffer(bounds.Dx(), bounds.Dy())
	for y := 0; y < bounds.Dy(); y++ {
		for x := 0; x < bounds.Dx(); x++ {
			c := rgba.RGBAAt(bounds.Min.X+x, bounds.Min.Y+y)
			buf.Set(x, y, crt.Pixel{R: c.R, G: c.G, B: c.B})
		}
	}
	return buf, nil
}

// Save encodes buf to path, choosing the format from the file extension.
// All pixels are written fully opaque.
func Save(buf *crt.Buffer, path string) error {
	img := image.NewNRGBA(image.Rect(0, 0, buf.Width(), buf.Height()))
	for y := 0; y < buf.Height(); y++ {
		for x := 0; x < buf.Width(); x++ {
			p := buf.At(x, y)
			img.SetNRGBA(x, y, color.NRGBA{R: p.R, G: p.G, B: p.B, A: 255})
		}
	}

	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}

// OutputPath derives the save path for a scaled image by inserting "_crt"
// before the extension: "shot.png" becomes "shot_crt.png". A path with no
// extension gets a bare "_crt" suffix.
func OutputPath(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "_crt" + ext
}
