package crt

// Pixel is an 8-bit-per-channel RGB color value.
//
// Pixels are plain values with no identity beyond their channels; alpha is
// not modeled (the codec layer treats everything as fully opaque).
type Pixel struct {
	R uint8
	G uint8
	B uint8
}

// Buffer is a 2D pixel surface addressed by (x, y).
//
// Pixels are stored in a flat row-major slice, but callers should not rely
// on the layout; At and Set are the contract. The zero-size buffer (width
// or height 0) is valid and holds no pixels.
type Buffer struct {
	width  int
	height int
	pix    []Pixel
}

// NewBuffer allocates a buffer of the given dimensions with all pixels
// initialized to black. Zero dimensions are allowed.
func NewBuffer(width, height int) *Buffer {
	return &Buffer{
		width:  width,
		height: height,
		pix:    make([]Pixel, width*height),
	}
}

// Width returns the buffer width in pixels.
func (b *Buffer) Width() int { return b.width }

// Height returns the buffer height in pixels.
func (b *Buffer) Height() int { return b.height }

// At returns the pixel at (x, y). Coordinates must be within bounds.
func (b *Buffer) At(x, y int) Pixel {
	return b.pix[y*b.width+x]
}

// Set stores p at (x, y). Coordinates must be within bounds.
func (b *Buffer) Set(x, y int, p Pixel) {
	b.pix[y*b.width+x] = p
}
