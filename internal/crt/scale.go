package crt

// blockSize is the fixed output ratio: each source pixel becomes a
// blockSize x blockSize block of output pixels.
const blockSize = 5

// ScaleAndBlur transforms src into a new buffer 5x larger in each dimension,
// applying the CRT-style soft blend described in the package documentation.
//
// The source buffer is read-only throughout and shares no storage with the
// result. Every output cell is written exactly once. A zero-dimension source
// produces a zero-dimension result; there are no error conditions.
func ScaleAndBlur(src *Buffer, cfg Config) *Buffer {
	out := NewBuffer(src.Width()*blockSize, src.Height()*blockSize)

	for y := 0; y < src.Height(); y++ {
		for x := 0; x < src.Width(); x++ {
			block := blockFor(src, x, y, cfg)
			for py := 0; py < blockSize; py++ {
				for px := 0; px < blockSize; px++ {
					out.Set(x*blockSize+px, y*blockSize+py, block[py][px])
				}
			}
		}
	}

	return out
}

// blockFor synthesizes the 5x5 output block for the source pixel at
// (cx, cy).
//
// Every cell blends the original center pixel, not the cell's own position,
// with the neighbor at that cell's offset from the center. Neighbor
// coordinates are edge-clamped to the buffer bounds, so border and corner
// pixels blend with themselves where the neighborhood runs off the image.
func blockFor(src *Buffer, cx, cy int, cfg Config) [blockSize][blockSize]Pixel {
	var block [blockSize][blockSize]Pixel
	center := src.At(cx, cy)

	for py := 0; py < blockSize; py++ {
		oy := py - blockSize/2
		for px := 0; px < blockSize; px++ {
			ox := px - blockSize/2
			nx := clamp(cx+ox, 0, src.Width()-1)
			ny := clamp(cy+oy, 0, src.Height()-1)
			block[py][px] = blendPixels(center, src.At(nx, ny), weightFor(ox, oy, cfg))
		}
	}

	return block
}

// weightFor returns the blend weight for the neighbor at offset (ox, oy)
// from the block center, based on Manhattan distance:
//
//	distance 0: CenterWeight, with GlobalMultiplier never applied
//	distance 1: ImmediateWeight
//	distance 2: EdgeStrength when axis-aligned (|ox| or |oy| is 2),
//	            DiagonalWeight for the true diagonals (±1,±1)
//	distance 3: DiagonalWeight x 0.5
//	distance 4: DiagonalWeight x 0.25
//
// All non-center weights are scaled by GlobalMultiplier. Note that distance 2
// covers two geometrically different offsets; the axis-aligned check keeps
// the straight far neighbors on their own weight.
func weightFor(ox, oy int, cfg Config) float64 {
	dx, dy := abs(ox), abs(oy)

	var base float64
	switch dx + dy {
	case 0:
		return cfg.CenterWeight
	case 1:
		base = cfg.ImmediateWeight
	case 2:
		if dx == 2 || dy == 2 {
			base = cfg.EdgeStrength
		} else {
			base = cfg.DiagonalWeight
		}
	case 3:
		base = cfg.DiagonalWeight * 0.5
	default:
		base = cfg.DiagonalWeight * 0.25
	}

	return base * cfg.GlobalMultiplier
}

// blendPixels mixes weight parts of neighbor into 1-weight parts of center,
// per channel. The weight is clamped to [0, 1] first, so the result is a
// convex combination and cannot leave the 8-bit range except through float
// rounding at the boundaries.
func blendPixels(center, neighbor Pixel, weight float64) Pixel {
	if weight < 0 {
		weight = 0
	}
	if weight > 1 {
		weight = 1
	}
	return Pixel{
		R: blendChannel(center.R, neighbor.R, weight),
		G: blendChannel(center.G, neighbor.G, weight),
		B: blendChannel(center.B, neighbor.B, weight),
	}
}

// blendChannel truncates rather than rounds the blended value. The integer
// cast matters: round-to-nearest would shift least-significant bits and
// break byte-exact reproducibility with the reference output.
func blendChannel(center, neighbor uint8, weight float64) uint8 {
	v := int(float64(center)*(1-weight) + float64(neighbor)*weight)
	return uint8(clamp(v, 0, 255))
}

func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

func abs(val int) int {
	if val < 0 {
		return -val
	}
	return val
}
