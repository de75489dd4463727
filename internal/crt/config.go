package crt

// Config holds the five blend weights that shape the CRT softening effect.
//
// Each weight is the blend fraction applied to a neighbor pixel at a given
// offset tier (see weightFor). Values are typically in [0, 1] but are not
// validated at construction; weights are clamped to [0, 1] at blend time.
//
// Config is a value type with no lifecycle beyond a single scaling call.
type Config struct {
	// CenterWeight applies at offset (0,0). Because the center cell blends
	// the source pixel with itself, its value never changes the output.
	CenterWeight float64

	// ImmediateWeight applies to the four orthogonal neighbors at
	// Manhattan distance 1.
	ImmediateWeight float64

	// DiagonalWeight applies to the (±1,±1) diagonal neighbors, and in
	// halved and quartered form to the distance-3 and distance-4 rings.
	DiagonalWeight float64

	// EdgeStrength applies to the axis-aligned far neighbors at (±2,0) and
	// (0,±2).
	EdgeStrength float64

	// GlobalMultiplier scales every non-center weight, globally intensifying
	// or attenuating how strongly neighbors leak into each cell. It is never
	// applied to CenterWeight.
	GlobalMultiplier float64
}

// DefaultConfig returns the standard weight set. Callers typically override
// GlobalMultiplier only.
func DefaultConfig() Config {
	return Config{
		CenterWeight:     1.0,
		ImmediateWeight:  0.35,
		DiagonalWeight:   0.25,
		EdgeStrength:     0.30,
		GlobalMultiplier: 1.0,
	}
}
