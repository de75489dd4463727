// Package crt implements a fixed-ratio 5x image upscaler with a CRT-style
// soft pixel blend.
//
// Every source pixel expands into a 5x5 block of output pixels. Each cell in
// the block is a weighted blend of the original source pixel with one of its
// 5x5 neighborhood pixels, where the blend weight depends on the neighbor's
// Manhattan distance from the center. The result is a softened, slightly
// glowing enlargement reminiscent of a CRT display.
//
// # Coordinate System
//
// Buffers are addressed with 0-based (x, y) coordinates, origin at top-left,
// X increasing rightward and Y increasing downward. Neighbor lookups at the
// image border are edge-clamped: coordinates outside the buffer resolve to
// the nearest valid border pixel, never wrap and never fail.
//
// # Determinism
//
// The scaling operation is a pure function of the source buffer and the
// weight configuration. Blended channel values are truncated (not rounded)
// when converted back to 8-bit, so identical inputs always produce
// byte-identical outputs.
//
// # Concurrency
//
// Buffers are not synchronized. ScaleAndBlur reads the source buffer only
// and writes each output cell exactly once, so callers may share a source
// buffer across concurrent scaling calls as long as nothing mutates it.
package crt
