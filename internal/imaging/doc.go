// Package imaging converts image files to and from the crt pixel buffer.
//
// Decoding accepts any format supported by github.com/disintegration/imaging
// (PNG, JPEG, GIF, TIFF, BMP). Alpha is discarded on load and written back
// as fully opaque on save. Encoding picks the output format from the file
// extension, so the scaled image keeps the source's format by construction.
package imaging
