// Package bitmap reads and writes the fixed 1-bit-per-pixel, bottom-up,
// uncompressed Windows BMP layout used to persist mazes and paths:
// 14-byte file header, 40-byte info header, 8-byte two-color (black/white)
// palette, then pixel rows bottom-to-top, each padded to a multiple of 4
// bytes. Within a row, bit 7 is the leftmost pixel; bit value 0 is black,
// 1 is white.
//
// This package only handles the fixed header/palette and raw pixel-row
// bytes. The cell/corridor meaning of a given pixel is owned by the
// path and maze packages, which call RowBytes/GetPixel/SetPixel while
// rendering or parsing their own geometry.
//
// Errors:
//
//   - ErrSignature: the first two bytes are not "BM".
//   - ErrHeader: file size, data offset, info-header size, planes, bit
//     depth, or compression field does not match the fixed layout.
//   - ErrPalette: the 8-byte palette is not exactly {black, white}.
//   - ErrDimensions: width or height is negative.
package bitmap
