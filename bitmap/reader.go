package bitmap

import "io"

// ReadHeader reads and validates the file header, info header, and
// palette of a monochrome bottom-up BMP, leaving r positioned at the
// first (bottom) pixel row. It returns the declared width and height.
//
// Every fixed byte is checked: signature, recomputed file size, data
// offset, info-header size, color planes, bit depth, compression, image
// size, and the two-color {black, white} palette in that order. Any
// mismatch is reported via the sentinel errors in errors.go; the caller
// (path/maze BMP constructors) treats all of them as "fall back to the
// 1x1 default", per spec.md §7.
func ReadHeader(r io.Reader) (width, height int, err error) {
	var hdr [dataOffset]byte
	if _, err = io.ReadFull(r, hdr[:]); err != nil {
		return 0, 0, err
	}
	if hdr[0] != 'B' || hdr[1] != 'M' {
		return 0, 0, ErrSignature
	}

	w := int32(getUint32(hdr[18:22]))
	h := int32(getUint32(hdr[22:26]))
	if w < 0 || h < 0 {
		return 0, 0, ErrDimensions
	}

	rowBytes := uint32(RowBytes(int(w)))
	imageSize := uint32(h) * rowBytes
	fileSize := imageSize + dataOffset

	if getUint32(hdr[2:6]) != fileSize {
		return 0, 0, ErrHeader
	}
	if getUint32(hdr[10:14]) != dataOffset {
		return 0, 0, ErrHeader
	}
	if getUint32(hdr[14:18]) != infoHeaderSize {
		return 0, 0, ErrHeader
	}
	if getUint16(hdr[26:28]) != 1 {
		return 0, 0, ErrHeader
	}
	if getUint16(hdr[28:30]) != 1 {
		return 0, 0, ErrHeader
	}
	if getUint32(hdr[30:34]) != 0 {
		return 0, 0, ErrHeader
	}
	if getUint32(hdr[34:38]) != imageSize {
		return 0, 0, ErrHeader
	}
	// hdr[38:46] is the horizontal/vertical resolution (DPI); the original
	// Utilities::readBMP does not constrain it, only colors-used/important.
	if getUint32(hdr[46:50]) != 0 || getUint32(hdr[50:54]) != 0 {
		return 0, 0, ErrHeader
	}

	palette := hdr[54:62]
	if palette[0] != 0 || palette[1] != 0 || palette[2] != 0 || palette[3] != 0 ||
		palette[4] != 0xff || palette[5] != 0xff || palette[6] != 0xff || palette[7] != 0 {
		return 0, 0, ErrPalette
	}

	return int(w), int(h), nil
}

func getUint32(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

func getUint16(b []byte) uint16 {
	return uint16(b[0]) | uint16(b[1])<<8
}
