package bitmap

import "io"

// WriteHeader writes the 14-byte file header, 40-byte info header, and
// 8-byte {black, white} palette for a width x height monochrome bitmap.
// The caller is responsible for then writing height rows of RowBytes(width)
// bytes each, bottom row first.
func WriteHeader(w io.Writer, width, height int) error {
	rowBytes := uint32(RowBytes(width))
	imageSize := uint32(height) * rowBytes
	fileSize := imageSize + dataOffset

	var hdr [dataOffset]byte
	hdr[0] = 'B'
	hdr[1] = 'M'
	putUint32(hdr[2:6], fileSize)
	putUint32(hdr[10:14], dataOffset)

	putUint32(hdr[14:18], infoHeaderSize)
	putInt32(hdr[18:22], int32(width))
	putInt32(hdr[22:26], int32(height))
	putUint16(hdr[26:28], 1) // planes
	putUint16(hdr[28:30], 1) // bits per pixel
	// compression left at 0
	putUint32(hdr[34:38], imageSize)
	// resolution, colors-used, important-colors left at 0

	// palette: black then white (0x00RRGGBB little-endian quad, reserved 0)
	hdr[54], hdr[55], hdr[56], hdr[57] = 0, 0, 0, 0
	hdr[58], hdr[59], hdr[60], hdr[61] = 0xff, 0xff, 0xff, 0

	_, err := w.Write(hdr[:])
	return err
}

func putUint32(b []byte, v uint32) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
}

func putInt32(b []byte, v int32) {
	putUint32(b, uint32(v))
}

func putUint16(b []byte, v uint16) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
}
