package maze

import "github.com/cespare/xxhash/v2"

// Fingerprint returns a stable 64-bit hash of m's wall grid. Two mazes
// with the same dimensions and the same walls always hash equal; it does
// not hash the solution path that produced them. This is a supplement
// beyond the original tool: it gives batch generation and golden-file
// tests a cheap way to compare or catalogue mazes without storing or
// diffing full BMPs.
func (m Maze) Fingerprint() uint64 {
	digest := xxhash.New()
	var header [8]byte
	putUint32(header[0:4], uint32(m.height))
	putUint32(header[4:8], uint32(m.width))
	digest.Write(header[:])

	row := make([]byte, (m.width+7)/8)
	for i := 0; i < m.height; i++ {
		for k := range row {
			row[k] = 0
		}
		for j := 0; j < m.width; j++ {
			if m.horizontalWalls[i][j] {
				row[j/8] |= 1 << uint(7-j%8)
			}
		}
		digest.Write(row)
		for k := range row {
			row[k] = 0
		}
		for j := 0; j < m.width; j++ {
			if m.verticalWalls[i][j] {
				row[j/8] |= 1 << uint(7-j%8)
			}
		}
		digest.Write(row)
	}
	return digest.Sum64()
}

func putUint32(b []byte, v uint32) {
	b[0] = byte(v >> 24)
	b[1] = byte(v >> 16)
	b[2] = byte(v >> 8)
	b[3] = byte(v)
}
