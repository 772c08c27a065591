package sphgeom

import (
	"encoding/binary"
	"strconv"
)

// formatFloat renders f the way this package's String() methods want it:
// the shortest decimal representation that round-trips exactly.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func putU32(b []byte, v uint32) {
	binary.LittleEndian.PutUint32(b, v)
}

func getU32(b []byte) uint32 {
	return binary.LittleEndian.Uint32(b)
}
